package notification

import (
	"fmt"
	"net/url"

	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

// Summary é o contrato de handoff para o canal de notificação:
// exatamente estes seis campos, para qualquer ação.
type Summary struct {
	ClientName  string
	ClientPhone string
	ServiceName string
	Date        string
	Time        string
	Token       string
}

func Summarize(ap *models.Appointment) Summary {
	return Summary{
		ClientName:  ap.Client.Name,
		ClientPhone: ap.Client.Phone,
		ServiceName: ap.Service.Name,
		Date:        ap.DateString(),
		Time:        ap.TimeString(),
		Token:       ap.Token,
	}
}

// Composer monta deep links wa.me com a mensagem pré-preenchida para
// o barbeiro. Só composição de string/URL, nenhum envio acontece aqui.
type Composer struct {
	barberPhone string
}

func NewComposer(barberPhone string) *Composer {
	return &Composer{barberPhone: barberPhone}
}

func (c *Composer) BookingCreated(s Summary) string {
	msg := fmt.Sprintf(`
Novo Agendamento

Cliente: %s
Telefone: %s

Servico: %s
Data: %s
Horario: %s

Token do agendamento:
%s

Guarde este token para reagendar ou cancelar futuramente.
`, s.ClientName, s.ClientPhone, s.ServiceName, s.Date, s.Time, s.Token)

	return c.link(msg)
}

func (c *Composer) BookingRescheduled(s Summary) string {
	msg := fmt.Sprintf(`
Reagendamento solicitado

Cliente: %s
Telefone: %s

Servico: %s

Nova data: %s
Novo horario: %s

Token do agendamento:
%s

Reagendamento informado pelo cliente.
`, s.ClientName, s.ClientPhone, s.ServiceName, s.Date, s.Time, s.Token)

	return c.link(msg)
}

func (c *Composer) BookingCancelled(s Summary) string {
	msg := fmt.Sprintf(`
Cancelamento de agendamento

Cliente: %s
Telefone: %s

Servico: %s
Data: %s
Horario: %s

Token:
%s

Agendamento cancelado pelo cliente.
`, s.ClientName, s.ClientPhone, s.ServiceName, s.Date, s.Time, s.Token)

	return c.link(msg)
}

func (c *Composer) link(message string) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		c.barberPhone,
		url.QueryEscape(message),
	)
}
