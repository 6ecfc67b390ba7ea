package schedule

import (
	"time"

	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
)

// Candidate é a combinação proposta de data/hora/serviço, já com os
// patches de um reagendamento aplicados sobre uma cópia do registro.
type Candidate struct {
	Start    time.Time
	Duration time.Duration

	// ExcludeID tira o próprio agendamento da varredura de conflito
	// num reagendamento. Zero = criação.
	ExcludeID uint
}

func (c Candidate) Interval() Interval {
	return Interval{Start: c.Start, Duration: c.Duration}
}

// Validate decide se o candidato é admissível contra os agendamentos
// já marcados no dia. As regras rodam em ordem e param na primeira
// falha. `now` é sempre injetado; o validador nunca lê o relógio.
func Validate(now time.Time, c Candidate, booked []Booked) error {

	// 1. Domingo fechado
	if c.Start.Weekday() == ClosedWeekday {
		return httperr.ErrBusiness(httperr.CodeClosedDay)
	}

	// 2. Data passada
	day := dateOnly(c.Start)
	today := dateOnly(now)
	if day.Before(today) {
		return httperr.ErrBusiness(httperr.CodePastDate)
	}

	// 3. Horário passado, só para hoje
	if day.Equal(today) && !c.Start.After(now) {
		return httperr.ErrBusiness(httperr.CodePastTime)
	}

	// 4. Dentro do expediente (terminar exatamente no fechamento vale)
	if !WithinHours(c.Interval()) {
		return httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	// 5. Conflito, cada agendamento existente com a duração do
	// próprio serviço dele
	proposed := c.Interval()
	for _, b := range booked {
		if c.ExcludeID != 0 && b.AppointmentID == c.ExcludeID {
			continue
		}
		if proposed.Overlaps(b.Interval) {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
