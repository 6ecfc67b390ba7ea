package schedule

import "time"

// Interval é o intervalo meio-aberto [Start, Start+Duration) ocupado
// por um serviço.
type Interval struct {
	Start    time.Time
	Duration time.Duration
}

func (i Interval) End() time.Time {
	return i.Start.Add(i.Duration)
}

// Overlaps usa semântica meio-aberta: extremos encostados
// (a.End == b.Start) não contam como conflito, permitindo
// agendamentos de costas um para o outro.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End()) && i.End().After(other.Start)
}

// Booked é um intervalo já persistido, carregando o ID do agendamento
// dono para que reagendamentos possam se excluir da varredura.
type Booked struct {
	AppointmentID uint
	Interval      Interval
}
