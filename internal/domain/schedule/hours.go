package schedule

import "time"

// ===============================
// Expediente fixo
// ===============================

const (
	OpeningHour = 9
	ClosingHour = 18

	SlotStep = 30 * time.Minute

	ClosedWeekday = time.Sunday
)

func OpeningAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, date.Location())
}

func ClosingAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), ClosingHour, 0, 0, 0, date.Location())
}

// WithinHours aceita exatamente o expediente: começar na abertura e
// terminar em cima do fechamento são ambos válidos.
func WithinHours(i Interval) bool {
	return !i.Start.Before(OpeningAt(i.Start)) && !i.End().After(ClosingAt(i.Start))
}
