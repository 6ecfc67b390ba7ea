package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// A agenda inteira vive num único fuso. Configurado uma vez no boot,
// antes de qualquer request.
var current = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Init(tz string) {
	if tz == "" {
		return
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		current = loc
	}
}

func Location() *time.Location {
	return current
}

func Now() time.Time {
	return time.Now().In(current)
}

// ParseDate interpreta "2006-01-02" no fuso da agenda.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, current)
}

// ParseDateTime combina data "2006-01-02" e hora "15:04" no fuso da agenda.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, current)
}

// DayOf zera a parte de hora, mantendo o fuso do instante.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
