package schedule

import "time"

// FreeSlots enumera os horários de início livres para um serviço na
// data dada: passos de 30 min a partir da abertura, incluindo o passo
// apenas se o serviço couber até o fechamento e não conflitar com
// nenhum agendamento existente. Consulta pura: nenhuma regra de
// domingo/passado se aplica aqui.
func FreeSlots(date time.Time, duration time.Duration, booked []Booked) []string {
	slots := []string{}
	if duration <= 0 {
		return slots
	}

	closing := ClosingAt(date)

	for cur := OpeningAt(date); !cur.Add(duration).After(closing); cur = cur.Add(SlotStep) {
		candidate := Interval{Start: cur, Duration: duration}

		conflict := false
		for _, b := range booked {
			if candidate.Overlaps(b.Interval) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, cur.Format("15:04"))
		}
	}

	return slots
}
