package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
)

// 2026-09-14 é uma segunda-feira; 2026-09-13 um domingo.
var (
	monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
)

func clockAt(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestValidateClosedDay(t *testing.T) {
	now := clockAt(monday.AddDate(0, 0, -7), 8, 0)

	c := Candidate{Start: clockAt(sunday, 10, 0), Duration: 30 * time.Minute}
	err := Validate(now, c, nil)
	if !httperr.IsBusiness(err, httperr.CodeClosedDay) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeClosedDay)
	}
}

func TestValidatePastDate(t *testing.T) {
	now := clockAt(monday, 8, 0)

	c := Candidate{Start: clockAt(monday.AddDate(0, 0, -3), 10, 0), Duration: 30 * time.Minute}
	err := Validate(now, c, nil)
	if !httperr.IsBusiness(err, httperr.CodePastDate) {
		t.Fatalf("err = %v, want %s", err, httperr.CodePastDate)
	}
}

func TestValidatePastTimeSameDay(t *testing.T) {
	now := clockAt(monday, 10, 0)

	tests := []struct {
		name     string
		start    time.Time
		wantCode string
	}{
		{"earlier today", clockAt(monday, 9, 30), httperr.CodePastTime},
		{"exactly now", clockAt(monday, 10, 0), httperr.CodePastTime},
		{"later today", clockAt(monday, 10, 30), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(now, Candidate{Start: tc.start, Duration: 30 * time.Minute}, nil)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("err = %v, want %s", err, tc.wantCode)
			}
		})
	}
}

func TestValidatePastRulesIgnoredForFutureDates(t *testing.T) {
	// hora "passada" num dia futuro é válida
	now := clockAt(monday, 16, 0)

	c := Candidate{Start: clockAt(monday.AddDate(0, 0, 1), 9, 0), Duration: 30 * time.Minute}
	if err := Validate(now, c, nil); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestValidateBusinessHoursBoundary(t *testing.T) {
	now := clockAt(monday, 8, 0)

	tests := []struct {
		name     string
		start    time.Time
		duration time.Duration
		wantCode string
	}{
		{"fills the last slot exactly", clockAt(monday, 16, 30), 90 * time.Minute, ""},
		{"one minute past the boundary", clockAt(monday, 16, 31), 90 * time.Minute, httperr.CodeOutsideHours},
		{"opens the day", clockAt(monday, 9, 0), 30 * time.Minute, ""},
		{"before opening", clockAt(monday, 8, 30), 30 * time.Minute, httperr.CodeOutsideHours},
		{"spills past closing", clockAt(monday, 17, 30), 60 * time.Minute, httperr.CodeOutsideHours},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(now, Candidate{Start: tc.start, Duration: tc.duration}, nil)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("err = %v, want %s", err, tc.wantCode)
			}
		})
	}
}

func TestValidateConflict(t *testing.T) {
	now := clockAt(monday, 8, 0)

	booked := []Booked{
		{AppointmentID: 7, Interval: Interval{Start: clockAt(monday, 10, 0), Duration: 60 * time.Minute}},
	}

	tests := []struct {
		name      string
		start     time.Time
		duration  time.Duration
		excludeID uint
		wantCode  string
	}{
		{"overlapping", clockAt(monday, 10, 30), 30 * time.Minute, 0, httperr.CodeConflict},
		{"surrounding", clockAt(monday, 9, 30), 120 * time.Minute, 0, httperr.CodeConflict},
		{"back to back after", clockAt(monday, 11, 0), 30 * time.Minute, 0, ""},
		{"back to back before", clockAt(monday, 9, 30), 30 * time.Minute, 0, ""},
		{"reschedule excludes itself", clockAt(monday, 10, 30), 30 * time.Minute, 7, ""},
		{"reschedule still conflicts with others", clockAt(monday, 10, 30), 30 * time.Minute, 99, httperr.CodeConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Candidate{Start: tc.start, Duration: tc.duration, ExcludeID: tc.excludeID}
			err := Validate(now, c, booked)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("err = %v, want %s", err, tc.wantCode)
			}
		})
	}
}

func TestValidateRuleOrder(t *testing.T) {
	// domingo + data passada + conflito: a primeira regra ganha
	now := clockAt(monday, 8, 0)

	booked := []Booked{
		{AppointmentID: 1, Interval: Interval{Start: clockAt(sunday, 10, 0), Duration: 60 * time.Minute}},
	}

	c := Candidate{Start: clockAt(sunday, 10, 0), Duration: 30 * time.Minute}
	err := Validate(now, c, booked)
	if !httperr.IsBusiness(err, httperr.CodeClosedDay) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeClosedDay)
	}
}
