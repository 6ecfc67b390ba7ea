package schedule

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical",
			a:    Interval{Start: at(9, 0), Duration: 30 * time.Minute},
			b:    Interval{Start: at(9, 0), Duration: 30 * time.Minute},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: at(9, 0), Duration: 60 * time.Minute},
			b:    Interval{Start: at(9, 30), Duration: 60 * time.Minute},
			want: true,
		},
		{
			name: "contained",
			a:    Interval{Start: at(9, 0), Duration: 90 * time.Minute},
			b:    Interval{Start: at(9, 30), Duration: 30 * time.Minute},
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    Interval{Start: at(9, 0), Duration: 30 * time.Minute},
			b:    Interval{Start: at(9, 30), Duration: 30 * time.Minute},
			want: false,
		},
		{
			name: "back to back, reversed",
			a:    Interval{Start: at(9, 30), Duration: 30 * time.Minute},
			b:    Interval{Start: at(9, 0), Duration: 30 * time.Minute},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Start: at(9, 0), Duration: 30 * time.Minute},
			b:    Interval{Start: at(14, 0), Duration: 30 * time.Minute},
			want: false,
		},
		{
			name: "one minute of overlap",
			a:    Interval{Start: at(9, 0), Duration: 31 * time.Minute},
			b:    Interval{Start: at(9, 30), Duration: 30 * time.Minute},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// simetria
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalEnd(t *testing.T) {
	i := Interval{Start: at(16, 30), Duration: 90 * time.Minute}
	if !i.End().Equal(at(18, 0)) {
		t.Fatalf("End = %v, want %v", i.End(), at(18, 0))
	}
}
