package scheduling

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	start := date(2026, time.January, 15)

	tests := []struct {
		step string
		want time.Time
	}{
		{StepDaily, date(2026, time.January, 16)},
		{StepWeekly, date(2026, time.January, 22)},
		{StepMonthly, date(2026, time.February, 15)},
	}

	for _, tt := range tests {
		if got := NextOccurrence(start, tt.step); !got.Equal(tt.want) {
			t.Errorf("NextOccurrence(%s, %s) = %s, want %s", start, tt.step, got, tt.want)
		}
	}

	if got := NextOccurrence(start, "yearly"); !got.IsZero() {
		t.Errorf("unknown step should return zero time, got %s", got)
	}
}

func TestOccurrences(t *testing.T) {
	start := date(2026, time.March, 2)

	tests := []struct {
		name  string
		end   time.Time
		step  string
		count int
		last  time.Time
	}{
		{"daily one week", date(2026, time.March, 9), StepDaily, 7, date(2026, time.March, 9)},
		{"weekly one month", date(2026, time.March, 30), StepWeekly, 4, date(2026, time.March, 30)},
		{"monthly one quarter", date(2026, time.June, 2), StepMonthly, 3, date(2026, time.June, 2)},
		{"end before first step", date(2026, time.March, 2), StepWeekly, 0, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Occurrences(start, tt.end, tt.step)
			if len(got) != tt.count {
				t.Fatalf("got %d occurrences, want %d: %v", len(got), tt.count, got)
			}
			if tt.count > 0 && !got[len(got)-1].Equal(tt.last) {
				t.Errorf("last occurrence = %s, want %s", got[len(got)-1], tt.last)
			}
			for _, d := range got {
				if !d.After(start) {
					t.Errorf("occurrence %s is not strictly after start %s", d, start)
				}
				if d.After(tt.end) {
					t.Errorf("occurrence %s is past end %s", d, tt.end)
				}
			}
		})
	}
}

func TestOccurrencesUnknownStep(t *testing.T) {
	got := Occurrences(date(2026, time.March, 2), date(2026, time.April, 2), "none")
	if len(got) != 0 {
		t.Errorf("non-repeating step should yield no occurrences, got %v", got)
	}
}
