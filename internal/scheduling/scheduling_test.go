package scheduling

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:30", 1050, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false},
		{"09:00:00.000000", 540, false},
		{"17:30:00", 1050, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true},
		{"9:00:00", 0, true},
		{"09:0000", 0, true},
		{"09:00:xx", 0, true},
		{"0900", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "08:05", "12:30", "23:59"} {
		minutes, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", clock, err)
		}
		if got := FormatClock(minutes); got != clock {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", clock, got)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"09:00:00", "09:00"},
		{"09:00:00.000000", "09:00"},
		{"17:30:00", "17:30"},
		{"bogus", "bogus"},
	}

	for _, tt := range tests {
		if got := NormalizeClock(tt.in); got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateWindows(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []Window
	}{
		{
			name:     "exact fit two windows",
			start:    "09:00",
			end:      "10:00",
			duration: 30,
			want: []Window{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
			},
		},
		{
			name:     "partial window dropped",
			start:    "09:00",
			end:      "10:15",
			duration: 30,
			want: []Window{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
			},
		},
		{
			name:     "duration longer than range",
			start:    "09:00",
			end:      "09:20",
			duration: 30,
			want:     nil,
		},
		{
			name:     "end before start",
			start:    "17:00",
			end:      "09:00",
			duration: 30,
			want:     nil,
		},
		{
			name:     "equal start and end",
			start:    "09:00",
			end:      "09:00",
			duration: 30,
			want:     nil,
		},
		{
			name:     "single full-range window",
			start:    "13:00",
			end:      "14:00",
			duration: 60,
			want: []Window{
				{StartTime: "13:00", EndTime: "14:00"},
			},
		},
		{
			name:     "database time format",
			start:    "09:00:00.000000",
			end:      "10:00:00",
			duration: 30,
			want: []Window{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateWindows(tt.start, tt.end, tt.duration)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("window %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateWindowsCount(t *testing.T) {
	// The number of windows is the whole quotient of the range by the
	// duration, and windows tile the range with no gaps.
	tests := []struct {
		start    string
		end      string
		duration int
		count    int
	}{
		{"09:00", "17:00", 30, 16},
		{"09:00", "17:00", 60, 8},
		{"09:00", "17:00", 45, 10},
		{"08:00", "12:00", 20, 12},
	}

	for _, tt := range tests {
		windows := GenerateWindows(tt.start, tt.end, tt.duration)
		if len(windows) != tt.count {
			t.Errorf("GenerateWindows(%s, %s, %d): got %d windows, want %d",
				tt.start, tt.end, tt.duration, len(windows), tt.count)
		}
		for i := 1; i < len(windows); i++ {
			if windows[i].StartTime != windows[i-1].EndTime {
				t.Errorf("gap between %v and %v", windows[i-1], windows[i])
			}
		}
		for _, w := range windows {
			minutes, err := DurationMinutes(w.StartTime, w.EndTime)
			if err != nil || minutes != tt.duration {
				t.Errorf("window %v has duration %d, want %d", w, minutes, tt.duration)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "10:00", "09:15", "09:45", true},
		{"partial left", "09:00", "10:00", "08:30", "09:30", true},
		{"partial right", "09:00", "10:00", "09:30", "10:30", true},
		{"touching before", "09:00", "10:00", "08:00", "09:00", false},
		{"touching after", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint before", "09:00", "10:00", "07:00", "08:00", false},
		{"disjoint after", "09:00", "10:00", "11:00", "12:00", false},
		{"db format touching", "09:00:00", "09:30:00", "09:30", "10:00", false},
		{"db format contained", "09:00:00.000000", "10:00:00.000000", "09:15", "09:45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %s-%s and %s-%s",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			}
		})
	}
}

func TestWithinWindow(t *testing.T) {
	tests := []struct {
		name                        string
		start, end, availS, availE  string
		want                        bool
	}{
		{"exact", "09:00", "17:00", "09:00", "17:00", true},
		{"inside", "10:00", "11:00", "09:00", "17:00", true},
		{"starts early", "08:30", "10:00", "09:00", "17:00", false},
		{"ends late", "16:30", "17:30", "09:00", "17:00", false},
		{"boundary start", "09:00", "09:30", "09:00", "17:00", true},
		{"boundary end", "16:30", "17:00", "09:00", "17:00", true},
		{"db format boundary", "09:00", "09:30", "09:00:00.000000", "12:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinWindow(tt.start, tt.end, tt.availS, tt.availE); got != tt.want {
				t.Errorf("WithinWindow(%s-%s in %s-%s) = %v, want %v",
					tt.start, tt.end, tt.availS, tt.availE, got, tt.want)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	minutes, err := DurationMinutes("09:00", "09:45")
	if err != nil {
		t.Fatalf("DurationMinutes: %v", err)
	}
	if minutes != 45 {
		t.Errorf("got %d, want 45", minutes)
	}

	if _, err := DurationMinutes("bad", "09:45"); err == nil {
		t.Error("expected error for malformed start")
	}
}
