package datemath_test

import (
	"errors"
	"testing"
	"time"

	"taskextreme-ai/pkg/datemath"
)

func mustParser(t *testing.T, tz string) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser(tz)
	if err != nil {
		t.Fatalf("NewParser(%q): %v", tz, err)
	}
	return p
}

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDayOffset(t *testing.T) {
	p := mustParser(t, "UTC")

	tests := []struct {
		name string
		now  time.Time
		n    int
		want string
	}{
		{"zero", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), 0, "2024-05-01"},
		{"tomorrow", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), 1, "2024-05-02"},
		{"negative", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), -1, "2024-04-30"},
		{"month rollover", time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC), 1, "2024-02-01"},
		{"leap day", time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC), 1, "2024-02-29"},
		{"non-leap year", time.Date(2023, 2, 28, 8, 0, 0, 0, time.UTC), 1, "2023-03-01"},
		{"year rollover", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), 1, "2025-01-01"},
		{"year rollback", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), -1, "2024-12-31"},
		{"across a year", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 365, "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.DayOffset(tt.now, tt.n); got != tt.want {
				t.Errorf("DayOffset(%v, %d) = %s, want %s", tt.now, tt.n, got, tt.want)
			}
		})
	}
}

func TestDayOffset_MatchesCalendarArithmetic(t *testing.T) {
	p := mustParser(t, "UTC")
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

	for n := -800; n <= 800; n++ {
		want := time.Date(2024, 12, 20+n, 0, 0, 0, 0, time.UTC).Format(datemath.DateLayout)
		if got := p.DayOffset(now, n); got != want {
			t.Fatalf("DayOffset(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestToday_UsesParserTimezone(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	if got := mustParser(t, "UTC").Today(now); got != "2024-05-01" {
		t.Errorf("UTC Today = %s", got)
	}
	if got := mustParser(t, "Asia/Ho_Chi_Minh").Today(now); got != "2024-05-02" {
		t.Errorf("Asia/Ho_Chi_Minh Today = %s", got)
	}
}

func TestNextWeekday(t *testing.T) {
	p := mustParser(t, "UTC")
	// 2024-05-05 is a Sunday; walk a full week of "today" values.
	sunday := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)

	for d := 0; d < 7; d++ {
		now := sunday.AddDate(0, 0, d)
		for w := time.Sunday; w <= time.Saturday; w++ {
			got := p.NextWeekday(now, w)
			gotDate, err := time.Parse(datemath.DateLayout, got)
			if err != nil {
				t.Fatalf("NextWeekday returned unparsable %q", got)
			}

			if gotDate.Weekday() != w {
				t.Errorf("now=%s target=%s: got weekday %s", now.Weekday(), w, gotDate.Weekday())
			}

			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			offset := int(gotDate.Sub(today).Hours() / 24)
			if offset < 0 || offset > 6 {
				t.Errorf("now=%s target=%s: offset %d out of [0,6]", now.Weekday(), w, offset)
			}
			if (offset == 0) != (now.Weekday() == w) {
				t.Errorf("now=%s target=%s: offset %d, zero only expected on the same weekday", now.Weekday(), w, offset)
			}
		}
	}
}

func TestNextWeekday_SameDayReturnsToday(t *testing.T) {
	p := mustParser(t, "UTC")
	friday := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	if got := p.NextWeekday(friday, time.Friday); got != "2024-05-03" {
		t.Errorf("NextWeekday(friday, Friday) = %s, want today", got)
	}
	if got := p.NextWeekday(friday, time.Monday); got != "2024-05-06" {
		t.Errorf("NextWeekday(friday, Monday) = %s", got)
	}
}

func TestParse(t *testing.T) {
	parser := mustParser(t, "UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Next week", relative: "next week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := parser.Parse("whenever", baseTime); !errors.Is(err, datemath.ErrUnrecognized) {
		t.Errorf("expected ErrUnrecognized, got %v", err)
	}
}

func TestNormalizeDeadline(t *testing.T) {
	parser := mustParser(t, "UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := map[string]string{
		"":              datemath.NoDeadline,
		"   ":           datemath.NoDeadline,
		"2024-06-15":    "2024-06-15",
		"tomorrow":      "2024-05-02",
		"in 2 weeks":    "2024-05-15",
		"next friday":   "2024-05-03",
		"end of sprint": "end of sprint",
	}

	for in, want := range tests {
		if got := parser.NormalizeDeadline(in, now); got != want {
			t.Errorf("NormalizeDeadline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTimeString(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"3pm", "15:00", true},
		{"3:30pm", "15:30", true},
		{"15:30", "15:30", true},
		{"12am", "00:00", true},
		{"12pm", "12:00", true},
		{"12:45am", "00:45", true},
		{"9:05", "09:05", true},
		{" 7 PM ", "19:00", true},
		{"11am", "11:00", true},
		{"not-a-time", "", false},
		{"", "", false},
		{"25:00", "", false},
		{"13pm", "", false},
		{"0am", "", false},
		{"3:75pm", "", false},
		{"1530", "", false},
	}

	for _, tt := range tests {
		got, ok := datemath.ParseTimeString(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseTimeString(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWeekdayOffset(t *testing.T) {
	if got := datemath.WeekdayOffset(time.Wednesday, time.Monday); got != 5 {
		t.Errorf("Wed->Mon = %d, want 5", got)
	}
	if got := datemath.WeekdayOffset(time.Saturday, time.Sunday); got != 1 {
		t.Errorf("Sat->Sun = %d, want 1", got)
	}
	if got := datemath.WeekdayOffset(time.Tuesday, time.Tuesday); got != 0 {
		t.Errorf("Tue->Tue = %d, want 0", got)
	}
}
