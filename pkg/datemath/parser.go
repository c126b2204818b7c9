package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clock24Re    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Re    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// Parser resolves calendar dates relative to "now" in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Today returns now's calendar date as YYYY-MM-DD.
func (p *Parser) Today(now time.Time) string {
	return p.DayOffset(now, 0)
}

// DayOffset returns the calendar date n days after now (n may be negative).
// Month and year rollover, leap days included, follow the Gregorian calendar.
func (p *Parser) DayOffset(now time.Time, n int) string {
	return p.startOfDay(now).AddDate(0, 0, n).Format(DateLayout)
}

// NextWeekday returns the date of the first target weekday on or after now.
// The offset is (target - now.Weekday() + 7) % 7, so when today already is the
// target weekday the result is today, not a week ahead.
func (p *Parser) NextWeekday(now time.Time, target time.Weekday) string {
	return p.DayOffset(now, WeekdayOffset(p.startOfDay(now).Weekday(), target))
}

// WeekdayOffset returns the number of days in [0, 6] from one weekday to the next occurrence of another.
func WeekdayOffset(from, target time.Weekday) int {
	return (int(target) - int(from) + 7) % 7
}

// Parse converts a relative date phrase to the start of the matching day.
// Supported: today, tomorrow, yesterday, next week, "in N days|weeks|months", "next <weekday>".
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime).AddDate(0, 0, 1), nil
	case "yesterday":
		return p.startOfDay(baseTime).AddDate(0, 0, -1), nil
	case "next week":
		return p.startOfDay(baseTime).AddDate(0, 0, 7), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// NormalizeDeadline turns a caller-supplied deadline into the text shown in the prompt.
// ISO dates pass through, relative phrases are resolved, anything else is kept verbatim.
func (p *Parser) NormalizeDeadline(deadline string, now time.Time) string {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return NoDeadline
	}
	if _, err := time.Parse(DateLayout, deadline); err == nil {
		return deadline
	}
	if t, err := p.Parse(deadline, now); err == nil {
		return t.Format(DateLayout)
	}
	return deadline
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]
	start := p.startOfDay(baseTime)

	switch {
	case strings.HasPrefix(unit, "day"):
		return start.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return start.AddDate(0, 0, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return start.AddDate(0, amount, 0), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "next monday" style phrases. Unlike NextWeekday, the
// phrase always means a day strictly after today.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	start := p.startOfDay(baseTime)
	daysUntil := WeekdayOffset(start.Weekday(), targetWeekday)
	if daysUntil == 0 {
		daysUntil = 7
	}

	return start.AddDate(0, 0, daysUntil), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// ParseTimeString converts "15:30", "9:05", "3pm", "3:30 pm" and similar to 24-hour "HH:MM".
// 12am is 00:00 and 12pm is 12:00. Any other shape, or an out-of-range value, returns ok=false.
func ParseTimeString(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 || minutes > 59 {
			return "", false
		}
		return formatClock(hours, minutes), true
	}

	m := clock12Re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	if hours < 1 || hours > 12 || minutes > 59 {
		return "", false
	}

	switch {
	case m[3] == "pm" && hours != 12:
		hours += 12
	case m[3] == "am" && hours == 12:
		hours = 0
	}

	return formatClock(hours, minutes), true
}

func formatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
