package taskprompt

import (
	"strings"
	"time"

	"taskextreme-ai/pkg/datemath"
)

// Composer builds the scheduler system instruction.
type Composer struct {
	dates *datemath.Parser
}

// New creates a Composer that resolves calendar dates with the given parser.
func New(dates *datemath.Parser) *Composer {
	return &Composer{dates: dates}
}

// Build returns the system instruction for a request made at now.
// The output depends only on now's calendar date and the deadline.
func (c *Composer) Build(now time.Time, deadline string) string {
	r := strings.NewReplacer(
		phToday, c.dates.Today(now),
		phDeadline, c.dates.NormalizeDeadline(deadline, now),
		phTomorrow, c.dates.DayOffset(now, 1),
		phDayAfter, c.dates.DayOffset(now, 2),
		phThirdDay, c.dates.DayOffset(now, 3),
		phNextMonday, c.dates.NextWeekday(now, time.Monday),
		phNextFriday, c.dates.NextWeekday(now, time.Friday),
	)
	return r.Replace(systemTemplate)
}
