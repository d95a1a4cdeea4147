package models

import (
	"fmt"
	"time"
)

// Period is a UTC calendar-month interval. Start is inclusive, End exclusive.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// ResolvePeriod resolves a "YYYY-MM" label into a month interval in UTC.
// An empty label resolves to the current month. The label is assumed to be
// pre-validated; callers validate format at the request boundary.
func ResolvePeriod(label string) Period {
	var year, month int

	if label != "" {
		fmt.Sscanf(label, "%d-%d", &year, &month)
	} else {
		now := time.Now().UTC()
		year, month = now.Year(), int(now.Month())
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return Period{
		Start: start,
		End:   end,
		Label: start.Format("2006-01"),
	}
}

// Contains reports whether t falls inside the period interval [Start, End)
func (p Period) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(p.Start) && u.Before(p.End)
}
