package roadmap

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time zone, serialized as "YYYY-MM-DD".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range components the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current date in the local time zone.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected quoted string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	t := d.time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// AddMonths returns the date n calendar months later, clamping to the last
// valid day of the target month: Jan 31 + 1 month = Feb 28 (or Feb 29 in a
// leap year), never Mar 3.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

// DaysUntil returns the number of calendar days from d up to other
// (exclusive). Negative if other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Window is a half-open calendar interval [Start, End): Start is the first
// covered day, End the first day not covered.
type Window struct {
	Start Date
	End   Date
}

// Days returns every date in the window in calendar order.
func (w Window) Days() []Date {
	n := w.Start.DaysUntil(w.End)
	if n <= 0 {
		return nil
	}
	days := make([]Date, n)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

// SplitByMonth cuts the window at whole-month boundaries from Start. The last
// sub-window ends exactly at End. Used to chunk long generation requests.
func (w Window) SplitByMonth() []Window {
	var chunks []Window
	cur := w.Start
	for i := 1; cur.Before(w.End); i++ {
		next := w.Start.AddMonths(i)
		if w.End.Before(next) {
			next = w.End
		}
		chunks = append(chunks, Window{Start: cur, End: next})
		cur = next
	}
	return chunks
}
