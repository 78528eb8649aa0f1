package period

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the layout accepted for window bounds on the command line.
const DateLayout = time.DateOnly

var ErrInvalidArgument = errors.New("invalid argument")

// Period is a date interval whose bounds are both optional. A nil bound means
// the interval is open on that side.
//
// Timestamps carry no zone in BOOTH exports, so every wall-clock value is held
// in UTC with the source's fields unchanged.
type Period struct {
	begin *time.Time
	end   *time.Time
}

// New returns a Period for the given bounds. Either bound may be nil.
func New(begin, end *time.Time) (Period, error) {
	if begin != nil && begin.IsZero() {
		return Period{}, fmt.Errorf("%w: begin is the zero time", ErrInvalidArgument)
	}
	if end != nil && end.IsZero() {
		return Period{}, fmt.Errorf("%w: end is the zero time", ErrInvalidArgument)
	}
	if begin != nil && end != nil && begin.After(*end) {
		return Period{}, fmt.Errorf("%w: begin > end: begin = %s, end = %s",
			ErrInvalidArgument, begin.Format(time.DateTime), end.Format(time.DateTime))
	}

	var p Period
	if begin != nil {
		b := *begin
		p.begin = &b
	}
	if end != nil {
		e := *end
		p.end = &e
	}
	return p, nil
}

// Parse builds a Period from YYYY-MM-DD strings. An empty string leaves that
// bound open.
func Parse(begin, end string) (Period, error) {
	b, err := parseBound("begin", begin)
	if err != nil {
		return Period{}, err
	}
	e, err := parseBound("end", end)
	if err != nil {
		return Period{}, err
	}
	return New(b, e)
}

func parseBound(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not YYYY-MM-DD", ErrInvalidArgument, name, s)
	}
	return &t, nil
}

// CurrentMonth returns the closed window from the first instant of now's month
// to the last microsecond of its last day.
func CurrentMonth(now time.Time) Period {
	year, month, _ := now.Date()
	begin := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := DaysIn(year, month)
	end := time.Date(year, month, lastDay, 23, 59, 59, int(999999*time.Microsecond), time.UTC)
	return Period{begin: &begin, end: &end}
}

// DaysIn reports the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p Period) Begin() (time.Time, bool) {
	if p.begin == nil {
		return time.Time{}, false
	}
	return *p.begin, true
}

func (p Period) End() (time.Time, bool) {
	if p.end == nil {
		return time.Time{}, false
	}
	return *p.end, true
}

// Unbounded reports whether the period has neither bound.
func (p Period) Unbounded() bool {
	return p.begin == nil && p.end == nil
}

// Contains reports whether t falls inside the period. Both bounds are
// inclusive.
func (p Period) Contains(t time.Time) bool {
	switch {
	case p.begin == nil && p.end == nil:
		return true
	case p.begin == nil:
		return !t.After(*p.end)
	case p.end == nil:
		return !t.Before(*p.begin)
	}
	return !t.Before(*p.begin) && !t.After(*p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("%s ~ %s", formatBound(p.begin), formatBound(p.end))
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05.999999")
}
