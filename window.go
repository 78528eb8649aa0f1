package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hinananoha/booth-order-list/pkg/period"
)

// openBound stands for a missing bound in the two-date --range form.
const openBound = "-"

// resolveWindow turns the window flags into a Period. rangeArg is the value of
// --range and args the positional arguments, of which only the end date of the
// two-date form is allowed. A nil Period means no date filter.
func resolveWindow(rangeArg string, args []string, currentMonth bool, now time.Time) (*period.Period, error) {
	if currentMonth && rangeArg != "" {
		return nil, fmt.Errorf("%w: --current-month and --range cannot be combined", period.ErrInvalidArgument)
	}

	switch {
	case currentMonth:
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: unexpected argument %q", period.ErrInvalidArgument, args[0])
		}
		p := period.CurrentMonth(now)
		return &p, nil

	case rangeArg == "":
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: unexpected argument %q", period.ErrInvalidArgument, args[0])
		}
		return nil, nil

	case strings.HasPrefix(strings.TrimSpace(rangeArg), "{"):
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: a JSON --range takes no end date, got %q", period.ErrInvalidArgument, args[0])
		}
		p, err := period.ParseDescriptor(rangeArg, now)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("%w: --range needs a begin and an end date, e.g. -r 2021-05-01 2021-05-31", period.ErrInvalidArgument)
	}
	p, err := period.Parse(dateArg(rangeArg), dateArg(args[0]))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func dateArg(s string) string {
	if s == openBound {
		return ""
	}
	return s
}
