package period

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypeCurrentMonth = "current-month"
	TypePeriod       = "period"
)

// Descriptor is the JSON form of a window accepted by --range:
//
//	{"type": "current-month"}
//	{"type": "period", "begin": "2021-05-01", "end": "2021-05-31"}
//
// begin and end are optional for the "period" type.
type Descriptor struct {
	Type  string  `json:"type"`
	Begin *string `json:"begin,omitempty"`
	End   *string `json:"end,omitempty"`
}

// ParseDescriptor decodes a JSON descriptor into a Period. now is used for the
// current-month type.
func ParseDescriptor(s string, now time.Time) (Period, error) {
	var d Descriptor
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return Period{}, fmt.Errorf("%w: decode period descriptor: %v", ErrInvalidArgument, err)
	}
	return d.Period(now)
}

func (d Descriptor) Period(now time.Time) (Period, error) {
	switch d.Type {
	case "":
		return Period{}, fmt.Errorf(`%w: period format must be {"type": type, ...}`, ErrInvalidArgument)
	case TypeCurrentMonth:
		return CurrentMonth(now), nil
	case TypePeriod:
		return Parse(deref(d.Begin), deref(d.End))
	}
	return Period{}, fmt.Errorf("%w: unknown period type %q", ErrInvalidArgument, d.Type)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
