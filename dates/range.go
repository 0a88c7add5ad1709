package dates

import (
	"time"

	"github.com/teambition/rrule-go"
)

const dayLayout = "2006-01-02"

// Days enumerates every calendar day from start to end inclusive as
// "yyyy-MM-dd" strings. The start is floored to the beginning of its
// calendar day and the end is ceiled to the end of its calendar day, each
// in the instant's own zone. When start falls after end the result is
// empty; the endpoints are never swapped.
func Days(start, end Input) ([]string, error) {
	s, err := Normalize(start)
	if err != nil {
		return nil, err
	}
	e, err := Normalize(end)
	if err != nil {
		return nil, err
	}

	first := startOfDay(s.Time())
	last := endOfDay(e.Time())

	if first.After(last) {
		return []string{}, nil
	}

	// A DAILY rule steps by calendar day rather than by 24h, which keeps
	// the enumeration stable across DST transitions.
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first,
		Until:   last,
	})
	if err != nil {
		return nil, err
	}

	occurrences := r.All()
	out := make([]string, 0, len(occurrences))
	for _, t := range occurrences {
		out = append(out, t.Format(dayLayout))
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
