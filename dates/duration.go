package dates

import "time"

// Duration is an elapsed time decomposed into whole hours plus the
// remaining minutes. Both fields carry the sign of the difference; no
// rounding is applied beyond truncation of the hour component.
type Duration struct {
	Hours   int64   `json:"hours"`
	Minutes float64 `json:"minutes"`
}

// Diff computes end - start with both instants bound to the named zone.
// Negative results are returned as-is when end precedes start; the inputs
// are never swapped.
func Diff(start, end Input, zone string) (Duration, error) {
	s, err := Normalize(start)
	if err != nil {
		return Duration{}, err
	}
	e, err := Normalize(end)
	if err != nil {
		return Duration{}, err
	}

	s, err = s.In(zone)
	if err != nil {
		return Duration{}, err
	}
	e, err = e.In(zone)
	if err != nil {
		return Duration{}, err
	}

	d := e.Time().Sub(s.Time())
	hours := int64(d / time.Hour)
	rest := d - time.Duration(hours)*time.Hour

	return Duration{
		Hours:   hours,
		Minutes: rest.Minutes(),
	}, nil
}
