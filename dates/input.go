// Package dates normalizes heterogeneous date representations into a single
// calendar-aware instant and provides zone-bound arithmetic and formatting
// on top of it.
//
// Every operation that produces user-facing output binds the instant to an
// explicit IANA timezone first; nothing in this package is defined in the
// implicit system-local zone.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedInput is returned when an Input carries no recognizable
// date representation (typically a zero-value Input).
var ErrUnsupportedInput = errors.New("unsupported date type")

// epochMillisThreshold separates second-scale epochs from millisecond-scale
// ones. Values above it are read as milliseconds. This is a heuristic, not a
// general-purpose rule: second-scale timestamps stay below 1e10 until the
// year ~2286, while any realistic millisecond timestamp is far above it.
// Callers relying on the original behavior depend on this exact cutoff, so
// do not change it.
const epochMillisThreshold = 1e10

type inputKind int

const (
	kindNone inputKind = iota
	kindISO
	kindEpoch
	kindTime
	kindInstant
	kindTimestamp
)

// Timestamp is a stored timestamp record as produced by document-store
// platforms: seconds since epoch plus a nanosecond remainder.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int64 `json:"nanoseconds"`
}

// Input is a tagged union over the date representations accepted by this
// package. Construct one with the From* functions; the zero value is
// rejected by Normalize with ErrUnsupportedInput.
type Input struct {
	kind    inputKind
	iso     string
	epoch   int64
	t       time.Time
	instant Instant
	ts      Timestamp
}

// FromISO wraps an ISO-8601 string. Strings without a UTC offset are read
// as UTC. Malformed strings surface as a parse error from Normalize.
func FromISO(s string) Input { return Input{kind: kindISO, iso: s} }

// FromEpoch wraps a numeric epoch. Values above 1e10 are interpreted as
// milliseconds since epoch, anything else as seconds (see
// epochMillisThreshold).
func FromEpoch(n int64) Input { return Input{kind: kindEpoch, epoch: n} }

// FromTime wraps a native time.Time, keeping its embedded location.
func FromTime(t time.Time) Input { return Input{kind: kindTime, t: t} }

// FromInstant wraps an already-normalized instant; Normalize returns it
// unchanged.
func FromInstant(i Instant) Input { return Input{kind: kindInstant, instant: i} }

// FromTimestamp wraps a stored timestamp record. Both the seconds and the
// nanosecond remainder are preserved.
func FromTimestamp(ts Timestamp) Input { return Input{kind: kindTimestamp, ts: ts} }

// Instant is a calendar-aware point in time, ready for zone-bound
// formatting or arithmetic.
type Instant struct {
	t time.Time
}

// Time returns the underlying time.Time.
func (i Instant) Time() time.Time { return i.t }

// In rebinds the instant to the named IANA zone.
func (i Instant) In(zone string) (Instant, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Instant{}, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return Instant{t: i.t.In(loc)}, nil
}

// Normalize converts an Input into an Instant.
//
//   - ISO strings are parsed as ISO-8601; offsets are honored, naive
//     strings are read as UTC.
//   - Epoch numbers are scaled per epochMillisThreshold.
//   - time.Time values keep their own location.
//   - Instants pass through unchanged.
//   - Timestamp records keep full sub-second precision.
func Normalize(in Input) (Instant, error) {
	switch in.kind {
	case kindInstant:
		return in.instant, nil
	case kindISO:
		t, err := parseISO(in.iso, time.UTC)
		if err != nil {
			return Instant{}, err
		}
		return Instant{t: t}, nil
	case kindEpoch:
		return Instant{t: epochToTime(in.epoch)}, nil
	case kindTime:
		return Instant{t: in.t}, nil
	case kindTimestamp:
		return Instant{t: time.Unix(in.ts.Seconds, in.ts.Nanos).UTC()}, nil
	default:
		return Instant{}, ErrUnsupportedInput
	}
}

// ParseInZone parses an ISO-8601 string against a named zone: values
// without an offset are read as wall-clock time in that zone, values
// carrying an offset are converted into it. This mirrors how itinerary
// entries declare a timezone alongside a local start time.
func ParseInZone(s, zone string) (Instant, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Instant{}, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	t, err := parseISO(s, loc)
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: t.In(loc)}, nil
}

// epochToTime applies the millisecond/second heuristic. The result is bound
// to UTC so that no instant ever depends on the process-local zone.
func epochToTime(n int64) time.Time {
	if n > epochMillisThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// isoLayouts lists the accepted ISO-8601 shapes, most specific first.
// Layouts without an offset are parsed in the fallback location.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISO parses an ISO-8601 string, trying known layouts in order.
// Offset-less values are interpreted in loc.
func parseISO(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty ISO date string")
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable ISO date %q", s)
}
