// Package planner models travel itineraries: typed events, grouping by
// local calendar day, and iCalendar export.
package planner

import (
	"time"

	"github.com/google/uuid"

	"tripkit/dates"
	appLog "tripkit/internal/log"
)

// EventType classifies a travel event.
type EventType string

const (
	TypeFlight EventType = "flight"
	TypeTrain  EventType = "train"
	TypeVisit  EventType = "visit"
	TypeMeal   EventType = "meal"
	TypeHotel  EventType = "hotel"
	TypeCustom EventType = "custom"
)

// Event is a single entry in a travel itinerary. Start and End are ISO
// strings interpreted in the event's own Timezone; End may be empty for
// point-in-time events. Events are treated as immutable input everywhere
// in this package.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     EventType `json:"type"`
	Start    string    `json:"start"`
	End      string    `json:"end,omitempty"`
	Timezone string    `json:"timezone"`
	Location string    `json:"location,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// New builds an event with a fresh ID.
func New(title string, typ EventType, start, timezone string) Event {
	return Event{
		ID:       uuid.NewString(),
		Title:    title,
		Type:     typ,
		Start:    start,
		Timezone: timezone,
	}
}

// InvalidDayKey collects events whose start or timezone cannot be
// interpreted; a bad event never fails the whole grouping call.
const InvalidDayKey = "invalid-date"

// GroupByLocalDay maps each event to the "yyyy-MM-dd" calendar day its
// start falls on in the event's own declared timezone. Two events sharing
// one absolute instant can land on different days when their zones differ.
// Within a day, input order is preserved.
func GroupByLocalDay(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)

	for _, ev := range events {
		key, err := localDayKey(ev)
		if err != nil {
			appLog.Error("planner: event start not groupable", err, "id", ev.ID, "start", ev.Start, "timezone", ev.Timezone)
			key = InvalidDayKey
		}
		grouped[key] = append(grouped[key], ev)
	}

	return grouped
}

// localDayKey derives the local calendar-day key for a single event.
// Naive start strings are read as wall-clock time in the event's zone;
// starts carrying an offset are converted into it.
func localDayKey(ev Event) (string, error) {
	i, err := dates.ParseInZone(ev.Start, ev.Timezone)
	if err != nil {
		return "", err
	}
	return i.Time().Format("2006-01-02"), nil
}

// startTime resolves the event's start as an absolute instant in the
// event's zone.
func (e Event) startTime() (time.Time, error) {
	i, err := dates.ParseInZone(e.Start, e.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return i.Time(), nil
}
