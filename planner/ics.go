package planner

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"tripkit/dates"
)

// ExportICS serializes an itinerary into an iCalendar document with one
// VEVENT per travel event. Event starts and ends are resolved in each
// event's own timezone. An event that cannot be resolved fails the export;
// a half-written itinerary is worse than none.
func ExportICS(name string, events []Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tripkit//itinerary//EN")
	if name != "" {
		cal.SetName(name)
	}

	for _, ev := range events {
		start, err := ev.startTime()
		if err != nil {
			return "", fmt.Errorf("event %s: %w", ev.ID, err)
		}

		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Title)
		ve.SetStartAt(start)

		if ev.End != "" {
			endInstant, err := dates.ParseInZone(ev.End, ev.Timezone)
			if err != nil {
				return "", fmt.Errorf("event %s: %w", ev.ID, err)
			}
			ve.SetEndAt(endInstant.Time())
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Notes != "" {
			ve.SetDescription(ev.Notes)
		}
		ve.SetProperty(ical.ComponentPropertyCategories, string(ev.Type))
	}

	return cal.Serialize(), nil
}
