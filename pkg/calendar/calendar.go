// Package calendar exports race events as an iCalendar feed.
package calendar

import (
	"fmt"
	"slices"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/apexchronicle/apex/pkg/domain"
)

const productID = "-//Apex Chronicle//F1 Calendar//EN"

// defaultDuration is used for events without an end date
const defaultDuration = 2 * time.Hour

// Export renders events as an iCalendar document. Events without a start date are skipped.
// stamp is written as DTSTAMP of every event.
func Export(name string, events []domain.RaceEvent, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)

	for _, e := range events {
		if e.DateStart.IsZero() {
			continue
		}
		end := e.DateEnd
		if end.IsZero() || end.Before(e.DateStart) {
			end = e.DateStart.Add(defaultDuration)
		}

		ev := cal.AddEvent(uid(e))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetStartAt(e.DateStart.UTC())
		ev.SetEndAt(end.UTC())
		ev.SetSummary(summary(e))
		ev.SetLocation(location(e))
		if e.OfficialName != "" {
			ev.SetDescription(e.OfficialName)
		}
	}
	return cal.Serialize()
}

func uid(e domain.RaceEvent) string {
	if e.Key != 0 {
		return fmt.Sprintf("meeting-%d@apexchronicle", e.Key)
	}
	return fmt.Sprintf("%s-%s@apexchronicle", strings.ReplaceAll(strings.ToLower(e.Name), " ", "-"),
		e.DateStart.UTC().Format("20060102"))
}

func summary(e domain.RaceEvent) string {
	if e.Round > 0 {
		return fmt.Sprintf("Round %d: %s", e.Round, e.Name)
	}
	return e.Name
}

func location(e domain.RaceEvent) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.CircuitName, e.Location, e.Country} {
		if p != "" && !slices.Contains(parts, p) {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
