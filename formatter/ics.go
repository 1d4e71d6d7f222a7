package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/theoremus-urban-solutions/efa-client/model"
)

// DepartureEventLength is the duration given to each calendar event
const DepartureEventLength = 5 * time.Minute

// DeparturesICS writes departures from stopName as calendar events to w
func DeparturesICS(stopName string, deps []model.Departure, now time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, d := range deps {
		start := d.Time()

		event := cal.AddEvent(fmt.Sprintf("%s-%d@efa-client", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(DepartureEventLength))
		event.SetSummary(fmt.Sprintf("%s %s → %s", d.Transport.Title(), d.LineName, d.Destination.Name))
		event.SetLocation(stopName)
		event.SetDescription(departureDescription(d))
	}

	return cal.SerializeTo(w)
}

func departureDescription(d model.Departure) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Route: %s\nPlanned: %s", d.Route, d.PlannedTime.Format("15:04"))
	if d.EstimatedTime != nil {
		fmt.Fprintf(&sb, "\nEstimated: %s (+%d min)", d.EstimatedTime.Format("15:04"), int(d.Delay().Minutes()))
	}
	return sb.String()
}
