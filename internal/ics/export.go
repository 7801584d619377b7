// Package ics renders appointments as an iCalendar feed.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"nurse-agenda/internal/model"
)

const ProductID = "-//nurse-agenda//agenda//PT"

// UID is the stable iCalendar identifier of an appointment.
func UID(id int64) string {
	return fmt.Sprintf("appointment-%d@nurse-agenda", id)
}

// Build turns appointments into a published calendar. stamp becomes every
// event's DTSTAMP.
func Build(apts []model.Appointment, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, a := range apts {
		ev := cal.AddEvent(UID(a.ID))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(a.Start)
		ev.SetEndAt(a.End)
		ev.SetSummary(a.Title)
		ev.SetDescription(describe(a))
		ev.SetProperty(ical.ComponentPropertyCategories, a.ServiceName)
		ev.SetProperty(ical.ComponentProperty("COLOR"), string(a.Color))
	}
	return cal
}

// Export writes the feed to w.
func Export(w io.Writer, apts []model.Appointment, stamp time.Time) error {
	_, err := io.WriteString(w, Build(apts, stamp).Serialize())
	return err
}

func describe(a model.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s com %s", a.ServiceName, a.NurseName)
	if a.Notes != "" {
		b.WriteString("\n")
		b.WriteString(a.Notes)
	}
	return b.String()
}
