package hol2ics

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const icsDateTimeFormat = "20060102T150405"
const icsDateFormat = "20060102"

func Convert(source Source, ical io.Writer) error {
	events, err := source.ReadAll()
	if err != nil {
		return err
	}

	// Create calendar
	cal := ics.NewCalendar()
	// Set calendar properties
	cal.SetName(source.Name())
	cal.SetProductId(fmt.Sprintf("-//%s//EN", source.Name()))

	// Add events to calendar
	for _, event := range events {
		calEvent := cal.AddEvent(uuid.NewString())
		// DTSTAMP is wall-clock local time without a zone marker,
		// matching the timezone-naive dates in the source.
		calEvent.SetProperty(ics.ComponentPropertyDtstamp, time.Now().Format(icsDateTimeFormat))
		// VALUE=DATE marks an all-day event: a bare date, no time, no
		// zone suffix.
		calEvent.SetProperty(ics.ComponentPropertyDtStart, event.Start.Format(icsDateFormat), &ics.KeyValues{
			Key:   "VALUE",
			Value: []string{"DATE"},
		})
		calEvent.SetSummary(event.Title)
	}

	log.Printf("Processed %d events", len(events))

	return cal.SerializeTo(ical)
}
