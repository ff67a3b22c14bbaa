package hol2ics

import (
	"time"
)

type Event struct {
	Title string

	// Start is a calendar date only. Hol files carry no time of day or
	// timezone, so events are all-day.
	Start time.Time
}
