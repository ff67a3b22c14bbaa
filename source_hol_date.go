package hol2ics

import (
	"fmt"
	"strings"
	"time"
)

// Accepts both padded and unpadded month and day components.
const holDateFormat = "2006/1/2"

// Hol dates carry no timezone, so they parse as timezone-naive calendar
// dates.
func parseHolDate(d string) (time.Time, error) {
	d = strings.TrimSpace(d)

	t, err := time.Parse(holDateFormat, d)
	if err != nil {
		return t, fmt.Errorf("%w: %s is not a valid date", ErrInvalidDate, d)
	}

	return t, nil
}
