package hol2ics

import (
	"errors"
)

var ErrMalformedHeader = errors.New("malformed header")
var ErrMalformedRecord = errors.New("malformed record")
var ErrInvalidDate = errors.New("invalid date")

type Source interface {
	Name() string
	ReadAll() ([]Event, error)
}
