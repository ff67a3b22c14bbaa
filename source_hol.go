package hol2ics

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// TODO: a hol file can contain more than one [header] section; the count in
// each header says how many lines belong to it. Only the first section is
// read for now.
var headerPattern = regexp.MustCompile(`^\[(?P<title>.+)\]\s*(?P<count>[0-9]+)`)

// ConfigSourceHol represents configuration for importing from an Outlook
// holiday calendar file.
type ConfigSourceHol struct {
	// File is a handle to the hol data.
	File io.Reader
}

type SourceHol struct {
	scanner *bufio.Scanner
	title   string
	count   int
}

func NewSourceHol(config ConfigSourceHol) (*SourceHol, error) {
	scanner := bufio.NewScanner(config.File)

	// Read the first line as the header
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("unable to read header: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header line", ErrMalformedHeader)
	}
	header := scanner.Text()

	matches := headerPattern.FindStringSubmatch(header)
	if matches == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}

	title := matches[headerPattern.SubexpIndex("title")]
	count, err := strconv.Atoi(matches[headerPattern.SubexpIndex("count")])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}

	return &SourceHol{
		scanner: scanner,
		title:   title,
		count:   count,
	}, nil
}

func (s *SourceHol) Name() string {
	return s.title
}

// Count is the number of records the header declares. It is advisory: hol
// writers are not required to keep it in sync with the lines that follow.
func (s *SourceHol) Count() int {
	return s.count
}

func (s *SourceHol) ReadAll() ([]Event, error) {
	events := make([]Event, 0)

	for s.scanner.Scan() {
		event, err := eventFromHolLine(s.scanner.Text())
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read records: %w", err)
	}

	if len(events) != s.count {
		log.Printf("header declares %d records but %d were found", s.count, len(events))
	}

	return events, nil
}

func eventFromHolLine(line string) (Event, error) {
	title, date, found := strings.Cut(line, ",")
	if !found {
		return Event{}, fmt.Errorf("%w: %q has no comma separator", ErrMalformedRecord, line)
	}

	start, err := parseHolDate(date)
	if err != nil {
		return Event{}, err
	}

	// The title is passed through untouched, surrounding whitespace
	// included.
	return Event{
		Title: title,
		Start: start,
	}, nil
}
