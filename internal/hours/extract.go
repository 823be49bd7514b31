package hours

import (
	"regexp"
	"strings"
	"time"

	errs "libcal-hours-export/pkg/errors"
)

const dateLayout = "2006-01-02"

// Layouts for "<date> <time>" instants built from the structured from/to
// fields. LibCal emits both "9:00am" and bare "9am" shapes.
var instantLayouts = []string{
	"2006-01-02 3:04pm",
	"2006-01-02 3pm",
}

// Two clock tokens separated by a hyphen or en-dash inside free text,
// e.g. "Open 9am - 5pm" or "10:30am–6pm".
var textRange = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:am|pm))\s*[-–]\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm))`)

// ExtractWindow determines the open/close window for one date entry.
// Structured from/to fields win when both are present; otherwise the window
// is recovered from free text; otherwise no time information exists and an
// ExtractionError is returned.
//
// A close that parses to midnight ("12:00AM", "12am") denotes the end of the
// day and rolls the close instant to the following date. Any other close
// before the open cannot be represented and is an ExtractionError, keeping
// minutes non-negative on every window.
func ExtractWindow(date, from, to, text string) (Window, error) {
	switch {
	case from != "" && to != "":
		return extractStructured(date, from, to)
	case text != "":
		return extractFromText(date, text)
	default:
		return Window{}, errs.NewExtraction("hours.ExtractWindow", "unable to extract times", nil)
	}
}

func extractStructured(date, from, to string) (Window, error) {
	open, err := parseInstant(date, from)
	if err != nil {
		return Window{}, errs.NewExtraction("hours.extractStructured", "unable to extract times", err)
	}

	close, err := parseInstant(date, to)
	if err != nil {
		return Window{}, errs.NewExtraction("hours.extractStructured", "unable to extract times", err)
	}

	// a midnight close is the end of this date, not its start
	if close.Hour() == 0 && close.Minute() == 0 {
		close = close.AddDate(0, 0, 1)
	} else if close.Before(open) {
		return Window{}, errs.NewExtraction("hours.extractStructured", "close time precedes open time", nil)
	}

	return Window{Open: open, Close: close}, nil
}

func extractFromText(date, text string) (Window, error) {
	m := textRange.FindStringSubmatch(text)
	if m == nil {
		return Window{}, errs.NewExtraction("hours.extractFromText", "unable to extract times from text", nil)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return Window{}, errs.NewExtraction("hours.extractFromText", "invalid date", err)
	}

	openTod, err := ParseClockToken(m[1])
	if err != nil {
		return Window{}, errs.NewExtraction("hours.extractFromText", "unable to extract times from text", err)
	}
	closeTod, err := ParseClockToken(m[2])
	if err != nil {
		return Window{}, errs.NewExtraction("hours.extractFromText", "unable to extract times from text", err)
	}

	open := day.Add(todOffset(openTod))
	close := day.Add(todOffset(closeTod))
	if closeTod.Hour == 0 && closeTod.Minute == 0 {
		close = close.AddDate(0, 0, 1)
	} else if close.Before(open) {
		return Window{}, errs.NewExtraction("hours.extractFromText", "close time precedes open time", nil)
	}

	return Window{Open: open, Close: close}, nil
}

func parseInstant(date, clock string) (time.Time, error) {
	s := date + " " + strings.ToLower(strings.TrimSpace(clock))
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewParse("hours.parseInstant", "not a 12-hour clock time", clock)
}

func todOffset(t TimeOfDay) time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute
}
