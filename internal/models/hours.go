package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Schedule statuses as reported by the LibCal Hours API. Anything else is
// treated as unknown and skipped with a diagnostic.
const (
	StatusOpen    = "open"
	StatusText    = "text"
	Status24Hours = "24hours"
	StatusClosed  = "closed"
)

// Location is one element of the LibCal hours payload: a library location and
// its per-date schedule entries. Immutable for the run.
type Location struct {
	LID   int64       `json:"lid"`
	Name  string      `json:"name"`
	Dates DateEntries `json:"dates"`
}

// DateEntries maps ISO dates (YYYY-MM-DD) to schedule entries. LibCal
// serializes an empty set as a JSON array instead of an object; both mean
// "no entries" and decode to a nil map.
type DateEntries map[string]DateEntry

func (d *DateEntries) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null")) {
		*d = nil
		return nil
	}
	var m map[string]DateEntry
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*d = m
	return nil
}

// DateEntry is the schedule state for one location on one date.
type DateEntry struct {
	Status string      `json:"status"`
	Hours  []HourRange `json:"hours,omitempty"`
	Text   string      `json:"text,omitempty"`
	Note   string      `json:"note,omitempty"`
}

// HourRange is one open/close window within a day, as raw clock-time text
// from the source (e.g. "9:00am", "12:00AM"). No implicit date.
type HourRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OutputRow is the flattened record written to the sink: one row per
// (location, date, sub-range or status shortcut). Every row carries all
// fields even when normalization failed, so downstream loading never sees a
// short row.
type OutputRow struct {
	LocationID   int64
	LocationName string
	Date         string
	Status       string
	From         string
	To           string
	OpenTime     string
	CloseTime    string
	MinutesOpen  int
	Text         string
	Note         string
}

// Fields returns the row values in output column order, empty string for
// unset optionals.
func (r OutputRow) Fields() []string {
	return []string{
		strconv.FormatInt(r.LocationID, 10),
		r.LocationName,
		r.Date,
		r.Status,
		r.From,
		r.To,
		r.OpenTime,
		r.CloseTime,
		strconv.Itoa(r.MinutesOpen),
		r.Text,
		r.Note,
	}
}

// RowSink accepts ordered output rows. Implementations: the CSV emitter and
// the optional warehouse loader. Rows arrive in the deterministic order
// produced by the row builder; sinks are written sequentially.
type RowSink interface {
	WriteRow(row OutputRow) error
}
