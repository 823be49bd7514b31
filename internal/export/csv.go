// Package export provides the row sinks: the CSV emitter and the optional
// reporting-database loader. Sinks are acquired once per run, passed
// explicitly, and released by the caller; there is no process-global writer.
package export

import (
	"encoding/csv"
	"io"

	"libcal-hours-export/internal/models"
)

// Header is the fixed output column order. The warehouse table uses the same
// columns, so CSV files and direct loads stay interchangeable.
var Header = []string{
	"libcal_location_id",
	"libcal_location_name",
	"libcal_date",
	"libcal_status",
	"libcal_from",
	"libcal_to",
	"open_time",
	"close_time",
	"minutes_open",
	"libcal_text",
	"libcal_note",
}

// CSVEmitter writes rows to an io.Writer in the fixed column order.
type CSVEmitter struct {
	w *csv.Writer
}

func NewCSVEmitter(w io.Writer) *CSVEmitter {
	return &CSVEmitter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header row. Call once, before any data row.
func (e *CSVEmitter) WriteHeader() error {
	return e.w.Write(Header)
}

// WriteRow implements models.RowSink.
func (e *CSVEmitter) WriteRow(row models.OutputRow) error {
	return e.w.Write(row.Fields())
}

// Flush writes buffered rows through to the underlying writer and reports
// any deferred write error.
func (e *CSVEmitter) Flush() error {
	e.w.Flush()
	return e.w.Error()
}

// MultiSink fans every row out to each sink in order. The first write error
// stops the fan-out.
func MultiSink(sinks ...models.RowSink) models.RowSink {
	return multiSink(sinks)
}

type multiSink []models.RowSink

func (m multiSink) WriteRow(row models.OutputRow) error {
	for _, s := range m {
		if err := s.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}
