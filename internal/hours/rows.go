package hours

import (
	"fmt"
	"log/slog"
	"sort"

	"libcal-hours-export/internal/models"
)

// minutesFullDay is what a "24hours" status reports regardless of any other
// fields on the entry.
const minutesFullDay = 1440

// Builder walks a fetched hours document and streams one output row per
// (location, date, sub-range or status shortcut) into a sink. Order is
// deterministic: locations in document order, dates ascending (ISO strings
// sort chronologically), sub-ranges in document order.
type Builder struct {
	logger *slog.Logger
	rename map[int64]string // optional display-name overrides by LID
}

func NewBuilder(logger *slog.Logger, rename map[int64]string) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger, rename: rename}
}

// Report summarizes a row-generation pass. Fallbacks and Skipped are normal
// outcomes for messy source data, not run failures.
type Report struct {
	Rows      int // rows written to the sink
	Fallbacks int // rows emitted with blank normalized fields
	Skipped   int // unknown-status entries dropped with a diagnostic
}

// Run generates rows for the whole document. Per-entry normalization
// failures degrade to placeholder rows; only sink write errors abort the
// pass.
func (b *Builder) Run(locations []models.Location, sink models.RowSink) (Report, error) {
	var report Report

	for _, loc := range locations {
		name := loc.Name
		if override, ok := b.rename[loc.LID]; ok {
			name = override
		}

		// empty dict and empty list both mean "no entries"
		if len(loc.Dates) == 0 {
			continue
		}

		dates := make([]string, 0, len(loc.Dates))
		for d := range loc.Dates {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		for _, date := range dates {
			entry := loc.Dates[date]
			if err := b.emitEntry(&report, sink, loc.LID, name, date, entry); err != nil {
				return report, fmt.Errorf("writing rows for lid=%d date=%s: %w", loc.LID, date, err)
			}
		}
	}

	return report, nil
}

func (b *Builder) emitEntry(report *Report, sink models.RowSink, lid int64, name, date string, entry models.DateEntry) error {
	base := models.OutputRow{
		LocationID:   lid,
		LocationName: name,
		Date:         date,
		Status:       entry.Status,
		Text:         entry.Text,
		Note:         entry.Note,
	}

	switch entry.Status {
	case models.StatusOpen:
		for _, hr := range entry.Hours {
			row := base
			row.From = hr.From
			row.To = hr.To
			b.applyWindow(report, &row, date, hr.From, hr.To, "")
			if err := sink.WriteRow(row); err != nil {
				return err
			}
			report.Rows++
		}

	case models.StatusText:
		row := base
		b.applyWindow(report, &row, date, "", "", entry.Text)
		if err := sink.WriteRow(row); err != nil {
			return err
		}
		report.Rows++

	case models.Status24Hours:
		row := base
		row.MinutesOpen = minutesFullDay
		if err := sink.WriteRow(row); err != nil {
			return err
		}
		report.Rows++

	case models.StatusClosed:
		row := base
		row.MinutesOpen = 0
		if err := sink.WriteRow(row); err != nil {
			return err
		}
		report.Rows++

	default:
		report.Skipped++
		b.logger.Warn("skipping unknown status",
			"status", entry.Status, "lid", lid, "name", name, "date", date)
	}

	return nil
}

// applyWindow fills the normalized fields on row, falling back to blanks and
// zero minutes with a diagnostic when the window cannot be recovered.
func (b *Builder) applyWindow(report *Report, row *models.OutputRow, date, from, to, text string) {
	window, err := ExtractWindow(date, from, to, text)
	if err != nil {
		report.Fallbacks++
		b.logger.Warn("unable to normalize hours, emitting row without times",
			"reason", err.Error(),
			"lid", row.LocationID, "name", row.LocationName, "date", date,
			"from", from, "to", to, "text", text)
		return
	}

	n := Normalize(window)
	row.OpenTime = n.OpenTime
	row.CloseTime = n.CloseTime
	row.MinutesOpen = n.MinutesOpen
}
