package export

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"libcal-hours-export/internal/models"
	errs "libcal-hours-export/pkg/errors"
)

const insertHoursSQL = `INSERT INTO libcal_hours
	(libcal_location_id, libcal_location_name, libcal_date, libcal_status,
	 libcal_from, libcal_to, open_time, close_time, minutes_open,
	 libcal_text, libcal_note)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Warehouse loads output rows directly into the reporting database. All rows
// of a run are inserted in a single transaction so a failed run leaves no
// partial load behind.
type Warehouse struct {
	conn         *sql.DB
	writeTimeout time.Duration

	tx   *sql.Tx
	stmt *sql.Stmt
}

func NewWarehouse(dsn string, maxOpenConns int, writeTimeout time.Duration) (*Warehouse, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errs.NewDB("export.NewWarehouse", "cannot open reporting database", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetConnMaxLifetime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errs.NewDB("export.NewWarehouse", "cannot reach reporting database", err)
	}

	return &Warehouse{conn: conn, writeTimeout: writeTimeout}, nil
}

// Begin opens the load transaction and prepares the insert statement.
func (w *Warehouse) Begin(ctx context.Context) error {
	tx, err := w.conn.BeginTx(ctx, nil)
	if err != nil {
		return errs.NewDB("warehouse.Begin", "cannot begin transaction", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertHoursSQL)
	if err != nil {
		tx.Rollback()
		return errs.NewDB("warehouse.Begin", "cannot prepare insert", err)
	}

	w.tx = tx
	w.stmt = stmt
	return nil
}

// WriteRow implements models.RowSink.
func (w *Warehouse) WriteRow(row models.OutputRow) error {
	if w.stmt == nil {
		return errs.NewDB("warehouse.WriteRow", "load transaction not started", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	_, err := w.stmt.ExecContext(ctx,
		row.LocationID, row.LocationName, row.Date, row.Status,
		row.From, row.To, row.OpenTime, row.CloseTime, row.MinutesOpen,
		row.Text, row.Note)
	if err != nil {
		return errs.NewDB("warehouse.WriteRow", "insert failed", err)
	}
	return nil
}

// Commit finishes the load transaction.
func (w *Warehouse) Commit(ctx context.Context) error {
	if w.tx == nil {
		return errs.NewDB("warehouse.Commit", "load transaction not started", nil)
	}
	w.stmt.Close()
	if err := w.tx.Commit(); err != nil {
		return errs.NewDB("warehouse.Commit", "commit failed", err)
	}
	w.tx, w.stmt = nil, nil
	return nil
}

// Close rolls back any unfinished transaction and closes the connection.
func (w *Warehouse) Close() error {
	if w.tx != nil {
		w.tx.Rollback()
		w.tx, w.stmt = nil, nil
	}
	return w.conn.Close()
}
