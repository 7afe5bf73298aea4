package telemetry

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the persistent event log. It survives restarts so
// balance analysis can look at play sessions after the fact.
type SQLiteRepository struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			ts TEXT NOT NULL,
			metadata TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
		CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init events schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO events (type, ts, metadata) VALUES (?, ?, ?)`,
		string(eventType),
		time.Now().UTC().Format(time.RFC3339Nano),
		string(metadataJSON),
	)
	return err
}

func (r *SQLiteRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	rows, err := r.db.Query(
		`SELECT id, type, ts, metadata FROM events WHERE ts >= ? ORDER BY id`,
		since.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for rows.Next() {
		var (
			ev Event
			ts string
		)
		if err := rows.Scan(&ev.ID, &ev.Type, &ts, &ev.Metadata); err != nil {
			return nil, err
		}
		if len(eventTypes) > 0 && !typeFilter[ev.Type] {
			continue
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		ev.Timestamp = parsed
		result = append(result, ev)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM events`)
	return err
}

// Tee records every event to each underlying recorder. Failures from
// secondary recorders do not fail the write.
type Tee struct {
	Primary Repository
	Others  []Recorder
}

func (t Tee) RecordEvent(eventType EventType, metadata EventMetadata) error {
	err := t.Primary.RecordEvent(eventType, metadata)
	for _, o := range t.Others {
		_ = o.RecordEvent(eventType, metadata)
	}
	return err
}

func (t Tee) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	return t.Primary.GetEvents(since, eventTypes)
}

func (t Tee) Clear() error {
	return t.Primary.Clear()
}
