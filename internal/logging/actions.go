package logging

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// #region schema
// Schema creates the labnote_log table. Backends that keep an audit trail run
// it alongside their own migrations.
const Schema = `
CREATE TABLE IF NOT EXISTS labnote_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id       TEXT NOT NULL,
	action        TEXT NOT NULL,
	scenario_id   TEXT,
	year          INTEGER,
	score         INTEGER,
	version_id    TEXT,
	detail        TEXT,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region log-action
// LogAction writes an audit entry to the labnote_log table.
func LogAction(ctx context.Context, db *sql.DB, entry ActionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO labnote_log (note_id, action, scenario_id, year, score, version_id, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.NoteID,
		string(entry.Action),
		nullIfEmpty(entry.ScenarioID),
		entry.Year,
		entry.Score,
		nullIfEmpty(entry.VersionID),
		nullIfEmpty(entry.Detail),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log action: %w", err)
	}
	return nil
}

// RecentActions returns the newest entries first.
func RecentActions(ctx context.Context, db *sql.DB, limit int) ([]ActionEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT note_id, action, scenario_id, year, score, version_id, detail, created_at
		 FROM labnote_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent actions: %w", err)
	}
	defer rows.Close()

	var out []ActionEntry
	for rows.Next() {
		var e ActionEntry
		var action, createdStr string
		var scenarioID, versionID, detail sql.NullString
		if err := rows.Scan(&e.NoteID, &action, &scenarioID, &e.Year, &e.Score, &versionID, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Action = Action(action)
		e.ScenarioID = scenarioID.String
		e.VersionID = versionID.String
		e.Detail = detail.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion log-action

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
