package logging

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-action-tests
func TestLogAction_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()
	ctx := context.Background()

	entry := ActionEntry{
		NoteID:     "n1",
		Action:     ActionSave,
		ScenarioID: "aggressive",
		Year:       2041,
		Score:      73,
		VersionID:  "v1",
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := LogAction(ctx, db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM labnote_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	got, err := RecentActions(ctx, db, 10)
	if err != nil {
		t.Fatalf("RecentActions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].NoteID != "n1" || got[0].Action != ActionSave || got[0].Score != 73 {
		t.Errorf("unexpected entry %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", entry.CreatedAt, got[0].CreatedAt)
	}
}

func TestLogAction_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	before := time.Now().UTC()
	if err := LogAction(context.Background(), db, ActionEntry{NoteID: "n2", Action: ActionDelete}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM labnote_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogAction_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	if err := LogAction(context.Background(), db, ActionEntry{NoteID: "n3", Action: ActionDelete}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var scenarioID, versionID, detail sql.NullString
	db.QueryRow("SELECT scenario_id, version_id, detail FROM labnote_log").Scan(&scenarioID, &versionID, &detail)
	if scenarioID.Valid || versionID.Valid || detail.Valid {
		t.Error("expected NULL for empty optional fields")
	}
}

func TestRecentActions_NewestFirst(t *testing.T) {
	db := setupDB(t)
	defer db.Close()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := LogAction(ctx, db, ActionEntry{NoteID: id, Action: ActionSave}); err != nil {
			t.Fatalf("LogAction: %v", err)
		}
	}
	got, err := RecentActions(ctx, db, 2)
	if err != nil {
		t.Fatalf("RecentActions: %v", err)
	}
	if len(got) != 2 || got[0].NoteID != "c" || got[1].NoteID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestLogAction_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	if err := LogAction(context.Background(), db, ActionEntry{NoteID: "n4", Action: ActionSave}); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-action-tests

// #region null-if-empty-tests
func TestNullIfEmpty(t *testing.T) {
	if nullIfEmpty("") != nil {
		t.Error("expected nil for empty string")
	}
	if nullIfEmpty("hello") != "hello" {
		t.Error("expected passthrough for non-empty string")
	}
}

// #endregion null-if-empty-tests
