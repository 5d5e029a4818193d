package logging

import "time"

// #region action-entry
// Action names a lab note mutation.
type Action string

const (
	ActionSave     Action = "save"
	ActionDelete   Action = "delete"
	ActionRollback Action = "rollback"
)

// ActionEntry is a single row in the labnote_log table.
type ActionEntry struct {
	NoteID     string
	Action     Action
	ScenarioID string
	Year       int
	Score      int
	VersionID  string // blob version written by the action, if any
	Detail     string
	CreatedAt  time.Time
}

// #endregion action-entry
