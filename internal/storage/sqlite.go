package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/reillydonovan/aicivsim-sub000/internal/logging"
)

// #region schema
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blob_versions (
	version_id    TEXT PRIMARY KEY,
	blob_key      TEXT NOT NULL,
	parent_id     TEXT,
	data          BLOB NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES blob_versions(version_id)
);

CREATE INDEX IF NOT EXISTS blob_versions_key ON blob_versions(blob_key);

CREATE TABLE IF NOT EXISTS active_blob (
	blob_key      TEXT PRIMARY KEY,
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES blob_versions(version_id)
);
`

// #endregion schema

// #region store-struct
// SQLite keeps every written version of a key and an active pointer per key,
// so a bad write can be rolled back.
type SQLite struct {
	db *sql.DB
}

// Version is one stored revision of a key.
type Version struct {
	VersionID string
	Key       string
	ParentID  string
	Size      int
	CreatedAt time.Time
}

// #endregion store-struct

// #region constructor
// NewSQLite opens a SQLite database and runs migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(sqliteSchema + logging.Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region get
// Get reads the active version of key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT v.data FROM active_blob a
		 JOIN blob_versions v ON v.version_id = a.version_id
		 WHERE a.blob_key = ?`, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, errors.Join(ErrUnavailable, err))
	}
	return data, nil
}

// #endregion get

// #region put
// Put inserts a new version and moves the active pointer atomically.
func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.PutVersion(ctx, key, data)
	return err
}

// PutVersion is Put that also returns the new version id.
func (s *SQLite) PutVersion(ctx context.Context, key string, data []byte) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parent sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT version_id FROM active_blob WHERE blob_key = ?`, key).Scan(&parent)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("read active: %w", err)
	}

	var parentPtr interface{}
	if parent.Valid {
		parentPtr = parent.String
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO blob_versions (version_id, blob_key, parent_id, data, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, key, parentPtr, data, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO active_blob (blob_key, version_id) VALUES (?, ?)
		 ON CONFLICT(blob_key) DO UPDATE SET version_id = excluded.version_id`,
		key, id,
	)
	if err != nil {
		return "", fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// #endregion put

// #region rollback
// Rollback points key at a previous version.
func (s *SQLite) Rollback(ctx context.Context, key, versionID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blob_versions WHERE version_id = ? AND blob_key = ?`, versionID, key,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s of %s not found", versionID, key)
	}

	_, err = s.db.ExecContext(ctx, `UPDATE active_blob SET version_id = ? WHERE blob_key = ?`, versionID, key)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list-versions
// ListVersions returns the most recent versions of key, newest first.
func (s *SQLite) ListVersions(ctx context.Context, key string, limit int) ([]Version, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT version_id, blob_key, parent_id, length(data), created_at
		 FROM blob_versions WHERE blob_key = ? ORDER BY rowid DESC LIMIT ?`, key, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		var v Version
		var parentID sql.NullString
		var createdStr string
		if err := rows.Scan(&v.VersionID, &v.Key, &parentID, &v.Size, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			v.ParentID = parentID.String
		}
		v.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// #endregion list-versions

// #region audit
// Record writes a lab note action to the audit log.
func (s *SQLite) Record(ctx context.Context, entry logging.ActionEntry) error {
	return logging.LogAction(ctx, s.db, entry)
}

// #endregion audit
