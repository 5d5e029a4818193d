package labnote

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reillydonovan/aicivsim-sub000/internal/logging"
	"github.com/reillydonovan/aicivsim-sub000/internal/storage"
)

// DefaultKey is the storage key holding the whole note collection.
const DefaultKey = "aicivsim.labnotes"

// #region store-struct
// Auditor receives a record of every persisted mutation.
type Auditor interface {
	Record(ctx context.Context, entry logging.ActionEntry) error
}

// versioned blobs keep every write as a revision and report its id.
type versioned interface {
	PutVersion(ctx context.Context, key string, data []byte) (string, error)
}

// Store holds the note collection in memory, most recent first, and writes
// the whole collection back to its blob after every mutation. If the blob is
// unavailable when the store opens, the store is disabled: List is empty and
// Save and Delete do nothing. No method returns an error.
type Store struct {
	blob    storage.Blob
	key     string
	log     *zap.Logger
	auditor Auditor
	now     func() time.Time
	newID   func() string

	notes   []Note
	enabled bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAuditor records mutations. Blobs that implement Auditor are used
// automatically when no auditor is given.
func WithAuditor(a Auditor) Option {
	return func(s *Store) { s.auditor = a }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// #endregion store-struct

// #region open
// Open loads the collection once. It never fails: an unreachable blob yields
// a disabled store and a corrupt collection yields an empty one.
func Open(ctx context.Context, blob storage.Blob, opts ...Option) *Store {
	s := &Store{
		blob:  blob,
		key:   DefaultKey,
		log:   zap.NewNop(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.auditor == nil {
		if a, ok := blob.(Auditor); ok {
			s.auditor = a
		}
	}

	if blob == nil {
		s.log.Warn("lab notes disabled: no storage configured")
		return s
	}

	data, err := blob.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.enabled = true
	case err != nil:
		s.log.Warn("lab notes disabled: storage unavailable", zap.String("key", s.key), zap.Error(err))
	default:
		s.enabled = true
		if err := json.Unmarshal(data, &s.notes); err != nil {
			s.log.Warn("discarding unreadable lab notes", zap.String("key", s.key), zap.Error(err))
			s.notes = nil
		}
	}
	return s
}

// Enabled reports whether notes are being persisted.
func (s *Store) Enabled() bool {
	return s.enabled
}

// #endregion open

// #region queries
// List returns all notes, most recent first.
func (s *Store) List() []Note {
	if !s.enabled {
		return []Note{}
	}
	return slices.Clone(s.notes)
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, bool) {
	if !s.enabled {
		return Note{}, false
	}
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Restore returns the scenario and trajectory position to re-point the view at.
func (s *Store) Restore(id string) (RestorePoint, bool) {
	n, ok := s.Get(id)
	if !ok {
		return RestorePoint{}, false
	}
	return RestorePoint{ScenarioID: n.ScenarioID, YearIndex: n.YearIndex}, true
}

// #endregion queries

// #region mutations
// Save assigns an id and timestamp when missing, prepends the note and
// persists the collection. The returned note carries the assigned fields
// even when the store is disabled and nothing was written.
func (s *Store) Save(ctx context.Context, n Note) Note {
	if n.ID == "" {
		n.ID = s.newID()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = s.now()
	}
	if !s.enabled {
		s.log.Debug("lab note not saved: storage disabled", zap.String("id", n.ID))
		return n
	}
	if existing, ok := s.Get(n.ID); ok {
		return existing
	}

	prev := s.notes
	s.notes = append([]Note{n}, prev...)
	version, ok := s.persist(ctx)
	if !ok {
		s.notes = prev
		return n
	}
	s.audit(ctx, logging.ActionEntry{
		NoteID:     n.ID,
		Action:     logging.ActionSave,
		VersionID:  version,
		ScenarioID: n.ScenarioID,
		Year:       n.Year,
		Score:      n.CompositeScore,
		Detail:     n.Title,
	})
	return n
}

// Delete removes the note with id and persists the collection. It reports
// whether a note was removed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	if !s.enabled {
		return false
	}
	idx := slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	removed := s.notes[idx]

	prev := s.notes
	s.notes = slices.Delete(slices.Clone(prev), idx, idx+1)
	version, ok := s.persist(ctx)
	if !ok {
		s.notes = prev
		return false
	}
	s.audit(ctx, logging.ActionEntry{
		NoteID:     id,
		Action:     logging.ActionDelete,
		VersionID:  version,
		ScenarioID: removed.ScenarioID,
		Year:       removed.Year,
		Score:      removed.CompositeScore,
	})
	return true
}

// Reload re-reads the collection from storage, e.g. after a rollback.
func (s *Store) Reload(ctx context.Context) {
	fresh := Open(ctx, s.blob, WithKey(s.key), WithLogger(s.log), WithAuditor(s.auditor), WithClock(s.now))
	s.notes, s.enabled = fresh.notes, fresh.enabled
}

// #endregion mutations

// #region persistence
// persist writes the collection and returns the revision id when the blob
// keeps versions.
func (s *Store) persist(ctx context.Context) (string, bool) {
	notes := s.notes
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		s.log.Warn("encode lab notes", zap.Error(err))
		return "", false
	}
	var version string
	if v, ok := s.blob.(versioned); ok {
		version, err = v.PutVersion(ctx, s.key, data)
	} else {
		err = s.blob.Put(ctx, s.key, data)
	}
	if err != nil {
		s.log.Warn("lab notes not persisted", zap.String("key", s.key), zap.Error(err))
		return "", false
	}
	return version, true
}

func (s *Store) audit(ctx context.Context, entry logging.ActionEntry) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Record(ctx, entry); err != nil {
		s.log.Warn("audit lab note action", zap.String("action", string(entry.Action)), zap.Error(err))
	}
}

// #endregion persistence
