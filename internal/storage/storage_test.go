package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reillydonovan/aicivsim-sub000/internal/logging"
)

// #region contract
// exerciseBlob runs the shared Blob contract against b.
func exerciseBlob(t *testing.T, b Blob) {
	t.Helper()
	ctx := context.Background()

	_, err := b.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Put(ctx, "notes", []byte(`[1]`)))
	got, err := b.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))

	require.NoError(t, b.Put(ctx, "notes", []byte(`[2,1]`)))
	got, err = b.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `[2,1]`, string(got))
}

func TestMemoryBlob(t *testing.T) {
	exerciseBlob(t, NewMemory())
}

func TestMemoryDisabled(t *testing.T) {
	m := &Memory{Disabled: true}
	_, err := m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, m.Put(context.Background(), "k", nil), ErrUnavailable)
}

func TestFileBlob(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	exerciseBlob(t, f)

	_, err = os.Stat(filepath.Join(dir, "notes.json"))
	assert.NoError(t, err)
}

func TestFileKeySanitized(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Put(context.Background(), "../escape", []byte("x")))

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "key must not escape the storage dir")
}

// #endregion contract

// #region sqlite
func tempSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteBlob(t *testing.T) {
	exerciseBlob(t, tempSQLite(t))
}

func TestSQLiteVersionsAndRollback(t *testing.T) {
	s := tempSQLite(t)
	ctx := context.Background()

	v1, err := s.PutVersion(ctx, "notes", []byte(`["a"]`))
	require.NoError(t, err)
	v2, err := s.PutVersion(ctx, "notes", []byte(`["b","a"]`))
	require.NoError(t, err)
	require.NotEqual(t, v1, v2)

	versions, err := s.ListVersions(ctx, "notes", 10)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, v2, versions[0].VersionID)
	assert.Equal(t, v1, versions[0].ParentID)
	assert.Equal(t, len(`["b","a"]`), versions[0].Size)

	require.NoError(t, s.Rollback(ctx, "notes", v1))
	got, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(got))
}

func TestSQLiteRollbackNonExistent(t *testing.T) {
	s := tempSQLite(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "notes", []byte(`[]`)))
	assert.Error(t, s.Rollback(ctx, "notes", "nonexistent-id"))
}

func TestSQLiteRecord(t *testing.T) {
	s := tempSQLite(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, logging.ActionEntry{NoteID: "n1", Action: logging.ActionSave, Score: 61}))

	entries, err := logging.RecentActions(ctx, s.DB(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 61, entries[0].Score)
}

// #endregion sqlite

// #region s3
type fakeS3 struct {
	objects map[string][]byte
	fail    error
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Blob(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	s := &S3{client: fake, bucket: "lab", prefix: "users/u1"}
	exerciseBlob(t, s)
	_, ok := fake.objects["lab/users/u1/notes.json"]
	assert.True(t, ok)
}

func TestS3Unavailable(t *testing.T) {
	s := &S3{client: &fakeS3{fail: errors.New("connection refused")}, bucket: "lab"}
	_, err := s.Get(context.Background(), "notes")
	assert.ErrorIs(t, err, ErrUnavailable)
}

// #endregion s3

// #region redis
func newMiniRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisWithClient(client), mr
}

func TestRedisBlob(t *testing.T) {
	r, mr := newMiniRedis(t)
	require.NoError(t, r.Ping(context.Background()))
	exerciseBlob(t, r)

	got, err := mr.Get("simlab:notes")
	require.NoError(t, err)
	assert.Equal(t, `[2,1]`, got)
	assert.False(t, mr.Exists("notes"), "keys are namespaced")
}

func TestRedisMissingKeyIsNotFound(t *testing.T) {
	r, mr := newMiniRedis(t)
	ctx := context.Background()

	_, err := r.Get(ctx, "aicivsim.labnotes")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)

	require.NoError(t, mr.Set("simlab:aicivsim.labnotes", `[]`))
	data, err := r.Get(ctx, "aicivsim.labnotes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestRedisUnavailable(t *testing.T) {
	r, mr := newMiniRedis(t)
	mr.Close()

	ctx := context.Background()
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	_, err := r.Get(ctx, "notes")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, r.Put(ctx, "notes", []byte(`[]`)), ErrUnavailable)
}

func TestRedisLiveServer(t *testing.T) {
	addr := os.Getenv("SIMLAB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SIMLAB_TEST_REDIS_ADDR not set")
	}
	r := NewRedis(addr, "", 0)
	defer r.Close()
	require.NoError(t, r.Ping(context.Background()))
	exerciseBlob(t, r)
}

// #endregion redis

// #region open
func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, c, err := Open(ctx, Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, b)
	assert.NoError(t, c.Close())

	b, _, err = Open(ctx, Config{Backend: BackendNone})
	require.NoError(t, err)
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)

	b, c, err = Open(ctx, Config{Backend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, b)
	assert.NoError(t, c.Close())

	_, _, err = Open(ctx, Config{Backend: "floppy"})
	assert.Error(t, err)

	_, _, err = Open(ctx, Config{Backend: BackendS3})
	assert.Error(t, err, "bucket is required")
}

// #endregion open
