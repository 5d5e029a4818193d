package storage

import (
	"context"
	"fmt"
	"io"
)

// Open builds the backend named by cfg. The returned closer releases any
// connection the backend holds and is never nil.
func Open(ctx context.Context, cfg Config) (Blob, io.Closer, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	case BackendNone:
		return &Memory{Disabled: true}, nopCloser{}, nil
	case BackendFile, "":
		f, err := NewFile(cfg.Dir)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return f, nopCloser{}, nil
	case BackendSQLite:
		s, err := NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, s, nil
	case BackendRedis:
		r := NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return r, r, nil
	case BackendS3:
		s, err := NewS3(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
