package storage

import (
	"context"
	"errors"
)

// #region blob
// Blob persists whole serialized values under string keys. Lab notes are one
// value under one key, so backends only need get and put.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

var (
	// ErrNotFound means the key has never been written.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable means the medium is disabled or unreachable.
	ErrUnavailable = errors.New("storage: unavailable")
)

// #endregion blob

// #region config
// Backend names a Blob implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendS3     Backend = "s3"
	BackendNone   Backend = "none"
)

// Config selects and configures a backend.
type Config struct {
	Backend Backend `yaml:"backend" env:"BACKEND"`

	Dir string `yaml:"dir" env:"DIR"`

	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`

	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`

	S3Bucket string `yaml:"s3_bucket" env:"S3_BUCKET"`
	S3Prefix string `yaml:"s3_prefix" env:"S3_PREFIX"`
	S3Region string `yaml:"s3_region" env:"S3_REGION"`
}

// DefaultConfig is a file backend under .simlab in the working directory.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendFile,
		Dir:        ".simlab",
		SQLitePath: "simlab.db",
		RedisAddr:  "localhost:6379",
	}
}

// #endregion config
