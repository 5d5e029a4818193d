package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/reillydonovan/aicivsim-sub000/internal/labnote"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
	"github.com/reillydonovan/aicivsim-sub000/internal/storage"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "SIMLAB_"

// #region config
// Config is the full runtime configuration. Precedence, lowest first:
// defaults, the YAML file, SIMLAB_* environment variables.
type Config struct {
	Dataset   string `yaml:"dataset" env:"DATASET"`
	NotesKey  string `yaml:"notes_key" env:"NOTES_KEY"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`

	Storage storage.Config `yaml:"storage" envPrefix:"STORAGE_"`
	Score   score.Config   `yaml:"score" envPrefix:"SCORE_"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset:   "scenarios.json",
		NotesKey:  labnote.DefaultKey,
		LogLevel:  "info",
		LogFormat: "console",
		Storage:   storage.DefaultConfig(),
		Score:     score.DefaultConfig(),
	}
}

// #endregion config

// #region load
// Load applies the YAML file at path (skipped when path is empty) and then the
// environment on top of the defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error

	if c.Dataset == "" {
		errs = append(errs, errors.New("dataset path is empty"))
	}
	if c.NotesKey == "" {
		errs = append(errs, errors.New("notes key is empty"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q: want console or json", c.LogFormat))
	}

	switch c.Storage.Backend {
	case storage.BackendMemory, storage.BackendNone:
	case storage.BackendFile:
		if c.Storage.Dir == "" {
			errs = append(errs, errors.New("storage dir is empty"))
		}
	case storage.BackendSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite path is empty"))
		}
	case storage.BackendRedis:
		if c.Storage.RedisAddr == "" {
			errs = append(errs, errors.New("redis address is empty"))
		}
	case storage.BackendS3:
		if c.Storage.S3Bucket == "" {
			errs = append(errs, errors.New("s3 bucket is empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}

	gov := c.Score.Governance
	if gov.TrustThreshold <= 0 || gov.TrustThreshold > 1 {
		errs = append(errs, fmt.Errorf("trust threshold %.3f outside (0, 1]", gov.TrustThreshold))
	}
	if gov.GapMargin < 0 || gov.GapMargin > 1 {
		errs = append(errs, fmt.Errorf("gap margin %.3f outside [0, 1]", gov.GapMargin))
	}
	if gov.GapPenalty < 0 {
		errs = append(errs, fmt.Errorf("gap penalty %.3f is negative", gov.GapPenalty))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// #endregion load
