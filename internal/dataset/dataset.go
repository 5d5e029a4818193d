package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://aicivsim.local/schemas/dataset.schema.json"

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load dataset schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	return s, nil
})

// #region loader

// Parse validates data against the dataset schema and decodes it.
func Parse(data []byte) (*scenario.Dataset, error) {
	schema, err := compiled()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	var ds scenario.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}

// Load reads and parses a dataset file.
func Load(path string) (*scenario.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadOrEmpty loads path, falling back to an empty dataset on any failure so
// callers show "no data" instead of exiting. Invariant violations are logged
// but do not reject the dataset.
func LoadOrEmpty(path string, log *zap.Logger) *scenario.Dataset {
	if log == nil {
		log = zap.NewNop()
	}
	ds, err := Load(path)
	if err != nil {
		log.Warn("dataset unavailable", zap.String("path", path), zap.Error(err))
		return &scenario.Dataset{}
	}
	if err := Check(ds); err != nil {
		log.Warn("dataset invariants violated", zap.String("path", path), zap.Error(err))
	}
	log.Debug("dataset loaded", zap.String("path", path), zap.Int("scenarios", len(ds.Scenarios)))
	return ds
}

// #endregion loader
