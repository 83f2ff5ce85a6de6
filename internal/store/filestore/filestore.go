package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/labeler/internal/model"
	"github.com/idilsaglam/labeler/internal/store/lockfile"
)

// File-backed export. One record per item, in list order, human-readable.
// Writes go through a temp file and a rename so a failed export never
// leaves a half-written dump behind.

type Codec string

const (
	JSON Codec = "json"
	YAML Codec = "yaml"
	TOML Codec = "toml"
)

// Ext returns the file extension used for the codec's default file name.
func (c Codec) Ext() string { return "." + string(c) }

// document wraps records for formats that need a top-level table.
type document struct {
	Items []model.Record `toml:"item"`
}

func (c Codec) encode(records []model.Record) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}
	switch c {
	case JSON:
		return json.MarshalIndent(records, "", "  ")
	case YAML:
		return yaml.Marshal(records)
	case TOML:
		return toml.Marshal(document{Items: records})
	}
	return nil, fmt.Errorf("unknown codec %q", string(c))
}

// Decode parses a dump written by this package. Only tests read dumps back.
func (c Codec) Decode(b []byte) ([]model.Record, error) {
	var records []model.Record
	switch c {
	case JSON:
		if err := json.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case TOML:
		var doc document
		if err := toml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("toml unmarshal: %w", err)
		}
		records = doc.Items
	default:
		return nil, fmt.Errorf("unknown codec %q", string(c))
	}
	return records, nil
}

// Store writes records to a single file.
type Store struct {
	path  string
	codec Codec
}

func New(path string, codec Codec) *Store {
	return &Store{path: path, codec: codec}
}

func (s *Store) Path() string { return s.path }

// DefaultPath places name.ext in the working directory.
func DefaultPath(name string, codec Codec) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name+codec.Ext()), nil
}

// Write replaces the file with the encoded records while holding an
// exclusive lock on path.lock.
func (s *Store) Write(ctx context.Context, records []model.Record) (model.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return model.Receipt{}, err
	}
	b, err := s.codec.encode(records)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("%s marshal: %w", s.codec, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return model.Receipt{}, fmt.Errorf("mkdir: %w", err)
	}

	unlock, err := lockfile.Acquire(ctx, s.path)
	if err != nil {
		return model.Receipt{}, err
	}
	defer unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return model.Receipt{}, fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return model.Receipt{}, fmt.Errorf("rename: %w", err)
	}
	return model.Receipt{Location: s.path, Bytes: int64(len(b))}, nil
}
