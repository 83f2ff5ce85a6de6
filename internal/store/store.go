package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/labeler/internal/model"
	"github.com/idilsaglam/labeler/internal/store/filestore"
	"github.com/idilsaglam/labeler/internal/store/sqlitestore"
)

// baseName is the export file name used when no path is configured.
const baseName = "labels"

// Formats lists the accepted export formats.
var Formats = []string{"json", "yaml", "toml", "sqlite"}

// Sink is satisfied by every export backend.
type Sink interface {
	Write(ctx context.Context, records []model.Record) (model.Receipt, error)
	Path() string
}

// Open returns the sink for format. An empty path means labels.<ext> in the
// working directory.
func Open(format, path string) (Sink, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", "json", "yaml", "yml", "toml":
		codec := filestore.JSON
		switch format {
		case "yaml", "yml":
			codec = filestore.YAML
		case "toml":
			codec = filestore.TOML
		}
		if path == "" {
			p, err := filestore.DefaultPath(baseName, codec)
			if err != nil {
				return nil, err
			}
			path = p
		}
		return filestore.New(path, codec), nil
	case "sqlite", "sqlite3", "db":
		if path == "" {
			p, err := filestore.DefaultPath(baseName, "db")
			if err != nil {
				return nil, err
			}
			path = p
		}
		return sqlitestore.New(path), nil
	}
	return nil, fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
}
