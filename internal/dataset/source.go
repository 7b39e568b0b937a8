package dataset

import (
	"fmt"

	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
)

// Source loads the six-table snapshot from some backing store.
type Source interface {
	Load() (*Dataset, error)
}

// Open picks the loader named by the configuration.
func Open(cfg models.Data) (Source, error) {
	switch cfg.Source {
	case models.SourceCSV:
		return NewCSVLoader(cfg.Dir), nil
	case models.SourceSQLite:
		if cfg.SQLitePath == "" {
			return nil, errs.ConfigError("data.sqlite_path must be set when data.source is sqlite", "data.sqlite_path")
		}
		return NewSQLiteLoader(cfg.SQLitePath), nil
	default:
		return nil, errs.ConfigError(fmt.Sprintf("unknown data source %q", cfg.Source), "data.source")
	}
}
