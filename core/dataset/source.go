package dataset

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tablediff/core/storage"

	"gorm.io/gorm"
)

const (
	schemeS3   = "s3://"
	schemeDB   = "db://"
	schemeFile = "file://"
)

// Source yields a header and rows from one location.
type Source interface {
	// Name returns the location the source reads from.
	Name() string

	// Load reads the whole dataset into memory.
	Load(ctx context.Context) (*Dataset, error)
}

// Opener resolves dataset locations to sources. Storage and DB are optional;
// locations that need a missing backend fail with ErrUnsupportedSource.
type Opener struct {
	Storage storage.Client
	DB      *gorm.DB
}

// Open returns the Source for a location:
//
//	s3://bucket/path/export.csv   object storage (CSV or XLSX by extension)
//	db://table                    table in the configured database
//	book.xlsx#Sheet2              spreadsheet, optional sheet name
//	anything else                 CSV file on disk
func (o *Opener) Open(location string) (Source, error) {
	switch {
	case strings.HasPrefix(location, schemeS3):
		if o.Storage == nil {
			return nil, fmt.Errorf("%w: %s requires storage configuration", ErrUnsupportedSource, location)
		}
		bucket, key, ok := strings.Cut(strings.TrimPrefix(location, schemeS3), "/")
		if !ok || bucket == "" || key == "" {
			return nil, unreadable(location, fmt.Errorf("expected s3://bucket/key"))
		}
		return NewObjectSource(o.Storage, bucket, key), nil

	case strings.HasPrefix(location, schemeDB):
		if o.DB == nil {
			return nil, fmt.Errorf("%w: %s requires database configuration", ErrUnsupportedSource, location)
		}
		table := strings.TrimPrefix(location, schemeDB)
		if table == "" {
			return nil, unreadable(location, fmt.Errorf("expected db://table"))
		}
		return NewTableSource(o.DB, table), nil
	}

	path := strings.TrimPrefix(location, schemeFile)
	if file, sheet, ok := splitSheet(path); ok {
		return NewExcelSource(file, sheet), nil
	}
	return NewCSVSource(path), nil
}

// Load opens a location and reads it.
func (o *Opener) Load(ctx context.Context, location string) (*Dataset, error) {
	src, err := o.Open(location)
	if err != nil {
		return nil, err
	}
	return src.Load(ctx)
}

// Read parses an in-memory stream, such as an upload, picking the format
// from name: "book.xlsx#Sheet" reads a spreadsheet, anything else CSV.
func Read(name string, r io.Reader) (*Dataset, error) {
	if _, sheet, ok := splitSheet(name); ok {
		return ReadExcel(name, r, sheet)
	}
	return ReadCSV(name, r)
}

// splitSheet recognises spreadsheet paths, with an optional "#Sheet" suffix.
func splitSheet(path string) (file, sheet string, ok bool) {
	file = path
	if i := strings.LastIndex(path, "#"); i >= 0 && isSpreadsheet(path[:i]) {
		file, sheet = path[:i], path[i+1:]
	}
	return file, sheet, isSpreadsheet(file)
}

func isSpreadsheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}
