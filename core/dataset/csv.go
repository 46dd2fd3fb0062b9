package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// CSVSource reads a comma separated file whose first record is the header.
type CSVSource struct {
	path string
}

// NewCSVSource creates a new CSV data source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return s.path }

func (s *CSVSource) Load(ctx context.Context) (*Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, unreadable(s.path, err)
	}
	defer f.Close()

	return ReadCSV(s.path, f)
}

// ReadCSV parses CSV content. Every record must have as many fields as the header.
func ReadCSV(name string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, unreadable(name, fmt.Errorf("missing header row"))
	}
	if err != nil {
		return nil, unreadable(name, fmt.Errorf("reading csv header: %w", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	ds := &Dataset{Name: name, Header: Header(header)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, unreadable(name, fmt.Errorf("reading csv record: %w", err))
		}
		ds.Rows = append(ds.Rows, Row(record))
	}

	return ds, nil
}
