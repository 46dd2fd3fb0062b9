package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads one sheet of an XLSX workbook; the first row is the header.
type ExcelSource struct {
	path  string
	sheet string
}

// NewExcelSource creates a spreadsheet source. An empty sheet selects the first sheet.
func NewExcelSource(path, sheet string) *ExcelSource {
	return &ExcelSource{path: path, sheet: sheet}
}

func (s *ExcelSource) Name() string {
	if s.sheet == "" {
		return s.path
	}
	return s.path + "#" + s.sheet
}

func (s *ExcelSource) Load(ctx context.Context) (*Dataset, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, unreadable(s.Name(), err)
	}
	defer f.Close()

	return readWorkbook(s.Name(), f, s.sheet)
}

// ReadExcel parses XLSX content from a stream.
func ReadExcel(name string, r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, unreadable(name, err)
	}
	defer f.Close()

	return readWorkbook(name, f, sheet)
}

func readWorkbook(name string, f *excelize.File, sheet string) (*Dataset, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, unreadable(name, fmt.Errorf("sheet %q not found", sheet))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, unreadable(name, fmt.Errorf("reading sheet %s: %w", sheet, err))
	}
	if len(rows) == 0 {
		return nil, unreadable(name, fmt.Errorf("missing header row"))
	}

	header := Header(rows[0])
	ds := &Dataset{Name: name, Header: header}
	for i, cells := range rows[1:] {
		// Blank spreadsheet rows carry no cells at all
		if len(cells) == 0 {
			continue
		}
		if len(cells) > len(header) {
			return nil, unreadable(name, fmt.Errorf("row %d has %d cells, header has %d", i+2, len(cells), len(header)))
		}
		// Trailing empty cells are omitted by GetRows
		row := make(Row, len(header))
		copy(row, cells)
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
