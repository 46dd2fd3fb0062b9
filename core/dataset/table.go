package dataset

import (
	"context"
	"fmt"
	"strings"

	"tablediff/core/database"
	"tablediff/core/utils"

	"gorm.io/gorm"
)

// TableSource reads every row of a database table. The header is the table's
// column list in declaration order; NULL becomes the empty string.
type TableSource struct {
	db    *gorm.DB
	table string
}

// NewTableSource creates a source over a table of db.
func NewTableSource(db *gorm.DB, table string) *TableSource {
	return &TableSource{db: db, table: table}
}

func (s *TableSource) Name() string { return schemeDB + s.table }

func (s *TableSource) Load(ctx context.Context) (*Dataset, error) {
	db := s.db.WithContext(ctx)

	columns, err := database.GetTableColumns(db, s.table)
	if err != nil {
		return nil, unreadable(s.Name(), err)
	}
	if len(columns) == 0 {
		return nil, unreadable(s.Name(), fmt.Errorf("table %s not found", s.table))
	}

	header := make(Header, len(columns))
	quoted := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Field
		quoted[i] = database.QuoteIdent(db, col.Field)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), database.QuoteIdent(db, s.table))
	rows, err := db.Raw(query).Rows()
	if err != nil {
		return nil, unreadable(s.Name(), err)
	}
	defer rows.Close()

	ds := &Dataset{Name: s.Name(), Header: header}
	values := make([]any, len(header))
	pointers := make([]any, len(header))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, unreadable(s.Name(), fmt.Errorf("scanning row: %w", err))
		}
		row := make(Row, len(header))
		for i, v := range values {
			row[i] = utils.ToString(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, unreadable(s.Name(), err)
	}

	return ds, nil
}
