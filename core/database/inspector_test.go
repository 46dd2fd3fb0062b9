package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: DriverSQLite,
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec(`CREATE TABLE customers (id INTEGER PRIMARY KEY, "Full Name" TEXT, city TEXT)`).Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "customers")
	assert.NoError(t, err)
	require.Len(t, columns, 3)

	// Declaration order and original casing are preserved
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "integer", columns[0].Type)
	assert.Equal(t, "Full Name", columns[1].Field)
	assert.Equal(t, "text", columns[1].Type)
	assert.Equal(t, "city", columns[2].Field)

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestQuoteIdent(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	assert.Equal(t, `"people"`, QuoteIdent(db, "people"))
	assert.Equal(t, `"we""ird"`, QuoteIdent(db, `we"ird`))
}
