package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	h := Header{"id", "name", "city"}

	assert.Equal(t, map[string]int{"id": 0, "name": 1, "city": 2}, h.Positions())

	// Later duplicates win
	assert.Equal(t, map[string]int{"id": 2}, Header{"id", "id", "id"}.Positions())
}
