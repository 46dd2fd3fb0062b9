package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"Bytes", []byte("raw"), "raw"},
		{"Int64", int64(-42), "-42"},
		{"Int", 7, "7"},
		{"Float64", 1.5, "1.5"},
		{"Float64Whole", float64(3), "3"},
		{"Float32", float32(0.25), "0.25"},
		{"Bool", true, "true"},
		{"Time", ts, "2024-03-01T12:00:00Z"},
		{"Fallback", uint8(9), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"pk1", "pk2"}, SplitList([]string{"pk1,pk2"}))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList([]string{"a", "b,c"}))
	// Column names match exactly, so surrounding blanks are part of the name
	assert.Equal(t, []string{" id", "name "}, SplitList([]string{" id,name "}))
	assert.Equal(t, []string{"id"}, SplitList([]string{",id,,"}))
	assert.Nil(t, SplitList(nil))
}
