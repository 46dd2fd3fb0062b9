package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocation(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.env"), []byte("id\n1\n"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret.env"), filepath.Join(root, "link.csv")))

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)

	tests := []struct {
		name     string
		dataDir  string
		location string
		want     string
		denied   bool
	}{
		{"Object", "", "s3://exports/a.csv", "s3://exports/a.csv", false},
		{"Table", "", "db://people", "db://people", false},
		{"NoDataDir", "", "people.csv", "", true},
		{"Relative", root, "people.csv", filepath.Join(absRoot, "people.csv"), false},
		{"Nested", root, "daily/people.csv", filepath.Join(absRoot, "daily", "people.csv"), false},
		{"Absolute", root, filepath.Join(absRoot, "people.csv"), filepath.Join(absRoot, "people.csv"), false},
		{"FileScheme", root, "file://" + filepath.Join(absRoot, "people.csv"), filepath.Join(absRoot, "people.csv"), false},
		{"Sheet", root, "book.xlsx#Q1", filepath.Join(absRoot, "book.xlsx#Q1"), false},
		{"SystemFile", root, "/etc/passwd", "", true},
		{"Traversal", root, "../secret.env", "", true},
		{"SneakyTraversal", root, "daily/../../secret.env", "", true},
		{"OtherDir", root, filepath.Join(outside, "secret.env"), "", true},
		{"SymlinkOut", root, "link.csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLocation(tt.dataDir, tt.location)
			if tt.denied {
				assert.ErrorIs(t, err, ErrLocalPathDenied)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
