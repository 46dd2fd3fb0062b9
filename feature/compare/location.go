package compare

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrLocalPathDenied means a request named a local file outside the data directory.
var ErrLocalPathDenied = errors.New("local path not allowed")

// resolveLocation confines local paths to dataDir and returns the cleaned
// absolute path. s3:// and db:// locations pass through unchanged. With an
// empty dataDir every local path is refused.
func resolveLocation(dataDir, location string) (string, error) {
	if strings.HasPrefix(location, "s3://") || strings.HasPrefix(location, "db://") {
		return location, nil
	}
	if dataDir == "" {
		return "", fmt.Errorf("%w: %s (no data directory configured)", ErrLocalPathDenied, location)
	}

	root, err := filepath.Abs(dataDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLocalPathDenied, err)
	}

	path := strings.TrimPrefix(location, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)
	if !within(root, path) {
		return "", fmt.Errorf("%w: %s", ErrLocalPathDenied, location)
	}

	// Symlinks inside the root must not lead out of it
	target := path
	if _, err := os.Lstat(target); err != nil {
		if i := strings.LastIndex(target, "#"); i >= 0 {
			target = target[:i]
		}
	}
	if real, err := filepath.EvalSymlinks(target); err == nil {
		realRoot, err := filepath.EvalSymlinks(root)
		if err != nil || !within(realRoot, real) {
			return "", fmt.Errorf("%w: %s", ErrLocalPathDenied, location)
		}
	}

	return path, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
