package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureFileDir creates the parent directory of path if it is missing.
// Sqlite URIs ("file:...") and in-memory databases are left alone.
func EnsureFileDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
