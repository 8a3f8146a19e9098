package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/taskr/internal/application"
)

const (
	// BoltFileName is the bbolt database file inside the data directory
	BoltFileName = "taskr.bolt"

	// SQLiteFileName is the SQLite database file inside the data directory
	SQLiteFileName = "taskr.db"
)

// DataDir resolves the directory holding the task database. An empty
// override falls back to the application directory. The directory is
// created when missing.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		appDir, err := application.GetApplicationDirectory()
		if err != nil {
			return "", err
		}

		dir = appDir
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	return dir, nil
}

// BoltPath returns the bbolt database path inside dir.
func BoltPath(dir string) string {
	return filepath.Join(dir, BoltFileName)
}

// SQLitePath returns the SQLite database path inside dir.
func SQLitePath(dir string) string {
	return filepath.Join(dir, SQLiteFileName)
}
