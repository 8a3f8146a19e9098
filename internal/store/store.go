package store

import (
	"fmt"

	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/params"
)

// Store defines the persistence operations for the task list.
type Store interface {
	Ping() error
	// LoadTasks returns the stored list, or an empty list when nothing has
	// been stored yet.
	LoadTasks() ([]model.Task, error)
	// SaveTasks overwrites the stored list.
	SaveTasks(tasks []model.Task) error
	// Path returns the backing file, or "" for in-memory stores.
	Path() string
	Close() error
}

// Open opens the named backend with its database file inside dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case model.StoreBolt, "":
		return NewBolt(params.BoltPath(dataDir))
	case model.StoreSQLite:
		return NewSQLite(params.SQLitePath(dataDir))
	case model.StoreMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
