package store

import (
	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/store/sqlite"
)

// SQLiteWrapper wraps the sqlite.Store to implement the Store interface.
type SQLiteWrapper struct {
	store *sqlite.Store
}

// NewSQLite opens (or creates) a SQLite database at path.
func NewSQLite(path string) (*SQLiteWrapper, error) {
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteWrapper{store: s}, nil
}

func (w *SQLiteWrapper) Ping() error {
	return w.store.Ping()
}

func (w *SQLiteWrapper) Path() string {
	return w.store.Path()
}

func (w *SQLiteWrapper) Close() error {
	return w.store.Close()
}

func (w *SQLiteWrapper) LoadTasks() ([]model.Task, error) {
	data, err := w.store.Get(encoding.TaskListKey)
	if err != nil {
		return nil, err
	}

	return encoding.DecodeTasks(data)
}

func (w *SQLiteWrapper) SaveTasks(tasks []model.Task) error {
	data, err := encoding.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	return w.store.Put(encoding.TaskListKey, data)
}
