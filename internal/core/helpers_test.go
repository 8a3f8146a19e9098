package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/store"
)

var (
	errInjected = errors.New("injected failure")
	fixedNow    = time.UnixMilli(1_700_000_000_000)
)

// flakyStore wraps a Store and fails the next load or save on demand.
type flakyStore struct {
	store.Store
	failLoad bool
	failSave bool
	saves    int
}

func (f *flakyStore) LoadTasks() ([]model.Task, error) {
	if f.failLoad {
		return nil, errInjected
	}

	return f.Store.LoadTasks()
}

func (f *flakyStore) SaveTasks(tasks []model.Task) error {
	if f.failSave {
		return errInjected
	}

	f.saves++

	return f.Store.SaveTasks(tasks)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService returns a service over an in-memory store with
// predictable ids (task-0001, task-0002, ...) and a fixed clock.
func newTestService(t *testing.T, seed ...model.Task) (*Service, *flakyStore) {
	t.Helper()

	fs := &flakyStore{Store: store.NewMemory()}
	if len(seed) > 0 {
		require.NoError(t, fs.Store.SaveTasks(seed))
	}

	svc := NewService(fs, discardLogger())

	svc.now = func() time.Time { return fixedNow }

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("task-%04d", n)
	}

	return svc, fs
}

func loadAll(t *testing.T, s store.Store) []model.Task {
	t.Helper()

	tasks, err := s.LoadTasks()
	require.NoError(t, err)

	return tasks
}
