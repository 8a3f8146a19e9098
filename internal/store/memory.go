package store

import (
	"sync"

	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/model"
)

// Memory keeps the encoded list in a map, so callers see the same
// copy-on-read behaviour as the file backends.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Ping() error  { return nil }
func (m *Memory) Path() string { return "" }
func (m *Memory) Close() error { return nil }

func (m *Memory) LoadTasks() ([]model.Task, error) {
	m.mu.RLock()
	data := m.data[encoding.TaskListKey]
	m.mu.RUnlock()

	return encoding.DecodeTasks(data)
}

func (m *Memory) SaveTasks(tasks []model.Task) error {
	data, err := encoding.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[encoding.TaskListKey] = data
	m.mu.Unlock()

	return nil
}
