package encoding

import (
	"bytes"
	"fmt"

	"github.com/inovacc/taskr/internal/model"
)

// TaskListKey is the fixed key the task list is stored under.
const TaskListKey = "taskList"

// EncodeTasks serializes the task list as a JSON array of objects. A nil
// list encodes as an empty array.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := api.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encoding task list: %w", err)
	}

	return data, nil
}

// DecodeTasks parses a stored task list. Absent or blank data and a JSON
// null all decode to an empty list.
func DecodeTasks(data []byte) ([]model.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := api.Unmarshal(trimmed, &tasks); err != nil {
		return nil, fmt.Errorf("decoding task list: %w", err)
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return tasks, nil
}
