package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Task struct {
	// ID is the stable identifier of the task (UUID)
	ID string `json:"id"`

	// ProjectName is the project the task belongs to
	ProjectName string `json:"projectName"`

	// TaskDescription is the free-form task text
	TaskDescription string `json:"taskDescription"`

	// Timestamp is when the task was created. taskr writes Unix
	// milliseconds; other values are kept as stored.
	Timestamp Value `json:"timestamp,omitempty"`

	// Duration is the tracked time. taskr writes milliseconds; other
	// values are kept as stored.
	Duration Value `json:"duration,omitempty"`

	// Extra holds stored keys taskr does not know, written back unchanged
	Extra map[string]json.RawMessage `json:"-"`
}

// CreatedAt returns Timestamp as a time.Time, or the zero time when it is
// unset or not a number.
func (t Task) CreatedAt() time.Time {
	ms, ok := t.Timestamp.Int64()
	if !ok || ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}

// Elapsed returns Duration as a time.Duration, or 0 when it is unset or not
// a number.
func (t Task) Elapsed() time.Duration {
	ms, ok := t.Duration.Int64()
	if !ok {
		return 0
	}

	return time.Duration(ms) * time.Millisecond
}

// EditBuffer is the working copy of a task's user-editable fields.
type EditBuffer struct {
	ProjectName     string
	TaskDescription string
}

// BufferOf returns an EditBuffer seeded from t.
func BufferOf(t Task) EditBuffer {
	return EditBuffer{
		ProjectName:     t.ProjectName,
		TaskDescription: t.TaskDescription,
	}
}

// Field names a user-editable task field.
type Field int

const (
	FieldProjectName Field = iota
	FieldTaskDescription
)

func (f Field) String() string {
	switch f {
	case FieldProjectName:
		return "projectName"
	case FieldTaskDescription:
		return "taskDescription"
	}

	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField converts a field name to a Field. Both the camelCase record
// keys and the kebab-case flag spellings are accepted.
func ParseField(s string) (Field, error) {
	switch strings.TrimSpace(s) {
	case "projectName", "project-name", "project":
		return FieldProjectName, nil
	case "taskDescription", "task-description", "description":
		return FieldTaskDescription, nil
	default:
		return 0, fmt.Errorf("unknown field %q", s)
	}
}
