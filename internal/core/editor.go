package core

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/store"
)

// Editor is an edit session over one task. It holds a working copy of the
// task's editable fields and writes them back into the stored list on Commit.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	store   store.Store
	logger  *slog.Logger
	target  model.Task
	buffer  model.EditBuffer
	editing bool
}

// NewEditor returns a closed editor whose buffer is seeded from target.
func NewEditor(s store.Store, target model.Task, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Editor{
		store:  s,
		logger: logger,
		target: target,
		buffer: model.BufferOf(target),
	}
}

// Open shows the editor. Opening an open editor does nothing.
func (e *Editor) Open() {
	e.editing = true
}

// IsOpen reports whether an edit session is in progress.
func (e *Editor) IsOpen() bool {
	return e.editing
}

// Target returns the task being edited.
func (e *Editor) Target() model.Task {
	return e.target
}

// Buffer returns the current working copy.
func (e *Editor) Buffer() model.EditBuffer {
	return e.buffer
}

// Seed points the editor at target. The buffer is reseeded only when the
// target's id, project name or description differ from the current target,
// so repeated calls with an unchanged task keep in-progress edits.
func (e *Editor) Seed(target model.Task) {
	if target.ID == e.target.ID &&
		target.ProjectName == e.target.ProjectName &&
		target.TaskDescription == e.target.TaskDescription {
		e.target = target
		return
	}

	e.target = target
	e.buffer = model.BufferOf(target)
}

// UpdateField sets one buffer field. Values are not validated here; the
// required project name is checked by Commit.
func (e *Editor) UpdateField(field model.Field, value string) error {
	switch field {
	case model.FieldProjectName:
		e.buffer.ProjectName = value
	case model.FieldTaskDescription:
		e.buffer.TaskDescription = value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, field)
	}

	return nil
}

// Commit writes the buffer into the stored list and closes the editor. The
// task is located by id in a freshly loaded list; every other task is
// written back unchanged and in order. The returned list is what was
// persisted, for the caller to refresh its view with.
//
// On error the editor stays open and the buffer is kept.
func (e *Editor) Commit() ([]model.Task, error) {
	if !e.editing {
		return nil, ErrEditorClosed
	}

	if err := requireField(model.FieldProjectName.String(), e.buffer.ProjectName); err != nil {
		return nil, err
	}

	tasks, err := e.store.LoadTasks()
	if err != nil {
		return nil, &StorageError{Operation: "load", Err: err}
	}

	idx := indexByID(tasks, e.target.ID)
	if idx < 0 {
		e.logger.Warn("commit target missing from task list", slog.String("id", e.target.ID))
		return nil, &NotFoundError{ID: e.target.ID}
	}

	current := tasks[idx]

	updated := slices.Clone(tasks)
	updated[idx].ProjectName = e.buffer.ProjectName
	updated[idx].TaskDescription = e.buffer.TaskDescription

	if err := e.store.SaveTasks(updated); err != nil {
		return nil, &StorageError{Operation: "save", Err: err}
	}

	e.logger.Info("task updated",
		slog.String("id", current.ID),
		slog.Int("position", idx),
		slog.String("project", updated[idx].ProjectName),
	)

	e.target = updated[idx]
	e.editing = false

	return updated, nil
}

// Cancel closes the editor without touching the store. The buffer is left
// as is until the next Seed.
func (e *Editor) Cancel() {
	e.editing = false
}

func indexByID(tasks []model.Task, id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(tasks, func(t model.Task) bool {
		return t.ID == id
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
