// Package core provides the business logic layer for taskr.
//
// This package contains all task functionality separated from UI concerns.
// Functions here validate input, load and save the task list through a
// [store.Store], and return typed errors instead of printing.
//
// # Editing
//
// An [Editor] is one edit session over a task:
//
//	ed, err := svc.Editor(id)
//	ed.Open()
//	_ = ed.UpdateField(model.FieldProjectName, "B")
//	tasks, err := ed.Commit()
//
// Commit rejects a blank project name with a [*ValidationError], reports a
// task that disappeared from the list with a [*NotFoundError], and wraps
// store failures in a [*StorageError]. In each case the editor stays open
// with the buffer intact. Callers refresh their view from the returned list.
//
// # Tasks
//
// [Service] adds, removes, lists, time-tracks, exports and imports tasks.
// Tasks are addressed by id or by a unique id prefix.
package core
