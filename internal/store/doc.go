// Package store provides the storage abstraction layer for taskr.
//
// The package defines the [Store] interface over the persisted task list.
// Every backend keeps the whole list as one text value (a JSON array of
// objects) under the fixed key "taskList": reads treat an absent key as an
// empty list and writes overwrite the full list. Writers are not coordinated,
// so the last writer wins. A bolt file is held by one process at a time
// ([ErrLocked] for the next); SQLite in WAL mode can be shared.
//
// # Backends
//
//   - bolt: bbolt file, bucket "kv" (default)
//   - sqlite: SQLite file, table "kv"
//   - memory: process-local map, for tests and throwaway sessions
//
// Use [Open] to select a backend by name:
//
//	s, err := store.Open(model.StoreBolt, dataDir)
//	tasks, err := s.LoadTasks()
package store
