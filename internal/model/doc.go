// Package model defines the data structures used throughout taskr.
//
// # Task
//
// The [Task] struct is one record of the persisted task list:
//
//	type Task struct {
//	    ID              string // Stable identifier (UUID)
//	    ProjectName     string // Required, user-editable
//	    TaskDescription string // Optional, user-editable
//	    Timestamp       Value  // Creation time, Unix ms, system-owned
//	    Duration        Value  // Tracked time, ms, system-owned
//	    Extra           map[string]json.RawMessage
//	}
//
// The JSON keys match the array-of-objects text the store persists under its
// fixed key, so lists written by older clients without an id still decode.
// Timestamp and Duration hold the stored JSON as is: a string or fractional
// value written by another client is displayed as best it can be and
// written back unchanged. Keys taskr does not know land in Extra and are
// written back too.
//
// # EditBuffer
//
// [EditBuffer] holds the two user-editable fields while an edit session is
// open. It is always seeded from a target [Task].
//
// # Config
//
// [Config] holds the storage backend and logging settings loaded from the
// INI configuration file.
package model
