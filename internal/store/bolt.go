package store

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/model"
)

const boltBucketKV = "kv" // key: "taskList" -> task list JSON

var errBucketMissing = errors.New("bolt bucket kv missing")

// ErrLocked is returned when another process holds the database file.
var ErrLocked = errors.New("database is locked by another process")

type Bolt struct {
	storage *bbolt.DB
	path    string
}

// NewBolt opens (or creates) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if errors.Is(err, berrors.ErrTimeout) {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketKV))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance, path: path}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Path() string {
	return b.path
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketKV)) == nil {
			return errBucketMissing
		}

		return nil
	})
}

func (b *Bolt) LoadTasks() ([]model.Task, error) {
	var data []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketKV))
		if bucket == nil {
			return errBucketMissing
		}

		// Values are only valid inside the transaction.
		if v := bucket.Get([]byte(encoding.TaskListKey)); v != nil {
			data = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return encoding.DecodeTasks(data)
}

func (b *Bolt) SaveTasks(tasks []model.Task) error {
	data, err := encoding.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketKV))
		if bucket == nil {
			return errBucketMissing
		}

		return bucket.Put([]byte(encoding.TaskListKey), data)
	})
}
