// Package watch reports changes to the task database file so open views can
// refresh after another taskr process writes to it.
package watch

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single write produces.
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher watches one file through its parent directory, which keeps
// working when the file is replaced rather than written in place.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	logger   *slog.Logger
	changes  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// New starts watching path. Related files sharing its name as a prefix,
// such as SQLite's -wal and -shm companions, count as changes too.
func New(path string, debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		target:   abs,
		debounce: debounce,
		logger:   logger,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	fw.wg.Add(1)
	go fw.processEvents()

	return fw, nil
}

// Changes delivers one value per settled burst of writes. It is closed by
// Close.
func (fw *FileWatcher) Changes() <-chan struct{} {
	return fw.changes
}

// Close stops the watcher and waits for its goroutine to exit.
func (fw *FileWatcher) Close() error {
	var err error

	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
		fw.wg.Wait()
		close(fw.changes)
	})

	return err
}

func (fw *FileWatcher) processEvents() {
	defer fw.wg.Done()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if !fw.relevant(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}

			timerCh = timer.C

		case <-timerCh:
			timerCh = nil

			select {
			case fw.changes <- struct{}{}:
			default:
				// a change is already pending
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}

			fw.logger.Warn("file watch error", slog.String("path", fw.target), slog.String("error", err.Error()))
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	return strings.HasPrefix(name, fw.target)
}
