package watch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitChange(t *testing.T, ch <-chan struct{}, within time.Duration) bool {
	t.Helper()

	select {
	case _, ok := <-ch:
		return ok
	case <-time.After(within):
		return false
	}
}

func TestFileWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskr.db")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	fw, err := New(path, 20*time.Millisecond, quietLogger())
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[{"projectName":"A"}]`), 0o600))
	assert.True(t, waitChange(t, fw.Changes(), 2*time.Second), "expected a change for the watched file")

	// Companion files count as the same database.
	require.NoError(t, os.WriteFile(path+"-wal", []byte("x"), 0o600))
	assert.True(t, waitChange(t, fw.Changes(), 2*time.Second), "expected a change for the -wal file")
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskr.bolt")

	fw, err := New(path, 20*time.Millisecond, quietLogger())
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	assert.False(t, waitChange(t, fw.Changes(), 200*time.Millisecond))
}

func TestFileWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskr.bolt")

	fw, err := New(path, 100*time.Millisecond, quietLogger())
	require.NoError(t, err)
	defer fw.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o600))
	}

	assert.True(t, waitChange(t, fw.Changes(), 2*time.Second))
	assert.False(t, waitChange(t, fw.Changes(), 300*time.Millisecond), "burst should produce one change")
}

func TestFileWatcher_CloseIsIdempotent(t *testing.T) {
	fw, err := New(filepath.Join(t.TempDir(), "taskr.bolt"), 0, nil)
	require.NoError(t, err)

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close())

	_, ok := <-fw.Changes()
	assert.False(t, ok, "Changes should be closed")
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "taskr.bolt"), 0, nil)
	assert.Error(t, err)
}
