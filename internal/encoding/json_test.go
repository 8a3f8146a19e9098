package encoding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.json")

	require.NoError(t, SaveJSON(path, sample{Name: "x", Count: 3}))
	assert.True(t, FileExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadJSON[sample](path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sample{Name: "x", Count: 3}, *got)
}

func TestLoadJSON_Missing(t *testing.T) {
	got, err := LoadJSON[sample](filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadJSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadJSON[sample](path)
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[sample]([]byte(`{"name":"y","count":1}`))
	require.NoError(t, err)
	assert.Equal(t, "y", got.Name)

	_, err = ParseJSON[sample]([]byte(`nope`))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	data, err := ReadFile(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Nil(t, data)
}
