package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	garbage := bytes.Repeat([]byte("not sqlite "), 200)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), garbage, 0o644))

	database, err := Open(dir, DefaultOpenOptions())
	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), "file is not a database")
}
