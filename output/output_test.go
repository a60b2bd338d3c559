package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-yagi/hotspots/output"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotspots.html")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	require.NoError(t, output.Write(path, "<p>热点</p>"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>热点</p>", string(got))
}

func TestWrite_missingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "hotspots.html")

	err := output.Write(path, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_emptyPath(t *testing.T) {
	assert.Error(t, output.Write("", "x"))
}
