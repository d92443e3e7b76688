package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHelp(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-h"}))
}

func TestRunBadFlags(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-size", "0"}))
	assert.Equal(t, 2, run([]string{"a.shape", "b.shape"}))
}

func TestRunLogFileError(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "missing", "rasterlab.log")
	assert.Equal(t, 1, run([]string{"-log", p}))
	_, err := os.Stat(p)
	require.ErrorIs(t, err, os.ErrNotExist)
}
