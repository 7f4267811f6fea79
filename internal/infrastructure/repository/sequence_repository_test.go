package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMissingFileDefaultsToOne(t *testing.T) {
	repo := NewSequenceRepository(filepath.Join(t.TempDir(), "receipt_count.txt"))

	assert.Equal(t, 1, repo.Next())
}

func TestNextGarbageFileDefaultsToOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt_count.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0644))

	repo := NewSequenceRepository(path)
	assert.Equal(t, 1, repo.Next())
}

func TestSetAndNextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt_count.txt")
	repo := NewSequenceRepository(path)

	require.NoError(t, repo.Set(42))
	assert.Equal(t, 42, repo.Next())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))
}

func TestNextTrimsSurroundingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt_count.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 7\n"), 0644))

	repo := NewSequenceRepository(path)
	assert.Equal(t, 7, repo.Next())
}
