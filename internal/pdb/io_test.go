package pdb

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteLines(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		"ATOM      1  C1  4MA     1      10.000  20.000  30.000\n",
		"TER\n",
		"END",
	}

	plain := filepath.Join(dir, "a.pdb")
	require.NoError(t, WriteLines(plain, lines))
	got, err := ReadLines(plain)
	require.NoError(t, err)
	assert.Equal(t, lines, got)

	raw, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, ""), string(raw))
}

func TestReadWriteLines_Gzip(t *testing.T) {
	dir := t.TempDir()
	lines := []string{"ATOM 1 C1 0YB 1 0 0 0\n", "END\n"}

	gz := filepath.Join(dir, "a.pdb.gz")
	require.NoError(t, WriteLines(gz, lines))

	raw, err := os.ReadFile(gz)
	require.NoError(t, err)
	require.True(t, len(raw) > 2)
	assert.Equal(t, byte(0x1f), raw[0])
	assert.Equal(t, byte(0x8b), raw[1])

	got, err := ReadLines(gz)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("a\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a\n", "b\n", "\n", "c"}, got)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.pdb"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
