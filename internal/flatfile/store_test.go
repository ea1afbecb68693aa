package flatfile

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

func TestReadLinesCreatesMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs)

	lines, err := s.ReadLines("data/nested/comics.txt")
	require.NoError(t, err)
	assert.Empty(t, lines)

	ok, err := afero.Exists(fs, "data/nested/comics.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	isDir, err := afero.IsDir(fs, "data/nested")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestReadLinesTrims(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/comics.txt", []byte("  1,Saga,Vaughan,9.99 \n\n2,Bone,Smith,12.50\r\n"), 0o644))

	lines, err := New(fs).ReadLines("data/comics.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,Saga,Vaughan,9.99", "", "2,Bone,Smith,12.50"}, lines)
}

func TestReadLinesLongLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	long := strings.Repeat("x", 2<<20)
	require.NoError(t, afero.WriteFile(fs, "data/comics.txt", []byte("1,Saga,Vaughan,9.99\n"+long+"\n2,Bone,Smith,12.50\n"), 0o644))

	lines, err := New(fs).ReadLines("data/comics.txt")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "1,Saga,Vaughan,9.99", lines[0])
	assert.Len(t, lines[1], len(long))
	assert.Equal(t, "2,Bone,Smith,12.50", lines[2])
}

func TestWriteLinesRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs)

	require.NoError(t, s.WriteLines("data/stock.txt", []string{"1,5", "2,0"}))

	raw, err := afero.ReadFile(fs, "data/stock.txt")
	require.NoError(t, err)
	assert.Equal(t, "1,5\n2,0\n", string(raw))

	lines, err := s.ReadLines("data/stock.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,5", "2,0"}, lines)

	tmpExists, err := afero.Exists(fs, "data/stock.txt.tmp")
	require.NoError(t, err)
	assert.False(t, tmpExists)
}

func TestWriteLinesReplacesContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs)

	require.NoError(t, s.WriteLines("orders.txt", []string{"a", "b", "c"}))
	require.NoError(t, s.WriteLines("orders.txt", nil))

	raw, err := afero.ReadFile(fs, "orders.txt")
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestReadOnlyFailures(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "data/comics.txt", []byte("1,Saga,Vaughan,9.99\n"), 0o644))
	s := New(afero.NewReadOnlyFs(base))

	lines, err := s.ReadLines("data/comics.txt")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	err = s.WriteLines("data/comics.txt", []string{"x"})
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))

	_, err = s.ReadLines("data/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs)

	ok, err := s.Exists("admin.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.WriteLines("admin.txt", []string{"admin,secret"}))
	ok, err = s.Exists("admin.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, fs, s.Fs())
}
