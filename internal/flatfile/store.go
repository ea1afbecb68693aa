// Package flatfile reads and writes line-oriented text files for the repositories.
// Every file is one record per line; a rewrite replaces the whole file through a
// sibling temp file so a failed write never leaves a half-written target behind.
package flatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// Store reads and writes whole files of lines.
type Store struct {
	fs afero.Fs
}

// New returns a Store over fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS returns a Store over the real filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Fs exposes the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, errors.WrapIO("stat", path, err)
	}
	return ok, nil
}

// ReadLines returns the trimmed lines of path in file order.
// A missing file is created empty, along with its parent directories.
func (s *Store) ReadLines(path string) ([]string, error) {
	exists, err := s.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.create(path); err != nil {
			return nil, err
		}
		return []string{}, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	// Lines have no length limit; the caller decides what a bad line is.
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// WriteLines replaces path with lines, one per line with a trailing newline.
func (s *Store) WriteLines(path string, lines []string) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp := path + constants.TempSuffix
	if err := afero.WriteFile(s.fs, tmp, buf.Bytes(), constants.FilePermissions); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.WrapIO("write", path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

func (s *Store) create(path string) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("create", path, err)
	}
	return nil
}
