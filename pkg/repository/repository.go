// Package repository provides a generic, file-backed collection of records.
//
// A Repository keeps every record in memory in insertion order and mirrors
// the whole collection to one file after each mutation. A mutation whose
// rewrite fails leaves the in-memory collection exactly as it was, so memory
// and file never disagree after an error.
package repository

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

// Codec converts one record to one line and back.
type Codec[T any] interface {
	Decode(line string) (T, error)
	Encode(rec T) string
	ID(rec T) int
}

// Storage reads and replaces whole files of lines.
type Storage interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// Repository is a file-backed collection of T.
type Repository[T any] struct {
	mu      sync.RWMutex
	items   []T
	dropped int

	store  Storage
	path   string
	codec  Codec[T]
	policy IDPolicy
	name   string
	logger zerolog.Logger
}

// New creates a repository over path and loads it.
func New[T any](store Storage, path string, codec Codec[T], opts ...Option) (*Repository[T], error) {
	o := options{
		policy: IDPolicyLast,
		logger: logging.Default(),
		name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Repository[T]{
		store:  store,
		path:   path,
		codec:  codec,
		policy: o.policy,
		name:   o.name,
		logger: o.logger.With().Str("repository", o.name).Logger(),
	}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load replaces the in-memory collection with the file contents.
// Blank lines are skipped and malformed lines are dropped.
func (r *Repository[T]) Load() error {
	lines, err := r.store.ReadLines(r.path)
	if err != nil {
		return errors.WrapResource("load", r.name, "", err)
	}

	items := make([]T, 0, len(lines))
	dropped := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		rec, err := r.codec.Decode(line)
		if err != nil {
			var parseErr *errors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.File = r.path
				parseErr.Line = i + 1
			}
			r.logger.Debug().Err(err).Int("line", i+1).Msg("Dropping malformed record")
			dropped++
			continue
		}
		items = append(items, rec)
	}

	r.mu.Lock()
	r.items = items
	r.dropped = dropped
	r.mu.Unlock()

	r.logger.Debug().
		Str("path", r.path).
		Int("records", len(items)).
		Int("dropped", dropped).
		Msg("Loaded repository")
	return nil
}

// Add appends rec and rewrites the file.
func (r *Repository[T]) Add(rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.commit(append(slices.Clip(r.items), rec))
}

// Insert builds a record with the next identifier and adds it.
func (r *Repository[T]) Insert(build func(id int) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := build(r.nextID())
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.commit(append(slices.Clip(r.items), rec)); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Delete removes every record with id and rewrites the file.
// Deleting an absent id does nothing.
func (r *Repository[T]) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(r.items), func(rec T) bool {
		return r.codec.ID(rec) == id
	})
	if len(next) == len(r.items) {
		return nil
	}
	return r.commit(next)
}

// FindByID returns the first record with id.
func (r *Repository[T]) FindByID(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	var zero T
	return zero, errors.NewNotFoundError(r.name, strconv.Itoa(id))
}

// Update applies mutate to a copy of the record with id and stores the copy.
// When mutate fails nothing changes and nothing is written.
func (r *Repository[T]) Update(id int, mutate func(rec *T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	i := r.indexOf(id)
	if i < 0 {
		return zero, errors.NewNotFoundError(r.name, strconv.Itoa(id))
	}

	rec := r.items[i]
	if err := mutate(&rec); err != nil {
		return zero, err
	}
	if got := r.codec.ID(rec); got != id {
		return zero, errors.NewValidationError("id", got, "identifier cannot change")
	}

	next := slices.Clone(r.items)
	next[i] = rec
	if err := r.commit(next); err != nil {
		return zero, err
	}
	return rec, nil
}

// NextID returns the identifier the next Insert would use.
func (r *Repository[T]) NextID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID()
}

// List returns a copy of every record in insertion order.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items)
}

// Len returns the number of records.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Find returns the first record matching pred.
func (r *Repository[T]) Find(pred func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.items {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching pred in insertion order.
func (r *Repository[T]) Filter(pred func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, rec := range r.items {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Dropped returns how many malformed lines the last Load skipped.
func (r *Repository[T]) Dropped() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}

// Name returns the resource name.
func (r *Repository[T]) Name() string { return r.name }

// Path returns the backing file.
func (r *Repository[T]) Path() string { return r.path }

// Policy returns the identifier policy.
func (r *Repository[T]) Policy() IDPolicy { return r.policy }

// commit writes next and adopts it as the collection. Callers hold mu.
func (r *Repository[T]) commit(next []T) error {
	lines := make([]string, len(next))
	for i, rec := range next {
		lines[i] = r.codec.Encode(rec)
	}
	if err := r.store.WriteLines(r.path, lines); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("Rewrite failed; keeping previous records")
		return err
	}
	r.items = next
	return nil
}

// nextID computes the next identifier. Callers hold mu.
func (r *Repository[T]) nextID() int {
	if len(r.items) == 0 {
		return 1
	}
	if r.policy == IDPolicyMax {
		highest := r.codec.ID(r.items[0])
		for _, rec := range r.items[1:] {
			highest = max(highest, r.codec.ID(rec))
		}
		return highest + 1
	}
	return r.codec.ID(r.items[len(r.items)-1]) + 1
}

func (r *Repository[T]) indexOf(id int) int {
	return slices.IndexFunc(r.items, func(rec T) bool {
		return r.codec.ID(rec) == id
	})
}
