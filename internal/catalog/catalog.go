// Package catalog is the repository of sellable comics.
package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/ptr"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const resource = "comic"

// Catalog holds every comic the store sells.
type Catalog struct {
	repo *repository.Repository[records.Comic]
}

// New opens the catalog stored at path.
func New(store repository.Storage, path string, opts ...repository.Option) (*Catalog, error) {
	opts = append([]repository.Option{repository.WithName(resource)}, opts...)
	repo, err := repository.New[records.Comic](store, path, records.ComicCodec{}, opts...)
	if err != nil {
		return nil, err
	}
	return &Catalog{repo: repo}, nil
}

// Add validates in and stores it under the next identifier.
func (c *Catalog) Add(in ComicInput) (records.Comic, error) {
	if err := in.Validate(); err != nil {
		return records.Comic{}, err
	}
	return c.repo.Insert(func(id int) (records.Comic, error) {
		return records.Comic{
			ID:      id,
			Title:   strings.TrimSpace(in.Title),
			Creator: strings.TrimSpace(in.Creator),
			Price:   in.Price,
			Tag:     normalizeTag(in.Tag),
			Year:    ptr.Clone(in.Year),
			OnHand:  ptr.Clone(in.OnHand),
		}, nil
	})
}

// Update validates p and applies it to the comic with id.
// An invalid patch changes nothing.
func (c *Catalog) Update(id int, p ComicPatch) (records.Comic, error) {
	if err := p.Validate(); err != nil {
		return records.Comic{}, err
	}
	return c.repo.Update(id, func(comic *records.Comic) error {
		p.apply(comic)
		return nil
	})
}

// Delete removes the comic with id. Stock records and past orders are kept.
func (c *Catalog) Delete(id int) error {
	return c.repo.Delete(id)
}

// FindByID returns the comic with id.
func (c *Catalog) FindByID(id int) (records.Comic, error) {
	return c.repo.FindByID(id)
}

// FindByTitle returns the first comic whose title matches exactly.
func (c *Catalog) FindByTitle(title string) (records.Comic, error) {
	if comic, ok := c.repo.Find(func(rec records.Comic) bool { return rec.Title == title }); ok {
		return comic, nil
	}
	return records.Comic{}, errors.NewNotFoundError(resource, title)
}

// FindByIdOrName resolves ref as an identifier first and then as a title
// compared under case folding.
func (c *Catalog) FindByIdOrName(ref string) (records.Comic, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		if comic, err := c.repo.FindByID(id); err == nil {
			return comic, nil
		}
	}
	if comic, ok := c.repo.Find(func(rec records.Comic) bool { return fold.Equal(rec.Title, ref) }); ok {
		return comic, nil
	}
	return records.Comic{}, errors.NewNotFoundError(resource, ref)
}

// Search returns comics whose title, creator or tag contains query.
func (c *Catalog) Search(query string) []records.Comic {
	query = strings.TrimSpace(query)
	return c.repo.Filter(func(rec records.Comic) bool {
		return fold.Contains(rec.Title, query) ||
			fold.Contains(rec.Creator, query) ||
			(rec.Tag != nil && fold.Contains(*rec.Tag, query))
	})
}

// Exists reports whether a comic with id is in the catalog.
func (c *Catalog) Exists(id int) bool {
	_, err := c.repo.FindByID(id)
	return err == nil
}

// List returns every comic in insertion order.
func (c *Catalog) List() []records.Comic { return c.repo.List() }

// Len returns the number of comics.
func (c *Catalog) Len() int { return c.repo.Len() }

// NextID returns the identifier the next Add would use.
func (c *Catalog) NextID() int { return c.repo.NextID() }

// Dropped returns how many malformed lines were skipped at load.
func (c *Catalog) Dropped() int { return c.repo.Dropped() }

// ParsePrice parses a price typed by staff.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.NewValidationError("price", s, "must be a number")
	}
	return d, nil
}
