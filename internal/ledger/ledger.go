// Package ledger tracks the on-hand quantity of each comic.
// There is at most one stock record per comic and quantities never go negative.
package ledger

import (
	"math"
	"strconv"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const resource = "stock"

// ComicChecker reports whether a comic exists.
type ComicChecker interface {
	Exists(id int) bool
}

// ComicLookup resolves a comic by identifier.
type ComicLookup interface {
	FindByID(id int) (records.Comic, error)
}

// Ledger is the stock repository.
type Ledger struct {
	repo    *repository.Repository[records.Stock]
	catalog ComicChecker
}

// New opens the ledger stored at path. When catalog is non-nil, Create
// rejects comics the catalog does not hold.
func New(store repository.Storage, path string, catalog ComicChecker, opts ...repository.Option) (*Ledger, error) {
	opts = append([]repository.Option{repository.WithName(resource)}, opts...)
	repo, err := repository.New[records.Stock](store, path, records.StockCodec{}, opts...)
	if err != nil {
		return nil, err
	}
	return &Ledger{repo: repo, catalog: catalog}, nil
}

// Create starts tracking comicID with qty on hand.
func (l *Ledger) Create(comicID, qty int) (records.Stock, error) {
	if qty < 0 {
		return records.Stock{}, errors.NewValidationError("quantity", qty, "must not be negative")
	}
	if l.catalog != nil && !l.catalog.Exists(comicID) {
		return records.Stock{}, errors.NewNotFoundError("comic", strconv.Itoa(comicID))
	}
	if existing, err := l.repo.FindByID(comicID); err == nil {
		return records.Stock{}, errors.NewStockError("create", comicID, qty, existing.Quantity, errors.ErrDuplicateStock)
	}

	rec := records.Stock{ComicID: comicID, Quantity: qty}
	if err := l.repo.Add(rec); err != nil {
		return records.Stock{}, err
	}
	return rec, nil
}

// FindByComicID returns the stock record of comicID.
func (l *Ledger) FindByComicID(comicID int) (records.Stock, error) {
	return l.repo.FindByID(comicID)
}

// SetQuantity overwrites the quantity of comicID.
func (l *Ledger) SetQuantity(comicID, qty int) (records.Stock, error) {
	if qty < 0 {
		return records.Stock{}, errors.NewValidationError("quantity", qty, "must not be negative")
	}
	return l.repo.Update(comicID, func(s *records.Stock) error {
		s.Quantity = qty
		return nil
	})
}

// AddStock increases the quantity of comicID by amount.
func (l *Ledger) AddStock(comicID, amount int) (records.Stock, error) {
	return l.repo.Update(comicID, func(s *records.Stock) error {
		if amount <= 0 {
			return errors.NewStockError("add", comicID, amount, s.Quantity, errors.ErrInvalidAmount)
		}
		if amount > math.MaxInt-s.Quantity {
			return errors.NewStockError("add", comicID, amount, s.Quantity, errors.ErrInvalidAmount)
		}
		s.Quantity += amount
		return nil
	})
}

// RemoveStock decreases the quantity of comicID by amount.
// The quantity is unchanged when amount exceeds it.
func (l *Ledger) RemoveStock(comicID, amount int) (records.Stock, error) {
	return l.repo.Update(comicID, func(s *records.Stock) error {
		if amount <= 0 {
			return errors.NewStockError("remove", comicID, amount, s.Quantity, errors.ErrInvalidAmount)
		}
		if amount > s.Quantity {
			return errors.NewStockError("remove", comicID, amount, s.Quantity, errors.ErrInsufficientStock)
		}
		s.Quantity -= amount
		return nil
	})
}

// QuantityFor returns the quantity of comicID, or -1 when it is not tracked.
func (l *Ledger) QuantityFor(comicID int) int {
	s, err := l.repo.FindByID(comicID)
	if err != nil {
		return constants.NotFoundQuantity
	}
	return s.Quantity
}

// HasSufficientStock reports whether comicID has at least n on hand.
// Untracked comics never have sufficient stock.
func (l *Ledger) HasSufficientStock(comicID, n int) bool {
	qty := l.QuantityFor(comicID)
	return qty != constants.NotFoundQuantity && qty >= n
}

// Tracks reports whether comicID has a stock record.
func (l *Ledger) Tracks(comicID int) bool {
	_, err := l.repo.FindByID(comicID)
	return err == nil
}

// Delete stops tracking comicID.
func (l *Ledger) Delete(comicID int) error {
	return l.repo.Delete(comicID)
}

// List returns every stock record in insertion order.
func (l *Ledger) List() []records.Stock { return l.repo.List() }

// Len returns the number of stock records.
func (l *Ledger) Len() int { return l.repo.Len() }

// Entry is a stock record joined with the title of its comic.
type Entry struct {
	records.Stock `yaml:",inline"`
	Title string `json:"title" yaml:"title"`
}

// Entries joins every stock record with its comic title, using
// "Unknown Comic" for comics that no longer exist.
func (l *Ledger) Entries(comics ComicLookup) []Entry {
	stock := l.repo.List()
	out := make([]Entry, len(stock))
	for i, s := range stock {
		title := constants.UnknownComicTitle
		if c, err := comics.FindByID(s.ComicID); err == nil {
			title = c.Title
		}
		out[i] = Entry{Stock: s, Title: title}
	}
	return out
}
