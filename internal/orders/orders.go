// Package orders is the append-only history of committed cart lines.
package orders

import (
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const resource = "order"

// History holds every committed order line.
type History struct {
	repo  *repository.Repository[records.Order]
	keyBy records.OrderKey
}

// New opens the order history stored at path.
func New(store repository.Storage, path string, keyBy records.OrderKey, opts ...repository.Option) (*History, error) {
	opts = append([]repository.Option{repository.WithName(resource)}, opts...)
	repo, err := repository.New[records.Order](store, path, records.OrderCodec{KeyBy: keyBy}, opts...)
	if err != nil {
		return nil, err
	}
	return &History{repo: repo, keyBy: keyBy}, nil
}

// Commit stores o. Under KeyByOrderID it receives the next order identifier;
// under KeyByComicID its identifier is the comic identifier.
func (h *History) Commit(o records.Order) (records.Order, error) {
	return h.repo.Insert(func(id int) (records.Order, error) {
		if h.keyBy == records.KeyByComicID {
			o.ID = o.ComicID
		} else {
			o.ID = id
		}
		return o, nil
	})
}

// FindByID returns the first order with id.
func (h *History) FindByID(id int) (records.Order, error) {
	return h.repo.FindByID(id)
}

// ForReceipt returns the lines of one checkout.
func (h *History) ForReceipt(receiptID string) []records.Order {
	return h.repo.Filter(func(o records.Order) bool { return o.ReceiptID == receiptID })
}

// ForCustomer returns every line bought by customerID.
func (h *History) ForCustomer(customerID int) []records.Order {
	return h.repo.Filter(func(o records.Order) bool { return o.CustomerID == customerID })
}

// ForComic returns every line that sold comicID.
func (h *History) ForComic(comicID int) []records.Order {
	return h.repo.Filter(func(o records.Order) bool { return o.ComicID == comicID })
}

// List returns every order in commit order.
func (h *History) List() []records.Order { return h.repo.List() }

// Len returns the number of order lines.
func (h *History) Len() int { return h.repo.Len() }

// KeyBy returns the identifier policy of the history.
func (h *History) KeyBy() records.OrderKey { return h.keyBy }
