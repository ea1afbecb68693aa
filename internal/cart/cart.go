// Package cart implements the shopping cart and the checkout that turns its
// lines into committed orders.
//
// A Cart lives only in memory. Prices are captured at checkout time, not when
// a line is added, so a price change between the two is honored.
package cart

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// ComicFinder resolves cart references against the catalog.
type ComicFinder interface {
	FindByID(id int) (records.Comic, error)
	FindByIdOrName(ref string) (records.Comic, error)
}

// OrderCommitter persists one committed line.
type OrderCommitter interface {
	Commit(o records.Order) (records.Order, error)
}

// StockKeeper is the part of the ledger a checkout draws stock from.
type StockKeeper interface {
	Tracks(comicID int) bool
	QuantityFor(comicID int) int
	RemoveStock(comicID, amount int) (records.Stock, error)
	AddStock(comicID, amount int) (records.Stock, error)
}

// LineItem is one pending cart entry. Comic is the snapshot taken when the
// line was added; checkout re-reads the current price.
type LineItem struct {
	Comic    records.Comic `json:"comic" yaml:"comic"`
	Quantity int           `json:"quantity" yaml:"quantity"`
}

// Receipt summarizes one checkout.
type Receipt struct {
	ID         string          `json:"id" yaml:"id"`
	CustomerID int             `json:"customer_id" yaml:"customer_id"`
	Lines      []records.Order `json:"lines" yaml:"lines"`
	Total      decimal.Decimal `json:"total" yaml:"total"`
}

// Option configures a Cart.
type Option func(*Cart)

// WithLedger draws stock from keeper at checkout. Comics without a stock
// record are sold without a stock check.
func WithLedger(keeper StockKeeper) Option {
	return func(c *Cart) {
		c.stock = keeper
	}
}

// WithPolicy sets the checkout policy.
func WithPolicy(p Policy) Option {
	return func(c *Cart) {
		c.policy = p
	}
}

// WithCustomer records customerID on every committed order.
func WithCustomer(customerID int) Option {
	return func(c *Cart) {
		c.customerID = customerID
	}
}

// WithReceiptIDs replaces the receipt identifier generator.
func WithReceiptIDs(next func() string) Option {
	return func(c *Cart) {
		if next != nil {
			c.receiptID = next
		}
	}
}

// Cart is an unpersisted list of line items.
type Cart struct {
	mu    sync.Mutex
	items []LineItem

	catalog    ComicFinder
	orders     OrderCommitter
	stock      StockKeeper
	policy     Policy
	customerID int
	receiptID  func() string
}

// New creates an empty cart.
func New(catalog ComicFinder, orders OrderCommitter, opts ...Option) *Cart {
	c := &Cart{
		catalog:    catalog,
		orders:     orders,
		policy:     PolicyBestEffort,
		customerID: constants.WalkInCustomerID,
		receiptID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add resolves ref by identifier or title and appends qty of it.
// The cart is unchanged on error.
func (c *Cart) Add(ref string, qty int) (LineItem, error) {
	if qty <= 0 {
		return LineItem{}, errors.NewValidationError("quantity", qty, "must be greater than zero")
	}
	comic, err := c.catalog.FindByIdOrName(ref)
	if err != nil {
		return LineItem{}, err
	}

	item := LineItem{Comic: comic, Quantity: qty}
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item, nil
}

// View returns the cart lines in insertion order, or ErrEmptyCart.
func (c *Cart) View() ([]LineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return []LineItem{}, errors.ErrEmptyCart
	}
	return slices.Clone(c.items), nil
}

// Remove drops every line matching ref and returns how many were dropped.
// A ref that parses as an integer matches identifiers only; anything else
// matches titles under case folding.
func (c *Cart) Remove(ref string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return 0, errors.ErrEmptyCart
	}

	ref = strings.TrimSpace(ref)
	match := func(item LineItem) bool { return fold.Equal(item.Comic.Title, ref) }
	if id, err := strconv.Atoi(ref); err == nil {
		match = func(item LineItem) bool { return item.Comic.ID == id }
	}

	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, match)
	removed := before - len(c.items)
	if removed == 0 {
		return 0, errors.NewNotFoundError("cart item", ref)
	}
	return removed, nil
}

// Subtotal prices the cart at current catalog prices. Lines whose comic has
// left the catalog are priced from their snapshot.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	items := slices.Clone(c.items)
	c.mu.Unlock()

	total := decimal.Zero
	for _, item := range items {
		price := item.Comic.Price
		if current, err := c.catalog.FindByID(item.Comic.ID); err == nil {
			price = current.Price
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Len returns the number of cart lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Policy returns the checkout policy.
func (c *Cart) Policy() Policy { return c.policy }

// CustomerID returns the customer recorded on orders.
func (c *Cart) CustomerID() int { return c.customerID }
