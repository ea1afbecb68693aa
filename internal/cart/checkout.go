package cart

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// Checkout commits every cart line as an order and clears the cart.
//
// When a line fails, Checkout returns the receipt of the lines committed so
// far together with a *errors.CheckoutError. Committed lines leave the cart;
// the failed line and every line after it stay. Under PolicyValidateFirst a
// line that fails validation commits nothing at all.
func (c *Cart) Checkout(ctx context.Context) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil, errors.ErrEmptyCart
	}

	receipt := &Receipt{
		ID:         c.receiptID(),
		CustomerID: c.customerID,
		Total:      decimal.Zero,
	}
	ctx = logging.WithOperation(ctx, "checkout")
	ctx = logging.WithFields(ctx, map[string]any{
		"receipt_id": receipt.ID,
		"policy":     c.policy.String(),
	})
	logger := logging.FromContext(ctx)

	if c.policy == PolicyValidateFirst {
		if i, err := c.validate(); err != nil {
			logger.Debug().Err(err).Int("line", i).Msg("Checkout rejected before commit")
			return receipt, &errors.CheckoutError{Line: i, Committed: 0, Err: err}
		}
	}

	for i, item := range c.items {
		order, err := c.commitLine(receipt, item)
		if err != nil {
			c.items = slices.Clone(c.items[i:])
			logger.Warn().Err(err).
				Int("line", i).
				Int("committed", len(receipt.Lines)).
				Msg("Checkout stopped")
			return receipt, &errors.CheckoutError{Line: i, Committed: len(receipt.Lines), Err: err}
		}
		receipt.Lines = append(receipt.Lines, order)
		receipt.Total = receipt.Total.Add(order.LineTotal)
	}

	c.items = nil
	logger.Info().
		Int("lines", len(receipt.Lines)).
		Str("total", records.FormatPrice(receipt.Total)).
		Msg("Checkout complete")
	return receipt, nil
}

// commitLine prices item at the current catalog price, draws its stock and
// stores the order. Stock drawn for an order that fails to store is returned.
func (c *Cart) commitLine(receipt *Receipt, item LineItem) (records.Order, error) {
	comic, err := c.catalog.FindByID(item.Comic.ID)
	if err != nil {
		return records.Order{}, err
	}

	tracked := c.stock != nil && c.stock.Tracks(comic.ID)
	if tracked {
		if _, err := c.stock.RemoveStock(comic.ID, item.Quantity); err != nil {
			return records.Order{}, err
		}
	}

	order, err := c.orders.Commit(records.Order{
		ReceiptID:  receipt.ID,
		CustomerID: receipt.CustomerID,
		ComicID:    comic.ID,
		Title:      comic.Title,
		Quantity:   item.Quantity,
		UnitPrice:  comic.Price,
		LineTotal:  comic.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
	})
	if err != nil {
		if tracked {
			if _, rerr := c.stock.AddStock(comic.ID, item.Quantity); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		return records.Order{}, err
	}
	return order, nil
}

// validate resolves every line and checks the combined quantity per comic
// against the ledger. It returns the index of the first line that fails.
func (c *Cart) validate() (int, error) {
	wanted := make(map[int]int)
	for i, item := range c.items {
		if _, err := c.catalog.FindByID(item.Comic.ID); err != nil {
			return i, err
		}
		wanted[item.Comic.ID] += item.Quantity

		if c.stock == nil || !c.stock.Tracks(item.Comic.ID) {
			continue
		}
		if have := c.stock.QuantityFor(item.Comic.ID); wanted[item.Comic.ID] > have {
			return i, errors.NewStockError("remove", item.Comic.ID, wanted[item.Comic.ID], have, errors.ErrInsufficientStock)
		}
	}
	return -1, nil
}
