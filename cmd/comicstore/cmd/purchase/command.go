// Package purchase implements the one-shot purchase command.
package purchase

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/cmdutil"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

// Item is one --item argument.
type Item struct {
	Ref      string
	Quantity int
}

// ParseItem parses REF=QTY. A missing quantity means one copy.
func ParseItem(s string) (Item, error) {
	ref, qty, found := strings.Cut(s, "=")
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Item{}, errors.NewValidationError("item", s, "comic is required")
	}
	if !found {
		return Item{Ref: ref, Quantity: 1}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return Item{}, errors.NewValidationError("item", s, "quantity must be a whole number")
	}
	return Item{Ref: ref, Quantity: n}, nil
}

// NewCommand creates the purchase command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var rawItems []string
	var customerID int

	cmd := &cobra.Command{
		Use:     "purchase",
		Aliases: []string{"buy"},
		Short:   "Fill a cart and check it out in one step",
		Long: `Fill a cart with the given items and check it out.

Items are named by comic identifier or title. Lines are committed in order;
when one fails, the lines before it stay committed and their receipt is
printed before the error.`,
		Args: cobra.NoArgs,
		Example: `  comicstore purchase --item Watchmen=2 --item 7
  comicstore purchase --customer 3 --item "Saga=1"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(rawItems) == 0 {
				return errors.NewValidationError("item", nil, "at least one --item is required")
			}
			items := make([]Item, 0, len(rawItems))
			for _, raw := range rawItems {
				item, err := ParseItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			s, err := app.Shop()
			if err != nil {
				return err
			}
			if customerID != constants.WalkInCustomerID {
				if _, err := s.Directory().FindByID(customerID); err != nil {
					return err
				}
			}

			c := s.NewCart(cart.WithCustomer(customerID))
			for _, item := range items {
				if _, err := c.Add(item.Ref, item.Quantity); err != nil {
					return err
				}
			}

			ctx := logging.WithCustomer(cmd.Context(), customerID)
			receipt, checkoutErr := c.Checkout(ctx)
			if receipt != nil && len(receipt.Lines) > 0 {
				if err := cmdutil.Render(cmd, app, receipt, func(bool) table.Data {
					return table.ReceiptToTableData(receipt)
				}); err != nil {
					return err
				}
			}
			if checkoutErr != nil {
				return checkoutErr
			}
			return cmdutil.Notify(cmd, app, alerts.Successf("Receipt %s, total %s", receipt.ID, table.FormatMoney(receipt.Total)))
		},
	}

	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "Comic and quantity as REF=QTY (repeatable)")
	cmd.Flags().IntVar(&customerID, "customer", constants.WalkInCustomerID, "Customer identifier (0 for walk-in)")
	return cmd
}
