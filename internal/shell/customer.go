package shell

import (
	"context"
	"fmt"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// customerMenu runs one shopping session. The cart is discarded when the
// customer goes back to the main menu.
func (sh *Shell) customerMenu(ctx context.Context, customer records.Customer) error {
	c := sh.shop.NewCart(cart.WithCustomer(customer.ID))
	s := &session{Shell: sh, cart: c, customer: customer}

	err := sh.loop(ctx, menu{
		title: "Customer Menu",
		actions: []action{
			{"Browse Comics", sh.displayComics},
			{"Search Comics", sh.searchComics},
			{"Add to Cart", s.add},
			{"View Cart", s.view},
			{"Remove from Cart", s.remove},
			{"Checkout", s.checkout},
			{"Order History", s.history},
		},
		back: "Back to Main Menu",
	})
	if n := c.Len(); n > 0 && err == nil {
		sh.info(fmt.Sprintf("Discarded %d cart line(s).", n))
	}
	return err
}

type session struct {
	*Shell
	cart     *cart.Cart
	customer records.Customer
}

func (s *session) add(ctx context.Context) error {
	ref, err := s.readRequired(ctx, "Comic ID or title: ", "comic")
	if err != nil {
		return err
	}
	qty, err := s.readInt(ctx, "Quantity: ", "quantity")
	if err != nil {
		return err
	}

	item, err := s.cart.Add(ref, qty)
	if err != nil {
		return err
	}
	s.success("Added %d x %s to cart", item.Quantity, item.Comic.Title)
	return nil
}

func (s *session) view(context.Context) error {
	items, err := s.cart.View()
	if errors.IsEmptyCart(err) {
		s.info("Your cart is empty.")
		return nil
	}
	if err != nil {
		return err
	}
	s.render(table.CartToTableData(items))
	return nil
}

func (s *session) remove(ctx context.Context) error {
	ref, err := s.readRequired(ctx, "Comic ID or title to remove: ", "comic")
	if err != nil {
		return err
	}
	n, err := s.cart.Remove(ref)
	if errors.IsEmptyCart(err) {
		s.info("Your cart is empty.")
		return nil
	}
	if err != nil {
		return err
	}
	s.success("Removed %d line(s) from cart", n)
	return nil
}

// checkout prints the receipt of whatever was committed. A partial
// checkout keeps the remaining lines in the cart.
func (s *session) checkout(ctx context.Context) error {
	receipt, err := s.cart.Checkout(ctx)
	if errors.IsEmptyCart(err) {
		s.info("Your cart is empty.")
		return nil
	}
	if receipt != nil && len(receipt.Lines) > 0 {
		s.render(table.ReceiptToTableData(receipt))
	}
	if err != nil {
		if receipt != nil && len(receipt.Lines) > 0 {
			s.notify(alerts.NewWarning("Checkout stopped early").
				WithError(err).
				WithDetails(fmt.Sprintf("%d line(s) remain in the cart", s.cart.Len())))
			return nil
		}
		return err
	}
	s.success("Checkout complete. Receipt %s, total %s", receipt.ID, table.FormatMoney(receipt.Total))
	return nil
}

func (s *session) history(context.Context) error {
	if s.customer.ID == constants.WalkInCustomerID {
		s.info("Order history needs a customer login.")
		return nil
	}
	orders := s.shop.Orders().ForCustomer(s.customer.ID)
	if len(orders) == 0 {
		return errors.NewEmptyCollectionError("orders")
	}
	s.render(table.OrdersToTableData(orders, true))
	return nil
}
