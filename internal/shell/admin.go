package shell

import (
	"context"
	"fmt"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/directory"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

func (sh *Shell) adminMenu(ctx context.Context) error {
	return sh.loop(ctx, menu{
		title: "Admin Menu",
		actions: []action{
			{"Manage Comics", sh.manageComics},
			{"Manage Customers", sh.manageCustomers},
			{"Manage Stock", sh.manageStock},
			{"View Orders", sh.viewOrders},
		},
		back: "Back to Main Menu",
	})
}

func (sh *Shell) manageComics(ctx context.Context) error {
	ctx = logging.WithRepository(ctx, "comics")
	return sh.loop(ctx, menu{
		title: "Manage Comics",
		actions: []action{
			{"Add Comic", sh.addComic},
			{"Display Comics", sh.displayComics},
			{"Search Comics", sh.searchComics},
			{"Update Comic", sh.updateComic},
			{"Delete Comic", sh.deleteComic},
		},
		back: "Back",
	})
}

func (sh *Shell) addComic(ctx context.Context) error {
	var in catalog.ComicInput
	var err error

	if in.Title, err = sh.readRequired(ctx, "Title: ", "title"); err != nil {
		return err
	}
	if in.Creator, err = sh.readLine(ctx, "Creator: "); err != nil {
		return err
	}
	price, err := sh.readRequired(ctx, "Price: ", "price")
	if err != nil {
		return err
	}
	if in.Price, err = catalog.ParsePrice(price); err != nil {
		return err
	}
	if in.Tag, err = sh.readOptional(ctx, "Genre tag (optional): "); err != nil {
		return err
	}
	if in.Year, err = sh.readOptionalInt(ctx, "Release year (optional): ", "year"); err != nil {
		return err
	}
	if in.OnHand, err = sh.readOptionalInt(ctx, "Copies on hand (optional): ", "on_hand"); err != nil {
		return err
	}

	comic, err := sh.shop.Catalog().Add(in)
	if err != nil {
		return err
	}
	sh.success("Comic %d added: %s", comic.ID, comic.Title)
	return nil
}

func (sh *Shell) displayComics(context.Context) error {
	return sh.showComics(sh.shop.Catalog().List())
}

func (sh *Shell) searchComics(ctx context.Context) error {
	query, err := sh.readRequired(ctx, "Search: ", "query")
	if err != nil {
		return err
	}
	return sh.showComics(sh.shop.Catalog().Search(query))
}

func (sh *Shell) showComics(comics []records.Comic) error {
	if len(comics) == 0 {
		return errors.NewEmptyCollectionError("comics")
	}
	sh.render(table.ComicsToTableData(comics, true))
	return nil
}

// updateComic prompts for every field; a blank answer keeps the current value.
func (sh *Shell) updateComic(ctx context.Context) error {
	comic, err := sh.readComic(ctx)
	if err != nil {
		return err
	}
	sh.render(table.ComicToTableData(comic))

	var patch catalog.ComicPatch
	if patch.Title, err = sh.readOptional(ctx, "New title (blank to keep): "); err != nil {
		return err
	}
	if patch.Creator, err = sh.readOptional(ctx, "New creator (blank to keep): "); err != nil {
		return err
	}
	price, err := sh.readOptional(ctx, "New price (blank to keep): ")
	if err != nil {
		return err
	}
	if price != nil {
		p, err := catalog.ParsePrice(*price)
		if err != nil {
			return err
		}
		patch.Price = &p
	}
	if patch.Tag, err = sh.readOptional(ctx, "New genre tag (blank to keep, - to clear): "); err != nil {
		return err
	}
	if patch.Tag != nil && *patch.Tag == "-" {
		*patch.Tag = ""
	}
	if patch.Year, err = sh.readOptionalInt(ctx, "New release year (blank to keep): ", "year"); err != nil {
		return err
	}
	if patch.OnHand, err = sh.readOptionalInt(ctx, "New copies on hand (blank to keep): ", "on_hand"); err != nil {
		return err
	}

	if patch.Empty() {
		sh.info("Nothing changed.")
		return nil
	}
	updated, err := sh.shop.Catalog().Update(comic.ID, patch)
	if err != nil {
		return err
	}
	sh.success("Comic %d updated", updated.ID)
	return nil
}

func (sh *Shell) deleteComic(ctx context.Context) error {
	comic, err := sh.readComic(ctx)
	if err != nil {
		return err
	}
	if err := sh.shop.Catalog().Delete(comic.ID); err != nil {
		return err
	}
	sh.success("Deleted successfully!")
	return nil
}

// readComic resolves a comic by identifier or title.
func (sh *Shell) readComic(ctx context.Context) (records.Comic, error) {
	ref, err := sh.readRequired(ctx, "Comic ID or title: ", "comic")
	if err != nil {
		return records.Comic{}, err
	}
	return sh.shop.Catalog().FindByIdOrName(ref)
}

func (sh *Shell) manageCustomers(ctx context.Context) error {
	ctx = logging.WithRepository(ctx, "customers")
	return sh.loop(ctx, menu{
		title: "Manage Customers",
		actions: []action{
			{"Add Customer", sh.addCustomer},
			{"Display Customers", sh.displayCustomers},
			{"Update Customer", sh.updateCustomer},
			{"Delete Customer", sh.deleteCustomer},
		},
		back: "Back",
	})
}

func (sh *Shell) addCustomer(ctx context.Context) error {
	name, err := sh.readRequired(ctx, "Name: ", "name")
	if err != nil {
		return err
	}
	contact, err := sh.readLine(ctx, "Contact: ")
	if err != nil {
		return err
	}

	customer, err := sh.shop.Directory().Add(name, contact)
	if err != nil {
		return err
	}
	sh.success("Customer %d added: %s", customer.ID, customer.Name)
	return nil
}

func (sh *Shell) displayCustomers(context.Context) error {
	customers := sh.shop.Directory().List()
	if len(customers) == 0 {
		return errors.NewEmptyCollectionError("customers")
	}
	sh.render(table.CustomersToTableData(customers))
	return nil
}

func (sh *Shell) updateCustomer(ctx context.Context) error {
	customer, err := sh.readCustomer(ctx)
	if err != nil {
		return err
	}

	var patch directory.CustomerPatch
	if patch.Name, err = sh.readOptional(ctx, fmt.Sprintf("New name [%s]: ", customer.Name)); err != nil {
		return err
	}
	if patch.Contact, err = sh.readOptional(ctx, fmt.Sprintf("New contact [%s]: ", customer.Contact)); err != nil {
		return err
	}
	if patch.Name == nil && patch.Contact == nil {
		sh.info("Nothing changed.")
		return nil
	}

	if _, err := sh.shop.Directory().Update(customer.ID, patch); err != nil {
		return err
	}
	sh.success("Customer %d updated", customer.ID)
	return nil
}

func (sh *Shell) deleteCustomer(ctx context.Context) error {
	customer, err := sh.readCustomer(ctx)
	if err != nil {
		return err
	}
	if err := sh.shop.Directory().Delete(customer.ID); err != nil {
		return err
	}
	sh.success("Deleted successfully!")
	return nil
}

func (sh *Shell) readCustomer(ctx context.Context) (records.Customer, error) {
	ref, err := sh.readRequired(ctx, "Customer ID or name: ", "customer")
	if err != nil {
		return records.Customer{}, err
	}
	return sh.findCustomer(ref)
}

func (sh *Shell) manageStock(ctx context.Context) error {
	ctx = logging.WithRepository(ctx, "stock")
	return sh.loop(ctx, menu{
		title: "Manage Stock",
		actions: []action{
			{"Create Stock Record", sh.createStock},
			{"Display Stock", sh.displayStock},
			{"Update Stock", sh.updateStock},
			{"Delete Stock Record", sh.deleteStock},
		},
		back: "Back",
	})
}

func (sh *Shell) createStock(ctx context.Context) error {
	comic, err := sh.readComic(ctx)
	if err != nil {
		return err
	}
	qty, err := sh.readInt(ctx, "Initial quantity: ", "quantity")
	if err != nil {
		return err
	}
	stock, err := sh.shop.Ledger().Create(comic.ID, qty)
	if err != nil {
		return err
	}
	sh.success("Tracking %d copies of %s", stock.Quantity, comic.Title)
	return nil
}

func (sh *Shell) displayStock(context.Context) error {
	entries := sh.shop.Ledger().Entries(sh.shop.Catalog())
	if len(entries) == 0 {
		return errors.NewEmptyCollectionError("stock records")
	}
	sh.render(table.StockToTableData(entries))
	return nil
}

func (sh *Shell) updateStock(ctx context.Context) error {
	return sh.loop(ctx, menu{
		title: "Update Stock",
		actions: []action{
			{"Set Quantity", sh.stockChange("New quantity: ", sh.shop.Ledger().SetQuantity)},
			{"Add Stock", sh.stockChange("Copies to add: ", sh.shop.Ledger().AddStock)},
			{"Remove Stock", sh.stockChange("Copies to remove: ", sh.shop.Ledger().RemoveStock)},
		},
		back: "Back",
	})
}

// stockChange builds a menu action that applies change to one comic's stock.
func (sh *Shell) stockChange(prompt string, change func(comicID, n int) (records.Stock, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		comic, err := sh.readComic(ctx)
		if err != nil {
			return err
		}
		n, err := sh.readInt(ctx, prompt, "quantity")
		if err != nil {
			return err
		}
		stock, err := change(comic.ID, n)
		if err != nil {
			return err
		}
		sh.success("%s now has %d in stock", comic.Title, stock.Quantity)
		return nil
	}
}

// deleteStock accepts a bare comic identifier so records of deleted comics
// can still be removed.
func (sh *Shell) deleteStock(ctx context.Context) error {
	id, err := sh.readInt(ctx, "Comic ID: ", "comic_id")
	if err != nil {
		return err
	}
	if _, err := sh.shop.Ledger().FindByComicID(id); err != nil {
		return err
	}
	if err := sh.shop.Ledger().Delete(id); err != nil {
		return err
	}
	sh.success("Deleted successfully!")
	return nil
}

func (sh *Shell) viewOrders(context.Context) error {
	orders := sh.shop.Orders().List()
	if len(orders) == 0 {
		return errors.NewEmptyCollectionError("orders")
	}
	sh.render(table.OrdersToTableData(orders, true))
	return nil
}
