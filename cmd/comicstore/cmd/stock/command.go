// Package stock implements the stock subcommands.
package stock

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/cmdutil"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/globals"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/ledger"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/matcher"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// NewCommand creates the stock command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Track on-hand quantities",
		Long: `Track on-hand quantities.

Each comic has at most one stock record and quantities never go negative.
Comics are named by identifier or title.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newCreateCommand(app),
		newChangeCommand(app, "set", "Set the quantity of a comic", (*ledger.Ledger).SetQuantity),
		newChangeCommand(app, "add", "Receive copies of a comic", (*ledger.Ledger).AddStock),
		newChangeCommand(app, "remove", "Take copies of a comic out of stock", (*ledger.Ledger).RemoveStock),
		newDeleteCommand(app),
	)
	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stock records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			flags := globals.ParseList(cmd)

			entries := s.Ledger().Entries(s.Catalog())
			if flags.Search != "" {
				var matched []ledger.Entry
				for _, e := range entries {
					if fold.Contains(e.Title, flags.Search) {
						matched = append(matched, e)
					}
				}
				entries = matched
			}
			entries, err = matcher.Filter(entries, flags.Match, func(e ledger.Entry) []string {
				return []string{e.Title}
			})
			if err != nil {
				return err
			}
			return render(cmd, app, globals.Limit(entries, flags.Limit))
		},
	}
	globals.AddListFlags(cmd)
	return cmd
}

func newShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show <comic>",
		Short: "Show the stock record of one comic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().FindByIdOrName(args[0])
			if err != nil {
				return err
			}
			st, err := s.Ledger().FindByComicID(comic.ID)
			if err != nil {
				return err
			}
			return render(cmd, app, []ledger.Entry{{Stock: st, Title: comic.Title}})
		},
	}
}

func newCreateCommand(app appcontext.Interface) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:     "create <comic>",
		Short:   "Start tracking a comic",
		Args:    cobra.ExactArgs(1),
		Example: `  comicstore stock create Watchmen --quantity 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().FindByIdOrName(args[0])
			if err != nil {
				return err
			}
			st, err := s.Ledger().Create(comic.ID, qty)
			if err != nil {
				return err
			}
			return done(cmd, app, comic, st, fmt.Sprintf("Tracking %d copies of %s", st.Quantity, comic.Title))
		},
	}
	cmd.Flags().IntVar(&qty, "quantity", 0, "Initial quantity")
	return cmd
}

// newChangeCommand builds a subcommand applying change to one comic's record.
func newChangeCommand(app appcontext.Interface, use, short string, change func(*ledger.Ledger, int, int) (records.Stock, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <comic> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.NewValidationError("quantity", args[1], "must be a whole number")
			}
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().FindByIdOrName(args[0])
			if err != nil {
				return err
			}
			st, err := change(s.Ledger(), comic.ID, n)
			if err != nil {
				return err
			}
			return done(cmd, app, comic, st, fmt.Sprintf("%s now has %d in stock", comic.Title, st.Quantity))
		},
	}
}

// newDeleteCommand takes a bare comic identifier so records of deleted
// comics can still be removed.
func newDeleteCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <comic-id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a comic",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("comic_id", args[0], "must be a whole number")
			}
			s, err := app.Shop()
			if err != nil {
				return err
			}
			if _, err := s.Ledger().FindByComicID(id); err != nil {
				return err
			}
			if err := s.Ledger().Delete(id); err != nil {
				return err
			}
			return cmdutil.Notify(cmd, app, alerts.Successf("Stock record for comic %d deleted", id))
		},
	}
}

func done(cmd *cobra.Command, app appcontext.Interface, comic records.Comic, st records.Stock, message string) error {
	if err := cmdutil.Notify(cmd, app, alerts.NewSuccess(message)); err != nil {
		return err
	}
	return render(cmd, app, []ledger.Entry{{Stock: st, Title: comic.Title}})
}

func render(cmd *cobra.Command, app appcontext.Interface, entries []ledger.Entry) error {
	return cmdutil.Render(cmd, app, entries, func(bool) table.Data {
		return table.StockToTableData(entries)
	})
}
