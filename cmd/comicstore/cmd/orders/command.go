// Package orders implements the orders command.
package orders

import (
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/cmdutil"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/globals"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/matcher"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// NewCommand creates the orders command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Inspect committed orders",
		Long: `Inspect committed orders.

Each order is one checked-out cart line. Lines from the same checkout share
a receipt identifier.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newListCommand(app))
	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	var receipt string
	var customer, comic int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List committed orders",
		Args:    cobra.NoArgs,
		Example: `  comicstore orders list
  comicstore orders list --customer 3 -o wide
  comicstore orders list --receipt 5f0c6a2e-...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			flags := globals.ParseList(cmd)
			history := s.Orders()

			var list []records.Order
			switch {
			case receipt != "":
				list = history.ForReceipt(receipt)
			case cmd.Flags().Changed("customer"):
				list = history.ForCustomer(customer)
			case cmd.Flags().Changed("comic"):
				list = history.ForComic(comic)
			default:
				list = history.List()
			}
			if flags.Search != "" {
				var matched []records.Order
				for _, o := range list {
					if fold.Contains(o.Title, flags.Search) {
						matched = append(matched, o)
					}
				}
				list = matched
			}
			list, err = matcher.Filter(list, flags.Match, func(o records.Order) []string {
				return []string{o.Title}
			})
			if err != nil {
				return err
			}
			list = globals.Limit(list, flags.Limit)

			return cmdutil.Render(cmd, app, list, func(wide bool) table.Data {
				return table.OrdersToTableData(list, wide)
			})
		},
	}

	globals.AddListFlags(cmd)
	cmd.Flags().StringVar(&receipt, "receipt", "", "Only lines of this receipt")
	cmd.Flags().IntVar(&customer, "customer", 0, "Only orders of this customer (0 for walk-in)")
	cmd.Flags().IntVar(&comic, "comic", 0, "Only orders of this comic")
	cmd.MarkFlagsMutuallyExclusive("receipt", "customer", "comic")
	return cmd
}
