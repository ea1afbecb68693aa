// Package customers implements the customers subcommands.
package customers

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/cmdutil"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/globals"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/directory"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/matcher"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// NewCommand creates the customers command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage the customer directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newAddCommand(app),
		newUpdateCommand(app),
		newDeleteCommand(app),
	)
	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List customers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := dir(app)
			if err != nil {
				return err
			}
			flags := globals.ParseList(cmd)

			customers := d.List()
			if flags.Search != "" {
				customers = filter(customers, flags.Search)
			}
			customers, err = matcher.Filter(customers, flags.Match, func(c records.Customer) []string {
				return []string{c.Name}
			})
			if err != nil {
				return err
			}
			customers = globals.Limit(customers, flags.Limit)
			return cmdutil.Render(cmd, app, customers, func(bool) table.Data {
				return table.CustomersToTableData(customers)
			})
		},
	}
	globals.AddListFlags(cmd)
	return cmd
}

func newShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dir(app)
			if err != nil {
				return err
			}
			c, err := Find(d, args[0])
			if err != nil {
				return err
			}
			return render(cmd, app, c)
		},
	}
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	var name, contact string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		Args:  cobra.NoArgs,
		Example: `  comicstore customers add --name "Ann Nocenti" --contact ann@example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := dir(app)
			if err != nil {
				return err
			}
			c, err := d.Add(name, contact)
			if err != nil {
				return err
			}
			if err := cmdutil.Notify(cmd, app, alerts.Successf("Customer %d added", c.ID)); err != nil {
				return err
			}
			return render(cmd, app, c)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&contact, "contact", "", "Email or phone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newUpdateCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id-or-name>",
		Short: "Change the name or contact of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch directory.CustomerPatch
			var err error
			if patch.Name, err = cmdutil.StringFlag(cmd, "name"); err != nil {
				return err
			}
			if patch.Contact, err = cmdutil.StringFlag(cmd, "contact"); err != nil {
				return err
			}

			d, err := dir(app)
			if err != nil {
				return err
			}
			c, err := Find(d, args[0])
			if err != nil {
				return err
			}
			if c, err = d.Update(c.ID, patch); err != nil {
				return err
			}
			if err := cmdutil.Notify(cmd, app, alerts.Successf("Customer %d updated", c.ID)); err != nil {
				return err
			}
			return render(cmd, app, c)
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("contact", "", "New contact")
	return cmd
}

func newDeleteCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id-or-name>",
		Aliases: []string{"rm"},
		Short:   "Delete a customer",
		Long:    `Delete a customer. Orders placed by the customer are kept.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dir(app)
			if err != nil {
				return err
			}
			c, err := Find(d, args[0])
			if err != nil {
				return err
			}
			if err := d.Delete(c.ID); err != nil {
				return err
			}
			return cmdutil.Notify(cmd, app, alerts.Successf("Customer %d deleted", c.ID))
		},
	}
}

// Find resolves ref as an identifier first, then as a name.
func Find(d *directory.Directory, ref string) (records.Customer, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		if c, err := d.FindByID(id); err == nil {
			return c, nil
		}
	}
	return d.FindByName(ref)
}

func dir(app appcontext.Interface) (*directory.Directory, error) {
	s, err := app.Shop()
	if err != nil {
		return nil, err
	}
	return s.Directory(), nil
}

func filter(customers []records.Customer, query string) []records.Customer {
	var out []records.Customer
	for _, c := range customers {
		if fold.Contains(c.Name, query) || fold.Contains(c.Contact, query) {
			out = append(out, c)
		}
	}
	return out
}

func render(cmd *cobra.Command, app appcontext.Interface, c records.Customer) error {
	return cmdutil.Render(cmd, app, c, func(bool) table.Data {
		return table.CustomersToTableData([]records.Customer{c})
	})
}
