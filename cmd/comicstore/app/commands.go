package app

import (
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/comics"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/customers"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/export"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/login"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/man"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/orders"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/purchase"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/shell"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/stock"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/cmd/comicstore/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Record commands
	rootCmd.AddCommand(withGroup("records", comics.NewCommand(a)))
	rootCmd.AddCommand(withGroup("records", customers.NewCommand(a)))
	rootCmd.AddCommand(withGroup("records", stock.NewCommand(a)))
	rootCmd.AddCommand(withGroup("records", export.NewCommand(a)))

	// Sales commands
	rootCmd.AddCommand(withGroup("sales", shell.NewCommand(a)))
	rootCmd.AddCommand(withGroup("sales", purchase.NewCommand(a)))
	rootCmd.AddCommand(withGroup("sales", orders.NewCommand(a)))
	rootCmd.AddCommand(withGroup("sales", login.NewCommand(a)))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand())
}

func withGroup(id string, cmd *cobra.Command) *cobra.Command {
	cmd.GroupID = id
	return cmd
}
