// Package shell implements the interactive menu command.
package shell

import (
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shell"
)

// NewCommand creates the shell command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"menu"},
		Short:   "Run the interactive store menus",
		Long: `Run the numbered admin and customer menus on standard input.

End of input or an interrupt leaves the shell from any menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			sh := shell.New(s, app.Stdin(), cmd.OutOrStdout(), shell.WithLogger(app.Logger()))
			return sh.Run(cmd.Context())
		},
	}
}
