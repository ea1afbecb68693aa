// Package export implements the snapshot export command.
package export

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/report"
)

// NewCommand creates the export command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export every record of the store",
		Long: `Export the catalog, customers, stock and orders in one document.

JSON and YAML output carry every field. Any other format writes a markdown
report with one table per repository.`,
		Args: cobra.NoArgs,
		Example: `  comicstore export -o json > store.json
  comicstore export -o markdown > SNAPSHOT.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			snap := s.Snapshot()

			switch format := app.OutputFormat(); format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), snap)
			default:
				return report.Write(cmd.OutOrStdout(), snap, time.Now())
			}
		},
	}
}
