// Package cmdutil holds helpers shared by the record subcommands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
)

// Render writes records to the command's stdout in the configured format.
func Render(cmd *cobra.Command, app appcontext.Interface, records any, tbl func(wide bool) table.Data) error {
	return output.Render(cmd.OutOrStdout(), app.OutputFormat(), records, tbl)
}

// Notify prints a status line for table output. Structured formats print
// only the records, so nothing is written for them.
func Notify(cmd *cobra.Command, app appcontext.Interface, alert *alerts.Alert) error {
	format := app.OutputFormat()
	if !format.IsTabular() {
		return nil
	}
	return alerts.NewFormatWriter(cmd.OutOrStdout(), format).WriteAlert(alert)
}

// StringFlag returns the value of name and whether it was set on the command line.
func StringFlag(cmd *cobra.Command, name string) (*string, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// IntFlag returns the value of name when it was set on the command line.
func IntFlag(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
