// Package login implements the admin login check.
package login

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/auth"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// NewCommand creates the login command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check an admin login",
		Long: `Check an admin login against the credential file.

The password is read from --password or, when the flag is absent, from the
first line of standard input. Nothing is remembered between runs.`,
		Args: cobra.NoArgs,
		Example: `  comicstore login --username admin --password secret
  echo secret | comicstore login --username admin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd, app)
			if err != nil {
				return err
			}
			s, err := app.Shop()
			if err != nil {
				return err
			}
			if err := s.Authenticate(username, password); err != nil {
				app.Logger().Warn().Str("username", username).Msg("Admin login denied")
				return err
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), app.OutputFormat()).
				WriteAlert(alerts.Successf("Logged in as %s", username))
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Admin username")
	cmd.Flags().StringP("password", "p", "", "Admin password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")

	cmd.AddCommand(newStatusCommand(app))
	return cmd
}

func newStatusCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether admin credentials are configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			state := s.Auth().State()

			format := app.OutputFormat()
			if !format.IsTabular() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), map[string]string{"credentials": state.String()})
			}
			alert := alerts.NewSuccess("Admin credentials configured")
			switch state {
			case auth.StateMissing:
				alert = alerts.NewWarning("No admin credentials configured").
					WithDetails("Add a username,password line to the admin file in the data directory")
			case auth.StateInvalid:
				alert = alerts.NewError("Admin credential file has no valid line")
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).WriteAlert(alert)
		},
	}
}

func readPassword(cmd *cobra.Command, app appcontext.Interface) (string, error) {
	if cmd.Flags().Changed("password") {
		return cmd.Flags().GetString("password")
	}
	scanner := bufio.NewScanner(app.Stdin())
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", errors.WrapIO("read", "stdin", err)
	}
	return "", errors.NewValidationError("password", nil, "is required")
}
