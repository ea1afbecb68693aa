package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

// Execute runs the comicstore CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "comicstore",
		Short:   "Comic book store back office",
		Version: a.version,
		Long: `comicstore manages the catalog, stock, customers and orders of a comic
book store. Every record lives in plain text files under the data directory.

Run "comicstore shell" for the interactive menus, or use the subcommands
for one-shot edits and scripting.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "sales", Title: "Sales Commands:"},
	)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", a.configFile, "config file (default is ./.comicstore.yaml or $HOME/.comicstore.yaml)")
	flags.String("data-dir", "", "directory holding the record files (default \"data\")")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml, markdown")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	a.bindFlags(flags)

	if a.stdout != nil {
		rootCmd.SetOut(a.stdout)
	}
	rootCmd.SetVersionTemplate("comicstore {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// bindFlags maps root flags onto config keys so a flag beats every other source.
func (a *App) bindFlags(flags *pflag.FlagSet) {
	for key, flag := range map[string]string{
		"data_dir":  "data-dir",
		"verbose":   "verbose",
		"quiet":     "quiet",
		"no_color":  "no-color",
		"format":    "format",
		"log_level": "log-level",
	} {
		if err := a.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic("programming error: failed to bind flag " + flag + ": " + err.Error())
		}
	}
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.viper, a.configFile)
	if err != nil {
		return err
	}
	a.config = config

	if !a.fixedLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
		logging.SetDefault(logger)
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config_file", a.config.ConfigFile).
		Str("data_dir", a.config.Shop.DataDir).
		Msg("Configuration loaded")
	return nil
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
