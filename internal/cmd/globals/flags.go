// Package globals provides the flag sets shared by several subcommands.
package globals

import "github.com/spf13/cobra"

// ListFlags narrow a listing.
type ListFlags struct {
	Search string
	Match  string
	Limit  int
}

// AddListFlags adds --search and --limit to a listing command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Case-insensitive search term")
	cmd.Flags().StringVar(&flags.Match, "match", "",
		"Glob or regex pattern the name must match (e.g. 'Bat*', '^X-')")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results (0 means all)")

	return flags
}

// ParseList extracts list flags from a command.
// The command must have had AddListFlags called on it, otherwise this will panic.
func ParseList(cmd *cobra.Command) *ListFlags {
	return &ListFlags{
		Search: mustGetString(cmd, "search"),
		Match:  mustGetString(cmd, "match"),
		Limit:  mustGetInt(cmd, "limit"),
	}
}

// Limit truncates items to limit when it is positive.
func Limit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
