// Package comics implements the comics subcommands.
package comics

import (
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/cmdutil"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/globals"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/matcher"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// NewCommand creates the comics command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comics",
		Aliases: []string{"comic"},
		Short:   "Manage the comic catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newSearchCommand(app),
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
		Short:   "List comics",
		Args:    cobra.NoArgs,
		Example: `  comicstore comics list
  comicstore comics list --search moore -o wide
  comicstore comics list --match "X-*"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			flags := globals.ParseList(cmd)

			comics := s.Catalog().List()
			if flags.Search != "" {
				comics = s.Catalog().Search(flags.Search)
			}
			comics, err = matcher.Filter(comics, flags.Match, func(c records.Comic) []string {
				return []string{c.Title}
			})
			if err != nil {
				return err
			}
			return renderComics(cmd, app, globals.Limit(comics, flags.Limit))
		},
	}
	globals.AddListFlags(cmd)
	return cmd
}

func newSearchCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search comics by title, creator or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			return renderComics(cmd, app, s.Catalog().Search(args[0]))
		},
	}
}

func newShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-title>",
		Short: "Show one comic",
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
			return renderComic(cmd, app, comic)
		},
	}
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comic to the catalog",
		Args:  cobra.NoArgs,
		Example: `  comicstore comics add --title Watchmen --creator "Alan Moore" --price 19.99
  comicstore comics add --title Saga --price 9.99 --tag space-opera --year 2012`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := parseInput(cmd)
			if err != nil {
				return err
			}
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().Add(in)
			if err != nil {
				return err
			}
			if err := cmdutil.Notify(cmd, app, alerts.Successf("Comic %d added", comic.ID)); err != nil {
				return err
			}
			return renderComic(cmd, app, comic)
		},
	}
	addFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newUpdateCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id-or-title>",
		Short: "Change fields of a comic",
		Long:  `Only the flags given are changed. Pass --tag "" to clear the tag.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := parsePatch(cmd)
			if err != nil {
				return err
			}
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().FindByIdOrName(args[0])
			if err != nil {
				return err
			}
			comic, err = s.Catalog().Update(comic.ID, patch)
			if err != nil {
				return err
			}
			if err := cmdutil.Notify(cmd, app, alerts.Successf("Comic %d updated", comic.ID)); err != nil {
				return err
			}
			return renderComic(cmd, app, comic)
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func newDeleteCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id-or-title>",
		Aliases: []string{"rm"},
		Short:   "Delete a comic",
		Long:    `Delete a comic. Its stock record stays and is listed as "Unknown Comic".`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Shop()
			if err != nil {
				return err
			}
			comic, err := s.Catalog().FindByIdOrName(args[0])
			if err != nil {
				return err
			}
			if err := s.Catalog().Delete(comic.ID); err != nil {
				return err
			}
			return cmdutil.Notify(cmd, app, alerts.Successf("Comic %d deleted", comic.ID))
		},
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Title")
	cmd.Flags().String("creator", "", "Writer or artist")
	cmd.Flags().String("price", "", "Unit price, e.g. 19.99")
	cmd.Flags().String("tag", "", "Genre or classification")
	cmd.Flags().Int("year", 0, "Release year")
	cmd.Flags().Int("on-hand", 0, "Copies on the shelf")
}

func parseInput(cmd *cobra.Command) (catalog.ComicInput, error) {
	patch, err := parsePatch(cmd)
	if err != nil {
		return catalog.ComicInput{}, err
	}
	in := catalog.ComicInput{Tag: patch.Tag, Year: patch.Year, OnHand: patch.OnHand}
	if patch.Title != nil {
		in.Title = *patch.Title
	}
	if patch.Creator != nil {
		in.Creator = *patch.Creator
	}
	if patch.Price != nil {
		in.Price = *patch.Price
	}
	return in, nil
}

func parsePatch(cmd *cobra.Command) (catalog.ComicPatch, error) {
	var p catalog.ComicPatch
	var err error

	if p.Title, err = cmdutil.StringFlag(cmd, "title"); err != nil {
		return p, err
	}
	if p.Creator, err = cmdutil.StringFlag(cmd, "creator"); err != nil {
		return p, err
	}
	price, err := cmdutil.StringFlag(cmd, "price")
	if err != nil {
		return p, err
	}
	if price != nil {
		d, err := catalog.ParsePrice(*price)
		if err != nil {
			return p, err
		}
		p.Price = &d
	}
	if p.Tag, err = cmdutil.StringFlag(cmd, "tag"); err != nil {
		return p, err
	}
	if p.Year, err = cmdutil.IntFlag(cmd, "year"); err != nil {
		return p, err
	}
	if p.OnHand, err = cmdutil.IntFlag(cmd, "on-hand"); err != nil {
		return p, err
	}
	return p, nil
}

func renderComics(cmd *cobra.Command, app appcontext.Interface, comics []records.Comic) error {
	return cmdutil.Render(cmd, app, comics, func(wide bool) table.Data {
		return table.ComicsToTableData(comics, wide)
	})
}

func renderComic(cmd *cobra.Command, app appcontext.Interface, comic records.Comic) error {
	return cmdutil.Render(cmd, app, comic, func(bool) table.Data {
		return table.ComicToTableData(comic)
	})
}
