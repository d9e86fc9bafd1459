package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
)

func newMovieCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newListCommand(ctx),
		newAddCommand(ctx),
		newLookupCommand(ctx),
		newSearchCommand(ctx),
		newSortCommand(ctx),
		newStatsCommand(ctx),
		newRandomCommand(ctx),
		newUpdateCommand(ctx),
		newDeleteCommand(ctx),
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every movie in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			movies, err := ops.list(cctx)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movies, func() {
				writeMovies(cmd.OutOrStdout(), movies, "No movies yet. Add one with `marquee add <title>`.")
			})
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		manual bool
		year   int
		rating float64
		poster string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Look a movie up on OMDb and add it",
		Long: "Look a movie up on OMDb and add it to the collection.\n\n" +
			"With --manual the lookup is skipped and --year and --rating are stored as given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}

			var movie catalog.Movie
			if manual {
				if !cmd.Flags().Changed("year") || !cmd.Flags().Changed("rating") {
					return fmt.Errorf("--manual requires --year and --rating")
				}
				movie, err = ops.addManual(cctx, catalog.Movie{Title: title, Year: year, Rating: rating, PosterURL: strings.TrimSpace(poster)})
			} else {
				movie, err = ops.add(cctx, title)
			}
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movie, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", describeMovie(movie))
			})
		},
	}

	cmd.Flags().BoolVar(&manual, "manual", false, "Skip the OMDb lookup and store the given fields")
	cmd.Flags().IntVar(&year, "year", 0, "Release year (with --manual)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating from 0 to 10 (with --manual)")
	cmd.Flags().StringVar(&poster, "poster", "", "Poster image URL (with --manual)")
	return cmd
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <title>",
		Short: "Show OMDb metadata for a title without storing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			meta, err := ops.fetch(cctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return ctx.emit(cmd, meta, func() {
				rows := [][]string{
					{"Title", meta.Title},
					{"Year", fmt.Sprint(meta.Year)},
					{"Rating", formatRating(meta.Rating)},
					{"Poster", posterLabel(meta.PosterURL)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			})
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <fragment>",
		Short: "Find movies whose title contains the fragment (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			fragment := strings.Join(args, " ")
			movies, err := ops.search(cctx, fragment)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movies, func() {
				writeMovies(cmd.OutOrStdout(), movies, fmt.Sprintf("No movies match %q.", fragment))
			})
		},
	}
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "List movies by rating, best first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			movies, err := ops.sorted(cctx)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movies, func() {
				writeMovies(cmd.OutOrStdout(), movies, "No movies yet.")
			})
		},
	}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show average, median, best and worst ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			stats, err := ops.stats(cctx)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, stats, func() {
				writeStats(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a movie for tonight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			movie, err := ops.random(cctx)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movie, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Your movie for tonight: %s\n", describeMovie(movie))
			})
		},
	}
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update <title> <rating>",
		Short: "Change the rating of a stored movie",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := parseRating(args[len(args)-1])
			if err != nil {
				return err
			}
			title := strings.Join(args[:len(args)-1], " ")
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			movie, err := ops.update(cctx, title, rating)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, movie, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", describeMovie(movie))
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <title>",
		Aliases: []string{"rm"},
		Short:   "Remove a movie from the collection",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := catalog.NormalizeTitle(strings.Join(args, " "))
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !confirm(cmd.OutOrStdout(), reader, fmt.Sprintf("Delete %q?", title)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}
			if err := ops.remove(cctx, title); err != nil {
				return err
			}
			return ctx.emit(cmd, map[string]string{"deleted": title}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", title)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
