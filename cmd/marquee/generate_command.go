package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the collection as a static HTML page",
		Long: "Write the collection to <website_dir>/<name>.html with the bundled stylesheet.\n\n" +
			"The page is titled \"Movie Database of <name>\"; name defaults to website.name from the config.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			result, err := ops.generate(cctx, name)
			if err != nil {
				return err
			}
			return ctx.emit(cmd, result, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Website generated at %s (%d %s)\n",
					result.PagePath, result.MovieCount, plural(result.MovieCount, "movie", "movies"))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Collection owner shown in the page title and used as file name")
	return cmd
}
