package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories, the catalog database and OMDb access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cctx := ctx.commandCtx(cmd)

			var checker preflight.HealthChecker
			store, storeErr := ctx.openStore()
			if storeErr == nil {
				checker = store
			}
			results := preflight.RunAll(cctx, cfg, checker)
			if storeErr != nil {
				results = append(results, preflight.Result{Name: "Catalog database", Detail: storeErr.Error()})
			}
			ctx.loggerFor(cctx).InfoContext(cctx, "status checked", "passed", preflight.AllPassed(results))

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("marquee status", colorize) {
					fmt.Fprintln(out, line)
				}
				for _, line := range preflightLines(results, colorize) {
					fmt.Fprintln(out, line)
				}
			}
			if !preflight.AllPassed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}
