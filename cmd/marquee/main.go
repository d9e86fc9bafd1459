package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd, ctx := newRootCommand()
	err := cmd.Execute()
	if closeErr := ctx.close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, formatError(err))
		}
		os.Exit(1)
	}
}
