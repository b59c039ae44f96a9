package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/swt/cmd/swt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := swt.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		swt.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
