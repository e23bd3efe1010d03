package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/nuspecmaker/cmd/nuspecmaker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := nuspecmaker.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(nuspecmaker.HandleError(os.Stderr, err))
}
