package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bft-labs/uspsship/internal/cliconfig"
	"github.com/bft-labs/uspsship/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		cliconfig.NewLogger(os.Stderr, "info").Error("usps", log.Err(err))
		stop()
		os.Exit(1)
	}
}
