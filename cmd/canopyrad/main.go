// Command canopyrad computes the radiation absorbed by the sunlit and shaded
// leaves of a canopy from a forcing time series.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"canopyrad/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	log.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
