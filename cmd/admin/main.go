// Command admin provisions dashboard accounts and talks to a running
// store-locator server.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-store-locator/internal/logger"
)

func main() {
	log := logger.NewLogger("store-locator-admin")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := newApp(os.Stdin, os.Stdout, log)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("admin command failed")
		cancel()
		os.Exit(1)
	}
}
