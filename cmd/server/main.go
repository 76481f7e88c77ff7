// Command server runs the exam ingest HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/willyuhot/ehexam/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
