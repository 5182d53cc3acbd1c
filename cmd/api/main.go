package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"shop-service/cmd/api/app"
	"shop-service/cmd/api/server"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("application exited with error: %v", err)
	}
}
