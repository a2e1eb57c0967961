package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BennetC/Social-Tracker/internal/app"
)

// Seeds platform rules and connection types from the scoring config into the
// database. app.New already seeds on boot; this exists for provisioning a
// database without starting the server.
func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Services.Catalog.Seed(context.Background()); err != nil {
		a.Log.Error("Seed failed", "error", err)
		os.Exit(1)
	}
	a.Log.Info("Catalog seeded")
}
