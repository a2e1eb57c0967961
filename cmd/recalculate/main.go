package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BennetC/Social-Tracker/internal/app"
)

// Recomputes every derived score: platform, connection-type, and tag priority
// ratings plus event importance. Useful after editing the scoring config.
func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()
	if err := a.Services.Scoring.RecalculateAllRatings(ctx); err != nil {
		a.Log.Error("Rating recalculation failed", "error", err)
		os.Exit(1)
	}
	if err := a.Services.Scoring.RecalculateAllEventImportance(ctx); err != nil {
		a.Log.Error("Event importance recalculation failed", "error", err)
		os.Exit(1)
	}
	a.Log.Info("Recalculation complete")
}
