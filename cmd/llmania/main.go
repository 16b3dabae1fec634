// Package main is the entry point for LLMania.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/markusos/llmania/internal/game"
	"github.com/markusos/llmania/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LLMANIA_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	var (
		debugMode = flag.Bool("debug", false, "run headless and print the final state as text")
		aiActive  = flag.Bool("ai", false, "let the auto-player play the game")
		aiSleep   = flag.Duration("ai-sleep", 100*time.Millisecond, "delay between auto-player turns")
		seed      = flag.Int64("seed", 0, "map generation seed (0 = random)")
		width     = flag.Int("width", game.DefaultWidth, "map width in tiles")
		height    = flag.Int("height", game.DefaultHeight, "map height in tiles")
	)
	flag.Parse()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	engine, err := game.New(game.Config{
		Width:     *width,
		Height:    *height,
		Seed:      *seed,
		DebugMode: *debugMode,
		AIActive:  *aiActive,
		AISleep:   *aiSleep,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := engine.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_LLMANIA_API_KEY")
	dataset := os.Getenv("HONEYCOMB_LLMANIA_DATASET")
	if dataset == "" {
		dataset = "llmania" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
