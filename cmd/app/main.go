package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"YieldPulse/internal/di"
	"YieldPulse/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Local development convenience, a missing .env is fine
	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s pools=%s market=%s", cfg.Environment, cfg.DeFiLlama.PoolsURL, cfg.CoinGecko.BaseURL)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if cfg.History.Enabled {
		log.Printf("clickhouse: connected and schema ready - db: %s", cfg.History.Database)
	}
	if cfg.Events.Enabled {
		log.Printf("kafka: connected brokers=%v topic=%s", cfg.Events.Brokers, cfg.Events.Topic)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
