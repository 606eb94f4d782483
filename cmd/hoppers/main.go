package main

import (
	"context"
	"os"

	"hoppers-ops/internal/adapters/cli"
	"hoppers-ops/internal/app"
	"hoppers-ops/internal/config"
	"hoppers-ops/internal/core"
	"hoppers-ops/internal/logger"
)

func main() {
	cfg := config.Load()
	if err := logger.Setup(cfg.Log); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.WithComponent("main")

	// Composition root: both ledgers and the order book are built here and
	// passed down by handle. State is process-lifetime only.
	inventory := core.NewInventoryLedger()
	expenses := core.NewExpenseLedger()
	orders := core.NewOrderBook(inventory)

	svc := app.NewAppService(inventory, expenses, orders)

	if cfg.DemoData {
		if err := app.SeedDemoData(context.Background(), svc); err != nil {
			log.Fatal().Err(err).Msg("demo seed failed")
		}
		log.Info().Msg("demo data loaded")
	}

	if err := cli.Execute(svc, cfg.Currency); err != nil {
		os.Exit(1)
	}
}
