package main

import (
	"context"
	"flag"
	"log"
	"os"

	"main/internal/bus"
	"main/internal/gateway"
	"main/internal/gateway/sim"
	"main/internal/journal"
	"main/internal/ledger"
	"main/internal/loop"
	"main/internal/market"
	"main/internal/ops"
	"main/internal/rebal"
	"main/internal/recon"
	"main/internal/track"
)

// paper exercises the decision cycle against a scripted in-process
// session: every placed order fills immediately and the refreshed
// snapshot feeds the next cycle. No broker gateway is involved.
func main() {
	if err := run(); err != nil {
		log.Printf("paper: %v", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.json", "Path to JSON config")
	netLiq := flag.Float64("net", 10_000, "Starting net liquidation value")
	price := flag.Float64("price", 100, "Scripted price for every portfolio instrument")
	cycles := flag.Int("cycles", 10, "Number of decision cycles to run")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		return err
	}

	window, err := rebal.NewWindow("UTC", 0, 24)
	if err != nil {
		return err
	}

	queue := bus.NewQueue(bus.DefaultCapacity)
	session := sim.New(queue, cfg.AccountID)
	session.EnableFills()
	session.SetNetLiquidation(*netLiq)

	registry := market.NewRegistry()
	for _, symbol := range cfg.Portfolio.Symbols() {
		registry.Register(symbol)
		session.SetPosition(symbol, 0, *price)
	}

	accounts := ledger.NewLedger()
	account := accounts.Register(cfg.AccountID)
	tracker := track.NewTracker()

	refresher := gateway.NewAccountRefresher(session, gateway.RequiredSummaryTags)
	if err := refresher.Start(); err != nil {
		return err
	}
	for _, symbol := range cfg.Portfolio.Symbols() {
		if _, err := session.SubscribeMarketData(symbol); err != nil {
			return err
		}
	}

	reconciler := recon.New(queue, registry, accounts, tracker, session, refresher,
		recon.WithPollTimeout(cfg.PollTimeout),
	)
	engine := rebal.NewEngine(cfg.Rebalance, cfg.Portfolio)
	l := loop.New(session, reconciler, engine, tracker, accounts, registry, journal.Noop{}, window, cfg.AccountID)

	// A placed order takes one extra cycle to absorb its fill report, so
	// only two idle cycles in a row mean the account has converged.
	ctx := context.Background()
	idle := 0
	for i := 0; i < *cycles && idle < 2; i++ {
		placed, err := l.RunOnce(ctx)
		if err != nil {
			return err
		}
		if placed {
			idle = 0
		} else {
			idle++
		}
	}
	log.Printf("placed %d orders", session.OrdersPlaced)

	for _, symbol := range account.Held() {
		log.Printf("position %s: %.0f", symbol, account.Position(symbol))
	}
	return nil
}
