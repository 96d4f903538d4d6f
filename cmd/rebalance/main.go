package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/pkg/sys"

	"main/internal/bus"
	"main/internal/gateway"
	"main/internal/gateway/bridge"
	"main/internal/journal"
	"main/internal/ledger"
	"main/internal/loop"
	"main/internal/market"
	"main/internal/ops"
	"main/internal/rebal"
	"main/internal/recon"
	"main/internal/track"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("rebalance: %v", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.json", "Path to JSON config")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		return err
	}

	if cfg.Profiling != nil {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "rebalance",
			ServerAddress:   cfg.Profiling.ServerAddress,
		})
		if err != nil {
			return err
		}
		defer func() { _ = profiler.Stop() }()
	}

	jrn, closeJournal, err := buildJournal(cfg)
	if err != nil {
		return err
	}
	defer closeJournal()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sys.Shutdown()
		cancel()
	}()

	queue := bus.NewQueue(bus.DefaultCapacity)
	client := bridge.New(ctx, cfg.Gateway.URL, cfg.Gateway.ClientID, queue)
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect()
		client.Join()
	}()

	registry := market.NewRegistry()
	accounts := ledger.NewLedger()
	accounts.Register(cfg.AccountID)
	tracker := track.NewTracker()

	refresher := gateway.NewAccountRefresher(client, gateway.RequiredSummaryTags)
	if err := refresher.Start(); err != nil {
		return err
	}
	for _, symbol := range cfg.Portfolio.Symbols() {
		registry.Register(symbol)
		if _, err := client.SubscribeMarketData(symbol); err != nil {
			return err
		}
	}

	reconciler := recon.New(queue, registry, accounts, tracker, client, refresher,
		recon.WithPollTimeout(cfg.PollTimeout),
		recon.WithFillListener(jrn),
	)
	engine := rebal.NewEngine(cfg.Rebalance, cfg.Portfolio)

	return loop.New(client, reconciler, engine, tracker, accounts, registry, jrn, cfg.Window, cfg.AccountID).Run(ctx)
}

func buildJournal(cfg ops.Loaded) (journal.Journal, func(), error) {
	if cfg.Postgres == nil {
		return journal.Noop{}, func() {}, nil
	}

	pg, err := journal.NewPostgres(*cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	return pg, func() { _ = pg.Close() }, nil
}
