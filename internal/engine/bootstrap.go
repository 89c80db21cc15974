package engine

import (
	"context"
	"errors"
	"fmt"

	"dimred/internal/config"
	"dimred/internal/logging"
	"dimred/internal/registry"
	"dimred/internal/snapshot"
	"dimred/internal/telemetry"
	"dimred/internal/transport"
)

func Bootstrap(ctx context.Context, cfg config.Config) (*Engine, error) {
	logging.InitFromEnv(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	log := logging.Component("engine")

	// 1. pipeline catalog
	cat, err := config.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	// 2. snapshot store
	store, err := snapshot.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	// 3. event sinks
	events, err := openSinks(cfg.Events)
	if err != nil {
		return nil, fmt.Errorf("sinks: %w", err)
	}

	// 4. registry
	metrics := telemetry.New()
	svc := registry.NewService(registry.Options{
		Catalog: cat,
		Store:   store,
		Events:  events,
		Metrics: metrics,
	})
	if cfg.Snapshot.LoadOnStart {
		switch err := svc.Load(ctx); {
		case err == nil:
		case errors.Is(err, snapshot.ErrNotFound):
			log.Warn("no snapshot to load, starting empty", "location", store.Location())
		default:
			_ = events.Close()
			return nil, fmt.Errorf("load on start: %w", err)
		}
	}

	// 5. optional training feed
	source, err := openSource(cfg.Source.Kafka)
	if err != nil {
		_ = events.Close()
		return nil, err
	}

	// 6. transport + metrics endpoint
	e := &Engine{
		cfg:    cfg,
		svc:    svc,
		events: events,
		source: source,
	}
	e.transport, err = transport.StartServer(cfg.GRPC, transport.NewHandler(svc), metrics)
	if err != nil {
		_ = e.closeFeeds()
		return nil, fmt.Errorf("transport: %w", err)
	}
	if cfg.Metrics.Enabled {
		e.metrics, err = metrics.Listen(cfg.Metrics.Address)
		if err != nil {
			e.transport.Stop()
			_ = e.closeFeeds()
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}

	log.Info("bootstrapped",
		"grpc", e.transport.Addr(), "catalog", cat.Names(), "snapshot", store.Location(), "sinks", cfg.Events.Sinks)
	return e, nil
}
