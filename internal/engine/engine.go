package engine

import (
	"context"
	"errors"

	"dimred/internal/config"
	"dimred/internal/logging"
	"dimred/internal/registry"
	"dimred/internal/telemetry"
	"dimred/internal/transport"
	"dimred/sink"
	"dimred/source/kafka"

	"golang.org/x/sync/errgroup"
)

type Engine struct {
	cfg       config.Config
	svc       *registry.Service
	transport *transport.Server
	metrics   *telemetry.Server // nil unless metrics.enabled
	events    *sink.Fanout
	source    kafka.Adapter // nil unless source.kafka.enabled
}

func (e *Engine) Addr() string               { return e.transport.Addr() }
func (e *Engine) Service() *registry.Service { return e.svc }

// Run serves until ctx is cancelled or a listener fails, then stops
// gracefully and closes the event sinks.
func (e *Engine) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(e.transport.Serve)
	if e.metrics != nil {
		g.Go(e.metrics.Serve)
	}
	if e.source != nil {
		g.Go(func() error { return e.source.Run(gctx, fitFrom(e.svc)) })
	}
	g.Go(func() error {
		<-gctx.Done()
		logging.Component("engine").Info("shutting down")
		e.transport.Stop()
		if e.metrics == nil {
			return nil
		}
		sctx, cancel := context.WithTimeout(context.Background(), e.cfg.ShutdownTimeout)
		defer cancel()
		return e.metrics.Shutdown(sctx)
	})

	err := g.Wait()
	if cerr := e.closeFeeds(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (e *Engine) closeFeeds() error {
	var errs []error
	if e.source != nil {
		errs = append(errs, e.source.Close())
	}
	errs = append(errs, e.events.Close())
	return errors.Join(errs...)
}
