// Package sink publishes registry lifecycle events (fit, load) to external
// consumers. Drivers register themselves by name from init().
package sink

import (
	"errors"
	"fmt"

	pb "dimred/api/proto/v1"
	"dimred/internal/logging"
)

// Adapter is the common behaviour every sink exposes.
type Adapter interface {
	Configure(any) error          // driver-specific config struct
	Push(*pb.RegistryEvent) error // publish one event
	Close() error                 // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}

/*──────── fan-out ───────*/

// Fanout pushes every event to all adapters. A failing adapter is logged and
// skipped; publishing never fails the registry operation that emitted it.
type Fanout struct {
	adapters []Adapter
	names    []string
}

func NewFanout() *Fanout { return &Fanout{} }

func (f *Fanout) Add(name string, a Adapter) {
	f.adapters = append(f.adapters, a)
	f.names = append(f.names, name)
}

func (f *Fanout) Len() int { return len(f.adapters) }

func (f *Fanout) Publish(ev *pb.RegistryEvent) {
	for i, a := range f.adapters {
		if err := a.Push(ev); err != nil {
			logging.Component("sink").Warn("publish failed",
				"sink", f.names[i], "event", ev.GetType(), "generation", ev.GetGeneration(), "err", err)
		}
	}
}

func (f *Fanout) Close() error {
	var errs []error
	for i, a := range f.adapters {
		if err := a.Close(); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", f.names[i], err))
		}
	}
	return errors.Join(errs...)
}
