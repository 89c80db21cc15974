package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	pb "dimred/api/proto/v1"
	"dimred/internal/logging"
	"dimred/internal/matrix"
	"dimred/internal/pipeline"
	"dimred/internal/snapshot"
	"dimred/internal/spec"
	"dimred/internal/transform"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	EventFit  = "fit"
	EventLoad = "load"
)

// Publisher receives an event after every registry swap.
type Publisher interface {
	Publish(*pb.RegistryEvent)
}

// Observer records registry metrics.
type Observer interface {
	ObserveFit(d time.Duration, err error)
	RegistrySwapped(pipelines int, at time.Time)
}

type Options struct {
	Catalog spec.Catalog
	Store   snapshot.Store
	Events  Publisher // optional
	Metrics Observer  // optional
}

// Service serialises Fit and Load against each other; Transform and
// Pipelines never block on them.
type Service struct {
	catalog spec.Catalog
	store   snapshot.Store
	events  Publisher
	obs     Observer

	writer *semaphore.Weighted
	cur    atomic.Pointer[Registry]
}

func NewService(opts Options) *Service {
	s := &Service{
		catalog: opts.Catalog,
		store:   opts.Store,
		events:  opts.Events,
		obs:     opts.Metrics,
		writer:  semaphore.NewWeighted(1),
	}
	if s.obs == nil {
		s.obs = nopObserver{}
	}
	return s
}

// Current returns the live registry, or nil before the first Fit or Load.
func (s *Service) Current() *Registry { return s.cur.Load() }

// Fit builds every catalog pipeline fresh, fits it on m, persists the
// result and only then replaces the live registry. On any failure the
// previous registry and snapshot stay in place.
func (s *Service) Fit(ctx context.Context, m matrix.Matrix) error {
	if err := s.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.writer.Release(1)

	start := time.Now()
	reg, err := s.fit(ctx, m)
	s.obs.ObserveFit(time.Since(start), err)
	if err != nil {
		return err
	}

	s.swap(reg)
	logging.Component("registry").Info("fitted",
		"generation", reg.generation, "pipelines", reg.Len(),
		"rows", m.Rows(), "cols", m.Cols(), "took", time.Since(start))
	s.publish(EventFit, reg, m.Rows())
	return nil
}

func (s *Service) fit(ctx context.Context, m matrix.Matrix) (*Registry, error) {
	if m.IsEmpty() || m.Cols() == 0 {
		return nil, newErr(ErrFitFailure, "fit", "", errors.New("no training vectors"))
	}
	ps, err := pipeline.BuildAll(s.catalog)
	if err != nil {
		return nil, newErr(ErrFitFailure, "fit", "", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range ps {
		g.Go(func() error {
			if err := pipeline.Fit(gctx, p, m); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return newErr(ErrFitFailure, "fit", p.Name(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := newRegistry(uuid.NewString(), time.Now(), ps)
	data, err := Encode(reg)
	if err != nil {
		return nil, newErr(ErrPersistence, "fit", "", err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newErr(ErrPersistence, "fit", "", err)
	}
	return reg, nil
}

// Transform applies the named fitted pipeline to m. The result has one
// row per input row, in input order.
func (s *Service) Transform(ctx context.Context, name string, m matrix.Matrix) (matrix.Matrix, error) {
	reg := s.cur.Load()
	if reg == nil || reg.Len() == 0 {
		return matrix.Matrix{}, newErr(ErrEmptyRegistry, "transform", name, nil)
	}
	p, ok := reg.Get(name)
	if !ok {
		return matrix.Matrix{}, newErr(ErrUnknownPipeline, "transform", name, nil)
	}

	out, err := pipeline.Apply(ctx, p, m)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return matrix.Matrix{}, err
	case errors.Is(err, transform.ErrDimension), errors.Is(err, transform.ErrInput):
		return matrix.Matrix{}, newErr(ErrInvalidInput, "transform", name, err)
	default:
		return matrix.Matrix{}, err
	}
}

// Load replaces the live registry with the persisted snapshot.
func (s *Service) Load(ctx context.Context) error {
	if err := s.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.writer.Release(1)

	data, err := s.store.Load(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return newErr(ErrPersistence, "load", "", err)
	}
	reg, err := Decode(data)
	if err != nil {
		return newErr(ErrPersistence, "load", "", err)
	}

	s.swap(reg)
	logging.Component("registry").Info("loaded",
		"generation", reg.generation, "pipelines", reg.Len(), "from", s.store.Location())
	s.publish(EventLoad, reg, 0)
	return nil
}

type Listing struct {
	Generation string
	FittedAt   time.Time
	Pipelines  []pipeline.Info
}

func (s *Service) Pipelines(ctx context.Context) (Listing, error) {
	if err := ctx.Err(); err != nil {
		return Listing{}, err
	}
	reg := s.cur.Load()
	if reg == nil || reg.Len() == 0 {
		return Listing{}, newErr(ErrEmptyRegistry, "pipelines", "", nil)
	}
	out := Listing{Generation: reg.generation, FittedAt: reg.fittedAt}
	for _, p := range reg.Pipelines() {
		out.Pipelines = append(out.Pipelines, pipeline.Describe(p))
	}
	return out, nil
}

func (s *Service) swap(reg *Registry) {
	s.cur.Store(reg)
	s.obs.RegistrySwapped(reg.Len(), time.Now())
}

func (s *Service) publish(typ string, reg *Registry, rows int) {
	if s.events == nil {
		return
	}
	s.events.Publish(&pb.RegistryEvent{
		Id:         uuid.NewString(),
		Type:       typ,
		Generation: reg.generation,
		Pipelines:  reg.Names(),
		Rows:       int32(rows),
		Cols:       int32(reg.cols),
		AtUnixNano: time.Now().UnixNano(),
	})
}

type nopObserver struct{}

func (nopObserver) ObserveFit(time.Duration, error) {}
func (nopObserver) RegistrySwapped(int, time.Time)  {}
