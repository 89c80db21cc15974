// Package registry owns the set of fitted pipelines served by dimred and
// the Fit / Transform / Load operations over it.
package registry

import (
	"time"

	"dimred/internal/pipeline"
)

// Registry is immutable once built. Fit and Load publish a new one; readers
// holding an old pointer keep a consistent view.
type Registry struct {
	generation string
	fittedAt   time.Time
	cols       int
	names      []string
	byName     map[string]pipeline.Pipeline
}

func newRegistry(generation string, fittedAt time.Time, ps []pipeline.Pipeline) *Registry {
	r := &Registry{
		generation: generation,
		fittedAt:   fittedAt,
		names:      make([]string, 0, len(ps)),
		byName:     make(map[string]pipeline.Pipeline, len(ps)),
	}
	for _, p := range ps {
		r.names = append(r.names, p.Name())
		r.byName[p.Name()] = p
	}
	if len(ps) > 0 {
		r.cols = pipeline.Describe(ps[0]).InputDim
	}
	return r
}

func (r *Registry) Generation() string  { return r.generation }
func (r *Registry) FittedAt() time.Time { return r.fittedAt }

// Cols is the vector width the registry was fitted on.
func (r *Registry) Cols() int { return r.cols }
func (r *Registry) Len() int  { return len(r.names) }

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) Get(name string) (pipeline.Pipeline, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Pipelines returns the pipelines in catalog order.
func (r *Registry) Pipelines() []pipeline.Pipeline {
	out := make([]pipeline.Pipeline, len(r.names))
	for i, n := range r.names {
		out[i] = r.byName[n]
	}
	return out
}
