package pipeline

import (
	"fmt"

	"dimred/internal/spec"
	"dimred/internal/transform"
)

// Build returns a fresh, unfitted pipeline for one catalog entry.
func Build(ps spec.PipelineSpec) (Pipeline, error) {
	if ps.Transform != nil {
		t, err := newStep(ps.Name, 0, *ps.Transform)
		if err != nil {
			return nil, err
		}
		return NewSingle(ps.Name, t), nil
	}

	steps := make([]transform.Transformer, 0, len(ps.Chain))
	for i, s := range ps.Chain {
		t, err := newStep(ps.Name, i, s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, t)
	}
	return NewChain(ps.Name, steps...)
}

// BuildAll builds every catalog pipeline, preserving catalog order.
func BuildAll(cat spec.Catalog) ([]Pipeline, error) {
	out := make([]Pipeline, 0, len(cat.Pipelines))
	for _, ps := range cat.Pipelines {
		p, err := Build(ps)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newStep(pipeline string, idx int, s spec.StepSpec) (transform.Transformer, error) {
	t, err := transform.New(s.Kind, transform.Params{Components: s.Components, Seed: s.Seed})
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: step %d: %w", pipeline, idx, err)
	}
	return t, nil
}
