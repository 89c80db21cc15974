// Package pipeline composes transform steps into the named units the
// registry fits, applies and persists.
package pipeline

import (
	"errors"
	"fmt"

	"dimred/internal/transform"
)

var ErrNoSteps = errors.New("pipeline: chain has no steps")

// Pipeline is either *Single or *Chain.
type Pipeline interface {
	Name() string
	stages() []transform.Transformer
}

// Single wraps one transform.
type Single struct {
	name string
	step transform.Transformer
}

func NewSingle(name string, step transform.Transformer) *Single {
	return &Single{name: name, step: step}
}

func (p *Single) Name() string                    { return p.name }
func (p *Single) Step() transform.Transformer     { return p.step }
func (p *Single) stages() []transform.Transformer { return []transform.Transformer{p.step} }

// Chain feeds each step's output into the next one, in order.
type Chain struct {
	name  string
	steps []transform.Transformer
}

func NewChain(name string, steps ...transform.Transformer) (*Chain, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSteps, name)
	}
	return &Chain{name: name, steps: append([]transform.Transformer(nil), steps...)}, nil
}

func (p *Chain) Name() string { return p.name }

func (p *Chain) Steps() []transform.Transformer {
	return append([]transform.Transformer(nil), p.steps...)
}

func (p *Chain) stages() []transform.Transformer { return p.steps }

// Info is the read-only view reported by ListPipelines.
type Info struct {
	Name      string
	Chain     bool
	Steps     []string
	InputDim  int
	OutputDim int
}

func Describe(p Pipeline) Info {
	st := p.stages()
	info := Info{Name: p.Name(), Steps: make([]string, len(st))}
	_, info.Chain = p.(*Chain)
	for i, s := range st {
		info.Steps[i] = s.Kind()
	}
	if Fitted(p) {
		info.InputDim, _ = st[0].Dims()
		_, info.OutputDim = st[len(st)-1].Dims()
	}
	return info
}

// Fitted reports whether every step carries learned parameters.
func Fitted(p Pipeline) bool {
	for _, s := range p.stages() {
		if !s.Fitted() {
			return false
		}
	}
	return true
}

// States snapshots the learned parameters of every step in order.
func States(p Pipeline) []transform.State {
	st := p.stages()
	out := make([]transform.State, len(st))
	for i, s := range st {
		out[i] = s.State()
	}
	return out
}

// Restore rebuilds a fitted pipeline from persisted step states.
func Restore(name string, chain bool, states []transform.State) (Pipeline, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSteps, name)
	}
	steps := make([]transform.Transformer, len(states))
	for i, s := range states {
		t, err := transform.Restore(s)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: step %d: %w", name, i, err)
		}
		if i > 0 {
			in, _ := t.Dims()
			if _, prev := steps[i-1].Dims(); prev != in {
				return nil, fmt.Errorf("pipeline %s: step %d takes %d columns, step %d yields %d",
					name, i, in, i-1, prev)
			}
		}
		steps[i] = t
	}
	if !chain {
		if len(steps) != 1 {
			return nil, fmt.Errorf("pipeline %s: single pipeline with %d steps", name, len(steps))
		}
		return NewSingle(name, steps[0]), nil
	}
	return NewChain(name, steps...)
}
