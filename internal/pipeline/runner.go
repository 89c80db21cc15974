package pipeline

import (
	"context"
	"fmt"

	"dimred/internal/matrix"
	"dimred/internal/transform"

	"gonum.org/v1/gonum/mat"
)

// Fit learns every step's parameters from m. A chain fits step i on the
// output of step i-1 applied to m.
func Fit(ctx context.Context, p Pipeline, m matrix.Matrix) error {
	x, err := m.Dense()
	if err != nil {
		return fmt.Errorf("pipeline %s: %w: %v", p.Name(), transform.ErrInput, err)
	}

	switch p := p.(type) {
	case *Single:
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.step.Fit(x); err != nil {
			return stepErr(p.name, 0, p.step, err)
		}
		return nil

	case *Chain:
		var cur mat.Matrix = x
		last := len(p.steps) - 1
		for i, s := range p.steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i == last {
				if err := s.Fit(cur); err != nil {
					return stepErr(p.name, i, s, err)
				}
				break
			}
			next, err := transform.FitTransform(s, cur)
			if err != nil {
				return stepErr(p.name, i, s, err)
			}
			cur = next
		}
		return nil

	default:
		return fmt.Errorf("pipeline: unsupported variant %T", p)
	}
}

// Apply runs m through the fitted steps. Rows keep their order; a 0-row m
// yields a 0-row result without touching the transforms.
func Apply(ctx context.Context, p Pipeline, m matrix.Matrix) (matrix.Matrix, error) {
	st := p.stages()
	if !Fitted(p) {
		return matrix.Matrix{}, fmt.Errorf("pipeline %s: %w", p.Name(), transform.ErrNotFitted)
	}
	in, _ := st[0].Dims()
	_, out := st[len(st)-1].Dims()

	if m.IsEmpty() {
		if m.Cols() != 0 && m.Cols() != in {
			return matrix.Matrix{}, fmt.Errorf("pipeline %s: %w: got %d columns, fitted on %d",
				p.Name(), transform.ErrDimension, m.Cols(), in)
		}
		return matrix.Empty(out), nil
	}

	x, err := m.Dense()
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("pipeline %s: %w: %v", p.Name(), transform.ErrInput, err)
	}
	var cur mat.Matrix = x
	for i, s := range st {
		if err := ctx.Err(); err != nil {
			return matrix.Matrix{}, err
		}
		next, err := s.Transform(cur)
		if err != nil {
			return matrix.Matrix{}, stepErr(p.Name(), i, s, err)
		}
		cur = next
	}
	return matrix.FromDense(cur), nil
}

func stepErr(name string, i int, s transform.Transformer, err error) error {
	return fmt.Errorf("pipeline %s: step %d (%s): %w", name, i, s.Kind(), err)
}
