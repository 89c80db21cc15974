package transform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotFitted = errors.New("transform: not fitted")
	ErrDimension = errors.New("transform: dimension mismatch")
	ErrInput     = errors.New("transform: invalid input")
	ErrState     = errors.New("transform: invalid state")
)

// Params are the catalog-level knobs of a step.
type Params struct {
	Components int   `yaml:"components"`
	Seed       int64 `yaml:"seed"`
}

// State is everything a fitted step needs to reproduce its Transform.
type State struct {
	Kind       string
	Params     Params
	InputDim   int
	OutputDim  int
	Offset     []float64
	Scale      []float64
	Projection *mat.Dense
}

// Transformer is a single learnable step. After Fit returns nil the value is
// read-only and Transform may be called from many goroutines.
type Transformer interface {
	Kind() string
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
	Fitted() bool
	Dims() (in, out int)
	State() State
	Restore(State) error
}

func FitTransform(t Transformer, X mat.Matrix) (*mat.Dense, error) {
	if err := t.Fit(X); err != nil {
		return nil, err
	}
	return t.Transform(X)
}

func checkFitInput(X mat.Matrix) (r, c int, err error) {
	if X == nil {
		return 0, 0, fmt.Errorf("%w: no data", ErrInput)
	}
	r, c = X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, fmt.Errorf("%w: empty %dx%d matrix", ErrInput, r, c)
	}
	if err := checkFinite(X); err != nil {
		return 0, 0, err
	}
	return r, c, nil
}

func checkTransformInput(X mat.Matrix, fitted bool, in int) error {
	if !fitted {
		return ErrNotFitted
	}
	if X == nil {
		return fmt.Errorf("%w: no data", ErrInput)
	}
	if _, c := X.Dims(); c != in {
		return fmt.Errorf("%w: got %d columns, fitted on %d", ErrDimension, c, in)
	}
	return checkFinite(X)
}

func checkFinite(X mat.Matrix) error {
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite value at (%d,%d)", ErrInput, i, j)
			}
		}
	}
	return nil
}

func checkKind(s State, kind string) error {
	if s.Kind != kind {
		return fmt.Errorf("%w: kind %q restored into %q", ErrState, s.Kind, kind)
	}
	if s.InputDim < 1 || s.OutputDim < 1 {
		return fmt.Errorf("%w: %s dims %dx%d", ErrState, kind, s.InputDim, s.OutputDim)
	}
	return nil
}

func checkProjection(s State) error {
	if s.Projection == nil {
		return fmt.Errorf("%w: %s has no projection", ErrState, s.Kind)
	}
	if r, c := s.Projection.Dims(); r != s.InputDim || c != s.OutputDim {
		return fmt.Errorf("%w: %s projection is %dx%d, want %dx%d", ErrState, s.Kind, r, c, s.InputDim, s.OutputDim)
	}
	return nil
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
