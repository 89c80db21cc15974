package transform

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	KindStandardScaler = "standard_scaler"
	KindMinMaxScaler   = "minmax_scaler"
)

func init() {
	Register(KindStandardScaler, func(p Params) (Transformer, error) {
		return &scaler{kind: KindStandardScaler, params: p, learn: standardColumn}, nil
	})
	Register(KindMinMaxScaler, func(p Params) (Transformer, error) {
		return &scaler{kind: KindMinMaxScaler, params: p, learn: minMaxColumn}, nil
	})
}

// scaler maps every column through (x - offset) / scale.
type scaler struct {
	kind   string
	params Params
	learn  func(col []float64) (offset, scale float64)

	offset []float64
	scale  []float64
}

func standardColumn(col []float64) (float64, float64) {
	mean, std := stat.PopMeanStdDev(col, nil)
	if std == 0 {
		std = 1
	}
	return mean, std
}

func minMaxColumn(col []float64) (float64, float64) {
	lo, hi := floats.Min(col), floats.Max(col)
	if hi == lo {
		return lo, 1
	}
	return lo, hi - lo
}

func (s *scaler) Kind() string { return s.kind }
func (s *scaler) Fitted() bool { return s.offset != nil }
func (s *scaler) Dims() (int, int) {
	return len(s.offset), len(s.offset)
}

func (s *scaler) Fit(X mat.Matrix) error {
	_, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	offset := make([]float64, c)
	scale := make([]float64, c)
	for j := 0; j < c; j++ {
		offset[j], scale[j] = s.learn(mat.Col(nil, j, X))
	}
	s.offset, s.scale = offset, scale
	return nil
}

func (s *scaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if err := checkTransformInput(X, s.Fitted(), len(s.offset)); err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(X)
	out.Apply(func(_, j int, v float64) float64 {
		return (v - s.offset[j]) / s.scale[j]
	}, out)
	return out, nil
}

func (s *scaler) State() State {
	return State{
		Kind:      s.kind,
		Params:    s.params,
		InputDim:  len(s.offset),
		OutputDim: len(s.offset),
		Offset:    cloneFloats(s.offset),
		Scale:     cloneFloats(s.scale),
	}
}

func (s *scaler) Restore(st State) error {
	if err := checkKind(st, s.kind); err != nil {
		return err
	}
	if len(st.Offset) != st.InputDim || len(st.Scale) != st.InputDim || st.OutputDim != st.InputDim {
		return ErrState
	}
	for _, v := range st.Scale {
		if v == 0 {
			return ErrState
		}
	}
	s.params = st.Params
	s.offset, s.scale = cloneFloats(st.Offset), cloneFloats(st.Scale)
	return nil
}
