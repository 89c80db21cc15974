package transform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const KindPCA = "pca"

func init() {
	Register(KindPCA, func(p Params) (Transformer, error) {
		if p.Components < 1 {
			return nil, fmt.Errorf("transform: pca needs components >= 1, got %d", p.Components)
		}
		return &pca{params: p}, nil
	})
}

// pca projects centered rows onto the leading principal directions. The
// output width is min(components, input columns); directions beyond the rank
// of the training data are zero columns.
type pca struct {
	params Params

	mean []float64
	proj *mat.Dense // in × out
}

func (p *pca) Kind() string { return KindPCA }
func (p *pca) Fitted() bool { return p.proj != nil }
func (p *pca) Dims() (int, int) {
	if p.proj == nil {
		return 0, 0
	}
	return p.proj.Dims()
}

func (p *pca) Fit(X mat.Matrix) error {
	r, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	mean := make([]float64, c)
	for j := range mean {
		mean[j] = stat.Mean(mat.Col(nil, j, X), nil)
	}

	out := min(p.params.Components, c)
	proj := mat.NewDense(c, out, nil)
	if r > 1 {
		var pc stat.PC
		if ok := pc.PrincipalComponents(X, nil); !ok {
			return errors.New("transform: pca decomposition failed")
		}
		var vecs mat.Dense
		pc.VectorsTo(&vecs)
		_, avail := vecs.Dims()
		for k := 0; k < min(out, avail); k++ {
			col := mat.Col(nil, k, &vecs)
			flipSign(col)
			proj.SetCol(k, col)
		}
	}
	p.mean, p.proj = mean, proj
	return nil
}

// flipSign makes the largest-magnitude loading positive so that repeated
// fits on the same data produce the same directions.
func flipSign(v []float64) {
	best := 0
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[best]) {
			best = i
		}
	}
	if v[best] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}

func (p *pca) Transform(X mat.Matrix) (*mat.Dense, error) {
	if err := checkTransformInput(X, p.Fitted(), len(p.mean)); err != nil {
		return nil, err
	}
	centered := mat.DenseCopyOf(X)
	centered.Apply(func(_, j int, v float64) float64 { return v - p.mean[j] }, centered)
	var out mat.Dense
	out.Mul(centered, p.proj)
	return &out, nil
}

func (p *pca) State() State {
	in, out := p.Dims()
	s := State{Kind: KindPCA, Params: p.params, InputDim: in, OutputDim: out, Offset: cloneFloats(p.mean)}
	if p.proj != nil {
		s.Projection = mat.DenseCopyOf(p.proj)
	}
	return s
}

func (p *pca) Restore(s State) error {
	if err := checkKind(s, KindPCA); err != nil {
		return err
	}
	if err := checkProjection(s); err != nil {
		return err
	}
	if len(s.Offset) != s.InputDim {
		return fmt.Errorf("%w: pca mean has %d values, want %d", ErrState, len(s.Offset), s.InputDim)
	}
	p.params = s.Params
	p.mean, p.proj = cloneFloats(s.Offset), mat.DenseCopyOf(s.Projection)
	return nil
}
