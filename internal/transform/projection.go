package transform

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

const KindRandomProjection = "random_projection"

func init() {
	Register(KindRandomProjection, func(p Params) (Transformer, error) {
		if p.Components < 1 {
			return nil, fmt.Errorf("transform: random_projection needs components >= 1, got %d", p.Components)
		}
		return &randomProjection{params: p}, nil
	})
}

// randomProjection multiplies rows by a Gaussian matrix with N(0, 1/k)
// entries. Seed 0 draws a fresh seed on every Fit, so two fits on the same
// data differ.
type randomProjection struct {
	params Params

	proj *mat.Dense // in × k
}

func (p *randomProjection) Kind() string { return KindRandomProjection }
func (p *randomProjection) Fitted() bool { return p.proj != nil }
func (p *randomProjection) Dims() (int, int) {
	if p.proj == nil {
		return 0, 0
	}
	return p.proj.Dims()
}

func (p *randomProjection) Fit(X mat.Matrix) error {
	_, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	seed := uint64(p.params.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	k := p.params.Components
	sd := 1 / math.Sqrt(float64(k))
	data := make([]float64, c*k)
	for i := range data {
		data[i] = rng.NormFloat64() * sd
	}
	p.proj = mat.NewDense(c, k, data)
	return nil
}

func (p *randomProjection) Transform(X mat.Matrix) (*mat.Dense, error) {
	in, _ := p.Dims()
	if err := checkTransformInput(X, p.Fitted(), in); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(X, p.proj)
	return &out, nil
}

func (p *randomProjection) State() State {
	in, out := p.Dims()
	s := State{Kind: KindRandomProjection, Params: p.params, InputDim: in, OutputDim: out}
	if p.proj != nil {
		s.Projection = mat.DenseCopyOf(p.proj)
	}
	return s
}

func (p *randomProjection) Restore(s State) error {
	if err := checkKind(s, KindRandomProjection); err != nil {
		return err
	}
	if err := checkProjection(s); err != nil {
		return err
	}
	p.params = s.Params
	p.proj = mat.DenseCopyOf(s.Projection)
	return nil
}
