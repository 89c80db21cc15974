package pipeline

import (
	"context"
	"math/rand/v2"
	"testing"

	"dimred/internal/config"
	"dimred/internal/matrix"
	"dimred/internal/spec"
	"dimred/internal/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randMatrix(t *testing.T, rows, cols int, seed uint64) matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed+1))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = rng.NormFloat64()*float64(j+1) + float64(j)
		}
	}
	m, err := matrix.FromRows(data)
	require.NoError(t, err)
	return m
}

func scaledPCA() spec.PipelineSpec {
	return spec.PipelineSpec{Name: "scaled_pca", Chain: []spec.StepSpec{
		{Kind: transform.KindStandardScaler},
		{Kind: transform.KindPCA, Components: 2},
	}}
}

func TestBuildAllDefaultCatalog(t *testing.T) {
	cat := config.DefaultCatalog()
	ps, err := BuildAll(cat)
	require.NoError(t, err)
	require.Len(t, ps, len(cat.Pipelines))

	for i, p := range ps {
		assert.Equal(t, cat.Pipelines[i].Name, p.Name())
		assert.False(t, Fitted(p))
		_, isChain := p.(*Chain)
		assert.Equal(t, cat.Pipelines[i].IsChain(), isChain)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(spec.PipelineSpec{Name: "x", Transform: &spec.StepSpec{Kind: "umap"}})
	assert.ErrorContains(t, err, "umap")

	_, err = NewChain("empty")
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestSingleFitApply(t *testing.T) {
	p, err := Build(spec.PipelineSpec{Name: "pca", Transform: &spec.StepSpec{Kind: transform.KindPCA, Components: 2}})
	require.NoError(t, err)

	m := randMatrix(t, 10, 4, 1)
	require.NoError(t, Fit(context.Background(), p, m))

	out, err := Apply(context.Background(), p, m)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Rows())
	assert.Equal(t, 2, out.Cols())

	info := Describe(p)
	assert.Equal(t, Info{Name: "pca", Steps: []string{transform.KindPCA}, InputDim: 4, OutputDim: 2}, info)
}

func TestChainMatchesManualComposition(t *testing.T) {
	p, err := Build(scaledPCA())
	require.NoError(t, err)
	m := randMatrix(t, 12, 5, 2)
	require.NoError(t, Fit(context.Background(), p, m))

	scaler, err := transform.New(transform.KindStandardScaler, transform.Params{})
	require.NoError(t, err)
	pca, err := transform.New(transform.KindPCA, transform.Params{Components: 2})
	require.NoError(t, err)
	x, err := m.Dense()
	require.NoError(t, err)
	scaled, err := transform.FitTransform(scaler, x)
	require.NoError(t, err)
	want, err := transform.FitTransform(pca, scaled)
	require.NoError(t, err)

	got, err := Apply(context.Background(), p, m)
	require.NoError(t, err)
	assertClose(t, matrix.FromDense(want), got)

	info := Describe(p)
	assert.True(t, info.Chain)
	assert.Equal(t, []string{transform.KindStandardScaler, transform.KindPCA}, info.Steps)
}

func TestChainApplyReusesFittedParameters(t *testing.T) {
	p, err := Build(spec.PipelineSpec{Name: "s", Chain: []spec.StepSpec{{Kind: transform.KindStandardScaler}}})
	require.NoError(t, err)
	m := randMatrix(t, 8, 3, 3)
	require.NoError(t, Fit(context.Background(), p, m))

	full, err := Apply(context.Background(), p, m)
	require.NoError(t, err)

	// Refitting on one row would map it to zeros.
	one, err := matrix.FromRows([][]float64{m.Row(0)})
	require.NoError(t, err)
	got, err := Apply(context.Background(), p, one)
	require.NoError(t, err)
	assert.InDeltaSlice(t, full.Row(0), got.Row(0), 1e-12)
	assert.NotEqual(t, []float64{0, 0, 0}, got.Row(0))
}

func TestApplyEmptyAndMismatch(t *testing.T) {
	p, err := Build(scaledPCA())
	require.NoError(t, err)

	_, err = Apply(context.Background(), p, randMatrix(t, 3, 4, 4))
	require.ErrorIs(t, err, transform.ErrNotFitted)

	require.NoError(t, Fit(context.Background(), p, randMatrix(t, 10, 4, 4)))

	out, err := Apply(context.Background(), p, matrix.Matrix{})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
	assert.Equal(t, 2, out.Cols())

	_, err = Apply(context.Background(), p, randMatrix(t, 3, 6, 5))
	assert.ErrorIs(t, err, transform.ErrDimension)

	_, err = Apply(context.Background(), p, matrix.Empty(6))
	assert.ErrorIs(t, err, transform.ErrDimension)
}

func TestFitErrors(t *testing.T) {
	p, err := Build(scaledPCA())
	require.NoError(t, err)

	err = Fit(context.Background(), p, matrix.Matrix{})
	assert.ErrorIs(t, err, transform.ErrInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Fit(ctx, p, randMatrix(t, 5, 3, 6))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, Fitted(p))
}

func TestRestoreRoundTrip(t *testing.T) {
	p, err := Build(scaledPCA())
	require.NoError(t, err)
	m := randMatrix(t, 10, 4, 7)
	require.NoError(t, Fit(context.Background(), p, m))

	q, err := Restore(p.Name(), true, States(p))
	require.NoError(t, err)
	assert.Equal(t, Describe(p), Describe(q))

	want, err := Apply(context.Background(), p, m)
	require.NoError(t, err)
	got, err := Apply(context.Background(), q, m)
	require.NoError(t, err)
	assertClose(t, want, got)

	_, err = Restore("bad", false, States(p))
	assert.Error(t, err)
	_, err = Restore("none", true, nil)
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestRestoreRejectsBrokenChain(t *testing.T) {
	wide, err := Build(scaledPCA())
	require.NoError(t, err)
	require.NoError(t, Fit(context.Background(), wide, randMatrix(t, 10, 4, 7)))
	narrow, err := Build(scaledPCA())
	require.NoError(t, err)
	require.NoError(t, Fit(context.Background(), narrow, randMatrix(t, 10, 3, 7)))

	// scaler yields 4 columns, pca was fitted on 3
	states := []transform.State{States(wide)[0], States(narrow)[1]}
	_, err = Restore("scaled_pca", true, states)
	assert.ErrorContains(t, err, "step 1 takes 3 columns")
}

func assertClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		assert.InDeltaSlice(t, want.Row(i), got.Row(i), 1e-9, "row %d", i)
	}
}
