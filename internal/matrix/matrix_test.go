package matrix

import (
	"testing"

	pb "dimred/api/proto/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromProto_RejectsRagged(t *testing.T) {
	_, err := FromProto([]*pb.FloatArray{
		{Values: []float32{1, 2, 3}},
		{Values: []float32{1, 2}},
	})
	require.ErrorIs(t, err, ErrRagged)
	assert.Contains(t, err.Error(), "row 1")
}

func TestFromProto_EmptyIsValid(t *testing.T) {
	m, err := FromProto(nil)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.ToProto())
}

func TestProtoRoundTripKeepsOrder(t *testing.T) {
	in := []*pb.FloatArray{
		{Values: []float32{1, 2}},
		{Values: []float32{3, 4}},
		{Values: []float32{5, 6}},
	}
	m, err := FromProto(in)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	out := m.ToProto()
	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].Values, out[i].Values)
	}
}

func TestDenseCopiesData(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	d, err := m.Dense()
	require.NoError(t, err)
	d.Set(0, 0, 99)
	assert.Equal(t, []float64{1, 2}, m.Row(0))

	back := FromDense(mat.DenseCopyOf(d))
	assert.Equal(t, [][]float64{{99, 2}, {3, 4}}, back.ToRows())
}

func TestDenseRejectsEmpty(t *testing.T) {
	_, err := Empty(3).Dense()
	require.Error(t, err)
	assert.Equal(t, 3, Empty(3).Cols())
}
