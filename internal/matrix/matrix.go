// Package matrix holds the rectangular row-major matrix exchanged over the
// wire and handed to the transform library.
package matrix

import (
	"errors"
	"fmt"

	pb "dimred/api/proto/v1"

	"gonum.org/v1/gonum/mat"
)

var ErrRagged = errors.New("matrix: rows have different lengths")

// Matrix is rows×cols, stored row-major. A Matrix may have zero rows; it is
// never ragged.
type Matrix struct {
	rows, cols int
	data       []float64
}

// Empty returns a 0-row matrix that still remembers its width.
func Empty(cols int) Matrix { return Matrix{cols: cols} }

func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

func FromProto(vectors []*pb.FloatArray) (Matrix, error) {
	if len(vectors) == 0 {
		return Matrix{}, nil
	}
	cols := len(vectors[0].GetValues())
	data := make([]float64, 0, len(vectors)*cols)
	for i, v := range vectors {
		vals := v.GetValues()
		if len(vals) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(vals), cols)
		}
		for _, x := range vals {
			data = append(data, float64(x))
		}
	}
	return Matrix{rows: len(vectors), cols: cols, data: data}, nil
}

// FromDense copies a gonum matrix.
func FromDense(d mat.Matrix) Matrix {
	r, c := d.Dims()
	m := Matrix{rows: r, cols: c, data: make([]float64, 0, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data = append(m.data, d.At(i, j))
		}
	}
	return m
}

func (m Matrix) Rows() int     { return m.rows }
func (m Matrix) Cols() int     { return m.cols }
func (m Matrix) IsEmpty() bool { return m.rows == 0 }

func (m Matrix) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Dense returns a gonum view of a non-empty matrix. gonum cannot represent
// zero-sized matrices, so callers must handle IsEmpty first.
func (m Matrix) Dense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, fmt.Errorf("matrix: cannot build %dx%d dense matrix", m.rows, m.cols)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data), nil
}

func (m Matrix) ToProto() []*pb.FloatArray {
	out := make([]*pb.FloatArray, m.rows)
	for i := 0; i < m.rows; i++ {
		vals := make([]float32, m.cols)
		for j := 0; j < m.cols; j++ {
			vals[j] = float32(m.data[i*m.cols+j])
		}
		out[i] = &pb.FloatArray{Values: vals}
	}
	return out
}
