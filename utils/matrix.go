package utils

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum dense matrix with the row-major semantics used
// throughout the adapter. The zero value means "absent" - an output
// quantity the generator did not produce.
type Matrix struct {
	M    *mat.Dense
	name string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m, "unnamed"}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// IsEmpty reports whether the matrix is the absent zero value.
func (m Matrix) IsEmpty() bool { return m.M == nil }

// Data returns the backing row-major slice.
func (m Matrix) Data() []float64 {
	if m.M == nil {
		return nil
	}
	return m.M.RawMatrix().Data
}

// Row returns row i as a view into the backing store.
func (m Matrix) Row(i int) []float64 {
	return m.M.RawRowView(i)
}

func (m Matrix) SetName(name string) Matrix {
	m.name = name
	return m
}

func (m Matrix) Name() string { return m.name }

func (m Matrix) String() string {
	if m.M == nil {
		return fmt.Sprintf("%s: <absent>\n", m.name)
	}
	var (
		sb     strings.Builder
		nr, nc = m.Dims()
	)
	fmt.Fprintf(&sb, "%s (%dx%d):\n", m.name, nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			fmt.Fprintf(&sb, "%10.5f ", m.At(i, j))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
