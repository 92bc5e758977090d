package utils

import (
	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is a dictionary-of-keys sparse matrix used for connectivity
// relations (vertex-to-vertex adjacency), where a dense K x K store
// would be wasteful.
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		"unnamed",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)              { return m.M.Dims() }
func (m DOK) At(i, j int) float64           { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                 { return m.M.T() }
func (m DOK) RawMatrix() *blas.SparseMatrix { return m.M.ToCSR().RawMatrix() }

func (m DOK) Set(i, j int, v float64) { m.M.Set(i, j, v) }

// NNZ returns the count of stored nonzero entries.
func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) SetName(name string) DOK {
	m.name = name
	return m
}

func (m DOK) Name() string { return m.name }
