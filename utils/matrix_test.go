package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrix(t *testing.T) {
	M := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	nr, nc := M.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, 6.0, M.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, M.Row(1))

	assert.Panics(t, func() {
		NewMatrix(2, 3, []float64{1, 2})
	})
}

func TestMatrixAbsent(t *testing.T) {
	var M Matrix
	assert.True(t, M.IsEmpty())
	assert.Nil(t, M.Data())
	assert.Contains(t, M.String(), "absent")
}

func TestMatrixString(t *testing.T) {
	M := NewMatrix(1, 3, []float64{0, 1, 0}).SetName("points")
	s := M.String()
	assert.True(t, strings.HasPrefix(s, "points (1x3):"))
}

func TestDOK(t *testing.T) {
	d := NewDOK(4, 4).SetName("adjacency")
	d.Set(0, 1, 1)
	d.Set(1, 0, 1)
	assert.Equal(t, 2, d.NNZ())
	assert.Equal(t, 1.0, d.At(0, 1))
	assert.Equal(t, 0.0, d.At(2, 3))
	assert.Equal(t, "adjacency", d.Name())
}
