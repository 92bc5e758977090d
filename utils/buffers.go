package utils

import "fmt"

// Conversions between the flat row-major buffers the volume mesh engine
// traffics in and the semantic containers used by the rest of the
// adapter. A nil source or a non-positive dimension yields the absent
// value; everything else is copied so the result does not alias
// engine-owned memory.

// MatrixFromBuffer converts an n x m row-major float buffer to a Matrix.
func MatrixFromBuffer(src []float64, n, m int) Matrix {
	if src == nil || n <= 0 || m <= 0 {
		return Matrix{}
	}
	data := make([]float64, n*m)
	copy(data, src[:n*m])
	return NewMatrix(n, m, data)
}

// TableFromBuffer converts an n x m row-major int buffer to a table of
// rows.
func TableFromBuffer(src []int, n, m int) [][]int {
	if src == nil || n <= 0 || m <= 0 {
		return nil
	}
	T := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, m)
		copy(row, src[i*m:(i+1)*m])
		T[i] = row
	}
	return T
}

// IntsFromBuffer copies the first n entries of an int buffer.
func IntsFromBuffer(src []int, n int) []int {
	if src == nil || n <= 0 {
		return nil
	}
	out := make([]int, n)
	copy(out, src[:n])
	return out
}

// FloatsFromBuffer copies the first n entries of a float buffer.
func FloatsFromBuffer(src []float64, n int) []float64 {
	if src == nil || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	copy(out, src[:n])
	return out
}

// TableToBuffer flattens a rectangular table to a row-major buffer.
// Rows shorter than the first row panic - the caller owns rectangularity.
func TableToBuffer(T [][]int) (buf []int, n, m int) {
	n = len(T)
	if n == 0 {
		return nil, 0, 0
	}
	m = len(T[0])
	buf = make([]int, 0, n*m)
	for i, row := range T {
		if len(row) != m {
			panic(fmt.Errorf("TableToBuffer: ragged table at row %d", i))
		}
		buf = append(buf, row...)
	}
	return
}
