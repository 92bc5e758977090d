package utils

// Index is an ordered list of integer indices into a vertex or element
// set.
type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func (I Index) Min() (min int) {
	for i, val := range I {
		if i == 0 || val < min {
			min = val
		}
	}
	return
}

func (I Index) Max() (max int) {
	for i, val := range I {
		if i == 0 || val > max {
			max = val
		}
	}
	return
}
