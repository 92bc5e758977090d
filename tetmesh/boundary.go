package tetmesh

import "fmt"

// faceOfTet maps local face index (the face opposite corner k) to the
// tetrahedron's other three corner-local indices, ordered so the global
// vertex sequence winds outward.
var faceOfTet = [4][3]int{
	{1, 2, 3}, // opposite 0
	{0, 3, 2}, // opposite 1
	{0, 1, 3}, // opposite 2
	{0, 2, 1}, // opposite 3
}

// BoundaryFaces derives the outward triangle set from tetrahedra and
// their neighbor lists: every (tetrahedron, local face) pair with a
// negative neighbor slot lies on the volume boundary.
//
// The walk is two-pass - count, then fill into an exactly sized table -
// and always ascends by (tetrahedron index, local face 0..3), so the
// output order is reproducible for identical input.
func BoundaryFaces(tets, neighbors [][]int) ([][]int, error) {
	if len(tets) != len(neighbors) {
		return nil, fmt.Errorf("tetrahedra and neighbors must have the same length: %d vs %d",
			len(tets), len(neighbors))
	}
	for i, tet := range tets {
		if len(tet) < 4 {
			return nil, fmt.Errorf("tetrahedron %d has %d corners, need at least 4", i, len(tet))
		}
	}
	for i, nbr := range neighbors {
		if len(nbr) != 4 {
			return nil, fmt.Errorf("neighbor entry %d has %d slots, need 4", i, len(nbr))
		}
	}

	// Pass 1: size the output.
	count := 0
	for _, nbr := range neighbors {
		for lf := 0; lf < 4; lf++ {
			if nbr[lf] < 0 {
				count++
			}
		}
	}

	// Pass 2: re-walk in the same order and emit with outward winding.
	faces := make([][]int, 0, count)
	for i, nbr := range neighbors {
		for lf := 0; lf < 4; lf++ {
			if nbr[lf] < 0 {
				pat := faceOfTet[lf]
				faces = append(faces, []int{
					tets[i][pat[0]],
					tets[i][pat[1]],
					tets[i][pat[2]],
				})
			}
		}
	}
	return faces, nil
}
