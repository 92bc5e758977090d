package tetmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryFacesSingleTet(t *testing.T) {
	tets := [][]int{{0, 1, 2, 3}}
	nbrs := [][]int{{-1, -1, -1, -1}}

	faces, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	require.Len(t, faces, 4)

	// One face per local face index, in local face order, wound outward
	// by the fixed pattern.
	assert.Equal(t, []int{1, 2, 3}, faces[0])
	assert.Equal(t, []int{0, 3, 2}, faces[1])
	assert.Equal(t, []int{0, 1, 3}, faces[2])
	assert.Equal(t, []int{0, 2, 1}, faces[3])
}

func TestBoundaryFacesTwoTets(t *testing.T) {
	// Tets share the face {1,2,3}: local face 0 of tet 0, local face 3
	// of tet 1.
	tets := [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}}
	nbrs := [][]int{{1, -1, -1, -1}, {-1, -1, -1, 0}}

	faces, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	require.Len(t, faces, 6)

	// The shared face never appears.
	for _, f := range faces {
		assert.NotEqual(t, CanonicalKey(1, 2, 3), CanonicalKey(f[0], f[1], f[2]))
	}
}

// Count parity: derived faces match the count of negative neighbor
// slots exactly, with no face appearing twice.
func TestBoundaryFaceCountParity(t *testing.T) {
	tets := [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}}
	nbrs := [][]int{{1, -1, -1, -1}, {-1, -1, -1, 0}}

	negatives := 0
	for _, row := range nbrs {
		for _, nb := range row {
			if nb < 0 {
				negatives++
			}
		}
	}

	faces, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	assert.Len(t, faces, negatives)

	seen := make(map[FaceKey]bool)
	for _, f := range faces {
		key := CanonicalKey(f[0], f[1], f[2])
		assert.False(t, seen[key], "face %v emitted twice", f)
		seen[key] = true
	}
}

func TestBoundaryFacesDeterministic(t *testing.T) {
	tets := [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}, {2, 3, 4, 5}}
	nbrs := [][]int{{1, -1, -1, -1}, {2, -1, -1, 0}, {-1, -1, -1, 1}}

	first, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	second, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBoundaryFacesHigherOrderTets(t *testing.T) {
	// 10-node tets: the pattern only touches the 4 linear corners.
	tets := [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}
	nbrs := [][]int{{-1, -1, -1, -1}}

	faces, err := BoundaryFaces(tets, nbrs)
	require.NoError(t, err)
	require.Len(t, faces, 4)
	assert.Equal(t, []int{1, 2, 3}, faces[0])
}

func TestBoundaryFacesShapeErrors(t *testing.T) {
	_, err := BoundaryFaces([][]int{{0, 1, 2, 3}}, [][]int{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same length")

	_, err = BoundaryFaces([][]int{{0, 1, 2}}, [][]int{{-1, -1, -1, -1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corners")

	_, err = BoundaryFaces([][]int{{0, 1, 2, 3}}, [][]int{{-1, -1, -1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slots")
}

func TestBoundaryFacesEmptyMesh(t *testing.T) {
	faces, err := BoundaryFaces([][]int{}, [][]int{})
	require.NoError(t, err)
	assert.Empty(t, faces)
}
