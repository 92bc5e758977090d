package plc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/tetwrap/utils"
)

func tetVertices() [][]float64 {
	return [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func tetFacets() [][]int {
	return [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
	}
}

func TestAssembleCombinedFacetList(t *testing.T) {
	p, err := Assemble(tetVertices(), tetFacets(), []int{5, -3, 0}, [][]int{{1, 2, 3}, {0, 2, 3, 1}})
	require.NoError(t, err)

	require.Len(t, p.Facets, 5)
	require.Len(t, p.FacetMarkers, 5)
	assert.Equal(t, 3, p.NumMeshFacets)

	// Mesh facets first: raw >= 0 shifts up by one, raw < 0 collapses
	// to the unlabeled sentinel.
	assert.Equal(t, 6, p.FacetMarkers[0])
	assert.Equal(t, -1, p.FacetMarkers[1])
	assert.Equal(t, 1, p.FacetMarkers[2])

	// Boundary loops follow with synthetic negative markers.
	assert.Equal(t, -2, p.FacetMarkers[3])
	assert.Equal(t, -3, p.FacetMarkers[4])
	assert.Equal(t, utils.Index{0, 2, 3, 1}, p.Facets[4].Vertices)

	n, c := p.Points.Dims()
	assert.Equal(t, 4, n)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, p.Points.At(3, 2))
}

func TestAssembleUnmarkedFacets(t *testing.T) {
	p, err := Assemble(tetVertices(), tetFacets(), nil, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	for i := 0; i < p.NumMeshFacets; i++ {
		assert.Equal(t, UnlabeledMarker, p.FacetMarkers[i])
	}
}

// Marker namespace disjointness: every combined-list marker is exactly
// -1, >= 1, or <= -2, and the <= -2 markers biject onto loop indices.
func TestMarkerNamespaceDisjointness(t *testing.T) {
	loops := [][]int{{0, 1, 2}, {1, 2, 3}, {0, 2, 3}}
	p, err := Assemble(tetVertices(), tetFacets(), []int{0, 7, -1}, loops)
	require.NoError(t, err)

	seenLoops := make(map[int]bool)
	for i, marker := range p.FacetMarkers {
		switch {
		case marker == UnlabeledMarker:
			assert.Less(t, i, p.NumMeshFacets)
		case marker >= 1:
			assert.Less(t, i, p.NumMeshFacets)
		case IsLoopMarker(marker):
			assert.GreaterOrEqual(t, i, p.NumMeshFacets)
			idx := LoopIndex(marker)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(loops))
			assert.False(t, seenLoops[idx], "loop index %d assigned twice", idx)
			seenLoops[idx] = true
		default:
			t.Fatalf("marker %d at facet %d is outside every namespace", marker, i)
		}
	}
	assert.Len(t, seenLoops, len(loops))
}

func TestMarkerRoundTrip(t *testing.T) {
	assert.Equal(t, 0, UserLabel(EncodeMeshMarker(0)))
	assert.Equal(t, 41, UserLabel(EncodeMeshMarker(41)))
	assert.Equal(t, UnlabeledMarker, EncodeMeshMarker(-7))
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, LoopIndex(LoopMarker(i)))
		assert.True(t, IsLoopMarker(LoopMarker(i)))
	}
}

func TestAssembleRejections(t *testing.T) {
	V := tetVertices()
	F := tetFacets()
	loops := [][]int{{1, 2, 3}}

	cases := []struct {
		name     string
		vertices [][]float64
		facets   [][]int
		markers  []int
		loops    [][]int
		contains string
	}{
		{"no vertices", nil, F, nil, loops, "non-empty"},
		{"ragged vertex row", [][]float64{{0, 0}}, F, nil, loops, "row 0"},
		{"facet index one past end", V, [][]int{{0, 1, 4}}, nil, loops, "out of range at row 0"},
		{"negative facet index", V, [][]int{{0, -1, 2}}, nil, loops, "out of range at row 0"},
		{"ragged facet row", V, [][]int{{0, 1}}, nil, loops, "row 0"},
		{"zero boundary loops", V, F, nil, nil, "at least one polygon"},
		{"short loop", V, F, nil, [][]int{{0, 1}}, "polygon 0"},
		{"loop index out of range", V, F, nil, [][]int{{0, 1, 4}}, "polygon 0"},
		{"marker length mismatch", V, F, []int{1}, loops, "must match"},
		{"oversized marker", V, F, []int{math.MaxInt32, 0, 0}, loops, "too large"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assemble(tc.vertices, tc.facets, tc.markers, tc.loops)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestAssembleCopiesInput(t *testing.T) {
	F := tetFacets()
	loops := [][]int{{1, 2, 3}}
	p, err := Assemble(tetVertices(), F, nil, loops)
	require.NoError(t, err)

	F[0][0] = 99
	loops[0][0] = 99
	assert.Equal(t, 0, p.Facets[0].Vertices[0])
	assert.Equal(t, 1, p.Facets[3].Vertices[0])
}
