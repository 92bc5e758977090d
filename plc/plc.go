package plc

import (
	"fmt"
	"math"

	"github.com/notargets/tetwrap/utils"
)

// Facet is one polygon of the piecewise linear complex. Triangles come
// from the surface mesh, arbitrary-sided polygons from the enclosing
// boundary loops.
type Facet struct {
	Vertices utils.Index
}

// PLC is the volume mesh engine's native input structure: a point set
// plus a facet list with one marker per facet. Facets [0,NumMeshFacets)
// originate from the surface mesh, the remainder from boundary loops.
type PLC struct {
	Points        utils.Matrix // N x 3
	Facets        []Facet
	FacetMarkers  []int
	NumMeshFacets int
}

// Facet marker namespaces. The combined facet list keeps the two input
// provenances distinguishable through a disjoint integer encoding:
//
//	-1          mesh facet, unlabeled
//	>= 1        mesh facet, user label = marker - 1
//	<= -2       boundary loop, index = -marker - 2
const UnlabeledMarker = -1

// EncodeMeshMarker maps a caller-supplied raw facet label into the
// mesh-facet namespace. Negative raw labels collapse to unlabeled.
func EncodeMeshMarker(raw int) int {
	if raw < 0 {
		return UnlabeledMarker
	}
	return raw + 1
}

// LoopMarker returns the synthetic marker for boundary loop i.
func LoopMarker(i int) int { return -(i + 2) }

// IsLoopMarker reports whether a combined-list marker names a boundary
// loop.
func IsLoopMarker(m int) bool { return m <= -2 }

// LoopIndex recovers the boundary loop index from a loop marker.
func LoopIndex(m int) int { return -m - 2 }

// UserLabel recovers the caller's raw label from a positive mesh-facet
// marker.
func UserLabel(m int) int { return m - 1 }

// Assemble validates the surface description and builds the combined
// PLC. All violations are reported before the generator is ever
// invoked; the returned error names the offending row or polygon.
//
// vertices is N x 3, meshFacets is M x 3 triangle indices into the
// vertex set, facetMarkers is nil or length M, loops holds B >= 1
// polygons of >= 3 vertex indices each.
func Assemble(vertices [][]float64, meshFacets [][]int, facetMarkers []int, loops [][]int) (*PLC, error) {
	N := len(vertices)
	M := len(meshFacets)
	B := len(loops)

	if N <= 0 {
		return nil, fmt.Errorf("vertices must be a non-empty (N,3) array")
	}
	for i, v := range vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("vertices must have shape (N,3): row %d has %d coordinates", i, len(v))
		}
	}
	if B < 1 {
		return nil, fmt.Errorf("boundary loops must contain at least one polygon")
	}
	for i, f := range meshFacets {
		if len(f) != 3 {
			return nil, fmt.Errorf("mesh facets must have shape (M,3): row %d has %d indices", i, len(f))
		}
		if fI := utils.Index(f); fI.Min() < 0 || fI.Max() >= N {
			return nil, fmt.Errorf("mesh facet index out of range at row %d: not in [0,%d)", i, N)
		}
	}
	if facetMarkers != nil {
		if len(facetMarkers) != M {
			return nil, fmt.Errorf("facet markers length %d must match number of mesh facets %d",
				len(facetMarkers), M)
		}
		for i, raw := range facetMarkers {
			// The +1 shift must not wrap the engine's 32 bit marker field.
			if raw >= math.MaxInt32 {
				return nil, fmt.Errorf("facet marker at row %d too large: %d", i, raw)
			}
		}
	}
	for bi, loop := range loops {
		if len(loop) < 3 {
			return nil, fmt.Errorf("boundary loop has fewer than 3 vertices: polygon %d", bi)
		}
		if lI := utils.Index(loop); lI.Min() < 0 || lI.Max() >= N {
			return nil, fmt.Errorf("boundary loop index out of range at polygon %d: not in [0,%d)", bi, N)
		}
	}

	points := make([]float64, 0, 3*N)
	for _, v := range vertices {
		points = append(points, v[0], v[1], v[2])
	}

	p := &PLC{
		Points:        utils.NewMatrix(N, 3, points).SetName("points"),
		Facets:        make([]Facet, 0, M+B),
		FacetMarkers:  make([]int, 0, M+B),
		NumMeshFacets: M,
	}

	for fi, f := range meshFacets {
		tri := utils.NewIndex(3)
		copy(tri, f)
		p.Facets = append(p.Facets, Facet{Vertices: tri})
		marker := UnlabeledMarker
		if facetMarkers != nil {
			marker = EncodeMeshMarker(facetMarkers[fi])
		}
		p.FacetMarkers = append(p.FacetMarkers, marker)
	}
	for bi, loop := range loops {
		poly := utils.NewIndex(len(loop))
		copy(poly, loop)
		p.Facets = append(p.Facets, Facet{Vertices: poly})
		p.FacetMarkers = append(p.FacetMarkers, LoopMarker(bi))
	}
	return p, nil
}
