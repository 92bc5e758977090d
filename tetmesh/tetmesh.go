// Package tetmesh reconstructs an annotated tetrahedral mesh from the
// raw buffers a volume mesh engine reports: it marshals every optional
// output quantity, derives the outward boundary triangle set from
// tetrahedron adjacency, and reconciles face markers onto it.
package tetmesh

import (
	"github.com/notargets/tetwrap/engine"
	"github.com/notargets/tetwrap/utils"
)

// TetMesh is the output aggregate of one generator invocation. Every
// field is individually present-or-absent: a nil slice or empty Matrix
// means the engine (or the derivation step) did not produce that
// quantity, which is distinct from a produced-but-zero value.
type TetMesh struct {
	Points  utils.Matrix // N x 3
	Corners int          // vertex indices per tetrahedron, from the engine's report

	Tetrahedra [][]int // K x Corners

	// Faces the engine emitted explicitly, with their markers.
	TriFaces       [][]int // F x 3
	TriFaceMarkers []int   // length F

	// Faces derived from adjacency, with reconciled markers.
	BoundaryFaces       [][]int // BF x 3
	BoundaryFaceMarkers []int   // length BF

	Edges       [][]int // E x 2
	EdgeMarkers []int   // length E

	Neighbors [][]int // K x 4, negative = no neighbor

	PointMarkers []int // length N

	TetAttributes utils.Matrix // K x A
	TetVolumes    []float64    // length K

	// Switches echoes the normalized configuration the engine ran with.
	Switches string
}

// FromRaw marshals the engine's raw buffers into the aggregate. No
// quantity is assumed present; each buffer is tested and either
// converted or left absent. The corner count comes from the engine's
// own report so higher-order output passes through unchanged.
func FromRaw(raw *engine.RawMesh) *TetMesh {
	corners := raw.Corners
	if corners <= 0 {
		corners = 4
	}

	m := &TetMesh{
		Corners:      corners,
		Tetrahedra:   utils.TableFromBuffer(raw.Tetrahedra, raw.NumTetrahedra, corners),
		TriFaces:     utils.TableFromBuffer(raw.TriFaces, raw.NumTriFaces, 3),
		Edges:        utils.TableFromBuffer(raw.Edges, raw.NumEdges, 2),
		Neighbors:    utils.TableFromBuffer(raw.Neighbors, raw.NumTetrahedra, 4),
		PointMarkers: utils.IntsFromBuffer(raw.PointMarkers, raw.NumPoints),
		TetVolumes:   utils.FloatsFromBuffer(raw.TetVolumes, raw.NumTetrahedra),
	}
	m.Points = utils.MatrixFromBuffer(raw.Points, raw.NumPoints, 3).SetName("points")
	m.TetAttributes = utils.MatrixFromBuffer(raw.TetAttributes, raw.NumTetrahedra,
		raw.NumTetAttributes).SetName("tet attributes")

	// Per-face and per-edge markers only make sense alongside their
	// parent containers.
	if m.TriFaces != nil {
		m.TriFaceMarkers = utils.IntsFromBuffer(raw.TriFaceMarkers, raw.NumTriFaces)
	}
	if m.Edges != nil {
		m.EdgeMarkers = utils.IntsFromBuffer(raw.EdgeMarkers, raw.NumEdges)
	}
	return m
}
