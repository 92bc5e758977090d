package tetmesh

import (
	"fmt"

	"github.com/notargets/tetwrap/engine"
	"github.com/notargets/tetwrap/plc"
	"github.com/notargets/tetwrap/switches"
	"github.com/notargets/tetwrap/utils"
)

// Input is the surface description handed to the primary entry point.
type Input struct {
	Vertices   [][]float64 // N x 3 coordinates
	MeshFacets [][]int     // M x 3 triangle indices

	// FacetMarkers is nil or length M; raw labels are shifted into the
	// combined facet list's mesh-facet namespace during assembly.
	FacetMarkers []int

	// Exactly one of BoundaryLoops and NamedBoundaryLoops must be set.
	BoundaryLoops      [][]int
	NamedBoundaryLoops map[string][]int

	// Config is the engine configuration payload: string, []byte, or
	// switches.Params.
	Config interface{}

	// SkipBoundaryFaces turns off boundary face derivation; by default
	// the switch buffer is augmented with the engine's adjacency and
	// face output flags and the outward triangle set is reconstructed.
	SkipBoundaryFaces bool
}

// Tetrahedralize runs the whole pipeline: assemble and validate the
// PLC, normalize the switch buffer, invoke the generator behind its
// failure boundary, marshal every optional output, then derive and
// reconcile the boundary triangle set. On any error no partial result
// is returned.
func Tetrahedralize(g engine.Generator, in Input) (*TetMesh, error) {
	loops := in.BoundaryLoops
	if in.NamedBoundaryLoops != nil {
		if loops != nil {
			return nil, fmt.Errorf("specify either BoundaryLoops or NamedBoundaryLoops, not both")
		}
		var err error
		if loops, err = plc.NormalizeNamedLoops(in.NamedBoundaryLoops); err != nil {
			return nil, err
		}
	}

	p, err := plc.Assemble(in.Vertices, in.MeshFacets, in.FacetMarkers, loops)
	if err != nil {
		return nil, err
	}

	derive := !in.SkipBoundaryFaces
	switchBuf, err := switches.Normalize(in.Config, derive)
	if err != nil {
		return nil, err
	}

	raw, err := engine.Invoke(g, p, switchBuf)
	if err != nil {
		return nil, err
	}

	m := FromRaw(raw)
	m.Switches = switches.SwitchString(switchBuf)

	// Boundary faces need adjacency; if the engine did not report it
	// the derived set and its markers stay absent.
	if derive && m.Neighbors != nil {
		bf, err := BoundaryFaces(m.Tetrahedra, m.Neighbors)
		if err != nil {
			return nil, err
		}
		m.BoundaryFaces = bf
		m.BoundaryFaceMarkers = ReconcileMarkers(m.TriFaces, m.TriFaceMarkers, bf)
	}
	return m, nil
}

// BuildVolumeMesh is the simplified legacy entry point: the two core
// arrays only.
func BuildVolumeMesh(g engine.Generator, vertices [][]float64, meshFacets [][]int,
	boundaryLoops [][]int, config interface{}) (points utils.Matrix, tets [][]int, err error) {
	m, err := Tetrahedralize(g, Input{
		Vertices:      vertices,
		MeshFacets:    meshFacets,
		BoundaryLoops: boundaryLoops,
		Config:        config,
	})
	if err != nil {
		return utils.Matrix{}, nil, err
	}
	return m.Points, m.Tetrahedra, nil
}
