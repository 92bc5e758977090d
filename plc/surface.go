package plc

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Surface is the YAML form of a surface description, as consumed by the
// command line front end.
type Surface struct {
	Vertices           [][]float64      `json:"vertices"`
	MeshFacets         [][]int          `json:"mesh_facets"`
	FacetMarkers       []int            `json:"facet_markers"`
	BoundaryLoops      [][]int          `json:"boundary_loops"`
	NamedBoundaryLoops map[string][]int `json:"named_boundary_loops"`
}

// Parse fills the receiver from YAML.
func (s *Surface) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// Loops resolves the boundary description to an ordered loop list.
func (s *Surface) Loops() ([][]int, error) {
	if s.NamedBoundaryLoops != nil {
		if s.BoundaryLoops != nil {
			return nil, fmt.Errorf("specify either boundary_loops or named_boundary_loops, not both")
		}
		return NormalizeNamedLoops(s.NamedBoundaryLoops)
	}
	return s.BoundaryLoops, nil
}

// Assemble validates the surface and builds its PLC.
func (s *Surface) Assemble() (*PLC, error) {
	loops, err := s.Loops()
	if err != nil {
		return nil, err
	}
	return Assemble(s.Vertices, s.MeshFacets, s.FacetMarkers, loops)
}
