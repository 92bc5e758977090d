package tetmesh

import (
	"fmt"

	"github.com/notargets/tetwrap/utils"
)

// PrintStatistics reports the counts and presence of every output
// quantity.
func (m *TetMesh) PrintStatistics() {
	fmt.Printf("TetMesh Statistics:\n")
	if m.Points.IsEmpty() {
		fmt.Printf("  Points: absent\n")
	} else {
		n, _ := m.Points.Dims()
		fmt.Printf("  Points: %d\n", n)
	}
	fmt.Printf("  Tetrahedra: %d (corners per element: %d)\n", len(m.Tetrahedra), m.Corners)

	printTable := func(name string, table [][]int) {
		if table == nil {
			fmt.Printf("  %s: absent\n", name)
		} else {
			fmt.Printf("  %s: %d\n", name, len(table))
		}
	}
	printTable("Explicit faces", m.TriFaces)
	printTable("Boundary faces", m.BoundaryFaces)
	printTable("Edges", m.Edges)
	printTable("Neighbor entries", m.Neighbors)

	if m.BoundaryFaceMarkers != nil {
		counts := make(map[int]int)
		for _, marker := range m.BoundaryFaceMarkers {
			counts[marker]++
		}
		fmt.Printf("  Boundary face markers: %d distinct\n", len(counts))
	}
	if !m.TetAttributes.IsEmpty() {
		_, na := m.TetAttributes.Dims()
		fmt.Printf("  Tetrahedron attributes: %d per element\n", na)
	}
	if m.TetVolumes != nil {
		fmt.Printf("  Tetrahedron volumes: present\n")
	}
	fmt.Printf("  Switches: %s\n", m.Switches)
}

// VertexAdjacency builds the symmetric vertex-to-vertex adjacency
// relation as a sparse matrix, from the edge set when the engine
// emitted one, otherwise from tetrahedron corner pairs.
func (m *TetMesh) VertexAdjacency() (utils.DOK, error) {
	if m.Points.IsEmpty() {
		return utils.DOK{}, fmt.Errorf("vertex adjacency needs the point set")
	}
	n, _ := m.Points.Dims()
	adj := utils.NewDOK(n, n).SetName("vertex adjacency")

	connect := func(a, b int) {
		adj.Set(a, b, 1)
		adj.Set(b, a, 1)
	}

	if m.Edges != nil {
		for _, e := range m.Edges {
			connect(e[0], e[1])
		}
		return adj, nil
	}
	if m.Tetrahedra == nil {
		return utils.DOK{}, fmt.Errorf("vertex adjacency needs edges or tetrahedra")
	}
	for _, tet := range m.Tetrahedra {
		// Linear corners only; higher-order nodes do not add edges.
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				connect(tet[i], tet[j])
			}
		}
	}
	return adj, nil
}
