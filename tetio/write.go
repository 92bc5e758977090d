package tetio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/notargets/tetwrap/plc"
	"github.com/notargets/tetwrap/utils"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// WriteNode writes a point set as a TetGen .node file with 0-based
// numbering. markers may be nil.
func WriteNode(filename string, points utils.Matrix, markers []int) error {
	if points.IsEmpty() {
		return fmt.Errorf("%s: no points to write", filename)
	}
	n, dim := points.Dims()
	if dim != 3 {
		return fmt.Errorf("%s: points must be (N,3), got %d columns", filename, dim)
	}
	if markers != nil && len(markers) != n {
		return fmt.Errorf("%s: %d markers for %d points", filename, len(markers), n)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	hasMarkers := 0
	if markers != nil {
		hasMarkers = 1
	}
	fmt.Fprintf(w, "%d 3 0 %d\n", n, hasMarkers)
	for i := 0; i < n; i++ {
		row := points.Row(i)
		fmt.Fprintf(w, "%d %s %s %s", i, formatCoord(row[0]), formatCoord(row[1]), formatCoord(row[2]))
		if markers != nil {
			fmt.Fprintf(w, " %d", markers[i])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// WriteFace writes a triangle list as a TetGen .face file with 0-based
// numbering. markers may be nil.
func WriteFace(filename string, faces [][]int, markers []int) error {
	if markers != nil && len(markers) != len(faces) {
		return fmt.Errorf("%s: %d markers for %d faces", filename, len(markers), len(faces))
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	hasMarkers := 0
	if markers != nil {
		hasMarkers = 1
	}
	fmt.Fprintf(w, "%d %d\n", len(faces), hasMarkers)
	for i, f := range faces {
		if len(f) != 3 {
			return fmt.Errorf("%s: face %d has %d vertices, want 3", filename, i, len(f))
		}
		fmt.Fprintf(w, "%d %d %d %d", i, f[0], f[1], f[2])
		if markers != nil {
			fmt.Fprintf(w, " %d", markers[i])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// WritePoly writes an assembled PLC as a TetGen .poly file with 0-based
// numbering: the node section inline, one polygon per facet with its
// combined-list marker, no holes, no regions.
func WritePoly(filename string, p *plc.PLC) error {
	if p == nil || p.Points.IsEmpty() {
		return fmt.Errorf("%s: empty PLC", filename)
	}
	n, dim := p.Points.Dims()
	if dim != 3 {
		return fmt.Errorf("%s: PLC points must be (N,3), got %d columns", filename, dim)
	}
	if len(p.Facets) != len(p.FacetMarkers) {
		return fmt.Errorf("%s: %d facets but %d markers", filename, len(p.Facets), len(p.FacetMarkers))
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	// Part 1: node list
	fmt.Fprintf(w, "%d 3 0 0\n", n)
	for i := 0; i < n; i++ {
		row := p.Points.Row(i)
		fmt.Fprintf(w, "%d %s %s %s\n", i, formatCoord(row[0]), formatCoord(row[1]), formatCoord(row[2]))
	}

	// Part 2: facet list with boundary markers
	fmt.Fprintf(w, "%d 1\n", len(p.Facets))
	for fi, f := range p.Facets {
		fmt.Fprintf(w, "1 0 %d\n", p.FacetMarkers[fi])
		fmt.Fprintf(w, "%d", len(f.Vertices))
		for _, vid := range f.Vertices {
			fmt.Fprintf(w, " %d", vid)
		}
		fmt.Fprintln(w)
	}

	// Parts 3 and 4: no holes, no regions
	fmt.Fprintln(w, "0")
	fmt.Fprintln(w, "0")
	return w.Flush()
}
