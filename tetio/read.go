package tetio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Readers for the TetGen text output formats (.node, .ele, .face,
// .edge, .neigh). TetGen numbers entities from 0 or 1 depending on the
// z switch; every reader detects the first index from the data and
// rebases to 0 so downstream indices are uniform.

// scanDataLines reads a file and returns its data lines with comments
// and blank lines stripped.
func scanDataLines(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines [][]string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func parseInts(fields []string, filename string, lineNo int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q in entry %d", filename, f, lineNo)
		}
		out[i] = v
	}
	return out, nil
}

// NodeFile is the parsed contents of a .node file.
type NodeFile struct {
	Points        []float64 // row-major, 3 per point
	NumPoints     int
	Attributes    []float64 // row-major, NumAttributes per point, nil if none
	NumAttributes int
	Markers       []int // nil if the file carries no boundary markers
}

// ReadNode parses a TetGen .node file.
func ReadNode(filename string) (*NodeFile, error) {
	lines, err := scanDataLines(filename)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	header, err := parseInts(lines[0], filename, 0)
	if err != nil {
		return nil, err
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("%s: header needs 4 fields (points dim attrs markers), got %d", filename, len(header))
	}
	n, dim, nattr, hasMarkers := header[0], header[1], header[2], header[3]
	if dim != 3 {
		return nil, fmt.Errorf("%s: unsupported dimension %d", filename, dim)
	}
	if len(lines) < n+1 {
		return nil, fmt.Errorf("%s: expected %d point entries, found %d", filename, n, len(lines)-1)
	}

	nf := &NodeFile{
		Points:        make([]float64, 0, 3*n),
		NumPoints:     n,
		NumAttributes: nattr,
	}
	if nattr > 0 {
		nf.Attributes = make([]float64, 0, nattr*n)
	}
	if hasMarkers != 0 {
		nf.Markers = make([]int, 0, n)
	}

	for i := 0; i < n; i++ {
		fields := lines[i+1]
		want := 1 + 3 + nattr
		if hasMarkers != 0 {
			want++
		}
		if len(fields) < want {
			return nil, fmt.Errorf("%s: point entry %d has %d fields, want %d", filename, i, len(fields), want)
		}
		for j := 1; j <= 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid coordinate %q in point entry %d", filename, fields[j], i)
			}
			nf.Points = append(nf.Points, v)
		}
		for j := 0; j < nattr; j++ {
			v, err := strconv.ParseFloat(fields[4+j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid attribute %q in point entry %d", filename, fields[4+j], i)
			}
			nf.Attributes = append(nf.Attributes, v)
		}
		if hasMarkers != 0 {
			m, err := strconv.Atoi(fields[want-1])
			if err != nil {
				return nil, fmt.Errorf("%s: invalid marker %q in point entry %d", filename, fields[want-1], i)
			}
			nf.Markers = append(nf.Markers, m)
		}
	}
	return nf, nil
}

// EleFile is the parsed contents of a .ele file, rebased to 0-based
// vertex indices.
type EleFile struct {
	Tetrahedra    []int // row-major, Corners per tet
	NumTetrahedra int
	Corners       int
	Attributes    []float64 // row-major, NumAttributes per tet, nil if none
	NumAttributes int
}

// ReadEle parses a TetGen .ele file.
func ReadEle(filename string) (*EleFile, error) {
	lines, err := scanDataLines(filename)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	header, err := parseInts(lines[0], filename, 0)
	if err != nil {
		return nil, err
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("%s: header needs 3 fields (tets corners attrs), got %d", filename, len(header))
	}
	k, corners, nattr := header[0], header[1], header[2]
	if corners != 4 && corners != 10 {
		return nil, fmt.Errorf("%s: unsupported corner count %d", filename, corners)
	}
	if len(lines) < k+1 {
		return nil, fmt.Errorf("%s: expected %d tetrahedron entries, found %d", filename, k, len(lines)-1)
	}

	ef := &EleFile{
		Tetrahedra:    make([]int, 0, corners*k),
		NumTetrahedra: k,
		Corners:       corners,
		NumAttributes: nattr,
	}
	if nattr > 0 {
		ef.Attributes = make([]float64, 0, nattr*k)
	}

	first := 0
	for i := 0; i < k; i++ {
		fields := lines[i+1]
		if len(fields) < 1+corners+nattr {
			return nil, fmt.Errorf("%s: tetrahedron entry %d has %d fields, want %d", filename, i, len(fields), 1+corners+nattr)
		}
		vals, err := parseInts(fields[:1+corners], filename, i)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			first = vals[0]
		}
		for _, vid := range vals[1:] {
			ef.Tetrahedra = append(ef.Tetrahedra, vid-first)
		}
		for j := 0; j < nattr; j++ {
			v, err := strconv.ParseFloat(fields[1+corners+j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid attribute %q in tetrahedron entry %d", filename, fields[1+corners+j], i)
			}
			ef.Attributes = append(ef.Attributes, v)
		}
	}
	return ef, nil
}

// FaceFile is the parsed contents of a .face file, rebased to 0-based
// vertex indices.
type FaceFile struct {
	Faces    []int // row-major, 3 per face
	NumFaces int
	Markers  []int // nil if the file carries no boundary markers
}

// ReadFace parses a TetGen .face file.
func ReadFace(filename string) (*FaceFile, error) {
	lines, err := scanDataLines(filename)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	header, err := parseInts(lines[0], filename, 0)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: header needs 2 fields (faces markers), got %d", filename, len(header))
	}
	f, hasMarkers := header[0], header[1]
	if len(lines) < f+1 {
		return nil, fmt.Errorf("%s: expected %d face entries, found %d", filename, f, len(lines)-1)
	}

	ff := &FaceFile{
		Faces:    make([]int, 0, 3*f),
		NumFaces: f,
	}
	if hasMarkers != 0 {
		ff.Markers = make([]int, 0, f)
	}

	first := 0
	for i := 0; i < f; i++ {
		want := 4
		if hasMarkers != 0 {
			want = 5
		}
		vals, err := parseInts(lines[i+1], filename, i)
		if err != nil {
			return nil, err
		}
		if len(vals) < want {
			return nil, fmt.Errorf("%s: face entry %d has %d fields, want %d", filename, i, len(vals), want)
		}
		if i == 0 {
			first = vals[0]
		}
		ff.Faces = append(ff.Faces, vals[1]-first, vals[2]-first, vals[3]-first)
		if hasMarkers != 0 {
			ff.Markers = append(ff.Markers, vals[4])
		}
	}
	return ff, nil
}

// ReadFaceIfPresent parses a .face file when it exists. A missing file
// returns (nil, nil); a file that exists but fails to parse is an
// error.
func ReadFaceIfPresent(filename string) (*FaceFile, error) {
	ff, err := ReadFace(filename)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ff, nil
}

// EdgeFile is the parsed contents of a .edge file, rebased to 0-based
// vertex indices.
type EdgeFile struct {
	Edges    []int // row-major, 2 per edge
	NumEdges int
	Markers  []int // nil if the file carries no boundary markers
}

// ReadEdge parses a TetGen .edge file.
func ReadEdge(filename string) (*EdgeFile, error) {
	lines, err := scanDataLines(filename)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	header, err := parseInts(lines[0], filename, 0)
	if err != nil {
		return nil, err
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("%s: empty header", filename)
	}
	e := header[0]
	hasMarkers := 0
	if len(header) > 1 {
		hasMarkers = header[1]
	}
	if len(lines) < e+1 {
		return nil, fmt.Errorf("%s: expected %d edge entries, found %d", filename, e, len(lines)-1)
	}

	ef := &EdgeFile{
		Edges:    make([]int, 0, 2*e),
		NumEdges: e,
	}
	if hasMarkers != 0 {
		ef.Markers = make([]int, 0, e)
	}

	first := 0
	for i := 0; i < e; i++ {
		want := 3
		if hasMarkers != 0 {
			want = 4
		}
		vals, err := parseInts(lines[i+1], filename, i)
		if err != nil {
			return nil, err
		}
		if len(vals) < want {
			return nil, fmt.Errorf("%s: edge entry %d has %d fields, want %d", filename, i, len(vals), want)
		}
		if i == 0 {
			first = vals[0]
		}
		ef.Edges = append(ef.Edges, vals[1]-first, vals[2]-first)
		if hasMarkers != 0 {
			ef.Markers = append(ef.Markers, vals[3])
		}
	}
	return ef, nil
}

// NeighFile is the parsed contents of a .neigh file, rebased to 0-based
// tetrahedron indices. The no-neighbor sentinel stays -1.
type NeighFile struct {
	Neighbors     []int // row-major, 4 per tet
	NumTetrahedra int
}

// ReadNeigh parses a TetGen .neigh file.
func ReadNeigh(filename string) (*NeighFile, error) {
	lines, err := scanDataLines(filename)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	header, err := parseInts(lines[0], filename, 0)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: header needs 2 fields (tets faces), got %d", filename, len(header))
	}
	k, nf := header[0], header[1]
	if nf != 4 {
		return nil, fmt.Errorf("%s: expected 4 neighbors per tetrahedron, got %d", filename, nf)
	}
	if len(lines) < k+1 {
		return nil, fmt.Errorf("%s: expected %d neighbor entries, found %d", filename, k, len(lines)-1)
	}

	nfh := &NeighFile{
		Neighbors:     make([]int, 0, 4*k),
		NumTetrahedra: k,
	}

	first := 0
	for i := 0; i < k; i++ {
		vals, err := parseInts(lines[i+1], filename, i)
		if err != nil {
			return nil, err
		}
		if len(vals) < 5 {
			return nil, fmt.Errorf("%s: neighbor entry %d has %d fields, want 5", filename, i, len(vals))
		}
		if i == 0 {
			first = vals[0]
		}
		for _, nb := range vals[1:5] {
			if nb < 0 {
				nfh.Neighbors = append(nfh.Neighbors, -1)
			} else {
				nfh.Neighbors = append(nfh.Neighbors, nb-first)
			}
		}
	}
	return nfh, nil
}
