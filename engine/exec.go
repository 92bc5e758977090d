package engine

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/notargets/tetwrap/plc"
	"github.com/notargets/tetwrap/switches"
	"github.com/notargets/tetwrap/tetio"
)

// Command drives an external tetgen executable through a scratch
// directory: the PLC goes out as a .poly file, the switch buffer
// becomes the command line, and whichever of .node/.ele/.face/.edge/
// .neigh the engine wrote come back as raw buffers.
type Command struct {
	// Path locates the executable; "tetgen" on PATH when empty.
	Path string
	// Dir is the parent for scratch directories; os.TempDir when empty.
	Dir string
	// KeepFiles leaves the scratch directory in place for inspection.
	KeepFiles bool
}

const polyBase = "input"

func (c *Command) executable() string {
	if c.Path != "" {
		return c.Path
	}
	return "tetgen"
}

// commandArgs builds the argument list, omitting the switch argument
// entirely when there are no switches.
func commandArgs(sw, polyPath string) []string {
	if sw == "" {
		return []string{polyPath}
	}
	return []string{"-" + sw, polyPath}
}

func (c *Command) Generate(in *plc.PLC, switchBuf []byte) (*RawMesh, error) {
	scratch, err := os.MkdirTemp(c.Dir, "tetwrap-*")
	if err != nil {
		return nil, err
	}
	if !c.KeepFiles {
		defer os.RemoveAll(scratch)
	}

	polyPath := filepath.Join(scratch, polyBase+".poly")
	if err = tetio.WritePoly(polyPath, in); err != nil {
		return nil, err
	}

	sw := switches.SwitchString(switchBuf)
	args := commandArgs(sw, polyPath)
	cmd := exec.Command(c.executable(), args...)
	cmd.Dir = scratch
	combined, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(combined))
		if msg == "" {
			msg = "this may be due to invalid input geometry or incompatible switches"
		}
		return nil, fmt.Errorf("%s %s: %v: %s", c.executable(), strings.Join(args, " "), err, msg)
	}

	return c.collect(filepath.Join(scratch, polyBase+".1"))
}

// collect gathers whatever output files the engine produced under the
// given basename. Only the node and element files are mandatory.
func (c *Command) collect(base string) (*RawMesh, error) {
	raw := &RawMesh{Corners: 4}

	nf, err := tetio.ReadNode(base + ".node")
	if err != nil {
		return nil, fmt.Errorf("reading engine output: %v", err)
	}
	raw.Points = nf.Points
	raw.NumPoints = nf.NumPoints
	raw.PointMarkers = nf.Markers

	ef, err := tetio.ReadEle(base + ".ele")
	if err != nil {
		return nil, fmt.Errorf("reading engine output: %v", err)
	}
	raw.Tetrahedra = ef.Tetrahedra
	raw.NumTetrahedra = ef.NumTetrahedra
	raw.Corners = ef.Corners
	raw.TetAttributes = ef.Attributes
	raw.NumTetAttributes = ef.NumAttributes

	if ff, err := tetio.ReadFace(base + ".face"); err == nil {
		raw.TriFaces = ff.Faces
		raw.NumTriFaces = ff.NumFaces
		raw.TriFaceMarkers = ff.Markers
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading engine output: %v", err)
	}

	if gf, err := tetio.ReadEdge(base + ".edge"); err == nil {
		raw.Edges = gf.Edges
		raw.NumEdges = gf.NumEdges
		raw.EdgeMarkers = gf.Markers
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading engine output: %v", err)
	}

	if hf, err := tetio.ReadNeigh(base + ".neigh"); err == nil {
		raw.Neighbors = hf.Neighbors
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading engine output: %v", err)
	}

	return raw, nil
}
