// Package engine defines the volume mesh generator capability: one
// opaque operation turning an assembled PLC and a switch buffer into
// raw output buffers. The adapter never looks inside the generator;
// any engine exposing this interface is substitutable.
package engine

import (
	"errors"
	"fmt"

	"github.com/notargets/tetwrap/plc"
)

// ErrGenerationFailed is the single failure kind of the invocation
// boundary. Every generator-side failure, including panics, is
// normalized to wrap it.
var ErrGenerationFailed = errors.New("volume mesh generation failed")

// RawMesh holds the generator's raw output buffers exactly as the
// engine reports them: flat row-major storage plus counts. Any buffer
// may be nil - no output quantity is guaranteed.
type RawMesh struct {
	Points    []float64 // 3 per point
	NumPoints int

	Tetrahedra    []int // Corners per tetrahedron
	NumTetrahedra int
	Corners       int // 4 for linear elements, 10 for quadratic

	TriFaces       []int // 3 per face
	TriFaceMarkers []int
	NumTriFaces    int

	Edges       []int // 2 per edge
	EdgeMarkers []int
	NumEdges    int

	Neighbors []int // 4 per tetrahedron, negative = no neighbor

	PointMarkers []int

	TetAttributes    []float64 // NumTetAttributes per tetrahedron
	NumTetAttributes int

	TetVolumes []float64
}

// Generator is the opaque volume mesh engine.
type Generator interface {
	Generate(in *plc.PLC, switchBuf []byte) (*RawMesh, error)
}

// Invoke runs the generator behind the pipeline's designated failure
// boundary: panics and errors from the engine both surface as
// ErrGenerationFailed with the engine's own diagnostic when available.
func Invoke(g Generator, in *plc.PLC, switchBuf []byte) (out *RawMesh, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, r)
			out = nil
		}
	}()

	out, genErr := g.Generate(in, switchBuf)
	if genErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, genErr)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: engine returned no output; "+
			"this may be due to invalid input geometry or incompatible switches", ErrGenerationFailed)
	}
	return out, nil
}
