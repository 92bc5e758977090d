package switches

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConcatenatesExpectedFlags(t *testing.T) {
	p := DefaultParams()
	p.RadiusEdgeRatio = 2.5
	p.OutputFaces = true
	p.OutputEdges = true
	p.MaxVolume = 0.1
	p.Quiet = true
	p.Extra = "XYZ"

	s, err := p.Build()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s, "p"))
	assert.Contains(t, s, "q2.5")
	assert.Contains(t, s, "f")
	assert.Contains(t, s, "e")
	assert.Contains(t, s, "a0.1")
	assert.True(t, strings.HasSuffix(s, "XYZ"))
}

func TestBuildQualityForms(t *testing.T) {
	p := DefaultParams()
	s, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, "p", s)

	p.Refine = true
	s, _ = p.Build()
	assert.Equal(t, "pq", s)

	p.Refine = false
	p.RadiusEdgeRatio = 1.4
	p.MinDihedralAngle = 18
	s, _ = p.Build()
	assert.Equal(t, "pq1.4/18", s)

	p.RadiusEdgeRatio = -1
	s, _ = p.Build()
	assert.Equal(t, "pq/18", s)
}

func TestBuildNumericSwitches(t *testing.T) {
	p := DefaultParams()
	p.OptimizeLevel = 3
	p.MaxAddedPoints = 1000
	p.CoplanarTolerance = 1e-8
	p.SizingFunction = "mtr"
	s, err := p.Build()
	require.NoError(t, err)

	assert.Contains(t, s, "O3")
	assert.Contains(t, s, "S1000")
	assert.Contains(t, s, "T1e-08")
	assert.Contains(t, s, "mmtr")
}

func TestBuildDetectsConflictingOptions(t *testing.T) {
	p := DefaultParams()
	p.Quiet = true
	p.Verbose = true
	_, err := p.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestParseYAML(t *testing.T) {
	content := `
plc: true
radius_edge_ratio: 2
output_faces: true
output_neighbors: true
max_volume: 0.25
zero_numbering: true
`
	p := DefaultParams()
	require.NoError(t, p.Parse([]byte(content)))

	// Snake_case keys must land on the fields, not fall back to the
	// defaults.
	assert.Equal(t, 2.0, p.RadiusEdgeRatio)
	assert.Equal(t, 0.25, p.MaxVolume)
	assert.True(t, p.ZeroNumbering)
	assert.True(t, p.OutputNeighbors)

	s, err := p.Build()
	require.NoError(t, err)
	assert.Contains(t, s, "q2")
	assert.Contains(t, s, "a0.25")
	assert.Contains(t, s, "z")
	assert.Contains(t, s, "n")
	assert.Contains(t, s, "f")
}

func TestDefaultParamsIsFresh(t *testing.T) {
	p := DefaultParams()
	p.PLC = false
	assert.True(t, DefaultParams().PLC)
}
