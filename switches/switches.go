package switches

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
)

// Params describes the volume mesh engine's command switches with
// named fields instead of single-letter flags. Build assembles the
// switch string the engine actually consumes.
//
// Numeric fields use -1 (or 0 for tolerances) as "unset"; boolean
// fields map one-to-one onto engine flags.
type Params struct {
	// Core
	PLC                    bool `json:"plc"`              // -p : input is a PLC
	PreserveSurface        bool `json:"preserve_surface"` // -Y : keep input surface unchanged
	Reconstruct            bool `json:"reconstruct"`      // -r : reconstruct a previous mesh
	Coarsen                bool `json:"coarsen"`          // -R
	AssignRegionAttributes bool `json:"assign_region_attributes"` // -A

	// Sizing / quality
	RadiusEdgeRatio   float64 `json:"radius_edge_ratio"`  // -q{ratio}
	MinDihedralAngle  float64 `json:"min_dihedral_angle"` // -q{ratio}/{angle}
	Refine            bool    `json:"refine"`             // bare -q
	MaxVolume         float64 `json:"max_volume"`         // -a{val}
	ConstrainVolume   bool    `json:"constrain_volume"`   // bare -a (per-region)
	SizingFunction    string  `json:"sizing_function"`    // -m{token}
	InsertPoints      string  `json:"insert_points"`      // -i{token}
	OptimizeLevel     int     `json:"optimize_level"`     // -O{int}
	MaxAddedPoints    int     `json:"max_added_points"`   // -S{int}
	CoplanarTolerance float64 `json:"coplanar_tolerance"` // -T{float}

	// Numerical / topology
	NoExactArithmetic      bool `json:"no_exact_arithmetic"`      // -X
	NoMergeCoplanar        bool `json:"no_merge_coplanar"`        // -M
	WeightedDelaunay       bool `json:"weighted_delaunay"`        // -w
	KeepConvexHull         bool `json:"keep_convex_hull"`         // -c
	DetectSelfIntersection bool `json:"detect_self_intersections"` // -d

	// Numbering / output control
	ZeroNumbering            bool `json:"zero_numbering"`              // -z
	OutputFaces              bool `json:"output_faces"`                // -f
	OutputEdges              bool `json:"output_edges"`                // -e
	OutputNeighbors          bool `json:"output_neighbors"`            // -n
	OutputVoronoi            bool `json:"output_voronoi"`              // -v
	OutputMeditMesh          bool `json:"output_medit_mesh"`           // -g
	OutputVTK                bool `json:"output_vtk"`                  // -k
	NoJettisonUnusedVertices bool `json:"no_jettison_unused_vertices"` // -J
	SuppressBoundaryOutput   bool `json:"suppress_boundary_output"`    // -B
	SuppressNodeFile         bool `json:"suppress_node_file"`          // -N
	SuppressEleFile          bool `json:"suppress_ele_file"`           // -E
	SuppressFaceEdgeFiles    bool `json:"suppress_face_edge_files"`    // -F
	SuppressIterationNumbers bool `json:"suppress_iteration_numbers"`  // -I
	CheckMesh                bool `json:"check_mesh"`                  // -C

	// Verbosity
	Quiet   bool `json:"quiet"`   // -Q
	Verbose bool `json:"verbose"` // -V

	// Misc
	Help  bool   `json:"help"`  // -h
	Extra string `json:"extra"` // appended verbatim
}

// DefaultParams returns the conventional starting point: PLC input,
// everything else off, numeric fields unset.
func DefaultParams() Params {
	return Params{
		PLC:               true,
		RadiusEdgeRatio:   -1,
		MinDihedralAngle:  -1,
		MaxVolume:         -1,
		OptimizeLevel:     -1,
		MaxAddedPoints:    -1,
		CoplanarTolerance: -1,
	}
}

// Parse fills the receiver from YAML on top of its current values.
func (p *Params) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

func fmtNum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (p Params) qualitySwitch() string {
	if p.RadiusEdgeRatio < 0 && p.MinDihedralAngle < 0 {
		if p.Refine {
			return "q"
		}
		return ""
	}
	var sb strings.Builder
	sb.WriteString("q")
	if p.RadiusEdgeRatio >= 0 {
		sb.WriteString(fmtNum(p.RadiusEdgeRatio))
	}
	if p.MinDihedralAngle >= 0 {
		sb.WriteString("/")
		sb.WriteString(fmtNum(p.MinDihedralAngle))
	}
	return sb.String()
}

// Build assembles the engine switch string. Quiet and Verbose are
// mutually exclusive.
func (p Params) Build() (string, error) {
	if p.Quiet && p.Verbose {
		return "", fmt.Errorf("quiet (-Q) and verbose (-V) are mutually exclusive")
	}

	toggles := []struct {
		on   bool
		flag string
	}{
		{p.PLC, "p"},
		{p.PreserveSurface, "Y"},
		{p.Reconstruct, "r"},
		{p.Coarsen, "R"},
		{p.AssignRegionAttributes, "A"},
		{p.NoExactArithmetic, "X"},
		{p.NoMergeCoplanar, "M"},
		{p.WeightedDelaunay, "w"},
		{p.KeepConvexHull, "c"},
		{p.DetectSelfIntersection, "d"},
		{p.ZeroNumbering, "z"},
		{p.OutputFaces, "f"},
		{p.OutputEdges, "e"},
		{p.OutputNeighbors, "n"},
		{p.OutputVoronoi, "v"},
		{p.OutputMeditMesh, "g"},
		{p.OutputVTK, "k"},
		{p.NoJettisonUnusedVertices, "J"},
		{p.SuppressBoundaryOutput, "B"},
		{p.SuppressNodeFile, "N"},
		{p.SuppressEleFile, "E"},
		{p.SuppressFaceEdgeFiles, "F"},
		{p.SuppressIterationNumbers, "I"},
		{p.CheckMesh, "C"},
		{p.Quiet, "Q"},
		{p.Verbose, "V"},
		{p.Help, "h"},
	}

	var sb strings.Builder
	for _, t := range toggles {
		if t.on {
			sb.WriteString(t.flag)
		}
	}

	sb.WriteString(p.qualitySwitch())

	if p.ConstrainVolume {
		sb.WriteString("a")
	} else if p.MaxVolume >= 0 {
		sb.WriteString("a")
		sb.WriteString(fmtNum(p.MaxVolume))
	}
	if p.SizingFunction != "" {
		sb.WriteString("m")
		sb.WriteString(p.SizingFunction)
	}
	if p.InsertPoints != "" {
		sb.WriteString("i")
		sb.WriteString(p.InsertPoints)
	}
	if p.OptimizeLevel >= 0 {
		sb.WriteString("O")
		sb.WriteString(strconv.Itoa(p.OptimizeLevel))
	}
	if p.MaxAddedPoints >= 0 {
		sb.WriteString("S")
		sb.WriteString(strconv.Itoa(p.MaxAddedPoints))
	}
	if p.CoplanarTolerance >= 0 {
		sb.WriteString("T")
		sb.WriteString(fmtNum(p.CoplanarTolerance))
	}
	if p.Extra != "" {
		sb.WriteString(p.Extra)
	}
	return sb.String(), nil
}
