package tetmesh

// FaceKey is a triangle's vertex triple sorted ascending: the
// orientation-independent identity used to join derived boundary faces
// against engine-emitted faces. The sort lives only in the key - the
// emitted face keeps its outward winding.
type FaceKey [3]int

// CanonicalKey sorts three vertex indices into a FaceKey.
func CanonicalKey(a, b, c int) FaceKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return FaceKey{a, b, c}
}

// BuildMarkerMap indexes engine-emitted faces by canonical key. Later
// duplicates overwrite earlier ones; well-formed engine output has no
// duplicates, so last-wins is only a tiebreak.
func BuildMarkerMap(triFaces [][]int, markers []int) map[FaceKey]int {
	if triFaces == nil || markers == nil {
		return nil
	}
	m := make(map[FaceKey]int, len(triFaces))
	for i, f := range triFaces {
		m[CanonicalKey(f[0], f[1], f[2])] = markers[i]
	}
	return m
}

// ReconcileMarkers resolves one marker per derived boundary face by
// canonical-key lookup against the engine's emitted faces. A face the
// engine never labeled gets marker 0, the explicit no-label sentinel.
// If the engine produced no faces or no markers at all, the result is
// absent (nil), not a zero-filled array.
func ReconcileMarkers(triFaces [][]int, triMarkers []int, boundaryFaces [][]int) []int {
	lookup := BuildMarkerMap(triFaces, triMarkers)
	if len(lookup) == 0 {
		return nil
	}
	out := make([]int, len(boundaryFaces))
	for i, f := range boundaryFaces {
		if marker, ok := lookup[CanonicalKey(f[0], f[1], f[2])]; ok {
			out[i] = marker
		}
	}
	return out
}

// NormalizeMarkers undoes the assembly-time offsets in place on the
// emitted and reconciled face marker arrays: positive markers are
// decremented back to the caller's raw labels and the 0 no-label
// sentinel becomes interiorDefault.
func (m *TetMesh) NormalizeMarkers(interiorDefault int) {
	normalizeMarkerArray(m.TriFaceMarkers, interiorDefault)
	normalizeMarkerArray(m.BoundaryFaceMarkers, interiorDefault)
}

func normalizeMarkerArray(markers []int, interiorDefault int) {
	for i, v := range markers {
		switch {
		case v == 0:
			markers[i] = interiorDefault
		case v > 0:
			markers[i] = v - 1
		}
	}
}
