package switches

import "fmt"

// Normalize converts a configuration payload into the NUL-terminated
// switch buffer the volume mesh engine consumes. Accepted payload
// kinds: string, []byte, Params or *Params (built via Build).
//
// When deriveBoundaryFaces is set, boundary face derivation downstream
// needs the engine's adjacency (n) and explicit face (f) output;
// whichever of the two is missing is appended, with all existing
// switches preserved in order.
func Normalize(config interface{}, deriveBoundaryFaces bool) ([]byte, error) {
	var sw []byte
	switch c := config.(type) {
	case string:
		sw = []byte(c)
	case []byte:
		sw = append(sw, c...)
	case Params:
		s, err := c.Build()
		if err != nil {
			return nil, err
		}
		sw = []byte(s)
	case *Params:
		if c == nil {
			return nil, fmt.Errorf("configuration must be a string, []byte, or Params, got nil *Params")
		}
		s, err := c.Build()
		if err != nil {
			return nil, err
		}
		sw = []byte(s)
	default:
		return nil, fmt.Errorf("configuration must be a string, []byte, or Params, got %T", config)
	}

	// Strip any embedded NUL the caller may have carried over from a
	// previous normalization; the terminator is re-added below.
	for i, b := range sw {
		if b == 0 {
			sw = sw[:i]
			break
		}
	}

	if deriveBoundaryFaces {
		var hasN, hasF bool
		for _, b := range sw {
			if b == 'n' {
				hasN = true
			}
			if b == 'f' {
				hasF = true
			}
		}
		if !hasN {
			sw = append(sw, 'n')
		}
		if !hasF {
			sw = append(sw, 'f')
		}
	}

	return append(sw, 0), nil
}

// SwitchString renders a normalized buffer back to text, dropping the
// NUL terminator.
func SwitchString(sw []byte) string {
	for i, b := range sw {
		if b == 0 {
			return string(sw[:i])
		}
	}
	return string(sw)
}
