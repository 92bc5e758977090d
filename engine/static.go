package engine

import "github.com/notargets/tetwrap/plc"

// Static replays a canned RawMesh, recording the inputs it was handed.
// It stands in for a native engine in tests and is the substitutability
// witness for the Generator capability.
type Static struct {
	Out *RawMesh
	Err error

	// Captured on each Generate call.
	LastPLC      *plc.PLC
	LastSwitches []byte
	Calls        int
}

func (s *Static) Generate(in *plc.PLC, switchBuf []byte) (*RawMesh, error) {
	s.Calls++
	s.LastPLC = in
	s.LastSwitches = append([]byte(nil), switchBuf...)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Out, nil
}
