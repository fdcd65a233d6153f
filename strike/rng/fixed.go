package rng

// Sequence replays a fixed list of values, cycling when exhausted. It is the
// deterministic Source used by tests and replays.
type Sequence struct {
	Values []uint32
	i      int
}

func (s *Sequence) Uint32() uint32 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}

// Const returns a Sequence that always yields v.
func Const(v uint32) *Sequence {
	return &Sequence{Values: []uint32{v}}
}

// Mid is the raw value for which Float returns exactly 0.5.
const Mid uint32 = 1 << 31
