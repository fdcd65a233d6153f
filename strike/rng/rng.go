// Package rng is the session's pluggable pseudo-random source.
//
// Every randomized decision in the game (spawn positions, star scatter,
// shrapnel, beam jitter and color) draws from one Source seeded once per
// session, so tests can inject a deterministic one.
package rng

// Source produces uniformly distributed 32-bit values.
type Source interface {
	Uint32() uint32
}

// Xorshift32 is Marsaglia's xorshift generator. It is small enough for the
// MCU and never allocates.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 seeds a generator. A zero seed is replaced by a fixed
// non-zero constant since zero is a fixed point of xorshift.
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = 0x6d2b79f5
	}
	return &Xorshift32{state: seed}
}

func (x *Xorshift32) Uint32() uint32 {
	s := x.state
	if s == 0 {
		s = 0x6d2b79f5
	}
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Float returns a value in [0, 1).
func Float(src Source) float32 {
	// 24 bits fit a float32 mantissa exactly.
	return float32(src.Uint32()>>8) / (1 << 24)
}

// Range returns a value in [lo, hi).
func Range(src Source, lo, hi float32) float32 {
	return lo + (hi-lo)*Float(src)
}

// Symmetric returns a value in [-r, r).
func Symmetric(src Source, r float32) float32 {
	return Range(src, -r, r)
}

// Intn returns a value in [0, n). It returns 0 for n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(src.Uint32() % uint32(n))
}

// Bool returns a fair coin flip.
func Bool(src Source) bool {
	return src.Uint32()&(1<<16) != 0
}

// Byte returns a value in [0, 255].
func Byte(src Source) uint8 {
	return uint8(src.Uint32() >> 24)
}
