// Package xoroshiro is a small xoroshiro128+ generator used to draw register
// seeds in specs and benchmarks.
package xoroshiro

import "math/bits"

const (
	a = 24
	b = 16
	c = 37
)

type Rng struct {
	state [2]uint64
}

// New returns a generator whose state is expanded from seed with splitmix64,
// so that small or zero seeds still give a well mixed state.
func New(seed uint64) *Rng {
	rng := &Rng{}
	rng.SeedUint64(seed)
	return rng
}

func (rng *Rng) SeedUint64(seed uint64) {
	rng.state[0] = splitmix64(&seed)
	rng.state[1] = splitmix64(&seed)
}

func (rng *Rng) Uint64() uint64 {
	result := rng.state[0] + rng.state[1]

	temp := rng.state[0] ^ rng.state[1]
	rng.state[0] = bits.RotateLeft64(rng.state[0], a) ^ temp ^ (temp << b)
	rng.state[1] = bits.RotateLeft64(temp, c)

	return result
}

// Uint32n returns a value in [0, n). It panics if n is zero.
func (rng *Rng) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("xoroshiro: Uint32n with n == 0")
	}
	hi, _ := bits.Mul64(rng.Uint64(), uint64(n))
	return uint32(hi)
}

func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
