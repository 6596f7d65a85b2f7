package lfsr

import "math/rand"

// Source adapts an Engine to math/rand. It is not safe for concurrent use.
type Source struct {
	e Engine
}

var _ rand.Source64 = &Source{}

func NewSource(e Engine) *Source {
	return &Source{e: e}
}

// Uint64 returns the next 64 output bits.
func (src *Source) Uint64() uint64 {
	return src.e.Next64()
}

func (src *Source) Int63() int64 {
	return int64(src.e.Next64() >> 1)
}

// Seed reseeds the underlying engine with the low bits of seed.
func (src *Source) Seed(seed int64) {
	src.e.Reseed(uint64(seed))
}
