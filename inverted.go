package lfsr

// InvertedLeft is a left shifting register that inserts the negation of the
// tap feedback and outputs the inserted bit rather than the evicted MSB.
// Negating the feedback means the all zero state is no longer a fixed point.
//
// With width 8 and taps 8, 5 it reproduces the sequence used by the Tower of
// Druaga arcade board: seed 0 runs through a 217 step cycle, seed 6 a 31 step
// cycle and seed 26 a 7 step cycle.
type InvertedLeft[T Word] struct {
	register[T]
}

func NewInvertedLeft[T Word](p Polynomial[T], seed uint64) InvertedLeft[T] {
	return InvertedLeft[T]{register: newRegister(p, seed)}
}

// Step shifts one bit and returns the inserted bit.
func (r *InvertedLeft[T]) Step() bool {
	fb := !r.poly.Feedback(r.state, Left)
	r.state.ShiftLeft()
	r.state.Set(0, fb)
	return fb
}

func (r *InvertedLeft[T]) StepN(n uint32) uint64 {
	return Collect(r.Step, n)
}

func (r *InvertedLeft[T]) Next8() uint8 {
	return uint8(r.StepN(8))
}

func (r *InvertedLeft[T]) Next16() uint16 {
	return uint16(r.StepN(16))
}

func (r *InvertedLeft[T]) Next32() uint32 {
	return uint32(r.StepN(32))
}

func (r *InvertedLeft[T]) Next64() uint64 {
	return r.StepN(64)
}
