package lfsr

// FibonacciRight is a right shifting Fibonacci LFSR. Each step outputs the
// LSB, shifts right and inserts the feedback at the MSB.
//
// With taps 16, 14, 13, 11 on a 16 bit register, one step is
//
//	x = x>>1 | (x ^ x>>2 ^ x>>3 ^ x>>5)<<15
//
// The zero value is not usable; create one with NewRight. Copying the value
// copies the register.
type FibonacciRight[T Word] struct {
	register[T]
}

// NewRight returns a right shifting register seeded with the low bits of
// seed.
func NewRight[T Word](p Polynomial[T], seed uint64) FibonacciRight[T] {
	return FibonacciRight[T]{register: newRegister(p, seed)}
}

// Step shifts one bit and returns the bit shifted out.
func (r *FibonacciRight[T]) Step() bool {
	out := r.state.Test(0)
	fb := r.poly.Feedback(r.state, Right)
	r.state.ShiftRight()
	r.state.Set(r.poly.width-1, fb)
	return out
}

// StepN shifts n bits and returns the outputs packed LSB first.
func (r *FibonacciRight[T]) StepN(n uint32) uint64 {
	return Collect(r.Step, n)
}

func (r *FibonacciRight[T]) Next8() uint8 {
	return uint8(r.StepN(8))
}

func (r *FibonacciRight[T]) Next16() uint16 {
	return uint16(r.StepN(16))
}

func (r *FibonacciRight[T]) Next32() uint32 {
	return uint32(r.StepN(32))
}

func (r *FibonacciRight[T]) Next64() uint64 {
	return r.StepN(64)
}

// FibonacciLeft is a left shifting Fibonacci LFSR. Each step outputs the MSB,
// shifts left and inserts the feedback at the LSB.
type FibonacciLeft[T Word] struct {
	register[T]
}

// NewLeft returns a left shifting register seeded with the low bits of seed.
func NewLeft[T Word](p Polynomial[T], seed uint64) FibonacciLeft[T] {
	return FibonacciLeft[T]{register: newRegister(p, seed)}
}

// Step shifts one bit and returns the bit shifted out.
func (r *FibonacciLeft[T]) Step() bool {
	out := r.state.Test(r.poly.width - 1)
	fb := r.poly.Feedback(r.state, Left)
	r.state.ShiftLeft()
	r.state.Set(0, fb)
	return out
}

// StepN shifts n bits and returns the outputs packed LSB first.
func (r *FibonacciLeft[T]) StepN(n uint32) uint64 {
	return Collect(r.Step, n)
}

func (r *FibonacciLeft[T]) Next8() uint8 {
	return uint8(r.StepN(8))
}

func (r *FibonacciLeft[T]) Next16() uint16 {
	return uint16(r.StepN(16))
}

func (r *FibonacciLeft[T]) Next32() uint32 {
	return uint32(r.StepN(32))
}

func (r *FibonacciLeft[T]) Next64() uint64 {
	return r.StepN(64)
}
