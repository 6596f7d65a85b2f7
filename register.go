package lfsr

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/renproject/surge"
)

// register is the state shared by every variant: the polynomial it was built
// from and the current contents. Variants embed it and supply their own Step.
type register[T Word] struct {
	poly  Polynomial[T]
	state State
}

func newRegister[T Word](p Polynomial[T], seed uint64) register[T] {
	if !p.valid() {
		panic("lfsr: polynomial was not created by NewPolynomial")
	}
	return register[T]{poly: p, state: NewState(p.width, seed)}
}

// State returns the register contents.
func (r *register[T]) State() State {
	return r.state
}

// Value returns the register contents as the narrowest unsigned integer
// covering the register width.
func (r *register[T]) Value() T {
	return T(r.state.bits)
}

func (r *register[T]) Polynomial() Polynomial[T] {
	return r.poly
}

// Reseed replaces the register contents with the low Width bits of seed.
func (r *register[T]) Reseed(seed uint64) {
	r.state = NewState(r.poly.width, seed)
}

// Restore replaces the register contents with s, which must have the same
// width as the register.
func (r *register[T]) Restore(s State) error {
	if s.width != r.poly.width {
		return pkgerrors.Wrapf(ErrMalformedState, "restoring width %v into register of width %v", s.width, r.poly.width)
	}
	r.state = s
	return nil
}

func (r *register[T]) MarshalBinary() ([]byte, error) {
	return surge.ToBinary(r.state)
}

func (r *register[T]) UnmarshalBinary(data []byte) error {
	var s State
	if err := surge.FromBinary(&s, data); err != nil {
		return err
	}
	return r.Restore(s)
}

func (r *register[T]) String() string {
	return fmt.Sprintf("%v [%v]", r.state, r.poly)
}

// Collect calls step n times and packs the outputs LSB first: the i-th output
// is bit i of the result, whichever way the register shifts. Only the first
// 64 outputs fit; later calls still advance the register.
func Collect(step func() bool, n uint32) uint64 {
	var v uint64
	for i := uint32(0); i < n; i++ {
		if step() && i < 64 {
			v |= uint64(1) << i
		}
	}
	return v
}
