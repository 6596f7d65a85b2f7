package lfsr

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("lfsr: unknown variant")

// Engine is the width independent view of a register. Pointers to
// FibonacciRight, FibonacciLeft and InvertedLeft implement it for every Word.
type Engine interface {
	Step() bool
	StepN(n uint32) uint64
	Next8() uint8
	Next16() uint16
	Next32() uint32
	Next64() uint64
	State() State
	Reseed(seed uint64)
	Restore(s State) error
}

var (
	_ Engine = &FibonacciRight[uint8]{}
	_ Engine = &FibonacciLeft[uint16]{}
	_ Engine = &InvertedLeft[uint64]{}
)

type Variant uint8

const (
	VariantRight Variant = iota
	VariantLeft
	VariantInverted
)

func (v Variant) String() string {
	switch v {
	case VariantRight:
		return "right"
	case VariantLeft:
		return "left"
	case VariantInverted:
		return "inverted"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "right":
		return VariantRight, nil
	case "left":
		return VariantLeft, nil
	case "inverted":
		return VariantInverted, nil
	default:
		return 0, pkgerrors.Wrapf(ErrUnknownVariant, "%q", name)
	}
}

// Build creates an engine for a configuration only known at run time. The
// register is backed by the narrowest Word covering width.
func Build(v Variant, width uint32, taps []uint32, seed uint64) (Engine, error) {
	switch StorageBits(width) {
	case 8:
		return build[uint8](v, width, taps, seed)
	case 16:
		return build[uint16](v, width, taps, seed)
	case 32:
		return build[uint32](v, width, taps, seed)
	case 64:
		return build[uint64](v, width, taps, seed)
	default:
		return nil, pkgerrors.Wrapf(ErrWidthOutOfRange, "width %v not in [1, %v]", width, MaxWidth)
	}
}

func build[T Word](v Variant, width uint32, taps []uint32, seed uint64) (Engine, error) {
	p, err := NewPolynomial[T](width, taps...)
	if err != nil {
		return nil, err
	}

	switch v {
	case VariantRight:
		r := NewRight(p, seed)
		return &r, nil
	case VariantLeft:
		r := NewLeft(p, seed)
		return &r, nil
	case VariantInverted:
		r := NewInvertedLeft(p, seed)
		return &r, nil
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownVariant, "%v", v)
	}
}

// Period steps e until its state returns to the state it started in and
// returns the number of steps taken. If limit steps pass first it returns
// false; a seed outside any cycle never returns. The engine is left wherever
// stepping stopped.
func Period(e Engine, limit uint64) (uint64, bool) {
	start := e.State()
	for n := uint64(1); n <= limit; n++ {
		e.Step()
		if e.State() == start {
			return n, true
		}
	}
	return 0, false
}
