package lfsr

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrWidthOutOfRange = errors.New("lfsr: width out of range")
	ErrStorageMismatch = errors.New("lfsr: storage type does not match width")
	ErrNoTaps          = errors.New("lfsr: at least one tap required")
	ErrTapOutOfRange   = errors.New("lfsr: tap out of range")
)

// Direction selects where the output bit is taken from and where the
// feedback bit is inserted.
type Direction uint8

const (
	// Right outputs the LSB, shifts right and inserts feedback at the MSB.
	// Tap t reads bit N-t.
	Right Direction = iota
	// Left outputs the MSB, shifts left and inserts feedback at the LSB. Tap
	// t reads bit t-1.
	Left
)

func (dir Direction) String() string {
	switch dir {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(dir))
	}
}

// Polynomial is a validated register configuration: the register width N and
// the exponents of the feedback polynomial. Polynomial[uint16] with width 16
// and taps 16, 14, 13, 11 describes x^16 + x^14 + x^13 + x^11 + 1.
//
// The zero value is not a valid polynomial; use NewPolynomial or
// MustPolynomial.
type Polynomial[T Word] struct {
	width uint32
	taps  []uint32
}

// NewPolynomial validates the width and taps and returns the polynomial. T
// must be the narrowest unsigned type covering width (see StorageBits).
func NewPolynomial[T Word](width uint32, taps ...uint32) (Polynomial[T], error) {
	if width < 1 || width > MaxWidth {
		return Polynomial[T]{}, pkgerrors.Wrapf(ErrWidthOutOfRange, "width %v not in [1, %v]", width, MaxWidth)
	}
	if got, want := wordBits[T](), StorageBits(width); got != want {
		return Polynomial[T]{}, pkgerrors.Wrapf(ErrStorageMismatch, "width %v needs a %v bit word, got %v bits", width, want, got)
	}
	if len(taps) == 0 {
		return Polynomial[T]{}, ErrNoTaps
	}
	for _, tap := range taps {
		if tap < 1 || tap > width {
			return Polynomial[T]{}, pkgerrors.Wrapf(ErrTapOutOfRange, "tap %v not in [1, %v]", tap, width)
		}
	}

	p := Polynomial[T]{
		width: width,
		taps:  make([]uint32, len(taps)),
	}
	copy(p.taps, taps)

	return p, nil
}

// MustPolynomial is like NewPolynomial but panics if the configuration is
// invalid. It is meant for package level variant definitions.
func MustPolynomial[T Word](width uint32, taps ...uint32) Polynomial[T] {
	p, err := NewPolynomial[T](width, taps...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Polynomial[T]) Width() uint32 {
	return p.width
}

// Taps returns a copy of the tap list.
func (p Polynomial[T]) Taps() []uint32 {
	taps := make([]uint32, len(p.taps))
	copy(taps, p.taps)
	return taps
}

// Mask returns a value with the low Width bits set.
func (p Polynomial[T]) Mask() T {
	return T(mask(p.width))
}

// Feedback computes the XOR of the tapped bits of s, using the indexing
// convention of dir. It is the building block for every update rule; a
// variant with a different insertion or output policy calls it instead of
// re-deriving tap positions.
func (p Polynomial[T]) Feedback(s State, dir Direction) bool {
	fb := false
	for _, tap := range p.taps {
		switch dir {
		case Right:
			fb = fb != s.Test(p.width-tap)
		default:
			fb = fb != s.Test(tap-1)
		}
	}
	return fb
}

func (p Polynomial[T]) String() string {
	terms := make([]string, 0, len(p.taps)+1)
	for _, tap := range p.taps {
		terms = append(terms, fmt.Sprintf("x^%d", tap))
	}
	terms = append(terms, "1")
	return strings.Join(terms, " + ")
}

func (p Polynomial[T]) valid() bool {
	return p.width != 0
}
