package lfsr

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/renproject/surge"
)

// ErrMalformedState is returned when decoding a State whose width or bits are
// inconsistent.
var ErrMalformedState = errors.New("lfsr: malformed state")

// StateSizeMarshalled is the number of bytes of an encoded State.
const StateSizeMarshalled = 1 + 8

// State is a fixed capacity bit container holding the register contents.
// Bits at and above Width are always zero.
type State struct {
	bits  uint64
	width uint32
}

// NewState returns a state of the given width holding the low width bits of
// seed. Width must be in [1, MaxWidth].
func NewState(width uint32, seed uint64) State {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("state width must be in [1, %v], got %v", MaxWidth, width))
	}
	return State{bits: seed & mask(width), width: width}
}

// Test reports whether bit i is set. It panics if i is not less than Width.
func (s State) Test(i uint32) bool {
	if i >= s.width {
		panic(fmt.Sprintf("bit index %v out of range for width %v", i, s.width))
	}
	return (s.bits>>i)&1 == 1
}

func (s State) Width() uint32 {
	return s.width
}

// Uint64 returns the state as an integer, bit i of the result being bit i of
// the register.
func (s State) Uint64() uint64 {
	return s.bits
}

// String formats the state as Width binary digits, MSB first.
func (s State) String() string {
	var b strings.Builder
	b.Grow(int(s.width))
	for i := int(s.width) - 1; i >= 0; i-- {
		if (s.bits>>uint(i))&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Set sets bit i to b. It panics if i is not less than Width.
func (s *State) Set(i uint32, b bool) {
	if i >= s.width {
		panic(fmt.Sprintf("bit index %v out of range for width %v", i, s.width))
	}
	if b {
		s.bits |= uint64(1) << i
	} else {
		s.bits &^= uint64(1) << i
	}
}

// ShiftRight shifts the state one bit towards the LSB. Bit Width-1 becomes
// zero.
func (s *State) ShiftRight() {
	s.bits >>= 1
}

// ShiftLeft shifts the state one bit towards the MSB, discarding bit Width-1.
// Bit 0 becomes zero.
func (s *State) ShiftLeft() {
	s.bits = (s.bits << 1) & mask(s.width)
}

// SizeHint implements the surge.SizeHinter interface.
func (s State) SizeHint() int {
	return StateSizeMarshalled
}

// Marshal implements the surge.Marshaler interface. The encoding is the
// width as one byte followed by the bits as a uint64.
func (s State) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU8(uint8(s.width), buf, rem)
	if err != nil {
		return buf, rem, pkgerrors.Wrap(err, "marshaling width")
	}
	buf, rem, err = surge.MarshalU64(s.bits, buf, rem)
	if err != nil {
		return buf, rem, pkgerrors.Wrap(err, "marshaling bits")
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (s *State) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var width uint8
	var bits uint64

	buf, rem, err := surge.UnmarshalU8(&width, buf, rem)
	if err != nil {
		return buf, rem, pkgerrors.Wrap(err, "unmarshaling width")
	}
	buf, rem, err = surge.UnmarshalU64(&bits, buf, rem)
	if err != nil {
		return buf, rem, pkgerrors.Wrap(err, "unmarshaling bits")
	}

	if width < 1 || width > MaxWidth {
		return buf, rem, pkgerrors.Wrapf(ErrMalformedState, "width %v", width)
	}
	if bits&^mask(uint32(width)) != 0 {
		return buf, rem, pkgerrors.Wrapf(ErrMalformedState, "bits %x exceed width %v", bits, width)
	}

	s.width = uint32(width)
	s.bits = bits
	return buf, rem, nil
}
