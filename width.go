package lfsr

// MaxWidth is the widest register supported.
const MaxWidth = 64

// Word is the set of unsigned integer types a register value can be read
// as. Each polynomial is bound to the narrowest Word that covers its width.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// StorageBits returns the size in bits of the narrowest unsigned integer
// that can hold a register of the given width: 8, 16, 32 or 64. It returns 0
// when width is outside [1, MaxWidth].
func StorageBits(width uint32) uint32 {
	switch {
	case width == 0:
		return 0
	case width <= 8:
		return 8
	case width <= 16:
		return 16
	case width <= 32:
		return 32
	case width <= MaxWidth:
		return 64
	default:
		return 0
	}
}

func wordBits[T Word]() uint32 {
	n := uint32(0)
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}

// mask returns a value with the low width bits set.
func mask(width uint32) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
