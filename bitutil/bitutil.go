// Package bitutil collects small bit manipulation helpers used alongside the
// shift registers when talking to peripherals.
package bitutil

import "math/bits"

// ReverseBits8 reverses the bit order of v.
func ReverseBits8(v uint8) uint8 {
	return bits.Reverse8(v)
}

// ReverseBits16 reverses the bit order of v.
func ReverseBits16(v uint16) uint16 {
	return bits.Reverse16(v)
}

func ReverseBits32(v uint32) uint32 {
	return bits.Reverse32(v)
}

func ReverseBits64(v uint64) uint64 {
	return bits.Reverse64(v)
}

func Byteswap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

func Byteswap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

func Byteswap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// IsValidI2CAddress reports whether addr is usable as an I2C target address.
// Seven bit addresses exclude the reserved ranges 0x00-0x07 and 0x78-0x7F.
// Anything above 0x7F is treated as a ten bit address.
func IsValidI2CAddress(addr uint16) bool {
	if addr <= 0x7F {
		return addr >= 0x08 && addr <= 0x77
	}
	return addr <= 0x3FF
}
