package lfsr_test

import (
	"github.com/renproject/lfsr"
	"github.com/renproject/lfsr/xoroshiro"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// x^16 + x^14 + x^13 + x^11 + 1, bits 0, 2, 3, 5 (16-16, 16-14, 16-13, 16-11).
func successor16(x uint16) uint16 {
	return (x >> 1) | (((x >> 0) ^ (x >> 2) ^ (x >> 3) ^ (x >> 5)) << 15)
}

// Same taps on a 32 bit register: bits 16, 18, 19, 21.
func successor32(x uint32) uint32 {
	return (x >> 1) | (((x >> 16) ^ (x >> 18) ^ (x >> 19) ^ (x >> 21)) << 31)
}

// Left shifting form of the same taps: bits 15, 13, 12, 10.
func leftSuccessor16(x uint16) uint16 {
	fb := ((x >> 15) ^ (x >> 13) ^ (x >> 12) ^ (x >> 10)) & 1
	return (x << 1) | fb
}

var _ = Describe("Fibonacci LFSR", func() {
	poly16 := lfsr.MustPolynomial[uint16](16, 16, 14, 13, 11)
	poly32 := lfsr.MustPolynomial[uint32](32, 16, 14, 13, 11)

	Context("right shifting", func() {
		It("should match the 16 bit reference recurrence", func() {
			r := lfsr.NewRight(poly16, 0xACE1)
			x := uint16(0xACE1)
			for i := 0; i < 65536; i++ {
				x = successor16(x)
				r.Step()
				Expect(r.Value()).To(Equal(x), "step %v", i)
			}
		})

		It("should match the 32 bit reference recurrence", func() {
			r := lfsr.NewRight(poly32, 0xACE1)
			x := uint32(0xACE1)
			for i := 0; i < 65536; i++ {
				x = successor32(x)
				r.Step()
				Expect(r.Value()).To(Equal(x), "step %v", i)
			}
		})

		It("should output the LSB before the shift", func() {
			r := lfsr.NewRight(poly16, 0xACE1)
			for i := 0; i < 1000; i++ {
				lsb := r.Value()&1 == 1
				Expect(r.Step()).To(Equal(lsb))
			}
		})
	})

	Context("left shifting", func() {
		It("should match the left shifting recurrence", func() {
			r := lfsr.NewLeft(poly16, 0xACE1)
			x := uint16(0xACE1)
			for i := 0; i < 65536; i++ {
				msb := x>>15 == 1
				x = leftSuccessor16(x)
				Expect(r.Step()).To(Equal(msb))
				Expect(r.Value()).To(Equal(x), "step %v", i)
			}
		})

		It("should handle a full 64 bit register", func() {
			p := lfsr.MustPolynomial[uint64](64, 64, 63, 61, 60)
			r := lfsr.NewLeft(p, 0x8000000000000001)

			Expect(r.Step()).To(BeTrue())
			// Tapped bits 63, 62, 60, 59: 1 ^ 0 ^ 0 ^ 0.
			Expect(r.Value()).To(Equal(uint64(0x3)))
		})
	})

	Context("when seeded with zero", func() {
		It("should stay at zero in both directions", func() {
			right := lfsr.NewRight(poly16, 0)
			left := lfsr.NewLeft(poly32, 0)
			for i := 0; i < 1000; i++ {
				Expect(right.Step()).To(BeFalse())
				Expect(left.Step()).To(BeFalse())
			}
			Expect(right.Value()).To(Equal(uint16(0)))
			Expect(left.Value()).To(Equal(uint32(0)))
			Expect(right.Next64()).To(Equal(uint64(0)))
		})
	})

	Context("bulk stepping", func() {
		It("should pack single steps LSB first for every variant", func() {
			variants := []lfsr.Variant{lfsr.VariantRight, lfsr.VariantLeft, lfsr.VariantInverted}
			rng := xoroshiro.New(1)
			for _, v := range variants {
				for trial := 0; trial < 8; trial++ {
					seed := rng.Uint64()
					for n := uint32(0); n <= 128; n++ {
						single, err := lfsr.Build(v, 32, []uint32{16, 14, 13, 11}, seed)
						Expect(err).ToNot(HaveOccurred())
						bulk, err := lfsr.Build(v, 32, []uint32{16, 14, 13, 11}, seed)
						Expect(err).ToNot(HaveOccurred())

						var want uint64
						for i := uint32(0); i < n; i++ {
							if single.Step() && i < 64 {
								want |= uint64(1) << i
							}
						}

						Expect(bulk.StepN(n)).To(Equal(want), "%v seed %x n %v", v, seed, n)
						Expect(bulk.State()).To(Equal(single.State()))
					}
				}
			}
		})

		It("should pack the inverted register's inserted bits", func() {
			r := lfsr.NewInvertedLeft(lfsr.MustPolynomial[uint8](8, 8, 5), 0)
			copied := r

			var want uint64
			for i := uint32(0); i < 40; i++ {
				if copied.Step() {
					want |= uint64(1) << i
				}
			}
			Expect(r.StepN(40)).To(Equal(want))
			Expect(r.Value()).To(Equal(copied.Value()))
		})

		It("should leave the register untouched for zero steps", func() {
			r := lfsr.NewLeft(poly16, 0x1234)
			Expect(r.StepN(0)).To(Equal(uint64(0)))
			Expect(r.Value()).To(Equal(uint16(0x1234)))
		})

		It("should narrow the extractors to their width", func() {
			a := lfsr.NewRight(poly16, 0xACE1)
			b := a
			Expect(a.Next8()).To(Equal(uint8(b.StepN(8))))
			Expect(a.Next16()).To(Equal(uint16(b.StepN(16))))
			Expect(a.Next32()).To(Equal(uint32(b.StepN(32))))
			Expect(a.Next64()).To(Equal(b.StepN(64)))
		})
	})

	Context("construction", func() {
		It("should give identical sequences for identical seeds", func() {
			a := lfsr.NewLeft(poly32, 0xDEADBEEF)
			b := lfsr.NewLeft(poly32, 0xDEADBEEF)
			for i := 0; i < 1000; i++ {
				a.Step()
				b.Step()
			}
			Expect(a.Value()).To(Equal(b.Value()))
		})

		It("should discard seed bits above the width", func() {
			p := lfsr.MustPolynomial[uint16](12, 12, 11, 10, 4)
			r := lfsr.NewRight(p, 0xFFFFFFFF)
			Expect(r.Value()).To(Equal(uint16(0x0FFF)))
			Expect(r.State().Width()).To(Equal(uint32(12)))
		})

		It("should panic on an unvalidated polynomial", func() {
			Expect(func() { lfsr.NewRight(lfsr.Polynomial[uint8]{}, 1) }).To(Panic())
		})
	})

	Context("a register narrower than its word", func() {
		It("should never set bits above the width", func() {
			p := lfsr.MustPolynomial[uint16](12, 12, 11, 10, 4)
			right := lfsr.NewRight(p, 0xABC)
			left := lfsr.NewLeft(p, 0xABC)
			for i := 0; i < 10000; i++ {
				right.Step()
				left.Step()
				Expect(right.Value()).To(BeNumerically("<=", 0x0FFF))
				Expect(left.Value()).To(BeNumerically("<=", 0x0FFF))
			}
		})

		It("should support a single bit register", func() {
			p := lfsr.MustPolynomial[uint8](1, 1)
			r := lfsr.NewLeft(p, 1)
			for i := 0; i < 10; i++ {
				Expect(r.Step()).To(BeTrue())
				Expect(r.Value()).To(Equal(uint8(1)))
			}
		})
	})
})
