package bitutil_test

import (
	"github.com/renproject/lfsr/bitutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bit utilities", func() {
	It("should reverse bit order", func() {
		Expect(bitutil.ReverseBits8(0x01)).To(Equal(uint8(0x80)))
		Expect(bitutil.ReverseBits8(0xF0)).To(Equal(uint8(0x0F)))
		Expect(bitutil.ReverseBits8(0xA5)).To(Equal(uint8(0xA5)))
		Expect(bitutil.ReverseBits16(0x0001)).To(Equal(uint16(0x8000)))
		Expect(bitutil.ReverseBits16(0x1234)).To(Equal(uint16(0x2C48)))
		Expect(bitutil.ReverseBits32(0x00000001)).To(Equal(uint32(0x80000000)))
		Expect(bitutil.ReverseBits64(0x1)).To(Equal(uint64(0x8000000000000000)))
	})

	It("should swap byte order", func() {
		Expect(bitutil.Byteswap16(0x1234)).To(Equal(uint16(0x3412)))
		Expect(bitutil.Byteswap32(0x12345678)).To(Equal(uint32(0x78563412)))
		Expect(bitutil.Byteswap64(0x123456789ABCDEF0)).To(Equal(uint64(0xF0DEBC9A78563412)))
		Expect(bitutil.Byteswap32(bitutil.Byteswap32(0xEDCBA988))).To(Equal(uint32(0xEDCBA988)))
	})

	Context("I2C addresses", func() {
		It("should exclude the reserved seven bit ranges", func() {
			Expect(bitutil.IsValidI2CAddress(0x00)).To(BeFalse())
			Expect(bitutil.IsValidI2CAddress(0x07)).To(BeFalse())
			Expect(bitutil.IsValidI2CAddress(0x08)).To(BeTrue())
			Expect(bitutil.IsValidI2CAddress(0x62)).To(BeTrue())
			Expect(bitutil.IsValidI2CAddress(0x77)).To(BeTrue())
			Expect(bitutil.IsValidI2CAddress(0x78)).To(BeFalse())
			Expect(bitutil.IsValidI2CAddress(0x7F)).To(BeFalse())
		})

		It("should accept ten bit addresses", func() {
			Expect(bitutil.IsValidI2CAddress(0x80)).To(BeTrue())
			Expect(bitutil.IsValidI2CAddress(0x3FF)).To(BeTrue())
			Expect(bitutil.IsValidI2CAddress(0x400)).To(BeFalse())
		})
	})
})
