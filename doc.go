// Package lfsr implements Fibonacci linear feedback shift registers that are
// generic over register width (1 to 64 bits) and the set of feedback taps.
//
// A register is configured with a Polynomial, validated once when it is
// created, and then stepped one bit at a time or in bulk:
//
//	p := lfsr.MustPolynomial[uint16](16, 16, 14, 13, 11)
//	r := lfsr.NewRight(p, 0xACE1)
//	bit := r.Step()
//	word := r.Next16()
//
// Two shift directions are provided (FibonacciRight, FibonacciLeft), plus
// InvertedLeft, which inserts the negated feedback. Other update rules can be
// built the same way InvertedLeft is, from Polynomial.Feedback and Collect.
//
// Registers are plain values with no shared state. A single register must not
// be stepped from more than one goroutine at a time.
package lfsr
