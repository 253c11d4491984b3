// Package bignum implements constant-time arithmetic on fixed-width
// multi-precision unsigned integers. Values are sequences of k 64-bit words
// in little-endian word order; k is chosen by the caller and identical for
// every operand of one call. All buffers are caller-allocated and the core
// operations perform no allocation and no branching or memory addressing
// that depends on operand values, only on their fixed width.
package bignum

import "github.com/rafaelescrich/go-bignum/ct"

// wordBits is the width of one word in bits.
const wordBits = 64

// ScratchWords returns the number of scratch words ModInv requires for
// k-word operands.
func ScratchWords(k int) int {
	return 3 * k
}

// Iterations returns the number of reduction steps ModInv executes for
// k-word operands. The count depends only on k, never on operand values.
//
// 2*64*k steps are sufficient for the binary extended GCD below: every step
// reduces the combined bit length of the two working values by at least one,
// and that combined length starts at no more than 2*64*k bits.
func Iterations(k int) int {
	return 2 * wordBits * k
}

// ModInv sets z = a^(-1) mod b, with 0 <= z < b, where k = len(b).
//
// b must be odd and greater than 1, and a must be coprime to b; these
// preconditions are not checked, because checking them would branch on
// secret values. Violating them yields an unspecified result after the same
// fixed number of steps. len(a) and len(z) must equal k and t must hold at
// least ScratchWords(k) words; those lengths are public, so they are
// enforced and a violation panics.
//
// a and b are read-only and must not alias z or t[:3k]; z and t are
// overwritten. Runtime is a function of k alone.
func ModInv(z, a, b, t []uint64) {
	modInv(z, a, b, t)
}

// modInv is the body of ModInv. It returns the number of reduction steps it
// executed so tests can confirm the count is identical across operand
// values.
func modInv(z, a, b, t []uint64) int {
	k := len(b)
	if k == 0 {
		panic("bignum: ModInv requires at least one word")
	}
	if len(a) != k || len(z) != k {
		panic("bignum: ModInv operand lengths must match the modulus")
	}
	if len(t) < ScratchWords(k) {
		panic("bignum: ModInv scratch buffer too small")
	}

	// Binary extended GCD over the working pair (A, B) with cofactors
	// (u, v), maintaining A = u*a (mod b) and B = v*a (mod b). B starts at
	// b and stays odd; when A reaches 0, B holds gcd(a, b) and, for
	// coprime inputs, v holds the inverse. Every cofactor update is
	// modular, so v is already reduced into [0, b) at termination.
	A := t[0*k : 1*k]
	B := t[1*k : 2*k]
	u := t[2*k : 3*k]
	v := z

	copy(A, a)
	copy(B, b)
	for i := 0; i < k; i++ {
		u[i] = 0
		v[i] = 0
	}
	u[0] = 1

	steps := Iterations(k)
	for i := 0; i < steps; i++ {
		odd := ct.Mask(A[0])

		// When A is odd, make A the larger of the pair so the
		// subtraction below cannot underflow. B keeps an odd value:
		// it is only replaced by A when A is odd too.
		swap := odd & ct.Mask(ct.Less(A, B))
		ct.Swap(swap, A, B)
		ct.Swap(swap, u, v)

		// A odd: A -= B leaves A even. Mirror on the cofactor as
		// u -= v (mod b), adding b back on borrow.
		ct.Sub(odd, A, B)
		borrow := ct.Sub(odd, u, v)
		ct.Add(ct.Mask(borrow), u, b)

		// A is now even; halve it, and halve u modulo b. Adding b to
		// an odd u makes the sum even, since b is odd.
		ct.Rshift1(A, 0)
		carry := ct.Add(ct.Mask(u[0]), u, b)
		ct.Rshift1(u, carry)
	}

	return steps
}
