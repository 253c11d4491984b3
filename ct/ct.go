// Package ct provides constant-time primitives for 64-bit words and
// fixed-width little-endian word vectors. Every function executes in time
// and with a memory-access pattern that depends only on the lengths of its
// arguments, never on the values they hold.
//
// Functions taking a mask expect it to be 0 or ^uint64(0); any other value
// produces an undefined result.
package ct

import "math/bits"

// IsNonZero returns 1 if x is non-zero and 0 otherwise.
func IsNonZero(x uint64) uint64 {
	// For x == 0 both x and -x have a clear top bit; for any other value
	// at least one of them has it set.
	return (x | -x) >> 63
}

// Mask expands the low bit of v into a full-width mask: 0 becomes 0,
// 1 becomes ^uint64(0). Higher bits of v are ignored.
func Mask(v uint64) uint64 {
	return -(v & 1)
}

// Equal reports whether x and y hold the same value. x and y must have the
// same length.
func Equal(x, y []uint64) bool {
	var r uint64
	for i := range x {
		r |= x[i] ^ y[i]
	}
	return IsNonZero(r) == 0
}

// Less returns 1 if x < y and 0 otherwise, comparing same-length word
// vectors as little-endian integers.
func Less(x, y []uint64) uint64 {
	var borrow uint64
	for i := range x {
		_, borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// Swap exchanges x and y where mask is set. x and y must have the same
// length and must not overlap.
func Swap(mask uint64, x, y []uint64) {
	for i := range x {
		d := mask & (x[i] ^ y[i])
		x[i] ^= d
		y[i] ^= d
	}
}

// Add adds y to x in place where mask is set and returns the carry out.
// Where mask is clear x is unchanged and the carry is 0.
func Add(mask uint64, x, y []uint64) uint64 {
	var carry uint64
	for i := range x {
		x[i], carry = bits.Add64(x[i], y[i]&mask, carry)
	}
	return carry
}

// Sub subtracts y from x in place where mask is set and returns the borrow
// out. Where mask is clear x is unchanged and the borrow is 0.
func Sub(mask uint64, x, y []uint64) uint64 {
	var borrow uint64
	for i := range x {
		x[i], borrow = bits.Sub64(x[i], y[i]&mask, borrow)
	}
	return borrow
}

// Rshift1 shifts x right by one bit in place, inserting the low bit of top
// as the new most significant bit.
func Rshift1(x []uint64, top uint64) {
	k := len(x)
	for i := 0; i < k-1; i++ {
		x[i] = x[i]>>1 | x[i+1]<<63
	}
	x[k-1] = x[k-1]>>1 | top<<63
}
