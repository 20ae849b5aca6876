// Package bigint implements a fixed-length, sign-magnitude, little-endian
// arbitrary-precision integer.
//
// A BigInt never reallocates: its length is fixed at creation and every
// operation writes into the existing buffer. Callers are responsible for
// sizing a BigInt large enough to hold the result of whatever operation
// they intend to run on it (see package arith and the sizing rules in
// SPEC_FULL.md §3.3). This mirrors the teacher's State struct — small,
// value-shaped, mutated in place by the operations that act on it.
package bigint

import "fmt"

// BigInt is a sign-magnitude arbitrary-precision integer backed by a
// fixed-length little-endian byte buffer (mem[0] is the least significant
// byte). The two's-complement representation is never used.
type BigInt struct {
	sign      bool // true => value is strictly negative
	mem       []byte
	destroyed bool
}

// New creates a BigInt with an all-zero magnitude of the given length.
func New(length int, sign bool) *BigInt {
	if length <= 0 {
		panic(fmt.Sprintf("bigint: invalid length %d", length))
	}
	return &BigInt{mem: make([]byte, length), sign: sign}
}

// NewFromBytes creates a BigInt by copying a little-endian magnitude.
func NewFromBytes(magnitude []byte, sign bool) *BigInt {
	b := New(len(magnitude), sign)
	copy(b.mem, magnitude)
	return b
}

// Clone returns a new BigInt with the same length, sign and magnitude.
func Clone(src *BigInt) *BigInt {
	return CloneWithExtra(src, 0)
}

// CloneWithExtra returns a new BigInt of length src.Length()+extra, with
// src's sign and magnitude copied into the low-order bytes and the extra
// high-order bytes zeroed.
func CloneWithExtra(src *BigInt, extra int) *BigInt {
	if extra < 0 {
		panic(fmt.Sprintf("bigint: negative extra %d", extra))
	}
	dst := New(src.Length()+extra, src.sign)
	copy(dst.mem, src.mem)
	return dst
}

func (b *BigInt) checkAlive() {
	if b.destroyed {
		panic("bigint: use after destroy")
	}
}

// Length returns the fixed number of magnitude bytes.
func (b *BigInt) Length() int {
	b.checkAlive()
	return len(b.mem)
}

// Sign reports whether the value is (representationally) negative.
// A zero magnitude with sign==true is the distinct "-0" pattern; see
// Equals and IsZero for how the two are reconciled.
func (b *BigInt) Sign() bool {
	b.checkAlive()
	return b.sign
}

// SetSign sets the sign bit directly, leaving the magnitude untouched.
func (b *BigInt) SetSign(s bool) {
	b.checkAlive()
	b.sign = s
}

// Negate flips the sign, leaving the magnitude untouched.
func (b *BigInt) Negate() {
	b.checkAlive()
	b.sign = !b.sign
}

// GetByte returns the byte at index i (0 = least significant).
func (b *BigInt) GetByte(i int) byte {
	b.checkAlive()
	return b.mem[i]
}

// SetByte writes the byte at index i (0 = least significant).
func (b *BigInt) SetByte(i int, v byte) {
	b.checkAlive()
	b.mem[i] = v
}

// GetBit returns bit i (LSB = bit 0) as 0 or 1.
func (b *BigInt) GetBit(i int) uint8 {
	b.checkAlive()
	byteIdx, bitIdx := i/8, uint(i%8)
	return (b.mem[byteIdx] >> bitIdx) & 1
}

// SetBit sets or clears bit i (LSB = bit 0).
func (b *BigInt) SetBit(i int, v uint8) {
	b.checkAlive()
	byteIdx, bitIdx := i/8, uint(i%8)
	if v != 0 {
		b.mem[byteIdx] |= 1 << bitIdx
	} else {
		b.mem[byteIdx] &^= 1 << bitIdx
	}
}

// GetWord7 reads 7 contiguous bytes starting at i, zero-extended into a
// 64-bit word (the 64-bit SIMD lane). Requires i+6 < Length().
func (b *BigInt) GetWord7(i int) uint64 {
	b.checkAlive()
	var w uint64
	for j := 6; j >= 0; j-- {
		w = (w << 8) | uint64(b.mem[i+j])
	}
	return w
}

// SetWord7 writes the low 56 bits of w into 7 contiguous bytes starting at i.
func (b *BigInt) SetWord7(i int, w uint64) {
	b.checkAlive()
	for j := 0; j < 7; j++ {
		b.mem[i+j] = byte(w)
		w >>= 8
	}
}

// GetWord15 reads 15 contiguous bytes starting at i as a 120-bit value,
// returned as (lo, hi) where lo is the low 8 bytes and hi is the high 7
// bytes zero-extended into a uint64 (the 128-bit SIMD lane, minus the 8
// bits Go has no native carrier for). Requires i+14 < Length().
func (b *BigInt) GetWord15(i int) (lo, hi uint64) {
	b.checkAlive()
	for j := 7; j >= 0; j-- {
		lo = (lo << 8) | uint64(b.mem[i+j])
	}
	for j := 14; j >= 8; j-- {
		hi = (hi << 8) | uint64(b.mem[i+j])
	}
	return lo, hi
}

// SetWord15 writes lo into the low 8 bytes and the low 56 bits of hi into
// the high 7 bytes of a 15-byte window starting at i.
func (b *BigInt) SetWord15(i int, lo, hi uint64) {
	b.checkAlive()
	for j := 0; j < 8; j++ {
		b.mem[i+j] = byte(lo)
		lo >>= 8
	}
	for j := 0; j < 7; j++ {
		b.mem[i+8+j] = byte(hi)
		hi >>= 8
	}
}

// MostSignificantBit returns bit 7 of the highest-order byte.
func (b *BigInt) MostSignificantBit() uint8 {
	b.checkAlive()
	return b.mem[len(b.mem)-1] >> 7
}

// SetZero zeroes the magnitude and clears the sign (canonical +0).
func (b *BigInt) SetZero() {
	b.checkAlive()
	for i := range b.mem {
		b.mem[i] = 0
	}
	b.sign = false
}

// IsZero reports whether the magnitude is entirely zero, regardless of sign.
func (b *BigInt) IsZero() bool {
	b.checkAlive()
	for _, v := range b.mem {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsZeroSIMD is semantically identical to IsZero but scans in 15-byte,
// then 7-byte, then 1-byte tiers — mirroring the chunked tiers used by
// package arith, and exercised specifically to prove the two scans always
// agree (SPEC_FULL.md §8).
func (b *BigInt) IsZeroSIMD() bool {
	b.checkAlive()
	n := len(b.mem)
	i := 0
	for ; i+15 <= n; i += 15 {
		lo, hi := b.GetWord15(i)
		if lo != 0 || hi != 0 {
			return false
		}
	}
	for ; i+7 <= n; i += 7 {
		if b.GetWord7(i) != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if b.mem[i] != 0 {
			return false
		}
	}
	return true
}

// Equals reports byte-wise magnitude equality and identical sign, except
// that two zero magnitudes are equal regardless of sign (+0 == -0).
func (b *BigInt) Equals(o *BigInt) bool {
	b.checkAlive()
	o.checkAlive()
	bZero, oZero := b.IsZero(), o.IsZero()
	if bZero && oZero {
		return true
	}
	if b.sign != o.sign {
		return false
	}
	n := len(b.mem)
	if n != len(o.mem) {
		// Different fixed lengths still compare equal if the excess
		// high-order bytes on the longer operand are all zero.
		longer, shorter := b, o
		if len(o.mem) > n {
			longer, shorter = o, b
		}
		for i := len(shorter.mem); i < len(longer.mem); i++ {
			if longer.mem[i] != 0 {
				return false
			}
		}
		for i := 0; i < len(shorter.mem); i++ {
			if longer.mem[i] != shorter.mem[i] {
				return false
			}
		}
		return true
	}
	for i := 0; i < n; i++ {
		if b.mem[i] != o.mem[i] {
			return false
		}
	}
	return true
}

// CopyInto clears dst, copies sign, and copies min(src.Length(), dst.Length())
// magnitude bytes from src. If dst is shorter than src, the excess
// high-order magnitude of src is silently truncated — the caller is
// responsible for sizing dst correctly (SPEC_FULL.md §3.3).
func (b *BigInt) CopyInto(dst *BigInt) {
	b.checkAlive()
	dst.SetZero()
	dst.sign = b.sign
	n := len(b.mem)
	if len(dst.mem) < n {
		n = len(dst.mem)
	}
	copy(dst.mem[:n], b.mem[:n])
}

// Destroyed reports whether Destroy has already been called. Exposed for
// tests exercising the double-destroy fatal path without depending on
// panic/recover interleaving elsewhere.
func (b *BigInt) Destroyed() bool {
	return b.destroyed
}

// Destroy releases the magnitude buffer. Calling Destroy twice is a fatal
// precondition violation (SPEC_FULL.md §3.1).
func (b *BigInt) Destroy() {
	if b.destroyed {
		panic("bigint: double destroy")
	}
	b.destroyed = true
	b.mem = nil
}
