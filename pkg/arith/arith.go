// Package arith implements BigIntArithmetic: in-place addition,
// subtraction, shifts, multiplication and division on pkg/bigint values.
//
// Every primitive has a sequential reference form; most also have a
// chunked SIMD-tier form (15 bytes, then 7 bytes, then 1 byte at a time)
// built on math/bits.Add64/Sub64 the way the teacher's Z80 core builds
// carry/overflow flags from a widened intermediate and a lookup table —
// here the "table" collapses to a single hardware-style carry-out bit
// because bigint arithmetic has no flag register to reconcile.
package arith

import (
	"fmt"
	"math/bits"

	"github.com/oisee/bigradix/pkg/bigint"
)

// Add computes a += b in place, following the sign-normalization rules:
// same sign -> magnitude add; mixed signs -> reduce to a subtraction.
// useSIMD selects the chunked 15-byte/7-byte/1-byte tiered path over the
// plain byte-at-a-time sequential path; both must be bit-identical
// (SPEC_FULL.md §8, carried from spec.md's use_simd contract).
func Add(a, b *bigint.BigInt, useSIMD bool) {
	if a.Sign() == b.Sign() {
		addMagnitude(a, b, useSIMD)
		return
	}
	if a.Sign() && !b.Sign() {
		// a := -(|a| - b)
		a.Negate()
		Sub(a, b, useSIMD)
		a.Negate()
		return
	}
	// a>=0, b<0: a := a - |b|
	b.Negate()
	Sub(a, b, useSIMD)
	b.Negate()
}

// Sub computes a -= b in place per the sign-normalization casework.
func Sub(a, b *bigint.BigInt, useSIMD bool) {
	switch {
	case !a.Sign() && b.Sign():
		// a - (-|b|) == a + |b|
		b.Negate()
		Add(a, b, useSIMD)
		b.Negate()
	case a.Sign() && !b.Sign():
		// -|a| - b == -(|a| + b)
		a.Negate()
		Add(a, b, useSIMD)
		a.Negate()
	case a.Sign() && b.Sign():
		// -|a| - (-|b|) == |b| - |a|; the larger magnitude is the
		// minuend, and the result is negative exactly when |a| > |b|.
		aMag := bigint.Clone(a)
		aMag.SetSign(false)
		bMag := bigint.Clone(b)
		bMag.SetSign(false)
		if AbsGt(aMag, bMag) {
			subMagnitude(aMag, bMag, useSIMD)
			aMag.SetSign(true)
			aMag.CopyInto(a)
		} else {
			subMagnitude(bMag, aMag, useSIMD)
			bMag.SetSign(false)
			bMag.CopyInto(a)
		}
	default: // a>=0, b>=0
		if AbsGt(b, a) {
			aMag := bigint.Clone(a)
			b.CopyInto(a)
			subMagnitude(a, aMag, useSIMD)
			a.Negate()
		} else {
			subMagnitude(a, b, useSIMD)
		}
	}
}

// subMagnitude computes a := |a| - |b| assuming |a| >= |b|, ignoring sign,
// dispatching to the chunked or plain byte-at-a-time form.
func subMagnitude(a, b *bigint.BigInt, useSIMD bool) {
	if useSIMD {
		subMagnitudeSIMD(a, b)
		return
	}
	subMagnitudeSeq(a, b)
}

// subMagnitudeSIMD is the 15-byte/7-byte/1-byte tiered subtraction path,
// built on math/bits.Sub64 the way the teacher computes carry/borrow from
// a widened intermediate rather than a manual compare-and-branch.
func subMagnitudeSIMD(a, b *bigint.BigInt) {
	n := a.Length()
	i := 0
	borrow := uint64(0)
	for ; i+15 <= n && i+14 < b.Length(); i += 15 {
		aLo, aHi := a.GetWord15(i)
		bLo, bHi := b.GetWord15(i)
		rLo, borLo := bits.Sub64(aLo, bLo, borrow)
		rHi, borHi := bits.Sub64(aHi, bHi, borLo)
		a.SetWord15(i, rLo, rHi&0x00FFFFFFFFFFFFFF)
		borrow = borHi
	}
	for ; i+7 <= n && i+6 < b.Length(); i += 7 {
		aw := a.GetWord7(i)
		bw := b.GetWord7(i)
		r, bor := bits.Sub64(aw, bw, borrow)
		a.SetWord7(i, r&0x00FFFFFFFFFFFFFF)
		borrow = bor
	}
	for ; i < n; i++ {
		var bv byte
		if i < b.Length() {
			bv = b.GetByte(i)
		}
		r, bor := bits.Sub64(uint64(a.GetByte(i)), uint64(bv), borrow)
		a.SetByte(i, byte(r))
		borrow = bor
	}
	// borrow != 0 here means |a| < |b|: a sizing bug per the caller's contract.
}

// subMagnitudeSeq is the plain byte-at-a-time reference path, exercised
// against subMagnitudeSIMD by pkg/diffcheck.SIMDAgrees.
func subMagnitudeSeq(a, b *bigint.BigInt) {
	n := a.Length()
	borrow := uint16(0)
	for i := 0; i < n; i++ {
		var bv byte
		if i < b.Length() {
			bv = b.GetByte(i)
		}
		diff := uint16(a.GetByte(i)) - uint16(bv) - borrow
		a.SetByte(i, byte(diff))
		if diff&0xFF00 != 0 {
			borrow = 1
		} else {
			borrow = 0
		}
	}
}

func addMagnitude(a, b *bigint.BigInt, useSIMD bool) {
	if useSIMD {
		addMagnitudeSIMD(a, b)
		return
	}
	addMagnitudeSeq(a, b)
}

// addMagnitudeSIMD processes 15-byte, then 7-byte, then 1-byte tiers
// using math/bits.Add64 as the idiomatic Go substitute for the manual
// unsigned-comparison carry trick the spec describes.
func addMagnitudeSIMD(a, b *bigint.BigInt) {
	n := a.Length()
	i := 0
	carry := uint64(0)
	for ; i+15 <= n && i+14 < b.Length(); i += 15 {
		aLo, aHi := a.GetWord15(i)
		bLo, bHi := b.GetWord15(i)
		rLo, carLo := bits.Add64(aLo, bLo, carry)
		rHi, carHi := bits.Add64(aHi, bHi, carLo)
		a.SetWord15(i, rLo, rHi&0x00FFFFFFFFFFFFFF)
		carry = carHi
		if rHi&0x0100000000000000 != 0 {
			carry = 1
		}
	}
	for ; i+7 <= n && i+6 < b.Length(); i += 7 {
		aw := a.GetWord7(i)
		bw := b.GetWord7(i)
		r, _ := bits.Add64(aw, bw, carry)
		a.SetWord7(i, r&0x00FFFFFFFFFFFFFF)
		carry = (r >> 56) & 1
	}
	for ; i < n; i++ {
		var bv byte
		if i < b.Length() {
			bv = b.GetByte(i)
		}
		r, _ := bits.Add64(uint64(a.GetByte(i)), uint64(bv), carry)
		a.SetByte(i, byte(r))
		carry = r >> 8
	}
	// carry != 0 here is an overflow past the highest byte: a sizing bug
	// per §3.3/§7. It is neither raised nor logged; the carry is dropped.
}

// addMagnitudeSeq is the plain byte-at-a-time reference path.
func addMagnitudeSeq(a, b *bigint.BigInt) {
	n := a.Length()
	carry := uint16(0)
	for i := 0; i < n; i++ {
		var bv byte
		if i < b.Length() {
			bv = b.GetByte(i)
		}
		sum := uint16(a.GetByte(i)) + uint16(bv) + carry
		a.SetByte(i, byte(sum))
		carry = sum >> 8
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Incr implements incr(a): if a>=0, add 1 with carry; if a<0, subtract 1
// from the magnitude (precondition: magnitude >= 1). Used only by the
// negative-base projector (pkg/radix.ToBaseNeg).
func Incr(a *bigint.BigInt) {
	if !a.Sign() {
		one := bigint.New(a.Length(), false)
		one.SetByte(0, 1)
		addMagnitude(a, one, true)
		return
	}
	n := a.Length()
	borrow := uint8(1)
	for i := 0; i < n && borrow != 0; i++ {
		v := a.GetByte(i)
		if v == 0 {
			a.SetByte(i, 0xFF)
		} else {
			a.SetByte(i, v-1)
			borrow = 0
		}
	}
}

// ShlBits shifts a left in place by k bits, k in [0,7]. Bits shifted past
// the highest byte are lost.
func ShlBits(a *bigint.BigInt, k uint) {
	if k == 0 {
		return
	}
	if k > 7 {
		panic(fmt.Sprintf("arith: ShlBits k=%d out of range [0,7]", k))
	}
	n := a.Length()
	i := 0
	carry := uint64(0)
	for ; i+7 <= n; i += 7 {
		w := a.GetWord7(i)
		shifted := (w << k) | carry
		a.SetWord7(i, shifted&0x00FFFFFFFFFFFFFF)
		carry = shifted >> 56
	}
	for ; i < n; i++ {
		v := a.GetByte(i)
		out := (uint16(v) << k) | uint16(carry)
		a.SetByte(i, byte(out))
		carry = uint64(out >> 8)
	}
}

// ShlBytes shifts a left in place by k whole bytes (memmove semantics).
// Bytes shifted off the top are lost.
func ShlBytes(a *bigint.BigInt, k int) {
	if k == 0 {
		return
	}
	n := a.Length()
	for i := n - k - 1; i >= 0; i-- {
		a.SetByte(i+k, a.GetByte(i))
	}
	for i := 0; i < k && i < n; i++ {
		a.SetByte(i, 0)
	}
}

// MulU8 computes dst := a * m via deferred shift-and-add peasant
// multiplication. tmp must have at least 1 byte of headroom above a's
// magnitude. Signs of a and dst are ignored/cleared.
//
// tmp tracks a*2^k for the highest bit position k already folded into
// dst; pending counts how many positions tmp still needs to catch up
// before it matches the bit currently being tested. tmp starts at
// a*2^0, so the first set bit adds it unshifted.
func MulU8(a *bigint.BigInt, m uint8, dst, tmp *bigint.BigInt) {
	dst.SetZero()
	a.CopyInto(tmp)
	tmp.SetSign(false)
	pending := 0
	for i := 0; i < 8; i++ {
		if m&(1<<uint(i)) != 0 {
			shiftBy(tmp, pending)
			addMagnitude(dst, tmp, true)
			pending = 1
		} else {
			pending++
		}
	}
}

// shiftBy applies a left shift of n bits (n may exceed 7) by decomposing
// it into whole-byte shifts plus a final sub-byte shift.
func shiftBy(a *bigint.BigInt, n int) {
	if n >= 8 {
		ShlBytes(a, n/8)
		n %= 8
	}
	if n > 0 {
		ShlBits(a, uint(n))
	}
}

// MulSmall computes dst := a * m for m in the signed range [-256, 256],
// via MulU8(a, |m|, ...) followed by sign assignment.
func MulSmall(a *bigint.BigInt, m int, dst, tmp *bigint.BigInt) {
	if m < -256 || m > 256 {
		panic(fmt.Sprintf("arith: MulSmall m=%d out of range [-256,256]", m))
	}
	absM := m
	if absM < 0 {
		absM = -absM
	}
	if absM == 256 {
		// mul_u8 only takes a byte; 256 = 1<<8, handled as a whole-byte shift.
		a.CopyInto(tmp)
		tmp.SetSign(false)
		ShlBytes(tmp, 1)
		dst.SetZero()
		addMagnitude(dst, tmp, true)
	} else {
		MulU8(a, uint8(absM), dst, tmp)
	}
	if a.IsZero() {
		dst.SetSign(false)
		return
	}
	dst.SetSign(a.Sign() != (m < 0))
}

// Mul computes res := a * b via schoolbook multiplication: for each byte
// of b, multiply a by that byte, shift into position, and accumulate.
// Caller sizes res >= a.Length() + b.Length().
func Mul(a, b, res *bigint.BigInt) {
	res.SetZero()
	pp := bigint.New(res.Length(), false)
	tmp := bigint.New(res.Length(), false)
	for i := 0; i < b.Length(); i++ {
		bi := b.GetByte(i)
		if bi == 0 {
			continue
		}
		MulU8(a, bi, pp, tmp)
		ShlBytes(pp, i)
		addMagnitude(res, pp, true)
	}
	res.SetSign(a.Sign() != b.Sign())
	if res.IsZero() {
		res.SetSign(false)
	}
}

// DivSmall computes a := a / d (quotient in place) and returns the
// remainder, via restoring binary long division. d is a signed divisor
// with |d| <= 256 and d != 0; division by zero is fatal. tmp1 and tmp2
// are scratch BigInts at least as long as a, owned by the caller.
func DivSmall(a *bigint.BigInt, d int, tmp1, tmp2 *bigint.BigInt) int {
	if d == 0 {
		panic("arith: division by zero")
	}
	if d < -256 || d > 256 {
		panic(fmt.Sprintf("arith: DivSmall d=%d out of range [-256,256]", d))
	}
	absD := d
	if absD < 0 {
		absD = -absD
	}
	origSign := a.Sign()

	quotient := tmp1
	quotient.SetZero()
	remainder := tmp2
	remainder.SetZero()

	n := a.Length()
	for bitIdx := n*8 - 1; bitIdx >= 0; bitIdx-- {
		shlRemainder1(remainder)
		bit := a.GetBit(bitIdx)
		if bit != 0 {
			remainder.SetByte(0, remainder.GetByte(0)|1)
		}
		if geSmallUnsigned(remainder, absD) {
			subSmallUnsigned(remainder, absD)
			quotient.SetBit(bitIdx, 1)
		}
	}

	quotient.CopyInto(a)
	a.SetSign(origSign != (d < 0))

	rem := int(remainder.GetByte(0))
	if origSign {
		rem = -rem
	}
	return rem
}

// shlRemainder1 shifts a small remainder buffer left by one bit, losing
// any overflow past its top byte (the remainder never exceeds |d|-1 <
// 256 before the shift, so it fits in one byte plus a guard byte).
func shlRemainder1(r *bigint.BigInt) {
	carry := uint8(0)
	for i := 0; i < r.Length(); i++ {
		v := r.GetByte(i)
		next := v >> 7
		r.SetByte(i, (v<<1)|carry)
		carry = next
	}
}

// geSmallUnsigned reports whether the unsigned magnitude of r is >= d
// (0 <= d <= 256), used only inside DivSmall's restoring loop.
func geSmallUnsigned(r *bigint.BigInt, d int) bool {
	for i := r.Length() - 1; i >= 1; i-- {
		if r.GetByte(i) != 0 {
			return true
		}
	}
	return int(r.GetByte(0)) >= d
}

// subSmallUnsigned computes r -= d in place (0 <= d <= 256), used only
// inside DivSmall's restoring loop where r >= d is already established.
func subSmallUnsigned(r *bigint.BigInt, d int) {
	borrow := d
	for i := 0; i < r.Length() && borrow != 0; i++ {
		v := int(r.GetByte(i))
		v -= borrow
		if v < 0 {
			v += 256
			borrow = 1
		} else {
			borrow = 0
		}
		r.SetByte(i, byte(v))
	}
}

// AbsGt reports whether |a| > |b|, scanning from the high byte downward
// and treating missing high bytes as zero. Precondition: both signs
// positive (the caller normalizes signs before calling this).
func AbsGt(a, b *bigint.BigInt) bool {
	if a.Sign() || b.Sign() {
		panic("arith: AbsGt requires non-negative operands")
	}
	n := maxInt(a.Length(), b.Length())
	for i := n - 1; i >= 0; i-- {
		var av, bv byte
		if i < a.Length() {
			av = a.GetByte(i)
		}
		if i < b.Length() {
			bv = b.GetByte(i)
		}
		if av != bv {
			return av > bv
		}
	}
	return false
}

// GeSmall reports a >= bSmall for bSmall in [-256, 256].
func GeSmall(a *bigint.BigInt, bSmall int) bool {
	if bSmall < -256 || bSmall > 256 {
		panic(fmt.Sprintf("arith: GeSmall b=%d out of range [-256,256]", bSmall))
	}
	aIsZero := a.IsZero()
	if aIsZero {
		return bSmall <= 0
	}
	if !a.Sign() && bSmall <= 0 {
		return true
	}
	if a.Sign() && bSmall > 0 {
		return false
	}
	if a.Sign() && bSmall <= 0 {
		// both negative (or bSmall zero): a >= bSmall iff |a| <= |bSmall|
		absB := -bSmall
		if !highBytesZero(a, 2) {
			return false
		}
		mag := int(a.GetByte(0))
		if a.Length() > 1 {
			mag += int(a.GetByte(1)) << 8
		}
		return mag <= absB
	}
	// both non-negative: a >= bSmall iff |a| >= bSmall
	if !highBytesZero(a, 1) {
		return true
	}
	return int(a.GetByte(0)) >= bSmall
}

func highBytesZero(a *bigint.BigInt, from int) bool {
	for i := from; i < a.Length(); i++ {
		if a.GetByte(i) != 0 {
			return false
		}
	}
	return true
}
