// Package naive implements the digit-wise reference oracle named in
// spec.md §1 and detailed in SPEC_FULL.md's naive-oracle expansion: a
// second, independent core that computes entirely in radix b using
// plain digit-array arithmetic, never lifting to a binary byte buffer.
// Its only job is to agree with pkg/arithop's binary-conversion core
// (SPEC_FULL.md §8); it shares no code with pkg/bigint/pkg/arith/
// pkg/radix, by design — sharing code would defeat its purpose as an
// independent cross-check.
//
// Values are represented here as (sign bool, mag []int), where mag
// holds digits in [0, |base|) with the most significant digit first —
// the direct digit-array analogue of pkg/bigint's sign-magnitude
// convention, just in radix |base| instead of radix 256.
package naive

import "fmt"

type value struct {
	sign bool
	mag  []int // most-significant digit first, always trimmed, [0] alone means zero
}

func zero() value { return value{mag: []int{0}} }

func isZero(v value) bool { return len(v.mag) == 1 && v.mag[0] == 0 }

func trim(mag []int) []int {
	i := 0
	for i < len(mag)-1 && mag[i] == 0 {
		i++
	}
	return mag[i:]
}

// magCompare returns -1, 0, 1 for a<b, a==b, a>b as digit-array magnitudes.
func magCompare(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magAdd adds two non-negative digit-array magnitudes in the given
// absBase, carrying right to left.
func magAdd(a, b []int, absBase int) []int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int, n+1)
	ai, bi := len(a)-1, len(b)-1
	carry := 0
	for i := n; i >= 1; i-- {
		av, bv := 0, 0
		if ai >= 0 {
			av = a[ai]
			ai--
		}
		if bi >= 0 {
			bv = b[bi]
			bi--
		}
		s := av + bv + carry
		out[i] = s % absBase
		carry = s / absBase
	}
	out[0] = carry
	return trim(out)
}

// magSub computes a-b assuming a>=b, borrowing right to left.
func magSub(a, b []int, absBase int) []int {
	out := make([]int, len(a))
	ai, bi := len(a)-1, len(b)-1
	borrow := 0
	for i := len(a) - 1; i >= 0; i-- {
		av := a[ai]
		bv := 0
		if bi >= 0 {
			bv = b[bi]
			bi--
		}
		ai--
		d := av - bv - borrow
		if d < 0 {
			d += absBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = d
	}
	return trim(out)
}

// magMulSmall multiplies a digit-array magnitude by a small non-negative
// int m (m may exceed absBase, e.g. when re-scaling a Horner weight by
// |base|), carrying right to left.
func magMulSmall(a []int, m, absBase int) []int {
	if m == 0 {
		return []int{0}
	}
	out := make([]int, len(a)+2)
	carry := 0
	for i := len(a) - 1; i >= 0; i-- {
		p := a[i]*m + carry
		out[i+2] = p % absBase
		carry = p / absBase
	}
	idx := 1
	for carry > 0 {
		out[idx] += carry % absBase
		carry /= absBase
		idx--
	}
	return trim(out)
}

// magMul computes the full schoolbook product of two magnitudes.
func magMul(a, b []int, absBase int) []int {
	acc := []int{0}
	for i, bv := range b {
		if bv == 0 {
			continue
		}
		partial := magMulSmall(a, bv, absBase)
		shift := len(b) - 1 - i
		partial = append(partial, make([]int, shift)...)
		acc = magAdd(acc, partial, absBase)
	}
	return acc
}

// magAddOne / magSubOne adjust a magnitude by 1, used by the negative-
// base projector's Incr-equivalent correction step.
func magAddOne(a []int, absBase int) []int {
	return magAdd(a, []int{1}, absBase)
}

func magSubOne(a []int, absBase int) []int {
	out := append([]int(nil), a...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] > 0 {
			out[i]--
			break
		}
		out[i] = absBase - 1 // zero becomes absBase-1; borrow propagates left
	}
	return trim(out)
}

func signedAdd(a, b value, absBase int) value {
	if a.sign == b.sign {
		mag := magAdd(a.mag, b.mag, absBase)
		return value{sign: a.sign && !isZeroMag(mag), mag: mag}
	}
	cmp := magCompare(a.mag, b.mag)
	switch {
	case cmp == 0:
		return zero()
	case cmp > 0:
		return value{sign: a.sign, mag: magSub(a.mag, b.mag, absBase)}
	default:
		return value{sign: b.sign, mag: magSub(b.mag, a.mag, absBase)}
	}
}

func isZeroMag(mag []int) bool { return len(mag) == 1 && mag[0] == 0 }

func negated(v value) value {
	if isZero(v) {
		return v
	}
	return value{sign: !v.sign, mag: v.mag}
}

func signedMul(a, b value, absBase int) value {
	mag := magMul(a.mag, b.mag, absBase)
	if isZeroMag(mag) {
		return zero()
	}
	return value{sign: a.sign != b.sign, mag: mag}
}

// parseSigned runs Horner accumulation over digits (most significant
// character first, no sign prefix) using a running weight that carries
// sign for negative bases, mirroring pkg/radix.ParseInto's resolved
// ambiguity (SPEC_FULL.md §4) in digit-array form instead of binary.
func parseSigned(alph *alphabetAdapter, base, absBase int, digits string) value {
	n := len(digits)
	if n == 0 {
		return zero()
	}
	total := zero()
	weight := value{sign: false, mag: []int{1}}
	for i := 0; i < n; i++ {
		c := digits[n-1-i]
		d := int(alph.digitValue(c))
		var term value
		if d == 0 {
			term = zero()
		} else {
			term = value{sign: weight.sign, mag: magMulSmall(weight.mag, d, absBase)}
		}
		total = signedAdd(total, term, absBase)
		if i != n-1 {
			newMag := magMulSmall(weight.mag, absBase, absBase)
			weight = value{sign: weight.sign != (base < 0), mag: newMag}
		}
	}
	return total
}

// divByAbsBase divides v (signed) by absBase, exploiting that v's
// magnitude is already represented in absBase digits: the quotient is
// simply v with its last digit dropped, and the remainder is that last
// digit — the digit-array analogue of pkg/arith.DivSmall when the
// divisor equals the representation's own base.
func divByAbsBase(v value, absBase int) (quotient value, remainder int) {
	last := v.mag[len(v.mag)-1]
	qMag := trim(append([]int(nil), v.mag[:len(v.mag)-1]...))
	if len(v.mag) == 1 {
		qMag = []int{0}
	}
	q := value{sign: v.sign, mag: qMag}
	if isZeroMag(qMag) {
		q.sign = false
	}
	return q, last
}

// toNegBaseDigits re-expresses a signed value with no sign prefix in a
// negative base via repeated Euclidean division, mirroring
// pkg/radix.ToBaseNeg's Incr-branch correction.
func toNegBaseDigits(v value, base, absBase int) []int {
	if isZero(v) {
		return []int{0}
	}
	var digits []int
	for !isZero(v) {
		q, last := divByAbsBase(v, absBase)
		// v's sign flips relative to q because base is negative: the
		// quotient's sign is origSign XOR (base<0); divByAbsBase already
		// preserved v's original sign onto q, so flip it here.
		qSign := v.sign != (base < 0)
		r := last
		if v.sign {
			r = -r
		}
		if r < 0 {
			r += absBase
			if qSign {
				q.mag = magSubOne(q.mag, absBase)
			} else {
				q.mag = magAddOne(q.mag, absBase)
			}
			if isZeroMag(q.mag) {
				qSign = false
			}
		}
		q.sign = qSign
		digits = append(digits, r)
		v = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

type alphabetAdapter struct {
	digitValue func(byte) uint8
	char       func(uint8) byte
}

// Alphabet is the minimal digit-lookup surface naive needs, satisfied
// by *radix.Alphabet without importing pkg/radix directly — keeping
// this oracle decoupled from the binary core's package graph.
type Alphabet interface {
	DigitValue(byte) uint8
	Char(uint8) byte
}

func adapt(a Alphabet) *alphabetAdapter {
	return &alphabetAdapter{digitValue: a.DigitValue, char: a.Char}
}

func stripSign(base int, s string) (string, bool) {
	if base > 0 && len(s) > 0 && s[0] == '-' {
		return s[1:], true
	}
	return s, false
}

// Compute runs (base, alph, z1, z2, op) through schoolbook digit-array
// arithmetic and returns the resulting digit string, for comparison
// against pkg/arithop.Compute's output.
func Compute(base int, alph Alphabet, z1, z2 string, op byte) string {
	absBase := base
	if absBase < 0 {
		absBase = -absBase
	}
	aa := adapt(alph)

	z1Digits, z1Neg := stripSign(base, z1)
	z2Digits, z2Neg := stripSign(base, z2)

	a := parseSigned(aa, base, absBase, z1Digits)
	if z1Neg {
		a = negated(a)
	}
	b := parseSigned(aa, base, absBase, z2Digits)
	if z2Neg {
		b = negated(b)
	}

	var result value
	switch op {
	case '+':
		result = signedAdd(a, b, absBase)
	case '-':
		result = signedAdd(a, negated(b), absBase)
	case '*':
		result = signedMul(a, b, absBase)
	default:
		panic(fmt.Sprintf("naive: invalid op %q", op))
	}

	if isZero(result) {
		result.sign = false
	}

	var digits []int
	if base > 0 {
		digits = result.mag
	} else {
		digits = toNegBaseDigits(result, base, absBase)
	}

	out := make([]byte, 0, len(digits)+1)
	if base > 0 && result.sign {
		out = append(out, '-')
	}
	for _, d := range digits {
		out = append(out, aa.char(uint8(d)))
	}
	return string(out)
}
