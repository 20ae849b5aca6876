package radix

import (
	"fmt"

	"github.com/oisee/bigradix/internal/logger"
	"github.com/oisee/bigradix/pkg/arith"
	"github.com/oisee/bigradix/pkg/bigint"
)

// ParseInto accumulates digits (most significant character first, no
// sign prefix — the caller strips and applies any leading '-' itself,
// per SPEC_FULL.md §4.3.1) into dst via Horner-style positional
// accumulation: dst = sum(digitValue(digits[k]) * base^(n-1-k)).
//
// The running weight accumulator carries sign for negative bases —
// weight = base^i alternates sign every position, and mul_u8 clears
// operand sign per its own contract (§4.2.6), so this implementation
// explicitly re-applies weight's sign to each product before adding it
// with the signed Add, the resolved ambiguity documented in
// SPEC_FULL.md §4 and DESIGN.md.
func ParseInto(dst *bigint.BigInt, base int, alph *Alphabet, digits string) {
	dst.SetZero()
	n := len(digits)
	if n == 0 {
		return
	}
	length := dst.Length()
	scratch := length + 2 // headroom for mul_u8's "1 extra byte" requirement

	weight := bigint.New(scratch, false)
	weight.SetByte(0, 1)
	weightNext := bigint.New(scratch, false)
	weightTmp := bigint.New(scratch, false)

	prod := bigint.New(scratch, false)
	prodTmp := bigint.New(scratch, false)

	for i := 0; i < n; i++ {
		c := digits[n-1-i]
		d := alph.DigitValue(c)
		arith.MulU8(weight, d, prod, prodTmp)
		prod.SetSign(weight.Sign())
		prodSized := bigint.New(length, false)
		prod.CopyInto(prodSized)
		arith.Add(dst, prodSized, true)

		if i != n-1 {
			arith.MulSmall(weight, base, weightNext, weightTmp)
			weight, weightNext = weightNext, weight
		}
	}
}

// ToBasePos projects value (assumed non-negative base) to a digit
// string in alph's base using a byte-per-digit generalization of
// Double-Dabble. logger receives a Warn if the digit cell buffer would
// overflow (a sizing bug per §7); the value is still produced, just
// truncated, matching the spec's silent-truncation contract.
func ToBasePos(value *bigint.BigInt, base int, alph *Alphabet, lg logger.Logger) string {
	if lg == nil {
		lg = logger.NopLogger{}
	}
	if value.IsZero() {
		return string(alph.Char(0))
	}

	trigger := byte(base)
	carryAdd := byte(256 - base)

	cellCount := estimateDigitCells(value.Length(), base)
	cb := make([]byte, cellCount)

	src := bigint.Clone(value)
	src.SetSign(false)

	totalBits := value.Length() * 8
	for bitPos := 0; bitPos < totalBits; bitPos++ {
		shiftCellsLeftOneBit(cb)
		msb := src.MostSignificantBit()
		if msb != 0 {
			cb[0] |= 1
		}
		arith.ShlBits(src, 1)

		for j := 0; j < len(cb); j++ {
			if cb[j] >= trigger {
				cb[j] += carryAdd
				if j+1 < len(cb) {
					cb[j+1]++
				} else {
					lg.Warn("radix: digit cell overflow during to_base_pos",
						logger.F("base", base), logger.F("bit", bitPos))
				}
			}
		}
	}

	top := len(cb) - 1
	for top > 0 && cb[top] == 0 {
		top--
	}

	out := make([]byte, 0, top+2)
	if value.Sign() {
		out = append(out, '-')
	}
	for j := top; j >= 0; j-- {
		out = append(out, alph.Char(cb[j]))
	}
	return string(out)
}

// shiftCellsLeftOneBit shifts a parallel array of digit cells left by
// one bit, carrying the high bit of cell j into the low bit of cell
// j+1 — the Double-Dabble "shift the whole register" step, generalized
// to one byte (not one nibble) per digit cell.
func shiftCellsLeftOneBit(cb []byte) {
	carry := byte(0)
	for j := 0; j < len(cb); j++ {
		next := cb[j] >> 7
		cb[j] = (cb[j] << 1) | carry
		carry = next
	}
}

// estimateDigitCells sizes the Double-Dabble digit-cell buffer as
// bits / ceil(log2(base)) cells plus two for carry propagation. For a
// base that is not a power of two this can be fewer cells than a value
// using every bit of the buffer needs; ToBasePos then logs the overflow
// and drops the carry.
func estimateDigitCells(byteLen, base int) int {
	bits := byteLen * 8
	bitsPerDigit := 1
	for (1 << bitsPerDigit) < base {
		bitsPerDigit++
	}
	cells := bits/bitsPerDigit + 2
	if cells < 2 {
		cells = 2
	}
	return cells
}

// ToBaseNeg projects value to a digit string in a negative base via
// repeated Euclidean division, correcting negative remainders with the
// Incr branch per SPEC_FULL.md §4.3.3.
func ToBaseNeg(value *bigint.BigInt, base int, alph *Alphabet) string {
	if base >= 0 {
		panic(fmt.Sprintf("radix: ToBaseNeg requires a negative base, got %d", base))
	}
	if value.IsZero() {
		return string(alph.Char(0))
	}

	length := value.Length()
	work := bigint.Clone(value)
	tmp1 := bigint.New(length, false)
	tmp2 := bigint.New(length, false)

	var digits []byte
	for !work.IsZero() {
		r := arith.DivSmall(work, base, tmp1, tmp2)
		if r < 0 {
			r += -base
			arith.Incr(work)
		}
		digits = append(digits, alph.Char(uint8(r)))
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
