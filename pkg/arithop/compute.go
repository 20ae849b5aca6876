// Package arithop implements ArithOp, the top-level entry point that
// normalizes signs, sizes the transient BigInt buffers, dispatches to
// BigIntArithmetic, and projects the result back through RadixCodec.
// Its single exported operation, Compute, mirrors spec.md §6's
// compute(base, alph, z1, z2, op, result, use_simd) signature, adapted
// to Go idiom: errors from the validation layer never reach this
// package (SPEC_FULL.md §7), so Compute's only failure modes are the
// documented fatal preconditions (invalid op, division by zero inside
// the negative-base projector).
package arithop

import (
	"fmt"
	"math/bits"

	"github.com/oisee/bigradix/internal/logger"
	"github.com/oisee/bigradix/pkg/arith"
	"github.com/oisee/bigradix/pkg/bigint"
	"github.com/oisee/bigradix/pkg/radix"
)

// bitsPerDigit returns ceil(log2(|base|)), the bit width of one digit's
// positional weight, per §3.3's sizing formula.
func bitsPerDigit(absBase int) int {
	return bits.Len(uint(absBase - 1))
}

// sizeFor returns the magnitude byte count needed to hold a value with
// n digits in a radix whose absolute value is absBase: ceil(n *
// bitsPerDigit / 8) + 1.
func sizeFor(n, absBase int) int {
	bpd := bitsPerDigit(absBase)
	return (n*bpd+7)/8 + 1
}

// ResultWidth returns the §3.3 result-buffer digit-count sizing for
// op applied to operands of z1Digits and z2Digits length in the given
// base, so CLI/harness callers never have to re-derive the formula.
func ResultWidth(base, z1Digits, z2Digits int, op byte) int {
	m := z1Digits
	if z2Digits > m {
		m = z2Digits
	}
	switch op {
	case '+':
		w := m + 2
		if base < 0 {
			w++
		}
		return w
	case '-':
		return m + 3
	case '*':
		return m*2 + 1
	default:
		panic(fmt.Sprintf("arithop: unknown op %q", op))
	}
}

// Compute runs the full parse -> arithmetic -> project pipeline.
// Preconditions (validated by the caller, per internal/validate):
// |base| >= 2; len(alph) == |base|; alph has no duplicates and no '-'
// when base > 0; every character of z1/z2 (after an optional leading
// '-' when base > 0) is in alph. Compute sizes its own BigInts and
// returns the result digit string; it takes no result buffer and does
// not call ResultWidth. lg receives radix.ToBasePos's digit-cell
// overflow warnings; pass nil for a silent NopLogger.
func Compute(base int, alph *radix.Alphabet, z1, z2 string, op byte, useSIMD bool, lg logger.Logger) string {
	if lg == nil {
		lg = logger.NopLogger{}
	}
	if op != '+' && op != '-' && op != '*' {
		panic(fmt.Sprintf("arithop: invalid op %q", op))
	}

	absBase := base
	if absBase < 0 {
		absBase = -absBase
	}

	z1Digits, z1Neg := stripSign(base, z1)
	z2Digits, z2Neg := stripSign(base, z2)

	z1Size := sizeFor(len(z1Digits), absBase)
	z2Size := sizeFor(len(z2Digits), absBase)

	var z1Bin, z2Bin *bigint.BigInt
	switch op {
	case '+', '-':
		width := maxInt(z1Size, z2Size) + 1
		z1Bin = bigint.New(width, false)
		z2Bin = bigint.New(width, false)
	case '*':
		z1Bin = bigint.New(z1Size, false)
		z2Bin = bigint.New(z2Size, false)
	}

	radix.ParseInto(z1Bin, base, alph, z1Digits)
	radix.ParseInto(z2Bin, base, alph, z2Digits)
	if z1Neg {
		z1Bin.SetSign(true)
	}
	if z2Neg {
		z2Bin.SetSign(true)
	}

	var res *bigint.BigInt
	switch op {
	case '+':
		arith.Add(z1Bin, z2Bin, useSIMD)
		res = z1Bin
	case '-':
		arith.Sub(z1Bin, z2Bin, useSIMD)
		res = z1Bin
	case '*':
		res = bigint.New(z1Bin.Length()+z2Bin.Length(), false)
		arith.Mul(z1Bin, z2Bin, res)
	}

	if res.IsZero() {
		res.SetSign(false)
	}

	if base > 0 {
		return radix.ToBasePos(res, base, alph, lg)
	}
	return radix.ToBaseNeg(res, base, alph)
}

func stripSign(base int, s string) (string, bool) {
	if base > 0 && len(s) > 0 && s[0] == '-' {
		return s[1:], true
	}
	return s, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
