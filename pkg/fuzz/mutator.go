// Package fuzz is the teacher's pkg/stoke retargeted from "find a
// shorter equivalent instruction sequence" to "find an input pair that
// makes the binary core and the naive core disagree, or makes the SIMD
// and sequential paths disagree". The MCMC machinery (Mutator, Chain,
// simulated annealing) is kept verbatim in shape; only what gets
// mutated (digit strings instead of instruction sequences) and what
// counts as "interesting" (a boundary-crossing operand instead of a
// shorter byte count) changed.
package fuzz

import "math/rand/v2"

// Trial is a candidate input for one of the two agreement checks named
// in spec.md §8.
type Trial struct {
	Base   int
	Alph   string
	Z1, Z2 string
	Op     byte
}

// Mutator applies random mutations to a Trial's digit strings, biased
// toward the boundary lengths that matter to the binary core: the
// 1/7/8/15/16/30/31-byte chunk tiers pkg/arith dispatches on.
type Mutator struct {
	rng     *rand.Rand
	base    int
	alph    string
	absBase int
}

// NewMutator creates a Mutator fixed to one (base, alphabet) pair —
// mutating base or alphabet independently would mostly just produce
// invalid trials, so a Chain owns one Mutator per base under test.
func NewMutator(rng *rand.Rand, base int, alph string) *Mutator {
	absBase := base
	if absBase < 0 {
		absBase = -absBase
	}
	return &Mutator{rng: rng, base: base, alph: alph, absBase: absBase}
}

// boundaryLengths are digit counts likely to land operands right at or
// around the binary core's chunked-arithmetic tier boundaries for a
// range of plausible bitsPerDigit values.
var boundaryLengths = []int{1, 2, 6, 7, 8, 9, 14, 15, 16, 17, 29, 30, 31, 32, 63, 64, 120}

// RandomDigits generates a random, canonical (no leading zero unless
// the value itself is zero) digit string with no sign prefix.
func (m *Mutator) RandomDigits() string {
	n := boundaryLengths[m.rng.IntN(len(boundaryLengths))]
	if m.rng.IntN(4) == 0 {
		n = m.rng.IntN(40) + 1 // occasionally explore an arbitrary length too
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = m.alph[m.rng.IntN(m.absBase)]
	}
	if out[0] == m.alph[0] && n > 1 {
		out[0] = m.alph[m.rng.IntN(m.absBase-1)+1]
	}
	return string(out)
}

// RandomTrial builds a fresh random Trial for this Mutator's base.
func (m *Mutator) RandomTrial() Trial {
	z1 := m.RandomDigits()
	z2 := m.RandomDigits()
	if m.base > 0 && m.rng.IntN(2) == 0 {
		z1 = "-" + z1
	}
	if m.base > 0 && m.rng.IntN(2) == 0 {
		z2 = "-" + z2
	}
	ops := []byte{'+', '-', '*'}
	return Trial{Base: m.base, Alph: m.alph, Z1: z1, Z2: z2, Op: ops[m.rng.IntN(len(ops))]}
}

// Mutate applies one random perturbation to t and returns a new Trial;
// t itself is never modified.
func (m *Mutator) Mutate(t Trial) Trial {
	switch m.rng.IntN(6) {
	case 0:
		t.Z1 = m.RandomDigits()
	case 1:
		t.Z2 = m.RandomDigits()
	case 2:
		t.Z1 = m.flipSign(t.Z1)
	case 3:
		t.Z2 = m.flipSign(t.Z2)
	case 4:
		ops := []byte{'+', '-', '*'}
		t.Op = ops[m.rng.IntN(len(ops))]
	default:
		t.Z1 = m.perturbOneDigit(t.Z1)
	}
	return t
}

func (m *Mutator) flipSign(digits string) string {
	if m.base <= 0 {
		return digits
	}
	if len(digits) > 0 && digits[0] == '-' {
		return digits[1:]
	}
	return "-" + digits
}

// perturbOneDigit changes a single randomly chosen digit character,
// the digit-string analogue of stoke.Mutator.ChangeImmediate.
func (m *Mutator) perturbOneDigit(digits string) string {
	start := 0
	if len(digits) > 0 && digits[0] == '-' {
		start = 1
	}
	if len(digits) <= start {
		return digits
	}
	b := []byte(digits)
	pos := start + m.rng.IntN(len(b)-start)
	b[pos] = m.alph[m.rng.IntN(m.absBase)]
	if pos == start && b[pos] == m.alph[0] && len(b) > start+1 {
		b[pos] = m.alph[m.rng.IntN(m.absBase-1)+1]
	}
	return string(b)
}
