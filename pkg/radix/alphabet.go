package radix

// Alphabet is an ordered sequence of |base| distinct printable characters;
// position i names digit value i. It also owns the digit LUT: a 256-entry
// table mapping each possible byte to its digit index, built once at
// construction the way pkg/cpu's flag tables are built once in init() —
// except here it is built per Alphabet instance rather than globally,
// since the alphabet varies per call (SPEC_FULL.md §4.3.1: "Build the
// digit LUT once from alph"). Characters outside the alphabet map to
// digit 0, matching the spec's "out of contract for the core" rule;
// rejecting them is internal/validate's job, not this package's.
type Alphabet struct {
	chars []byte
	lut   [256]uint8
}

// NewAlphabet builds an Alphabet and its digit LUT from an ordered,
// already-validated character set. Callers needing validation (duplicate
// detection, printable-character checks) should go through
// internal/validate.Alphabet first.
func NewAlphabet(chars []byte) *Alphabet {
	a := &Alphabet{chars: append([]byte(nil), chars...)}
	for i, c := range a.chars {
		a.lut[c] = uint8(i)
	}
	return a
}

// Len returns |base|, the number of digits in the alphabet.
func (a *Alphabet) Len() int { return len(a.chars) }

// DigitValue returns the digit index of byte c, or 0 if c is not in the
// alphabet (out of contract; validated inputs never hit this case).
func (a *Alphabet) DigitValue(c byte) uint8 { return a.lut[c] }

// Char returns the alphabet character for digit value d.
func (a *Alphabet) Char(d uint8) byte { return a.chars[d] }
