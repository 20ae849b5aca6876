package fuzz

import (
	"github.com/oisee/bigradix/internal/validate"
	"github.com/oisee/bigradix/pkg/diffcheck"
)

// Outcome is the result of checking one Trial against both agreement
// invariants.
type Outcome struct {
	CoresAgree bool
	BinOut     string
	NaiveOut   string
	SIMDAgrees bool
	SIMDOut    string
	SeqOut     string
}

// Disagreement reports whether either invariant was violated.
func (o Outcome) Disagreement() bool {
	return !o.CoresAgree || !o.SIMDAgrees
}

// Check runs a trial through both invariants. A validation error (an
// alphabet that doesn't fit the trial's base) is treated as "no
// finding". The mutator never changes a trial's base or alphabet, so
// such a pairing can only come from the caller's BaseSpec.
func Check(t Trial) (Outcome, bool) {
	alph, err := validate.Alphabet(t.Base, t.Alph)
	if err != nil {
		return Outcome{}, false
	}
	coresAgree, binOut, naiveOut, err := diffcheck.CoresAgreeWithAlphabet(t.Base, alph, t.Z1, t.Z2, t.Op)
	if err != nil {
		return Outcome{}, false
	}
	simdOut, seqOut := diffcheck.SIMDAgreesWithAlphabet(t.Base, alph, t.Z1, t.Z2, t.Op)
	return Outcome{
		CoresAgree: coresAgree,
		BinOut:     binOut,
		NaiveOut:   naiveOut,
		SIMDAgrees: simdOut == seqOut,
		SIMDOut:    simdOut,
		SeqOut:     seqOut,
	}, true
}

// Score is the MCMC objective: higher is "more interesting to keep
// exploring near". A confirmed disagreement scores far above anything
// else, mirroring how stoke.Cost reserves a whole order of magnitude
// for mismatches; short of an actual disagreement, longer operands
// that straddle more of the binary core's chunk-tier boundaries score
// higher, since that's where carry/borrow logic is most likely to
// break.
func Score(t Trial, o Outcome) int {
	if o.Disagreement() {
		return 1_000_000
	}
	return len(t.Z1) + len(t.Z2)
}
