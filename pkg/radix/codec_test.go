package radix

import (
	"testing"

	"github.com/oisee/bigradix/pkg/bigint"
)

func TestParseIntoDecimal(t *testing.T) {
	alph := NewAlphabet([]byte("0123456789"))
	dst := bigint.New(4, false)
	ParseInto(dst, 10, alph, "150")
	got := ToBasePos(dst, 10, alph, nil)
	if got != "150" {
		t.Errorf("parse(150) round-trip = %q, want %q", got, "150")
	}
}

func TestParseIntoAndProjectRoundTripHex(t *testing.T) {
	alph := NewAlphabet([]byte("0123456789abcdef"))
	dst := bigint.New(8, false)
	ParseInto(dst, 16, alph, "deadbeef")
	got := ToBasePos(dst, 16, alph, nil)
	if got != "deadbeef" {
		t.Errorf("parse/project round trip = %q, want %q", got, "deadbeef")
	}
}

func TestToBasePosZero(t *testing.T) {
	alph := NewAlphabet([]byte("01"))
	z := bigint.New(2, false)
	if got := ToBasePos(z, 2, alph, nil); got != "0" {
		t.Errorf("zero should project to %q, got %q", "0", got)
	}
}

func TestToBasePosNegativeSign(t *testing.T) {
	alph := NewAlphabet([]byte("0123456789"))
	dst := bigint.New(4, false)
	ParseInto(dst, 10, alph, "42")
	dst.SetSign(true)
	got := ToBasePos(dst, 10, alph, nil)
	if got != "-42" {
		t.Errorf("negative projection = %q, want %q", got, "-42")
	}
}

func TestToBaseNegSimple(t *testing.T) {
	// Scenario 3 from the end-to-end test list: decimal 2 (1+1 in base -2,
	// §8) projects to "110" in base -2.
	alph := NewAlphabet([]byte("01"))
	dst := bigint.New(4, false)
	dst.SetByte(0, 2)
	got := ToBaseNeg(dst, -2, alph)
	if got != "110" {
		t.Errorf("2 in base -2 = %q, want %q", got, "110")
	}
}

func TestToBaseNegZero(t *testing.T) {
	alph := NewAlphabet([]byte("01"))
	z := bigint.New(2, false)
	if got := ToBaseNeg(z, -2, alph); got != "0" {
		t.Errorf("zero in negative base should project to %q, got %q", "0", got)
	}
}

func TestToBaseNegPanicsOnPositiveBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ToBaseNeg with a non-negative base should panic")
		}
	}()
	alph := NewAlphabet([]byte("01"))
	ToBaseNeg(bigint.New(2, false), 2, alph)
}

func TestAlphabetDigitValue(t *testing.T) {
	alph := NewAlphabet([]byte("abcdefg"))
	if alph.DigitValue('d') != 3 {
		t.Errorf("digit value of 'd' = %d, want 3", alph.DigitValue('d'))
	}
	if alph.Char(3) != 'd' {
		t.Errorf("char(3) = %q, want 'd'", alph.Char(3))
	}
}
