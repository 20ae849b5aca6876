package diffcheck

import (
	"testing"

	"github.com/oisee/bigradix/internal/validate"
)

func TestQuickCheckFixedCasesAgree(t *testing.T) {
	mismatches, err := QuickCheck(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range mismatches {
		t.Error(m)
	}
}

func TestCoresAgreeSingleCase(t *testing.T) {
	agree, binOut, naiveOut, err := CoresAgree(Case{Base: 10, Z1: "123", Z2: "456", Op: '+'})
	if err != nil {
		t.Fatal(err)
	}
	if !agree {
		t.Errorf("cores disagree: binary=%q naive=%q", binOut, naiveOut)
	}
	if binOut != "579" {
		t.Errorf("123+456 = %q, want 579", binOut)
	}
}

func TestSIMDAgreesOnFixedCases(t *testing.T) {
	for _, c := range FixedCases {
		ok, err := SIMDAgrees(c)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("case %+v: SIMD and sequential disagree", c)
		}
	}
}

func TestRoundTripsDecimal(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	ok, got := RoundTrips(10, alph, "918273645")
	if !ok {
		t.Errorf("round trip failed, got %q", got)
	}
}

func TestRoundTripsNegativeBase(t *testing.T) {
	alph, err := validate.Alphabet(-2, "01")
	if err != nil {
		t.Fatal(err)
	}
	ok, got := RoundTrips(-2, alph, "110")
	if !ok {
		t.Errorf("round trip failed, got %q", got)
	}
}

func TestRoundTripsCustomAlphabet(t *testing.T) {
	alph, err := validate.Alphabet(7, "abcdefg")
	if err != nil {
		t.Fatal(err)
	}
	ok, got := RoundTrips(7, alph, "a")
	if !ok {
		t.Errorf("round trip with custom zero digit failed, got %q", got)
	}
}
