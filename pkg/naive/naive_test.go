package naive

import (
	"testing"

	"github.com/oisee/bigradix/internal/validate"
	"github.com/oisee/bigradix/pkg/arithop"
)

func TestComputeScenario1Decimal(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(10, alph, "100", "50", '+'); got != "150" {
		t.Errorf("100+50 base10 = %q, want %q", got, "150")
	}
}

func TestComputeScenario2Base5Multiply(t *testing.T) {
	alph, err := validate.Alphabet(5, "01234")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(5, alph, "24", "10", '*'); got != "240" {
		t.Errorf("24*10 base5 = %q, want %q", got, "240")
	}
}

func TestComputeScenario3NegBaseAdd(t *testing.T) {
	alph, err := validate.Alphabet(-2, "01")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(-2, alph, "1", "1", '+'); got != "110" {
		t.Errorf("1+1 base-2 = %q, want %q", got, "110")
	}
}

func TestComputeScenario4NegBaseMultiply(t *testing.T) {
	alph, err := validate.Alphabet(-2, "01")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(-2, alph, "11", "11", '*'); got != "1" {
		t.Errorf("11*11 base-2 = %q, want %q", got, "1")
	}
}

func TestComputeScenario5Base7Subtract(t *testing.T) {
	alph, err := validate.Alphabet(7, "abcdefg")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(7, alph, "-abc", "dfg", '-'); got != "-eab" {
		t.Errorf("-abc - dfg base7 = %q, want %q", got, "-eab")
	}
}

func TestComputeSimpleDecimalSubtractNegativeResult(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(10, alph, "5", "10", '-'); got != "-5" {
		t.Errorf("5-10 base10 = %q, want %q", got, "-5")
	}
}

func TestComputeSignedMultiplyPositiveBase(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(10, alph, "-6", "7", '*'); got != "-42" {
		t.Errorf("-6*7 base10 = %q, want %q", got, "-42")
	}
	if got := Compute(10, alph, "-6", "-7", '*'); got != "42" {
		t.Errorf("-6*-7 base10 = %q, want %q", got, "42")
	}
}

func TestComputeZeroResultHasNoSign(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compute(10, alph, "7", "7", '-'); got != "0" {
		t.Errorf("7-7 base10 = %q, want %q", got, "0")
	}
}

func TestComputeAgreesWithArithopAcrossBases(t *testing.T) {
	cases := []struct {
		base     int
		alphStr  string
		z1, z2   string
		op       byte
	}{
		{10, "0123456789", "999", "1", '+'},
		{10, "0123456789", "1", "999", '-'},
		{16, "0123456789abcdef", "ff", "1", '+'},
		{2, "01", "111", "1", '+'},
		{-2, "01", "111", "1", '+'},
		{-3, "012", "21", "12", '+'},
		{8, "01234567", "777", "1", '+'},
		{75, alphabet75(), "10", "1", '*'},
	}
	for _, c := range cases {
		alph, err := validate.Alphabet(c.base, c.alphStr)
		if err != nil {
			t.Fatalf("base %d: %v", c.base, err)
		}
		got := Compute(c.base, alph, c.z1, c.z2, c.op)
		want := arithop.Compute(c.base, alph, c.z1, c.z2, c.op, true, nil)
		if got != want {
			t.Errorf("base %d: %s %c %s = %q, arithop gives %q", c.base, c.z1, c.op, c.z2, got, want)
		}
	}
}

func alphabet75() string {
	const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()+=_"
	return chars[:75]
}
