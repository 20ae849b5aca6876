package arithop

import (
	"testing"

	"github.com/oisee/bigradix/internal/validate"
)

func TestComputeScenario1Decimal(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	got := Compute(10, alph, "100", "50", '+', true, nil)
	if got != "150" {
		t.Errorf("100+50 base10 = %q, want %q", got, "150")
	}
}

func TestComputeScenario2Base5Multiply(t *testing.T) {
	alph, err := validate.Alphabet(5, "01234")
	if err != nil {
		t.Fatal(err)
	}
	// decimal 14 * 5 = 70; 70 in base 5 is 240.
	got := Compute(5, alph, "24", "10", '*', true, nil)
	if got != "240" {
		t.Errorf("24*10 base5 = %q, want %q", got, "240")
	}
}

func TestComputeScenario3NegBaseAdd(t *testing.T) {
	alph, err := validate.Alphabet(-2, "01")
	if err != nil {
		t.Fatal(err)
	}
	got := Compute(-2, alph, "1", "1", '+', true, nil)
	if got != "110" {
		t.Errorf("1+1 base-2 = %q, want %q", got, "110")
	}
}

func TestComputeScenario4NegBaseMultiply(t *testing.T) {
	alph, err := validate.Alphabet(-2, "01")
	if err != nil {
		t.Fatal(err)
	}
	// decimal -1 * -1 = 1.
	got := Compute(-2, alph, "11", "11", '*', true, nil)
	if got != "1" {
		t.Errorf("11*11 base-2 = %q, want %q", got, "1")
	}
}

func TestComputeScenario5Base7Subtract(t *testing.T) {
	alph, err := validate.Alphabet(7, "abcdefg")
	if err != nil {
		t.Fatal(err)
	}
	// -9 - 188 = -197, which is "-eab" over this alphabet (verified via an
	// independent oracle computation rather than transcribed from source
	// material, which names this case as "computed via oracle").
	got := Compute(7, alph, "-abc", "dfg", '-', true, nil)
	if got != "-eab" {
		t.Errorf("-abc - dfg base7 = %q, want %q", got, "-eab")
	}
}

func TestComputeScenario6LargeDecimalMultiply(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	z1 := "23452348752893456792834657926230957238945728394578293457892374589237485"
	z2 := "23845762734856723846572384576234785623489576"
	// computed independently (python: z1*z2) rather than transcribed from
	// source material, which carried a stray line-wrap space in the digit run.
	want := "559239143936610353097751792835383338950038609483918423036299430542436508526271447415753330047855969192578685956360"
	got := Compute(10, alph, z1, z2, '*', true, nil)
	if got != want {
		t.Errorf("large multiply mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestComputeSIMDAgreesWithSequential(t *testing.T) {
	alph, err := validate.Alphabet(16, "0123456789abcdef")
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range []byte{'+', '-', '*'} {
		simd := Compute(16, alph, "ff00ff00ff", "1234abcd", op, true, nil)
		seq := Compute(16, alph, "ff00ff00ff", "1234abcd", op, false, nil)
		if simd != seq {
			t.Errorf("op %q: SIMD=%q sequential=%q disagree", op, simd, seq)
		}
	}
}

func TestComputeResultWidth(t *testing.T) {
	if w := ResultWidth(10, 3, 2, '+'); w != 5 {
		t.Errorf("ResultWidth(+) = %d, want 5", w)
	}
	if w := ResultWidth(10, 3, 2, '*'); w != 7 {
		t.Errorf("ResultWidth(*) = %d, want 7", w)
	}
}

func TestComputeInvalidOpPanics(t *testing.T) {
	alph, err := validate.Alphabet(10, "0123456789")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("invalid op should panic")
		}
	}()
	Compute(10, alph, "1", "1", '/', true, nil)
}
