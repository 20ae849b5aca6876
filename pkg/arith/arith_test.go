package arith

import (
	"testing"

	"github.com/oisee/bigradix/pkg/bigint"
)

func mkFromU64(length int, v uint64, sign bool) *bigint.BigInt {
	b := bigint.New(length, sign)
	for i := 0; i < length && v != 0; i++ {
		b.SetByte(i, byte(v))
		v >>= 8
	}
	return b
}

func toU64(b *bigint.BigInt) uint64 {
	var v uint64
	for i := b.Length() - 1; i >= 0; i-- {
		v = (v << 8) | uint64(b.GetByte(i))
	}
	return v
}

func TestAddSameSign(t *testing.T) {
	a := mkFromU64(4, 100, false)
	b := mkFromU64(4, 50, false)
	Add(a, b, true)
	if got := toU64(a); got != 150 {
		t.Errorf("100+50 = %d, want 150", got)
	}
}

func TestAddMixedSigns(t *testing.T) {
	a := mkFromU64(4, 100, false)
	b := mkFromU64(4, 150, true)
	Add(a, b, true) // 100 + (-150) = -50
	if got := toU64(a); got != 50 || !a.Sign() {
		t.Errorf("100+(-150) = sign=%v %d, want -50", a.Sign(), got)
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := mkFromU64(4, 777, false)
	b := mkFromU64(4, 777, false)
	Sub(a, b, true)
	if !a.IsZero() {
		t.Errorf("a-a should be zero, got %d sign=%v", toU64(a), a.Sign())
	}
}

func TestSubNegativeResult(t *testing.T) {
	a := mkFromU64(4, 10, false)
	b := mkFromU64(4, 50, false)
	Sub(a, b, true) // 10 - 50 = -40
	if got := toU64(a); got != 40 || !a.Sign() {
		t.Errorf("10-50 = sign=%v %d, want -40", a.Sign(), got)
	}
}

func TestSubBothNegative(t *testing.T) {
	a := mkFromU64(4, 10, true)
	b := mkFromU64(4, 50, true)
	Sub(a, b, true) // -10 - (-50) = 40
	if got := toU64(a); got != 40 || a.Sign() {
		t.Errorf("-10-(-50) = sign=%v %d, want 40", a.Sign(), got)
	}
}

func TestAddSIMDAgreesWithSequential(t *testing.T) {
	lengths := []int{1, 7, 8, 15, 16, 30, 31}
	for _, n := range lengths {
		a1 := mkFromU64(n, 0x00FFFFFFFFFFFFFF&((1<<uint(min(n*8, 63)))-1), false)
		a2 := bigint.Clone(a1)
		b := mkFromU64(n, 12345&uint64((1<<uint(min(n*8, 16)))-1), false)
		Add(a1, b, true)
		Add(a2, b, false)
		if !a1.Equals(a2) {
			t.Errorf("length %d: SIMD and sequential add disagree", n)
		}
	}
}

func TestSubSIMDAgreesWithSequential(t *testing.T) {
	lengths := []int{1, 7, 8, 15, 16, 30, 31}
	for _, n := range lengths {
		a1 := mkFromU64(n, 98765&uint64((1<<uint(min(n*8, 32)))-1), false)
		a2 := bigint.Clone(a1)
		b := mkFromU64(n, 123&uint64((1<<uint(min(n*8, 8)))-1), false)
		Sub(a1, b, true)
		Sub(a2, b, false)
		if !a1.Equals(a2) {
			t.Errorf("length %d: SIMD and sequential sub disagree", n)
		}
	}
}

func TestIncrPositive(t *testing.T) {
	a := mkFromU64(2, 255, false)
	Incr(a)
	if got := toU64(a); got != 256 {
		t.Errorf("incr(255) = %d, want 256", got)
	}
}

func TestIncrNegative(t *testing.T) {
	a := mkFromU64(2, 5, true)
	Incr(a)
	if got := toU64(a); got != 4 || !a.Sign() {
		t.Errorf("incr(-5) = sign=%v %d, want -4", a.Sign(), got)
	}
}

func TestShlBits(t *testing.T) {
	a := mkFromU64(4, 1, false)
	ShlBits(a, 3)
	if got := toU64(a); got != 8 {
		t.Errorf("1<<3 = %d, want 8", got)
	}
}

func TestShlBitsOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ShlBits with k>7 should panic")
		}
	}()
	ShlBits(mkFromU64(2, 1, false), 8)
}

func TestShlBytes(t *testing.T) {
	a := mkFromU64(4, 0x1234, false)
	ShlBytes(a, 1)
	if got := toU64(a); got != 0x123400 {
		t.Errorf("shl_bytes(0x1234,1) = %#x, want 0x123400", got)
	}
}

func TestShlBytesTruncatesOverflow(t *testing.T) {
	a := mkFromU64(2, 0xFFFF, false)
	ShlBytes(a, 1)
	if got := toU64(a); got != 0xFF00 {
		t.Errorf("overflow byte should be lost, got %#x", got)
	}
}

func TestMulU8(t *testing.T) {
	a := mkFromU64(4, 123, false)
	dst := bigint.New(4, false)
	tmp := bigint.New(5, false)
	MulU8(a, 7, dst, tmp)
	if got := toU64(dst); got != 861 {
		t.Errorf("123*7 = %d, want 861", got)
	}
}

func TestMulU8Zero(t *testing.T) {
	a := mkFromU64(4, 123, false)
	dst := bigint.New(4, false)
	tmp := bigint.New(5, false)
	MulU8(a, 0, dst, tmp)
	if !dst.IsZero() {
		t.Error("123*0 should be zero")
	}
}

func TestMulSmallSign(t *testing.T) {
	a := mkFromU64(4, 10, false)
	dst := bigint.New(4, false)
	tmp := bigint.New(5, false)
	MulSmall(a, -3, dst, tmp)
	if got := toU64(dst); got != 30 || !dst.Sign() {
		t.Errorf("10*-3 = sign=%v %d, want -30", dst.Sign(), got)
	}
}

func TestMulSmall256(t *testing.T) {
	a := mkFromU64(4, 1, false)
	dst := bigint.New(4, false)
	tmp := bigint.New(5, false)
	MulSmall(a, 256, dst, tmp)
	if got := toU64(dst); got != 256 {
		t.Errorf("1*256 = %d, want 256", got)
	}
}

func TestMul(t *testing.T) {
	a := mkFromU64(4, 1234, false)
	b := mkFromU64(4, 5678, false)
	res := bigint.New(8, false)
	Mul(a, b, res)
	if got := toU64(res); got != 1234*5678 {
		t.Errorf("1234*5678 = %d, want %d", got, 1234*5678)
	}
}

func TestMulSignXOR(t *testing.T) {
	a := mkFromU64(4, 6, true)
	b := mkFromU64(4, 7, false)
	res := bigint.New(8, false)
	Mul(a, b, res)
	if got := toU64(res); got != 42 || !res.Sign() {
		t.Errorf("-6*7 = sign=%v %d, want -42", res.Sign(), got)
	}
}

func TestDivSmall(t *testing.T) {
	a := mkFromU64(4, 100, false)
	tmp1 := bigint.New(4, false)
	tmp2 := bigint.New(4, false)
	rem := DivSmall(a, 7, tmp1, tmp2)
	if got := toU64(a); got != 14 || rem != 2 {
		t.Errorf("100/7 = %d rem %d, want 14 rem 2", got, rem)
	}
}

func TestDivSmallNegativeDividend(t *testing.T) {
	a := mkFromU64(4, 100, true)
	tmp1 := bigint.New(4, false)
	tmp2 := bigint.New(4, false)
	rem := DivSmall(a, 7, tmp1, tmp2)
	if got := toU64(a); got != 14 || !a.Sign() || rem != -2 {
		t.Errorf("-100/7 = sign=%v %d rem %d, want -14 rem -2", a.Sign(), got, rem)
	}
}

func TestAbsGt(t *testing.T) {
	a := mkFromU64(4, 100, false)
	b := mkFromU64(4, 99, false)
	if !AbsGt(a, b) {
		t.Error("100 should be > 99")
	}
	if AbsGt(b, a) {
		t.Error("99 should not be > 100")
	}
}

func TestAbsGtRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AbsGt with a negative operand should panic")
		}
	}()
	AbsGt(mkFromU64(2, 1, true), mkFromU64(2, 1, false))
}

func TestGeSmallZero(t *testing.T) {
	zero := bigint.New(2, false)
	if !GeSmall(zero, 0) {
		t.Error("0 >= 0 should hold")
	}
	negZero := bigint.New(2, true)
	if !GeSmall(negZero, 0) {
		t.Error("-0 >= 0 should hold (is_zero collapses sign)")
	}
}

func TestGeSmallMixedSign(t *testing.T) {
	pos := mkFromU64(2, 5, false)
	if !GeSmall(pos, -3) {
		t.Error("5 >= -3 should hold")
	}
	neg := mkFromU64(2, 5, true)
	if GeSmall(neg, 3) {
		t.Error("-5 >= 3 should not hold")
	}
}
