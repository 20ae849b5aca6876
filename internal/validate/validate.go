// Package validate is the "external collaborator" named in spec.md §1:
// it turns raw CLI/config input into the already-validated inputs the
// core (pkg/bigint, pkg/arith, pkg/radix, pkg/arithop) assumes it always
// receives. Every error here is an ordinary Go error value, never a
// panic — precondition violations inside the core panic, but
// input-validity errors are caught here first (SPEC_FULL.md §7).
package validate

import (
	"fmt"
	"unicode"

	"github.com/oisee/bigradix/pkg/radix"
)

// Alphabet validates a raw alphabet string for a given base and returns
// a ready-to-use *radix.Alphabet: |base| distinct printable characters,
// no '-' when base > 0 (reserved for the sign prefix).
func Alphabet(base int, chars string) (*radix.Alphabet, error) {
	if base == 0 || base == 1 || base == -1 {
		return nil, fmt.Errorf("validate: |base| must be >= 2, got %d", base)
	}
	want := base
	if want < 0 {
		want = -want
	}
	if len(chars) != want {
		return nil, fmt.Errorf("validate: alphabet length %d does not match |base|=%d", len(chars), want)
	}
	seen := make(map[byte]bool, len(chars))
	raw := make([]byte, 0, len(chars))
	for _, r := range chars {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return nil, fmt.Errorf("validate: alphabet character %q is not printable ASCII", r)
		}
		b := byte(r)
		if base > 0 && b == '-' {
			return nil, fmt.Errorf("validate: alphabet may not contain '-' for a positive base")
		}
		if seen[b] {
			return nil, fmt.Errorf("validate: alphabet contains duplicate character %q", r)
		}
		seen[b] = true
		raw = append(raw, b)
	}
	return radix.NewAlphabet(raw), nil
}

// Digits checks that a digit string (after any leading '-' has been
// stripped by the caller) contains only characters present in alph.
func Digits(alph *radix.Alphabet, s string, sawSign bool) error {
	for i := 0; i < len(s); i++ {
		if !alphabetContains(alph, s[i]) {
			return fmt.Errorf("validate: character %q at position %d is not in the alphabet", s[i], i)
		}
	}
	_ = sawSign
	return nil
}

func alphabetContains(alph *radix.Alphabet, c byte) bool {
	for i := 0; i < alph.Len(); i++ {
		if alph.Char(uint8(i)) == c {
			return true
		}
	}
	return false
}

// StripSign detects a leading '-' (only meaningful when base > 0) and
// returns the remaining digit string plus whether a sign was found.
// For base < 0 no sign prefix exists; the string is returned unchanged.
func StripSign(base int, s string) (digits string, negative bool) {
	if base > 0 && len(s) > 0 && s[0] == '-' {
		return s[1:], true
	}
	return s, false
}

// Op validates that op is one of '+', '-', '*'.
func Op(op byte) error {
	switch op {
	case '+', '-', '*':
		return nil
	default:
		return fmt.Errorf("validate: unknown operator %q", op)
	}
}
