package alias

import (
	"strings"
	"testing"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for length := 1; length <= MaxLength; length++ {
		code, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d): %v", length, err)
		}
		if len(code) != length {
			t.Errorf("Generate(%d) returned %q (len %d)", length, code, len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) produced %q outside the alphabet", length, c)
			}
		}
	}
}

func TestGenerateRejectsBadLengths(t *testing.T) {
	for _, length := range []int{-1, 0, MaxLength + 1, 100} {
		if _, err := Generate(length); err == nil {
			t.Errorf("Generate(%d): expected error", length)
		}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"abc123", true},
		{"ABCDEF", true},
		{"aaaaaaaaaaaaaaaa", true},  // 16 chars
		{"aaaaaaaaaaaaaaaaa", false}, // 17 chars
		{"", false},
		{"has space", false},
		{"semi;colon", false},
		{"ünïcode", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.code); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
