// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import (
	"math/big"
	"testing"
)

func TestDecodeIntKnownValues(t *testing.T) {
	cases := []struct {
		body string
		want int64
	}{
		{"", 0},
		{"!", 0},
		{"\"", 1},
		{"#", 2},
		{"/6", 1337},
	}
	for _, c := range cases {
		got, err := DecodeInt(c.body)
		if err != nil {
			t.Errorf("DecodeInt(%q): %v", c.body, err)
			continue
		}
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("DecodeInt(%q) = %s, want %d", c.body, got, c.want)
		}
	}
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 93, 94, 95, 1337, 4194304, 1 << 40} {
		want := big.NewInt(n)
		body := EncodeInt(want)
		got, err := DecodeInt(body)
		if err != nil {
			t.Fatalf("DecodeInt(EncodeInt(%d)): %v", n, err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("round trip for %d: got %s", n, got)
		}
	}
}

func TestEncodeIntNoLeadingZeroDigit(t *testing.T) {
	// encode_int(decode_int(w)) = w only holds when w has no leading
	// zero digit; verify the shortest-encoding side of that law.
	for _, n := range []int64{0, 1, 93, 94, 8836} {
		body := EncodeInt(big.NewInt(n))
		if len(body) > 1 && body[0] == wireStart {
			t.Errorf("EncodeInt(%d) = %q has a leading zero digit", n, body)
		}
	}
}

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "test", "Hello World!", "\n", " "} {
		wire, err := EncodeString(s)
		if err != nil {
			t.Fatalf("EncodeString(%q): %v", s, err)
		}
		got, err := DecodeString(wire)
		if err != nil {
			t.Fatalf("DecodeString(EncodeString(%q)): %v", s, err)
		}
		if got != s {
			t.Errorf("round trip for %q: got %q", s, got)
		}
	}
}

func TestDecodeStringKnownValue(t *testing.T) {
	got, err := DecodeString("B%,,/}Q/2,$_")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if got != "Hello World!" {
		t.Errorf("DecodeString(%q) = %q, want %q", "B%,,/}Q/2,$_", got, "Hello World!")
	}
}

func TestDecodeStringRejectsOutOfRangeByte(t *testing.T) {
	for _, body := range []string{"\x00", "\x20", "\x7f"} {
		if _, err := DecodeString(body); err == nil {
			t.Errorf("DecodeString(%q): expected error, got none", body)
		} else if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidCharacter {
			t.Errorf("DecodeString(%q): expected ErrInvalidCharacter, got %v", body, err)
		}
	}
}

func TestStringToBigIntKnownValue(t *testing.T) {
	// "test", read as base-94 digits over the alphabet's own ordering,
	// is the canonical worked example: 15818151.
	n, err := stringToBigInt("test")
	if err != nil {
		t.Fatalf("stringToBigInt: %v", err)
	}
	if n.Cmp(big.NewInt(15818151)) != 0 {
		t.Errorf("stringToBigInt(\"test\") = %s, want 15818151", n)
	}
}

func TestBigIntToStringNegativeIsError(t *testing.T) {
	_, err := bigIntToString(big.NewInt(-1))
	if err == nil {
		t.Fatal("expected error for negative int")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrNegativeIntToStr {
		t.Errorf("expected ErrNegativeIntToStr, got %v", err)
	}
}
