// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import "testing"

// B< and B> orientation, checked directly against original_source's own
// test_lt/test_gt vectors rather than the glyph's naive reading (spec.md
// §9(a) flags this as an open ambiguity to resolve against test vectors).
func TestIntLessGreaterOrientation(t *testing.T) {
	checkBool(t, "B< I$ I#", false) // 3 < 2 is false
	checkBool(t, "B< I# I$", true)  // 2 < 3 is true
	checkBool(t, "B> I$ I#", true)  // 3 > 2 is true
	checkBool(t, "B> I# I$", false) // 2 > 3 is false
}

func TestDivByZero(t *testing.T) {
	_, err := Parse("B/ I! I!")
	if err == nil {
		t.Fatal("expected an error dividing by zero")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != ErrDivByZero {
		t.Errorf("expected ErrDivByZero, got %v", err)
	}
}

func TestModByZero(t *testing.T) {
	_, err := Parse("B% I# I!")
	if err == nil {
		t.Fatal("expected an error taking a remainder by zero")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != ErrDivByZero {
		t.Errorf("expected ErrDivByZero, got %v", err)
	}
}
