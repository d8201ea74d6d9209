// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icfplang implements an evaluator for an untyped, call-by-name
// lambda calculus used as the communication language of a programming
// contest. A message is a single textual expression built from tokens
// separated by ASCII whitespace; Parse lexes and parses the expression,
// alpha-converts it, and reduces it to a value (boolean, integer, or
// string) using non-strict (normal-order) semantics with sharing.
package icfplang

import "math/big"

// A Kind identifies which variant of Value a reduction produced.
type Kind byte

// Value kinds.
const (
	KindBool Kind = iota
	KindInt
	KindStr
)

// A Value is the result of evaluating an expression to a literal: a
// boolean, an arbitrary-precision integer, or a string of alphabet
// characters.
type Value struct {
	Kind Kind
	Bool bool
	Int  *big.Int
	Str  string
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return v.Int.String()
	case KindStr:
		return v.Str
	default:
		return "<invalid value>"
	}
}

// Parse lexes, parses, alpha-converts and reduces the expression in
// text to a final Value. It is the combined entry point described by
// the core API: parse(text) -> Term, returning the fully reduced value.
func Parse(text string) (Value, error) {
	tokens, err := Lex(text)
	if err != nil {
		return Value{}, err
	}

	a := newArena()
	root, err := parseTokens(a, tokens)
	if err != nil {
		return Value{}, err
	}

	alphaConvert(a, root)

	r := newReducer(a)
	return r.Run(root)
}
