// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import (
	"math/big"
	"strings"
)

// A tokKind identifies the classification of a single whitespace-free
// lexeme, selected by its first byte (its "indicator").
type tokKind byte

const (
	tokBool tokKind = iota
	tokInt
	tokStr
	tokUnary
	tokBinary
	tokIf
	tokLambda
	tokVar
)

// A token is one classified lexeme from the wire stream.
type token struct {
	kind tokKind
	bval bool
	ival *big.Int
	sval string
	uop  unaryOp
	bop  binaryOp
	vid  int64
}

// Lex splits input on runs of ASCII whitespace and classifies each
// resulting lexeme into a token by its first byte, per the indicator
// table in the wire grammar.
func Lex(input string) ([]token, error) {
	var tokens []token
	for _, lexeme := range strings.Fields(input) {
		t, err := lexToken(lexeme)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func lexToken(s string) (token, error) {
	indicator := s[0]
	body := s[1:]

	switch indicator {
	case 'T':
		if body != "" {
			return token{}, &Error{Kind: ErrInvalidToken}
		}
		return token{kind: tokBool, bval: true}, nil
	case 'F':
		if body != "" {
			return token{}, &Error{Kind: ErrInvalidToken}
		}
		return token{kind: tokBool, bval: false}, nil
	case 'I':
		n, err := DecodeInt(body)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokInt, ival: n}, nil
	case 'S':
		str, err := DecodeString(body)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokStr, sval: str}, nil
	case 'U':
		op, ok := lexUnaryOp(body)
		if !ok {
			return token{}, &Error{Kind: ErrInvalidToken}
		}
		return token{kind: tokUnary, uop: op}, nil
	case 'B':
		op, ok := lexBinaryOp(body)
		if !ok {
			return token{}, &Error{Kind: ErrInvalidToken}
		}
		return token{kind: tokBinary, bop: op}, nil
	case '?':
		if body != "" {
			return token{}, &Error{Kind: ErrInvalidToken}
		}
		return token{kind: tokIf}, nil
	case 'L':
		n, err := DecodeInt(body)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokLambda, vid: n.Int64()}, nil
	case 'v':
		n, err := DecodeInt(body)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokVar, vid: n.Int64()}, nil
	default:
		return token{}, &Error{Kind: ErrInvalidToken}
	}
}

// arity returns the number of operand terms this token consumes when
// parsed in prefix order.
func (t token) arity() int {
	switch t.kind {
	case tokBool, tokInt, tokStr, tokVar:
		return 0
	case tokUnary, tokLambda:
		return 1
	case tokBinary:
		return 2
	case tokIf:
		return 3
	default:
		return 0
	}
}
