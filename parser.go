// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

// parseTokens consumes the token stream in prefix order: each token's
// arity (fixed by its kind) tells the parser exactly how many operand
// subterms to recursively parse next. The first call builds the whole
// tree; any tokens left over afterward are a grammar error.
func parseTokens(a *arena, tokens []token) (Handle, error) {
	pos := 0
	root, err := parseOne(a, tokens, &pos)
	if err != nil {
		return 0, err
	}
	if pos != len(tokens) {
		return 0, &Error{Kind: ErrCannotConsumeToken}
	}
	return root, nil
}

// parseOne parses the token at *pos and, per its arity, the operand
// subterms that follow it, then builds the node the kind calls for.
func parseOne(a *arena, tokens []token, pos *int) (Handle, error) {
	if *pos >= len(tokens) {
		return 0, &Error{Kind: ErrCannotFindNextToken}
	}
	t := tokens[*pos]
	*pos++

	children := make([]Handle, t.arity())
	for i := range children {
		c, err := parseOne(a, tokens, pos)
		if err != nil {
			return 0, err
		}
		children[i] = c
	}

	switch t.kind {
	case tokBool:
		return a.newBool(t.bval), nil
	case tokInt:
		return a.newInt(t.ival), nil
	case tokStr:
		return a.newStr(t.sval), nil
	case tokVar:
		return a.newVar(t.vid), nil
	case tokUnary:
		return a.newUn(t.uop, children[0]), nil
	case tokBinary:
		return a.newBin(t.bop, children[0], children[1]), nil
	case tokIf:
		return a.newIf(children[0], children[1], children[2]), nil
	case tokLambda:
		return a.newLam(t.vid, children[0]), nil
	default:
		return 0, &Error{Kind: ErrInvalidToken}
	}
}
