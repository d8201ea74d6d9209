// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import "math/big"

// A Handle is a stable reference to a node in an arena: a non-negative
// index into the arena's flat node slice, analogous to an address in a
// flat memory space. Handles never change meaning once issued, even
// though the node they point at is frequently rewritten in place.
type Handle int

// A nodeKind identifies which variant of Term a node holds.
type nodeKind byte

const (
	nBool nodeKind = iota
	nInt
	nStr
	nVar
	nLam
	nIf
	nUn
	nBin
	nThunk
)

// A node is one arena-owned term. Only the fields relevant to its kind
// are meaningful; children are referenced exclusively by Handle, never
// by pointer, so that shallow-clone and in-place thunk updates reduce
// to copying or overwriting a single record.
//
// Application is not a separate node kind: it is nBin with bop ==
// opApply, exactly as the wire grammar produces it (B$ is a binary
// token like any other). Spec's App(f, x) is this shape under another
// name; keeping one representation avoids two code paths for the same
// redex.
type node struct {
	kind nodeKind

	bval bool     // nBool
	ival *big.Int // nInt
	sval string   // nStr

	id int64 // nVar, nLam: variable identifier

	child  Handle // nLam, nUn, nThunk
	first  Handle // nIf(pred), nBin(l)
	second Handle // nIf(then), nBin(r)
	third  Handle // nIf(else)

	uop unaryOp  // nUn
	bop binaryOp // nBin
}
