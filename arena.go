// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import "math/big"

// firstFreshVarID is the first identifier the fresh-variable generator
// will issue. It is chosen well above any identifier a base-94 wire
// literal is likely to name directly, the same way the reference
// implementation starts its counter at a high value disjoint from
// source identifiers.
const firstFreshVarID = 1 << 32

// An arena owns every node created while lexing, parsing, and reducing
// one expression. Nodes are addressed by Handle and are never freed
// individually; the whole arena is released when Parse returns.
//
// Each node lives at a stable heap address of its own (nodes holds
// *node, not node), so growing the index slice during reduction never
// invalidates a *node a caller is still holding — only flat fixed-size
// memories like cpu/memory.go's can use a bare value slice safely.
type arena struct {
	nodes  []*node
	nextID int64
}

func newArena() *arena {
	return &arena{nextID: firstFreshVarID}
}

func (a *arena) alloc(n node) Handle {
	a.nodes = append(a.nodes, &n)
	return Handle(len(a.nodes) - 1)
}

func (a *arena) get(h Handle) *node {
	return a.nodes[h]
}

// freshVar returns a variable identifier never previously issued by
// this arena and disjoint from any identifier that could appear in the
// source text.
func (a *arena) freshVar() int64 {
	id := a.nextID
	a.nextID++
	return id
}

func (a *arena) newBool(b bool) Handle        { return a.alloc(node{kind: nBool, bval: b}) }
func (a *arena) newInt(n *big.Int) Handle     { return a.alloc(node{kind: nInt, ival: n}) }
func (a *arena) newStr(s string) Handle       { return a.alloc(node{kind: nStr, sval: s}) }
func (a *arena) newVar(id int64) Handle       { return a.alloc(node{kind: nVar, id: id}) }
func (a *arena) newLam(id int64, body Handle) Handle {
	return a.alloc(node{kind: nLam, id: id, child: body})
}
func (a *arena) newIf(p, t, e Handle) Handle {
	return a.alloc(node{kind: nIf, first: p, second: t, third: e})
}
func (a *arena) newUn(op unaryOp, c Handle) Handle {
	return a.alloc(node{kind: nUn, uop: op, child: c})
}
func (a *arena) newBin(op binaryOp, l, r Handle) Handle {
	return a.alloc(node{kind: nBin, bop: op, first: l, second: r})
}
func (a *arena) newThunk(target Handle) Handle {
	return a.alloc(node{kind: nThunk, child: target})
}

// shallowClone produces a structural copy of the subterm rooted at h:
// new nodes, new handles. Lambdas encountered during the clone receive
// fresh bound identifiers, and references to the old identifier within
// the cloned subtree are rewritten to match (bound-variable renaming),
// exactly as alpha conversion would rename a freshly duplicated binder.
// Thunk nodes are never cloned — the clone keeps the same thunk handle,
// preserving sharing of whatever argument the thunk may later resolve
// to. This is what lets the same lambda be applied twice without one
// application's substitution mutating the other's body.
func (a *arena) shallowClone(h Handle) Handle {
	n := *a.get(h)
	switch n.kind {
	case nBool, nInt, nStr, nVar:
		return a.alloc(n)
	case nUn:
		c := a.shallowClone(n.child)
		return a.newUn(n.uop, c)
	case nBin:
		l := a.shallowClone(n.first)
		r := a.shallowClone(n.second)
		return a.newBin(n.bop, l, r)
	case nIf:
		p := a.shallowClone(n.first)
		t := a.shallowClone(n.second)
		e := a.shallowClone(n.third)
		return a.newIf(p, t, e)
	case nLam:
		newID := a.freshVar()
		newBody := a.shallowClone(n.child)
		replaceVarID(a, newBody, n.id, newID)
		return a.newLam(newID, newBody)
	case nThunk:
		// Not cloned: the clone shares the same indirection, and thus
		// the same memoised (or not-yet-memoised) argument.
		return h
	default:
		return h
	}
}
