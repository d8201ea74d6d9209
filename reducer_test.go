// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import (
	"math/big"
	"testing"
)

// alphaConvert must give every Lam binder in the tree a globally unique
// id, even when the source program reuses the same literal identifier
// for two different binders.
func TestAlphaConvertGivesEveryBinderAUniqueID(t *testing.T) {
	a := newArena()

	// L# v# applied to (L# v#): two distinct sibling lambdas, both
	// written with the source identifier 2, neither nested inside the
	// other.
	innerBody := a.newVar(2)
	inner := a.newLam(2, innerBody)
	outerBody := a.newVar(2)
	outer := a.newLam(2, outerBody)
	root := a.newBin(opApply, outer, inner)

	alphaConvert(a, root)

	outerNode := a.get(outer)
	innerNode := a.get(inner)
	if outerNode.id == innerNode.id {
		t.Fatalf("two unrelated Lam binders received the same id %d after alpha conversion", outerNode.id)
	}

	// Each Lam's own bound Var must have been renamed to match its own
	// binder's new id, not the other's.
	if a.get(outerNode.child).id != outerNode.id {
		t.Errorf("outer Lam's body var id = %d, want %d", a.get(outerNode.child).id, outerNode.id)
	}
	if a.get(innerNode.child).id != innerNode.id {
		t.Errorf("inner Lam's body var id = %d, want %d", a.get(innerNode.child).id, innerNode.id)
	}
}

// shallowClone must preserve sharing through Thunk nodes: a cloned
// Lam's body keeps the original Thunk handle.
func TestShallowCloneSharesThunks(t *testing.T) {
	a := newArena()
	arg := a.newInt(big.NewInt(5))
	thunk := a.newThunk(arg)
	lam := a.newLam(a.freshVar(), thunk)

	clone := a.shallowClone(lam)
	clonedNode := a.get(clone)
	if clonedNode.kind != nLam {
		t.Fatalf("clone kind = %v, want nLam", clonedNode.kind)
	}
	if clonedNode.child != thunk {
		t.Errorf("shallowClone rewrote a Thunk handle (%d), want it shared unchanged (%d)", clonedNode.child, thunk)
	}
}

// Two applications of one Lam value must not interfere: each Apply
// clones the body before substituting, so the first call's in-place
// overwrite can't corrupt the second.
func TestRunDoesNotLeakBetweenTwoApplications(t *testing.T) {
	a := newArena()
	argID := a.freshVar()
	// L(argID) -> argID + argID
	body := a.newBin(opAdd, a.newVar(argID), a.newVar(argID))
	lam := a.newLam(argID, body)

	callA := a.newBin(opApply, lam, a.newInt(big.NewInt(2)))
	callB := a.newBin(opApply, lam, a.newInt(big.NewInt(100)))
	root := a.newBin(opAdd, callA, callB)

	r := newReducer(a)
	v, err := r.Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Kind != KindInt || v.Int.Int64() != 204 {
		t.Errorf("Run = %v, want 204 (2+2 + 100+100)", v)
	}
}

func TestRunReportsBudgetExceeded(t *testing.T) {
	a := newArena()
	// An unbounded self-application with no base case: (\x -> x x)(\x -> x x).
	id := a.freshVar()
	selfApp := a.newBin(opApply, a.newVar(id), a.newVar(id))
	omega := a.newLam(id, selfApp)
	root := a.newBin(opApply, omega, omega)

	r := &reducer{a: a}
	_, err := r.Run(root)
	if err == nil {
		t.Fatal("expected an error for a diverging term")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != ErrBudgetExceeded {
		t.Errorf("expected ErrBudgetExceeded, got %v", err)
	}
}

func TestExtractCompressesThunkChain(t *testing.T) {
	a := newArena()
	leaf := a.newInt(big.NewInt(7))
	mid := a.newThunk(leaf)
	top := a.newThunk(mid)

	r := newReducer(a)
	resolved := r.extract(top)
	if resolved != leaf {
		t.Errorf("extract(top) = %d, want leaf handle %d", resolved, leaf)
	}
	// Path compression: top's indirection should now point directly at
	// leaf rather than through mid.
	if a.get(top).child != leaf {
		t.Errorf("extract did not compress the path: top.child = %d, want %d", a.get(top).child, leaf)
	}
}
