// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

// alphaConvert walks the parsed tree once, pre-order, and rewrites every
// Lam's bound identifier to a fresh one, renaming all free occurrences
// of the old identifier within its body to match. Because Lam nodes can
// nest, replaceVarID stops at any inner Lam that shadows the same
// source identifier, so shadowing is preserved correctly. After this
// pass every binder in the tree has a globally unique id.
func alphaConvert(a *arena, h Handle) {
	alphaConvertVisited(a, h, make(map[Handle]bool))
}

func alphaConvertVisited(a *arena, h Handle, visited map[Handle]bool) {
	n := a.get(h)
	switch n.kind {
	case nBool, nInt, nStr, nVar:
		return
	case nUn:
		alphaConvertVisited(a, n.child, visited)
	case nBin:
		alphaConvertVisited(a, n.first, visited)
		alphaConvertVisited(a, n.second, visited)
	case nIf:
		alphaConvertVisited(a, n.first, visited)
		alphaConvertVisited(a, n.second, visited)
		alphaConvertVisited(a, n.third, visited)
	case nLam:
		oldID := n.id
		newID := a.freshVar()
		replaceVarID(a, n.child, oldID, newID)
		n.id = newID
		alphaConvertVisited(a, n.child, visited)
	case nThunk:
		if !visited[n.child] {
			visited[n.child] = true
			alphaConvertVisited(a, n.child, visited)
		}
	}
}

// replaceVarID rewrites every free Var(from) reachable from h to
// Var(to), stopping at any inner Lam that rebinds from (shadowing).
// Thunk indirections are followed at most once per handle, matching the
// DAG-safe traversal every other whole-tree walk in this package uses.
func replaceVarID(a *arena, h Handle, from, to int64) {
	replaceVarIDVisited(a, h, from, to, make(map[Handle]bool))
}

func replaceVarIDVisited(a *arena, h Handle, from, to int64, visited map[Handle]bool) {
	n := a.get(h)
	switch n.kind {
	case nBool, nInt, nStr:
		return
	case nVar:
		if n.id == from {
			n.id = to
		}
	case nUn:
		replaceVarIDVisited(a, n.child, from, to, visited)
	case nBin:
		replaceVarIDVisited(a, n.first, from, to, visited)
		replaceVarIDVisited(a, n.second, from, to, visited)
	case nIf:
		replaceVarIDVisited(a, n.first, from, to, visited)
		replaceVarIDVisited(a, n.second, from, to, visited)
		replaceVarIDVisited(a, n.third, from, to, visited)
	case nLam:
		if n.id != from {
			replaceVarIDVisited(a, n.child, from, to, visited)
		}
	case nThunk:
		if !visited[n.child] {
			visited[n.child] = true
			replaceVarIDVisited(a, n.child, from, to, visited)
		}
	}
}

// substitute rewrites every free Var(id) reachable from h into a Thunk
// pointing at target, per beta-reduction rule 5: the argument is not
// evaluated before substitution, only wrapped in a shared indirection.
func substitute(a *arena, h Handle, id int64, target Handle) {
	substituteVisited(a, h, id, target, make(map[Handle]bool))
}

func substituteVisited(a *arena, h Handle, id int64, target Handle, visited map[Handle]bool) {
	n := a.get(h)
	switch n.kind {
	case nBool, nInt, nStr:
		return
	case nVar:
		if n.id == id {
			n.kind = nThunk
			n.child = target
		}
	case nUn:
		substituteVisited(a, n.child, id, target, visited)
	case nBin:
		substituteVisited(a, n.first, id, target, visited)
		substituteVisited(a, n.second, id, target, visited)
	case nIf:
		substituteVisited(a, n.first, id, target, visited)
		substituteVisited(a, n.second, id, target, visited)
		substituteVisited(a, n.third, id, target, visited)
	case nLam:
		if n.id != id {
			substituteVisited(a, n.child, id, target, visited)
		}
	case nThunk:
		if !visited[n.child] {
			visited[n.child] = true
			substituteVisited(a, n.child, id, target, visited)
		}
	}
}
