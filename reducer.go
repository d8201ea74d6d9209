// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

// maxSteps bounds the number of whole-tree reduction passes Run will
// attempt before giving up with ErrBudgetExceeded. It is set far above
// anything a legitimate contest message should need, the same way a
// CPU emulator's instruction budget guards against a runaway program
// rather than a correct but slow one.
const maxSteps = 10_000_000

// A reducer drives one arena's root term to a final Value by repeated
// single-step passes, in the manner of cpu.CPU's fetch-dispatch-execute
// loop: each pass finds the leftmost outermost redex still reducible
// and rewrites it in place, stopping the instant any one redex fires so
// the next pass always starts from a consistent tree.
type reducer struct {
	a     *arena
	steps int
}

func newReducer(a *arena) *reducer {
	return &reducer{a: a}
}

// Run reduces root to normal form and reports it as a Value. It returns
// ErrBudgetExceeded if the step budget is exhausted, or ErrStuckTerm if
// a pass completes without any rule firing while root still isn't a
// value — termination option (b): a non-reducible non-value term is an
// error rather than being reported as-is.
func (r *reducer) Run(root Handle) (Value, error) {
	for {
		if r.steps >= maxSteps {
			return Value{}, &Error{Kind: ErrBudgetExceeded}
		}
		r.steps++

		updated := false
		if err := r.step(root, &updated, make(map[Handle]bool)); err != nil {
			return Value{}, err
		}
		if !updated {
			break
		}
	}
	return r.toValue(root)
}

func (r *reducer) toValue(h Handle) (Value, error) {
	n := r.a.get(h)
	if v, ok := literalValue(n); ok {
		return v, nil
	}
	return Value{}, &Error{Kind: ErrStuckTerm}
}

func literalValue(n *node) (Value, bool) {
	switch n.kind {
	case nBool:
		return Value{Kind: KindBool, Bool: n.bval}, true
	case nInt:
		return Value{Kind: KindInt, Int: n.ival}, true
	case nStr:
		return Value{Kind: KindStr, Str: n.sval}, true
	default:
		return Value{}, false
	}
}

func writeLiteral(n *node, v Value) {
	switch v.Kind {
	case KindBool:
		n.kind, n.bval = nBool, v.Bool
	case KindInt:
		n.kind, n.ival = nInt, v.Int
	case KindStr:
		n.kind, n.sval = nStr, v.Str
	}
}

// isHeadNormal reports whether a node of this kind can never reduce
// further on its own account. Bool/Int/Str are literals; Lam is a
// constructor that only reduces when applied, so an operator that
// demands a primitive operand and instead finds a Lam has its answer
// immediately, without descending into the lambda's body.
func isHeadNormal(k nodeKind) bool {
	return k == nBool || k == nInt || k == nStr || k == nLam
}

// extract chases a (possibly empty) chain of Thunk indirections
// starting at h, compressing the chain as it goes so that repeated
// visits to the same Thunk never re-walk it. It returns the first
// handle in the chain that is not itself a Thunk.
func (r *reducer) extract(h Handle) Handle {
	n := r.a.get(h)
	if n.kind != nThunk {
		return h
	}
	target := r.extract(n.child)
	n.child = target
	return target
}

// step looks for one reducible redex reachable from h and, if it finds
// one, rewrites the node at that redex's own handle in place and sets
// *updated. visited guards against revisiting the same handle twice
// within a single pass; once sharing makes the term a DAG rather than
// a tree, one handle can be reached through more than one Thunk.
func (r *reducer) step(h Handle, updated *bool, visited map[Handle]bool) error {
	if visited[h] {
		return nil
	}
	visited[h] = true

	n := r.a.get(h)
	switch n.kind {
	case nBool, nInt, nStr, nVar, nLam:
		return nil

	case nThunk:
		target := r.extract(h)
		tn := r.a.get(target)
		if v, ok := literalValue(tn); ok {
			writeLiteral(n, v)
			*updated = true
			return nil
		}
		if !*updated {
			return r.step(target, updated, visited)
		}
		return nil

	case nUn:
		return r.stepUnary(h, n, updated, visited)

	case nBin:
		if n.bop == opApply {
			return r.stepApply(h, n, updated, visited)
		}
		return r.stepBinary(h, n, updated, visited)

	case nIf:
		return r.stepIf(h, n, updated, visited)

	default:
		return nil
	}
}

func (r *reducer) stepUnary(h Handle, n *node, updated *bool, visited map[Handle]bool) error {
	childH := r.extract(n.child)
	cn := r.a.get(childH)

	if isHeadNormal(cn.kind) {
		v, ok := literalValue(cn)
		if !ok {
			return typeMismatch(unaryOps[n.uop].symbol, "primitive", "function")
		}
		res, err := unaryOps[n.uop].eval(v)
		if err != nil {
			return err
		}
		// n may be stale after eval (no allocation occurs in eval, but
		// re-fetch defensively since h is the only handle we trust).
		n = r.a.get(h)
		writeLiteral(n, res)
		*updated = true
		return nil
	}
	if !*updated {
		return r.step(childH, updated, visited)
	}
	return nil
}

func (r *reducer) stepBinary(h Handle, n *node, updated *bool, visited map[Handle]bool) error {
	lh := r.extract(n.first)
	ln := r.a.get(lh)
	if !isHeadNormal(ln.kind) {
		if !*updated {
			return r.step(lh, updated, visited)
		}
		return nil
	}
	lv, lok := literalValue(ln)
	if !lok {
		return typeMismatch(binaryOps[n.bop].symbol, "primitive", "function")
	}

	rh := r.extract(n.second)
	rn := r.a.get(rh)
	if !isHeadNormal(rn.kind) {
		if !*updated {
			return r.step(rh, updated, visited)
		}
		return nil
	}
	rv, rok := literalValue(rn)
	if !rok {
		return typeMismatch(binaryOps[n.bop].symbol, "primitive", "function")
	}

	res, err := binaryOps[n.bop].eval(lv, rv)
	if err != nil {
		return err
	}
	n = r.a.get(h)
	writeLiteral(n, res)
	*updated = true
	return nil
}

// stepApply is beta reduction, rule 5: once f reduces to a Lam, its
// body is shallow-cloned — any nested Lam the clone passes through
// gets a fresh bound identifier, so a second application of the same
// outer Lam can't collide with this one — the clone's free occurrences
// of the consumed Lam's own bound identifier are substituted with a
// Thunk over the unevaluated argument handle directly, not a copy of
// it, so every occurrence of the parameter shares one evaluation of the
// argument, and the Apply node itself is overwritten with the cloned
// body's content, keeping its handle stable for anything that already
// points at it.
func (r *reducer) stepApply(h Handle, n *node, updated *bool, visited map[Handle]bool) error {
	fh := r.extract(n.first)
	fn := r.a.get(fh)

	if fn.kind == nLam {
		arg := n.second
		lamID := fn.id
		body := fn.child

		clone := r.a.shallowClone(body)
		substitute(r.a, clone, lamID, arg)

		n = r.a.get(h)
		*n = *r.a.get(clone)
		*updated = true
		return nil
	}

	if isHeadNormal(fn.kind) {
		return typeMismatch("B$", "function", kindName(literalKind(fn)))
	}
	if !*updated {
		return r.step(fh, updated, visited)
	}
	return nil
}

func literalKind(n *node) Kind {
	switch n.kind {
	case nBool:
		return KindBool
	case nInt:
		return KindInt
	default:
		return KindStr
	}
}

func (r *reducer) stepIf(h Handle, n *node, updated *bool, visited map[Handle]bool) error {
	ph := r.extract(n.first)
	pn := r.a.get(ph)
	if !isHeadNormal(pn.kind) {
		if !*updated {
			return r.step(ph, updated, visited)
		}
		return nil
	}
	if pn.kind != nBool {
		return &Error{Kind: ErrIfPredicateNotBool}
	}

	var branchH Handle
	if pn.bval {
		branchH = r.extract(n.second)
	} else {
		branchH = r.extract(n.third)
	}
	branch := r.a.get(branchH)

	n = r.a.get(h)
	*n = *branch
	*updated = true
	return nil
}
