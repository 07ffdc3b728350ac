package ipdomain

import "github.com/katalvlaran/gac-alldiff/trail"

// IntVar is a bitset-backed Variable over a fixed universe [lo0,hi0],
// registering an undo closure with a trail.Environment on every
// narrowing mutation so it backtracks correctly alongside the
// propagator's own tracking lists.
type IntVar struct {
	index int
	lo0   int // universe lower bound, fixed at construction
	bits  *bitset
	lb    int
	ub    int
	size  int
	env   trail.Environment
}

// NewIntVar creates a variable at the given index with initial domain
// [lo,hi] (inclusive, contiguous) over trail env.
func NewIntVar(index, lo, hi int, env trail.Environment) *IntVar {
	if hi < lo {
		panic("ipdomain: NewIntVar requires lo <= hi")
	}
	n := hi - lo + 1
	v := &IntVar{
		index: index,
		lo0:   lo,
		bits:  newBitset(n, true),
		lb:    lo,
		ub:    hi,
		size:  n,
		env:   env,
	}
	return v
}

// NewIntVarFromValues creates a variable whose initial domain is exactly
// the given (unsorted, deduplicated by construction) set of values.
func NewIntVarFromValues(index int, values []int, env trail.Environment) *IntVar {
	if len(values) == 0 {
		panic("ipdomain: NewIntVarFromValues requires a non-empty value set")
	}
	lo, hi := values[0], values[0]
	for _, val := range values {
		if val < lo {
			lo = val
		}
		if val > hi {
			hi = val
		}
	}
	v := &IntVar{
		index: index,
		lo0:   lo,
		bits:  newBitset(hi-lo+1, false),
		env:   env,
	}
	for _, val := range values {
		v.bits.set(val - lo)
	}
	v.lb = lo + v.bits.firstSet()
	v.ub = lo + v.bits.lastSet()
	v.size = v.bits.count()
	return v
}

func (v *IntVar) Index() int { return v.index }
func (v *IntVar) LB() int    { return v.lb }
func (v *IntVar) UB() int    { return v.ub }

func (v *IntVar) DomainSize() int { return v.size }

func (v *IntVar) Contains(val int) bool {
	if val < v.lo0 || val-v.lo0 >= v.bits.n {
		return false
	}
	return v.bits.test(val - v.lo0)
}

func (v *IntVar) NextValue(val int) int {
	idx := val - v.lo0
	next := v.bits.nextSet(idx)
	if next < 0 {
		return v.ub + 1
	}
	return next + v.lo0
}

func (v *IntVar) IsInstantiated() bool { return v.size == 1 }

func (v *IntVar) Value() (int, bool) {
	if v.size != 1 {
		return 0, false
	}
	return v.lb, true
}

// snapshot captures enough state to undo any mutation below.
type intVarSnapshot struct {
	bits *bitset
	lb   int
	ub   int
	size int
}

func (v *IntVar) snapshot() intVarSnapshot {
	return intVarSnapshot{bits: v.bits.clone(), lb: v.lb, ub: v.ub, size: v.size}
}

func (v *IntVar) restore(s intVarSnapshot) {
	v.bits = s.bits
	v.lb = s.lb
	v.ub = s.ub
	v.size = s.size
}

func (v *IntVar) recomputeBoundsAfterRemoval(removed int) {
	if v.size == 0 {
		return
	}
	if removed == v.lb {
		v.lb = v.lo0 + v.bits.firstSet()
	}
	if removed == v.ub {
		v.ub = v.lo0 + v.bits.lastSet()
	}
}

func (v *IntVar) RemoveValue(val int, cause Cause) (bool, error) {
	if !v.Contains(val) {
		return false, nil
	}
	snap := v.snapshot()
	v.bits.clear(val - v.lo0)
	v.size--
	v.recomputeBoundsAfterRemoval(val)
	v.env.Save(func() { v.restore(snap) })

	if v.size == 0 {
		return true, &Contradiction{VarIndex: v.index, Cause: cause, Reason: "domain emptied by RemoveValue"}
	}
	return true, nil
}

func (v *IntVar) UpdateBounds(lo, hi int, cause Cause) (bool, error) {
	if lo <= v.lb && hi >= v.ub {
		return false, nil
	}
	if lo > hi {
		snap := v.snapshot()
		v.size = 0
		v.env.Save(func() { v.restore(snap) })
		return true, &Contradiction{VarIndex: v.index, Cause: cause, Reason: "UpdateBounds called with lo > hi"}
	}

	snap := v.snapshot()
	changed := false
	for cur := v.bits.firstSet(); cur >= 0; {
		nextCur := v.bits.nextSet(cur)
		val := cur + v.lo0
		if val < lo || val > hi {
			v.bits.clear(cur)
			v.size--
			changed = true
		}
		cur = nextCur
	}
	if changed {
		v.lb = v.lo0 + v.bits.firstSet()
		if v.size > 0 {
			v.ub = v.lo0 + v.bits.lastSet()
		}
		v.env.Save(func() { v.restore(snap) })
	}

	if v.size == 0 {
		return true, &Contradiction{VarIndex: v.index, Cause: cause, Reason: "domain emptied by UpdateBounds"}
	}
	return changed, nil
}

func (v *IntVar) InstantiateTo(val int, cause Cause) (bool, error) {
	if v.size == 1 && v.lb == val {
		return false, nil
	}
	if !v.Contains(val) {
		snap := v.snapshot()
		v.size = 0
		v.env.Save(func() { v.restore(snap) })
		return true, &Contradiction{VarIndex: v.index, Cause: cause, Reason: "InstantiateTo value not in domain"}
	}

	snap := v.snapshot()
	v.bits = newBitset(v.bits.n, false)
	v.bits.set(val - v.lo0)
	v.lb, v.ub, v.size = val, val, 1
	v.env.Save(func() { v.restore(snap) })
	return true, nil
}
