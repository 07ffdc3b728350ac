package alldiff

// findMaximumMatching repairs the current matching into a maximum
// matching by repeatedly searching an augmenting path from every
// currently-unmatched variable in variablesDynamic. It reports whether
// a maximum matching saturating every variable was found; a false
// result means the constraint is infeasible.
func (p *Propagator) findMaximumMatching() bool {
	v := p.variablesDynamic.Source()
	for p.variablesDynamic.HasNext(v) {
		v = p.variablesDynamic.GetNext(v)
		if p.m.InMatchingU(v) {
			continue
		}
		// Refill before each search instead of rebuilding valuesDynamic
		// from scratch: cheap because only the values visited by the
		// previous search were removed.
		p.valuesDynamic.Refill()
		val := p.augmentingPath(v)
		if val == p.fail {
			p.valuesDynamic.Refill()
			return false
		}
		p.augmentMatching(val)
	}
	p.valuesDynamic.Refill()
	return true
}

// augmentingPath runs a BFS from root over the residual graph, adaptively
// choosing per variable between iterating its domain (choiceBFS true) and
// iterating valuesDynamic (choiceBFS false), stopping as soon as an
// unmatched value is reached.
func (p *Propagator) augmentingPath(root int) int {
	p.headBFS = 0
	p.tailBFS = 1
	p.queueBFS[0] = root

	for p.headBFS != p.tailBFS {
		v := p.queueBFS[p.headBFS]
		p.headBFS++

		if p.choiceBFS(v) {
			ub := p.vars[v].UB()
			for val := p.vars[v].LB(); val <= ub; val = p.vars[v].NextValue(val) {
				if p.valuesDynamic.IsPresent(val) && p.stop(v, val) {
					return val
				}
			}
		} else {
			val := p.valuesDynamic.Source()
			for p.valuesDynamic.HasNext(val) {
				val = p.valuesDynamic.GetNext(val)
				if p.vars[v].Contains(val) && p.stop(v, val) {
					return val
				}
			}
		}
	}
	return p.fail
}

// stop records val's BFS parent, then either stops the search (val is
// unmatched: an augmenting path ending at val has been found) or
// continues it (val is matched: push its matched variable onto the BFS
// queue and keep going).
func (p *Propagator) stop(v, val int) bool {
	p.setParent(v, val)
	if p.m.InMatchingV(val) {
		p.valuesDynamic.Remove(val)
		p.queueBFS[p.tailBFS] = p.m.MatchOfV(val)
		p.tailBFS++
		return false
	}
	return true
}

// augmentMatching flips every edge along the augmenting path ending at
// root, walking the BFS parent pointers back to the variable the search
// started from.
func (p *Propagator) augmentMatching(root int) {
	v := root
	for p.m.InMatchingU(p.getParent(v)) {
		vNext := p.m.MatchOfU(p.getParent(v))
		p.mustUnMatch(p.getParent(v), vNext)
		p.mustSetMatch(p.getParent(v), v)
		v = vNext
	}
	p.mustSetMatch(p.getParent(v), v)
}
