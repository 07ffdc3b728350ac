package alldiff

import (
	"fmt"

	"github.com/katalvlaran/gac-alldiff/ipdomain"
)

// updateDynamicStructuresOpening synchronizes the matching and the
// tracking lists with any domain changes made since the previous call —
// by search decisions, by other propagators, or by this propagator's own
// previous pass — before a new matching/filtering pass begins.
//
// When propInstDependant is set (WithPropInstDependant), already-
// instantiated variables and their values are additionally stripped from
// the universes here rather than only at closing.
func (p *Propagator) updateDynamicStructuresOpening() {
	v := p.variablesDynamic.Source()
	for p.variablesDynamic.HasNext(v) {
		v = p.variablesDynamic.GetNext(v)

		if p.vars[v].IsInstantiated() {
			val, _ := p.vars[v].Value()

			if p.propInstDependant {
				p.variablesDynamic.RemoveFromUniverseTracked(v, p.env)

				if p.valuesDynamic.IsPresent(val) {
					p.valuesDynamic.RemoveFromUniverseTracked(val, p.env)
					p.complementSCC.RemoveFromUniverseTracked(val, p.env)
				}
			}

			if p.m.InMatchingU(v) {
				p.mustUnMatch(v, p.m.MatchOfU(v))
			}
			if p.m.InMatchingV(val) {
				p.mustUnMatch(p.m.MatchOfV(val), val)
			}
			p.mustSetMatch(v, val)
		} else if p.m.InMatchingU(v) && !p.vars[v].Contains(p.m.MatchOfU(v)) {
			p.mustUnMatch(v, p.m.MatchOfU(v))
		}
	}
}

// updateDynamicStructuresEnding removes from the value universes every
// value visited by no variable this pass (they can never again be
// relevant), and removes every instantiated variable still in
// variablesDynamic from the variable universe and its value from both
// value universes, readying the structures for the next call.
func (p *Propagator) updateDynamicStructuresEnding() {
	val := p.valuesDynamic.Source()
	for p.valuesDynamic.HasNext(val) {
		val = p.valuesDynamic.GetNext(val)
		// Reuse tarjanStack as scratch space: filter always leaves it
		// empty (prune drains it to zero), so there is nothing to clobber.
		p.tarjanStack[p.topTarjan] = val
		p.topTarjan++
	}

	p.valuesDynamic.Refill()
	p.complementSCC.Refill()

	for p.topTarjan != 0 {
		p.valuesDynamic.RemoveFromUniverseTracked(p.tarjanStack[p.topTarjan-1], p.env)
		p.complementSCC.RemoveFromUniverseTracked(p.tarjanStack[p.topTarjan-1], p.env)
		p.topTarjan--
	}

	v := p.variablesDynamic.Source()
	for p.variablesDynamic.HasNext(v) {
		v = p.variablesDynamic.GetNext(v)
		if p.vars[v].IsInstantiated() {
			p.variablesDynamic.RemoveFromUniverseTracked(v, p.env)
			val, _ := p.vars[v].Value()
			p.valuesDynamic.RemoveFromUniverseTracked(val, p.env)
			p.complementSCC.RemoveFromUniverseTracked(val, p.env)
		}
	}
}

// CheckInstantiated is a cheap, matching-free check that two already-
// instantiated variables never share a value. Intended to run ahead of
// Propagator.Propagate in the same fixpoint loop, since it detects the
// simplest form of infeasibility far more cheaply than a full matching
// search.
func CheckInstantiated(vars []ipdomain.Variable, cause ipdomain.Cause) error {
	seen := make(map[int]int, len(vars))
	for _, v := range vars {
		val, ok := v.Value()
		if !ok {
			continue
		}
		if other, dup := seen[val]; dup {
			return &ipdomain.Contradiction{
				VarIndex: v.Index(),
				Cause:    cause,
				Reason:   fmt.Sprintf("variables %d and %d are both instantiated to %d", other, v.Index(), val),
			}
		}
		seen[val] = v.Index()
	}
	return nil
}
