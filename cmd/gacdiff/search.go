package main

import (
	"log"

	"github.com/katalvlaran/gac-alldiff/alldiff"
	"github.com/katalvlaran/gac-alldiff/ipdomain"
	"github.com/katalvlaran/gac-alldiff/trail"
)

// solve runs a minimal chronological-backtracking search: pick the
// first uninstantiated variable, try each of its current domain values
// in turn, re-running CheckInstantiated and the propagator after each
// trial instantiation, and backtrack via the trail on contradiction.
//
// This is deliberately not a real solver (no variable/value ordering
// heuristics, no nogood learning, no restarts) — its only job is driving
// alldiff.Propagator through a search tree so the CLI can report
// SAT/UNSAT on a whole problem instance, not just a single filtering
// pass.
func solve(vars []ipdomain.Variable, cause ipdomain.Cause, tr *trail.Trail, prop *alldiff.Propagator, logger *log.Logger, verbose bool) (bool, error) {
	idx := firstUninstantiated(vars)
	if idx < 0 {
		return true, nil
	}
	v := vars[idx]

	var candidates []int
	for val := v.LB(); val <= v.UB(); val = v.NextValue(val) {
		if v.Contains(val) {
			candidates = append(candidates, val)
		}
	}

	for _, val := range candidates {
		mark := tr.Mark()
		if verbose {
			logger.Printf("try x%d = %d", idx, val)
		}

		if _, err := v.InstantiateTo(val, cause); err == nil {
			if err := alldiff.CheckInstantiated(vars, cause); err == nil {
				if _, err := prop.Propagate(); err == nil {
					if ok, err := solve(vars, cause, tr, prop, logger, verbose); err != nil {
						return false, err
					} else if ok {
						return true, nil
					}
				}
			}
		}

		tr.UndoTo(mark)
	}

	return false, nil
}

func firstUninstantiated(vars []ipdomain.Variable) int {
	for i, v := range vars {
		if !v.IsInstantiated() {
			return i
		}
	}
	return -1
}
