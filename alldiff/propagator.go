// Package alldiff implements the bimodal GAC filtering propagator for
// the AllDifferent constraint: it repairs a maximum bipartite matching
// between variables and values via BFS-based augmenting paths, then
// prunes every variable→value edge that crosses a strongly connected
// component boundary of the residual graph, found via a Tarjan-style
// DFS. Both traversals adaptively choose, per variable, between
// iterating the variable's domain and iterating the tracking list of
// unvisited values, per the selected Mode.
package alldiff

import (
	"errors"

	"github.com/katalvlaran/gac-alldiff/ipdomain"
	"github.com/katalvlaran/gac-alldiff/matching"
	"github.com/katalvlaran/gac-alldiff/tracklist"
	"github.com/katalvlaran/gac-alldiff/trail"
)

// Propagator holds all state for one AllDifferent constraint instance.
// It is constructed once and its Propagate method invoked repeatedly by
// the outer fixpoint loop (out of scope for this module — a real solver
// owns that loop and decides when to call Propagate).
type Propagator struct {
	vars  []ipdomain.Variable
	cause ipdomain.Cause
	env   trail.Environment
	mode  Mode

	r        int // number of variables
	minValue int
	maxValue int
	d        int // maxValue - minValue + 1

	variablesDynamic *tracklist.List // universe [0,r-1]
	valuesDynamic    *tracklist.List // universe [minValue,maxValue]
	complementSCC    *tracklist.List // universe [minValue,maxValue]

	m    *matching.Matching
	fail int // sentinel signifying "no augmenting path found"

	parentBFS []int // parentBFS[val-minValue] -> variable
	queueBFS  []int // BFS queue of variable indices
	headBFS   int
	tailBFS   int

	tNode       int // artificial residual-graph sink, minValue-1
	tarjanStack []int
	topTarjan   int
	inStack     []bool
	pre         []int
	low         []int
	numVisit    int
	firstSCC    bool

	propInstDependant bool // see WithPropInstDependant; default false
	pruned            bool
}

// Option configures a Propagator at construction.
type Option func(*Propagator)

// WithPropInstDependant controls whether already-instantiated variables
// are stripped from the tracking-list universes at the *opening* of a
// propagation call (true) rather than only at closing (false, the
// default). Only meaningful when a separate instantiation-propagator
// runs before this one in the same fixpoint loop.
func WithPropInstDependant(b bool) Option {
	return func(p *Propagator) { p.propInstDependant = b }
}

// New constructs a Propagator over vars, tagging every narrowing
// operation it performs with cause, and registering every universe
// mutation with env so it backtracks correctly.
func New(vars []ipdomain.Variable, cause ipdomain.Cause, mode Mode, env trail.Environment, opts ...Option) (*Propagator, error) {
	if len(vars) == 0 {
		return nil, errors.New("alldiff: New requires at least one variable")
	}

	r := len(vars)
	minValue, maxValue := vars[0].LB(), vars[0].UB()
	for _, v := range vars {
		if v.LB() < minValue {
			minValue = v.LB()
		}
		if v.UB() > maxValue {
			maxValue = v.UB()
		}
	}
	d := maxValue - minValue + 1

	p := &Propagator{
		vars:             vars,
		cause:            cause,
		env:              env,
		mode:             mode,
		r:                r,
		minValue:         minValue,
		maxValue:         maxValue,
		d:                d,
		variablesDynamic: tracklist.New(0, r-1),
		valuesDynamic:    tracklist.New(minValue, maxValue),
		complementSCC:    tracklist.New(minValue, maxValue),
		m:                matching.New(0, r-1, minValue, maxValue),
		fail:             minValue - 1,
		parentBFS:        make([]int, d),
		queueBFS:         make([]int, r),
		tNode:            minValue - 1,
		tarjanStack:      make([]int, d),
		inStack:          make([]bool, d),
		pre:              make([]int, d),
		low:              make([]int, d),
	}

	// Refine the value universes by removing values that are present in
	// no variable's domain — the tracking list starts as a contiguous
	// interval, but domains may have holes. This happens once at
	// construction, before any search decision, so no backtrack
	// registration is needed.
	refineUniverse(vars, p.valuesDynamic, minValue, maxValue)
	refineUniverse(vars, p.complementSCC, minValue, maxValue)

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func refineUniverse(vars []ipdomain.Variable, universe *tracklist.List, minValue, maxValue int) {
	for value := minValue; value <= maxValue; value++ {
		present := false
		for _, v := range vars {
			if v.Contains(value) {
				present = true
				break
			}
		}
		if !present {
			universe.RemoveFromUniverse(value)
		}
	}
}

// Propagate runs one full filtering pass: matching repair, then
// SCC-based pruning. It returns whether any domain actually changed, and
// an error (always a *ipdomain.Contradiction) if the constraint is
// infeasible or a narrowing operation emptied a domain.
func (p *Propagator) Propagate() (bool, error) {
	p.pruned = false

	p.updateDynamicStructuresOpening()

	if !p.findMaximumMatching() {
		return false, &ipdomain.Contradiction{
			VarIndex: p.vars[0].Index(),
			Cause:    p.cause,
			Reason:   "no augmenting path exists: AllDifferent is infeasible",
		}
	}

	if err := p.filter(); err != nil {
		return p.pruned, err
	}
	p.updateDynamicStructuresEnding()

	return p.pruned, nil
}

// Mode reports the propagator's configured adaptive-iteration mode.
func (p *Propagator) Mode() Mode { return p.mode }

// mustSetMatch and mustUnMatch wrap the matching package's precondition-
// checked operations. A PreconditionError here is, by construction, an
// internal invariant violation rather than a user-facing condition (spec
// §7 item 2 / DESIGN.md): the call sequences below never violate
// Matching's preconditions on a correct propagator, so surfacing the
// error as an ordinary return would mislabel a programming bug as a
// recoverable contradiction.
func (p *Propagator) mustSetMatch(u, v int) {
	if err := p.m.SetMatch(u, v); err != nil {
		panic(err)
	}
}

func (p *Propagator) mustUnMatch(u, v int) {
	if err := p.m.UnMatch(u, v); err != nil {
		panic(err)
	}
}
