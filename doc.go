// Package gacalldiff is the root of a generalized-arc-consistency (GAC)
// filtering implementation for the AllDifferent constraint.
//
// What is gac-alldiff?
//
//	A small, dependency-light constraint-propagation toolkit built around:
//		• Backtrack environment: trail.Trail, a LIFO undo stack addressable by mark
//		• Integer-domain variables: ipdomain.Variable / ipdomain.IntVar
//		• Bipartite matching: matching.Matching between variables and values
//		• Decremental tracking lists: tracklist.List, used both as the
//		  variable universe and as the unvisited-values working set
//		• The propagator itself: alldiff.Propagator, which repairs a
//		  maximum matching via BFS-based augmenting paths and prunes every
//		  variable-value pair that crosses a strongly connected component
//		  boundary of the residual graph, found via a Tarjan-style DFS
//
// Everything is organized under its own subpackage:
//
//	trail/     — backtrack environment (undo stack)
//	ipdomain/  — integer-domain Variable interface + bitset-backed IntVar
//	matching/  — bipartite matching between two integer vertex intervals
//	tracklist/ — decremental, backtrack-aware doubly linked list
//	alldiff/   — the bimodal (classic/complement) GAC propagator
//	cmd/gacdiff — a minimal CLI driver exercising the propagator end to end
//
// None of this plugs into a specific solver: a real integration supplies
// its own trail.Environment and ipdomain.Variable implementations and
// drives alldiff.Propagator.Propagate from its own fixpoint loop.
package gacalldiff
