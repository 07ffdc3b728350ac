package alldiff

// filter runs the Tarjan-style DFS from the matched value of every
// variable in variablesDynamic not yet visited, pruning each SCC as it
// is discovered, then pops whatever remains on tarjanStack as the SCC of
// the artificial sink tNode.
// It returns a *ipdomain.Contradiction only if a prune operation empties
// a domain.
func (p *Propagator) filter() error {
	p.numVisit = 1
	p.firstSCC = true

	v := p.variablesDynamic.Source()
	for p.variablesDynamic.HasNext(v) {
		v = p.variablesDynamic.GetNext(v)
		if p.valuesDynamic.IsPresent(p.m.MatchOfU(v)) {
			if err := p.biDFS(v); err != nil {
				return err
			}
		}
	}
	if p.topTarjan != 0 {
		return p.prune(p.tNode)
	}
	return nil
}

// biDFS visits the matched value of v in Tarjan's algorithm, adaptively
// choosing (choiceDFS) between iterating v's domain and iterating
// valuesDynamic/tarjanStack to discover the rest of its SCC.
func (p *Propagator) biDFS(v int) error {
	matched := p.m.MatchOfU(v)
	p.setPre(matched, p.numVisit)
	p.setLow(matched, p.numVisit)
	p.numVisit++
	p.valuesDynamic.Remove(matched)
	p.tarjanStack[p.topTarjan] = matched
	p.topTarjan++
	p.setInStack(matched, true)

	if p.choiceDFS(v) {
		ub := p.vars[v].UB()
		for val := p.vars[v].LB(); val <= ub; val = p.vars[v].NextValue(val) {
			switch {
			case val != matched && p.valuesDynamic.IsPresent(val):
				if err := p.process(v, val); err != nil {
					return err
				}
			case val != matched && p.isInStack(val):
				p.setLow(matched, min(p.getLow(matched), p.getPre(val)))
			}
		}
	} else {
		pointerVar := p.valuesDynamic.GetPrevious(p.vars[v].LB())
		varUB := p.vars[v].UB()

		for p.valuesDynamic.HasNext(pointerVar) && pointerVar < varUB {
			pointerVar = p.valuesDynamic.TrackLeft(pointerVar)
			for p.valuesDynamic.HasNext(pointerVar) && pointerVar < varUB && !p.vars[v].Contains(p.valuesDynamic.GetNext(pointerVar)) {
				pointerVar = p.valuesDynamic.GetNext(pointerVar)
			}
			if p.valuesDynamic.HasNext(pointerVar) && pointerVar < varUB {
				if err := p.process(v, p.valuesDynamic.GetNext(pointerVar)); err != nil {
					return err
				}
				varUB = p.vars[v].UB()
			}
		}

		for index := 0; index < p.topTarjan; index++ {
			val := p.tarjanStack[index]
			if p.vars[v].Contains(val) || p.getPre(val) >= p.getLow(matched) {
				p.setLow(matched, min(p.getLow(matched), p.getPre(val)))
				break
			}
		}
	}

	if p.getPre(matched) == p.getLow(matched) {
		return p.prune(matched)
	}
	return nil
}

// process explores the edge (v,val): if val is matched, it recurses into
// val's matched variable; otherwise val leads to the artificial sink
// tNode and is recorded as such.
func (p *Propagator) process(v, val int) error {
	if p.m.InMatchingV(val) {
		if err := p.biDFS(p.m.MatchOfV(val)); err != nil {
			return err
		}
		matched := p.m.MatchOfU(v)
		p.setLow(matched, min(p.getLow(matched), p.getLow(val)))
	} else {
		p.setPre(val, p.numVisit)
		p.setLow(val, 0)
		p.numVisit++
		p.setLow(p.m.MatchOfU(v), 0)
		p.valuesDynamic.Remove(val)
		p.tarjanStack[p.topTarjan] = val
		p.topTarjan++
		p.setInStack(val, true)
	}
	return nil
}

// prune pops the SCC rooted at root off tarjanStack, instantiates the
// matched variable of a singleton SCC, and, for every SCC except the
// first one discovered in this filter pass (tracked by firstSCC), removes
// from every SCC variable's domain whatever lies outside the SCC's value
// range and whatever lies in complementSCC. The first discovered SCC
// gets no domain restriction beyond the singleton instantiation.
//
// complementSCC is refilled at entry, so it then equals the full value
// universe; popping S removes each of its values, leaving universe-minus-S
// while pruning runs. Only this function touches complementSCC during
// filtering, never biDFS or process.
func (p *Propagator) prune(root int) error {
	p.complementSCC.Refill()

	minValueSCC := p.maxValue
	maxValueSCC := p.minValue

	rootIndex := p.topTarjan
	var val int
	for {
		rootIndex--
		val = p.tarjanStack[rootIndex]
		p.setInStack(val, false)
		p.complementSCC.Remove(val)
		if val < minValueSCC {
			minValueSCC = val
		}
		if val > maxValueSCC {
			maxValueSCC = val
		}
		if val == root || rootIndex == 0 {
			break
		}
	}

	// Singleton SCC: its one value is necessarily matched (otherwise it
	// would share tNode's SCC), so the matched variable can be
	// instantiated directly.
	if p.topTarjan-rootIndex == 1 {
		val = p.tarjanStack[rootIndex]
		v := p.m.MatchOfV(val)
		if p.vars[v].DomainSize() > 1 {
			p.pruned = true
		}
		if _, err := p.vars[v].InstantiateTo(val, p.cause); err != nil {
			return err
		}
	}

	if !p.firstSCC {
		for index := rootIndex; index < p.topTarjan; index++ {
			val = p.tarjanStack[index]
			if !p.m.InMatchingV(val) {
				continue
			}
			v := p.m.MatchOfV(val)

			changed, err := p.vars[v].UpdateBounds(minValueSCC, maxValueSCC, p.cause)
			if err != nil {
				return err
			}
			if changed {
				p.pruned = true
			}

			if p.vars[v].DomainSize() <= 1 {
				continue
			}

			if p.choicePrune(v) {
				ub := p.vars[v].UB()
				for domainValue := p.vars[v].LB(); domainValue <= ub; domainValue = p.vars[v].NextValue(domainValue) {
					if p.complementSCC.IsPresent(domainValue) {
						if _, err := p.vars[v].RemoveValue(domainValue, p.cause); err != nil {
							return err
						}
						p.pruned = true
					}
				}
			} else {
				complementValue := p.complementSCC.Source()
				for p.complementSCC.HasNext(complementValue) {
					complementValue = p.complementSCC.GetNext(complementValue)
					if p.vars[v].Contains(complementValue) {
						if _, err := p.vars[v].RemoveValue(complementValue, p.cause); err != nil {
							return err
						}
						p.pruned = true
					}
				}
			}
		}
	}

	p.firstSCC = false
	p.topTarjan = rootIndex
	return nil
}

