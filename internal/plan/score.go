package plan

// heuristic estimates the remaining cost of a bench: one step per target
// part with no construct carrying it yet, half a step per junction still
// to form
func (p *Planner) heuristic(constructs []Construct) float64 {
	available := make(map[string]bool)
	for _, c := range constructs {
		for _, part := range partsOf(c) {
			available[part] = true
		}
	}

	missing := 0
	for _, part := range p.spec.Target.Order {
		if !available[part] {
			missing++
		}
	}

	h := float64(missing)
	h += 0.5 * float64(len(p.spec.Target.Junctions))
	if p.avoidInternalCuts {
		h += 0.1
	}

	return h
}

// Score ranks a finished plan with the configured weights. Lower is
// better
func (p *Planner) Score(plan Plan) float64 {
	w := p.cfg.Scoring

	score := w.StepWeight * float64(len(plan.Steps))

	// every distinct enzyme is a reagent, and each one past the first
	// likely means a buffer switch
	distinct := make(map[string]bool)
	digestUses := make(map[string]int)
	for _, s := range plan.Steps {
		switch s.Action {
		case ActionDigest:
			for _, name := range s.Params.Enzymes {
				distinct[name] = true
				digestUses[name]++
			}
		case ActionGoldenGate:
			if s.Params.Enzyme != "" {
				distinct[s.Params.Enzyme] = true
			}
		}
	}
	score += w.EnzymeWeight * float64(len(distinct))
	if len(distinct) > 1 {
		score += w.ExtraEnzymeWeight * float64(len(distinct)-1)
	}

	for _, s := range plan.Steps {
		score += w.InternalCutWeight * float64(s.Params.InternalCuts)

		switch s.Action {
		case ActionLigate:
			if p.requireDirectional && !s.Params.Directional {
				score += w.NonDirectionalWeight
			}
			score += w.ScarWeight * float64(len(s.Params.Scar))
		case ActionGoldenGate:
			score += w.ScarWeight * float64(len(s.Params.Scar))
			if p.preferTypeIIS {
				score -= w.GoldenGateBonus
			}
		}
	}

	// digesting with an enzyme already in the pot costs nothing new
	for _, count := range digestUses {
		if count > 1 {
			score -= w.ReuseBonus * float64(count-1)
		}
	}

	return score
}
