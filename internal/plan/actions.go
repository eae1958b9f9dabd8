package plan

import (
	"fmt"
	"strings"

	"github.com/flavoris/genomancer/internal/digest"
	"github.com/flavoris/genomancer/internal/enzyme"
)

// action pairs a candidate step with the constructs it would produce
type action struct {
	step    Step
	outputs []Construct
}

// actions enumerates every candidate step from the current construct set,
// digests before ligations, in a deterministic order
func (p *Planner) actions(constructs []Construct) []action {
	acts := p.digestActions(constructs)
	return append(acts, p.ligationActions(constructs)...)
}

// digestActions proposes single and double digests of each construct.
// Digests that don't fragment, or that cut inside protected features, are
// dropped
func (p *Planner) digestActions(constructs []Construct) []action {
	var acts []action

	for _, c := range constructs {
		if len(c.Seq) < p.cfg.Planner.MinConstructLen {
			continue
		}

		singles := p.enzymes
		if len(singles) > p.cfg.Planner.SingleEnzymes {
			singles = singles[:p.cfg.Planner.SingleEnzymes]
		}
		for _, e := range singles {
			if act, ok := p.digestAction(c, []enzyme.Enzyme{e}, p.cfg.Planner.DigestCost); ok {
				acts = append(acts, act)
			}
		}

		// double digests cut two distinct ends for directional cloning
		pairs := p.enzymes
		if len(pairs) > p.cfg.Planner.PairEnzymes {
			pairs = pairs[:p.cfg.Planner.PairEnzymes]
		}
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				if act, ok := p.digestAction(c, []enzyme.Enzyme{pairs[i], pairs[j]}, p.cfg.Planner.DoubleDigestCost); ok {
					acts = append(acts, act)
				}
			}
		}
	}

	if len(acts) > p.cfg.Planner.MaxDigestActions {
		acts = acts[:p.cfg.Planner.MaxDigestActions]
	}

	return acts
}

// digestAction simulates one digest and materializes its fragments as new
// constructs
func (p *Planner) digestAction(c Construct, enzymes []enzyme.Enzyme, cost float64) (action, bool) {
	internal := 0
	if p.avoidInternalCuts {
		for _, e := range enzymes {
			internal += internalCuts(c, e)
		}
		if internal > 0 {
			return action{}, false
		}
	}

	frags, _, err := digest.Digest(c.Seq, c.Circular, enzymes, true)
	if err != nil {
		// engine failure disqualifies the candidate, not the search
		return action{}, false
	}
	if len(frags) <= 1 {
		return action{}, false
	}

	names := make([]string, len(enzymes))
	for i, e := range enzymes {
		names[i] = e.Name
	}

	outputs := make([]Construct, len(frags))
	outNames := make([]string, len(frags))
	preds := make([]FragmentPrediction, len(frags))
	for i, f := range frags {
		name := fmt.Sprintf("%s_frag%d", SanitizeName(c.Name), i)
		outNames[i] = name
		outputs[i] = Construct{
			Name:  name,
			Seq:   f.Seq,
			Left:  f.Left,
			Right: f.Right,
			Notes: "Generated by digest",
			Parts: partsOf(c),
		}

		preds[i] = FragmentPrediction{Length: f.Length}
		if f.Left != nil {
			preds[i].LeftEnzyme = f.Left.Enzyme
		}
		if f.Right != nil {
			preds[i].RightEnzyme = f.Right.Enzyme
		}
	}

	step := Step{
		Name:   fmt.Sprintf("Digest_%s_with_%s", c.Name, strings.Join(names, "+")),
		Action: ActionDigest,
		Inputs: []string{c.Name},
		Params: Params{
			Enzymes:         names,
			Dephosphorylate: c.Circular,
			InternalCuts:    internal,
		},
		Outputs:            outNames,
		PredictedFragments: preds,
		Cost:               cost,
	}

	return action{step: step, outputs: outputs}, true
}

// internalCuts counts an enzyme's cut sites inside the construct's
// protected CDS features
func internalCuts(c Construct, e enzyme.Enzyme) int {
	if len(c.Features) == 0 {
		return 0
	}

	count := 0
	for _, pos := range enzyme.Scan(e, strings.ToUpper(c.Seq), false) {
		for _, f := range c.Features {
			if f.Type != "CDS" {
				continue
			}
			if f.Start <= pos && pos < f.End {
				count++
				break
			}
		}
	}

	return count
}

// ligationActions proposes joining each ordered pair of linear constructs
// with compatible facing ends, plus closing a construct that already
// carries every target part into the final circle
func (p *Planner) ligationActions(constructs []Construct) []action {
	var acts []action

	for i, a := range constructs {
		if act, ok := p.circularizeAction(a); ok {
			acts = append(acts, act)
		}

		for j, b := range constructs {
			if i == j {
				continue
			}
			if act, ok := p.ligateAction(a, b); ok {
				acts = append(acts, act)
			}
		}
	}

	if len(acts) > p.cfg.Planner.MaxLigationActions {
		acts = acts[:p.cfg.Planner.MaxLigationActions]
	}

	return acts
}

// ligateAction joins a's right end to b's left end when they're
// compatible. The product's top strand is the concatenation of the two
// inputs, which restores the junction's scar exactly once. When the
// product carries every target part and its outer ends can also anneal,
// the ligase closes the circle in the same reaction and the product is
// the final construct
func (p *Planner) ligateAction(a, b Construct) (action, bool) {
	if a.Circular || b.Circular {
		// a circle has no free ends
		return action{}, false
	}
	if a.Right == nil || b.Left == nil {
		return action{}, false
	}
	if !digest.Compatible(*a.Right, *b.Left, p.includeBlunt, p.minOverhang) {
		return action{}, false
	}

	parts := mergeParts(partsOf(a), partsOf(b))
	product := Construct{
		Name:  fmt.Sprintf("%s_%s_ligated", SanitizeName(a.Name), SanitizeName(b.Name)),
		Seq:   a.Seq + b.Seq,
		Left:  a.Left,
		Right: b.Right,
		Notes: "Generated by ligate",
		Parts: parts,
	}

	if p.covers(parts) && a.Left != nil && b.Right != nil &&
		digest.Compatible(*b.Right, *a.Left, p.includeBlunt, p.minOverhang) {
		product.Name = p.targetName
		product.Circular = true
		product.Left = nil
		product.Right = nil
	}

	step := Step{
		Name:   fmt.Sprintf("Ligate_%s+%s", a.Name, b.Name),
		Action: ActionLigate,
		Inputs: []string{a.Name, b.Name},
		Params: Params{
			Directional:  digest.Directional(*a.Right),
			Scar:         a.Right.Sticky,
			Circularized: product.Circular,
		},
		Outputs: []string{product.Name},
		Cost:    p.cfg.Planner.LigationCost,
	}

	return action{step: step, outputs: []Construct{product}}, true
}

// circularizeAction closes a linear construct whose own ends are
// compatible. Only proposed for a construct already covering the whole
// target, where it yields the final circle
func (p *Planner) circularizeAction(a Construct) (action, bool) {
	if a.Circular || a.Left == nil || a.Right == nil {
		return action{}, false
	}
	if a.Name == p.targetName || !p.covers(partsOf(a)) {
		return action{}, false
	}
	if !digest.Compatible(*a.Right, *a.Left, p.includeBlunt, p.minOverhang) {
		return action{}, false
	}

	product := Construct{
		Name:     p.targetName,
		Seq:      a.Seq,
		Circular: true,
		Notes:    "Generated by ligate",
		Parts:    partsOf(a),
	}

	step := Step{
		Name:   fmt.Sprintf("Circularize_%s", a.Name),
		Action: ActionLigate,
		Inputs: []string{a.Name},
		Params: Params{
			Directional:  digest.Directional(*a.Right),
			Scar:         a.Right.Sticky,
			Circularized: true,
		},
		Outputs: []string{product.Name},
		Cost:    p.cfg.Planner.LigationCost,
	}

	return action{step: step, outputs: []Construct{product}}, true
}
