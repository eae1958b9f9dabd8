package plan

import (
	"fmt"
	"math"

	"github.com/flavoris/genomancer/config"
	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/flavoris/genomancer/internal/seq"
)

// defaultMinOverhang is the planner's floor for sticky ligations when the
// spec doesn't set one. Shorter overhangs anneal too poorly to clone with
const defaultMinOverhang = 4

// Planner searches for cloning plans assembling a spec's target from its
// vector and inserts, using the enzymes of a database
type Planner struct {
	spec *CloningSpec
	cfg  config.Config

	targetName         string
	avoidInternalCuts  bool
	includeBlunt       bool
	minOverhang        int
	requireDirectional bool
	preferTypeIIS      bool

	// enzymes allowed by the spec's constraints, in database order
	enzymes []enzyme.Enzyme
}

// NewPlanner prepares a search over the spec's constraints with the
// database's enzymes
func NewPlanner(spec *CloningSpec, db *enzyme.DB, cfg config.Config) *Planner {
	p := &Planner{
		spec:               spec,
		cfg:                cfg,
		targetName:         spec.Target.Name,
		avoidInternalCuts:  true,
		includeBlunt:       cfg.Ligation.IncludeBlunt,
		minOverhang:        spec.Constraints.MinOverhang,
		requireDirectional: spec.Constraints.RequireDirectional,
		preferTypeIIS:      spec.Constraints.PreferTypeIIS,
	}

	if p.targetName == "" {
		p.targetName = "final"
	}
	if avoid := spec.Constraints.AvoidInternalCuts; avoid != nil {
		p.avoidInternalCuts = *avoid
	}
	if p.minOverhang <= 0 {
		p.minOverhang = defaultMinOverhang
	}

	avoid := make(map[string]bool)
	for _, name := range spec.Constraints.AvoidEnzymes {
		avoid[name] = true
	}

	names := db.Names()
	if len(spec.Constraints.AllowEnzymes) > 0 {
		names = spec.Constraints.AllowEnzymes
	}
	for _, name := range names {
		if avoid[name] {
			continue
		}
		e, err := db.Lookup(name)
		if err != nil {
			continue
		}
		p.enzymes = append(p.enzymes, e)
	}

	return p
}

// Plan searches for the lowest cost sequence of steps that assembles the
// target. An unreachable target comes back as an infeasible plan with a
// reason, never an error
func (p *Planner) Plan() Plan {
	constructs, err := p.startingConstructs()
	if err != nil {
		return Plan{Score: math.Inf(1), Feasible: false, Reason: err.Error()}
	}

	return p.search(constructs)
}

// startingConstructs loads the vector and insert sequences named by the
// spec. Fasta fields accept file paths or raw sequences
func (p *Planner) startingConstructs() ([]Construct, error) {
	vec, err := seq.Read(p.spec.Vector.Fasta)
	if err != nil {
		return nil, fmt.Errorf("could not read vector: %v", err)
	}

	// vectors are circular unless the spec says otherwise
	circular := true
	if p.spec.Vector.Circular != nil {
		circular = *p.spec.Vector.Circular
	}

	constructs := []Construct{{
		Name:     p.spec.Vector.Name,
		Seq:      vec.Seq,
		Circular: circular,
		Features: normalizeFeatures(p.spec.Vector.Features),
		Notes:    "Vector",
		Parts:    []string{p.spec.Vector.Name},
	}}

	for _, ins := range p.spec.Inserts {
		rec, err := seq.Read(ins.Fasta)
		if err != nil {
			return nil, fmt.Errorf("could not read insert %s: %v", ins.Name, err)
		}

		circular := false
		if ins.Circular != nil {
			circular = *ins.Circular
		}

		constructs = append(constructs, Construct{
			Name:     ins.Name,
			Seq:      rec.Seq,
			Circular: circular,
			Features: normalizeFeatures(ins.Features),
			Notes:    "Insert",
			Parts:    []string{ins.Name},
		})
	}

	return constructs, nil
}

// covers reports whether a provenance set includes every part of the
// target order
func (p *Planner) covers(parts []string) bool {
	have := make(map[string]bool)
	for _, name := range parts {
		have[name] = true
	}
	for _, name := range p.spec.Target.Order {
		if !have[name] {
			return false
		}
	}

	return true
}
