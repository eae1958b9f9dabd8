package plan

import (
	"container/heap"
	"math"
)

// searchState is one node of the search: the constructs on the bench, the
// steps that produced them, and the accumulated and estimated costs
type searchState struct {
	constructs []Construct
	steps      []Step

	// g is the cost spent so far, h the heuristic estimate of the rest
	g float64
	h float64

	// sig identifies the construct set, for dedup and tie-breaking
	sig string
}

// stateQueue is a priority queue of states ordered by g+h, ties broken by
// signature so the expansion order is total and reproducible
type stateQueue []searchState

func (q stateQueue) Len() int { return len(q) }

func (q stateQueue) Less(i, j int) bool {
	fi, fj := q[i].g+q[i].h, q[j].g+q[j].h
	if fi != fj {
		return fi < fj
	}
	return q[i].sig < q[j].sig
}

func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stateQueue) Push(x any) { *q = append(*q, x.(searchState)) }

func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	*q = old[:n-1]
	return s
}

// search runs a beam limited best-first search from the starting
// constructs until the target appears or the frontier is exhausted
func (p *Planner) search(initial []Construct) Plan {
	frontier := &stateQueue{{
		constructs: initial,
		h:          p.heuristic(initial),
		sig:        signature(initial),
	}}
	heap.Init(frontier)

	// states already expanded, keyed by construct-set signature so two
	// paths reaching the same bench contents collapse into one node
	visited := make(map[string]bool)

	var best *searchState

	for frontier.Len() > 0 {
		beam := make([]searchState, 0, p.cfg.Planner.BeamWidth)
		for len(beam) < p.cfg.Planner.BeamWidth && frontier.Len() > 0 {
			beam = append(beam, heap.Pop(frontier).(searchState))
		}

		for _, state := range beam {
			if visited[state.sig] {
				continue
			}
			visited[state.sig] = true

			if p.findTarget(state.constructs) != nil {
				if best == nil || state.g < best.g {
					found := state
					best = &found
				}
				continue
			}

			if len(state.steps) >= p.cfg.Planner.MaxSteps {
				continue
			}

			for _, act := range p.actions(state.constructs) {
				heap.Push(frontier, p.apply(state, act))
			}
		}
	}

	if best == nil {
		return Plan{
			Score:    math.Inf(1),
			Feasible: false,
			Reason:   "No feasible plan found within max_steps",
		}
	}

	plan := Plan{
		Steps:    best.steps,
		Final:    p.findTarget(best.constructs),
		Feasible: true,
	}
	plan.Score = p.Score(plan)

	return plan
}

// apply produces the successor state of an action: inputs leave the bench,
// outputs join it
func (p *Planner) apply(state searchState, act action) searchState {
	consumed := make(map[string]bool)
	for _, name := range act.step.Inputs {
		consumed[name] = true
	}

	next := make([]Construct, 0, len(state.constructs)+len(act.outputs))
	for _, c := range state.constructs {
		if !consumed[c.Name] {
			next = append(next, c)
		}
	}
	next = append(next, act.outputs...)

	steps := make([]Step, 0, len(state.steps)+1)
	steps = append(steps, state.steps...)
	steps = append(steps, act.step)

	return searchState{
		constructs: next,
		steps:      steps,
		g:          state.g + act.step.Cost,
		h:          p.heuristic(next),
		sig:        signature(next),
	}
}

// findTarget returns the target construct if it's on the bench
func (p *Planner) findTarget(constructs []Construct) *Construct {
	for i := range constructs {
		if constructs[i].Name == p.targetName {
			return &constructs[i]
		}
	}

	return nil
}
