package plan

// Step actions
const (
	ActionDigest     = "digest"
	ActionLigate     = "ligate"
	ActionGoldenGate = "golden_gate"
	ActionPCR        = "pcr"
)

// Params carries a step's action specific settings
type Params struct {
	// Enzymes used in a digest
	Enzymes []string `json:"enzymes,omitempty"`

	// Dephosphorylate is set when a digested backbone should be treated
	// with phosphatase to stop it re-ligating to itself
	Dephosphorylate bool `json:"dephosphorylate,omitempty"`

	// InternalCuts inside protected features, kept for scoring
	InternalCuts int `json:"internal_cuts,omitempty"`

	// Directional is whether a ligation enforces insert orientation
	Directional bool `json:"directional,omitempty"`

	// Scar left at a ligation junction
	Scar string `json:"scar,omitempty"`

	// Circularized is set when the ligation closed the product into a circle
	Circularized bool `json:"circularized,omitempty"`

	// Enzyme and Overhangs of a Golden Gate step
	Enzyme    string   `json:"enzyme,omitempty"`
	Overhangs []string `json:"overhangs,omitempty"`
}

// FragmentPrediction is one expected product of a digest step
type FragmentPrediction struct {
	Length      int    `json:"length"`
	LeftEnzyme  string `json:"left_enzyme,omitempty"`
	RightEnzyme string `json:"right_enzyme,omitempty"`
}

// Step is a single lab operation in a plan
type Step struct {
	Name               string               `json:"name"`
	Action             string               `json:"action"`
	Inputs             []string             `json:"inputs"`
	Params             Params               `json:"params"`
	Outputs            []string             `json:"outputs"`
	PredictedFragments []FragmentPrediction `json:"predicted_fragments,omitempty"`
	Cost               float64              `json:"cost"`
}

// Plan is a complete sequence of cloning steps. An infeasible plan has no
// steps and a human readable reason instead
type Plan struct {
	Steps    []Step
	Final    *Construct
	Score    float64
	Feasible bool
	Reason   string
}
