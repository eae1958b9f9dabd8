package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

var bar = strings.Repeat("=", 80)

// Summary renders a plan as a short human readable listing, one block per
// step
func Summary(plan Plan) string {
	if !plan.Feasible {
		return fmt.Sprintf("No feasible plan: %s\n", plan.Reason)
	}

	lines := []string{
		bar,
		"CLONING PLAN",
		bar,
		fmt.Sprintf("Total steps: %d", len(plan.Steps)),
		fmt.Sprintf("Score: %.2f", plan.Score),
		"",
	}

	for i, step := range plan.Steps {
		lines = append(lines,
			fmt.Sprintf("Step %d - %s: %s", i+1, strings.ToUpper(step.Action), step.Name),
			fmt.Sprintf("  Inputs: %s", strings.Join(step.Inputs, ", ")),
			fmt.Sprintf("  Outputs: %s", strings.Join(step.Outputs, ", ")),
		)

		switch step.Action {
		case ActionDigest:
			deP := "NO"
			if step.Params.Dephosphorylate {
				deP = "YES"
			}
			lines = append(lines, fmt.Sprintf("  Enzymes: %s (deP: %s)", strings.Join(step.Params.Enzymes, ", "), deP))

			if len(step.PredictedFragments) > 0 {
				sizes := make([]string, len(step.PredictedFragments))
				for j, f := range step.PredictedFragments {
					sizes[j] = fmt.Sprintf("%d bp", f.Length)
				}
				lines = append(lines, fmt.Sprintf("  Fragments: %s", strings.Join(sizes, ", ")))
			}
		case ActionLigate:
			directional := "NO"
			if step.Params.Directional {
				directional = "YES"
			}
			lines = append(lines, fmt.Sprintf("  Directional: %s", directional))
			if step.Params.Scar != "" {
				lines = append(lines, fmt.Sprintf("  Scar: %s", step.Params.Scar))
			}
		case ActionGoldenGate:
			lines = append(lines, fmt.Sprintf("  Type IIS enzyme: %s", step.Params.Enzyme))
			if len(step.Params.Overhangs) > 0 {
				lines = append(lines, fmt.Sprintf("  Overhangs: %s", strings.Join(step.Params.Overhangs, " -> ")))
			}
		}

		lines = append(lines, "")
	}

	if plan.Final != nil {
		lines = append(lines,
			fmt.Sprintf("Final construct: %s", plan.Final.Name),
			fmt.Sprintf("  Length: %d bp", len(plan.Final.Seq)),
			fmt.Sprintf("  Circular: %t", plan.Final.Circular),
		)
	}

	lines = append(lines, "", bar)

	return strings.Join(lines, "\n")
}

// Protocol renders a plan as a bench protocol with per-step instructions
func Protocol(plan Plan) string {
	lines := []string{bar, "DETAILED CLONING PROTOCOL", bar, ""}

	if !plan.Feasible {
		lines = append(lines, fmt.Sprintf("PLAN NOT FEASIBLE: %s", plan.Reason))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		fmt.Sprintf("Total steps: %d", len(plan.Steps)),
		fmt.Sprintf("Complexity score: %.2f", plan.Score),
		"",
	)

	for i, step := range plan.Steps {
		lines = append(lines,
			bar,
			fmt.Sprintf("STEP %d: %s", i+1, strings.ToUpper(step.Action)),
			bar,
			fmt.Sprintf("Name: %s", step.Name),
			"",
			"Inputs:",
		)
		for _, input := range step.Inputs {
			lines = append(lines, fmt.Sprintf("  - %s", input))
		}
		lines = append(lines, "")

		switch step.Action {
		case ActionDigest:
			lines = append(lines, "Protocol:", "  1. Set up restriction digest:")
			for _, name := range step.Params.Enzymes {
				lines = append(lines, fmt.Sprintf("     - Add %s", name))
			}
			lines = append(lines, "  2. Incubate at 37C for 1-2 hours")
			purify := 3
			if step.Params.Dephosphorylate {
				lines = append(lines,
					"  3. Add Antarctic Phosphatase (dephosphorylation)",
					"  4. Incubate at 37C for 30 minutes",
				)
				purify = 5
			}
			lines = append(lines, fmt.Sprintf("  %d. Purify by gel extraction or column", purify), "")

			if len(step.PredictedFragments) > 0 {
				lines = append(lines, "Expected fragments:")
				for j, f := range step.PredictedFragments {
					lines = append(lines, fmt.Sprintf("  Fragment %d: %d bp", j+1, f.Length))
				}
				lines = append(lines, "")
			}
		case ActionLigate:
			lines = append(lines,
				"Protocol:",
				"  1. Set up ligation reaction:",
				"     - Add vector (50 ng)",
				"     - Add insert (3:1 molar ratio)",
				"     - Add T4 DNA Ligase",
				"  2. Incubate at 16C overnight (or room temp 1 hour)",
				"  3. Transform into competent cells",
				"",
			)

			if step.Params.Directional {
				lines = append(lines, "Directionality: Yes")
			} else {
				lines = append(lines, "Directionality: No (screen colonies)")
			}
			if step.Params.Scar != "" {
				lines = append(lines, fmt.Sprintf("Junction scar: %s", step.Params.Scar))
			}
			lines = append(lines, "")
		case ActionGoldenGate:
			enzymeName := step.Params.Enzyme
			if enzymeName == "" {
				enzymeName = "BsaI"
			}
			lines = append(lines,
				"Protocol (Golden Gate):",
				"  1. Set up one-pot reaction:",
				"     - Add all parts (equimolar, 50 ng each)",
				fmt.Sprintf("     - Add %s", enzymeName),
				"     - Add T4 DNA Ligase",
				"  2. Run thermocycler protocol:",
				"     - 26 cycles: [37C 2 min, 16C 5 min]",
				"     - Final: 50C 5 min, 80C 10 min",
				"  3. Transform into competent cells",
				"",
			)

			if len(step.Params.Overhangs) > 0 {
				lines = append(lines, "Designed overhangs:")
				for j, oh := range step.Params.Overhangs {
					lines = append(lines, fmt.Sprintf("  Junction %d: %s", j+1, oh))
				}
				lines = append(lines, "")
			}
		case ActionPCR:
			lines = append(lines,
				"Protocol:",
				"  1. Set up PCR reaction:",
				"     - Template DNA",
				"     - Forward primer (see below)",
				"     - Reverse primer (see below)",
				"     - High-fidelity polymerase",
				"  2. Run PCR with appropriate conditions",
				"  3. Purify PCR product",
				"",
			)
		}

		lines = append(lines, "Expected outputs:")
		for _, out := range step.Outputs {
			lines = append(lines, fmt.Sprintf("  - %s", out))
		}
		lines = append(lines, "")
	}

	lines = append(lines, bar, "FINAL CONSTRUCT", bar)
	if plan.Final != nil {
		lines = append(lines,
			fmt.Sprintf("Name: %s", plan.Final.Name),
			fmt.Sprintf("Length: %d bp", len(plan.Final.Seq)),
			fmt.Sprintf("Circular: %t", plan.Final.Circular),
			"",
		)
	}
	lines = append(lines, bar)

	return strings.Join(lines, "\n")
}

// finalJSON is the serialized form of the plan's product
type finalJSON struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Circular bool   `json:"circular"`
	Notes    string `json:"notes"`
}

// planJSON is the serialized form of a plan
type planJSON struct {
	Feasible bool       `json:"feasible"`
	Score    float64    `json:"score"`
	Steps    []Step     `json:"steps"`
	Final    *finalJSON `json:"final"`
	Reason   string     `json:"reason,omitempty"`
}

// WriteJSON writes a plan to a JSON file for programmatic use
func WriteJSON(filename string, plan Plan) error {
	out := planJSON{
		Feasible: plan.Feasible,
		Score:    plan.Score,
		Steps:    plan.Steps,
		Reason:   plan.Reason,
	}

	// an unreachable target has an infinite score, which JSON can't carry
	if !plan.Feasible {
		out.Score = 0
	}
	if out.Steps == nil {
		out.Steps = []Step{}
	}

	if plan.Final != nil {
		out.Final = &finalJSON{
			Name:     plan.Final.Name,
			Length:   len(plan.Final.Seq),
			Circular: plan.Final.Circular,
			Notes:    plan.Final.Notes,
		}
	}

	contents, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize the plan: %v", err)
	}

	return os.WriteFile(filename, contents, 0666)
}
