package plan

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() Plan {
	return Plan{
		Feasible: true,
		Score:    4.1,
		Steps: []Step{
			{
				Name:   "Digest_pVec_with_EcoRI+BamHI",
				Action: ActionDigest,
				Inputs: []string{"pVec"},
				Params: Params{
					Enzymes:         []string{"EcoRI", "BamHI"},
					Dephosphorylate: true,
				},
				Outputs:            []string{"pVec_frag0", "pVec_frag1"},
				PredictedFragments: []FragmentPrediction{{Length: 12}, {Length: 12}},
				Cost:               1.2,
			},
			{
				Name:   "Ligate_pVec_frag1+geneX_frag1",
				Action: ActionLigate,
				Inputs: []string{"pVec_frag1", "geneX_frag1"},
				Params: Params{
					Scar:         "AATT",
					Circularized: true,
				},
				Outputs: []string{"final"},
				Cost:    1,
			},
		},
		Final: &Construct{
			Name:     "final",
			Seq:      strings.Repeat("A", 26),
			Circular: true,
			Notes:    "Generated by ligate",
		},
	}
}

func TestSummary(t *testing.T) {
	out := Summary(testPlan())

	assert.Contains(t, out, "CLONING PLAN")
	assert.Contains(t, out, "Total steps: 2")
	assert.Contains(t, out, "Score: 4.10")
	assert.Contains(t, out, "Step 1 - DIGEST: Digest_pVec_with_EcoRI+BamHI")
	assert.Contains(t, out, "  Inputs: pVec")
	assert.Contains(t, out, "  Enzymes: EcoRI, BamHI (deP: YES)")
	assert.Contains(t, out, "  Fragments: 12 bp, 12 bp")
	assert.Contains(t, out, "Step 2 - LIGATE: Ligate_pVec_frag1+geneX_frag1")
	assert.Contains(t, out, "  Directional: NO")
	assert.Contains(t, out, "  Scar: AATT")
	assert.Contains(t, out, "Final construct: final")
	assert.Contains(t, out, "  Length: 26 bp")
	assert.Contains(t, out, "  Circular: true")
}

func TestSummary_infeasible(t *testing.T) {
	out := Summary(Plan{Feasible: false, Reason: "No feasible plan found within max_steps"})

	assert.Equal(t, "No feasible plan: No feasible plan found within max_steps\n", out)
}

func TestProtocol(t *testing.T) {
	out := Protocol(testPlan())

	assert.Contains(t, out, "DETAILED CLONING PROTOCOL")
	assert.Contains(t, out, "Complexity score: 4.10")
	assert.Contains(t, out, "STEP 1: DIGEST")
	assert.Contains(t, out, "     - Add EcoRI")
	assert.Contains(t, out, "  2. Incubate at 37C for 1-2 hours")
	assert.Contains(t, out, "  3. Add Antarctic Phosphatase (dephosphorylation)")
	assert.Contains(t, out, "  5. Purify by gel extraction or column")
	assert.Contains(t, out, "Expected fragments:")
	assert.Contains(t, out, "  Fragment 1: 12 bp")
	assert.Contains(t, out, "STEP 2: LIGATE")
	assert.Contains(t, out, "     - Add T4 DNA Ligase")
	assert.Contains(t, out, "Directionality: No (screen colonies)")
	assert.Contains(t, out, "Junction scar: AATT")
	assert.Contains(t, out, "FINAL CONSTRUCT")
	assert.Contains(t, out, "Length: 26 bp")
}

func TestProtocol_goldenGate(t *testing.T) {
	plan := Plan{
		Feasible: true,
		Score:    1.1,
		Steps: []Step{{
			Name:   "GoldenGate_assembly",
			Action: ActionGoldenGate,
			Inputs: []string{"partA", "partB"},
			Params: Params{
				Enzyme:    "BsaI",
				Overhangs: []string{"AATG", "AAGC"},
			},
			Outputs: []string{"final"},
			Cost:    1,
		}},
	}

	out := Protocol(plan)

	assert.Contains(t, out, "Protocol (Golden Gate):")
	assert.Contains(t, out, "     - Add BsaI")
	assert.Contains(t, out, "     - 26 cycles: [37C 2 min, 16C 5 min]")
	assert.Contains(t, out, "     - Final: 50C 5 min, 80C 10 min")
	assert.Contains(t, out, "Designed overhangs:")
	assert.Contains(t, out, "  Junction 1: AATG")
	assert.Contains(t, out, "  Junction 2: AAGC")
}

func TestProtocol_infeasible(t *testing.T) {
	out := Protocol(Plan{Feasible: false, Reason: "No feasible plan found within max_steps"})

	assert.Contains(t, out, "PLAN NOT FEASIBLE: No feasible plan found within max_steps")
	assert.NotContains(t, out, "STEP 1")
}

func TestWriteJSON_plan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, WriteJSON(path, testPlan()))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		Feasible bool    `json:"feasible"`
		Score    float64 `json:"score"`
		Steps    []struct {
			Name   string `json:"name"`
			Action string `json:"action"`
			Params struct {
				Enzymes []string `json:"enzymes"`
				Scar    string   `json:"scar"`
			} `json:"params"`
		} `json:"steps"`
		Final *struct {
			Name     string `json:"name"`
			Length   int    `json:"length"`
			Circular bool   `json:"circular"`
		} `json:"final"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(contents, &parsed))

	assert.True(t, parsed.Feasible)
	assert.InDelta(t, 4.1, parsed.Score, 0.001)
	require.Len(t, parsed.Steps, 2)
	assert.Equal(t, []string{"EcoRI", "BamHI"}, parsed.Steps[0].Params.Enzymes)
	assert.Equal(t, "AATT", parsed.Steps[1].Params.Scar)
	require.NotNil(t, parsed.Final)
	assert.Equal(t, "final", parsed.Final.Name)
	assert.Equal(t, 26, parsed.Final.Length)
	assert.True(t, parsed.Final.Circular)
	assert.Empty(t, parsed.Reason)
}

func TestWriteJSON_infeasiblePlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	plan := Plan{
		Score:    math.Inf(1),
		Feasible: false,
		Reason:   "No feasible plan found within max_steps",
	}
	require.NoError(t, WriteJSON(path, plan))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(contents, &parsed))

	assert.Equal(t, false, parsed["feasible"])
	assert.Equal(t, 0.0, parsed["score"])
	assert.Equal(t, "No feasible plan found within max_steps", parsed["reason"])
	assert.Equal(t, []any{}, parsed["steps"])
	assert.Nil(t, parsed["final"])
}
