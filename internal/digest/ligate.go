package digest

import (
	"fmt"
	"strings"

	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/flavoris/genomancer/internal/seq"
)

// Compatible returns whether two fragment ends can ligate. Sticky ends
// ligate sticky ends whose overhangs are reverse complements of the same
// length and kind. Blunt pairs ligate only when includeBlunt is set, and a
// blunt end never ligates a sticky one
func Compatible(a, b EndInfo, includeBlunt bool, minOverhang int) bool {
	if a.OverhangLen == 0 && b.OverhangLen == 0 {
		return includeBlunt
	}

	// one blunt, one sticky
	if (a.OverhangLen == 0) != (b.OverhangLen == 0) {
		return false
	}

	if a.OverhangLen < minOverhang || b.OverhangLen < minOverhang {
		return false
	}

	if a.OverhangLen != b.OverhangLen {
		return false
	}

	if a.Kind != b.Kind {
		return false
	}

	return strings.ToUpper(a.Sticky) == seq.RevComp(b.Sticky)
}

// Directional returns whether a ligation at this end enforces an insert
// orientation: true when the overhang isn't palindromic
func Directional(a EndInfo) bool {
	s := strings.ToUpper(a.Sticky)
	return s != seq.RevComp(s)
}

// Pair is a compatible pairing of two fragment ends with ligation
// heuristics for the annealing overhang
type Pair struct {
	A EndInfo
	B EndInfo

	// Directional is whether the pair enforces orientation
	Directional bool

	// GC percent of each end's overhang
	GCA, GCB float64

	// Wallace melting temperature of each end's overhang
	TmA, TmB float64

	// Note describes the pairing
	Note string
}

// Pairs checks every pair of ends and returns the compatible ones, in
// end order
func Pairs(ends []EndInfo, includeBlunt bool, minOverhang int, requireDirectional bool) []Pair {
	var pairs []Pair
	for i := 0; i < len(ends); i++ {
		for j := i + 1; j < len(ends); j++ {
			a, b := ends[i], ends[j]

			if !Compatible(a, b, includeBlunt, minOverhang) {
				continue
			}

			directional := Directional(a)
			if requireDirectional && !directional {
				continue
			}

			pairs = append(pairs, Pair{
				A:           a,
				B:           b,
				Directional: directional,
				GCA:         seq.GCPercent(a.Sticky),
				GCB:         seq.GCPercent(b.Sticky),
				TmA:         seq.MeltingTemp(a.Sticky),
				TmB:         seq.MeltingTemp(b.Sticky),
				Note:        pairNote(a, directional),
			})
		}
	}

	return pairs
}

// pairNote describes a compatible pairing for reports
func pairNote(a EndInfo, directional bool) string {
	if a.OverhangLen == 0 {
		return "Blunt-blunt ligation"
	}

	dir := "directional"
	if !directional {
		dir = "non-directional (palindromic)"
	}

	return fmt.Sprintf("%s, %d bp overhang, %s", a.Kind, a.OverhangLen, dir)
}

// PairAnalysis is the outcome of a theoretical enzyme pair check from the
// enzymes' cut patterns alone, without a digest
type PairAnalysis struct {
	EnzymeA string `json:"enzyme_a"`
	EnzymeB string `json:"enzyme_b"`

	OverhangLenA int `json:"overhang_len_a"`
	OverhangLenB int `json:"overhang_len_b"`

	Compatible bool   `json:"compatible"`
	Note       string `json:"note"`
}

// AnalyzeEnzymePair checks whether two enzymes could produce compatible
// ends based on their recognition sites and cut patterns. Ends from the
// same enzyme are always compatible, other sticky matches still need
// sequence verification
func AnalyzeEnzymePair(a, b enzyme.Enzyme) PairAnalysis {
	lenA := overhangFromSite(a)
	lenB := overhangFromSite(b)

	result := PairAnalysis{
		EnzymeA:      a.Name,
		EnzymeB:      b.Name,
		OverhangLenA: lenA,
		OverhangLenB: lenB,
	}

	if lenA == 0 || lenB == 0 {
		result.Compatible = lenA == 0 && lenB == 0
		if result.Compatible {
			result.Note = "Both blunt"
		} else {
			result.Note = "One blunt, one sticky - incompatible"
		}
		return result
	}

	if a.Kind() != b.Kind() {
		result.Note = "Overhang types don't match (5' vs 3')"
		return result
	}

	if lenA != lenB {
		result.Note = fmt.Sprintf("Overhang lengths don't match (%d vs %d)", lenA, lenB)
		return result
	}

	result.Compatible = true
	if a.Name == b.Name {
		result.Note = "Same enzyme - always compatible"
	} else {
		result.Note = "Potentially compatible (length and type match, need sequence verification)"
	}

	return result
}

// overhangFromSite is the overhang length implied by a symmetric site and
// its top strand cut offset
func overhangFromSite(e enzyme.Enzyme) int {
	k := 2*e.CutInd - len(e.Recog)
	if k < 0 {
		k = -k
	}
	return k
}
