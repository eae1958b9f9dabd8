package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flavoris/genomancer/internal/seq"
)

// goldenGateOverhangs are 4-mers that ligate cleanly in one pot, from the
// NEB Golden Gate assembly protocol
var goldenGateOverhangs = []string{
	"AATG", "AAGC", "ACAG", "ACAT",
	"AGAT", "AGGT", "ATAG", "ATCC",
	"CAAT", "CAAG", "CCAG", "CGAT",
	"CTAG", "CTCC", "GAAT", "GATG",
	"GCAG", "GGGA", "GTAG", "TAAT",
}

// ValidateOverhangs checks that a Golden Gate overhang set assembles in
// one fixed order: no duplicates, no palindromes, and no two overhangs
// that are each other's reverse complement
func ValidateOverhangs(overhangs []string) error {
	seen := make(map[string]bool)
	var dups []string
	for _, oh := range overhangs {
		if seen[oh] {
			dups = append(dups, oh)
		}
		seen[oh] = true
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return fmt.Errorf("duplicate overhangs: %s", strings.Join(dups, ", "))
	}

	var palindromes []string
	for _, oh := range overhangs {
		if oh == seq.RevComp(oh) {
			palindromes = append(palindromes, oh)
		}
	}
	if len(palindromes) > 0 {
		return fmt.Errorf("palindromic overhangs (non-directional): %s", strings.Join(palindromes, ", "))
	}

	pairSeen := make(map[string]bool)
	var pairs []string
	for _, oh := range overhangs {
		rc := seq.RevComp(oh)
		if oh == rc || !seen[rc] {
			continue
		}
		a, b := oh, rc
		if b < a {
			a, b = b, a
		}
		key := a + b
		if !pairSeen[key] {
			pairSeen[key] = true
			pairs = append(pairs, fmt.Sprintf("%s<->%s", a, b))
		}
	}
	if len(pairs) > 0 {
		return fmt.Errorf("complementary overhang pairs (causes unwanted ligation): %s", strings.Join(pairs, ", "))
	}

	return nil
}

// DesignOverhangs picks an overhang per fusion site for a Golden Gate
// assembly with the given number of junctions. A part flanked by two
// junctions needs both, so the set has one more overhang than junctions.
// Palindromic library entries are skipped, they would ligate in either
// orientation
func DesignOverhangs(numJunctions int) ([]string, error) {
	var library []string
	for _, oh := range goldenGateOverhangs {
		if oh != seq.RevComp(oh) {
			library = append(library, oh)
		}
	}

	needed := numJunctions + 1
	if needed > len(library) {
		return nil, fmt.Errorf("cannot design %d overhangs with current library", needed)
	}

	return library[:needed], nil
}

// stop codons on the top strand
var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// FramePreserved reports whether a junction keeps a coding sequence in
// frame: the scar must shift the left frame onto the right frame, and no
// in-frame stop codon may appear in the joined context. The flanking
// sequences should carry at least a codon of context each, and up to
// nine bases are used
func FramePreserved(left, right, scar string, leftFrame, rightFrame int) (bool, string) {
	if len(left) < 3 || len(right) < 3 {
		return true, fmt.Sprintf("Insufficient context for frame analysis (left=%dbp, right=%dbp, need >=3bp)", len(left), len(right))
	}

	shifted := (leftFrame + len(scar)) % 3
	if shifted != rightFrame {
		return false, fmt.Sprintf("Frame shift: scar adds %d bp, shifting frame from %d to %d, but right expects %d",
			len(scar), leftFrame, shifted, rightFrame)
	}

	contextLen := min(9, min(len(left), len(right)))
	context := left[len(left)-contextLen:] + scar + right[:contextLen]

	var stops []string
	for i := leftFrame % 3; i+3 <= len(context); i += 3 {
		codon := strings.ToUpper(context[i : i+3])
		if stopCodons[codon] {
			stops = append(stops, fmt.Sprintf("%s@%d", codon, i))
		}
	}
	if len(stops) > 0 {
		return false, fmt.Sprintf("Stop codons found in junction: %s", strings.Join(stops, ", "))
	}

	return true, "Frame preserved, no stop codons"
}
