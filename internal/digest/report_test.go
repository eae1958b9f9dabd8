package digest

import (
	"strings"
	"testing"

	"github.com/flavoris/genomancer/internal/enzyme"
)

func Test_FormatPairs(t *testing.T) {
	if got := FormatPairs(nil); got != "No compatible pairs found.\n" {
		t.Errorf("FormatPairs(nil) = %q", got)
	}

	frags, _, err := Digest("AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI}, false)
	if err != nil {
		t.Fatal(err)
	}
	pairs := Pairs(Ends(frags), false, 1, false)

	out := FormatPairs(pairs)
	for _, want := range []string{
		"Compatible pair #1 (k=4)",
		"[frag0:right] EcoRI",
		"[frag1:left] EcoRI",
		"AATT (revcomp match)",
		"directionality: NO (palindromic)",
		"Total compatible pairs: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatPairs() missing %q in:\n%s", want, out)
		}
	}
}

func Test_FormatMatrix(t *testing.T) {
	frags, _, err := Digest("AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI}, false)
	if err != nil {
		t.Fatal(err)
	}
	ends := Ends(frags)
	pairs := Pairs(ends, false, 1, false)

	out := FormatMatrix(pairs, ends)
	for _, want := range []string{
		"F0R", "F1L",
		"  x ",
		"  - ",
		"Total compatible pairs: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatMatrix() missing %q in:\n%s", want, out)
		}
	}

	if out := FormatMatrix(nil, nil); !strings.Contains(out, "No ends to display.") {
		t.Errorf("FormatMatrix() without ends = %q", out)
	}
}

func Test_FormatDetailed(t *testing.T) {
	frags, _, err := Digest("AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI}, false)
	if err != nil {
		t.Fatal(err)
	}
	pairs := Pairs(Ends(frags), false, 1, false)

	out := FormatDetailed(pairs)
	for _, want := range []string{
		"Pair #1:",
		"End A: Fragment 0 (right), Enzyme: EcoRI",
		"End B: Fragment 1 (left), Enzyme: EcoRI",
		"Sequence: 5'-AATT-3'",
		"Compatible: true",
		"Directional: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDetailed() missing %q in:\n%s", want, out)
		}
	}
}
