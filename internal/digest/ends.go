package digest

import (
	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/flavoris/genomancer/internal/seq"
)

// Polarity marks which side of a fragment an end is on
type Polarity int

const (
	// Left end of a fragment, its 5' side on the top strand
	Left Polarity = iota

	// Right end of a fragment, its 3' side on the top strand
	Right
)

// String returns the polarity's label as used in reports
func (p Polarity) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// EndInfo describes the end a cut leaves on a neighboring fragment. The
// sticky bases of one cut are the same for the fragments on either side of
// it, only the polarity differs
type EndInfo struct {
	// Enzyme that made the cut
	Enzyme string

	// Site is the enzyme's recognition sequence
	Site string

	// CutIndex is the top strand cut offset within the site
	CutIndex int

	// Kind of overhang
	Kind enzyme.Kind

	// OverhangLen is the single stranded extension's length, 0 for blunt
	OverhangLen int

	// Sticky is the 5'->3' sequence of the single stranded overhang
	Sticky string

	// Polarity is which side of the fragment this end is on
	Polarity Polarity

	// FragIndex is the index of the fragment the end belongs to
	FragIndex int

	// Pos is the cut position in the parent sequence
	Pos int
}

// resolveEnd computes the overhang a cut leaves behind. For 5' overhang
// cuts the sticky bases are the k bases after the top strand cut, for 3'
// cuts the k bases before it. On circular parents the bases may wrap the
// origin
func resolveEnd(s string, cut Cut, polarity Polarity, fragIndex int, circular bool) *EndInfo {
	if len(cut.Enzymes) == 0 {
		return nil
	}
	meta := cut.Enzymes[0]
	k := meta.OverhangLen()

	sticky := ""
	if k > 0 {
		from := cut.Pos
		if meta.Kind == enzyme.ThreePrime {
			from = cut.Pos - k
		}

		if circular {
			sticky = seq.Ring(s, from, k)
		} else {
			lo, hi := from, from+k
			if lo < 0 {
				lo = 0
			}
			if hi > len(s) {
				hi = len(s)
			}
			sticky = s[lo:hi]
		}
	}

	return &EndInfo{
		Enzyme:      meta.Enzyme,
		Site:        meta.Site,
		CutIndex:    meta.CutIndex,
		Kind:        meta.Kind,
		OverhangLen: k,
		Sticky:      sticky,
		Polarity:    polarity,
		FragIndex:   fragIndex,
		Pos:         cut.Pos,
	}
}

// Ends collects the resolved cut ends of a set of fragments, left ends
// before right ends fragment by fragment
func Ends(frags []Fragment) []EndInfo {
	var ends []EndInfo
	for _, f := range frags {
		if f.Left != nil {
			ends = append(ends, *f.Left)
		}
		if f.Right != nil {
			ends = append(ends, *f.Right)
		}
	}

	return ends
}
