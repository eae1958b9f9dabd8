// Package digest simulates restriction digests: finding cut sites, cutting
// linear and circular sequences into fragments, resolving the overhang left
// at each cut, and checking which ends can ligate back together
package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/flavoris/genomancer/internal/seq"
)

// CutMeta is one enzyme's cut: the enzyme with its site and cut pattern
type CutMeta struct {
	// Enzyme is the name of the cutting enzyme
	Enzyme string

	// Site is the enzyme's recognition sequence
	Site string

	// CutIndex is the top strand cut offset within the site
	CutIndex int

	// Kind of overhang the cut leaves
	Kind enzyme.Kind
}

// OverhangLen is the overhang length implied by the cut's site and index
func (m CutMeta) OverhangLen() int {
	if m.Kind == enzyme.Blunt {
		return 0
	}

	k := 2*m.CutIndex - len(m.Site)
	if k < 0 {
		k = -k
	}
	return k
}

// Cut is a 0-based cut position with every enzyme that cuts there.
// Isoschizomers can share a position, they're deduped by name
type Cut struct {
	Pos     int
	Enzymes []CutMeta
}

// Fragment is one product of a digest. Start and End are half open top
// strand bounds within the parent sequence. A nil cut or end means the
// fragment keeps one of the parent's natural termini
type Fragment struct {
	// Index of the fragment in the digest, 0-based
	Index int

	// Start position in the parent, inclusive
	Start int

	// End position in the parent, exclusive
	End int

	// Length in basepairs
	Length int

	// Wraps is whether the fragment spans the origin of a circular parent
	Wraps bool

	// Seq is the fragment's top strand, 5' to 3'
	Seq string

	// LeftCut and RightCut are the cuts bounding the fragment
	LeftCut  *Cut
	RightCut *Cut

	// Left and Right are the resolved overhangs at each cut end
	Left  *EndInfo
	Right *EndInfo
}

// Find locates every cut the enzymes make in a sequence. Cuts landing on
// the same position are merged and their metadata deduped by enzyme name.
// The returned cuts are sorted by position
func Find(s string, circular bool, enzymes []enzyme.Enzyme) []Cut {
	s = strings.ToUpper(s)

	metaAt := make(map[int][]CutMeta)
	var ps []int
	for _, e := range enzymes {
		for _, pos := range enzyme.Scan(e, s, circular) {
			if _, seen := metaAt[pos]; !seen {
				ps = append(ps, pos)
			}
			metaAt[pos] = append(metaAt[pos], CutMeta{
				Enzyme:   e.Name,
				Site:     e.Recog,
				CutIndex: e.CutInd,
				Kind:     e.Kind(),
			})
		}
	}
	sort.Ints(ps)

	var cuts []Cut
	for _, pos := range ps {
		cuts = append(cuts, Cut{Pos: pos, Enzymes: dedupeMeta(metaAt[pos])})
	}

	return cuts
}

// dedupeMeta drops repeat entries for the same enzyme, keeping first seen order
func dedupeMeta(metas []CutMeta) []CutMeta {
	seen := make(map[string]bool)
	var unique []CutMeta
	for _, m := range metas {
		if seen[m.Enzyme] {
			continue
		}
		seen[m.Enzyme] = true
		unique = append(unique, m)
	}

	return unique
}

// Fragments cuts a sequence of seqLen basepairs at the passed cuts.
//
// Linear with n cuts gives n+1 fragments, the outermost ends keeping the
// sequence's natural termini. Circular with n>=2 cuts gives n fragments,
// the last wrapping the origin. A single cut on a circle gives one intact
// wrapping fragment, or two linearized fragments when linearize is set
func Fragments(cuts []Cut, seqLen int, circular, linearize bool) ([]Fragment, error) {
	if seqLen <= 0 {
		return nil, fmt.Errorf("sequence length must be positive, got %d", seqLen)
	}

	// normalize positions into [0, seqLen), merging metadata of cuts that
	// land on the same position
	metaAt := make(map[int][]CutMeta)
	var ps []int
	for _, c := range cuts {
		pos := ((c.Pos % seqLen) + seqLen) % seqLen
		if _, seen := metaAt[pos]; !seen {
			ps = append(ps, pos)
		}
		metaAt[pos] = append(metaAt[pos], c.Enzymes...)
	}
	sort.Ints(ps)

	cutAt := func(pos int) *Cut {
		return &Cut{Pos: pos, Enzymes: dedupeMeta(metaAt[pos])}
	}

	n := len(ps)
	var frags []Fragment

	switch {
	case !circular && n == 0:
		frags = []Fragment{
			{Index: 0, Start: 0, End: seqLen, Length: seqLen},
		}
	case !circular:
		// first fragment, sequence start to the first cut
		frags = append(frags, Fragment{
			Index:    0,
			Start:    0,
			End:      ps[0],
			Length:   ps[0],
			RightCut: cutAt(ps[0]),
		})

		// middle fragments between consecutive cuts
		for i := 0; i < n-1; i++ {
			frags = append(frags, Fragment{
				Index:    i + 1,
				Start:    ps[i],
				End:      ps[i+1],
				Length:   ps[i+1] - ps[i],
				LeftCut:  cutAt(ps[i]),
				RightCut: cutAt(ps[i+1]),
			})
		}

		// last fragment, the final cut to the sequence end
		frags = append(frags, Fragment{
			Index:   n,
			Start:   ps[n-1],
			End:     seqLen,
			Length:  seqLen - ps[n-1],
			LeftCut: cutAt(ps[n-1]),
		})
	case n == 0, n == 1 && !linearize:
		// an uncut circle, or a single nick that doesn't fragment it
		frags = []Fragment{
			{Index: 0, Start: 0, End: 0, Length: seqLen, Wraps: true},
		}
	case n == 1:
		// a single cut linearizes the circle at p0: the downstream arc
		// first, then the upstream arc. both ends of both fragments were
		// made by the same cut
		p0 := ps[0]
		frags = []Fragment{
			{
				Index:    0,
				Start:    p0,
				End:      seqLen,
				Length:   seqLen - p0,
				LeftCut:  cutAt(p0),
				RightCut: cutAt(p0),
			},
			{
				Index:    1,
				Start:    0,
				End:      p0,
				Length:   p0,
				LeftCut:  cutAt(p0),
				RightCut: cutAt(p0),
			},
		}
	default:
		// fragments between consecutive cuts
		for i := 0; i < n-1; i++ {
			frags = append(frags, Fragment{
				Index:    i,
				Start:    ps[i],
				End:      ps[i+1],
				Length:   ps[i+1] - ps[i],
				LeftCut:  cutAt(ps[i]),
				RightCut: cutAt(ps[i+1]),
			})
		}

		// the wrapping fragment, last cut around the origin to the first
		frags = append(frags, Fragment{
			Index:    n - 1,
			Start:    ps[n-1],
			End:      ps[0],
			Length:   (seqLen - ps[n-1]) + ps[0],
			Wraps:    true,
			LeftCut:  cutAt(ps[n-1]),
			RightCut: cutAt(ps[0]),
		})
	}

	total := 0
	for _, f := range frags {
		total += f.Length
	}
	if total != seqLen {
		return nil, fmt.Errorf("fragment lengths sum to %d, expected %d", total, seqLen)
	}

	return frags, nil
}

// Digest cuts a sequence with the passed enzymes and returns its fragments,
// each annotated with its sequence and resolved ends, plus the cuts found
func Digest(s string, circular bool, enzymes []enzyme.Enzyme, linearize bool) ([]Fragment, []Cut, error) {
	s = strings.ToUpper(s)

	cuts := Find(s, circular, enzymes)
	frags, err := Fragments(cuts, len(s), circular, linearize)
	if err != nil {
		return nil, nil, err
	}

	for i := range frags {
		f := &frags[i]
		f.Seq = fragSeq(s, *f)
		if f.LeftCut != nil {
			f.Left = resolveEnd(s, *f.LeftCut, Left, f.Index, circular)
		}
		if f.RightCut != nil {
			f.Right = resolveEnd(s, *f.RightCut, Right, f.Index, circular)
		}
	}

	return frags, cuts, nil
}

// fragSeq extracts a fragment's top strand from its parent
func fragSeq(s string, f Fragment) string {
	if f.Wraps {
		return seq.Ring(s, f.Start, f.Length)
	}

	return s[f.Start:f.End]
}
