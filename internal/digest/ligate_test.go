package digest

import (
	"testing"

	"github.com/flavoris/genomancer/internal/enzyme"
)

// claI leaves a 2 base 5' overhang, for overhang length mismatch cases
var claI = enzyme.Enzyme{Name: "ClaI", Recog: "ATCGAT", CutInd: 2, HangInd: 4}

func Test_Compatible(t *testing.T) {
	end := func(kind enzyme.Kind, k int, sticky string) EndInfo {
		return EndInfo{Kind: kind, OverhangLen: k, Sticky: sticky}
	}

	type args struct {
		a            EndInfo
		b            EndInfo
		includeBlunt bool
		minOverhang  int
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"matching 5' overhangs",
			args{end(enzyme.FivePrime, 4, "AATT"), end(enzyme.FivePrime, 4, "AATT"), false, 1},
			true,
		},
		{
			"matching 3' overhangs",
			args{end(enzyme.ThreePrime, 4, "TGCA"), end(enzyme.ThreePrime, 4, "TGCA"), false, 1},
			true,
		},
		{
			"lowercase overhang",
			args{end(enzyme.FivePrime, 4, "aatt"), end(enzyme.FivePrime, 4, "AATT"), false, 1},
			true,
		},
		{
			"non-complementary overhangs",
			args{end(enzyme.FivePrime, 4, "AATT"), end(enzyme.FivePrime, 4, "GATC"), false, 1},
			false,
		},
		{
			"overhang lengths differ",
			args{end(enzyme.FivePrime, 4, "AATT"), end(enzyme.FivePrime, 2, "CG"), false, 1},
			false,
		},
		{
			"overhang kinds differ",
			args{end(enzyme.FivePrime, 4, "AATT"), end(enzyme.ThreePrime, 4, "AATT"), false, 1},
			false,
		},
		{
			"below minimum overhang",
			args{end(enzyme.FivePrime, 4, "AATT"), end(enzyme.FivePrime, 4, "AATT"), false, 5},
			false,
		},
		{
			"blunt pair allowed",
			args{end(enzyme.Blunt, 0, ""), end(enzyme.Blunt, 0, ""), true, 1},
			true,
		},
		{
			"blunt pair not allowed",
			args{end(enzyme.Blunt, 0, ""), end(enzyme.Blunt, 0, ""), false, 1},
			false,
		},
		{
			"blunt against sticky",
			args{end(enzyme.Blunt, 0, ""), end(enzyme.FivePrime, 4, "AATT"), true, 1},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.args.a, tt.args.b, tt.args.includeBlunt, tt.args.minOverhang); got != tt.want {
				t.Errorf("Compatible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Directional(t *testing.T) {
	tests := []struct {
		sticky string
		want   bool
	}{
		{"AATT", false}, // palindromic
		{"GATC", false},
		{"AGCT", false},
		{"AATG", true},
		{"AAGC", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.sticky, func(t *testing.T) {
			if got := Directional(EndInfo{Sticky: tt.sticky}); got != tt.want {
				t.Errorf("Directional(%q) = %v, want %v", tt.sticky, got, tt.want)
			}
		})
	}
}

func Test_Pairs(t *testing.T) {
	sticky := EndInfo{Kind: enzyme.FivePrime, OverhangLen: 4, Sticky: "AATT", FragIndex: 0, Polarity: Right}
	stickyMate := EndInfo{Kind: enzyme.FivePrime, OverhangLen: 4, Sticky: "AATT", FragIndex: 1, Polarity: Left}
	blunt := EndInfo{Kind: enzyme.Blunt, FragIndex: 1, Polarity: Right}
	bluntMate := EndInfo{Kind: enzyme.Blunt, FragIndex: 2, Polarity: Left}
	ends := []EndInfo{sticky, stickyMate, blunt, bluntMate}

	pairs := Pairs(ends, false, 1, false)
	if len(pairs) != 1 {
		t.Fatalf("Pairs() returned %d pairs, want 1", len(pairs))
	}
	if pairs[0].A.FragIndex != 0 || pairs[0].B.FragIndex != 1 {
		t.Errorf("Pairs() paired frag%d with frag%d, want frag0 with frag1", pairs[0].A.FragIndex, pairs[0].B.FragIndex)
	}
	if pairs[0].Directional {
		t.Error("Pairs() AATT pairing should be non-directional")
	}
	if want := "5' overhang, 4 bp overhang, non-directional (palindromic)"; pairs[0].Note != want {
		t.Errorf("Pairs() note = %q, want %q", pairs[0].Note, want)
	}

	// blunt pairings appear once blunt ligation is allowed
	pairs = Pairs(ends, true, 1, false)
	if len(pairs) != 2 {
		t.Fatalf("Pairs() with blunt returned %d pairs, want 2", len(pairs))
	}
	if want := "Blunt-blunt ligation"; pairs[1].Note != want {
		t.Errorf("Pairs() blunt note = %q, want %q", pairs[1].Note, want)
	}

	// palindromic overhangs are dropped when directionality is required
	pairs = Pairs(ends, false, 1, true)
	if len(pairs) != 0 {
		t.Errorf("Pairs() requiring directionality returned %d pairs, want 0", len(pairs))
	}
}

func Test_AnalyzeEnzymePair(t *testing.T) {
	type args struct {
		a enzyme.Enzyme
		b enzyme.Enzyme
	}
	tests := []struct {
		name string
		args args
		want PairAnalysis
	}{
		{
			"same enzyme",
			args{ecoRI, ecoRI},
			PairAnalysis{
				EnzymeA: "EcoRI", EnzymeB: "EcoRI",
				OverhangLenA: 4, OverhangLenB: 4,
				Compatible: true,
				Note:       "Same enzyme - always compatible",
			},
		},
		{
			"isocaudomers",
			args{ecoRI, mfeI},
			PairAnalysis{
				EnzymeA: "EcoRI", EnzymeB: "MfeI",
				OverhangLenA: 4, OverhangLenB: 4,
				Compatible: true,
				Note:       "Potentially compatible (length and type match, need sequence verification)",
			},
		},
		{
			"5' against 3'",
			args{ecoRI, pstI},
			PairAnalysis{
				EnzymeA: "EcoRI", EnzymeB: "PstI",
				OverhangLenA: 4, OverhangLenB: 4,
				Compatible: false,
				Note:       "Overhang types don't match (5' vs 3')",
			},
		},
		{
			"lengths differ",
			args{ecoRI, claI},
			PairAnalysis{
				EnzymeA: "EcoRI", EnzymeB: "ClaI",
				OverhangLenA: 4, OverhangLenB: 2,
				Compatible: false,
				Note:       "Overhang lengths don't match (4 vs 2)",
			},
		},
		{
			"both blunt",
			args{smaI, smaI},
			PairAnalysis{
				EnzymeA: "SmaI", EnzymeB: "SmaI",
				OverhangLenA: 0, OverhangLenB: 0,
				Compatible: true,
				Note:       "Both blunt",
			},
		},
		{
			"blunt against sticky",
			args{smaI, ecoRI},
			PairAnalysis{
				EnzymeA: "SmaI", EnzymeB: "EcoRI",
				OverhangLenA: 0, OverhangLenB: 4,
				Compatible: false,
				Note:       "One blunt, one sticky - incompatible",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeEnzymePair(tt.args.a, tt.args.b); got != tt.want {
				t.Errorf("AnalyzeEnzymePair() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
