package digest

import (
	"reflect"
	"testing"

	"github.com/flavoris/genomancer/internal/enzyme"
)

var (
	ecoRI   = enzyme.Enzyme{Name: "EcoRI", Recog: "GAATTC", CutInd: 1, HangInd: 5}
	mfeI    = enzyme.Enzyme{Name: "MfeI", Recog: "CAATTG", CutInd: 1, HangInd: 5}
	bamHI   = enzyme.Enzyme{Name: "BamHI", Recog: "GGATCC", CutInd: 1, HangInd: 5}
	hindIII = enzyme.Enzyme{Name: "HindIII", Recog: "AAGCTT", CutInd: 1, HangInd: 5}
	pstI    = enzyme.Enzyme{Name: "PstI", Recog: "CTGCAG", CutInd: 5, HangInd: 1}
	smaI    = enzyme.Enzyme{Name: "SmaI", Recog: "CCCGGG", CutInd: 3, HangInd: 3}
)

func Test_Fragments(t *testing.T) {
	cutAt := func(pos int) *Cut {
		return &Cut{Pos: pos}
	}

	type args struct {
		cuts      []Cut
		seqLen    int
		circular  bool
		linearize bool
	}
	tests := []struct {
		name    string
		args    args
		want    []Fragment
		wantErr bool
	}{
		{
			"linear uncut",
			args{nil, 12, false, false},
			[]Fragment{
				{Index: 0, Start: 0, End: 12, Length: 12},
			},
			false,
		},
		{
			"linear one cut",
			args{[]Cut{{Pos: 4}}, 12, false, false},
			[]Fragment{
				{Index: 0, Start: 0, End: 4, Length: 4, RightCut: cutAt(4)},
				{Index: 1, Start: 4, End: 12, Length: 8, LeftCut: cutAt(4)},
			},
			false,
		},
		{
			"linear two cuts",
			args{[]Cut{{Pos: 3}, {Pos: 9}}, 12, false, false},
			[]Fragment{
				{Index: 0, Start: 0, End: 3, Length: 3, RightCut: cutAt(3)},
				{Index: 1, Start: 3, End: 9, Length: 6, LeftCut: cutAt(3), RightCut: cutAt(9)},
				{Index: 2, Start: 9, End: 12, Length: 3, LeftCut: cutAt(9)},
			},
			false,
		},
		{
			"circular uncut",
			args{nil, 12, true, false},
			[]Fragment{
				{Index: 0, Start: 0, End: 0, Length: 12, Wraps: true},
			},
			false,
		},
		{
			"circular one cut stays intact",
			args{[]Cut{{Pos: 4}}, 12, true, false},
			[]Fragment{
				{Index: 0, Start: 0, End: 0, Length: 12, Wraps: true},
			},
			false,
		},
		{
			"circular one cut linearized",
			args{[]Cut{{Pos: 4}}, 12, true, true},
			[]Fragment{
				{Index: 0, Start: 4, End: 12, Length: 8, LeftCut: cutAt(4), RightCut: cutAt(4)},
				{Index: 1, Start: 0, End: 4, Length: 4, LeftCut: cutAt(4), RightCut: cutAt(4)},
			},
			false,
		},
		{
			"circular two cuts",
			args{[]Cut{{Pos: 3}, {Pos: 9}}, 12, true, false},
			[]Fragment{
				{Index: 0, Start: 3, End: 9, Length: 6, LeftCut: cutAt(3), RightCut: cutAt(9)},
				{Index: 1, Start: 9, End: 3, Length: 6, Wraps: true, LeftCut: cutAt(9), RightCut: cutAt(3)},
			},
			false,
		},
		{
			"circular three cuts",
			args{[]Cut{{Pos: 2}, {Pos: 5}, {Pos: 9}}, 12, true, false},
			[]Fragment{
				{Index: 0, Start: 2, End: 5, Length: 3, LeftCut: cutAt(2), RightCut: cutAt(5)},
				{Index: 1, Start: 5, End: 9, Length: 4, LeftCut: cutAt(5), RightCut: cutAt(9)},
				{Index: 2, Start: 9, End: 2, Length: 5, Wraps: true, LeftCut: cutAt(9), RightCut: cutAt(2)},
			},
			false,
		},
		{
			"positions normalized into range",
			args{[]Cut{{Pos: 16}, {Pos: -3}}, 12, true, false},
			[]Fragment{
				{Index: 0, Start: 4, End: 9, Length: 5, LeftCut: cutAt(4), RightCut: cutAt(9)},
				{Index: 1, Start: 9, End: 4, Length: 7, Wraps: true, LeftCut: cutAt(9), RightCut: cutAt(4)},
			},
			false,
		},
		{
			"duplicate positions merge",
			args{[]Cut{{Pos: 4}, {Pos: 16}}, 12, true, true},
			[]Fragment{
				{Index: 0, Start: 4, End: 12, Length: 8, LeftCut: cutAt(4), RightCut: cutAt(4)},
				{Index: 1, Start: 0, End: 4, Length: 4, LeftCut: cutAt(4), RightCut: cutAt(4)},
			},
			false,
		},
		{
			"zero length sequence",
			args{nil, 0, false, false},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fragments(tt.args.cuts, tt.args.seqLen, tt.args.circular, tt.args.linearize)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fragments() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fragments() = %v, want %v", got, tt.want)
			}
		})
	}
}

// fragment lengths always sum back to the parent's length
func Test_Fragments_lengths(t *testing.T) {
	digests := []struct {
		cuts      []int
		seqLen    int
		circular  bool
		linearize bool
	}{
		{nil, 48, false, false},
		{[]int{7}, 48, false, false},
		{[]int{7, 12, 31, 44}, 48, false, false},
		{nil, 48, true, false},
		{[]int{7}, 48, true, false},
		{[]int{7}, 48, true, true},
		{[]int{7, 12, 31, 44}, 48, true, false},
		{[]int{0, 24}, 48, true, false},
	}

	for _, d := range digests {
		var cuts []Cut
		for _, p := range d.cuts {
			cuts = append(cuts, Cut{Pos: p})
		}

		frags, err := Fragments(cuts, d.seqLen, d.circular, d.linearize)
		if err != nil {
			t.Fatal(err)
		}

		total := 0
		for _, f := range frags {
			total += f.Length
		}
		if total != d.seqLen {
			t.Errorf("Fragments() lengths sum to %d, want %d (cuts %v)", total, d.seqLen, d.cuts)
		}
	}
}

func Test_Find(t *testing.T) {
	type args struct {
		s        string
		circular bool
		enzymes  []enzyme.Enzyme
	}
	tests := []struct {
		name string
		args args
		want []Cut
	}{
		{
			"single site",
			args{"AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI}},
			[]Cut{
				{Pos: 4, Enzymes: []CutMeta{{Enzyme: "EcoRI", Site: "GAATTC", CutIndex: 1, Kind: enzyme.FivePrime}}},
			},
		},
		{
			"two sites sorted",
			args{"GGATCCAAAGAATTC", false, []enzyme.Enzyme{ecoRI, bamHI}},
			[]Cut{
				{Pos: 1, Enzymes: []CutMeta{{Enzyme: "BamHI", Site: "GGATCC", CutIndex: 1, Kind: enzyme.FivePrime}}},
				{Pos: 10, Enzymes: []CutMeta{{Enzyme: "EcoRI", Site: "GAATTC", CutIndex: 1, Kind: enzyme.FivePrime}}},
			},
		},
		{
			"no sites",
			args{"AAAAAAAAAAAA", false, []enzyme.Enzyme{ecoRI}},
			nil,
		},
		{
			"lowercase input",
			args{"aaagaattcggg", false, []enzyme.Enzyme{ecoRI}},
			[]Cut{
				{Pos: 4, Enzymes: []CutMeta{{Enzyme: "EcoRI", Site: "GAATTC", CutIndex: 1, Kind: enzyme.FivePrime}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(tt.args.s, tt.args.circular, tt.args.enzymes); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the same enzyme scanned twice shouldn't duplicate a cut's metadata
func Test_Find_dedupe(t *testing.T) {
	cuts := Find("AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI, ecoRI})

	if len(cuts) != 1 {
		t.Fatalf("Find() returned %d cuts, want 1", len(cuts))
	}
	if len(cuts[0].Enzymes) != 1 {
		t.Errorf("Find() cut has %d metadata entries, want 1", len(cuts[0].Enzymes))
	}
}

func Test_Digest(t *testing.T) {
	frags, cuts, err := Digest("AAAGAATTCGGG", false, []enzyme.Enzyme{ecoRI}, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(cuts) != 1 || cuts[0].Pos != 4 {
		t.Fatalf("Digest() cuts = %v, want one cut at 4", cuts)
	}
	if len(frags) != 2 {
		t.Fatalf("Digest() returned %d fragments, want 2", len(frags))
	}

	if frags[0].Seq != "AAAG" {
		t.Errorf("Digest() first fragment seq = %s, want AAAG", frags[0].Seq)
	}
	if frags[1].Seq != "AATTCGGG" {
		t.Errorf("Digest() second fragment seq = %s, want AATTCGGG", frags[1].Seq)
	}

	// one cut, both facing ends carry the same overhang
	if frags[0].Right == nil || frags[0].Right.Sticky != "AATT" {
		t.Errorf("Digest() first fragment right end = %+v, want sticky AATT", frags[0].Right)
	}
	if frags[1].Left == nil || frags[1].Left.Sticky != "AATT" {
		t.Errorf("Digest() second fragment left end = %+v, want sticky AATT", frags[1].Left)
	}
	if frags[0].Left != nil || frags[1].Right != nil {
		t.Error("Digest() natural termini should have nil ends")
	}
}

func Test_Digest_circular(t *testing.T) {
	// EcoRI and BamHI sites on a 24bp plasmid
	s := "AAAGAATTCGGGAAAGGATCCGGG"

	frags, cuts, err := Digest(s, true, []enzyme.Enzyme{ecoRI, bamHI}, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(cuts) != 2 {
		t.Fatalf("Digest() found %d cuts, want 2", len(cuts))
	}
	if len(frags) != 2 {
		t.Fatalf("Digest() returned %d fragments, want 2", len(frags))
	}

	if !frags[1].Wraps {
		t.Error("Digest() last fragment should wrap the origin")
	}
	if frags[0].Length+frags[1].Length != len(s) {
		t.Errorf("Digest() lengths sum to %d, want %d", frags[0].Length+frags[1].Length, len(s))
	}

	// the wrapping fragment's sequence crosses the origin
	wantWrap := s[16:] + s[:4]
	if frags[1].Seq != wantWrap {
		t.Errorf("Digest() wrapping fragment seq = %s, want %s", frags[1].Seq, wantWrap)
	}
}
