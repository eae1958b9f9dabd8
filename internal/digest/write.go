package digest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Output is the JSON shape of a digest's results
type Output struct {
	// Name of the digested sequence
	Name string `json:"name"`

	// Seq is the digested sequence
	Seq string `json:"seq"`

	// Circular is whether the sequence was treated as circular
	Circular bool `json:"circular"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Enzymes used in the digest
	Enzymes []string `json:"enzymes"`

	// Cuts found in the sequence, one entry per enzyme per position
	Cuts []CutOutput `json:"cuts"`

	// Fragments produced by the digest
	Fragments []FragmentOutput `json:"fragments"`
}

// CutOutput is one enzyme's cut in the JSON output
type CutOutput struct {
	Pos          int    `json:"pos"`
	Enzyme       string `json:"enzyme"`
	Site         string `json:"recognition_site"`
	CutIndex     int    `json:"cut_index"`
	OverhangType string `json:"overhang_type"`
	OverhangLen  int    `json:"overhang_len"`
}

// FragmentOutput is one fragment in the JSON output
type FragmentOutput struct {
	ID     int        `json:"fragment_id"`
	Start  int        `json:"start_idx"`
	End    int        `json:"end_idx"`
	Length int        `json:"length"`
	Wraps  bool       `json:"wraps"`
	Seq    string     `json:"sequence"`
	Left   *EndOutput `json:"left_end"`
	Right  *EndOutput `json:"right_end"`
}

// EndOutput is one resolved fragment end in the JSON output
type EndOutput struct {
	Enzyme       string `json:"enzyme"`
	OverhangType string `json:"overhang_type"`
	OverhangLen  int    `json:"overhang_len"`
	EndBases     string `json:"end_bases"`
	Site         string `json:"recognition_site"`
}

// NewOutput collects a digest's results for JSON export
func NewOutput(name, s string, circular bool, enzymes []string, cuts []Cut, frags []Fragment) Output {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now() // https://gobyexample.com/time-formatting-parsing
	time := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Name:     name,
		Seq:      s,
		Circular: circular,
		Time:     time,
		Enzymes:  enzymes,
	}

	for _, c := range cuts {
		for _, m := range c.Enzymes {
			out.Cuts = append(out.Cuts, CutOutput{
				Pos:          c.Pos,
				Enzyme:       m.Enzyme,
				Site:         m.Site,
				CutIndex:     m.CutIndex,
				OverhangType: m.Kind.String(),
				OverhangLen:  m.OverhangLen(),
			})
		}
	}

	for _, f := range frags {
		out.Fragments = append(out.Fragments, FragmentOutput{
			ID:     f.Index,
			Start:  f.Start,
			End:    f.End,
			Length: f.Length,
			Wraps:  f.Wraps,
			Seq:    f.Seq,
			Left:   endOutput(f.Left),
			Right:  endOutput(f.Right),
		})
	}

	return out
}

// endOutput converts a resolved end to its JSON shape
func endOutput(e *EndInfo) *EndOutput {
	if e == nil {
		return nil
	}

	return &EndOutput{
		Enzyme:       e.Enzyme,
		OverhangType: e.Kind.String(),
		OverhangLen:  e.OverhangLen,
		EndBases:     e.Sticky,
		Site:         e.Site,
	}
}

// WriteJSON writes a digest's results to a JSON file
func WriteJSON(filename string, out Output) error {
	contents, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize digest: %v", err)
	}

	if err := os.WriteFile(filename, contents, 0666); err != nil {
		return fmt.Errorf("failed to write %s: %v", filename, err)
	}

	return nil
}

// WriteFragmentsCSV writes one row per fragment to <prefix>_fragments.csv
func WriteFragmentsCSV(filename string, frags []Fragment, circular bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", filename, err)
	}
	defer f.Close()

	mode := "linear"
	if circular {
		mode = "circular"
	}

	w := csv.NewWriter(f)
	header := []string{
		"fragment_id", "start_idx", "end_idx", "mode", "length",
		"left_enzyme", "left_overhang_type", "left_overhang_len", "left_end_bases",
		"right_enzyme", "right_overhang_type", "right_overhang_len", "right_end_bases",
		"sequence",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, frag := range frags {
		leftEnz, leftType, leftBases, leftLen := "", "", "", 0
		if frag.Left != nil {
			leftEnz = frag.Left.Enzyme
			leftType = frag.Left.Kind.String()
			leftLen = frag.Left.OverhangLen
			leftBases = frag.Left.Sticky
		}

		rightEnz, rightType, rightBases, rightLen := "", "", "", 0
		if frag.Right != nil {
			rightEnz = frag.Right.Enzyme
			rightType = frag.Right.Kind.String()
			rightLen = frag.Right.OverhangLen
			rightBases = frag.Right.Sticky
		}

		row := []string{
			strconv.Itoa(frag.Index),
			strconv.Itoa(frag.Start),
			strconv.Itoa(frag.End),
			mode,
			strconv.Itoa(frag.Length),
			leftEnz, leftType, strconv.Itoa(leftLen), leftBases,
			rightEnz, rightType, strconv.Itoa(rightLen), rightBases,
			frag.Seq,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCutsCSV writes one row per enzyme per cut to <prefix>_cuts.csv
func WriteCutsCSV(filename string, cuts []Cut) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"cut_id", "pos", "enzyme", "recognition_site",
		"cut_index", "overhang_type", "overhang_len",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	id := 1
	for _, c := range cuts {
		for _, m := range c.Enzymes {
			row := []string{
				strconv.Itoa(id),
				strconv.Itoa(c.Pos),
				m.Enzyme,
				m.Site,
				strconv.Itoa(m.CutIndex),
				m.Kind.String(),
				strconv.Itoa(m.OverhangLen()),
			}
			if err := w.Write(row); err != nil {
				return err
			}
			id++
		}
	}

	w.Flush()
	return w.Error()
}

// locusChars matches characters not allowed in a GenBank LOCUS name
var locusChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// locusName sanitizes a name into a valid LOCUS name, 16 chars at most
func locusName(name string) string {
	sanitized := locusChars.ReplaceAllString(name, "_")
	if len(sanitized) > 16 {
		sanitized = sanitized[:16]
	}
	return sanitized
}

// sanitizeGB strips characters that would break a GenBank qualifier value
func sanitizeGB(s string) string {
	s = strings.Replace(s, "\"", "'", -1)
	s = strings.Replace(s, "\n", " ", -1)
	s = strings.Replace(s, "\r", " ", -1)
	return s
}

// writeFeature writes one feature entry with its qualifiers
func writeFeature(b *strings.Builder, key, location string, quals [][2]string) {
	fmt.Fprintf(b, "     %-16s%s\n", key, location)
	for _, q := range quals {
		if q[1] != "" {
			fmt.Fprintf(b, "                     /%s=\"%s\"\n", q[0], sanitizeGB(q[1]))
		} else {
			fmt.Fprintf(b, "                     /%s\n", q[0])
		}
	}
}

// wrapOrigin formats a sequence for the ORIGIN section: 60 per line in
// 10-nt blocks with a 1-based index
func wrapOrigin(s string) string {
	lower := strings.ToLower(s)

	var out []string
	for i := 0; i < len(lower); i += 60 {
		end := i + 60
		if end > len(lower) {
			end = len(lower)
		}
		line := lower[i:end]

		var blocks []string
		for j := 0; j < len(line); j += 10 {
			e := j + 10
			if e > len(line) {
				e = len(line)
			}
			blocks = append(blocks, line[j:e])
		}

		out = append(out, fmt.Sprintf("%9d %s", i+1, strings.Join(blocks, " ")))
	}

	return strings.Join(out, "\n")
}

// WriteGenbank writes an annotated GenBank file for a digest: a source
// feature, one misc_feature per cut, one per fragment, and the sequence in
// the ORIGIN block. Wrapping fragments use a join() location
func WriteGenbank(filename, name, s string, circular bool, cuts []Cut, frags []Fragment, definition, organism string) error {
	n := len(s)
	topo := "linear"
	if circular {
		topo = "circular"
	}

	d := time.Now().Local()
	date := strings.ToUpper(d.Format("02-Jan-2006"))

	var gb strings.Builder
	fmt.Fprintf(&gb, "LOCUS       %-16s %11d bp    DNA     %-8s %s\n", locusName(name), n, topo, date)
	fmt.Fprintf(&gb, "DEFINITION  %s\n", sanitizeGB(definition))
	gb.WriteString("ACCESSION   \n")
	gb.WriteString("VERSION     \n")
	fmt.Fprintf(&gb, "SOURCE      %s\n", sanitizeGB(organism))
	fmt.Fprintf(&gb, "  ORGANISM  %s\n", sanitizeGB(organism))
	gb.WriteString("            synthetic construct.\n")
	gb.WriteString("FEATURES             Location/Qualifiers\n")

	sourceQuals := [][2]string{{"mol_type", "other DNA"}}
	if circular {
		sourceQuals = append(sourceQuals, [2]string{"note", "circular"})
	}
	writeFeature(&gb, "source", fmt.Sprintf("1..%d", n), sourceQuals)

	// one feature per enzyme per cut position
	for _, c := range cuts {
		for _, m := range c.Enzymes {
			noteParts := []string{}
			if m.Site != "" {
				noteParts = append(noteParts, fmt.Sprintf("site=%s", m.Site))
			}
			noteParts = append(noteParts, fmt.Sprintf("cut_index=%d", m.CutIndex))
			noteParts = append(noteParts, fmt.Sprintf("overhang=%s", m.Kind))
			if k := m.OverhangLen(); k > 0 {
				noteParts = append(noteParts, fmt.Sprintf("k=%d", k))
			}

			writeFeature(&gb, "misc_feature", strconv.Itoa(c.Pos+1), [][2]string{
				{"label", m.Enzyme},
				{"note", strings.Join(noteParts, "; ")},
			})
		}
	}

	// one feature per fragment
	for _, f := range frags {
		loc := fmt.Sprintf("%d..%d", f.Start+1, f.End)
		if f.Wraps && circular {
			loc = fmt.Sprintf("join(%d..%d,1..%d)", f.Start+1, n, f.End)
		}

		leftStr := "START"
		if f.LeftCut != nil && len(f.LeftCut.Enzymes) > 0 {
			m := f.LeftCut.Enzymes[0]
			leftStr = fmt.Sprintf("%s(%s)", m.Enzyme, m.Kind)
		}

		rightStr := "END"
		if f.RightCut != nil && len(f.RightCut.Enzymes) > 0 {
			m := f.RightCut.Enzymes[0]
			rightStr = fmt.Sprintf("%s(%s)", m.Enzyme, m.Kind)
		}

		writeFeature(&gb, "misc_feature", loc, [][2]string{
			{"label", fmt.Sprintf("fragment_%d", f.Index)},
			{"note", fmt.Sprintf("length=%dbp; left=%s, right=%s", f.Length, leftStr, rightStr)},
		})
	}

	gb.WriteString("ORIGIN\n")
	gb.WriteString(wrapOrigin(s))
	gb.WriteString("\n//\n")

	if err := os.WriteFile(filename, []byte(gb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", filename, err)
	}

	return nil
}

// PairOutput is the JSON shape of one compatible end pairing
type PairOutput struct {
	EndA        PairEndOutput `json:"end_a"`
	EndB        PairEndOutput `json:"end_b"`
	Compatible  bool          `json:"compatible"`
	Directional bool          `json:"directional"`
	Note        string        `json:"note"`
}

// PairEndOutput is one end of a pairing in the JSON output
type PairEndOutput struct {
	FragmentID   int     `json:"fragment_id"`
	Polarity     string  `json:"polarity"`
	Enzyme       string  `json:"enzyme"`
	OverhangType string  `json:"overhang_type"`
	OverhangLen  int     `json:"overhang_len"`
	StickySeq    string  `json:"sticky_seq"`
	GCPercent    float64 `json:"gc_percent"`
	Tm           float64 `json:"tm"`
	Position     int     `json:"position"`
}

// WritePairs writes compatibility results to a JSON file
func WritePairs(filename string, pairs []Pair) error {
	outputs := []PairOutput{}
	for _, p := range pairs {
		outputs = append(outputs, PairOutput{
			EndA:        pairEndOutput(p.A, p.GCA, p.TmA),
			EndB:        pairEndOutput(p.B, p.GCB, p.TmB),
			Compatible:  true,
			Directional: p.Directional,
			Note:        p.Note,
		})
	}

	contents, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize pairs: %v", err)
	}

	if err := os.WriteFile(filename, contents, 0666); err != nil {
		return fmt.Errorf("failed to write %s: %v", filename, err)
	}

	return nil
}

// pairEndOutput converts one end of a pairing to its JSON shape
func pairEndOutput(e EndInfo, gc, tm float64) PairEndOutput {
	return PairEndOutput{
		FragmentID:   e.FragIndex,
		Polarity:     e.Polarity.String(),
		Enzyme:       e.Enzyme,
		OverhangType: e.Kind.String(),
		OverhangLen:  e.OverhangLen,
		StickySeq:    e.Sticky,
		GCPercent:    gc,
		Tm:           tm,
		Position:     e.Pos,
	}
}
