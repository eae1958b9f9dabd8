package digest

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/flavoris/genomancer/config"
	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/flavoris/genomancer/internal/seq"
	"github.com/spf13/cobra"
)

var stderr = log.New(os.Stderr, "", 0)

// DigestCmd simulates a restriction digest: finds the cut sites, prints
// the fragment table and writes any requested export files
func DigestCmd(cmd *cobra.Command, args []string) {
	input := inputArg(cmd, args)
	names, _ := cmd.Flags().GetString("enzymes")
	if names == "" {
		stderr.Fatal("no enzymes passed. set a comma separated list with --enzymes")
	}

	circular, _ := cmd.Flags().GetBool("circular")
	showBands, _ := cmd.Flags().GetBool("bands")
	showSeqs, _ := cmd.Flags().GetBool("seqs")
	out, _ := cmd.Flags().GetString("out")
	genbank, _ := cmd.Flags().GetString("genbank")
	csvPrefix, _ := cmd.Flags().GetString("csv")
	fastaOut, _ := cmd.Flags().GetString("fasta")

	conf := config.New()

	rec, err := seq.Read(input)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", input, err)
	}

	enzymes := resolveEnzymes(enzyme.NewDB(), splitNames(names))
	frags, cuts, err := Digest(rec.Seq, circular, enzymes, conf.Digest.SingleCutLinearizes)
	if err != nil {
		stderr.Fatalf("failed to digest %s: %v", rec.Name, err)
	}

	topo := "linear"
	if circular {
		topo = "circular"
	}
	fmt.Printf("%s: %d bp, %s, %d cut site(s)\n", rec.Name, len(rec.Seq), topo, len(cuts))
	for _, c := range cuts {
		fmt.Printf("  %d  %s\n", c.Pos, strings.Join(cutEnzymes(c), ", "))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "frag\tstart\tend\tlength\tleft\tright\tband\n")
	for _, f := range frags {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			f.Index, f.Start, f.End, f.Length, endName(f.Left), endName(f.Right), BandClass(f.Length))
	}
	w.Flush()

	if showSeqs {
		fmt.Println()
		for _, f := range frags {
			fmt.Printf(">%s_frag%d\n%s\n", rec.Name, f.Index, f.Seq)
		}
	}

	if showBands {
		lengths := make([]int, len(frags))
		for i, f := range frags {
			lengths[i] = f.Length
		}
		fmt.Println()
		fmt.Println(PredictBands(lengths))
	}

	enzymeNames := make([]string, len(enzymes))
	for i, e := range enzymes {
		enzymeNames[i] = e.Name
	}

	if out != "" {
		if err := WriteJSON(out, NewOutput(rec.Name, rec.Seq, circular, enzymeNames, cuts, frags)); err != nil {
			stderr.Fatal(err)
		}
	}
	if genbank != "" {
		definition := fmt.Sprintf("%s digested with %s", rec.Name, strings.Join(enzymeNames, "+"))
		if err := WriteGenbank(genbank, rec.Name, rec.Seq, circular, cuts, frags, definition, "synthetic DNA construct"); err != nil {
			stderr.Fatal(err)
		}
	}
	if csvPrefix != "" {
		if err := WriteFragmentsCSV(csvPrefix+"_fragments.csv", frags, circular); err != nil {
			stderr.Fatal(err)
		}
		if err := WriteCutsCSV(csvPrefix+"_cuts.csv", cuts); err != nil {
			stderr.Fatal(err)
		}
	}
	if fastaOut != "" {
		records := make([]seq.Record, len(frags))
		for i, f := range frags {
			records[i] = seq.Record{Name: fmt.Sprintf("%s_frag%d", rec.Name, f.Index), Seq: f.Seq}
		}
		if err := seq.Write(fastaOut, records); err != nil {
			stderr.Fatal(err)
		}
	}
}

// CompatCmd checks which ends of a digest can ligate to each other, or,
// with --theoretical, which enzymes could produce matching ends at all
func CompatCmd(cmd *cobra.Command, args []string) {
	names, _ := cmd.Flags().GetString("enzymes")
	if names == "" {
		stderr.Fatal("no enzymes passed. set a comma separated list with --enzymes")
	}

	db := enzyme.NewDB()
	enzymes := resolveEnzymes(db, splitNames(names))

	theoretical, _ := cmd.Flags().GetBool("theoretical")
	if theoretical {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintf(w, "enzyme a\tenzyme b\tcompatible\tnote\n")
		for i := 0; i < len(enzymes); i++ {
			for j := i; j < len(enzymes); j++ {
				p := AnalyzeEnzymePair(enzymes[i], enzymes[j])
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", p.EnzymeA, p.EnzymeB, p.Compatible, p.Note)
			}
		}
		w.Flush()
		return
	}

	input := inputArg(cmd, args)
	circular, _ := cmd.Flags().GetBool("circular")
	directional, _ := cmd.Flags().GetBool("directional")
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	conf := config.New()

	// settings file defaults, overridden per run by flags
	includeBlunt := conf.Ligation.IncludeBlunt
	if cmd.Flags().Changed("blunt") {
		includeBlunt, _ = cmd.Flags().GetBool("blunt")
	}
	minOverhang := conf.Ligation.MinOverhang
	if cmd.Flags().Changed("min-overhang") {
		minOverhang, _ = cmd.Flags().GetInt("min-overhang")
	}

	rec, err := seq.Read(input)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", input, err)
	}

	frags, _, err := Digest(rec.Seq, circular, enzymes, conf.Digest.SingleCutLinearizes)
	if err != nil {
		stderr.Fatalf("failed to digest %s: %v", rec.Name, err)
	}

	ends := Ends(frags)
	pairs := Pairs(ends, includeBlunt, minOverhang, directional)

	switch format {
	case "matrix":
		fmt.Println(FormatMatrix(pairs, ends))
	case "detailed":
		fmt.Println(FormatDetailed(pairs))
	default:
		fmt.Println(FormatPairs(pairs))
	}

	if out != "" {
		if err := WritePairs(out, pairs); err != nil {
			stderr.Fatal(err)
		}
	}
}

// inputArg is the input sequence or file, from the first positional
// argument or the --in flag
func inputArg(cmd *cobra.Command, args []string) string {
	input, _ := cmd.Flags().GetString("in")
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		stderr.Fatal("no input sequence. pass a sequence or a FASTA/GenBank file, directly or with --in")
	}

	return input
}

// splitNames splits a comma or space separated list of enzyme names
func splitNames(names string) []string {
	return strings.FieldsFunc(names, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// resolveEnzymes looks up each named enzyme in the db
func resolveEnzymes(db *enzyme.DB, names []string) []enzyme.Enzyme {
	enzymes := make([]enzyme.Enzyme, len(names))
	for i, name := range names {
		e, err := db.Lookup(name)
		if err != nil {
			stderr.Fatal(err)
		}
		enzymes[i] = e
	}

	return enzymes
}

// endName names a fragment end for the table, "-" for a natural terminus
func endName(e *EndInfo) string {
	if e == nil {
		return "-"
	}
	return e.Enzyme
}

// cutEnzymes lists the names of every enzyme cutting at one position
func cutEnzymes(c Cut) []string {
	names := make([]string, len(c.Enzymes))
	for i, m := range c.Enzymes {
		names[i] = m.Enzyme
	}
	return names
}
