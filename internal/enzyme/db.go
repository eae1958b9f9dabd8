package enzyme

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/flavoris/genomancer/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to os.Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// defaultEnzymes are the built-in enzymes. '^' marks the top strand cut
// and '_' the bottom strand cut
var defaultEnzymes = map[string]string{
	"EcoRI":   "G^AATT_C",
	"BamHI":   "G^GATC_C",
	"HindIII": "A^AGCT_T",
	"PstI":    "C_TGCA^G",
	"NotI":    "GC^GGCC_GC",
	"XbaI":    "T^CTAG_A",
	"SpeI":    "A^CTAG_T",
	"BsaI":    "G^GTCT_C",
	"NheI":    "G^CTAG_C",
	"SmaI":    "CCC^_GGG",
}

// DB is a struct for accessing the enzymes database
type DB struct {
	// enzymes is a map between an enzyme's name and its recognition sequence
	enzymes map[string]string
}

// NewDB returns the enzymes db: the built-in enzymes with the user's
// enzyme file, if any, layered on top
func NewDB() *DB {
	enzymes := make(map[string]string)
	for name, seq := range defaultEnzymes {
		enzymes[name] = seq
	}

	if _, err := os.Stat(config.EnzymeDB); err != nil {
		return &DB{enzymes: enzymes}
	}

	enzymeFile, err := os.Open(config.EnzymeDB)
	if err != nil {
		stderr.Fatal(err)
	}

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(enzymeFile)
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if len(columns) < 2 {
			continue
		}
		enzymes[columns[0]] = columns[1] // enzyme name = enzyme seq
	}

	if err := enzymeFile.Close(); err != nil {
		stderr.Fatal(err)
	}

	return &DB{enzymes: enzymes}
}

// Lookup finds an enzyme by its name and parses it. The match is case
// insensitive, the stored capitalization wins
func (d *DB) Lookup(name string) (Enzyme, error) {
	recog, exists := d.enzymes[name]
	if !exists {
		for stored, storedRecog := range d.enzymes {
			if strings.EqualFold(stored, name) {
				name, recog, exists = stored, storedRecog, true
				break
			}
		}
	}
	if !exists {
		return Enzyme{}, fmt.Errorf(
			`failed to find enzyme with name %s. use "genomancer enzymes" for a list of recognized enzymes`,
			name,
		)
	}

	return New(name, recog)
}

// Names returns the names of every enzyme in the db, sorted
func (d *DB) Names() []string {
	names := make([]string, 0, len(d.enzymes))
	for name := range d.enzymes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// row formats one enzyme for the list output
func (d *DB) row(name string) string {
	seq := d.enzymes[name]
	enz, err := New(name, seq)
	if err != nil {
		return fmt.Sprintf("%s\t%s\t\t", name, seq)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%d", name, seq, enz.Kind(), enz.OverhangLen())
}

// ReadCmd returns enzymes that are similar in name to the enzyme name requested.
// if multiple enzyme names include the enzyme name, they are all returned.
// otherwise a list of enzyme names are returned (those beneath a levenshtein distance cutoff)
func (d *DB) ReadCmd(cmd *cobra.Command, args []string) {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		for _, name := range d.Names() {
			fmt.Fprintln(w, d.row(name))
		}
		w.Flush()
		return
	}

	name := args[0]

	// if there's an exact match, just log that one
	if _, exists := d.enzymes[name]; exists {
		fmt.Fprintln(w, d.row(name))
		w.Flush()
		return
	}

	ldCutoff := 2
	containing := []string{}
	lowDistance := []string{}

	for eName := range d.enzymes {
		if strings.Contains(eName, name) {
			containing = append(containing, d.row(eName))
		} else if len(eName) > ldCutoff && ld(name, eName, true) <= ldCutoff {
			lowDistance = append(lowDistance, d.row(eName))
		}
	}

	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		containing = []string{} // clear
	}
	sort.Strings(containing)
	sort.Strings(lowDistance)

	if len(containing) > 0 {
		fmt.Fprint(w, strings.Join(containing, "\n"))
	} else if len(lowDistance) > 0 {
		fmt.Fprint(w, strings.Join(lowDistance, "\n"))
	} else {
		fmt.Fprintf(w, "failed to find any enzymes for %s", name)
	}
	w.Write([]byte("\n"))
	w.Flush()
}

// SetCmd the enzyme's seq in the database (or create if it isn't in the enzyme db)
func (d *DB) SetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting two args: a name and recognition sequence. see 'genomancer enzymes add --help'\n")
	}

	name := args[0]
	seq := args[1]
	if len(args) > 2 {
		name = strings.Join(args[:len(args)-1], " ")
		seq = args[len(args)-1]
	}
	seq = strings.ToUpper(seq)

	if _, err := New(name, seq); err != nil {
		stderr.Fatalf("%v. see 'genomancer enzymes add --help'\n", err)
	}

	// read the user's enzyme file, the built-in enzymes stay as they are
	contents, err := os.ReadFile(config.EnzymeDB)
	if err != nil && !os.IsNotExist(err) {
		stderr.Fatal(err)
	}

	var output strings.Builder
	updated := false
	scanner := bufio.NewScanner(strings.NewReader(string(contents)))
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if columns[0] == name {
			output.WriteString(fmt.Sprintf("%s\t%s\n", name, seq))
			updated = true
		} else {
			output.WriteString(scanner.Text() + "\n")
		}
	}

	// create from nothing
	if !updated {
		output.WriteString(fmt.Sprintf("%s\t%s\n", name, seq))
	}

	if err := os.WriteFile(config.EnzymeDB, []byte(output.String()), 0644); err != nil {
		stderr.Fatal(err)
	}

	if updated {
		fmt.Printf("updated %s in the enzymes database\n", name)
	} else {
		fmt.Printf("added %s to the enzymes database\n", name)
	}

	// update in memory
	d.enzymes[name] = seq
}

// DeleteCmd the enzyme from the database
func (d *DB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting one arg: an enzyme's name. %d passed\n", len(args))
	}

	name := args[0]
	if len(args) > 1 {
		name = strings.Join(args, " ")
	}

	contents, err := os.ReadFile(config.EnzymeDB)
	if err != nil && !os.IsNotExist(err) {
		stderr.Fatal(err)
	}

	var output strings.Builder
	deleted := false
	scanner := bufio.NewScanner(strings.NewReader(string(contents)))
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if columns[0] != name {
			output.WriteString(scanner.Text() + "\n")
		} else {
			deleted = true
		}
	}

	if err := os.WriteFile(config.EnzymeDB, []byte(output.String()), 0644); err != nil {
		stderr.Fatal(err)
	}

	if deleted {
		// fall back to the built-in definition if there is one
		if seq, builtin := defaultEnzymes[name]; builtin {
			d.enzymes[name] = seq
		} else {
			delete(d.enzymes, name)
		}
		fmt.Printf("deleted %s from the enzymes database\n", name)
		return
	}

	if _, builtin := defaultEnzymes[name]; builtin {
		fmt.Printf("%s is a built-in enzyme and cannot be deleted\n", name)
	} else {
		fmt.Printf("failed to find %s in the enzymes database\n", name)
	}
}

// ld compares two strings and returns the levenshtein distance between them
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}

	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}

	return d[len(s)][len(t)]
}
