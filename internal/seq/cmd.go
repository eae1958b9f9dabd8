package seq

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var stderr = log.New(os.Stderr, "", 0)

// StatsCmd prints the length, GC content and melting temperature of a
// sequence, or its reverse complement as FASTA with --revcomp
func StatsCmd(cmd *cobra.Command, args []string) {
	input, _ := cmd.Flags().GetString("in")
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		stderr.Fatal("no input sequence. pass a sequence or a FASTA/GenBank file, directly or with --in")
	}

	rec, err := Read(input)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", input, err)
	}

	if revcomp, _ := cmd.Flags().GetBool("revcomp"); revcomp {
		fmt.Printf(">%s_revcomp\n%s\n", rec.Name, RevComp(rec.Seq))
		return
	}

	fmt.Printf("%s\n", rec.Name)
	fmt.Printf("  length: %d bp\n", len(rec.Seq))
	fmt.Printf("  GC: %.1f%%\n", GCPercent(rec.Seq))
	fmt.Printf("  Tm (Wallace): %.1f C\n", MeltingTemp(rec.Seq))
}
