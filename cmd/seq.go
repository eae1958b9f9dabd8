package cmd

import (
	"github.com/flavoris/genomancer/internal/seq"
	"github.com/spf13/cobra"
)

// seqCmd is for printing quick stats about a sequence
var seqCmd = &cobra.Command{
	Use:                        "seq [sequence]",
	Short:                      "Print stats about a sequence",
	Run:                        seq.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Print the length, GC content and Wallace melting temperature of a
sequence, read from a raw sequence or a FASTA/GenBank file.`,
	Example: "  genomancer seq GAATTCAAACCC --revcomp",
}

// set flags
func init() {
	RootCmd.AddCommand(seqCmd)

	seqCmd.Flags().StringP("in", "i", "", "input sequence or file <FASTA/GenBank>")
	seqCmd.Flags().BoolP("revcomp", "r", false, "print the reverse complement as FASTA")
}
