package cmd

import (
	"github.com/flavoris/genomancer/internal/digest"
	"github.com/spf13/cobra"
)

// compatCmd is for checking which fragment ends of a digest can ligate
// to each other
var compatCmd = &cobra.Command{
	Use:                        "compat [sequence]",
	Short:                      "Check which digest ends can ligate together",
	Run:                        digest.CompatCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Digest a sequence and report every pair of fragment ends whose overhangs
can anneal. Sticky ends must match in length, type (5' vs 3') and
sequence. With --theoretical the sequence is skipped and the enzymes'
recognition sites are compared directly.`,
	Example: "  genomancer compat pUC19.fa --enzymes \"EcoRI,BamHI\" --format matrix",
}

// set flags
func init() {
	RootCmd.AddCommand(compatCmd)

	compatCmd.Flags().StringP("in", "i", "", "input sequence or file <FASTA/GenBank>")
	compatCmd.Flags().StringP("enzymes", "e", "", enzymesHelp)
	compatCmd.Flags().BoolP("circular", "c", false, "treat the sequence as circular")
	compatCmd.Flags().BoolP("blunt", "b", false, "count blunt-blunt pairs as compatible")
	compatCmd.Flags().IntP("min-overhang", "m", 1, "shortest overhang that still counts as sticky")
	compatCmd.Flags().BoolP("directional", "d", false, "flag pairs that ligate in both orientations")
	compatCmd.Flags().StringP("format", "f", "pairs", "report format [pairs,matrix,detailed]")
	compatCmd.Flags().StringP("out", "o", "", "output file name for the pair report <JSON>")
	compatCmd.Flags().BoolP("theoretical", "t", false, "compare enzymes without a sequence")
	compatCmd.MarkFlagRequired("enzymes")
}
