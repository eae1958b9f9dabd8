package cmd

import (
	"github.com/flavoris/genomancer/internal/digest"
	"github.com/spf13/cobra"
)

var enzymesHelp = `comma separated list of enzyme names.
'genomancer enzymes' prints a list of recognized enzymes.`

// digestCmd is for cutting a sequence with restriction enzymes and
// reporting the resulting fragments
var digestCmd = &cobra.Command{
	Use:                        "digest [sequence]",
	Short:                      "Cut a sequence with restriction enzymes",
	Run:                        digest.DigestCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Simulate a restriction digest of a linear or circular sequence. The cut
sites of each enzyme are found, coincident sites are merged, and the
fragments between cuts are reported with their lengths, sticky ends and
gel band class.`,
	Example: "  genomancer digest pUC19.fa --enzymes \"EcoRI,BamHI\" --circular",
}

// set flags
func init() {
	RootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringP("in", "i", "", "input sequence or file <FASTA/GenBank>")
	digestCmd.Flags().StringP("enzymes", "e", "", enzymesHelp)
	digestCmd.Flags().BoolP("circular", "c", false, "treat the sequence as circular")
	digestCmd.Flags().BoolP("seqs", "q", false, "print each fragment's sequence as FASTA")
	digestCmd.Flags().BoolP("bands", "b", false, "print a predicted gel lane")
	digestCmd.Flags().StringP("out", "o", "", "output file name for the digest <JSON>")
	digestCmd.Flags().StringP("genbank", "g", "", "output file name for an annotated record <GenBank>")
	digestCmd.Flags().StringP("csv", "v", "", "output file prefix for fragment and cut tables <CSV>")
	digestCmd.Flags().StringP("fasta", "f", "", "output file name for the fragment sequences <FASTA>")
	digestCmd.MarkFlagRequired("enzymes")
}
