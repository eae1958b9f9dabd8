package cmd

import (
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing the enzymes available to digest a sequence.
// Useful for if the user doesn't know which enzymes are available
var enzymesCmd = &cobra.Command{
	Use:                        "enzymes [name]",
	Short:                      "List the enzymes available to digest a sequence",
	Run:                        enzymeDB.ReadCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Lists out all the enzymes by name along with their recognition sequence.

	<Name>: <Recognition sequence>

Passing a name filters the list to enzymes with that or a similar name.`,
}

// enzymesAddCmd is for adding a new enzyme to the enzyme db
var enzymesAddCmd = &cobra.Command{
	Use:                        "add [name] [sequence]",
	Short:                      "Add an enzyme to the enzyme database",
	Run:                        enzymeDB.SetCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"set", "update"},
	Example:                    "  genomancer enzymes add BtgZI GCGATG(10/14)",
	Long: `
Add an enzyme with its name and recognition sequence to the enzyme
database. ^ marks the cut site on the top strand and _ on the bottom.
Added enzymes can be passed to the --enzymes flag of digest and compat.`,
}

// enzymesRmCmd is for deleting enzymes from the enzyme db
var enzymesRmCmd = &cobra.Command{
	Use:                        "rm [name]",
	Short:                      "Delete an enzyme from the enzyme database",
	Run:                        enzymeDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"delete", "remove"},
	Example:                    "  genomancer enzymes rm BtgZI",
	Long: `Delete an enzyme from the enzyme database by its name.
If no such enzyme name exists in the database, an error is logged to stderr.`,
}

// set flags
func init() {
	enzymesCmd.AddCommand(enzymesAddCmd)
	enzymesCmd.AddCommand(enzymesRmCmd)

	RootCmd.AddCommand(enzymesCmd)
}
