package plan

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/flavoris/genomancer/config"
	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/spf13/cobra"
)

var stderr = log.New(os.Stderr, "", 0)

// PlanCmd loads a cloning spec, searches for an assembly plan and prints
// it as a summary or a full protocol
func PlanCmd(cmd *cobra.Command, args []string) {
	if n, _ := cmd.Flags().GetInt("design-overhangs"); n > 0 {
		designOverhangs(n)
		return
	}

	specFile, _ := cmd.Flags().GetString("spec")
	if specFile == "" && len(args) > 0 {
		specFile = args[0]
	}
	if specFile == "" {
		stderr.Fatal("no cloning spec passed. pass a JSON/YAML spec file, directly or with --spec")
	}

	spec, err := Load(specFile)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", specFile, err)
	}
	if err := spec.Validate(); err != nil {
		stderr.Fatalf("invalid cloning spec %s: %v", specFile, err)
	}

	plan := NewPlanner(spec, enzyme.NewDB(), config.New()).Plan()

	if protocol, _ := cmd.Flags().GetBool("protocol"); protocol {
		fmt.Println(Protocol(plan))
	} else {
		fmt.Println(Summary(plan))
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := WriteJSON(out, plan); err != nil {
			stderr.Fatal(err)
		}
	}
}

// designOverhangs prints a Golden Gate overhang set for n junctions and
// the Type IIS enzymes in the database that could expose them
func designOverhangs(n int) {
	overhangs, err := DesignOverhangs(n)
	if err != nil {
		stderr.Fatal(err)
	}
	if err := ValidateOverhangs(overhangs); err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("%d overhangs for %d junction(s):\n", len(overhangs), n)
	for i, oh := range overhangs {
		fmt.Printf("  %d  %s\n", i+1, oh)
	}

	db := enzyme.NewDB()
	var typeIIS []string
	for _, name := range db.Names() {
		if enzyme.TypeIIS(name) {
			typeIIS = append(typeIIS, name)
		}
	}
	fmt.Printf("Type IIS enzymes in the database: %s\n", strings.Join(typeIIS, ", "))
}
