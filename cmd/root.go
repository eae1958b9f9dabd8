// Package cmd is for command line interactions with the genomancer application
package cmd

import (
	"log"

	"github.com/flavoris/genomancer/config"
	"github.com/flavoris/genomancer/internal/enzyme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var enzymeDB = enzyme.NewDB()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "genomancer",
	Short: `Simulate restriction digests and plan multi-step cloning workflows.
Cut sequences with the enzymes of a database, check which ends can ligate,
and search for the cheapest assembly of a target construct`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults in config)
	RootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "digest, ligation and planner settings")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}
