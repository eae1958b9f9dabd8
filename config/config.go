// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// Home is the directory holding the app's data files
	Home = home()

	// EnzymeDB is the path to the user's enzyme file. Enzymes in it are
	// layered over the built-in ones
	EnzymeDB = filepath.Join(Home, "enzymes.tsv")

	// RootSettingsFile is the default path to a settings file with
	// overrides for the fields below
	RootSettingsFile = filepath.Join(Home, "settings.yaml")
)

// home returns the app's data directory, creating it if it's missing
func home() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to find the user's home directory: %v", err)
	}

	dir := filepath.Join(userHome, ".genomancer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create app directory %s: %v", dir, err)
	}

	return dir
}

// DigestConfig is settings for simulating restriction digests
type DigestConfig struct {
	// whether a single cut linearizes a circular sequence into two
	// fragments rather than one rotated fragment
	SingleCutLinearizes bool `mapstructure:"single-cut-linearizes"`
}

// LigationConfig is settings for end-compatibility checks
type LigationConfig struct {
	// whether blunt-blunt pairs count as compatible
	IncludeBlunt bool `mapstructure:"include-blunt"`

	// the minimum overhang length for a sticky ligation
	MinOverhang int `mapstructure:"min-overhang"`
}

// PlannerConfig is settings that bound the cloning plan search
type PlannerConfig struct {
	// the maximum number of steps in a plan
	MaxSteps int `mapstructure:"max-steps"`

	// the number of best states expanded per search round
	BeamWidth int `mapstructure:"beam-width"`

	// the maximum number of digest actions generated per state
	MaxDigestActions int `mapstructure:"max-digest-actions"`

	// the maximum number of ligation actions generated per state
	MaxLigationActions int `mapstructure:"max-ligation-actions"`

	// the number of database enzymes tried for single digests
	SingleEnzymes int `mapstructure:"single-enzymes"`

	// the number of database enzymes paired up for double digests
	PairEnzymes int `mapstructure:"pair-enzymes"`

	// constructs shorter than this are never digested
	MinConstructLen int `mapstructure:"min-construct-len"`

	// the search cost of a single enzyme digest
	DigestCost float64 `mapstructure:"digest-cost"`

	// the search cost of a double enzyme digest
	DoubleDigestCost float64 `mapstructure:"double-digest-cost"`

	// the search cost of a ligation
	LigationCost float64 `mapstructure:"ligation-cost"`
}

// ScoringConfig is the weights used to rank finished plans. Lower plan
// scores are better, the bonuses are subtracted
type ScoringConfig struct {
	// the penalty per step in the plan
	StepWeight float64 `mapstructure:"step-weight"`

	// the penalty per distinct enzyme used
	EnzymeWeight float64 `mapstructure:"enzyme-weight"`

	// the added penalty per distinct enzyme past the first
	ExtraEnzymeWeight float64 `mapstructure:"extra-enzyme-weight"`

	// the penalty per non-directional ligation when directional
	// cloning was asked for
	NonDirectionalWeight float64 `mapstructure:"non-directional-weight"`

	// the penalty per internal cut in a sequence to protect
	InternalCutWeight float64 `mapstructure:"internal-cut-weight"`

	// the penalty per scar basepair
	ScarWeight float64 `mapstructure:"scar-weight"`

	// the bonus per Golden Gate step when Type IIS enzymes are preferred
	GoldenGateBonus float64 `mapstructure:"golden-gate-bonus"`

	// the bonus per reuse of an already-used enzyme
	ReuseBonus float64 `mapstructure:"reuse-bonus"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Digest engine settings
	Digest DigestConfig

	// Ligation compatibility settings
	Ligation LigationConfig

	// Plan search settings
	Planner PlannerConfig

	// Plan scoring weights
	Scoring ScoringConfig
}

// New returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func New() Config {
	setDefaults()

	// an optional settings file overrides the defaults
	if settings := viper.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			viper.SetConfigFile(settings)
			if err := viper.MergeInConfig(); err != nil {
				log.Fatalf("failed to read settings file %s: %v", settings, err)
			}
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}

// setDefaults registers the fallback value of every setting
func setDefaults() {
	viper.SetDefault("digest.single-cut-linearizes", true)

	viper.SetDefault("ligation.include-blunt", false)
	viper.SetDefault("ligation.min-overhang", 1)

	viper.SetDefault("planner.max-steps", 3)
	viper.SetDefault("planner.beam-width", 10)
	viper.SetDefault("planner.max-digest-actions", 50)
	viper.SetDefault("planner.max-ligation-actions", 20)
	viper.SetDefault("planner.single-enzymes", 20)
	viper.SetDefault("planner.pair-enzymes", 10)
	viper.SetDefault("planner.min-construct-len", 10)
	viper.SetDefault("planner.digest-cost", 1.0)
	viper.SetDefault("planner.double-digest-cost", 1.2)
	viper.SetDefault("planner.ligation-cost", 1.0)

	viper.SetDefault("scoring.step-weight", 1.0)
	viper.SetDefault("scoring.enzyme-weight", 0.5)
	viper.SetDefault("scoring.extra-enzyme-weight", 0.3)
	viper.SetDefault("scoring.non-directional-weight", 1.0)
	viper.SetDefault("scoring.internal-cut-weight", 2.0)
	viper.SetDefault("scoring.scar-weight", 0.1)
	viper.SetDefault("scoring.golden-gate-bonus", 0.4)
	viper.SetDefault("scoring.reuse-bonus", 0.3)
}
