package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CloningSpec describes an assembly: the vector, the inserts, the target
// part order with its junctions, and constraints on the search
type CloningSpec struct {
	Vector      PartSpec       `json:"vector" yaml:"vector"`
	Inserts     []PartSpec     `json:"inserts" yaml:"inserts"`
	Target      TargetSpec     `json:"target" yaml:"target"`
	Constraints ConstraintSpec `json:"constraints" yaml:"constraints"`
}

// PartSpec names one starting molecule. Fasta is a file path or a raw
// sequence. An unset circular flag means circular for the vector and
// linear for inserts
type PartSpec struct {
	Name     string    `json:"name" yaml:"name"`
	Fasta    string    `json:"fasta" yaml:"fasta"`
	Circular *bool     `json:"circular" yaml:"circular"`
	Features []Feature `json:"features" yaml:"features"`
}

// TargetSpec is the goal: parts in their final order around the circle,
// with optional per-junction requirements
type TargetSpec struct {
	Name      string         `json:"name" yaml:"name"`
	Order     []string       `json:"order" yaml:"order"`
	Junctions []JunctionSpec `json:"junctions" yaml:"junctions"`
}

// JunctionSpec is one required joint between two named parts
type JunctionSpec struct {
	Left        string `json:"left" yaml:"left"`
	Right       string `json:"right" yaml:"right"`
	Directional bool   `json:"directional" yaml:"directional"`
}

// ConstraintSpec bounds the search. Zero values mean the defaults: protect
// CDS features, 4 bp minimum overhang, all database enzymes allowed
type ConstraintSpec struct {
	AvoidInternalCuts  *bool    `json:"avoid_internal_cuts" yaml:"avoid_internal_cuts"`
	MinOverhang        int      `json:"min_overhang" yaml:"min_overhang"`
	AvoidEnzymes       []string `json:"avoid_enzymes" yaml:"avoid_enzymes"`
	AllowEnzymes       []string `json:"allow_enzymes" yaml:"allow_enzymes"`
	RequireDirectional bool     `json:"require_directional" yaml:"require_directional"`
	PreferTypeIIS      bool     `json:"prefer_type_iis" yaml:"prefer_type_iis"`
}

// Load reads a cloning spec from a JSON or YAML file, deciding the format
// by extension and falling back to trying both
func Load(filename string) (*CloningSpec, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %v", filename, err)
	}

	spec := &CloningSpec{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(contents, spec); err != nil {
			return nil, fmt.Errorf("failed to parse %s as JSON: %v", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, spec); err != nil {
			return nil, fmt.Errorf("failed to parse %s as YAML: %v", filename, err)
		}
	default:
		if jsonErr := json.Unmarshal(contents, spec); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(contents, spec); yamlErr != nil {
				return nil, fmt.Errorf("failed to parse %s as JSON or YAML: %v", filename, jsonErr)
			}
		}
	}

	return spec, nil
}

// Validate checks the spec's required fields and the consistency of the
// target order against the declared parts
func (s *CloningSpec) Validate() error {
	if s.Vector.Name == "" {
		return fmt.Errorf("vector must have a 'name' field")
	}
	if s.Vector.Fasta == "" {
		return fmt.Errorf("vector must have a 'fasta' field")
	}

	for i, ins := range s.Inserts {
		if ins.Name == "" {
			return fmt.Errorf("insert %d must have a 'name' field", i)
		}
		if ins.Fasta == "" {
			return fmt.Errorf("insert %d must have a 'fasta' field", i)
		}
	}

	if len(s.Target.Order) == 0 {
		return fmt.Errorf("target must have an 'order' field")
	}

	parts := map[string]bool{s.Vector.Name: true}
	for _, ins := range s.Inserts {
		parts[ins.Name] = true
	}
	for _, name := range s.Target.Order {
		if !parts[name] {
			return fmt.Errorf("unknown part in order: %s", name)
		}
	}

	for i, j := range s.Target.Junctions {
		if j.Left == "" {
			return fmt.Errorf("junction %d missing required key: left", i)
		}
		if j.Right == "" {
			return fmt.Errorf("junction %d missing required key: right", i)
		}
	}

	return nil
}

// Junction returns the declared junction between two parts, nil when the
// spec leaves it unconstrained
func (s *CloningSpec) Junction(left, right string) *JunctionSpec {
	for i, j := range s.Target.Junctions {
		if j.Left == left && j.Right == right {
			return &s.Target.Junctions[i]
		}
	}

	return nil
}

// normalizeFeatures drops features without a type and fills in the forward
// direction default
func normalizeFeatures(feats []Feature) []Feature {
	var valid []Feature
	for _, f := range feats {
		if f.Type == "" {
			continue
		}
		if f.Direction == "" {
			f.Direction = "forward"
		}
		valid = append(valid, f)
	}

	return valid
}
