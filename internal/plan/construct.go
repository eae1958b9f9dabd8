// Package plan searches for multi-step cloning strategies: sequences of
// digest and ligation steps that assemble a target construct from a vector
// and a set of inserts. The search is a beam-limited best-first search over
// sets of available constructs, deduplicated by a structural signature
package plan

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/flavoris/genomancer/internal/digest"
)

// Feature is an annotation on a part, eg a CDS whose reading frame and
// integrity the planner should protect
type Feature struct {
	Type      string `json:"type" yaml:"type"`
	Frame     int    `json:"frame" yaml:"frame"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
	Label     string `json:"label" yaml:"label"`
	Direction string `json:"direction" yaml:"direction"`
}

// Construct is a named DNA molecule: a vector, an insert, or an
// intermediate product of a plan's steps. Constructs are immutable, every
// action materializes new ones and leaves its inputs valid
type Construct struct {
	Name     string
	Seq      string
	Circular bool
	Features []Feature
	Origin   int
	Notes    string

	// Left and Right are the resolved cut ends of a linear intermediate.
	// Starting parts and circular constructs have none
	Left  *digest.EndInfo
	Right *digest.EndInfo

	// Parts are the names of the starting parts this construct contains,
	// sorted. A product covering every part of the target order can be
	// closed into the final construct
	Parts []string
}

// key is a construct's structural identity: name, length, topology, origin
// and a short digest of the sequence. Two constructs with the same key are
// interchangeable for search purposes
func (c Construct) key() string {
	sum := sha1.Sum([]byte(c.Seq))
	return fmt.Sprintf("%s|%d|%t|%d|%s", c.Name, len(c.Seq), c.Circular, c.Origin, hex.EncodeToString(sum[:])[:12])
}

// signature identifies a set of constructs independent of their order and
// of the path that produced them. It is the search's dedup key and its
// priority tie-break
func signature(constructs []Construct) string {
	keys := make([]string, len(constructs))
	for i, c := range constructs {
		keys[i] = c.key()
	}
	sort.Strings(keys)

	return strings.Join(keys, ";")
}

// partsOf is a construct's provenance, falling back to its own name for
// starting parts
func partsOf(c Construct) []string {
	if len(c.Parts) > 0 {
		return c.Parts
	}
	return []string{c.Name}
}

// mergeParts unions two provenance sets, sorted and deduped
func mergeParts(a, b []string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, name := range append(append([]string{}, a...), b...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	sort.Strings(merged)

	return merged
}

var nameChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeName replaces characters unsafe for file paths and identifiers
func SanitizeName(s string) string {
	return nameChars.ReplaceAllString(s, "_")
}
