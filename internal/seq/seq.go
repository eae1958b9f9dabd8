// Package seq has primitives for working with DNA sequences: complements,
// composition stats, and wrap-aware slicing for circular molecules
package seq

import (
	"fmt"
	"strings"
)

// comp maps each IUPAC base to its complement. Degenerate codes map to the
// code covering the complements of the bases they cover
var comp = map[rune]rune{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'M': 'K',
	'R': 'Y',
	'W': 'W',
	'Y': 'R',
	'S': 'S',
	'K': 'M',
	'H': 'D',
	'D': 'H',
	'V': 'B',
	'B': 'V',
	'N': 'N',
	'X': 'X',
}

// RevComp returns the reverse complement of a sequence. Unknown characters
// are passed through unchanged rather than dropped
func RevComp(s string) string {
	var rc strings.Builder
	rc.Grow(len(s))

	runes := []rune(strings.ToUpper(s))
	for i := len(runes) - 1; i >= 0; i-- {
		if c, ok := comp[runes[i]]; ok {
			rc.WriteRune(c)
		} else {
			rc.WriteRune(runes[i])
		}
	}

	return rc.String()
}

// GCPercent returns the GC content of a sequence as a percentage (0-100)
func GCPercent(s string) float64 {
	if s == "" {
		return 0.0
	}

	up := strings.ToUpper(s)
	gc := strings.Count(up, "G") + strings.Count(up, "C")

	return float64(gc) / float64(len(s)) * 100.0
}

// MeltingTemp estimates a melting temperature with the Wallace rule,
// 2*(A+T) + 4*(G+C). Only meaningful for short oligos (under ~14 nt)
func MeltingTemp(s string) float64 {
	if s == "" {
		return 0.0
	}

	up := strings.ToUpper(s)
	at := strings.Count(up, "A") + strings.Count(up, "T")
	gc := strings.Count(up, "G") + strings.Count(up, "C")

	return 2.0*float64(at) + 4.0*float64(gc)
}

// Ring returns k bases starting at from, wrapping past the end of the
// sequence. from may be negative or beyond len(s), it is normalized first
func Ring(s string, from, k int) string {
	n := len(s)
	if n == 0 || k <= 0 {
		return ""
	}
	if k > n {
		k = n
	}

	from = ((from % n) + n) % n
	if from+k <= n {
		return s[from : from+k]
	}

	return s[from:] + s[:k-(n-from)]
}

// Clean uppercases a sequence and strips whitespace and digits (the junk
// found in formatted sequence files)
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, c := range strings.ToUpper(s) {
		if c >= 'A' && c <= 'Z' {
			b.WriteRune(c)
		}
	}

	return b.String()
}

// Validate errs if the sequence contains anything other than A, C, G or T
func Validate(s string) error {
	for i, c := range s {
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("invalid DNA character %q at index %d", c, i)
		}
	}

	return nil
}
