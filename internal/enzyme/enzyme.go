// Package enzyme models restriction enzymes: their recognition sequences,
// where they cut each strand, and the database they're read from
package enzyme

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the kind of end an enzyme leaves behind after cutting
type Kind int

const (
	// FivePrime overhang, single stranded bases extending from the 5' end
	FivePrime Kind = iota

	// ThreePrime overhang, single stranded bases extending from the 3' end
	ThreePrime

	// Blunt end without a single stranded extension
	Blunt
)

// String returns the kind's label as used in reports and file exports
func (k Kind) String() string {
	switch k {
	case FivePrime:
		return "5' overhang"
	case ThreePrime:
		return "3' overhang"
	}
	return "Blunt"
}

// Enzyme is a single restriction enzyme. Its recognition sequence is stored
// without the '^' and '_' markers, those become CutInd and HangInd: the
// 0-based offsets within the site where the top and bottom strand are cut
type Enzyme struct {
	// Name of the enzyme, eg "EcoRI"
	Name string

	// Recog is the recognition sequence, possibly with IUPAC degeneracy codes
	Recog string

	// CutInd is where the top strand is cut, relative to the site's start
	CutInd int

	// HangInd is where the bottom strand is cut, relative to the site's start
	HangInd int
}

// siteChars matches characters that aren't part of a valid recognition
// sequence with cut site markers
var siteChars = regexp.MustCompile(`[^ATGCMRWYSKHDVBNX_\^]`)

// New parses a recognition sequence with one '^' (top strand cut) and one
// '_' (bottom strand cut) into an Enzyme
func New(name, recogSeq string) (Enzyme, error) {
	recogSeq = siteChars.ReplaceAllString(strings.ToUpper(recogSeq), "")

	if strings.Count(recogSeq, "^") != 1 || strings.Count(recogSeq, "_") != 1 {
		return Enzyme{}, fmt.Errorf("%s is not a valid recognition sequence: expecting one '^' and one '_'", recogSeq)
	}

	cutIndex := strings.Index(recogSeq, "^")
	hangIndex := strings.Index(recogSeq, "_")

	if cutIndex < hangIndex {
		hangIndex--
	} else {
		cutIndex--
	}

	recogSeq = strings.Replace(recogSeq, "^", "", -1)
	recogSeq = strings.Replace(recogSeq, "_", "", -1)

	return Enzyme{
		Name:    name,
		Recog:   recogSeq,
		CutInd:  cutIndex,
		HangInd: hangIndex,
	}, nil
}

// Kind returns the kind of ends the enzyme leaves after cutting
func (e Enzyme) Kind() Kind {
	if e.CutInd < e.HangInd {
		return FivePrime
	}
	if e.CutInd > e.HangInd {
		return ThreePrime
	}
	return Blunt
}

// OverhangLen is the number of single stranded bases at each cut end
func (e Enzyme) OverhangLen() int {
	if e.CutInd > e.HangInd {
		return e.CutInd - e.HangInd
	}
	return e.HangInd - e.CutInd
}

// typeIIS enzymes cut outside or at the edge of their recognition site and
// leave overhangs chosen by the sequence, which is what Golden Gate
// assembly relies on
var typeIIS = map[string]bool{
	"BsaI":  true,
	"BsmBI": true,
	"BbsI":  true,
	"SapI":  true,
}

// TypeIIS returns whether the named enzyme is a Type IIS enzyme
func TypeIIS(name string) bool {
	return typeIIS[name]
}
