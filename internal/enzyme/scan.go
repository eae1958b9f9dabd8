package enzyme

import (
	"regexp"
	"sort"
	"strings"
)

// recogRegex turns a recognition sequence into a regex sequence for
// searching the template sequence for digestion sites
func recogRegex(recog string) (decoded string) {
	regexDecode := map[rune]string{
		'A': "A",
		'C': "C",
		'G': "G",
		'T': "T",
		'M': "(A|C)",
		'R': "(A|G)",
		'W': "(A|T)",
		'Y': "(C|T)",
		'S': "(C|G)",
		'K': "(G|T)",
		'H': "(A|C|T)",
		'D': "(A|G|T)",
		'V': "(A|C|G)",
		'B': "(C|G|T)",
		'N': "(A|C|G|T)",
		'X': "(A|C|G|T)",
	}

	var regexDecoder strings.Builder
	for _, c := range recog {
		regexDecoder.WriteString(regexDecode[c])
	}

	return regexDecoder.String()
}

// Scan finds the enzyme's cut positions on the top strand of a sequence.
// Matching is checked at every offset so overlapping sites are all found.
// For circular sequences, sites may span the origin and positions are
// normalized to [0, len). The returned positions are sorted and deduped
func Scan(e Enzyme, seq string, circular bool) []int {
	seq = strings.ToUpper(seq)
	if len(seq) == 0 || len(e.Recog) == 0 || len(seq) < len(e.Recog) {
		return nil
	}

	reg := regexp.MustCompile("^" + recogRegex(e.Recog))

	window := seq
	if circular {
		// extend past the origin so wrapping sites match
		window = seq + seq[:len(e.Recog)-1]
	}

	seen := make(map[int]bool)
	var cuts []int
	for i := 0; i+len(e.Recog) <= len(window); i++ {
		if !reg.MatchString(window[i:]) {
			continue
		}

		cut := (i + e.CutInd) % len(seq)
		if !seen[cut] {
			seen[cut] = true
			cuts = append(cuts, cut)
		}
	}

	sort.Ints(cuts)
	return cuts
}
