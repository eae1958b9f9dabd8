package digest

import (
	"fmt"
	"strings"
)

// header rules a report's title block
func header(title string) []string {
	bar := strings.Repeat("=", 80)
	return []string{bar, title, bar, ""}
}

// FormatPairs renders compatible pairs as a text report
func FormatPairs(pairs []Pair) string {
	if len(pairs) == 0 {
		return "No compatible pairs found.\n"
	}

	lines := header("LIGATION COMPATIBILITY ANALYSIS - COMPATIBLE PAIRS")

	for i, p := range pairs {
		aLabel := fmt.Sprintf("[frag%d:%s] %s", p.A.FragIndex, p.A.Polarity, p.A.Enzyme)
		bLabel := fmt.Sprintf("[frag%d:%s] %s", p.B.FragIndex, p.B.Polarity, p.B.Enzyme)

		if p.A.OverhangLen > 0 {
			avgGC := (p.GCA + p.GCB) / 2
			avgTm := (p.TmA + p.TmB) / 2
			dir := "YES"
			if !p.Directional {
				dir = "NO (palindromic)"
			}

			lines = append(lines,
				fmt.Sprintf("Compatible pair #%d (k=%d):", i+1, p.A.OverhangLen),
				fmt.Sprintf("  %s %s: %s", aLabel, p.A.Kind, p.A.Sticky),
				fmt.Sprintf("  <-> %s %s: %s (revcomp match)", bLabel, p.B.Kind, p.B.Sticky),
				fmt.Sprintf("  directionality: %s, GC%%: %.1f, Tm~%.0fC", dir, avgGC, avgTm),
			)
		} else {
			lines = append(lines,
				fmt.Sprintf("Compatible pair #%d (blunt ends):", i+1),
				fmt.Sprintf("  %s <-> %s", aLabel, bLabel),
				"  Note: Blunt-blunt ligation (requires ligase, not sticky)",
			)
		}

		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("Total compatible pairs: %d", len(pairs)), "")

	return strings.Join(lines, "\n")
}

// FormatMatrix renders every end against every end as a compatibility grid
func FormatMatrix(pairs []Pair, ends []EndInfo) string {
	lines := header("LIGATION COMPATIBILITY ANALYSIS - COMPATIBILITY MATRIX")

	if len(ends) == 0 {
		lines = append(lines, "No ends to display.")
		return strings.Join(lines, "\n")
	}

	type endKey struct {
		fragA int
		polA  Polarity
		fragB int
		polB  Polarity
	}
	compat := make(map[endKey]bool)
	for _, p := range pairs {
		compat[endKey{p.A.FragIndex, p.A.Polarity, p.B.FragIndex, p.B.Polarity}] = true
		compat[endKey{p.B.FragIndex, p.B.Polarity, p.A.FragIndex, p.A.Polarity}] = true
	}

	labels := make([]string, len(ends))
	for i, end := range ends {
		labels[i] = fmt.Sprintf("F%d%s", end.FragIndex, strings.ToUpper(end.Polarity.String()[:1]))
	}

	head := make([]string, len(labels))
	for i, label := range labels {
		head[i] = fmt.Sprintf("%4s", label)
	}
	lines = append(lines, "    "+strings.Join(head, " "))
	lines = append(lines, "    "+strings.Repeat("-", 5*len(labels)))

	for i, a := range ends {
		row := fmt.Sprintf("%-4s", labels[i])
		for j, b := range ends {
			var cell string
			switch {
			case i == j:
				cell = "  - "
			case compat[endKey{a.FragIndex, a.Polarity, b.FragIndex, b.Polarity}]:
				cell = "  x "
				if a.OverhangLen == 0 && b.OverhangLen == 0 {
					cell = "  o "
				}
			default:
				cell = "  . "
			}
			row += cell
		}
		lines = append(lines, row)
	}

	lines = append(lines,
		"",
		"Legend:",
		"  x  = compatible (sticky ends)",
		"  o  = compatible (blunt ends)",
		"  .  = incompatible",
		"  -  = same end",
		"",
		fmt.Sprintf("Total compatible pairs: %d", len(pairs)),
		"",
	)

	return strings.Join(lines, "\n")
}

// FormatDetailed renders compatible pairs with per-end detail
func FormatDetailed(pairs []Pair) string {
	if len(pairs) == 0 {
		return "No compatible pairs found.\n"
	}

	lines := header("LIGATION COMPATIBILITY ANALYSIS - DETAILED REPORT")

	for i, p := range pairs {
		lines = append(lines, fmt.Sprintf("Pair #%d:", i+1))
		lines = append(lines, endDetail("A", p.A, p.GCA, p.TmA)...)
		lines = append(lines, endDetail("B", p.B, p.GCB, p.TmB)...)
		lines = append(lines,
			"  Compatible: true",
			fmt.Sprintf("  Directional: %t", p.Directional),
			fmt.Sprintf("  Note: %s", p.Note),
			"",
		)
	}

	lines = append(lines, fmt.Sprintf("Total compatible pairs: %d", len(pairs)), "")

	return strings.Join(lines, "\n")
}

// endDetail renders one end of a detailed pair report
func endDetail(side string, e EndInfo, gc, tm float64) []string {
	lines := []string{
		fmt.Sprintf("  End %s: Fragment %d (%s), Enzyme: %s", side, e.FragIndex, e.Polarity, e.Enzyme),
		fmt.Sprintf("         Type: %s, Length: %d bp", e.Kind, e.OverhangLen),
	}

	if e.OverhangLen > 0 {
		lines = append(lines,
			fmt.Sprintf("         Sequence: 5'-%s-3'", e.Sticky),
			fmt.Sprintf("         GC%%: %.1f%%, Tm: %.1fC", gc, tm),
		)
	}

	return lines
}
