package grid

import "github.com/rivo/uniseg"

// ellipsisTruncate truncates s to fit within width display cells,
// appending "…" when truncation happens, cutting only at grapheme
// cluster boundaries so wide/combining runes never split mid-cluster
// (§4.6's "single-line, end-ellipsis" cell text rule).
func ellipsisTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	budget := width - 1 // reserve one cell for the ellipsis itself
	var out []byte
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := uniseg.StringWidth(cluster)
		if used+w > budget {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + "…"
}

// displayWidth returns the number of terminal display cells s occupies.
func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}
