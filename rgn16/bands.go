package rgn16

import "sort"

// span is a half-open horizontal interval [X0, X1) within one y-band.
type span struct {
	X0, X1 Coord
}

// band is a maximal run of body rectangles sharing Y0 and Y1, reduced to
// their x-spans (sorted ascending, disjoint, non-touching).
type band struct {
	Y0, Y1 Coord
	Spans  []span
}

// bandsOf extracts the band decomposition of a region's body. For a
// Simple region this is a single band with a single span.
func bandsOf(r Region) []band {
	switch len(r.rects) {
	case 0:
		return nil
	case 1:
		rc := r.rects[0]
		return []band{{Y0: rc.Y0, Y1: rc.Y1, Spans: []span{{rc.X0, rc.X1}}}}
	default:
		body := r.rects[1:]
		bands := make([]band, 0, 4)
		i := 0
		for i < len(body) {
			y0, y1 := body[i].Y0, body[i].Y1
			spans := make([]span, 0, 2)
			for i < len(body) && body[i].Y0 == y0 && body[i].Y1 == y1 {
				spans = append(spans, span{body[i].X0, body[i].X1})
				i++
			}
			bands = append(bands, band{Y0: y0, Y1: y1, Spans: spans})
		}
		return bands
	}
}

// spansAt returns the spans of the band covering y in bs, or nil if y
// falls in a gap between bands.
func spansAt(bs []band, y Coord) []span {
	// bs is sorted ascending by Y0 with no overlaps; linear scan is fine
	// for the band counts a grid selection realistically produces.
	for _, b := range bs {
		if b.Y0 <= y && y < b.Y1 {
			return b.Spans
		}
		if b.Y0 > y {
			break
		}
	}
	return nil
}

// breakpoints collects every distinct Y0/Y1 boundary from both band lists,
// sorted ascending. Consecutive pairs delimit strips in which neither
// input region changes which band (if any) covers it.
func breakpoints(b1, b2 []band) []Coord {
	seen := make(map[Coord]struct{}, len(b1)*2+len(b2)*2)
	add := func(y Coord) { seen[y] = struct{}{} }
	for _, b := range b1 {
		add(b.Y0)
		add(b.Y1)
	}
	for _, b := range b2 {
		add(b.Y0)
		add(b.Y1)
	}
	ys := make([]Coord, 0, len(seen))
	for y := range seen {
		ys = append(ys, y)
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	return ys
}

// mergeSpans sorts and coalesces touching/overlapping spans into minimal
// disjoint, non-touching form (§3.2 rule 4).
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].X0 < spans[j].X0 })
	out := make([]span, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.X0 <= cur.X1 {
			if s.X1 > cur.X1 {
				cur.X1 = s.X1
			}
			continue
		}
		out = append(out, cur)
		cur = s
	}
	out = append(out, cur)
	return out
}

// unionSpans returns the union of two disjoint, sorted span sets.
func unionSpans(a, b []span) []span {
	if len(a) == 0 {
		return append([]span(nil), b...)
	}
	if len(b) == 0 {
		return append([]span(nil), a...)
	}
	all := make([]span, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return mergeSpans(all)
}

// subtractSpans returns a with every span of b removed.
func subtractSpans(a, b []span) []span {
	if len(a) == 0 || len(b) == 0 {
		return append([]span(nil), a...)
	}
	cur := append([]span(nil), a...)
	for _, sb := range b {
		var next []span
		for _, sc := range cur {
			if sb.X1 <= sc.X0 || sb.X0 >= sc.X1 {
				next = append(next, sc)
				continue
			}
			if sb.X0 > sc.X0 {
				next = append(next, span{sc.X0, sb.X0})
			}
			if sb.X1 < sc.X1 {
				next = append(next, span{sb.X1, sc.X1})
			}
		}
		cur = next
	}
	return mergeSpans(cur)
}

// xorSpans returns the symmetric difference of two disjoint, sorted span
// sets.
func xorSpans(a, b []span) []span {
	return unionSpans(subtractSpans(a, b), subtractSpans(b, a))
}

// combineBands runs a per-strip span operator over the breakpoint-induced
// strips of two band lists and returns the resulting band list, already
// coalesced per §3.2 rule 5.
func combineBands(b1, b2 []band, op func(a, b []span) []span) []band {
	ys := breakpoints(b1, b2)
	out := make([]band, 0, len(ys))
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		spans := op(spansAt(b1, y0), spansAt(b2, y0))
		if len(spans) == 0 {
			continue
		}
		out = append(out, band{Y0: y0, Y1: y1, Spans: spans})
	}
	return coalesceBands(out)
}

// coalesceBands merges adjacent bands that touch vertically (prev.Y1 ==
// cur.Y0) and share an identical x-span layout, per §3.2 rule 5.
func coalesceBands(bands []band) []band {
	if len(bands) == 0 {
		return bands
	}
	out := make([]band, 0, len(bands))
	out = append(out, bands[0])
	for _, b := range bands[1:] {
		last := &out[len(out)-1]
		if last.Y1 == b.Y0 && sameSpans(last.Spans, b.Spans) {
			last.Y1 = b.Y1
			continue
		}
		out = append(out, b)
	}
	return out
}

func sameSpans(a, b []span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// regionFromBands rebuilds a canonical Region from a coalesced band list.
func regionFromBands(bands []band) Region {
	total := 0
	for _, b := range bands {
		total += len(b.Spans)
	}
	switch total {
	case 0:
		return Region{}
	case 1:
		b := bands[0]
		return Region{rects: []Rect{{b.Spans[0].X0, b.Y0, b.Spans[0].X1, b.Y1}}}
	default:
		rects := make([]Rect, 1, total+1)
		ext := Rect{X0: ^Coord(0), Y0: bands[0].Y0, X1: 0, Y1: bands[len(bands)-1].Y1}
		for _, b := range bands {
			for _, s := range b.Spans {
				rects = append(rects, Rect{s.X0, b.Y0, s.X1, b.Y1})
				if s.X0 < ext.X0 {
					ext.X0 = s.X0
				}
				if s.X1 > ext.X1 {
					ext.X1 = s.X1
				}
			}
		}
		rects[0] = ext
		return Region{rects: rects}
	}
}
