package grid

// SetClientSize tells the view its viewport's current pixel size, as
// reported by the host on resize. Triggers a scroll-limit recompute and
// re-clamp.
func (v *View) SetClientSize(w, h int) {
	v.clientW, v.clientH = w, h
	v.recomputeScrollLimits()
	v.ScrollTo(v.scrollX, v.scrollY)
}

// recomputeScrollLimits recomputes scroll_x_max/scroll_y_max as the sums
// of column widths and row heights (§4.3's "on any layout change").
func (v *View) recomputeScrollLimits() {
	sumW, sumH := 0, 0
	for c := 0; c < v.colCount(); c++ {
		sumW += v.ColWidth(c)
	}
	for r := 0; r < v.rowCount(); r++ {
		sumH += v.RowHeight(r)
	}
	v.scrollXMax, v.scrollYMax = sumW, sumH
}

func clamp(desired, max, page int) int {
	upper := max - page
	if upper < 0 {
		upper = 0
	}
	if desired < 0 {
		return 0
	}
	if desired > upper {
		return upper
	}
	return desired
}

// ScrollTo clamps (x, y) into [0, max(0, max-page)] on each axis and
// applies it, ending any active label edit first and running the
// incremental repaint logic of §4.3.
func (v *View) ScrollTo(x, y int) {
	pageW := v.clientW - v.headerW()
	pageH := v.clientH - v.headerH()
	newX := clamp(x, v.scrollXMax, pageW)
	newY := clamp(y, v.scrollYMax, pageH)
	if newX == v.scrollX && newY == v.scrollY {
		return
	}
	v.endLabelEdit(true)
	oldX, oldY := v.scrollX, v.scrollY
	v.scrollX, v.scrollY = newX, newY
	v.invalidateScrollDelta(oldX, oldY, newX, newY)
}

// invalidateScrollDelta implements §4.3's incremental repaint rule: when
// only one axis moved, headers on the other axis scroll together with
// ordinary cells; when both move, each header band and the ordinary-cell
// area are invalidated independently. The focused-cell outline can bleed
// one pixel across the header boundary, so that strip is covered too.
func (v *View) invalidateScrollDelta(oldX, oldY, newX, newY int) {
	switch {
	case oldX == newX: // vertical-only scroll
		v.invalidate(Rect{0, v.headerH(), v.clientW, v.clientH})
	case oldY == newY: // horizontal-only scroll
		v.invalidate(Rect{v.headerW(), 0, v.clientW, v.clientH})
	default:
		v.invalidate(Rect{v.headerW(), 0, v.clientW, v.headerH()})
		v.invalidate(Rect{0, v.headerH(), v.headerW(), v.clientH})
		v.invalidate(Rect{v.headerW(), v.headerH(), v.clientW, v.clientH})
	}
	v.invalidate(v.clientRect().Inflate(1))
}

// AutoScrollCadenceMillis is the tick period autoscroll during an active
// marquee drag runs at (§4.3: "≈ 50 ms").
const AutoScrollCadenceMillis = 50

// AutoScrollTick shifts the scroll position toward (px, py) by its
// overshoot past the viewport on each axis, then re-runs the marquee
// update pass. Called by the host on its own ≈50ms timer while a
// marquee drag is in progress and the pointer sits outside the viewport;
// a no-op otherwise.
func (v *View) AutoScrollTick(px, py int) {
	if v.state != StateMarqueeActive {
		return
	}
	dx, dy := 0, 0
	if px < v.headerW() {
		dx = px - v.headerW()
	} else if px > v.clientW {
		dx = px - v.clientW
	}
	if py < v.headerH() {
		dy = py - v.headerH()
	} else if py > v.clientH {
		dy = py - v.clientH
	}
	if dx == 0 && dy == 0 {
		return
	}
	v.ScrollTo(v.scrollX+dx, v.scrollY+dy)
	v.updateMarquee(px, py)
}
