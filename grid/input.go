package grid

// InputState is one of the mutually-exclusive interaction states of
// §4.5's state machine.
type InputState int

const (
	StateIdle InputState = iota
	StateColResize
	StateRowResize
	StateMarqueeArmed
	StateMarqueeActive
	StateLabelEditArmed
	StateLabelEditing
)

// SelOp is the selection combinator a marquee drag will apply on commit,
// chosen at press time from the modifier keys (§4.5).
type SelOp int

const (
	SelOpSet SelOp = iota
	SelOpUnion
	SelOpXor
)

// Modifiers reports which keyboard modifiers were held during a mouse or
// keyboard event.
type Modifiers struct{ Shift, Ctrl bool }

// Key enumerates the keyboard inputs §4.5 gives meaning to. Concrete key
// events are translated into these by the collaborator (e.g.
// adapters/tcellgrid), keeping tcell out of this package.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyEscape
	KeySpace
)

// dragState holds the in-progress drag's parameters, mirroring the
// DragArbiter's origin/hotspot/index/extra fields (§6).
type dragState struct {
	origin     Point
	resizeIdx  int // column or row being resized
	resizeOrig int // its original size, for cancel-restore
	marqueeCol int // press-point cell, becomes the new anchor on commit
	marqueeRow int
	lastCol    int // most recent pointer cell, seen during MouseMove/updateMarquee
	lastRow    int
	op         SelOp
}

// resizeHotspot is the pixel tolerance (in view units) within which a
// press near a column/row boundary starts a resize instead of a marquee.
const resizeHotspot = 0

// MouseDown starts a new interaction from Idle: a divider press arms a
// resize, an ordinary-cell press arms a marquee (or a label edit, if the
// cell is already focused and editing is permitted), per §4.5's
// transition table.
func (v *View) MouseDown(pt Point, mods Modifiers) {
	if v.state != StateIdle {
		return
	}
	if col, ok := v.colDividerAt(pt); ok && v.Style&StyleResizableCols != 0 {
		v.beginResize(StateColResize, col, v.ColWidth(col), pt)
		return
	}
	if row, ok := v.rowDividerAt(pt); ok && v.Style&StyleResizableRows != 0 {
		v.beginResize(StateRowResize, row, v.RowHeight(row), pt)
		return
	}
	col, row := v.colAt(pt.X), v.rowAt(pt.Y)
	if col < 0 || row < 0 || col == Header || row == Header {
		return
	}
	if v.Style&StyleFocusedCell != 0 && v.Style&StyleEditLabels != 0 &&
		v.hasFocusCell && v.focusedCol == col && v.focusedRow == row {
		v.state = StateLabelEditArmed
		return
	}
	v.drag.origin = pt
	v.drag.marqueeCol, v.drag.marqueeRow = col, row
	v.drag.lastCol, v.drag.lastRow = col, row
	v.drag.op = selOpFromMods(mods, v.SelectionMode)
	if v.Arbiter != nil {
		v.Arbiter.SetCandidate(pt, pt, DragMarquee, v.drag.op)
	}
	v.state = StateMarqueeArmed
	v.updateMarquee(pt.X, pt.Y)
}

func selOpFromMods(mods Modifiers, mode SelectionMode) SelOp {
	if mode != SelComplex {
		return SelOpSet
	}
	switch {
	case mods.Ctrl:
		return SelOpXor
	case mods.Shift:
		return SelOpUnion
	default:
		return SelOpSet
	}
}

func (v *View) beginResize(state InputState, idx, origSize int, pt Point) {
	v.state = state
	v.drag.origin = pt
	v.drag.resizeIdx = idx
	v.drag.resizeOrig = origSize
	if state == StateColResize {
		if v.Notifier != nil {
			v.Notifier.BeginColumnTrack(idx)
		}
	} else if v.Notifier != nil {
		v.Notifier.BeginRowTrack(idx)
	}
	if v.Arbiter != nil {
		kind := DragColResize
		if state == StateRowResize {
			kind = DragRowResize
		}
		v.Arbiter.SetCandidate(pt, pt, kind, origSize)
	}
}

// MouseMove advances the current drag, if any.
func (v *View) MouseMove(pt Point) {
	switch v.state {
	case StateMarqueeArmed:
		if v.beyondThreshold(pt) {
			v.state = StateMarqueeActive
		}
		v.updateMarquee(pt.X, pt.Y)
	case StateMarqueeActive:
		v.updateMarquee(pt.X, pt.Y)
	case StateColResize:
		w := pt.X - v.drag.origin.X + v.drag.resizeOrig
		if w < 0 {
			w = 0
		}
		v.colWidthsForceSet(v.drag.resizeIdx, w)
		v.recomputeScrollLimits()
		v.invalidate(v.clientRect())
	case StateRowResize:
		h := pt.Y - v.drag.origin.Y + v.drag.resizeOrig
		if h < 0 {
			h = 0
		}
		v.rowHeightsForceSet(v.drag.resizeIdx, h)
		v.recomputeScrollLimits()
		v.invalidate(v.clientRect())
	}
}

func (v *View) beyondThreshold(pt Point) bool {
	if v.Arbiter == nil {
		return pt != v.drag.origin
	}
	return v.Arbiter.ConsiderStart(pt) == ArbiterStarted
}

func (v *View) colWidthsForceSet(col, w int) {
	v.ensureColWidths()
	if col >= 0 && col < len(v.colWidths) {
		v.colWidths[col] = uint16(w)
	}
}

func (v *View) rowHeightsForceSet(row, h int) {
	v.ensureRowHeights()
	if row >= 0 && row < len(v.rowHeights) {
		v.rowHeights[row] = uint16(h)
	}
}

// MouseUp ends the current drag, committing a marquee selection, a
// resize, or treating an unmoved marquee-armed press as a plain click
// selection.
func (v *View) MouseUp(pt Point) {
	switch v.state {
	case StateMarqueeArmed:
		v.commitMarquee()
		v.state = StateIdle
	case StateMarqueeActive:
		v.commitMarquee()
		v.state = StateIdle
	case StateColResize:
		if v.Notifier != nil {
			v.Notifier.EndColumnTrack(v.drag.resizeIdx, v.ColWidth(v.drag.resizeIdx))
		}
		v.state = StateIdle
	case StateRowResize:
		if v.Notifier != nil {
			v.Notifier.EndRowTrack(v.drag.resizeIdx, v.RowHeight(v.drag.resizeIdx))
		}
		v.state = StateIdle
	case StateLabelEditArmed:
		v.state = StateIdle
	}
	if v.Arbiter != nil {
		v.Arbiter.Stop()
	}
}

// Cancel implements the "Any non-Idle → Escape or capture lost → Idle
// (cancel)" transition: a resize restores its original size, a marquee
// drops its in-progress rectangle, a label edit cancels.
func (v *View) Cancel() {
	switch v.state {
	case StateColResize:
		v.colWidthsForceSet(v.drag.resizeIdx, v.drag.resizeOrig)
		v.recomputeScrollLimits()
		v.invalidate(v.clientRect())
	case StateRowResize:
		v.rowHeightsForceSet(v.drag.resizeIdx, v.drag.resizeOrig)
		v.recomputeScrollLimits()
		v.invalidate(v.clientRect())
	case StateLabelEditArmed, StateLabelEditing:
		v.endLabelEdit(false)
	}
	if v.Arbiter != nil {
		v.Arbiter.Stop()
	}
	v.state = StateIdle
}

// updateMarquee recomputes the in-progress marquee rectangle from the
// press origin to the current pointer, for preview painting by paint.go.
func (v *View) updateMarquee(x, y int) {
	col, row := v.colAt(x), v.rowAt(y)
	if col == Header || col < 0 {
		col = v.drag.marqueeCol
	}
	if row == Header || row < 0 {
		row = v.drag.marqueeRow
	}
	v.drag.lastCol, v.drag.lastRow = col, row
	lo, hi := v.drag.marqueeCol, col
	if lo > hi {
		lo, hi = hi, lo
	}
	lr, hr := v.drag.marqueeRow, row
	if lr > hr {
		lr, hr = hr, lr
	}
	v.invalidate(v.cellRect(lo, lr).Union(v.cellRect(hi, hr)))
}

// commitMarquee translates the marquee's last rectangle into a cell
// range (inclusive both ends), applies the chosen combinator to the
// current selection, updates the anchor, and moves focus if
// StyleFocusedCell is on (§4.5 "Marquee commit").
func (v *View) commitMarquee() {
	lastCol, lastRow := v.drag.lastCol, v.drag.lastRow
	sel, err := SelectionFromCellRect(
		min2(v.drag.marqueeCol, lastCol), min2(v.drag.marqueeRow, lastRow),
		max2(v.drag.marqueeCol, lastCol)+1, max2(v.drag.marqueeRow, lastRow)+1)
	if err != nil {
		return
	}
	var next Selection
	switch v.drag.op {
	case SelOpUnion:
		next = selUnion(v.selection, sel)
	case SelOpXor:
		next = selXor(v.selection, sel)
	default:
		next = sel
	}
	v.SetSelection(next)
	v.selMarkCol, v.selMarkRow = v.drag.marqueeCol, v.drag.marqueeRow
	if v.Style&StyleFocusedCell != 0 {
		v.SetFocus(lastCol, lastRow)
	}
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (v *View) colDividerAt(pt Point) (int, bool) {
	if pt.Y >= v.headerH() {
		return 0, false
	}
	x := v.headerW() - v.scrollX
	for c := 0; c < v.colCount(); c++ {
		x += v.ColWidth(c)
		if pt.X == x {
			return c, true
		}
	}
	return 0, false
}

func (v *View) rowDividerAt(pt Point) (int, bool) {
	if pt.X >= v.headerW() {
		return 0, false
	}
	y := v.headerH() - v.scrollY
	for r := 0; r < v.rowCount(); r++ {
		y += v.RowHeight(r)
		if pt.Y == y {
			return r, true
		}
	}
	return 0, false
}

// KeyDown implements §4.5's keyboard handling. Escape cancels any active
// drag. With StyleFocusedCell, navigation keys move focus (scrolling to
// keep it visible) and Ctrl+Space toggles the focused cell's selection
// membership; shift-extended navigation repaints the selection to the
// rectangle between the anchor and the new focus. Without
// StyleFocusedCell the same keys scroll the viewport instead. RTL layout
// swaps Left/Right.
func (v *View) KeyDown(key Key, mods Modifiers) {
	if key == KeyEscape {
		v.Cancel()
		return
	}
	if v.RTL {
		if key == KeyLeft {
			key = KeyRight
		} else if key == KeyRight {
			key = KeyLeft
		}
	}
	if v.Style&StyleFocusedCell == 0 {
		v.scrollByKey(key)
		return
	}
	if key == KeySpace && mods.Ctrl {
		v.toggleFocusSelection()
		return
	}
	if key == KeyEnter {
		if v.Style&StyleEditLabels != 0 {
			v.ArmLabelEdit()
		}
		return
	}
	col, row, ok := v.Focus()
	if !ok || (v.Table == nil && v.Style&StyleOwnerData == 0) {
		return
	}
	nc, nr := v.nextFocusTarget(key, col, row)
	if nc == col && nr == row {
		return
	}
	if mods.Shift {
		v.SetFocus(nc, nr)
		v.extendSelectionToFocus()
		return
	}
	v.SetFocus(nc, nr)
	v.selMarkCol, v.selMarkRow = nc, nr
}

func (v *View) nextFocusTarget(key Key, col, row int) (int, int) {
	lastCol, lastRow := v.colCount()-1, v.rowCount()-1
	switch key {
	case KeyLeft:
		if col > 0 {
			col--
		}
	case KeyRight:
		if col < lastCol {
			col++
		}
	case KeyUp:
		if row > 0 {
			row--
		}
	case KeyDown:
		if row < lastRow {
			row++
		}
	case KeyHome:
		col = 0
	case KeyEnd:
		col = lastCol
	case KeyPageUp:
		row = max0(row - v.pageRows())
	case KeyPageDown:
		row = min2(lastRow, row+v.pageRows())
	}
	return col, row
}

func (v *View) pageRows() int {
	h := (v.clientH - v.headerH()) / max1(v.defRowHeight)
	if h < 1 {
		return 1
	}
	return h
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (v *View) scrollByKey(key Key) {
	switch key {
	case KeyLeft:
		v.ScrollTo(v.scrollX-v.defColWidth, v.scrollY)
	case KeyRight:
		v.ScrollTo(v.scrollX+v.defColWidth, v.scrollY)
	case KeyUp:
		v.ScrollTo(v.scrollX, v.scrollY-v.defRowHeight)
	case KeyDown:
		v.ScrollTo(v.scrollX, v.scrollY+v.defRowHeight)
	case KeyPageUp:
		v.ScrollTo(v.scrollX, v.scrollY-v.clientH)
	case KeyPageDown:
		v.ScrollTo(v.scrollX, v.scrollY+v.clientH)
	case KeyHome:
		v.ScrollTo(0, v.scrollY)
	case KeyEnd:
		v.ScrollTo(v.scrollXMax, v.scrollY)
	}
}

func (v *View) toggleFocusSelection() {
	col, row, ok := v.Focus()
	if !ok {
		return
	}
	cell, err := SelectionFromCellRect(col, row, col+1, row+1)
	if err != nil {
		return
	}
	v.SetSelection(selXor(v.selection, cell))
	v.selMarkCol, v.selMarkRow = col, row
}

// extendSelectionToFocus rebuilds the selection as the rectangle between
// the anchor and the currently focused cell (shift-extended navigation).
func (v *View) extendSelectionToFocus() {
	col, row, ok := v.Focus()
	if !ok {
		return
	}
	lo, hi := v.selMarkCol, col
	if lo > hi {
		lo, hi = hi, lo
	}
	lr, hr := v.selMarkRow, row
	if lr > hr {
		lr, hr = hr, lr
	}
	sel, err := SelectionFromCellRect(lo, lr, hi+1, hr+1)
	if err != nil {
		return
	}
	v.SetSelection(sel)
}
