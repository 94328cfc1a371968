package grid

import "github.com/tekugo/gridkit/table"

// Paint runs one full paint pass over dirty, per §4.6's nine-step
// pipeline. It is a no-op if no PaintSurface is installed.
func (v *View) Paint(dirty Rect) {
	if v.Surface == nil {
		return
	}
	v.Surface.ClipPush(dirty)
	defer v.Surface.ClipPop()

	if v.Notifier != nil && v.Notifier.CustomDrawPrePaint() {
		return
	}

	col0, row0 := v.firstVisibleCol(), v.firstVisibleRow()
	col1, row1 := v.lastVisibleCol(), v.lastVisibleRow()

	if v.Style&StyleOwnerData != 0 {
		v.updateCacheHint(col0, row0, col1, row1)
	}

	if v.headerW() > 0 && v.headerH() > 0 {
		v.paintDeadCorner()
	}
	if v.headerH() > 0 {
		for c := col0; c <= col1; c++ {
			v.paintCell(c, Header)
		}
	}
	if v.headerW() > 0 {
		for r := row0; r <= row1; r++ {
			v.paintCell(Header, r)
		}
	}
	if v.Style&StyleNoGridLines == 0 {
		v.paintGridLines(col0, row0, col1, row1)
	}
	for c := col0; c <= col1; c++ {
		for r := row0; r <= row1; r++ {
			v.paintCell(c, r)
		}
	}

	switch {
	case v.state == StateMarqueeArmed || v.state == StateMarqueeActive:
		v.paintMarqueeOutline()
	case v.Style&StyleFocusedCell != 0 && v.hasFocusCell:
		r := v.cellRect(v.focusedCol, v.focusedRow)
		v.Surface.DrawFocusRect(r)
		v.Surface.DrawFocusRect(r.Inflate(-1))
	}

	if v.Notifier != nil {
		v.Notifier.CustomDrawPostPaint()
	}
}

func (v *View) firstVisibleCol() int {
	for c := 0; c < v.colCount(); c++ {
		if v.cellRect(c, 0).X1 > v.headerW() {
			return c
		}
	}
	return 0
}

func (v *View) firstVisibleRow() int {
	for r := 0; r < v.rowCount(); r++ {
		if v.cellRect(0, r).Y1 > v.headerH() {
			return r
		}
	}
	return 0
}

func (v *View) lastVisibleCol() int {
	last := -1
	for c := 0; c < v.colCount(); c++ {
		if v.cellRect(c, 0).X0 >= v.clientW {
			break
		}
		last = c
	}
	return last
}

func (v *View) lastVisibleRow() int {
	last := -1
	for r := 0; r < v.rowCount(); r++ {
		if v.cellRect(0, r).Y0 >= v.clientH {
			break
		}
		last = r
	}
	return last
}

func (v *View) paintDeadCorner() {
	r := Rect{0, 0, v.headerW(), v.headerH()}
	if !v.Surface.DrawThemedBackground(r, BackgroundHeaderItem) {
		v.Surface.DrawEdge(r, true)
	}
}

func (v *View) paintGridLines(col0, row0, col1, row1 int) {
	for c := col0; c <= col1+1; c++ {
		x := v.colX(c)
		v.Surface.DrawLine(Point{x, v.headerH()}, Point{x, v.clientH}, 0)
	}
	for r := row0; r <= row1+1; r++ {
		y := v.rowY(r)
		v.Surface.DrawLine(Point{v.headerW(), y}, Point{v.clientW, y}, 0)
	}
}

// paintCell implements §4.6's "per-cell draw". row or col may be Header
// to paint a header cell instead of an ordinary one.
func (v *View) paintCell(col, row int) {
	cell := v.resolveCellData(col, row)
	skip := false
	if v.Notifier != nil {
		skip = v.Notifier.CustomDrawItemPrePaint(col, row, &cell)
	}
	if !skip {
		r := v.cellRect(col, row)
		isHeader := col == Header || row == Header
		bg := BackgroundListItem
		if isHeader {
			bg = BackgroundHeaderItem
		}
		if !v.Surface.DrawThemedBackground(r, bg) {
			if isHeader {
				v.Surface.DrawEdge(r, true)
			} else {
				v.Surface.FillRect(r, v.cellBackColor(col, row))
			}
		}
		h, vAlign := v.resolveAlign(cell.Flags, isHeader)
		inner := Rect{r.X0 + v.paddingH, r.Y0 + v.paddingV, r.X1 - v.paddingH, r.Y1 - v.paddingV}
		text := ellipsisTruncate(v.headerOrCellText(col, row, cell), inner.X1-inner.X0)
		v.Surface.DrawText(inner, text, 0, h, vAlign)
	}
	if v.Notifier != nil {
		v.Notifier.CustomDrawItemPostPaint(col, row)
	}
}

func (v *View) headerOrCellText(col, row int, cell table.Cell) string {
	if col == Header && v.RowHeaderMode != HeaderStored && v.RowHeaderMode != HeaderNone {
		return v.headerText(row, v.RowHeaderMode, cell.Text.String())
	}
	if row == Header && v.ColHeaderMode != HeaderStored && v.ColHeaderMode != HeaderNone {
		return v.headerText(col, v.ColHeaderMode, cell.Text.String())
	}
	return cell.Text.String()
}

func (v *View) resolveCellData(col, row int) table.Cell {
	if v.Style&StyleOwnerData != 0 {
		if v.Notifier != nil {
			return v.Notifier.GetDispInfo(col, row, table.PatchAll)
		}
		return table.Cell{}
	}
	if v.Table == nil {
		return table.Cell{}
	}
	cell, err := v.Table.GetCell(col, row, table.PatchAll)
	if err != nil {
		return table.Cell{}
	}
	if cell.Text.IsCallback() && v.Notifier != nil {
		return v.Notifier.GetDispInfo(col, row, table.PatchText)
	}
	return cell
}

// resolveAlign applies header defaults (Center/VCenter) when the cell
// leaves alignment at its Default value.
func (v *View) resolveAlign(flags table.Flags, isHeader bool) (HAlign, VAlign) {
	h, vv := flags.HAlign(), flags.VAlign()
	if h == HAlignDefault {
		if isHeader {
			h = HAlignCenter
		} else {
			h = HAlignLeft
		}
	}
	if vv == VAlignDefault {
		vv = VAlignCenter
	}
	return h, vv
}

func (v *View) cellBackColor(col, row int) Color {
	if v.cellSelected(col, row) {
		return 0x1
	}
	return 0
}

// cellSelected reports whether (col, row) should paint as selected,
// including the in-progress marquee preview per §4.5.
func (v *View) cellSelected(col, row int) bool {
	if v.state == StateMarqueeArmed || v.state == StateMarqueeActive {
		lo, hi := v.drag.marqueeCol, v.drag.lastCol
		if lo > hi {
			lo, hi = hi, lo
		}
		lr, hr := v.drag.marqueeRow, v.drag.lastRow
		if lr > hr {
			lr, hr = hr, lr
		}
		if col >= lo && col <= hi && row >= lr && row <= hr {
			return true
		}
	}
	if !v.hasFocusCell && v.Style&StyleShowSelAlways == 0 {
		return false
	}
	return v.selection.Contains(col, row)
}

func (v *View) paintMarqueeOutline() {
	lo, hi := v.drag.marqueeCol, v.drag.lastCol
	if lo > hi {
		lo, hi = hi, lo
	}
	lr, hr := v.drag.marqueeRow, v.drag.lastRow
	if lr > hr {
		lr, hr = hr, lr
	}
	r := v.cellRect(lo, lr).Union(v.cellRect(hi, hr))
	v.Surface.DrawFocusRect(r)
}
