package grid

import "github.com/tekugo/gridkit/internal/errs"

// Header is the sentinel column or row index meaning "the header band",
// used wherever an ordinary 0-based cell index would otherwise go:
// cellRect, colAt/rowAt, and the paint pipeline's header-cell calls.
const Header = -1

// GeometryMask selects which of GeometryConfig's six fields to write.
type GeometryMask uint8

const (
	GeomColHeaderHeight GeometryMask = 1 << iota
	GeomRowHeaderWidth
	GeomDefColWidth
	GeomDefRowHeight
	GeomPaddingHorz
	GeomPaddingVert
	GeomAll = GeomColHeaderHeight | GeomRowHeaderWidth | GeomDefColWidth |
		GeomDefRowHeight | GeomPaddingHorz | GeomPaddingVert
)

// GeometryConfig carries the six layout numbers §4.3 lets a host
// override; ConfigureGeometry applies only the fields named by Mask.
type GeometryConfig struct {
	Mask               GeometryMask
	ColHeaderHeight    int
	RowHeaderWidth     int
	DefColWidth        int
	DefRowHeight       int
	PaddingHorz        int
	PaddingVert        int
}

// ConfigureGeometry applies cfg's masked fields and recomputes scroll
// limits and the client invalidation.
func (v *View) ConfigureGeometry(cfg GeometryConfig) {
	if cfg.Mask&GeomColHeaderHeight != 0 {
		v.headerHeight = cfg.ColHeaderHeight
	}
	if cfg.Mask&GeomRowHeaderWidth != 0 {
		v.headerWidth = cfg.RowHeaderWidth
	}
	if cfg.Mask&GeomDefColWidth != 0 {
		v.defColWidth = cfg.DefColWidth
	}
	if cfg.Mask&GeomDefRowHeight != 0 {
		v.defRowHeight = cfg.DefRowHeight
	}
	if cfg.Mask&GeomPaddingHorz != 0 {
		v.paddingH = cfg.PaddingHorz
	}
	if cfg.Mask&GeomPaddingVert != 0 {
		v.paddingV = cfg.PaddingVert
	}
	v.recomputeScrollLimits()
	v.invalidate(v.clientRect())
}

// ResetGeometryDefaults derives all six geometry numbers from a cell size
// (as measured by the host's current font) and a fixed (2,1) padding, per
// §4.3. Each size is a whole number of cells plus the padding on both
// sides, so the text area inside the padding is never empty.
func (v *View) ResetGeometryDefaults(cellWidth, cellHeight int) {
	const padH, padV = 2, 1
	v.ConfigureGeometry(GeometryConfig{
		Mask:            GeomAll,
		ColHeaderHeight: cellHeight + 2*padV,
		RowHeaderWidth:  cellWidth*4 + 2*padH,
		DefColWidth:     cellWidth*8 + 2*padH,
		DefRowHeight:    cellHeight + 2*padV,
		PaddingHorz:     padH,
		PaddingVert:     padV,
	})
}

// headerW/headerH collapse to zero when the corresponding header mode is
// None, per §4.3.
func (v *View) headerW() int {
	if v.RowHeaderMode == HeaderNone {
		return 0
	}
	return v.headerWidth
}

func (v *View) headerH() int {
	if v.ColHeaderMode == HeaderNone {
		return 0
	}
	return v.headerHeight
}

// ColWidth returns the effective width of column col, resolving the
// DefaultSize sentinel or the absent per-column array to defColWidth.
func (v *View) ColWidth(col int) int {
	if col < 0 || col >= len(v.colWidths) || v.colWidths[col] == DefaultSize {
		return v.defColWidth
	}
	return int(v.colWidths[col])
}

// RowHeight returns the effective height of row row.
func (v *View) RowHeight(row int) int {
	if row < 0 || row >= len(v.rowHeights) || v.rowHeights[row] == DefaultSize {
		return v.defRowHeight
	}
	return int(v.rowHeights[row])
}

// SetColWidth sets an explicit width for col, lazily allocating the
// per-column array (filled with DefaultSize) on first use. Runs the
// ColumnWidthChanging/Changed veto protocol.
func (v *View) SetColWidth(col, width int) error {
	if v.Table == nil || col < 0 || col >= v.Table.ColCount() {
		return errs.New("grid.SetColWidth", errs.InvalidArgument, "column %d out of range", col)
	}
	old := v.ColWidth(col)
	if old == width {
		return nil
	}
	if v.Notifier != nil && v.Notifier.ColumnWidthChanging(col, old, width) {
		return errs.New("grid.SetColWidth", errs.Cancelled, "host vetoed column width change")
	}
	v.ensureColWidths()
	v.colWidths[col] = uint16(width)
	v.recomputeScrollLimits()
	v.invalidate(v.clientRect())
	if v.Notifier != nil {
		v.Notifier.ColumnWidthChanged(col, width)
	}
	return nil
}

// SetRowHeight is RowHeight's write counterpart.
func (v *View) SetRowHeight(row, height int) error {
	if v.Table == nil || row < 0 || row >= v.Table.RowCount() {
		return errs.New("grid.SetRowHeight", errs.InvalidArgument, "row %d out of range", row)
	}
	old := v.RowHeight(row)
	if old == height {
		return nil
	}
	if v.Notifier != nil && v.Notifier.RowHeightChanging(row, old, height) {
		return errs.New("grid.SetRowHeight", errs.Cancelled, "host vetoed row height change")
	}
	v.ensureRowHeights()
	v.rowHeights[row] = uint16(height)
	v.recomputeScrollLimits()
	v.invalidate(v.clientRect())
	if v.Notifier != nil {
		v.Notifier.RowHeightChanged(row, height)
	}
	return nil
}

func (v *View) ensureColWidths() {
	if v.Table == nil {
		return
	}
	n := v.Table.ColCount()
	for len(v.colWidths) < n {
		v.colWidths = append(v.colWidths, DefaultSize)
	}
}

func (v *View) ensureRowHeights() {
	if v.Table == nil {
		return
	}
	n := v.Table.RowCount()
	for len(v.rowHeights) < n {
		v.rowHeights = append(v.rowHeights, DefaultSize)
	}
}

// colX returns the left pixel of column col, per §4.3's
// col_x(col) = header_width - scroll_x + sum_{i<col} col_width(i).
func (v *View) colX(col int) int {
	x := v.headerW() - v.scrollX
	for i := 0; i < col; i++ {
		x += v.ColWidth(i)
	}
	return x
}

// rowY returns the top pixel of row row.
func (v *View) rowY(row int) int {
	y := v.headerH() - v.scrollY
	for j := 0; j < row; j++ {
		y += v.RowHeight(j)
	}
	return y
}

// cellRect returns the cell rectangle for (col, row), honoring RTL layout
// by mirroring the column axis within the client width. Either index may
// be Header: a column header cell spans the header row's height but
// still scrolls horizontally with its column; a row header cell spans
// the header column's width but still scrolls vertically with its row.
func (v *View) cellRect(col, row int) Rect {
	var r Rect
	switch {
	case row == Header:
		x0 := v.colX(col)
		r = Rect{x0, 0, x0 + v.ColWidth(col), v.headerH()}
	case col == Header:
		y0 := v.rowY(row)
		r = Rect{0, y0, v.headerW(), y0 + v.RowHeight(row)}
	default:
		x0, y0 := v.colX(col), v.rowY(row)
		r = Rect{x0, y0, x0 + v.ColWidth(col), y0 + v.RowHeight(row)}
	}
	if v.RTL {
		return v.mirror(r)
	}
	return r
}

func (v *View) cellRangeRect(col0, row0, col1, row1 int) Rect {
	if col0 == Header || col1 == Header {
		r := Rect{0, v.rowY(max0(row0)), v.headerW(), v.rowY(row1)}
		return r
	}
	if row0 == Header || row1 == Header {
		return Rect{v.colX(col0), 0, v.colX(col1), v.headerH()}
	}
	return v.cellRect(col0, row0).Union(v.cellRect(col1-1, row1-1))
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (v *View) mirror(r Rect) Rect {
	w := v.clientW
	return Rect{w - r.X1, r.Y0, w - r.X0, r.Y1}
}

// colAt/rowAt hit-test a pixel coordinate against the column/row axis,
// returning -1 if it falls outside every cell (e.g. past the last
// column) or Header if it falls within the header band.
func (v *View) colAt(x int) int {
	if v.RTL {
		x = v.clientW - x
	}
	if x < v.headerW() {
		return Header
	}
	cx := v.headerW() - v.scrollX
	for c := 0; c < v.colCount(); c++ {
		w := v.ColWidth(c)
		if x < cx+w {
			return c
		}
		cx += w
	}
	return -1
}

func (v *View) rowAt(y int) int {
	if y < v.headerH() {
		return Header
	}
	cy := v.headerH() - v.scrollY
	for r := 0; r < v.rowCount(); r++ {
		h := v.RowHeight(r)
		if y < cy+h {
			return r
		}
		cy += h
	}
	return -1
}
