package grid

import (
	"github.com/tekugo/gridkit/internal/errs"
	"github.com/tekugo/gridkit/rgn16"
)

// SelectionMode constrains which regions SetSelection will accept.
type SelectionMode int

const (
	SelNone SelectionMode = iota
	SelSingle
	SelRect
	SelComplex
)

// Selection is the region exposed to hosts and tests: the same struct
// shape as §6's "region extents exposure" — an extents rectangle plus the
// canonical body rectangles — expressed in cell coordinates rather than
// pixels.
type Selection struct {
	region rgn16.Region
}

// EmptySelection is the zero Selection: no cells selected.
func EmptySelection() Selection { return Selection{} }

// SelectionFromCellRect builds a Selection from a half-open cell
// rectangle [col0,row0)-[col1,row1).
func SelectionFromCellRect(col0, row0, col1, row1 int) (Selection, error) {
	r, err := toRgnRect(col0, row0, col1, row1)
	if err != nil {
		return Selection{}, err
	}
	return Selection{region: rgn16.FromRect(r)}, nil
}

// IsEmpty reports whether the selection contains no cells.
func (s Selection) IsEmpty() bool { return s.region.IsEmpty() }

// Extents returns the selection's bounding cell rectangle as
// (col0, row0, col1, row1); zero value if empty.
func (s Selection) Extents() (col0, row0, col1, row1 int) {
	e := s.region.Extents()
	return int(e.X0), int(e.Y0), int(e.X1), int(e.Y1)
}

// Rects returns the selection's disjoint body rectangles in cell
// coordinates.
func (s Selection) Rects() []rgn16.Rect { return s.region.Rects() }

// N returns the canonical slot count (0 empty, 1 simple, >=2 complex).
func (s Selection) N() int { return s.region.N() }

// Contains reports whether the single cell (col,row) is selected.
func (s Selection) Contains(col, row int) bool {
	if col < 0 || row < 0 || col > 0xffff || row > 0xffff {
		return false
	}
	return s.region.ContainsXY(rgn16.Coord(col), rgn16.Coord(row))
}

func (s Selection) Equals(o Selection) bool { return s.region.Equals(o.region) }

func toRgnRect(col0, row0, col1, row1 int) (rgn16.Rect, error) {
	if col0 < 0 || row0 < 0 || col1 < col0 || row1 < row0 || col1 > 0xffff || row1 > 0xffff {
		return rgn16.Rect{}, errs.New("grid.toRgnRect", errs.InvalidArgument,
			"cell rect (%d,%d)-(%d,%d) out of 16-bit range", col0, row0, col1, row1)
	}
	return rgn16.NewRect(rgn16.Coord(col0), rgn16.Coord(row0), rgn16.Coord(col1), rgn16.Coord(row1)), nil
}

// selUnion/selSubtract/selXor apply the rgn16 combinators directly to
// Selection values, keeping their call sites (input.go, tests) free of
// rgn16 plumbing.
func selUnion(a, b Selection) Selection    { return Selection{region: rgn16.Union(a.region, b.region)} }
func selSubtract(a, b Selection) Selection { return Selection{region: rgn16.Subtract(a.region, b.region)} }
func selXor(a, b Selection) Selection      { return Selection{region: rgn16.Xor(a.region, b.region)} }

// modeAllows enforces §4.4's per-mode shape restriction (property 6).
func modeAllows(mode SelectionMode, s Selection) bool {
	switch mode {
	case SelNone:
		return s.IsEmpty()
	case SelSingle:
		if s.IsEmpty() {
			return true
		}
		if s.N() != 1 {
			return false
		}
		r := s.Rects()[0]
		return r.X1-r.X0 == 1 && r.Y1-r.Y0 == 1
	case SelRect:
		return s.N() <= 1
	case SelComplex:
		return true
	default:
		return false
	}
}

// SetSelection runs the install protocol of §4.4: no-op on equality,
// SelectionChanging veto, swap, invalidate, SelectionChanged. Returns
// errs.InvalidArgument if s violates the view's selection mode, or
// errs.Cancelled if the host vetoes.
func (v *View) SetSelection(s Selection) error {
	if !modeAllows(v.SelectionMode, s) {
		return errs.New("grid.SetSelection", errs.InvalidArgument, "region shape not allowed by selection mode %d", v.SelectionMode)
	}
	if s.Equals(v.selection) {
		return nil
	}
	if v.Notifier != nil && v.Notifier.SelectionChanging(v.selection, s) {
		return errs.New("grid.SetSelection", errs.Cancelled, "host vetoed selection change")
	}
	old := v.selection
	v.selection = s
	v.invalidate(v.unionExtentsRect(old, s))
	if v.Notifier != nil {
		v.Notifier.SelectionChanged(s)
	}
	return nil
}

// Selection returns the view's current selection.
func (v *View) Selection() Selection { return v.selection }

// unionExtentsRect returns the surface rectangle covering both
// selections' cell extents; an empty selection contributes nothing.
func (v *View) unionExtentsRect(a, b Selection) Rect {
	var r Rect
	for _, s := range []Selection{a, b} {
		if s.IsEmpty() {
			continue
		}
		c0, r0, c1, r1 := s.Extents()
		r = r.Union(v.cellRangeRect(c0, r0, c1, r1))
	}
	return r
}
