package grid

import "github.com/tekugo/gridkit/internal/errs"

// colCount/rowCount give the paint, scroll, hit-test and focus code a
// single dimension source that works whether the view is backed by a
// real table or is running owner-data: under StyleOwnerData the cached
// virtualCols/virtualRows set by ResizeOwnerData stand in for the
// table's own ColCount/RowCount (§4.8).
func (v *View) colCount() int {
	if v.Style&StyleOwnerData != 0 {
		return v.virtualCols
	}
	if v.Table == nil {
		return 0
	}
	return v.Table.ColCount()
}

func (v *View) rowCount() int {
	if v.Style&StyleOwnerData != 0 {
		return v.virtualRows
	}
	if v.Table == nil {
		return 0
	}
	return v.Table.RowCount()
}

// ResizeOwnerData updates only the view's cached dimensions under
// StyleOwnerData; no table allocation takes place.
func (v *View) ResizeOwnerData(cols, rows int) error {
	if v.Style&StyleOwnerData == 0 {
		return errs.New("grid.ResizeOwnerData", errs.InvalidState, "view is not owner-data")
	}
	v.virtualCols, v.virtualRows = cols, rows
	v.recomputeScrollLimits()
	v.invalidate(v.clientRect())
	return nil
}

// updateCacheHint fires CacheHint when the visible range differs from
// the last one advertised, per §4.6 step 4. col1/row1 are the last
// fully-or-partially visible indices (inclusive), matching the dispinfo
// convention used elsewhere in the paint pipeline.
func (v *View) updateCacheHint(col0, row0, col1, row1 int) {
	if v.cacheValid && v.cacheCol0 == col0 && v.cacheRow0 == row0 &&
		v.cacheCol1 == col1 && v.cacheRow1 == row1 {
		return
	}
	v.cacheCol0, v.cacheRow0, v.cacheCol1, v.cacheRow1 = col0, row0, col1, row1
	v.cacheValid = true
	if v.Notifier != nil {
		v.Notifier.CacheHint(col0, row0, col1, row1)
	}
}
