package grid

import "github.com/tekugo/gridkit/internal/errs"

// Focus returns the currently focused cell and whether a cell is
// focused at all (false until a SetFocus call has succeeded). SetFocus
// does not consult StyleFocusedCell, and DetachTable leaves the focused
// cell as it was.
func (v *View) Focus() (col, row int, ok bool) {
	if !v.hasFocusCell {
		return 0, 0, false
	}
	return v.focusedCol, v.focusedRow, true
}

// SetFocus moves keyboard focus to (col, row), running the veto/teardown
// protocol of §4.4: validate, FocusChanging veto, end any active label
// edit, update, FocusChanged, invalidate old and new rects (each expanded
// by one unit for the focus outline).
func (v *View) SetFocus(col, row int) error {
	if v.Table == nil && v.Style&StyleOwnerData == 0 {
		return errs.New("grid.SetFocus", errs.NotSupported, "no table attached")
	}
	if col < 0 || col >= v.colCount() || row < 0 || row >= v.rowCount() {
		return errs.New("grid.SetFocus", errs.InvalidArgument, "focus target (%d,%d) out of range", col, row)
	}
	oldCol, oldRow, hadFocus := v.focusedCol, v.focusedRow, v.hasFocusCell
	if hadFocus && oldCol == col && oldRow == row {
		return nil
	}
	if v.Notifier != nil && v.Notifier.FocusChanging(oldCol, oldRow, col, row) {
		return errs.New("grid.SetFocus", errs.Cancelled, "host vetoed focus change")
	}
	v.endLabelEdit(true)
	v.focusedCol, v.focusedRow, v.hasFocusCell = col, row, true
	if hadFocus {
		v.invalidate(v.cellRect(oldCol, oldRow).Inflate(1))
	}
	v.invalidate(v.cellRect(col, row).Inflate(1))
	if v.Notifier != nil {
		v.Notifier.FocusChanged(col, row)
	}
	return nil
}
