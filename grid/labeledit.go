package grid

import (
	"sync"

	"github.com/tekugo/gridkit/internal/errs"
	"github.com/tekugo/gridkit/table"
)

// editState holds the view-local half of an in-progress label edit; the
// owning singleton below holds the other half (which view, if any, is
// the current owner process-wide).
type editState struct {
	active     bool
	col, row   int
	control    EditControl
	committing bool // re-entrancy guard for the commit/kill-focus race
}

// editOwner is the process-wide edit-owner slot described in §9 ("Global
// state"): starting a new edit while one is active must close the
// previous one first, and all access is serialized through mu. This is
// the one module-level mutable state in the whole engine, matching §5's
// statement that the label-edit subsystem is the only module with a
// cross-thread-visible static.
var editOwner struct {
	mu      sync.Mutex
	current *View
}

// ArmLabelEdit opens an embedded editor over the focused cell, per
// §4.7. It fails with errs.NotSupported if there's no focused cell or no
// EditControl factory installed, and is a no-op if an edit is already
// active on this view.
func (v *View) ArmLabelEdit() error {
	col, row, ok := v.Focus()
	if !ok {
		return errs.New("grid.ArmLabelEdit", errs.NotSupported, "no focused cell")
	}
	// Virtual mode still permits editing; text round-trips through
	// GetDispInfo/SetDispInfo instead of the table (§4.8), handled inside
	// beginLabelEdit/writeEditedText.
	return v.beginLabelEdit(col, row)
}

func (v *View) beginLabelEdit(col, row int) error {
	editOwner.mu.Lock()
	prior := editOwner.current
	editOwner.current = v
	editOwner.mu.Unlock()
	if prior != nil && prior != v {
		prior.endLabelEdit(true)
	}
	if v.edit.active {
		return nil
	}
	if v.EditFactory == nil {
		editOwner.mu.Lock()
		editOwner.current = nil
		editOwner.mu.Unlock()
		return errs.New("grid.beginLabelEdit", errs.NotSupported, "no edit control factory installed")
	}

	cell := v.cellForEdit(col, row)
	if v.Notifier != nil && v.Notifier.BeginLabelEdit(col, row, cell) {
		editOwner.mu.Lock()
		editOwner.current = nil
		editOwner.mu.Unlock()
		return errs.New("grid.beginLabelEdit", errs.Cancelled, "host vetoed label edit")
	}

	r := v.cellRect(col, row)
	if v.Style&StyleNoGridLines == 0 {
		r = r.Inflate(1)
	}
	ctl := v.EditFactory()
	ctl.Open(r, cell.Text.String())
	ctl.SelectAll()
	ctl.Show()
	ctl.OnCommit(func(text string) { v.commitLabelEdit(text) })
	ctl.OnCancel(func() { v.endLabelEdit(false) })
	ctl.OnKillFocus(func() { v.commitLabelEdit(ctl.Text()) })

	v.edit = editState{active: true, col: col, row: row, control: ctl}
	v.state = StateLabelEditing
	return nil
}

func (v *View) cellForEdit(col, row int) table.Cell {
	if v.Style&StyleOwnerData != 0 {
		if v.Notifier != nil {
			return v.Notifier.GetDispInfo(col, row, table.PatchAll)
		}
		return table.Cell{}
	}
	if v.Table == nil {
		return table.Cell{}
	}
	cell, _ := v.Table.GetCell(col, row, table.PatchAll)
	if cell.Text.IsCallback() && v.Notifier != nil {
		return v.Notifier.GetDispInfo(col, row, table.PatchAll)
	}
	return cell
}

func (v *View) commitLabelEdit(newText string) {
	if !v.edit.active || v.edit.committing {
		return
	}
	v.edit.committing = true
	col, row := v.edit.col, v.edit.row
	v.writeEditedText(col, row, newText)
	v.teardownLabelEdit(col, row, newText, true)
}

// endLabelEdit tears down any active edit without writing the new text
// when commit is false (Escape, or an implicit cancel from a competing
// state change); when commit is true and the edit is active, it commits
// the control's current text first.
func (v *View) endLabelEdit(commit bool) {
	if !v.edit.active {
		return
	}
	if commit {
		v.commitLabelEdit(v.edit.control.Text())
		return
	}
	col, row := v.edit.col, v.edit.row
	v.teardownLabelEdit(col, row, "", false)
}

func (v *View) writeEditedText(col, row int, newText string) {
	if v.Style&StyleOwnerData != 0 {
		if v.Notifier != nil {
			v.Notifier.SetDispInfo(col, row, table.Patch{Mask: table.PatchText, Text: table.Owned(newText)})
		}
		return
	}
	if v.Table == nil {
		return
	}
	cur, _ := v.Table.GetCell(col, row, table.PatchText)
	if cur.Text.IsCallback() {
		if v.Notifier != nil {
			v.Notifier.SetDispInfo(col, row, table.Patch{Mask: table.PatchText, Text: table.Owned(newText)})
		}
		return
	}
	v.Table.SetCell(col, row, table.Patch{Mask: table.PatchText, Text: table.Owned(newText)})
}

func (v *View) teardownLabelEdit(col, row int, newText string, committed bool) {
	ctl := v.edit.control
	v.edit = editState{}
	v.state = StateIdle
	if ctl != nil {
		ctl.Close()
	}
	editOwner.mu.Lock()
	if editOwner.current == v {
		editOwner.current = nil
	}
	editOwner.mu.Unlock()
	if v.Notifier != nil {
		if committed {
			v.Notifier.EndLabelEdit(col, row, newText, true)
		} else {
			v.Notifier.EndLabelEdit(col, row, "", false)
		}
	}
}
