package grid

import (
	"testing"

	"github.com/tekugo/gridkit/table"
)

type recordingNotifier struct {
	NotifierBase
	selectionChanged []Selection
	focusChanged     [][2]int
	beginEdit        int
	endEdit          []struct {
		newText   string
		committed bool
	}
	cellChanged int
}

func (n *recordingNotifier) SelectionChanged(sel Selection) {
	n.selectionChanged = append(n.selectionChanged, sel)
}

func (n *recordingNotifier) FocusChanged(col, row int) {
	n.focusChanged = append(n.focusChanged, [2]int{col, row})
}

func (n *recordingNotifier) BeginLabelEdit(col, row int, cell table.Cell) bool {
	n.beginEdit++
	return false
}

func (n *recordingNotifier) EndLabelEdit(col, row int, newText string, committed bool) {
	n.endEdit = append(n.endEdit, struct {
		newText   string
		committed bool
	}{newText, committed})
}

func (n *recordingNotifier) CellChanged(col, row int) { n.cellChanged++ }

func newTestView(t *testing.T, cols, rows int, style Style, mode SelectionMode) (*View, *recordingNotifier) {
	t.Helper()
	tb, err := table.New(cols, rows)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	v := New(0)
	v.Style = style
	v.SelectionMode = mode
	if err := v.AttachTable(tb); err != nil {
		t.Fatalf("AttachTable: %v", err)
	}
	v.SetClientSize(1000, 1000)
	n := &recordingNotifier{}
	v.Notifier = n
	return v, n
}

func pointForCell(v *View, col, row int) Point {
	r := v.cellRect(col, row)
	return Point{r.X0 + 1, r.Y0}
}

// TestMarqueeCtrlUnionSelection is Scenario D.
func TestMarqueeCtrlUnionSelection(t *testing.T) {
	v, n := newTestView(t, 10, 10, 0, SelComplex)

	v.MouseDown(pointForCell(v, 1, 1), Modifiers{})
	v.MouseMove(pointForCell(v, 2, 2))
	v.MouseUp(pointForCell(v, 2, 2))

	c0, r0, c1, r1 := v.Selection().Extents()
	if c0 != 1 || r0 != 1 || c1 != 3 || r1 != 3 {
		t.Fatalf("after first marquee: extents = (%d,%d,%d,%d), want (1,1,3,3)", c0, r0, c1, r1)
	}

	v.MouseDown(pointForCell(v, 5, 5), Modifiers{Ctrl: true})
	v.MouseMove(pointForCell(v, 6, 6))
	v.MouseUp(pointForCell(v, 6, 6))

	sel := v.Selection()
	if len(sel.Rects()) != 2 {
		t.Fatalf("after ctrl-union marquee: got %d rects, want 2: %+v", len(sel.Rects()), sel.Rects())
	}
	c0, r0, c1, r1 = sel.Extents()
	if c0 != 1 || r0 != 1 || c1 != 7 || r1 != 7 {
		t.Fatalf("extents = (%d,%d,%d,%d), want (1,1,7,7)", c0, r0, c1, r1)
	}
	if len(n.selectionChanged) != 2 {
		t.Fatalf("got %d SelectionChanged events, want 2", len(n.selectionChanged))
	}
	if len(n.focusChanged) != 0 {
		t.Fatalf("got %d FocusChanged events, want 0 (StyleFocusedCell is off)", len(n.focusChanged))
	}
}

// TestFocusNavigationWithShift is Scenario E.
func TestFocusNavigationWithShift(t *testing.T) {
	v, _ := newTestView(t, 10, 10, StyleFocusedCell, SelComplex)
	if err := v.SetFocus(0, 0); err != nil {
		t.Fatalf("SetFocus(0,0): %v", err)
	}
	v.selMarkCol, v.selMarkRow = 0, 0

	for i := 0; i < 3; i++ {
		v.KeyDown(KeyRight, Modifiers{Shift: true})
	}
	c0, r0, c1, r1 := v.Selection().Extents()
	if c0 != 0 || r0 != 0 || c1 != 4 || r1 != 1 {
		t.Fatalf("after 3x Shift+Right: extents = (%d,%d,%d,%d), want (0,0,4,1)", c0, r0, c1, r1)
	}
	if col, row, _ := v.Focus(); col != 3 || row != 0 {
		t.Fatalf("focus = (%d,%d), want (3,0)", col, row)
	}
	if v.selMarkCol != 0 || v.selMarkRow != 0 {
		t.Fatalf("anchor moved to (%d,%d), want it to stay (0,0)", v.selMarkCol, v.selMarkRow)
	}

	for i := 0; i < 2; i++ {
		v.KeyDown(KeyDown, Modifiers{Shift: true})
	}
	c0, r0, c1, r1 = v.Selection().Extents()
	if c0 != 0 || r0 != 0 || c1 != 4 || r1 != 3 {
		t.Fatalf("after 2x Shift+Down: extents = (%d,%d,%d,%d), want (0,0,4,3)", c0, r0, c1, r1)
	}
	if col, row, _ := v.Focus(); col != 3 || row != 2 {
		t.Fatalf("focus = (%d,%d), want (3,2)", col, row)
	}
}

type fakeEditControl struct {
	text        string
	onCommit    func(string)
	onCancel    func()
	onKillFocus func()
	closed      bool
}

func (f *fakeEditControl) Open(r Rect, initial string) { f.text = initial }
func (f *fakeEditControl) SelectAll()                  {}
func (f *fakeEditControl) Show()                       {}
func (f *fakeEditControl) Text() string                { return f.text }
func (f *fakeEditControl) Close()                      { f.closed = true }
func (f *fakeEditControl) OnCommit(fn func(string))    { f.onCommit = fn }
func (f *fakeEditControl) OnCancel(fn func())          { f.onCancel = fn }
func (f *fakeEditControl) OnKillFocus(fn func())       { f.onKillFocus = fn }

// TestLabelEditCancelViaEscape is Scenario F.
func TestLabelEditCancelViaEscape(t *testing.T) {
	v, n := newTestView(t, 5, 5, StyleFocusedCell|StyleEditLabels, SelNone)
	if err := v.Table.SetCell(2, 2, table.Patch{Mask: table.PatchText, Text: table.Owned("foo")}); err != nil {
		t.Fatalf("seed cell: %v", err)
	}
	n.cellChanged = 0 // ignore the seeding write

	if err := v.SetFocus(2, 2); err != nil {
		t.Fatalf("SetFocus: %v", err)
	}

	var ctl *fakeEditControl
	v.EditFactory = func() EditControl {
		ctl = &fakeEditControl{}
		return ctl
	}

	if err := v.ArmLabelEdit(); err != nil {
		t.Fatalf("ArmLabelEdit: %v", err)
	}
	ctl.text = "bar"

	v.KeyDown(KeyEscape, Modifiers{})

	cell, err := v.Table.GetCell(2, 2, table.PatchText)
	if err != nil {
		t.Fatalf("GetCell: %v", err)
	}
	if cell.Text.String() != "foo" {
		t.Fatalf("cell text = %q, want unchanged %q", cell.Text.String(), "foo")
	}
	if n.beginEdit != 1 {
		t.Fatalf("BeginLabelEdit fired %d times, want 1", n.beginEdit)
	}
	if len(n.endEdit) != 1 || n.endEdit[0].committed {
		t.Fatalf("EndLabelEdit = %+v, want one uncommitted call", n.endEdit)
	}
	if n.cellChanged != 0 {
		t.Fatalf("CellChanged fired %d times, want 0", n.cellChanged)
	}
}

// TestSelectionModeEnforcement is property 6.
func TestSelectionModeEnforcement(t *testing.T) {
	v, _ := newTestView(t, 10, 10, 0, SelSingle)
	rect3x3, _ := SelectionFromCellRect(0, 0, 3, 3)
	if err := v.SetSelection(rect3x3); err == nil {
		t.Fatalf("SelSingle accepted a 3x3 region")
	}
	single, _ := SelectionFromCellRect(1, 1, 2, 2)
	if err := v.SetSelection(single); err != nil {
		t.Fatalf("SelSingle rejected a 1x1 region: %v", err)
	}

	v.SelectionMode = SelNone
	if err := v.SetSelection(single); err == nil {
		t.Fatalf("SelNone accepted a non-empty region")
	}

	v.SelectionMode = SelRect
	two, _ := func() (Selection, error) {
		a, _ := SelectionFromCellRect(0, 0, 1, 1)
		b, _ := SelectionFromCellRect(5, 5, 6, 6)
		return selUnion(a, b), nil
	}()
	if err := v.SetSelection(two); err == nil {
		t.Fatalf("SelRect accepted a two-rectangle region")
	}
}

// TestScrollClamping is property 7.
func TestScrollClamping(t *testing.T) {
	v, _ := newTestView(t, 20, 20, 0, SelNone)
	v.SetClientSize(50, 30)
	v.ScrollTo(-100, -100)
	if v.scrollX != 0 || v.scrollY != 0 {
		t.Fatalf("negative scroll clamped to (%d,%d), want (0,0)", v.scrollX, v.scrollY)
	}
	v.ScrollTo(100000, 100000)
	maxX := v.scrollXMax - (v.clientW - v.headerW())
	if maxX < 0 {
		maxX = 0
	}
	maxY := v.scrollYMax - (v.clientH - v.headerH())
	if maxY < 0 {
		maxY = 0
	}
	if v.scrollX != maxX || v.scrollY != maxY {
		t.Fatalf("over-scroll clamped to (%d,%d), want (%d,%d)", v.scrollX, v.scrollY, maxX, maxY)
	}
}

// TestFocusSelectionDecoupling is property 8.
func TestFocusSelectionDecoupling(t *testing.T) {
	v, _ := newTestView(t, 10, 10, StyleFocusedCell, SelComplex)
	v.SetFocus(3, 3)
	sel, _ := SelectionFromCellRect(0, 0, 2, 2)
	if err := v.SetSelection(sel); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if col, row, _ := v.Focus(); col != 3 || row != 3 {
		t.Fatalf("selection change moved focus to (%d,%d)", col, row)
	}
	v.SetFocus(7, 7)
	if !v.Selection().Equals(sel) {
		t.Fatalf("focus change altered the selection: %+v", v.Selection().Rects())
	}
}

// TestNotificationCountSingleMutation is property 9, at the grid level.
func TestNotificationCountSingleMutation(t *testing.T) {
	v, n := newTestView(t, 5, 5, StyleFocusedCell, SelComplex)
	v.SetFocus(0, 0)

	before := len(n.selectionChanged)
	sel, _ := SelectionFromCellRect(0, 0, 2, 2)
	v.SetSelection(sel)
	if len(n.selectionChanged)-before != 1 {
		t.Fatalf("SetSelection fired %d SelectionChanged events, want 1", len(n.selectionChanged)-before)
	}

	before = len(n.focusChanged)
	v.SetFocus(1, 1)
	if len(n.focusChanged)-before != 1 {
		t.Fatalf("SetFocus fired %d FocusChanged events, want 1", len(n.focusChanged)-before)
	}
}
