package grid

import (
	"testing"

	"github.com/tekugo/gridkit/table"
)

type recordingSurface struct {
	drawnText []string
}

func (s *recordingSurface) ClipPush(Rect)                          {}
func (s *recordingSurface) ClipPop()                               {}
func (s *recordingSurface) FillRect(Rect, Color)                   {}
func (s *recordingSurface) DrawEdge(Rect, bool)                     {}
func (s *recordingSurface) DrawThemedBackground(Rect, BackgroundKind) bool { return true }
func (s *recordingSurface) DrawText(_ Rect, text string, _ Color, _ HAlign, _ VAlign) {
	s.drawnText = append(s.drawnText, text)
}
func (s *recordingSurface) DrawLine(Point, Point, Color) {}
func (s *recordingSurface) DrawFocusRect(Rect)           {}

type ownerDataNotifier struct {
	NotifierBase
	cells map[[2]int]string
}

func (n *ownerDataNotifier) GetDispInfo(col, row int, _ table.PatchMask) table.Cell {
	return table.Cell{Text: table.Owned(n.cells[[2]int{col, row}])}
}

// TestOwnerDataEndToEnd exercises the owner-data path the review
// flagged as unreachable: attaching a real table is rejected, focus and
// hit-testing use virtualCols/virtualRows, scroll limits become
// non-zero, and Paint actually calls GetDispInfo for visible cells.
func TestOwnerDataEndToEnd(t *testing.T) {
	v := New(StyleOwnerData | StyleFocusedCell)
	if err := v.ResizeOwnerData(5, 5); err != nil {
		t.Fatalf("ResizeOwnerData: %v", err)
	}
	v.ResetGeometryDefaults(1, 1)
	v.SetClientSize(20, 20)

	n := &ownerDataNotifier{cells: map[[2]int]string{{1, 1}: "hi"}}
	v.Notifier = n

	if err := v.SetFocus(1, 1); err != nil {
		t.Fatalf("SetFocus under owner-data: %v", err)
	}
	if col, row, ok := v.Focus(); !ok || col != 1 || row != 1 {
		t.Fatalf("Focus = (%d,%d,%v), want (1,1,true)", col, row, ok)
	}
	if err := v.SetFocus(10, 10); err == nil {
		t.Fatalf("SetFocus accepted an out-of-range owner-data target")
	}

	if v.scrollXMax == 0 || v.scrollYMax == 0 {
		t.Fatalf("scroll limits still zero under owner-data: xMax=%d yMax=%d", v.scrollXMax, v.scrollYMax)
	}

	pt := pointForCell(v, 2, 2)
	if c := v.colAt(pt.X); c != 2 {
		t.Fatalf("colAt = %d, want 2", c)
	}
	if r := v.rowAt(pt.Y); r != 2 {
		t.Fatalf("rowAt = %d, want 2", r)
	}

	surface := &recordingSurface{}
	v.Surface = surface
	v.Paint(v.clientRect())

	found := false
	for _, s := range surface.drawnText {
		if s == "hi" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Paint never drew the owner-data cell's GetDispInfo text: %v", surface.drawnText)
	}
}
