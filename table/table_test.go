package table

import (
	"math/rand"
	"testing"
)

func TestResizePreservesIntersection(t *testing.T) {
	// Scenario A: a 3x2 table, resized to 4x3, keeps its original 3x2
	// contents and zero-fills the new column and row.
	tb, err := New(3, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for c := 0; c < 3; c++ {
		for r := 0; r < 2; r++ {
			if err := tb.SetCell(c, r, Patch{Mask: PatchText, Text: Owned("x")}); err != nil {
				t.Fatalf("SetCell(%d,%d): %v", c, r, err)
			}
		}
	}

	var events []Event
	tb.InstallView("v", func(ev Event) { events = append(events, ev) })

	if err := tb.Resize(4, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(events), events)
	}
	if events[0].Kind != ColCountChanged || events[0].OldCount != 3 || events[0].NewCount != 4 || events[0].Pos != 3 {
		t.Fatalf("event[0] = %+v, want ColCountChanged(3,4,3)", events[0])
	}
	if events[1].Kind != RowCountChanged || events[1].OldCount != 2 || events[1].NewCount != 3 || events[1].Pos != 2 {
		t.Fatalf("event[1] = %+v, want RowCountChanged(2,3,2)", events[1])
	}

	for c := 0; c < 3; c++ {
		for r := 0; r < 2; r++ {
			cell, err := tb.GetCell(c, r, PatchText)
			if err != nil {
				t.Fatalf("GetCell(%d,%d): %v", c, r, err)
			}
			if cell.Text.String() != "x" {
				t.Fatalf("cell(%d,%d) = %q, want preserved %q", c, r, cell.Text.String(), "x")
			}
		}
	}
	for _, rc := range [][2]int{{3, 0}, {3, 1}, {3, 2}, {0, 2}, {1, 2}, {2, 2}} {
		cell, err := tb.GetCell(rc[0], rc[1], PatchText)
		if err != nil {
			t.Fatalf("GetCell(%d,%d): %v", rc[0], rc[1], err)
		}
		if cell.Text.Present() {
			t.Fatalf("new cell(%d,%d) = %q, want empty", rc[0], rc[1], cell.Text.String())
		}
	}
}

func TestDeadCornerRejected(t *testing.T) {
	tb, _ := New(2, 2)
	if err := tb.SetCell(Header, Header, Patch{Mask: PatchText, Text: Owned("x")}); err == nil {
		t.Fatalf("SetCell(Header,Header) succeeded, want error")
	}
	if _, err := tb.GetCell(Header, Header, PatchText); err == nil {
		t.Fatalf("GetCell(Header,Header) succeeded, want error")
	}
}

func TestHeaderBandsIndependent(t *testing.T) {
	tb, _ := New(2, 2)
	if err := tb.SetCell(0, Header, Patch{Mask: PatchText, Text: Owned("col0")}); err != nil {
		t.Fatalf("set col header: %v", err)
	}
	if err := tb.SetCell(Header, 0, Patch{Mask: PatchText, Text: Owned("row0")}); err != nil {
		t.Fatalf("set row header: %v", err)
	}
	colCell, _ := tb.GetCell(0, Header, PatchText)
	rowCell, _ := tb.GetCell(Header, 0, PatchText)
	if colCell.Text.String() != "col0" {
		t.Fatalf("col header = %q, want col0", colCell.Text.String())
	}
	if rowCell.Text.String() != "row0" {
		t.Fatalf("row header = %q, want row0", rowCell.Text.String())
	}
	ordinary, _ := tb.GetCell(0, 0, PatchText)
	if ordinary.Text.Present() {
		t.Fatalf("ordinary cell (0,0) = %q, want unaffected by header writes", ordinary.Text.String())
	}
}

// TestNotificationCount is property 9: every mutating call emits exactly
// one refresh event, except Resize which may emit up to two and a
// multi-band Clear which emits one per band.
func TestNotificationCount(t *testing.T) {
	tb, _ := New(3, 3)
	var count int
	tb.InstallView("v", func(Event) { count++ })

	count = 0
	tb.SetCell(0, 0, Patch{Mask: PatchText, Text: Owned("a")})
	if count != 1 {
		t.Fatalf("SetCell emitted %d events, want 1", count)
	}

	count = 0
	tb.Clear(ClearOrdinary)
	if count != 1 {
		t.Fatalf("Clear(single band) emitted %d events, want 1", count)
	}

	count = 0
	tb.Resize(3, 3)
	if count != 0 {
		t.Fatalf("no-op resize emitted %d events, want 0", count)
	}

	count = 0
	tb.Resize(5, 3)
	if count != 1 {
		t.Fatalf("col-only resize emitted %d events, want 1", count)
	}
}

func TestUninstallViewStopsNotifications(t *testing.T) {
	tb, _ := New(1, 1)
	var count int
	tb.InstallView("v", func(Event) { count++ })
	tb.UninstallView("v")
	tb.SetCell(0, 0, Patch{Mask: PatchText, Text: Owned("a")})
	if count != 0 {
		t.Fatalf("uninstalled view still received %d events", count)
	}
}

// TestResizeFuzzPreservesIntersection is property 2: for any sequence of
// resizes, every cell within the running intersection of all extents
// retains the value it was last given.
func TestResizeFuzzPreservesIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tb, _ := New(5, 5)
	minCols, minRows := 5, 5
	for c := 0; c < 5; c++ {
		for r := 0; r < 5; r++ {
			tb.SetCell(c, r, Patch{Mask: PatchParam, Param: c*100 + r})
		}
	}
	for i := 0; i < 50; i++ {
		newCols := rng.Intn(8) + 1
		newRows := rng.Intn(8) + 1
		if err := tb.Resize(newCols, newRows); err != nil {
			t.Fatalf("Resize(%d,%d): %v", newCols, newRows, err)
		}
		if newCols < minCols {
			minCols = newCols
		}
		if newRows < minRows {
			minRows = newRows
		}
		for c := 0; c < minCols; c++ {
			for r := 0; r < minRows; r++ {
				cell, err := tb.GetCell(c, r, PatchParam)
				if err != nil {
					t.Fatalf("GetCell(%d,%d): %v", c, r, err)
				}
				if cell.Param != c*100+r {
					t.Fatalf("cell(%d,%d) = %v, want %d after resize to %dx%d", c, r, cell.Param, c*100+r, newCols, newRows)
				}
			}
		}
	}
}
