// Command griddemo drives a small spreadsheet-like grid.View directly
// on the terminal: alphabetic column headers, numeric row headers, a
// complex selection mode, resizable columns, and Enter-to-edit labels.
// Its screen setup and event loop follow the teacher's UI.Run/EventLoop
// pair (ui.go): a background goroutine polls tcell for events and
// forwards them over a channel to a single-threaded select loop, which
// is also where every grid.View mutation happens (§5).
//
// Cell text persists to a SQLite file (store.go), grounded on the
// teacher's cmd/dbu database utility: loaded at startup, saved with
// Ctrl+S or on quit.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tekugo/gridkit/adapters/tcellgrid"
	"github.com/tekugo/gridkit/grid"
	"github.com/tekugo/gridkit/table"
)

const (
	cols = 26
	rows = 200
)

type notifier struct {
	grid.NotifierBase
	status string
}

func (n *notifier) Invalidate(r grid.Rect) {
	// The demo is small enough to repaint the whole view on any
	// invalidation rather than tracking damage rectangles itself.
}

func (n *notifier) SelectionChanged(sel grid.Selection) {
	c0, r0, c1, r1 := sel.Extents()
	n.status = fmt.Sprintf("selection %d,%d - %d,%d", c0, r0, c1-1, r1-1)
}

func (n *notifier) FocusChanged(col, row int) {
	n.status = fmt.Sprintf("focus %s%d", colName(col), row+1)
}

func colName(col int) string {
	n := col + 1
	var s string
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "griddemo:", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := tcellgrid.NewSurface(screen)

	tb, err := table.New(cols, rows)
	if err != nil {
		return err
	}

	dbPath := "./griddemo.db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}
	db, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := loadTable(db, tb); err != nil {
		return err
	}

	v := grid.New(0)
	if err := v.AttachTable(tb); err != nil {
		return err
	}
	v.Style = grid.StyleFocusedCell | grid.StyleEditLabels | grid.StyleResizableCols | grid.StyleResizableRows
	v.SelectionMode = grid.SelComplex
	v.ColHeaderMode = grid.HeaderAlphabetic
	v.RowHeaderMode = grid.HeaderNumeric
	v.Surface = surface

	// ResetGeometryDefaults wants a measured cell size; a terminal cell
	// is always 1x1, so the "font" is just that.
	v.ResetGeometryDefaults(1, 1)

	n := &notifier{}
	v.Notifier = n

	var activeEdit *tcellgrid.EditControl
	v.EditFactory = tcellgrid.NewEditControlFactory(screen, surface.Selected, &activeEdit)

	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		v.SetClientSize(w, h-1)
	} else {
		w, h := screen.Size()
		v.SetClientSize(w, h-1)
	}

	quit := make(chan struct{})
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	draw := func() {
		screen.Clear()
		w, h := screen.Size()
		v.Paint(grid.Rect{X0: 0, Y0: 0, X1: w, Y1: h - 1})
		for i, r := range []rune(n.status) {
			screen.SetContent(i, h-1, r, nil, surface.Normal.Reverse(true))
		}
		screen.Show()
	}
	draw()

	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if activeEdit == nil && ev.Key() == tcell.KeyCtrlC {
					_ = saveTable(db, tb)
					close(quit)
					continue
				}
				if activeEdit == nil && ev.Key() == tcell.KeyCtrlS {
					if err := saveTable(db, tb); err != nil {
						n.status = fmt.Sprintf("save failed: %v", err)
					} else {
						n.status = "saved " + dbPath
					}
					continue
				}
				tcellgrid.Dispatch(v, activeEdit, ev)
			case *tcell.EventResize:
				w, h := screen.Size()
				v.SetClientSize(w, h-1)
				screen.Sync()
			default:
				tcellgrid.Dispatch(v, activeEdit, ev)
			}
			draw()
		}
	}
}
