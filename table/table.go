package table

import "github.com/tekugo/gridkit/internal/errs"

// Header is the sentinel column/row index addressing the table's header
// band. Passing Header for both Col and Row together addresses the dead
// corner cell, which does not exist.
const Header = -1

// MaxDim is the largest column or row count a Table accepts, matching the
// 16-bit coordinate space rgn16 regions (and therefore grid dirty
// tracking) can express.
const MaxDim = 0xfffe

// viewBinding pairs an installed view's identity with its refresh
// callback, mirroring the teacher's Subject entry list (observer.go) but
// keyed by an opaque id rather than by a typed Observable, since a Table
// outlives any one widget implementation.
type viewBinding struct {
	id      any
	refresh func(Event)
}

// Table is a reference counted, shared cell store. Multiple views may be
// installed on the same Table and will each receive every refresh event.
//
// Grounded on mCtrl's table_tag (mctrl/table.h): a ref-counted struct of
// col/row header arrays plus the ordinary cell grid, with a view list for
// fan-out notification (mctrl's winctrl list, here the teacher's
// Subject/Observable shape from observer.go).
type Table struct {
	colCount, rowCount int
	colHeaders         []Cell
	rowHeaders         []Cell
	cells              []Cell

	refs  int
	views []viewBinding
}

// New creates a Table with the given column and row counts and a single
// reference already held by the caller.
func New(cols, rows int) (*Table, error) {
	if cols < 0 || rows < 0 || cols > MaxDim || rows > MaxDim {
		return nil, errs.New("table.New", errs.InvalidArgument, "dimensions %dx%d out of range", cols, rows)
	}
	return &Table{
		colCount:   cols,
		rowCount:   rows,
		colHeaders: make([]Cell, cols),
		rowHeaders: make([]Cell, rows),
		cells:      make([]Cell, cols*rows),
		refs:       1,
	}, nil
}

// ColCount returns the current column count.
func (t *Table) ColCount() int { return t.colCount }

// RowCount returns the current row count.
func (t *Table) RowCount() int { return t.rowCount }

// AddRef increments the table's reference count. Every AddRef must be
// matched by a Release.
func (t *Table) AddRef() { t.refs++ }

// Release decrements the reference count. When it reaches zero the table
// drops its cell storage and view list eagerly rather than waiting on the
// garbage collector, so a caller holding a stale pointer past the last
// Release observes an empty table rather than live memory.
func (t *Table) Release() {
	t.refs--
	if t.refs <= 0 {
		t.colCount, t.rowCount = 0, 0
		t.colHeaders, t.rowHeaders, t.cells = nil, nil, nil
		t.views = nil
	}
}

// InstallView registers refresh to be called with every subsequent
// refresh Event, keyed by id. Installing the same id again replaces the
// prior callback.
func (t *Table) InstallView(id any, refresh func(Event)) {
	for i, v := range t.views {
		if v.id == id {
			t.views[i].refresh = refresh
			return
		}
	}
	t.views = append(t.views, viewBinding{id: id, refresh: refresh})
}

// UninstallView removes the view registered under id, if any.
func (t *Table) UninstallView(id any) {
	for i, v := range t.views {
		if v.id == id {
			t.views = append(t.views[:i], t.views[i+1:]...)
			return
		}
	}
}

func (t *Table) emit(ev Event) {
	// Views are invoked synchronously and in install order, per §4.1; a
	// view may not itself mutate the table from inside its callback, but
	// nothing here enforces that short of the obvious reentrant test.
	for _, v := range t.views {
		v.refresh(ev)
	}
}

// cellPtr resolves (col, row) to a pointer into the owning slice, using
// Header to select the column-header band, row-header band, or rejecting
// the dead corner where both are Header.
func (t *Table) cellPtr(col, row int) (*Cell, error) {
	switch {
	case col == Header && row == Header:
		return nil, errs.New("table.cellPtr", errs.InvalidArgument, "the header/header corner has no cell")
	case row == Header:
		if col < 0 || col >= t.colCount {
			return nil, errs.New("table.cellPtr", errs.InvalidArgument, "column header index %d out of range", col)
		}
		return &t.colHeaders[col], nil
	case col == Header:
		if row < 0 || row >= t.rowCount {
			return nil, errs.New("table.cellPtr", errs.InvalidArgument, "row header index %d out of range", row)
		}
		return &t.rowHeaders[row], nil
	default:
		if col < 0 || col >= t.colCount || row < 0 || row >= t.rowCount {
			return nil, errs.New("table.cellPtr", errs.InvalidArgument, "cell (%d,%d) out of range", col, row)
		}
		return &t.cells[row*t.colCount+col], nil
	}
}

// SetCell applies patch to the cell at (col, row) and emits a CellChanged
// event.
func (t *Table) SetCell(col, row int, patch Patch) error {
	c, err := t.cellPtr(col, row)
	if err != nil {
		return err
	}
	patch.apply(c)
	t.emit(Event{Kind: CellChanged, Col: col, Row: row})
	return nil
}

// GetCell returns the fields named by mask of the cell at (col, row).
func (t *Table) GetCell(col, row int, mask PatchMask) (Cell, error) {
	c, err := t.cellPtr(col, row)
	if err != nil {
		return Cell{}, err
	}
	return extract(*c, mask), nil
}

// ClearMask selects which cell bands Clear resets. The zero ClearMask
// clears all three.
type ClearMask uint8

const (
	ClearOrdinary ClearMask = 1 << iota
	ClearColHeaders
	ClearRowHeaders
	clearAll = ClearOrdinary | ClearColHeaders | ClearRowHeaders
)

// Clear resets every cell named by mask back to its zero value, emitting
// one RegionChanged event per affected band (ordinary cells, then column
// headers, then row headers), matching the same one-call/multiple-events
// exception Resize uses.
func (t *Table) Clear(mask ClearMask) {
	if mask == 0 {
		mask = clearAll
	}
	if mask&ClearOrdinary != 0 && t.colCount > 0 && t.rowCount > 0 {
		for i := range t.cells {
			t.cells[i] = Cell{}
		}
		t.emit(Event{Kind: RegionChanged, Col0: 0, Row0: 0, Col1: t.colCount, Row1: t.rowCount})
	}
	if mask&ClearColHeaders != 0 && t.colCount > 0 {
		for i := range t.colHeaders {
			t.colHeaders[i] = Cell{}
		}
		t.emit(Event{Kind: RegionChanged, Col0: 0, Row0: Header, Col1: t.colCount, Row1: Header + 1})
	}
	if mask&ClearRowHeaders != 0 && t.rowCount > 0 {
		for i := range t.rowHeaders {
			t.rowHeaders[i] = Cell{}
		}
		t.emit(Event{Kind: RegionChanged, Col0: Header, Row0: 0, Col1: Header + 1, Row1: t.rowCount})
	}
}

// Resize changes the table's dimensions, preserving the intersection of
// the old and new extents and zero-initializing any newly added cells.
// Cells that fall outside the new extents are dropped. Emits a
// ColCountChanged event if the column count changed, then a
// RowCountChanged event if the row count changed, in that order — like
// a multi-band Clear, a single call that can emit more than one refresh
// event (§4.1).
//
// Grounded on mCtrl's table_resize, which classifies the four quadrants
// of old-vs-new extents into copy/init/free regions; this port folds that
// classification into a single bounded copy loop since Go slices don't
// need the manual free step.
func (t *Table) Resize(cols, rows int) error {
	if cols < 0 || rows < 0 || cols > MaxDim || rows > MaxDim {
		return errs.New("table.Resize", errs.InvalidArgument, "dimensions %dx%d out of range", cols, rows)
	}
	oldCols, oldRows := t.colCount, t.rowCount

	newCells := make([]Cell, cols*rows)
	copyCols, copyRows := min(oldCols, cols), min(oldRows, rows)
	for r := 0; r < copyRows; r++ {
		srcOff := r * oldCols
		dstOff := r * cols
		copy(newCells[dstOff:dstOff+copyCols], t.cells[srcOff:srcOff+copyCols])
	}

	newColHeaders := make([]Cell, cols)
	copy(newColHeaders, t.colHeaders[:copyCols])
	newRowHeaders := make([]Cell, rows)
	copy(newRowHeaders, t.rowHeaders[:copyRows])

	t.cells = newCells
	t.colHeaders = newColHeaders
	t.rowHeaders = newRowHeaders
	t.colCount, t.rowCount = cols, rows

	if cols != oldCols {
		t.emit(Event{Kind: ColCountChanged, OldCount: oldCols, NewCount: cols, Pos: copyCols})
	}
	if rows != oldRows {
		t.emit(Event{Kind: RowCountChanged, OldCount: oldRows, NewCount: rows, Pos: copyRows})
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
