package grid

import (
	"github.com/tekugo/gridkit/internal/errs"
	"github.com/tekugo/gridkit/table"
)

// Style is a bitmask of the grid's configuration switches (§6's
// "Config surface" table).
type Style uint32

const (
	StyleAutoTable Style = 1 << iota
	StyleNoGridLines
	StyleDoubleBuffer
	StyleOwnerData
	StyleResizableCols
	StyleResizableRows
	StyleFocusedCell
	StyleEditLabels
	StyleShowSelAlways
)

// HeaderMode selects how column/row header text is generated.
type HeaderMode int

const (
	HeaderStored HeaderMode = iota
	HeaderNumeric
	HeaderAlphabetic
	HeaderNone
)

// DefaultSize is the lazy-column/row-size sentinel of §4.3: stored in
// colWidths/rowHeights to mean "use the default".
const DefaultSize uint16 = 0xffff

// View is a non-shared observer of a table.Table plus all private
// presentation state: geometry, scroll, selection, focus, interaction,
// and virtual-mode cache (§3.3).
type View struct {
	Table    *table.Table
	Notifier HostNotifier
	Surface  PaintSurface
	Arbiter  DragArbiter
	// EditFactory constructs a fresh EditControl for each label-edit
	// session; nil disables label editing even if StyleEditLabels is set.
	EditFactory func() EditControl

	Style         Style
	SelectionMode SelectionMode
	ColHeaderMode HeaderMode
	RowHeaderMode HeaderMode
	RTL           bool

	// geometry
	headerWidth, headerHeight int
	defColWidth, defRowHeight int
	paddingH, paddingV        int
	colWidths                 []uint16
	rowHeights                []uint16

	// viewport
	scrollX, scrollY       int
	scrollXMax, scrollYMax int
	clientW, clientH       int

	// focus
	focusedCol, focusedRow int
	hasFocusCell           bool

	// selection
	selection             Selection
	selMarkCol, selMarkRow int

	// interaction (input.go)
	state   InputState
	drag    dragState
	hotCol  int
	hotRow  int

	// label edit (labeledit.go)
	edit editState

	// virtual mode cache (virtual.go)
	cacheCol0, cacheRow0, cacheCol1, cacheRow1 int
	cacheValid                                 bool

	// owner-data cached dimensions (virtual.go); meaningful only under
	// StyleOwnerData, where there is no backing table.
	virtualCols, virtualRows int
}

// New creates a View with default geometry and no attached table. If
// style includes StyleAutoTable, an empty table is created and attached
// immediately.
func New(style Style) *View {
	v := &View{
		Style:         style,
		SelectionMode: SelNone,
		ColHeaderMode: HeaderNone,
		RowHeaderMode: HeaderNone,
		defColWidth:   10,
		defRowHeight:  1,
		paddingH:      1,
		paddingV:      0,
		headerWidth:   4,
		headerHeight:  1,
	}
	if style&StyleAutoTable != 0 {
		t, _ := table.New(0, 0)
		_ = v.AttachTable(t)
	}
	return v
}

// AttachTable binds t to the view, installing a refresh callback and
// releasing any previously attached table. AttachTable fails with
// errs.InvalidState under StyleOwnerData, which manages its own cached
// dimensions instead (§4.8).
func (v *View) AttachTable(t *table.Table) error {
	if v.Style&StyleOwnerData != 0 {
		return errs.New("grid.AttachTable", errs.InvalidState, "owner-data views cannot attach a table")
	}
	if v.Table != nil {
		v.Table.UninstallView(v)
		v.Table.Release()
	}
	v.Table = t
	if t != nil {
		t.AddRef()
		t.InstallView(v, v.onTableEvent)
	}
	v.recomputeScrollLimits()
	return nil
}

// DetachTable releases the view's reference to its table, if any. The
// table drops its storage only once its reference count reaches zero
// (see table.Release), so a table whose creator still holds the
// reference taken by table.New stays alive.
func (v *View) DetachTable() {
	if v.Table == nil {
		return
	}
	v.endLabelEdit(true)
	v.Table.UninstallView(v)
	v.Table.Release()
	v.Table = nil
}

func (v *View) onTableEvent(ev table.Event) {
	switch ev.Kind {
	case table.CellChanged:
		v.invalidate(v.cellRect(ev.Col, ev.Row))
	case table.RegionChanged:
		v.invalidate(v.cellRangeRect(ev.Col0, ev.Row0, ev.Col1, ev.Row1))
	case table.ColCountChanged, table.RowCountChanged:
		v.recomputeScrollLimits()
		v.invalidate(v.clientRect())
	}
	if v.Notifier == nil {
		return
	}
	switch ev.Kind {
	case table.CellChanged:
		v.Notifier.CellChanged(ev.Col, ev.Row)
	case table.RegionChanged:
		v.Notifier.RegionChanged(ev.Col0, ev.Row0, ev.Col1, ev.Row1)
	case table.ColCountChanged:
		v.Notifier.ColCountChanged(ev.OldCount, ev.NewCount, ev.Pos)
	case table.RowCountChanged:
		v.Notifier.RowCountChanged(ev.OldCount, ev.NewCount, ev.Pos)
	}
}

func (v *View) invalidate(r Rect) {
	if v.Notifier != nil {
		v.Notifier.Invalidate(r)
	}
}

func (v *View) clientRect() Rect { return Rect{0, 0, v.clientW, v.clientH} }
