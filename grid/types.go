package grid

import "github.com/tekugo/gridkit/table"

// Rect is a pixel (or terminal cell) rectangle, half-open on both axes,
// used by geometry, scroll, and paint. Distinct from rgn16.Rect, which
// addresses table cell coordinates rather than drawing surface units.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Union returns the smallest rectangle containing both r and o. An empty
// operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	out := r
	if o.X0 < out.X0 {
		out.X0 = o.X0
	}
	if o.Y0 < out.Y0 {
		out.Y0 = o.Y0
	}
	if o.X1 > out.X1 {
		out.X1 = o.X1
	}
	if o.Y1 > out.Y1 {
		out.Y1 = o.Y1
	}
	return out
}

// Inflate grows r by n units on every side.
func (r Rect) Inflate(n int) Rect {
	return Rect{r.X0 - n, r.Y0 - n, r.X1 + n, r.Y1 + n}
}

// Intersect returns the overlap of r and o, which is Empty if they
// don't overlap. Used by PaintSurface implementations to maintain a
// clip stack (§4.6's ClipPush/ClipPop).
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	if o.X0 > out.X0 {
		out.X0 = o.X0
	}
	if o.Y0 > out.Y0 {
		out.Y0 = o.Y0
	}
	if o.X1 < out.X1 {
		out.X1 = o.X1
	}
	if o.Y1 < out.Y1 {
		out.Y1 = o.Y1
	}
	return out
}

// Point is a pixel/cell coordinate pair.
type Point struct{ X, Y int }

// HAlign is table.HAlign. paint.go's resolveAlign replaces HAlignDefault
// before DrawText is called, so a PaintSurface never receives it.
type HAlign = table.HAlign

// VAlign mirrors table.VAlign.
type VAlign = table.VAlign

// Re-export the alignment constants so callers of grid don't need to
// import table just to name an alignment.
const (
	HAlignDefault = table.HAlignDefault
	HAlignLeft    = table.HAlignLeft
	HAlignCenter  = table.HAlignCenter
	HAlignRight   = table.HAlignRight

	VAlignDefault = table.VAlignDefault
	VAlignTop     = table.VAlignTop
	VAlignCenter  = table.VAlignCenter
	VAlignBottom  = table.VAlignBottom
)

// Color is an opaque color handed to a PaintSurface. Grid itself only
// ever passes 0 (the surface's own default) or 0x1 (the selected-cell
// background, from cellBackColor); other values are for hosts.
type Color uint32

// BackgroundKind selects which themed background a PaintSurface should
// attempt to draw, falling back to a solid fill when it reports it
// couldn't.
type BackgroundKind int

const (
	BackgroundListItem BackgroundKind = iota
	BackgroundHeaderItem
)

// PaintSurface is the abstract drawing collaborator described in §6. Grid
// never touches pixels directly; every visible effect goes through this
// interface.
type PaintSurface interface {
	ClipPush(r Rect)
	ClipPop()
	FillRect(r Rect, color Color)
	DrawEdge(r Rect, raised bool)
	// DrawThemedBackground attempts a theme-drawn background for r and
	// reports whether it succeeded; when it returns false (no theme engine
	// plugged in) grid falls back to FillRect for ordinary cells and to
	// DrawEdge for header cells and the dead corner.
	DrawThemedBackground(r Rect, kind BackgroundKind) bool
	DrawText(r Rect, text string, color Color, h HAlign, v VAlign)
	DrawLine(from, to Point, color Color)
	DrawFocusRect(r Rect)
}

// EditControl is the abstract embedded text editor described in §6.
type EditControl interface {
	Open(r Rect, initial string)
	SelectAll()
	Show()
	Text() string
	Close()
	// OnCommit/OnCancel/OnKillFocus register the control's own
	// notification callbacks; the grid installs exactly one of each per
	// Open.
	OnCommit(func(text string))
	OnCancel(func())
	OnKillFocus(func())
}

// ArbiterState is the drag arbiter's reply to a candidate drag start.
type ArbiterState int

const (
	ArbiterConsidering ArbiterState = iota
	ArbiterStarted
	ArbiterCancelled
)

// DragKind tells the arbiter what the in-progress drag represents, so a
// host-level status bar or cursor shape can react without the grid
// importing any presentation logic for it.
type DragKind int

const (
	DragMarquee DragKind = iota
	DragColResize
	DragRowResize
)

// DragArbiter is the abstract press/move/release-threshold collaborator
// described in §6 and §9 ("Drag arbitration"): a small state machine with
// inputs {press, move, release, cancel}.
type DragArbiter interface {
	ConsiderStart(origin Point) ArbiterState
	SetCandidate(origin, pointer Point, kind DragKind, extra any)
	Stop()
}

// HostNotifier receives every structured event the core emits (§6). Embed
// NotifierBase to get no-op/non-veto defaults for the methods a
// particular host doesn't care about, mirroring the teacher's
// BaseWidget embedding idiom.
type HostNotifier interface {
	// Invalidate asks the host to repaint r on its next paint pass. The
	// core has no windowing system of its own to schedule repaints with,
	// so every internal "invalidate region" call in §4.3/§4.6 surfaces
	// here instead.
	Invalidate(r Rect)

	CellChanged(col, row int)
	RegionChanged(col0, row0, col1, row1 int)
	ColCountChanged(old, new, pos int)
	RowCountChanged(old, new, pos int)

	FocusChanging(oldCol, oldRow, newCol, newRow int) (veto bool)
	FocusChanged(col, row int)

	SelectionChanging(old, new Selection) (veto bool)
	SelectionChanged(sel Selection)

	ColumnWidthChanging(col, oldWidth, newWidth int) (veto bool)
	ColumnWidthChanged(col, width int)
	RowHeightChanging(row, oldHeight, newHeight int) (veto bool)
	RowHeightChanged(row, height int)

	BeginColumnTrack(col int)
	EndColumnTrack(col, width int)
	BeginRowTrack(row int)
	EndRowTrack(row, height int)

	BeginLabelEdit(col, row int, cell table.Cell) (veto bool)
	EndLabelEdit(col, row int, newText string, committed bool)

	GetDispInfo(col, row int, mask table.PatchMask) table.Cell
	SetDispInfo(col, row int, patch table.Patch)
	CacheHint(col0, row0, col1, row1 int)

	CustomDrawPrePaint() (skipDefault bool)
	CustomDrawPostPaint()
	CustomDrawItemPrePaint(col, row int, cell *table.Cell) (skip bool)
	CustomDrawItemPostPaint(col, row int)

	Click(col, row int)
	DblClk(col, row int)
	RClick(col, row int)
	RDblClk(col, row int)

	SetFocusNotify()
	KillFocusNotify()
	ReleasedCapture()
	OutOfMemory()
}

// NotifierBase implements HostNotifier with no-op methods and
// non-vetoing defaults for every *_Changing hook. Embed it in a concrete
// notifier and override only the events it cares about.
type NotifierBase struct{}

func (NotifierBase) Invalidate(r Rect)                           {}
func (NotifierBase) CellChanged(col, row int)                   {}
func (NotifierBase) RegionChanged(col0, row0, col1, row1 int)    {}
func (NotifierBase) ColCountChanged(old, new, pos int)           {}
func (NotifierBase) RowCountChanged(old, new, pos int)           {}
func (NotifierBase) FocusChanging(a, b, c, d int) bool           { return false }
func (NotifierBase) FocusChanged(col, row int)                   {}
func (NotifierBase) SelectionChanging(old, new Selection) bool   { return false }
func (NotifierBase) SelectionChanged(sel Selection)              {}
func (NotifierBase) ColumnWidthChanging(col, old, new int) bool  { return false }
func (NotifierBase) ColumnWidthChanged(col, width int)           {}
func (NotifierBase) RowHeightChanging(row, old, new int) bool    { return false }
func (NotifierBase) RowHeightChanged(row, height int)            {}
func (NotifierBase) BeginColumnTrack(col int)                    {}
func (NotifierBase) EndColumnTrack(col, width int)                {}
func (NotifierBase) BeginRowTrack(row int)                       {}
func (NotifierBase) EndRowTrack(row, height int)                  {}
func (NotifierBase) BeginLabelEdit(col, row int, cell table.Cell) bool {
	return false
}
func (NotifierBase) EndLabelEdit(col, row int, newText string, committed bool) {}
func (NotifierBase) GetDispInfo(col, row int, mask table.PatchMask) table.Cell {
	return table.Cell{}
}
func (NotifierBase) SetDispInfo(col, row int, patch table.Patch)          {}
func (NotifierBase) CacheHint(col0, row0, col1, row1 int)                 {}
func (NotifierBase) CustomDrawPrePaint() bool                            { return false }
func (NotifierBase) CustomDrawPostPaint()                                {}
func (NotifierBase) CustomDrawItemPrePaint(col, row int, cell *table.Cell) bool {
	return false
}
func (NotifierBase) CustomDrawItemPostPaint(col, row int) {}
func (NotifierBase) Click(col, row int)                   {}
func (NotifierBase) DblClk(col, row int)                  {}
func (NotifierBase) RClick(col, row int)                  {}
func (NotifierBase) RDblClk(col, row int)                 {}
func (NotifierBase) SetFocusNotify()                      {}
func (NotifierBase) KillFocusNotify()                     {}
func (NotifierBase) ReleasedCapture()                     {}
func (NotifierBase) OutOfMemory()                         {}

var _ HostNotifier = NotifierBase{}
