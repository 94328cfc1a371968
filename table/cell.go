package table

// HAlign is a cell's horizontal alignment override. HAlignDefault defers to
// the view's column default.
type HAlign uint8

const (
	HAlignDefault HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// VAlign is a cell's vertical alignment override. VAlignDefault defers to
// the view's row default.
type VAlign uint8

const (
	VAlignDefault VAlign = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
)

// Flags packs a cell's alignment bits into the 16-bit word the original
// mCtrl cell struct reserves for MCTRL_GRID flag constants.
type Flags uint16

const (
	hAlignMask = 0x3
	vAlignMask = 0x3 << 2
)

// NewFlags packs an alignment pair into a Flags word.
func NewFlags(h HAlign, v VAlign) Flags {
	return Flags(h) | Flags(v)<<2
}

// HAlign extracts the horizontal alignment bits.
func (f Flags) HAlign() HAlign { return HAlign(f & hAlignMask) }

// VAlign extracts the vertical alignment bits.
func (f Flags) VAlign() VAlign { return VAlign((f & vAlignMask) >> 2) }

type textKind uint8

const (
	textNone textKind = iota
	textOwned
	textCallback
)

// Text is the cell text sum type: absent, an owned string, or a callback
// marker telling the view to ask its owner for display text on demand
// (replacing mCtrl's TABLE_CELL_TEXT_CALLBACK sentinel pointer, which this
// package cannot reuse since Go strings carry no address identity to steal
// a sentinel from).
type Text struct {
	kind textKind
	s    string
}

// NoText is the zero Text value: the cell has no text.
func NoText() Text { return Text{} }

// Owned returns a Text holding s directly.
func Owned(s string) Text { return Text{kind: textOwned, s: s} }

// Callback returns a Text that defers to the table's owner for display
// text (LVM_GETDISPINFO-style virtual text, §4.10's virtual mode).
func Callback() Text { return Text{kind: textCallback} }

// IsCallback reports whether the view must query the owner for text.
func (t Text) IsCallback() bool { return t.kind == textCallback }

// Present reports whether the cell carries owned text (false for both
// NoText and Callback).
func (t Text) Present() bool { return t.kind == textOwned }

// String returns the owned string, or "" for NoText/Callback.
func (t Text) String() string { return t.s }

// Cell is one cell's full content: text, an opaque owner-defined
// parameter (mirroring LPARAM), and alignment flags.
type Cell struct {
	Text  Text
	Param any
	Flags Flags
}

// PatchMask selects which Cell fields a Patch assigns; unset fields are
// left untouched on the target cell.
type PatchMask uint8

const (
	PatchText PatchMask = 1 << iota
	PatchParam
	PatchFlags
	PatchAll = PatchText | PatchParam | PatchFlags
)

// Patch is a masked partial cell update, grounded on mCtrl's
// TABLE_CELL mask field paired with a table_set_cell call.
type Patch struct {
	Mask  PatchMask
	Text  Text
	Param any
	Flags Flags
}

// apply overwrites only the fields named by p.Mask on *c.
func (p Patch) apply(c *Cell) {
	if p.Mask&PatchText != 0 {
		c.Text = p.Text
	}
	if p.Mask&PatchParam != 0 {
		c.Param = p.Param
	}
	if p.Mask&PatchFlags != 0 {
		c.Flags = p.Flags
	}
}

// extract returns a Cell containing only the fields named by mask, the
// rest left at their zero value. Used by GetCell to avoid handing callers
// fields they didn't ask for (mirroring mctrl's masked TABLE_CELL fetch).
func extract(c Cell, mask PatchMask) Cell {
	var out Cell
	if mask&PatchText != 0 {
		out.Text = c.Text
	}
	if mask&PatchParam != 0 {
		out.Param = c.Param
	}
	if mask&PatchFlags != 0 {
		out.Flags = c.Flags
	}
	return out
}
