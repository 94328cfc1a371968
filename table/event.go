package table

// EventKind discriminates the refresh event payload. Grounded on mCtrl's
// table_refresh_detail_tag enum (mctrl/table.h), generalized from its
// single flat struct of optional fields into a Go sum type.
type EventKind int

const (
	// CellChanged reports that the single cell at (Col, Row) was set.
	// Col and/or Row may be Header.
	CellChanged EventKind = iota
	// RegionChanged reports that every cell in [Col0,Col1) x [Row0,Row1)
	// was reset, as by Clear. The region never straddles header and
	// ordinary cells in the same event.
	RegionChanged
	// ColCountChanged reports the table's column count changed from
	// OldCount to NewCount; Pos is the index of the first added or
	// removed column.
	ColCountChanged
	// RowCountChanged reports the table's row count changed from
	// OldCount to NewCount; Pos is the index of the first added or
	// removed row.
	RowCountChanged
)

// Event is the refresh notification a Table sends to every installed
// view. Only the fields relevant to Kind are meaningful; the rest are
// zero.
type Event struct {
	Kind EventKind

	// CellChanged
	Col, Row int

	// RegionChanged: half-open cell range.
	Col0, Row0, Col1, Row1 int

	// ColCountChanged / RowCountChanged
	OldCount, NewCount, Pos int
}
