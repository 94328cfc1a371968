package grid

import "strconv"

// headerText resolves the display text of a column or row header cell
// under the view's configured header mode. Stored headers read straight
// from the table; Numeric and Alphabetic are generated from the
// (1-based) index; None never paints a header band at all, so callers
// shouldn't reach here for it.
func (v *View) headerText(index int, mode HeaderMode, stored string) string {
	switch mode {
	case HeaderNumeric:
		return strconv.Itoa(index + 1)
	case HeaderAlphabetic:
		return alphabeticLabel(index + 1)
	default:
		return stored
	}
}

// alphabeticLabel renders a 1-based index as a base-26 label using the
// digit set A..Z: 1→A, 26→Z, 27→AA, 28→AB, ..., grounded on
// original_source/src/grid.c's grid_header_str alphabetic branch.
func alphabeticLabel(n int) string {
	if n <= 0 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}
