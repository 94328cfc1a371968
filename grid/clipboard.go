package grid

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/tekugo/gridkit/table"
)

// CopySelection serializes the view's current selection to a
// tab-separated, newline-delimited string (cells within a row
// tab-separated, rows newline-separated, rectangles separated by a blank
// line) and writes it to the system clipboard via atotto/clipboard. It is
// purely additive: no spec.md operation depends on it. An empty selection
// (or a view with no table) returns nil without touching the clipboard.
func (v *View) CopySelection() error {
	text, err := v.SelectionText()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return clipboard.WriteAll(text)
}

// SelectionText renders the selection the same way CopySelection does,
// without touching the clipboard; useful for tests and for hosts that
// want to display a preview before copying.
func (v *View) SelectionText() (string, error) {
	if v.Table == nil || v.selection.IsEmpty() {
		return "", nil
	}
	var blocks []string
	for _, rc := range v.selection.Rects() {
		var rows []string
		for row := int(rc.Y0); row < int(rc.Y1); row++ {
			var cols []string
			for col := int(rc.X0); col < int(rc.X1); col++ {
				cell, err := v.Table.GetCell(col, row, table.PatchText)
				if err != nil {
					return "", err
				}
				cols = append(cols, cell.Text.String())
			}
			rows = append(rows, strings.Join(cols, "\t"))
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}
	return strings.Join(blocks, "\n\n"), nil
}
