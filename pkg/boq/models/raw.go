// Package models defines data structures for survey sheet summarisation.
package models

// RawGrid is the cell text of one sheet in row-major order.
// Indexes are 0-based and rows may be ragged; an absent cell reads as "".
type RawGrid [][]string

// Cell returns the text at row r, column c, or "" when the cell is absent.
func (g RawGrid) Cell(r, c int) string {
	if r < 0 || r >= len(g) {
		return ""
	}
	return RowCell(g[r], c)
}

// RowCell returns the text at column c of row, or "" when the cell is absent.
func RowCell(row []string, c int) string {
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}
