package buffer

import graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"

// ByteOffset returns the byte position of character offset off in the text.
func (b *Buffer) ByteOffset(off int) int {
	return b.text.ByteOffset(off)
}

// Column returns the terminal column where character offset off starts.
func (b *Buffer) Column(off int) int {
	return b.text.ColumnWidth(off)
}

// PointColumn returns the terminal column of the point.
func (b *Buffer) PointColumn() int {
	return b.text.ColumnWidth(b.point)
}

// OffsetAtColumn maps a terminal column to the character covering it.
// Columns past the end map to the text length.
func (b *Buffer) OffsetAtColumn(col int) int {
	return graphemeutil.ColumnToOffset(b.text.String(), col)
}
