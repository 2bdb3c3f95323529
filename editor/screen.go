package editor

import graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"

// Role names the color of a drawn span.
type Role uint8

const (
	RoleMain      Role = iota // ordinary text
	RoleMark                  // highlighted selection
	RoleUnchanged             // text not yet edited since it was set
	RoleHistory               // history button
	RoleDisabled              // field does not accept input
)

// Screen is the drawing surface an input line renders to.
//
// Printing advances the output position by the cell width of what was
// printed. The position left by the final MoveCursor is where the caret sits.
type Screen interface {
	MoveCursor(row, col int)
	SetRole(r Role)
	PrintChar(r rune)
	PrintString(s string)
}

// Measurer measures text in terminal cells.
type Measurer interface {
	StringWidth(s string) int
	// SubstringByWidth returns the part of s covering cells
	// [startCol, startCol+width).
	SubstringByWidth(s string, startCol, width int) string
}

type cellMeasurer struct{}

func (cellMeasurer) StringWidth(s string) int { return graphemeutil.Width(s) }

func (cellMeasurer) SubstringByWidth(s string, startCol, width int) string {
	return graphemeutil.SliceColumns(s, startCol, width)
}

// DefaultMeasurer measures by grapheme cluster width.
func DefaultMeasurer() Measurer { return cellMeasurer{} }
