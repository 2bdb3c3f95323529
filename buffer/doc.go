// Package buffer implements the single-line text model behind an input field.
//
// Positions are 0-based character (rune) offsets into the line.
// Ranges are half-open spans of offsets: [Start, End).
// The text is always valid UTF-8; partial multi-byte input is held in an
// Accumulator until it forms a whole character.
package buffer
