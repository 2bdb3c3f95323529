package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Class is the word-motion class of a rune.
type Class uint8

const (
	ClassSpace Class = iota
	ClassPunct
	ClassWord
)

// ClassOf classifies r as whitespace, punctuation or word character.
// Symbols count as punctuation.
func ClassOf(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return ClassSpace
	case unicode.IsPunct(r), unicode.IsSymbol(r):
		return ClassPunct
	default:
		return ClassWord
	}
}

// NextBoundary returns the rune offset just past the cluster starting at off:
// a base character and any combining marks that follow it.
func NextBoundary(runes []rune, off int) int {
	if off < 0 {
		off = 0
	}
	if off >= len(runes) {
		return len(runes)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(runes[off:]), -1)
	n := utf8.RuneCountInString(cluster)
	if n == 0 {
		n = 1
	}
	return off + n
}

// PrevBoundary returns the rune offset where the cluster ending at off starts.
func PrevBoundary(runes []rune, off int) int {
	if off > len(runes) {
		off = len(runes)
	}
	if off <= 0 {
		return 0
	}
	start, cur := 0, 0
	state := -1
	rest := string(runes[:off])
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start = cur
		cur += utf8.RuneCountInString(cluster)
	}
	return start
}

// ControlGlyph stands in for control characters on screen.
const ControlGlyph = '?'

// ClusterWidth returns the terminal cell width of one grapheme cluster.
// A control character occupies one cell, drawn as ControlGlyph.
func ClusterWidth(cluster string) int {
	if r, size := utf8.DecodeRuneInString(cluster); size > 0 && size == len(cluster) && unicode.IsControl(r) {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	total := 0
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		total += ClusterWidth(cluster)
	}
	return total
}

// SliceColumns returns the part of text covering cells [start, start+width).
// Wide clusters cut by either edge are replaced by blanks.
func SliceColumns(text string, start, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	end := start + width

	var sb strings.Builder
	col := 0
	state := -1
	for text != "" && col < end {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w := ClusterWidth(cluster)
		next := col + w
		switch {
		case next <= start:
		case col >= start && next <= end:
			sb.WriteString(cluster)
		default:
			lo, hi := max(col, start), min(next, end)
			sb.WriteString(strings.Repeat(" ", hi-lo))
		}
		col = next
	}
	return sb.String()
}

// ColumnToOffset maps a cell column to the rune offset of the cluster
// covering it. Columns past the end map to the rune length of text.
func ColumnToOffset(text string, col int) int {
	if col <= 0 {
		return 0
	}
	cur, off := 0, 0
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w := ClusterWidth(cluster)
		if col < cur+w {
			return off
		}
		cur += w
		off += utf8.RuneCountInString(cluster)
	}
	return off
}

// Printable replaces control characters in text with ControlGlyph.
func Printable(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ControlGlyph
		}
		return r
	}, text)
}
