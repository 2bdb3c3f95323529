package buffer

import graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"

type MoveUnit int

const (
	MoveChar MoveUnit = iota // a base character with its combining marks
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

// Move describes one caret motion.
//
// Extend starts highlighting at the current point when it is not already
// active, so the motion grows a selection. A plain move leaves the mark and
// highlight alone; callers decide when to drop them.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move applies m and reports whether the point changed.
func (b *Buffer) Move(m Move) bool {
	b.acc.Reset()
	if m.Extend && !b.highlight {
		b.SetMarkActive(true)
	}

	next := b.moveTarget(b.point, m)
	next = clampInt(next, 0, b.text.Len())
	if next == b.point {
		return false
	}
	b.point = next
	b.version++
	return true
}

func (b *Buffer) moveTarget(p int, m Move) int {
	switch m.Unit {
	case MoveChar:
		switch m.Dir {
		case DirLeft:
			return graphemeutil.PrevBoundary(b.text.Runes(), p)
		case DirRight:
			return graphemeutil.NextBoundary(b.text.Runes(), p)
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return WordLeft(b.text.Runes(), p)
		case DirRight:
			return WordRight(b.text.Runes(), p)
		}
	case MoveLine:
		switch m.Dir {
		case DirHome, DirLeft:
			return 0
		case DirEnd, DirRight:
			return b.text.Len()
		}
	}
	return p
}

func isWordRune(r rune) bool {
	return graphemeutil.ClassOf(r) == graphemeutil.ClassWord
}

// WordRight returns the offset reached from off by skipping the run of
// whitespace and punctuation, then the run of word characters after it.
func WordRight(runes []rune, off int) int {
	i := clampInt(off, 0, len(runes))
	for i < len(runes) && !isWordRune(runes[i]) {
		i++
	}
	for i < len(runes) && isWordRune(runes[i]) {
		i++
	}
	return i
}

// WordLeft is the backward counterpart of WordRight.
func WordLeft(runes []rune, off int) int {
	i := clampInt(off, 0, len(runes))
	for i > 0 && !isWordRune(runes[i-1]) {
		i--
	}
	for i > 0 && isWordRune(runes[i-1]) {
		i--
	}
	return i
}

// killWordEnd extends WordRight over the whitespace that follows the word.
func killWordEnd(runes []rune, off int) int {
	i := WordRight(runes, off)
	for i < len(runes) && graphemeutil.ClassOf(runes[i]) == graphemeutil.ClassSpace {
		i++
	}
	return i
}
