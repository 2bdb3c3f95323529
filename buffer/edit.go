package buffer

import (
	"unicode/utf8"

	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

// InsertByte feeds one byte of typed input and reports whether a character
// was inserted.
//
// A fresh buffer is emptied first. An active selection is replaced.
// Bytes of an unfinished character are held until it completes; a sequence
// that can never be valid is dropped. If the text cannot grow the character
// is dropped and the buffer is left as it was.
func (b *Buffer) InsertByte(c byte) bool {
	change := b.beginChange()
	defer b.commitChange(change)

	if b.fresh {
		b.clearText(&change)
		b.fresh = false
		b.version++
	}
	if r, ok := b.Selection(); ok {
		b.deleteRegion(&change, r)
	}

	p, res := b.acc.Feed(c)
	if res != FeedComplete {
		return false
	}
	return b.insertAtPoint(&change, p)
}

// InsertRune inserts r at the point, replacing an active selection.
func (b *Buffer) InsertRune(r rune) bool {
	if !utf8.ValidRune(r) {
		return false
	}
	return b.InsertString(string(r)) == 1
}

// InsertString inserts s one character at a time at the point, replacing an
// active selection, and returns the number of characters inserted.
//
// Invalid bytes in s are skipped. Insertion stops at the first character
// the text cannot grow to hold.
func (b *Buffer) InsertString(s string) int {
	change := b.beginChange()
	defer b.commitChange(change)

	if r, ok := b.Selection(); ok {
		b.deleteRegion(&change, r)
	}

	b.acc.Reset()
	n := 0
	for i := 0; i < len(s); i++ {
		p, res := b.acc.Feed(s[i])
		if res != FeedComplete {
			continue
		}
		if !b.insertAtPoint(&change, p) {
			break
		}
		n++
	}
	b.acc.Reset()
	return n
}

// DeleteForward removes the character at the point with its combining marks.
// A fresh buffer is emptied instead; an active selection is deleted instead.
func (b *Buffer) DeleteForward() bool {
	change := b.beginChange()
	defer b.commitChange(change)
	b.acc.Reset()

	if b.fresh {
		b.fresh = false
		b.version++
		return b.clearText(&change)
	}
	if r, ok := b.Selection(); ok {
		return b.deleteRegion(&change, r) != ""
	}
	end := graphemeutil.NextBoundary(b.text.Runes(), b.point)
	return b.removeRange(&change, Range{Start: b.point, End: end}) != ""
}

// Backspace removes the character before the point with its combining marks,
// or the active selection.
func (b *Buffer) Backspace() bool {
	change := b.beginChange()
	defer b.commitChange(change)
	b.acc.Reset()

	if r, ok := b.Selection(); ok {
		return b.deleteRegion(&change, r) != ""
	}
	if b.point == 0 {
		return false
	}
	start := graphemeutil.PrevBoundary(b.text.Runes(), b.point)
	if b.removeRange(&change, Range{Start: start, End: b.point}) == "" {
		return false
	}
	b.point = start
	return true
}

// DeleteRegion removes [from, to) in either order, moves the point to the
// start and stops highlighting. It returns the removed text.
func (b *Buffer) DeleteRegion(from, to int) string {
	change := b.beginChange()
	defer b.commitChange(change)
	return b.deleteRegion(&change, Range{Start: from, End: to})
}

// DeleteToEnd truncates the text at the point and returns what was cut.
func (b *Buffer) DeleteToEnd() string {
	change := b.beginChange()
	defer b.commitChange(change)
	b.acc.Reset()

	if r, ok := b.Selection(); ok {
		b.deleteRegion(&change, r)
	}
	return b.removeRange(&change, Range{Start: b.point, End: b.text.Len()})
}

// KillWord removes from the point to the end of the next word and the
// whitespace after it, and returns the removed text.
func (b *Buffer) KillWord() string {
	change := b.beginChange()
	defer b.commitChange(change)
	b.acc.Reset()

	if r, ok := b.Selection(); ok {
		b.deleteRegion(&change, r)
	}
	end := killWordEnd(b.text.Runes(), b.point)
	return b.deleteRegion(&change, Range{Start: b.point, End: end})
}

// BackKillWord removes from the start of the previous word to the point and
// returns the removed text.
func (b *Buffer) BackKillWord() string {
	change := b.beginChange()
	defer b.commitChange(change)
	b.acc.Reset()

	if r, ok := b.Selection(); ok {
		b.deleteRegion(&change, r)
	}
	start := WordLeft(b.text.Runes(), b.point)
	return b.deleteRegion(&change, Range{Start: start, End: b.point})
}

// ClearAll empties the text and resets point, mark and highlight.
func (b *Buffer) ClearAll() {
	change := b.beginChange()
	defer b.commitChange(change)
	b.clearText(&change)
}

// Assign replaces the text, puts the point at its end and zeroes the mark.
func (b *Buffer) Assign(s string) error {
	change := b.beginChange()
	defer b.commitChange(change)

	if !utf8.ValidString(s) {
		s = toValidUTF8(s)
	}
	old := b.text.String()
	if err := b.text.Reset(s); err != nil {
		return err
	}
	b.acc.Reset()
	b.point = b.text.Len()
	b.mark = 0
	b.highlight = false
	b.version++
	if old != s {
		change.recordDelete(0, old)
		change.recordInsert(0, s)
		b.textVersion++
	}
	return nil
}

func (b *Buffer) clearText(cb *changeBuilder) bool {
	removed := b.removeRange(cb, Range{Start: 0, End: b.text.Len()})
	b.acc.Reset()
	b.point = 0
	b.mark = 0
	b.highlight = false
	b.version++
	return removed != ""
}

func (b *Buffer) deleteRegion(cb *changeBuilder, r Range) string {
	r = ClampRange(r, b.text.Len())
	removed := b.removeRange(cb, r)
	b.acc.Reset()
	b.point = r.Start
	b.mark = 0
	b.highlight = false
	b.version++
	return removed
}

func (b *Buffer) removeRange(cb *changeBuilder, r Range) string {
	r = ClampRange(r, b.text.Len())
	s := b.text.DeleteRange(r.Start, r.End)
	if s == "" {
		return ""
	}
	cb.recordDelete(r.Start, s)
	if b.point > r.End {
		b.point -= r.End - r.Start
	} else if b.point > r.Start {
		b.point = r.Start
	}
	b.textVersion++
	b.version++
	return s
}

func (b *Buffer) insertAtPoint(cb *changeBuilder, p []byte) bool {
	if err := b.text.InsertAt(b.point, p); err != nil {
		return false
	}
	cb.recordInsert(b.point, string(p))
	b.point += utf8.RuneCount(p)
	b.textVersion++
	b.version++
	return true
}
