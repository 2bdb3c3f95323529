package buffer

import (
	"errors"
	"unicode/utf8"

	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

var (
	// ErrTooLarge reports that growing the text would exceed its size limit.
	ErrTooLarge = errors.New("buffer: text exceeds size limit")
	// ErrInvalidUTF8 reports an insert of bytes that are not whole UTF-8 characters.
	ErrInvalidUTF8 = errors.New("buffer: invalid utf-8")
)

// Text is the byte storage for one line of UTF-8 text.
//
// The backing array always has room for one byte more than the content.
// It grows on insert and never shrinks.
type Text struct {
	b     []byte
	runes int

	widthHint int
	maxSize   int
}

// NewText allocates storage sized to widthHint+1 (or the text, if longer).
// maxSize bounds the content length in bytes; 0 means unbounded.
func NewText(s string, widthHint, maxSize int) *Text {
	if widthHint < 0 {
		widthHint = 0
	}
	if !utf8.ValidString(s) {
		s = toValidUTF8(s)
	}
	if maxSize > 0 && len(s) > maxSize {
		s = truncateUTF8(s, maxSize)
	}
	c := max(widthHint, len(s)) + 1
	b := make([]byte, len(s), c)
	copy(b, s)
	return &Text{
		b:         b,
		runes:     utf8.RuneCount(b),
		widthHint: widthHint,
		maxSize:   maxSize,
	}
}

func (t *Text) String() string { return string(t.b) }

// Len returns the number of characters in the text.
func (t *Text) Len() int { return t.runes }

// ByteLen returns the content length in bytes.
func (t *Text) ByteLen() int { return len(t.b) }

// Cap returns the allocated capacity in bytes.
func (t *Text) Cap() int { return cap(t.b) }

// ByteOffset returns the byte position of character offset off.
// Offsets are clamped to [0, Len()].
func (t *Text) ByteOffset(off int) int {
	if off <= 0 {
		return 0
	}
	if off >= t.runes {
		return len(t.b)
	}
	pos := 0
	for i := 0; i < off; i++ {
		_, size := utf8.DecodeRune(t.b[pos:])
		pos += size
	}
	return pos
}

// ColumnWidth returns the terminal width of the first upto characters.
func (t *Text) ColumnWidth(upto int) int {
	return graphemeutil.Width(string(t.b[:t.ByteOffset(upto)]))
}

// Width returns the terminal width of the whole text.
func (t *Text) Width() int {
	return graphemeutil.Width(string(t.b))
}

// Slice returns the characters in [start, end).
func (t *Text) Slice(start, end int) string {
	r := ClampRange(Range{Start: start, End: end}, t.runes)
	return string(t.b[t.ByteOffset(r.Start):t.ByteOffset(r.End)])
}

// Runes returns the text as characters.
func (t *Text) Runes() []rune { return []rune(string(t.b)) }

// EnsureCapacity makes room for extra more content bytes.
//
// Growth adds the current capacity, the width hint and extra, so repeated
// single-character inserts reallocate rarely.
func (t *Text) EnsureCapacity(extra int) error {
	if extra <= 0 {
		return nil
	}
	need := len(t.b) + extra
	if t.maxSize > 0 && need > t.maxSize {
		return ErrTooLarge
	}
	if need+1 <= cap(t.b) {
		return nil
	}
	next := make([]byte, len(t.b), cap(t.b)+t.widthHint+extra)
	copy(next, t.b)
	t.b = next
	return nil
}

// InsertAt splices p at character offset off.
// p must hold whole UTF-8 characters.
func (t *Text) InsertAt(off int, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if !utf8.Valid(p) {
		return ErrInvalidUTF8
	}
	if err := t.EnsureCapacity(len(p)); err != nil {
		return err
	}
	pos := t.ByteOffset(off)
	n := len(t.b)
	t.b = t.b[:n+len(p)]
	copy(t.b[pos+len(p):], t.b[pos:n])
	copy(t.b[pos:], p)
	t.runes += utf8.RuneCount(p)
	return nil
}

// DeleteRange removes characters [start, end) and returns them.
// Offsets are clamped; capacity is kept.
func (t *Text) DeleteRange(start, end int) string {
	r := ClampRange(Range{Start: start, End: end}, t.runes)
	if r.IsEmpty() {
		return ""
	}
	from, to := t.ByteOffset(r.Start), t.ByteOffset(r.End)
	deleted := string(t.b[from:to])
	n := copy(t.b[from:], t.b[to:])
	t.b = t.b[:from+n]
	t.runes -= r.End - r.Start
	return deleted
}

// Reset replaces the content with s, growing storage if needed.
func (t *Text) Reset(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if t.maxSize > 0 && len(s) > t.maxSize {
		return ErrTooLarge
	}
	if len(s)+1 > cap(t.b) {
		t.b = make([]byte, 0, max(t.widthHint, len(s))+1)
	}
	t.b = append(t.b[:0], s...)
	t.runes = utf8.RuneCountInString(s)
	return nil
}

func toValidUTF8(s string) string {
	out := make([]byte, 0, len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError || size > 1 {
			out = append(out, s[:size]...)
		}
		s = s[size:]
	}
	return string(out)
}

func truncateUTF8(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
