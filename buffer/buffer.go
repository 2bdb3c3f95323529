package buffer

type Options struct {
	// Width sizes the initial allocation and each growth step (default: 0).
	Width int
	// MaxSize bounds the text length in bytes. 0 means unbounded.
	MaxSize int
}

// Buffer is the line state: text, point, mark and the fresh flag.
//
// The mark is an emacs-style anchor: it keeps its value after highlighting
// stops, so region commands still see it.
type Buffer struct {
	text        *Text
	version     uint64
	textVersion uint64

	point     int
	mark      int
	highlight bool
	fresh     bool

	acc Accumulator
	opt Options

	lastChange    Change
	hasLastChange bool
}

// New returns a fresh buffer holding text with the point at its end.
func New(text string, opt Options) *Buffer {
	b := &Buffer{
		text:  NewText(text, opt.Width, opt.MaxSize),
		fresh: true,
		opt:   opt,
	}
	b.point = b.text.Len()
	return b
}

func (b *Buffer) Text() string { return b.text.String() }

// Len returns the text length in characters.
func (b *Buffer) Len() int { return b.text.Len() }

// Storage exposes the underlying text for read-only measurements.
func (b *Buffer) Storage() *Text { return b.text }

// Version increments on every observable state change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Point() int { return b.point }

// Mark returns the mark clamped to the text length.
func (b *Buffer) Mark() int { return min(b.mark, b.text.Len()) }

func (b *Buffer) Highlighting() bool { return b.highlight }

// Fresh reports whether the next typed character replaces the whole text.
func (b *Buffer) Fresh() bool { return b.fresh }

func (b *Buffer) SetFresh(on bool) {
	if b.fresh == on {
		return
	}
	b.fresh = on
	b.version++
}

// Pending returns the number of bytes of an unfinished character.
func (b *Buffer) Pending() int { return b.acc.Pending() }

// SetPoint moves the point, clamped to the text. It reports whether it moved.
func (b *Buffer) SetPoint(off int) bool {
	b.acc.Reset()
	next := clampInt(off, 0, b.text.Len())
	if next == b.point {
		return false
	}
	b.point = next
	b.version++
	return true
}

// SetMarkActive starts highlighting at the point, or stops it and zeroes the mark.
func (b *Buffer) SetMarkActive(on bool) {
	if on {
		b.mark = b.point
		b.highlight = true
	} else {
		b.mark = 0
		b.highlight = false
	}
	b.version++
}

// ClearHighlight stops highlighting but keeps the mark.
func (b *Buffer) ClearHighlight() {
	if !b.highlight {
		return
	}
	b.highlight = false
	b.version++
}

// Selection returns the highlighted span. ok is false unless highlighting.
func (b *Buffer) Selection() (Range, bool) {
	if !b.highlight {
		return Range{}, false
	}
	return b.Region(), true
}

// Region returns the span between mark and point whether or not it is highlighted.
func (b *Buffer) Region() Range {
	return ClampRange(Range{Start: b.mark, End: b.point}, b.text.Len())
}

// SelectedText returns the highlighted text, if any.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return b.text.Slice(r.Start, r.End), true
}

// RegionText returns the text between mark and point.
func (b *Buffer) RegionText() string {
	r := b.Region()
	return b.text.Slice(r.Start, r.End)
}
