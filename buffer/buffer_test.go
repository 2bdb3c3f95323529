package buffer

import "testing"

func TestBuffer_NewPutsPointAtEnd(t *testing.T) {
	b := New("héllo", Options{Width: 8})
	if got, want := b.Point(), 5; got != want {
		t.Fatalf("point: got %d, want %d", got, want)
	}
	if !b.Fresh() {
		t.Fatalf("new buffer must be fresh")
	}
	if b.Version() != 0 || b.TextVersion() != 0 {
		t.Fatalf("versions: got (%d, %d), want (0, 0)", b.Version(), b.TextVersion())
	}
	if got, want := b.Storage().Cap(), 9; got != want {
		t.Fatalf("cap: got %d, want %d", got, want)
	}
}

func TestBuffer_SetPoint_ClampsAndVersions(t *testing.T) {
	b := editable("abc")
	v := b.Version()

	if !b.SetPoint(-4) || b.Point() != 0 {
		t.Fatalf("point: got %d, want 0", b.Point())
	}
	if b.Version() != v+1 {
		t.Fatalf("version: got %d, want %d", b.Version(), v+1)
	}
	if b.SetPoint(0) {
		t.Fatalf("same point must report no move")
	}
	b.SetPoint(99)
	if got, want := b.Point(), 3; got != want {
		t.Fatalf("point: got %d, want %d", got, want)
	}
	if b.TextVersion() != 0 {
		t.Fatalf("text version must not change on motion: got %d", b.TextVersion())
	}
}

func TestBuffer_SetMarkActive(t *testing.T) {
	b := editable("abc")
	b.SetPoint(1)
	b.SetMarkActive(true)
	if !b.Highlighting() || b.Mark() != 1 {
		t.Fatalf("mark on: highlight=%v mark=%d", b.Highlighting(), b.Mark())
	}
	if _, ok := b.Selection(); !ok {
		t.Fatalf("empty highlighted selection must still report ok")
	}

	b.SetPoint(3)
	if got, want := b.RegionText(), "bc"; got != want {
		t.Fatalf("region text: got %q, want %q", got, want)
	}
	if got, ok := b.SelectedText(); !ok || got != "bc" {
		t.Fatalf("selected text: got (%q, %v), want (%q, true)", got, ok, "bc")
	}

	b.SetMarkActive(false)
	if b.Highlighting() || b.Mark() != 0 {
		t.Fatalf("mark off: highlight=%v mark=%d", b.Highlighting(), b.Mark())
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection must be inactive")
	}
}

func TestBuffer_MarkIsClampedAfterShrink(t *testing.T) {
	b := editable("abcdef")
	b.SetMarkActive(true)
	b.ClearHighlight()
	b.SetPoint(0)
	b.DeleteToEnd()
	if got := b.Mark(); got != 0 {
		t.Fatalf("mark: got %d, want 0", got)
	}
	if got := b.Region(); got != (Range{}) {
		t.Fatalf("region: got %v, want empty", got)
	}
}

func TestBuffer_Columns(t *testing.T) {
	b := editable("a世b")
	if got, want := b.PointColumn(), 4; got != want {
		t.Fatalf("point column: got %d, want %d", got, want)
	}
	if got, want := b.Column(2), 3; got != want {
		t.Fatalf("column(2): got %d, want %d", got, want)
	}
	if got, want := b.OffsetAtColumn(2), 1; got != want {
		t.Fatalf("offset at column 2: got %d, want %d", got, want)
	}
	if got, want := b.ByteOffset(2), 4; got != want {
		t.Fatalf("byte offset: got %d, want %d", got, want)
	}
}
