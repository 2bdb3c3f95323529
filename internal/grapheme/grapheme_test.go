package grapheme

import "testing"

func TestClassOf(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{' ', ClassSpace},
		{'\t', ClassSpace},
		{'.', ClassPunct},
		{'/', ClassPunct},
		{'+', ClassPunct},
		{'a', ClassWord},
		{'_', ClassPunct},
		{'7', ClassWord},
		{'\u00e9', ClassWord},
	}
	for _, tc := range cases {
		if got := ClassOf(tc.r); got != tc.want {
			t.Fatalf("ClassOf(%q): got %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestBoundaries_CombiningMarksMoveAsOneUnit(t *testing.T) {
	runes := []rune("ae\u0301\u0302b")

	if got, want := NextBoundary(runes, 1), 4; got != want {
		t.Fatalf("next from base: got %d, want %d", got, want)
	}
	if got, want := PrevBoundary(runes, 4), 1; got != want {
		t.Fatalf("prev to base: got %d, want %d", got, want)
	}
	if got, want := NextBoundary(runes, 5), 5; got != want {
		t.Fatalf("next at end: got %d, want %d", got, want)
	}
	if got, want := PrevBoundary(runes, 0), 0; got != want {
		t.Fatalf("prev at start: got %d, want %d", got, want)
	}
	if got, want := PrevBoundary(runes, 99), 4; got != want {
		t.Fatalf("prev past end clamps: got %d, want %d", got, want)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"e\u0301", 1},
		{"世界", 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestSliceColumns(t *testing.T) {
	cases := []struct {
		text         string
		start, width int
		want         string
	}{
		{"hello world", 0, 5, "hello"},
		{"hello world", 6, 10, "world"},
		{"hello", 10, 3, ""},
		{"a世b", 2, 2, " b"},
		{"a世b", 0, 2, "a "},
		{"a世b", 1, 2, "世"},
	}
	for _, tc := range cases {
		if got := SliceColumns(tc.text, tc.start, tc.width); got != tc.want {
			t.Fatalf("SliceColumns(%q, %d, %d): got %q, want %q", tc.text, tc.start, tc.width, got, tc.want)
		}
	}
}

func TestColumnToOffset(t *testing.T) {
	text := "a世b"
	cases := []struct {
		col  int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{40, 3},
	}
	for _, tc := range cases {
		if got := ColumnToOffset(text, tc.col); got != tc.want {
			t.Fatalf("ColumnToOffset(%d): got %d, want %d", tc.col, got, tc.want)
		}
	}
}

func TestControlCharactersTakeOneCell(t *testing.T) {
	if got := Width("a\x01b"); got != 3 {
		t.Fatalf("Width with control char: got %d, want %d", got, 3)
	}
	if got := Printable("a\x01b"); got != "a?b" {
		t.Fatalf("Printable: got %q, want %q", got, "a?b")
	}
	if got := Printable("plain"); got != "plain" {
		t.Fatalf("Printable without controls: got %q, want %q", got, "plain")
	}
}
