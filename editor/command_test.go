package editor

import "testing"

func TestCommand_NamesRoundTrip(t *testing.T) {
	for _, c := range Commands() {
		got, err := ParseCommand(c.String())
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("ParseCommand(%q): got %v, want %v", c.String(), got, c)
		}
	}
}

func TestCommand_Aliases(t *testing.T) {
	cases := map[string]Command{
		"ClipboardCopy":  CmdStore,
		"clipboardcut":   CmdCut,
		"ClipboardPaste": CmdPaste,
		" wordleft ":     CmdWordLeft,
	}
	for name, want := range cases {
		got, err := ParseCommand(name)
		if err != nil || got != want {
			t.Fatalf("ParseCommand(%q): got %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseCommand("Undo"); err == nil {
		t.Fatalf("ParseCommand(Undo): expected an error")
	}
}

func TestCommand_ExtendsSelection(t *testing.T) {
	for _, c := range Commands() {
		want := c >= CmdMarkLeft && c <= CmdMarkToEnd
		if got := c.ExtendsSelection(); got != want {
			t.Fatalf("%v.ExtendsSelection(): got %v, want %v", c, got, want)
		}
	}
}
