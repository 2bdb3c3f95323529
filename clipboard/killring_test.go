package clipboard

import "testing"

func TestKillRing_LastWriterWins(t *testing.T) {
	k := NewKillRing()
	if !k.Empty() {
		t.Fatalf("new ring must be empty")
	}
	k.Set("one")
	k.Set("two")
	if got, want := k.Text(), "two"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestKillRing_ClearsWhenLastHolderReleases(t *testing.T) {
	k := NewKillRing()
	a := k.Acquire()
	b := k.Acquire()
	if a != b {
		t.Fatalf("acquire must return the shared ring")
	}
	a.Set("killed")

	a.Release()
	if got, want := b.Text(), "killed"; got != want {
		t.Fatalf("text with one holder left: got %q, want %q", got, want)
	}
	if got, want := k.Refs(), 1; got != want {
		t.Fatalf("refs: got %d, want %d", got, want)
	}

	b.Release()
	if !k.Empty() {
		t.Fatalf("ring must be empty after the last release, got %q", k.Text())
	}

	k.Release()
	if got := k.Refs(); got != 0 {
		t.Fatalf("refs must not go negative: got %d", got)
	}
}
