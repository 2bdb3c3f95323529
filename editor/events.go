package editor

import "github.com/iw2rmb/lineinput/buffer"

type ChangeEvent struct {
	Version   uint64
	Point     int
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the text mutation behind the event. TextChanged is false for
	// moves and selection changes.
	Change      buffer.Change
	TextChanged bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Point:       b.Point(),
		Text:        b.Text(),
		TextChanged: textChanged,
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if textChanged {
		ev.Change, _ = b.LastChange()
	}
	return ev
}
