package main

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lineinput/editor"
	"github.com/iw2rmb/lineinput/history"
	"github.com/iw2rmb/lineinput/tcellscreen"
)

const (
	fieldRow = 0
	fieldCol = 2
)

// tcellHost runs the input line directly on a tcell screen.
type tcellHost struct {
	s        *session
	scr      tcell.Screen
	out      *tcellscreen.Screen
	in       tcellscreen.Input
	input    editor.Model
	accepted []string
}

func runTcell(ctx context.Context, s *session) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.EnablePaste()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := newTcellHost(s, scr)
	if s.cfg.Keymap != "" {
		err := editor.WatchKeyMap(ctx, s.cfg.Keymap, func(km editor.KeyMap, err error) {
			_ = scr.PostEvent(tcell.NewEventInterrupt(editor.KeyMapChangedMsg{KeyMap: km, Err: err}))
		})
		if err != nil {
			s.logger.Printf("keymap watch: %v", err)
		}
	}
	return h.loop()
}

func newTcellHost(s *session, scr tcell.Screen) *tcellHost {
	h := &tcellHost{s: s, scr: scr, out: tcellscreen.New(scr)}

	ec := s.editorConfig()
	ec.Row, ec.Col = fieldRow, fieldCol
	ec.Screen = h.out
	ec.HistoryPicker = tcellscreen.NewPicker(scr, fieldRow+1, fieldCol, s.cfg.Width)
	h.input = editor.New(ec)

	var err error
	if h.input, err = h.input.LoadHistory(s.store); err != nil && !errors.Is(err, history.ErrNoName) {
		s.logger.Printf("load history: %v", err)
	}
	return h
}

func (h *tcellHost) loop() error {
	h.redraw()
	for {
		h.scr.Show()
		ev := h.scr.PollEvent()
		if !h.handle(ev) {
			h.input.Destroy()
			return nil
		}
	}
}

// handle processes one event and reports whether the loop continues.
func (h *tcellHost) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case nil:
		return false
	case *tcell.EventResize:
		h.scr.Sync()
		h.redraw()
		return true
	case *tcell.EventInterrupt:
		if msg, ok := e.Data().(editor.KeyMapChangedMsg); ok {
			h.input, _ = h.input.Update(msg)
		}
		return true
	case *tcell.EventKey:
		if !h.in.Pasting() {
			switch e.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return false
			case tcell.KeyEnter:
				h.accept()
				return true
			}
		}
	}
	h.input, _, _ = h.in.Apply(h.input, ev)
	h.redraw()
	return true
}

func (h *tcellHost) accept() {
	line := h.input.Text()
	if h.s.cfg.Password {
		h.input = h.input.AssignText("")
	} else {
		h.accepted = append(h.accepted, line)
		if n := len(h.accepted) - maxAccepted; n > 0 {
			h.accepted = h.accepted[n:]
		}
		h.input = h.input.Clean()
	}
	var err error
	if h.input, err = h.input.SaveHistory(h.s.store, false); err != nil {
		h.s.logger.Printf("save history: %v", err)
	}
	h.redraw()
}

func (h *tcellHost) redraw() {
	h.scr.Clear()
	h.scr.SetContent(0, fieldRow, '>', nil, tcell.StyleDefault.Bold(true))
	for i, line := range h.accepted {
		row := fieldRow + 2 + i
		for x, r := range []rune(line) {
			h.scr.SetContent(fieldCol+x, row, r, nil, tcell.StyleDefault.Dim(true))
		}
	}
	h.input.Draw(h.out)
}
