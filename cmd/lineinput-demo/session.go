package main

import (
	"io"
	"log"
	"os"

	"github.com/iw2rmb/lineinput/clipboard"
	"github.com/iw2rmb/lineinput/complete"
	"github.com/iw2rmb/lineinput/editor"
	"github.com/iw2rmb/lineinput/history"
)

// session holds what both front ends share: storage, clipboard, keymap and
// the logger.
type session struct {
	cfg    demoConfig
	store  history.Store
	ring   *clipboard.KillRing
	clip   editor.Clipboard
	keymap editor.KeyMap
	logger *log.Logger
}

func newSession(cfg demoConfig, logOut io.Writer) (*session, error) {
	s := &session{
		cfg:    cfg,
		ring:   clipboard.NewKillRing(),
		keymap: editor.DefaultKeyMap(),
		logger: log.New(logOut, "lineinput ", log.LstdFlags),
	}

	if cfg.HistoryFile != "" {
		s.store = history.NewFileStore(cfg.HistoryFile)
	} else {
		s.store = history.NewMemoryStore()
	}
	if sys := (clipboard.System{}); sys.Available() {
		s.clip = sys
	} else {
		s.logger.Print("system clipboard unavailable, paste disabled")
	}
	if cfg.Keymap != "" {
		km, err := editor.LoadKeyMap(cfg.Keymap)
		if err != nil {
			return nil, err
		}
		s.keymap = km
	}
	return s, nil
}

func (s *session) editorConfig() editor.Config {
	ec := editor.Config{
		Width:         s.cfg.Width,
		Text:          s.cfg.Text,
		FromHistory:   s.cfg.FromHistory,
		HistoryName:   s.cfg.HistoryName,
		HistoryLimit:  s.cfg.HistoryLimit,
		StripPassword: s.cfg.StripPass,
		Password:      s.cfg.Password,
		KillRing:      s.ring,
		Clipboard:     s.clip,
		KeyMap:        s.keymap,
		Style:         editor.DefaultStyle(),
		Logger:        s.logger,
	}
	if s.cfg.Completion {
		dir, err := os.Getwd()
		if err != nil {
			dir = ""
		}
		ec.Completion = editor.CompleteDefault | editor.CompleteCommands | editor.CompleteCD | editor.CompleteShellEscape
		ec.Completer = complete.NewFilenames(dir)
	}
	return ec
}
