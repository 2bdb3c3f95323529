package editor

import (
	"io"
	"log"

	"github.com/iw2rmb/lineinput/clipboard"
)

// Config configures an input line Model.
type Config struct {
	// Position of the field for Draw. View ignores it.
	Row, Col int
	// Width of the field in cells, including the history button.
	Width int

	// Initial text. Ignored when FromHistory is set.
	Text string
	// FromHistory fills the field with the newest history entry on load.
	FromHistory bool

	// HistoryName keys the field's history. Empty disables history.
	HistoryName  string
	HistoryLimit int
	// StripPassword removes user:password@ credentials from stored entries.
	StripPassword bool
	// HistoryPicker shows the history list for the History command. When nil
	// the command asks the host through HistoryRequestMsg.
	HistoryPicker HistoryPicker

	// Password masks the text and keeps it out of history.
	Password bool
	Disabled bool

	Completion CompletionFlags
	Completer  Completer

	// KillRing is shared between fields. Nil gives the field a private one.
	KillRing  *clipboard.KillRing
	Clipboard Clipboard
	// CopyFallback supplies text to copy when the region is empty, such as a
	// selection elsewhere in the application.
	CopyFallback func() (string, bool)

	KeyMap   KeyMap
	Style    Style
	Measurer Measurer
	// Screen, when set, is redrawn through Draw after every command.
	Screen Screen

	// MaxSize bounds the text in bytes. 0 means unbounded.
	MaxSize int

	Logger   *log.Logger
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Measurer == nil {
		cfg.Measurer = DefaultMeasurer()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	return cfg
}
