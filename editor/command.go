package editor

import (
	"fmt"
	"strings"
)

// Command is one editing action of the input line.
type Command uint8

const (
	CmdNone Command = iota

	CmdLeft
	CmdRight
	CmdWordLeft
	CmdWordRight
	CmdHome
	CmdEnd

	CmdMarkLeft
	CmdMarkRight
	CmdMarkToWordBegin
	CmdMarkToWordEnd
	CmdMarkToHome
	CmdMarkToEnd

	CmdBackspace
	CmdDelete
	CmdDeleteToWordEnd
	CmdDeleteToWordBegin
	CmdMark
	CmdRemove
	CmdDeleteToEnd
	CmdClear

	CmdStore
	CmdCut
	CmdYank
	CmdPaste

	CmdHistoryPrev
	CmdHistoryNext
	CmdHistory
	CmdComplete
	CmdEnterCtrlSeq

	commandCount
)

var commandNames = [...]string{
	CmdNone:              "None",
	CmdLeft:              "Left",
	CmdRight:             "Right",
	CmdWordLeft:          "WordLeft",
	CmdWordRight:         "WordRight",
	CmdHome:              "Home",
	CmdEnd:               "End",
	CmdMarkLeft:          "MarkLeft",
	CmdMarkRight:         "MarkRight",
	CmdMarkToWordBegin:   "MarkToWordBegin",
	CmdMarkToWordEnd:     "MarkToWordEnd",
	CmdMarkToHome:        "MarkToHome",
	CmdMarkToEnd:         "MarkToEnd",
	CmdBackspace:         "Backspace",
	CmdDelete:            "Delete",
	CmdDeleteToWordEnd:   "DeleteToWordEnd",
	CmdDeleteToWordBegin: "DeleteToWordBegin",
	CmdMark:              "Mark",
	CmdRemove:            "Remove",
	CmdDeleteToEnd:       "DeleteToEnd",
	CmdClear:             "Clear",
	CmdStore:             "Store",
	CmdCut:               "Cut",
	CmdYank:              "Yank",
	CmdPaste:             "Paste",
	CmdHistoryPrev:       "HistoryPrev",
	CmdHistoryNext:       "HistoryNext",
	CmdHistory:           "History",
	CmdComplete:          "Complete",
	CmdEnterCtrlSeq:      "EnterCtrlSeq",
}

var commandAliases = map[string]Command{
	"clipboardcopy":  CmdStore,
	"clipboardcut":   CmdCut,
	"clipboardpaste": CmdPaste,
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand resolves a command name, ignoring case.
func ParseCommand(name string) (Command, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c := CmdNone + 1; c < commandCount; c++ {
		if strings.ToLower(commandNames[c]) == key {
			return c, nil
		}
	}
	if c, ok := commandAliases[key]; ok {
		return c, nil
	}
	return CmdNone, fmt.Errorf("editor: unknown command %q", name)
}

// Commands lists every command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, commandCount-1)
	for c := CmdNone + 1; c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

// ExtendsSelection reports whether c grows the highlighted span.
func (c Command) ExtendsSelection() bool {
	switch c {
	case CmdMarkLeft, CmdMarkRight, CmdMarkToWordBegin, CmdMarkToWordEnd, CmdMarkToHome, CmdMarkToEnd:
		return true
	default:
		return false
	}
}

// keepsHighlight reports whether highlighting survives c.
func (c Command) keepsHighlight() bool {
	return c == CmdMark || c.ExtendsSelection()
}

func (c Command) recallsHistory() bool {
	return c == CmdHistoryPrev || c == CmdHistoryNext
}
