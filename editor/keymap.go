package editor

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds keys to input line commands.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding

	MarkLeft, MarkRight            key.Binding
	MarkToWordBegin, MarkToWordEnd key.Binding
	MarkToHome, MarkToEnd          key.Binding

	Backspace, Delete                  key.Binding
	DeleteToWordEnd, DeleteToWordBegin key.Binding
	Mark, Remove                       key.Binding
	DeleteToEnd, Clear                 key.Binding

	Store, Cut, Yank, Paste key.Binding

	HistoryPrev, HistoryNext, History key.Binding

	Complete     key.Binding
	EnterCtrlSeq key.Binding
}

// KeyClass tells a caller how a key relates to the map.
type KeyClass uint8

const (
	KeyNotBound KeyClass = iota
	KeyBound
	KeyCompletion
)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		WordLeft:  key.NewBinding(key.WithKeys("ctrl+left", "alt+b"), key.WithHelp("ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("ctrl+right", "alt+f"), key.WithHelp("ctrl+→", "word right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		MarkLeft:        key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		MarkRight:       key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		MarkToWordBegin: key.NewBinding(key.WithKeys("ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		MarkToWordEnd:   key.NewBinding(key.WithKeys("ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),
		MarkToHome:      key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		MarkToEnd:       key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),

		Backspace:         key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:            key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		DeleteToWordEnd:   key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "kill word")),
		DeleteToWordBegin: key.NewBinding(key.WithKeys("alt+backspace"), key.WithHelp("alt+backspace", "kill word back")),
		Mark:              key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "set mark")),
		Remove:            key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete region")),
		DeleteToEnd:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill line")),
		Clear:             key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),

		Store: key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "copy region")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut region")),
		Yank:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "yank")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		HistoryPrev: key.NewBinding(key.WithKeys("alt+p", "ctrl+down"), key.WithHelp("alt+p", "previous entry")),
		HistoryNext: key.NewBinding(key.WithKeys("alt+n", "ctrl+up"), key.WithHelp("alt+n", "next entry")),
		History:     key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "show history")),

		Complete:     key.NewBinding(key.WithKeys("alt+tab"), key.WithHelp("alt+tab", "complete")),
		EnterCtrlSeq: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quote next key")),
	}
}

// binding returns the binding slot of c.
func (km *KeyMap) binding(c Command) *key.Binding {
	switch c {
	case CmdLeft:
		return &km.Left
	case CmdRight:
		return &km.Right
	case CmdWordLeft:
		return &km.WordLeft
	case CmdWordRight:
		return &km.WordRight
	case CmdHome:
		return &km.Home
	case CmdEnd:
		return &km.End
	case CmdMarkLeft:
		return &km.MarkLeft
	case CmdMarkRight:
		return &km.MarkRight
	case CmdMarkToWordBegin:
		return &km.MarkToWordBegin
	case CmdMarkToWordEnd:
		return &km.MarkToWordEnd
	case CmdMarkToHome:
		return &km.MarkToHome
	case CmdMarkToEnd:
		return &km.MarkToEnd
	case CmdBackspace:
		return &km.Backspace
	case CmdDelete:
		return &km.Delete
	case CmdDeleteToWordEnd:
		return &km.DeleteToWordEnd
	case CmdDeleteToWordBegin:
		return &km.DeleteToWordBegin
	case CmdMark:
		return &km.Mark
	case CmdRemove:
		return &km.Remove
	case CmdDeleteToEnd:
		return &km.DeleteToEnd
	case CmdClear:
		return &km.Clear
	case CmdStore:
		return &km.Store
	case CmdCut:
		return &km.Cut
	case CmdYank:
		return &km.Yank
	case CmdPaste:
		return &km.Paste
	case CmdHistoryPrev:
		return &km.HistoryPrev
	case CmdHistoryNext:
		return &km.HistoryNext
	case CmdHistory:
		return &km.History
	case CmdComplete:
		return &km.Complete
	case CmdEnterCtrlSeq:
		return &km.EnterCtrlSeq
	default:
		return nil
	}
}

// Binding returns the binding of c.
func (km KeyMap) Binding(c Command) (key.Binding, bool) {
	b := km.binding(c)
	if b == nil {
		return key.Binding{}, false
	}
	return *b, true
}

// SetKeys rebinds c. No keys unbinds it.
func (km *KeyMap) SetKeys(c Command, keys ...string) error {
	b := km.binding(c)
	if b == nil {
		return fmt.Errorf("editor: cannot bind %v", c)
	}
	help := b.Help()
	if len(keys) == 0 {
		*b = key.NewBinding(key.WithDisabled())
		return nil
	}
	desc := help.Desc
	if desc == "" {
		desc = c.String()
	}
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	return nil
}

// Resolve returns the command bound to k.
func (km KeyMap) Resolve(k Key) (Command, bool) {
	for _, c := range Commands() {
		if b := km.binding(c); b != nil && key.Matches(k, *b) {
			return c, true
		}
	}
	return CmdNone, false
}

// Classify reports whether k is bound, and whether it is the completion key.
func (km KeyMap) Classify(k Key) KeyClass {
	c, ok := km.Resolve(k)
	switch {
	case !ok:
		return KeyNotBound
	case c == CmdComplete:
		return KeyCompletion
	default:
		return KeyBound
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.WordLeft, km.WordRight, km.DeleteToEnd, km.Yank, km.HistoryPrev, km.Complete}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	var group []key.Binding
	var out [][]key.Binding
	for _, c := range Commands() {
		group = append(group, *km.binding(c))
		if len(group) == 6 {
			out = append(out, group)
			group = nil
		}
	}
	if len(group) > 0 {
		out = append(out, group)
	}
	return out
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.ValueOf(km).IsZero() {
		return DefaultKeyMap()
	}
	return km
}

// keyMapFile is the TOML layout of a keymap file:
//
//	[input]
//	Home = ["home", "ctrl+a"]
//	Yank = []
type keyMapFile struct {
	Input map[string][]string `toml:"input"`
}

// DecodeKeyMap reads a TOML keymap. Commands it does not name keep their
// default keys.
func DecodeKeyMap(r io.Reader) (KeyMap, error) {
	var f keyMapFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return KeyMap{}, fmt.Errorf("editor: parse keymap: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return KeyMap{}, fmt.Errorf("editor: unknown keymap keys: %s", strings.Join(keys, ", "))
	}

	km := DefaultKeyMap()
	names := make([]string, 0, len(f.Input))
	for name := range f.Input {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, err := ParseCommand(name)
		if err != nil {
			return KeyMap{}, err
		}
		if err := km.SetKeys(c, f.Input[name]...); err != nil {
			return KeyMap{}, err
		}
	}
	return km, nil
}

// LoadKeyMap reads a TOML keymap file.
func LoadKeyMap(path string) (KeyMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return KeyMap{}, fmt.Errorf("editor: load keymap: %w", err)
	}
	defer f.Close()
	return DecodeKeyMap(f)
}
