package editor

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineinput/buffer"
	"github.com/iw2rmb/lineinput/clipboard"
	"github.com/iw2rmb/lineinput/history"
)

// Model is a Bubble Tea component for one editable input line.
//
// The text, history and kill ring live behind pointers, so copies of a
// Model share them. Use the Model returned by each method.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	hist *history.Controller
	kill *clipboard.KillRing

	focused  bool
	disabled bool

	firstColumn int

	quoteNext  bool
	dragging   bool
	pressPoint int

	completions []string

	hold    int
	frozen  string
	redraws int

	lastVersion uint64
	destroyed   bool
}

// New returns a fresh input line: the point is at the end of the text and
// the first typed character replaces it.
func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	text := cfg.Text
	if cfg.FromHistory {
		text = ""
	}
	kill := cfg.KillRing
	if kill == nil {
		kill = clipboard.NewKillRing()
	}

	m := Model{
		cfg: cfg,
		buf: buffer.New(text, buffer.Options{Width: cfg.Width, MaxSize: cfg.MaxSize}),
		hist: history.New(cfg.HistoryName, history.Options{
			Limit:         cfg.HistoryLimit,
			StripPassword: cfg.StripPassword,
		}),
		kill:     kill.Acquire(),
		focused:  true,
		disabled: cfg.Disabled,
	}
	m.lastVersion = m.buf.Version()
	m.updateViewport()
	return m
}

// Destroy releases the field's hold on the shared kill ring.
// Destroying a nil field is a programming error and exits the process.
func (m *Model) Destroy() {
	if m == nil {
		log.Fatal("editor: destroy of nil input line")
	}
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.freeCompletions()
	m.kill.Release()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Point() int { return m.buf.Point() }

func (m Model) History() *history.Controller { return m.hist }

func (m Model) KillRing() *clipboard.KillRing { return m.kill }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Width() int { return m.cfg.Width }

// FirstColumn returns the leftmost text column shown.
func (m Model) FirstColumn() int { return m.firstColumn }

// Completions returns the candidates of the last Complete command, if they
// are still valid.
func (m Model) Completions() []string { return append([]string(nil), m.completions...) }

// Redraws counts redraws since the field was created.
func (m Model) Redraws() int { return m.redraws }

func (m Model) Focused() bool { return m.focused }

func (m Model) Disabled() bool { return m.disabled }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.redraw()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.dragging = false
		m.redraw()
	}
	return m
}

func (m Model) SetDisabled(on bool) Model {
	if m.disabled != on {
		m.disabled = on
		m.redraw()
	}
	return m
}

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.updateViewport()
	m.redraw()
	return m
}

func (m Model) SetPosition(row, col int) Model {
	m.cfg.Row, m.cfg.Col = row, col
	m.redraw()
	return m
}

func (m Model) SetKeyMap(km KeyMap) Model {
	m.cfg.KeyMap = normalizeKeyMap(km)
	return m
}

// AssignText replaces the text and puts the point at its end.
func (m Model) AssignText(text string) Model {
	m.assign(text)
	return m
}

// Insert types text at the point as if each byte was keyed, then a space
// when extraSpace is set. The field redraws once.
func (m Model) Insert(text string, extraSpace bool) Model {
	m = m.DisableUpdate()
	before := m.buf.TextVersion()
	for i := 0; i < len(text); i++ {
		m.buf.InsertByte(text[i])
	}
	if extraSpace {
		m.buf.InsertByte(' ')
	}
	m.freeCompletions()
	m.finish(before, true)
	return m.EnableUpdate()
}

// Clean commits the line to history and empties it. Password fields are
// emptied without touching history.
func (m Model) Clean() Model {
	before := m.buf.TextVersion()
	if !m.cfg.Password {
		m.hist.Commit(m.buf.Text())
	}
	m.buf.ClearAll()
	m.buf.SetFresh(false)
	m.quoteNext = false
	m.freeCompletions()
	m.finish(before, false)
	m.markEdited()
	return m
}

// SetPoint moves the point, clamped to the text.
func (m Model) SetPoint(pos int) Model {
	if m.buf.SetPoint(pos) {
		m.freeCompletions()
	}
	m.finish(m.buf.TextVersion(), false)
	return m
}

// DisableUpdate holds redraws until the matching EnableUpdate. Holds nest.
func (m Model) DisableUpdate() Model {
	if m.hold == 0 {
		m.frozen = m.render()
	}
	m.hold++
	return m
}

// EnableUpdate releases one DisableUpdate hold. Releasing the last one
// redraws the field.
func (m Model) EnableUpdate() Model {
	if m.hold == 0 {
		return m
	}
	m.hold--
	if m.hold == 0 {
		m.frozen = ""
		m.redraw()
	}
	return m
}

// Execute runs one command and reports whether the field handled it.
func (m Model) Execute(cmd Command) (Model, tea.Cmd, bool) {
	if m.disabled {
		return m, nil, false
	}
	out, handled := m.execute(cmd)
	return m, out, handled
}

// HandleKey resolves k through the keymap and runs it. Unbound printable
// keys insert their text. It reports whether the field used the key.
func (m Model) HandleKey(k Key) (Model, tea.Cmd, bool) {
	if m.disabled || !m.focused {
		return m, nil, false
	}
	out, handled := m.handleKey(k)
	return m, out, handled
}

func (m *Model) assign(text string) {
	before := m.buf.TextVersion()
	if err := m.buf.Assign(text); err != nil {
		m.cfg.Logger.Printf("editor: assign dropped: %v", err)
	}
	m.freeCompletions()
	m.finish(before, true)
}

func (m *Model) freeCompletions() {
	if m.completions == nil {
		return
	}
	m.completions = nil
	if m.cfg.Completer != nil {
		m.cfg.Completer.Invalidate()
	}
}

// finish brings derived state up to date after a change: history edit
// tracking, the viewport, change events and the redraw.
func (m *Model) finish(textBefore uint64, edited bool) {
	textChanged := m.buf.TextVersion() != textBefore
	if textChanged && edited {
		m.markEdited()
	}
	m.updateViewport()
	if v := m.buf.Version(); v != m.lastVersion {
		m.lastVersion = v
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
		}
	}
	m.redraw()
}

// markEdited flags the line for commit on the next history move. Password
// text is never committed.
func (m *Model) markEdited() {
	if !m.cfg.Password {
		m.hist.MarkEdited()
	}
}

func (m *Model) redraw() {
	if m.hold > 0 {
		return
	}
	m.redraws++
	if m.cfg.Screen != nil {
		m.Draw(m.cfg.Screen)
	}
}
