package history

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultLimit is the number of entries kept when Options.Limit is unset.
const DefaultLimit = 60

// ErrNoName reports a save or load without a history name.
var ErrNoName = errors.New("history: no name")

type Options struct {
	// Limit caps the number of entries; the oldest are dropped first.
	Limit int
	// StripPassword removes user:password@ credentials before storing.
	StripPassword bool
}

// Position describes where the browsing cursor sits in the list.
type Position uint8

const (
	// AtNewest: not browsing, or at the newest entry. Only older entries remain.
	AtNewest Position = iota
	// AtOldest: at the oldest entry. Only newer entries remain.
	AtOldest
	// InMiddle: entries remain in both directions.
	InMiddle
)

// Controller is the history of one input field.
//
// Entries are ordered oldest to newest and never hold two identical
// strings. The cursor is -1 while not browsing.
type Controller struct {
	name    string
	entries []string
	cursor  int

	dirty       bool
	needsCommit bool

	opt Options
}

// New returns an empty controller. An empty name disables history.
func New(name string, opt Options) *Controller {
	if opt.Limit <= 0 {
		opt.Limit = DefaultLimit
	}
	return &Controller{
		name:   name,
		cursor: -1,
		opt:    opt,
	}
}

func (c *Controller) Name() string { return c.name }

// Enabled reports whether the field has a history name.
func (c *Controller) Enabled() bool { return c.name != "" }

// Entries returns a copy of the list, oldest first.
func (c *Controller) Entries() []string { return slices.Clone(c.entries) }

func (c *Controller) Len() int { return len(c.entries) }

// Newest returns the most recent entry, if any.
func (c *Controller) Newest() (string, bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	return c.entries[len(c.entries)-1], true
}

// Cursor returns the browsing index. ok is false while not browsing.
func (c *Controller) Cursor() (idx int, ok bool) {
	if c.cursor < 0 {
		return 0, false
	}
	return c.cursor, true
}

func (c *Controller) Browsing() bool { return c.cursor >= 0 }

// Position reports which directions remain for browsing.
func (c *Controller) Position() Position {
	switch {
	case c.cursor < 0 || c.cursor >= len(c.entries)-1:
		return AtNewest
	case c.cursor == 0:
		return AtOldest
	default:
		return InMiddle
	}
}

// Dirty reports whether the list changed since it was loaded or saved.
func (c *Controller) Dirty() bool { return c.dirty }

// NeedsCommit reports whether the live line was edited since the last push.
func (c *Controller) NeedsCommit() bool { return c.needsCommit }

// MarkEdited records that the live line changed.
func (c *Controller) MarkEdited() { c.needsCommit = true }

// Commit pushes text as the newest entry and reports whether the list changed.
//
// Blank text is never stored, but it stops browsing so the next Previous
// starts at the newest entry. An identical entry elsewhere in the list moves
// to the top. The cursor is left at the newest entry.
func (c *Controller) Commit(text string) bool {
	c.needsCommit = false
	if !c.Enabled() {
		return false
	}
	if strings.TrimSpace(text) == "" {
		c.cursor = -1
		return false
	}
	if c.opt.StripPassword {
		text = StripPassword(text)
	}

	changed := false
	if top, ok := c.Newest(); !ok || top != text || c.dirty {
		c.entries = appendUnique(c.entries, text)
		if n := len(c.entries) - c.opt.Limit; n > 0 {
			c.entries = slices.Delete(c.entries, 0, n)
		}
		c.dirty = true
		changed = true
	}
	c.cursor = len(c.entries) - 1
	return changed
}

// Previous moves to the next older entry and returns its text.
//
// A pending edit of live is committed first. ok is false when there is
// nothing older, and the live line must be left alone.
func (c *Controller) Previous(live string) (text string, ok bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	if c.needsCommit {
		c.Commit(live)
	}

	idx := len(c.entries) - 1
	if c.cursor >= 0 {
		if c.cursor == 0 {
			return "", false
		}
		idx = min(c.cursor, len(c.entries)) - 1
	}
	c.cursor = idx
	c.needsCommit = false
	return c.entries[idx], true
}

// Next moves to the next newer entry and returns its text.
//
// A pending edit of live is committed and an empty line returned instead.
// Moving past the newest entry returns an empty line. Both stop browsing,
// so the next Previous starts again at the newest entry.
func (c *Controller) Next(live string) (text string, ok bool) {
	if c.needsCommit {
		c.Commit(live)
		c.cursor = -1
		return "", true
	}
	if len(c.entries) == 0 {
		return "", false
	}
	if c.cursor < 0 || c.cursor >= len(c.entries)-1 {
		c.cursor = -1
		return "", true
	}
	c.cursor++
	return c.entries[c.cursor], true
}

// Load adopts entries, oldest first, and stops browsing.
// Blank entries and repeats are dropped; the list is cut to the limit.
func (c *Controller) Load(entries []string) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		out = appendUnique(out, e)
	}
	c.entries = out
	if n := len(c.entries) - c.opt.Limit; n > 0 {
		c.entries = slices.Delete(c.entries, 0, n)
	}
	c.cursor = -1
	c.dirty = false
}

// SeekNewest positions the cursor at the newest entry, if any.
func (c *Controller) SeekNewest() {
	c.cursor = len(c.entries) - 1
}

// Replace adopts a list edited outside the controller, such as by a picker.
// The list is marked dirty when it differs.
func (c *Controller) Replace(entries []string) {
	if slices.Equal(entries, c.entries) {
		return
	}
	c.entries = slices.Clone(entries)
	c.cursor = -1
	c.dirty = true
}

// Save commits live and writes the list to store when it is dirty.
func (c *Controller) Save(store Store, live string) error {
	if !c.Enabled() {
		return nil
	}
	c.Commit(live)
	if !c.dirty {
		return nil
	}
	if err := store.Save(c.name, c.Entries()); err != nil {
		return fmt.Errorf("history: save %q: %w", c.name, err)
	}
	c.dirty = false
	return nil
}

// LoadFrom reads the named list from store and adopts it.
func (c *Controller) LoadFrom(store Store) error {
	if !c.Enabled() {
		return ErrNoName
	}
	entries, err := store.Load(c.name)
	if err != nil {
		return fmt.Errorf("history: load %q: %w", c.name, err)
	}
	c.Load(entries)
	return nil
}

func appendUnique(entries []string, text string) []string {
	entries = slices.DeleteFunc(entries, func(e string) bool { return e == text })
	return append(entries, text)
}
