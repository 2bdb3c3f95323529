package complete

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/lineinput/editor"
)

// shellSpecial lists the characters escaped under CompleteShellEscape.
const shellSpecial = " \t\"'\\$`&|;<>()*?[]{}!#"

// Filenames completes the word before the point.
//
// Directory listings are cached until Invalidate, so repeated completion
// presses do not rescan the disk.
type Filenames struct {
	// Dir resolves relative paths. Empty means the working directory.
	Dir string
	// Home expands a leading "~". Empty means the user's home directory.
	Home string
	// Env looks up variables and PATH. Nil means os.Environ.
	Env func() []string
	// HostsFile lists hosts for "@" words. Empty means $HOSTFILE or /etc/hosts.
	HostsFile string
	// PasswdFile lists users for "~" words. Empty means /etc/passwd.
	PasswdFile string

	listings map[string][]entry
	hosts    []string
	users    []string
}

type entry struct {
	name string
	dir  bool
	exec bool
}

var _ editor.Completer = (*Filenames)(nil)

func NewFilenames(dir string) *Filenames {
	return &Filenames{Dir: dir}
}

// Invalidate drops cached directory listings and host and user tables.
func (f *Filenames) Invalidate() {
	f.listings = nil
	f.hosts = nil
	f.users = nil
}

// Complete replaces the word before the point with its longest unambiguous
// completion. A single file match is final; a single directory match gets a
// trailing slash and stays open for the next level.
func (f *Filenames) Complete(req editor.CompletionRequest) (editor.CompletionResult, bool) {
	runes := []rune(req.Text)
	point := min(max(req.Point, 0), len(runes))
	escape := req.Flags&editor.CompleteShellEscape != 0

	start := wordStart(runes, point, escape)
	word := string(runes[start:point])
	if escape {
		word = unescape(word)
	}

	var m matches
	switch {
	case strings.HasPrefix(word, "$") && req.Flags&editor.CompleteVariables != 0:
		m = f.variables(word[1:])
	case strings.HasPrefix(word, "@") && req.Flags&editor.CompleteHostnames != 0:
		m = f.hostnames(word[1:])
	case strings.HasPrefix(word, "~") && !strings.ContainsRune(word, '/') &&
		req.Flags&editor.CompleteUsernames != 0:
		m = f.usernames(word[1:])
	case req.Flags&editor.CompleteCommands != 0 && isCommandPosition(runes, start) && !strings.ContainsRune(word, '/'):
		m = f.commands(word)
	case req.Flags&(editor.CompleteFilenames|editor.CompleteCD) != 0:
		m = f.paths(word, dirsOnly(runes, req.Flags))
	default:
		return editor.CompletionResult{}, false
	}
	if len(m.names) == 0 {
		return editor.CompletionResult{}, false
	}

	res := editor.CompletionResult{Start: start, End: point, Candidates: m.names}
	var text string
	if len(m.names) == 1 {
		text = m.names[0]
		res.Unique = !strings.HasSuffix(text, "/")
	} else {
		text = commonPrefix(m.names)
	}
	text = m.prefix + text
	if escape {
		text = escapeShell(text)
	}
	res.Replacement = m.sigil + text
	return res, true
}

// matches holds the names found for a word. prefix is the part of the word
// kept before each name, such as a directory. sigil leads the word and is
// never escaped.
type matches struct {
	sigil  string
	prefix string
	names  []string
}

func (f *Filenames) paths(word string, dirsOnly bool) matches {
	dirPart, base := "", word
	if i := strings.LastIndex(word, "/"); i >= 0 {
		dirPart, base = word[:i+1], word[i+1:]
	} else if strings.HasPrefix(word, "~") {
		return f.home(word)
	}

	var out []string
	for _, e := range f.list(f.resolve(dirPart)) {
		if !strings.HasPrefix(e.name, base) || (dirsOnly && !e.dir) {
			continue
		}
		if strings.HasPrefix(e.name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		name := e.name
		if e.dir {
			name += "/"
		}
		out = append(out, name)
	}
	return matches{prefix: dirPart, names: out}
}

// home completes a bare "~" to the home directory.
func (f *Filenames) home(word string) matches {
	if word != "~" {
		return matches{}
	}
	return matches{names: []string{"~/"}}
}

func (f *Filenames) commands(word string) matches {
	seen := map[string]bool{}
	var out []string
	for _, dir := range filepath.SplitList(f.getenv("PATH")) {
		if dir == "" {
			continue
		}
		for _, e := range f.list(dir) {
			if e.dir || !e.exec || seen[e.name] || !strings.HasPrefix(e.name, word) {
				continue
			}
			seen[e.name] = true
			out = append(out, e.name)
		}
	}
	sort.Strings(out)
	return matches{names: out}
}

func (f *Filenames) variables(prefix string) matches {
	var out []string
	for _, kv := range f.environ() {
		name, _, ok := strings.Cut(kv, "=")
		if ok && name != "" && strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return matches{sigil: "$", names: slices.Compact(out)}
}

// resolve turns the directory part of a word into a path to list.
func (f *Filenames) resolve(dirPart string) string {
	switch {
	case dirPart == "":
		dirPart = "."
	case dirPart == "~/" || strings.HasPrefix(dirPart, "~/"):
		dirPart = filepath.Join(f.homeDir(), dirPart[2:])
	}
	if !filepath.IsAbs(dirPart) && f.Dir != "" {
		dirPart = filepath.Join(f.Dir, dirPart)
	}
	return filepath.Clean(dirPart)
}

// list returns the sorted entries of dir. Unreadable directories list empty.
func (f *Filenames) list(dir string) []entry {
	if cached, ok := f.listings[dir]; ok {
		return cached
	}
	des, err := os.ReadDir(dir)
	if err != nil {
		des = nil
	}
	out := make([]entry, 0, len(des))
	for _, de := range des {
		e := entry{name: de.Name(), dir: de.IsDir()}
		if de.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, de.Name())); err == nil {
				e.dir = fi.IsDir()
			}
		}
		if !e.dir {
			if fi, err := de.Info(); err == nil {
				e.exec = fi.Mode().Perm()&0o111 != 0
			}
		}
		out = append(out, e)
	}
	if f.listings == nil {
		f.listings = make(map[string][]entry)
	}
	f.listings[dir] = out
	return out
}

func (f *Filenames) homeDir() string {
	if f.Home != "" {
		return f.Home
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "/"
}

func (f *Filenames) environ() []string {
	if f.Env != nil {
		return f.Env()
	}
	return os.Environ()
}

func (f *Filenames) getenv(name string) string {
	for _, kv := range f.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k == name {
			return v
		}
	}
	return ""
}

// wordStart finds where the word ending at point begins. Escaped blanks
// belong to the word when escaping is on.
func wordStart(runes []rune, point int, escape bool) int {
	i := point
	for i > 0 {
		r := runes[i-1]
		if r == ' ' || r == '\t' {
			if escape && i >= 2 && runes[i-2] == '\\' {
				i -= 2
				continue
			}
			break
		}
		i--
	}
	return i
}

// dirsOnly reports whether paths are limited to directories: CD is the only
// path flag, or CD is set and the line runs cd.
func dirsOnly(runes []rune, flags editor.CompletionFlags) bool {
	if flags&editor.CompleteCD == 0 {
		return false
	}
	if flags&editor.CompleteFilenames == 0 {
		return true
	}
	fields := strings.Fields(string(runes))
	return len(fields) > 0 && fields[0] == "cd"
}

// isCommandPosition reports whether the word at start is the first on the
// line or follows a command separator.
func isCommandPosition(runes []rune, start int) bool {
	for i := start - 1; i >= 0; i-- {
		switch runes[i] {
		case ' ', '\t':
			continue
		case '|', ';', '&', '(':
			return true
		default:
			return false
		}
	}
	return true
}

func escapeShell(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if strings.ContainsRune(shellSpecial, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func unescape(s string) string {
	var sb strings.Builder
	esc := false
	for _, r := range s {
		if r == '\\' && !esc {
			esc = true
			continue
		}
		esc = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// commonPrefix returns the longest prefix of whole characters shared by all
// names.
func commonPrefix(names []string) string {
	p := names[0]
	for _, n := range names[1:] {
		i := 0
		for i < len(p) && i < len(n) && p[i] == n[i] {
			i++
		}
		p = p[:i]
	}
	for len(p) > 0 && !utf8.ValidString(p) {
		p = p[:len(p)-1]
	}
	return p
}
