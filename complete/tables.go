package complete

import (
	"bufio"
	"bytes"
	"os"
	"slices"
	"sort"
	"strings"
)

const (
	defaultHostsFile  = "/etc/hosts"
	defaultPasswdFile = "/etc/passwd"
)

// hostnames completes "@name" against the hosts file. $HOSTFILE overrides
// the default location.
func (f *Filenames) hostnames(prefix string) matches {
	if f.hosts == nil {
		path := f.HostsFile
		if path == "" {
			path = f.getenv("HOSTFILE")
		}
		if path == "" {
			path = defaultHostsFile
		}
		f.hosts = readHosts(path)
	}
	return matches{sigil: "@", names: filterPrefix(f.hosts, prefix)}
}

// usernames completes "~name" against the password file. Matches end in a
// slash, ready for the path below the home directory.
func (f *Filenames) usernames(prefix string) matches {
	if f.users == nil {
		path := f.PasswdFile
		if path == "" {
			path = defaultPasswdFile
		}
		f.users = readUsers(path)
	}
	names := filterPrefix(f.users, prefix)
	for i := range names {
		names[i] += "/"
	}
	return matches{sigil: "~", names: names}
}

// readHosts lists the host names of a hosts(5) file, skipping addresses
// and comments. A missing file lists nothing.
func readHosts(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{}
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		out = append(out, fields[1:]...)
	}
	return sortedUnique(out)
}

// readUsers lists the login names of a passwd(5) file.
func readUsers(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{}
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, _, ok := strings.Cut(line, ":"); ok && name != "" {
			out = append(out, name)
		}
	}
	return sortedUnique(out)
}

func filterPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func sortedUnique(names []string) []string {
	if names == nil {
		return []string{}
	}
	sort.Strings(names)
	return slices.Compact(names)
}
