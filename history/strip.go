package history

import "strings"

const urlDelimiter = "://"

// StripPassword removes the password from user:password@host forms.
//
// The colon is searched after the scheme delimiter when present. A colon
// after the last '@' separates host and port and is left alone.
func StripPassword(url string) string {
	at := strings.LastIndexByte(url, '@')
	if at < 0 {
		return url
	}

	from := 0
	if d := strings.Index(url, urlDelimiter); d >= 0 {
		from = d + len(urlDelimiter)
	}
	colon := strings.IndexByte(url[from:], ':')
	if colon < 0 {
		return url
	}
	colon += from
	if colon > at {
		return url
	}
	return url[:colon] + url[at:]
}
