package buffer

import "unicode/utf8"

// FeedResult reports the state of an Accumulator after one byte.
type FeedResult uint8

const (
	// FeedComplete means the pending bytes formed one whole character.
	FeedComplete FeedResult = iota
	// FeedIncomplete means more bytes are needed.
	FeedIncomplete
	// FeedInvalid means the pending bytes can never form a character and were dropped.
	FeedInvalid
)

func (r FeedResult) String() string {
	switch r {
	case FeedComplete:
		return "complete"
	case FeedIncomplete:
		return "incomplete"
	case FeedInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Accumulator assembles one UTF-8 character from single bytes.
type Accumulator struct {
	buf [utf8.UTFMax]byte
	n   int
}

// Pending returns the number of bytes held.
func (a *Accumulator) Pending() int { return a.n }

func (a *Accumulator) Reset() { a.n = 0 }

// Feed adds c to the pending sequence.
//
// On FeedComplete the returned bytes are the finished character and the
// accumulator is empty again. A sequence broken by c is dropped; c itself
// starts a new sequence when it can.
func (a *Accumulator) Feed(c byte) ([]byte, FeedResult) {
	if a.n >= len(a.buf) {
		a.n = 0
	}
	a.buf[a.n] = c
	a.n++

	if !utf8.FullRune(a.buf[:a.n]) {
		return nil, FeedIncomplete
	}
	r, size := utf8.DecodeRune(a.buf[:a.n])
	if r == utf8.RuneError && size <= 1 {
		broken := a.n > 1
		a.n = 0
		if broken {
			if out, res := a.Feed(c); res != FeedInvalid {
				return out, res
			}
		}
		return nil, FeedInvalid
	}
	out := make([]byte, size)
	copy(out, a.buf[:size])
	a.n = 0
	return out, FeedComplete
}
