package clipboard

// KillRing is a single-slot holder for killed and copied text.
//
// One ring is shared by pointer between all fields that should see each
// other's kills. Holders register with Acquire and leave with Release; the
// slot is emptied when the last holder leaves. It is not safe for concurrent
// use: fields live on the UI goroutine.
type KillRing struct {
	text string
	refs int
}

// NewKillRing returns an empty ring with no holders.
func NewKillRing() *KillRing {
	return &KillRing{}
}

// Acquire registers a holder and returns the ring.
func (k *KillRing) Acquire() *KillRing {
	k.refs++
	return k
}

// Release unregisters a holder. The slot is cleared when none remain.
func (k *KillRing) Release() {
	if k.refs > 0 {
		k.refs--
	}
	if k.refs == 0 {
		k.text = ""
	}
}

// Refs returns the number of registered holders.
func (k *KillRing) Refs() int { return k.refs }

// Set replaces the slot contents. The last writer wins.
func (k *KillRing) Set(s string) { k.text = s }

// Text returns the slot contents.
func (k *KillRing) Text() string { return k.text }

// Empty reports whether the slot holds nothing.
func (k *KillRing) Empty() bool { return k.text == "" }
