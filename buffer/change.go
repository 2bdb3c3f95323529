package buffer

// SelectionState captures the highlighted span at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// Change describes the most recent text mutation.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	PointBefore     int
	PointAfter      int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState

	// Start is the offset where text was removed and/or inserted.
	Start       int
	DeletedText string
	InsertText  string
}

type changeBuilder struct {
	textVersionBefore uint64
	versionBefore     uint64
	pointBefore       int
	selectionBefore   SelectionState

	start    int
	started  bool
	deleted  string
	inserted string
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) selectionState() SelectionState {
	r, ok := b.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		textVersionBefore: b.textVersion,
		versionBefore:     b.version,
		pointBefore:       b.point,
		selectionBefore:   b.selectionState(),
	}
}

func (cb *changeBuilder) recordDelete(start int, s string) {
	if !cb.started {
		cb.start, cb.started = start, true
	}
	cb.deleted += s
}

func (cb *changeBuilder) recordInsert(start int, s string) {
	if !cb.started {
		cb.start, cb.started = start, true
	}
	cb.inserted += s
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.textVersion == cb.textVersionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		PointBefore:     cb.pointBefore,
		PointAfter:      b.point,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		Start:           cb.start,
		DeletedText:     cb.deleted,
		InsertText:      cb.inserted,
	}
	b.hasLastChange = true
}
