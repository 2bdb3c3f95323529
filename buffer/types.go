package buffer

// Range is a half-open span of character offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of characters spanned by r.
func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both ends of r into [0, n] and normalizes it.
func ClampRange(r Range, n int) Range {
	return NormalizeRange(Range{
		Start: clampInt(r.Start, 0, n),
		End:   clampInt(r.End, 0, n),
	})
}
