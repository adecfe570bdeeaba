package almanac

import "fmt"

// Range is a half-open interval [Lo, Hi) of int64 values.
// The canonical empty range has Lo == Hi; every method treats
// Lo > Hi as empty as well.
type Range struct {
	Lo int64
	Hi int64
}

// NewRange constructs the half-open range [lo, hi).
func NewRange(lo, hi int64) Range {
	return Range{Lo: lo, Hi: hi}
}

// Singleton models the single value v as the range [v, v+1).
func Singleton(v int64) Range {
	return Range{Lo: v, Hi: v + 1}
}

// Len returns the number of values in the range, or 0 if empty.
func (r Range) Len() int64 {
	if r.IsEmpty() {
		return 0
	}

	return r.Hi - r.Lo
}

// IsEmpty returns true if the range contains no values.
func (r Range) IsEmpty() bool {
	return r.Lo >= r.Hi
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v int64) bool {
	return r.Lo <= v && v < r.Hi
}

// Overlaps returns true if r and o share at least one value.
// Touching at a boundary (r.Hi == o.Lo) is not an overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Lo < o.Hi && o.Lo < r.Hi
}

// Intersect returns the intersection of r and o. If they do not
// overlap the result is empty with unspecified bounds.
func (r Range) Intersect(o Range) Range {
	if o.Lo > r.Lo {
		r.Lo = o.Lo
	}

	if o.Hi < r.Hi {
		r.Hi = o.Hi
	}

	if r.Hi < r.Lo {
		r.Hi = r.Lo
	}

	return r
}

// Translate returns the range shifted by off. Width is preserved.
func (r Range) Translate(off int64) Range {
	return Range{Lo: r.Lo + off, Hi: r.Hi + off}
}

// String returns the range in [lo, hi) notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Lo, r.Hi)
}
