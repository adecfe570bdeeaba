// Package common holds small generic helpers shared by the solver packages.
package common

// UnknownStr names enum values outside their defined set.
const UnknownStr = "unknown"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum totals the values of a numeric slice.
func Sum[S ~[]E, E number](s S) E {
	var total E
	for _, v := range s {
		total += v
	}

	return total
}

// Min returns the smallest value in a non-empty numeric slice and true,
// or the zero value and false if the slice is empty.
func Min[S ~[]E, E number](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}

	return best, true
}
