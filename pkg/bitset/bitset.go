// Package bitset implements a 64-bit set of hero indices. Bit i set means
// hero index i is a member. See board.Bitboard in the chess engine this
// package is modeled on for the same bit-twiddling idioms applied to squares
// instead of heroes.
package bitset

import "math/bits"

// Set is a bit-wise representation of a set of hero indices in [0, 64).
type Set uint64

const (
	// Empty is the empty set.
	Empty Set = 0
	// Full is the set of all 64 possible indices.
	Full Set = ^Set(0)
)

// Mask returns a singleton set containing only i.
func Mask(i int) Set {
	return Set(1) << uint(i)
}

// IsSet reports whether index i is a member.
func (s Set) IsSet(i int) bool {
	return s&Mask(i) != 0
}

// With returns s with index i added.
func (s Set) With(i int) Set {
	return s | Mask(i)
}

// Without returns s with index i removed.
func (s Set) Without(i int) Set {
	return s &^ Mask(i)
}

// PopCount returns the number of members.
func (s Set) PopCount() int {
	return bits.OnesCount64(uint64(s))
}

// Lowest returns the index of the lowest-indexed member. Returns 64 if empty.
func (s Set) Lowest() int {
	return bits.TrailingZeros64(uint64(s))
}

// IsSuperset reports whether s contains every member of other.
func (s Set) IsSuperset(other Set) bool {
	return s&other == other
}

// Intersects reports whether s and other share a member.
func (s Set) Intersects(other Set) bool {
	return s&other != 0
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s == Empty
}

// Iter calls fn for every member index, lowest to highest, stopping early
// if fn returns false. Uses a trailing-zeros scan rather than a 0..63 loop,
// so cost is proportional to population, not capacity.
func (s Set) Iter(fn func(i int) bool) {
	for s != Empty {
		i := s.Lowest()
		if !fn(i) {
			return
		}
		s = s.Without(i)
	}
}

// Indices returns the members as a slice, lowest to highest. Convenience for
// tests and diagnostics; avoid on hot paths.
func (s Set) Indices() []int {
	var ret []int
	s.Iter(func(i int) bool {
		ret = append(ret, i)
		return true
	})
	return ret
}

// Of returns the set containing exactly the given indices.
func Of(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s = s.With(i)
	}
	return s
}
