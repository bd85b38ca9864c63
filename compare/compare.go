// Package compare provides the three-way key comparators consumed by the
// search functions.
package compare

import (
	"bytes"
	"cmp"
)

// Func is a three-way comparison between a target key and a list element.
// It returns a negative value when the target orders before the element,
// zero when they are equal, and a positive value when the target orders
// after the element.
//
// A Func must be a strict total order consistent with the sort order of
// the list it is used against (anti-symmetric, transitive).
type Func[T, E any] func(target T, elem E) int

// Ordered returns the natural ascending comparator for ordered types.
func Ordered[T cmp.Ordered]() Func[T, T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Bytes returns the lexicographic comparator for byte keys. This is the
// comparator for fixed-stride raw runs, whose keys are byte prefixes.
func Bytes() Func[[]byte, []byte] {
	return func(a, b []byte) int {
		return bytes.Compare(a, b)
	}
}

// Reverse inverts the order of fn.
func Reverse[T, E any](fn Func[T, E]) Func[T, E] {
	return func(target T, elem E) int {
		return -fn(target, elem)
	}
}

// Lexicographic combines comparators into a composite multi-field order:
// the first non-zero comparison wins.
func Lexicographic[T, E any](fns ...Func[T, E]) Func[T, E] {
	return func(target T, elem E) int {
		for _, fn := range fns {
			if r := fn(target, elem); r != 0 {
				return r
			}
		}
		return 0
	}
}
