// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import (
	"bytes"

	"golang.org/x/exp/slices"

	"github.com/charlievieth/textkit/internal/bytealg"
)

// A Finder locates needle in haystack, scanning forward from offset.
//
// Find returns the index of the first match at or after offset, or
// NotFound. The replace and count engines call Find repeatedly with an
// advancing offset.
type Finder[T Unit] interface {
	Find(haystack, needle []T, offset int) int
}

type exactFinder[T Unit] struct{}

// Exact returns the case-sensitive Finder. It matches a standard substring
// search exactly: for narrow units it is bytes.Index, and an empty needle
// matches at offset.
func Exact[T Unit]() Finder[T] { return exactFinder[T]{} }

func (exactFinder[T]) Find(s, substr []T, offset int) int {
	if offset < 0 || offset > len(s) {
		return NotFound
	}
	var i int
	if b, ok := any(s).([]byte); ok {
		i = bytes.Index(b[offset:], any(substr).([]byte))
	} else {
		i = index(s[offset:], substr)
	}
	if i < 0 {
		return NotFound
	}
	return i + offset
}

type foldFinder[T Unit] struct {
	fold Folder[T]
}

// IgnoreCase returns the case-insensitive Finder using fold, or the
// DefaultFolder if fold is nil.
//
// Callers are expected to pass a non-empty needle no longer than the
// haystack. Find returns NotFound instead of matching when they do not.
func IgnoreCase[T Unit](fold Folder[T]) Finder[T] {
	if fold == nil {
		fold = DefaultFolder[T]()
	}
	return foldFinder[T]{fold: fold}
}

func (f foldFinder[T]) Find(s, substr []T, offset int) int {
	n := len(substr)
	if n == 0 || len(s) < n || offset < 0 || offset > len(s)-n {
		return NotFound
	}
	if b, ok := any(s).([]byte); ok {
		if _, ok := f.fold.(ASCII[T]); ok {
			return indexFoldASCII(b, any(substr).([]byte), offset)
		}
	}
	return indexFold(f.fold, s, substr, offset)
}

// indexFold scans every candidate position once. A position is only
// examined further when its unit is the upper or lower form of the first
// needle unit, the remaining units are then compared ignoring case.
func indexFold[T Unit](f Folder[T], s, substr []T, offset int) int {
	n := len(substr)
	upper := f.Upper(substr[0])
	lower := f.Lower(substr[0])
	tail := substr[1:]
	for i, end := offset, len(s)-n; i <= end; i++ {
		if c := s[i]; c != upper && c != lower {
			continue
		}
		if equalFold(f, s[i+1:i+n], tail) {
			return i
		}
	}
	return NotFound
}

// maxBruteForce is the haystack length for which a brute force search is
// faster than scanning for the first unit.
const maxBruteForce = 16

// index is the case-sensitive search for units wider than a byte.
func index[T Unit](s, substr []T) int {
	n := len(substr)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return slices.Index(s, substr[0])
	case n == len(s):
		if slices.Equal(s, substr) {
			return 0
		}
		return -1
	case n > len(s):
		return -1
	case len(s) <= maxBruteForce:
		return bruteForceIndex(s, substr)
	}
	c0 := substr[0]
	c1 := substr[1]
	i := 0
	t := len(s) - n + 1
	fails := 0
	for i < t {
		if s[i] != c0 {
			o := slices.Index(s[i+1:t], c0)
			if o < 0 {
				return -1
			}
			i += o + 1
		}
		if s[i+1] == c1 && slices.Equal(s[i:i+n], substr) {
			return i
		}
		i++
		fails++
		if fails >= 4+i>>4 && i < t {
			// The first unit is too common: switch to Rabin-Karp, see
			// the comment in bytes.Index.
			j := indexRabinKarp(s[i:], substr)
			if j < 0 {
				return -1
			}
			return i + j
		}
	}
	return -1
}

func bruteForceIndex[T Unit](s, substr []T) int {
	c0 := substr[0]
	t := len(s) - len(substr) + 1
	for i := 0; i < t; i++ {
		if s[i] == c0 && slices.Equal(s[i+1:i+len(substr)], substr[1:]) {
			return i
		}
	}
	return -1
}

// primeRK is the prime base used in Rabin-Karp algorithm.
const primeRK = 16777619

// hashUnits returns the hash and the appropriate multiplicative
// factor for use in Rabin-Karp algorithm.
func hashUnits[T Unit](sep []T) (uint32, uint32) {
	hash := uint32(0)
	for i := 0; i < len(sep); i++ {
		hash = hash*primeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, primeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}

// indexRabinKarp uses the Rabin-Karp search algorithm to return the index of the
// first occurrence of substr in s, or -1 if not present.
func indexRabinKarp[T Unit](s, substr []T) int {
	hashss, pow := hashUnits(substr)
	n := len(substr)
	if len(s) < n {
		return -1
	}
	var h uint32
	for i := 0; i < n; i++ {
		h = h*primeRK + uint32(s[i])
	}
	if h == hashss && slices.Equal(s[:n], substr) {
		return 0
	}
	for i := n; i < len(s); {
		h *= primeRK
		h += uint32(s[i])
		h -= pow * uint32(s[i-n])
		i++
		if h == hashss && slices.Equal(s[i-n:i], substr) {
			return i - n
		}
	}
	return -1
}

// Find returns the index of the first instance of substr in s at or after
// offset, or NotFound. An empty substr matches at offset.
func Find[T Unit](s, substr []T, offset int) int {
	return exactFinder[T]{}.Find(s, substr, offset)
}

// FindIgnoreCase is like Find but compares code units with the
// DefaultFolder. An empty substr, or one longer than s, is never found.
func FindIgnoreCase[T Unit](s, substr []T, offset int) int {
	if len(substr) == 0 || len(substr) > len(s) {
		return NotFound
	}
	return IgnoreCase(DefaultFolder[T]()).Find(s, substr, offset)
}

// Contains reports whether substr is within s.
func Contains[T Unit](s, substr []T) bool {
	return Find(s, substr, 0) != NotFound
}

// ContainsIgnoreCase reports whether substr is within s ignoring case.
// It is false for an empty substr.
func ContainsIgnoreCase[T Unit](s, substr []T) bool {
	return FindIgnoreCase(s, substr, 0) != NotFound
}

// Count counts the number of non-overlapping instances of substr in s.
// An empty substr occurs zero times.
func Count[T Unit](s, substr []T) int {
	return count(s, substr, 0, exactFinder[T]{})
}

// CountIgnoreCase is like Count but ignores case.
func CountIgnoreCase[T Unit](s, substr []T) int {
	if b, ok := any(s).([]byte); ok && len(substr) == 1 {
		if _, ok := DefaultFolder[T]().(ASCII[T]); ok {
			return bytealg.Count(b, any(substr).([]byte)[0])
		}
	}
	return count(s, substr, 0, IgnoreCase(DefaultFolder[T]()))
}

// count returns the number of non-overlapping matches of substr in s at or
// after offset.
func count[T Unit](s, substr []T, offset int, f Finder[T]) int {
	if len(substr) == 0 || len(substr) > len(s) {
		return 0
	}
	n := 0
	for i := f.Find(s, substr, offset); i != NotFound; i = f.Find(s, substr, i+len(substr)) {
		n++
	}
	return n
}

// EqualFold reports whether s and t have the same length and are equal
// under the DefaultFolder.
func EqualFold[T Unit](s, t []T) bool {
	return len(s) == len(t) && equalFold(DefaultFolder[T](), s, t)
}
