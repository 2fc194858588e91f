// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import "fmt"

// A strategy is one of the replace algorithms. Every strategy produces the
// same result for the same input, they differ only in how they allocate.
type strategy uint8

const (
	overwrite strategy = iota // len(new) == len(old): in place
	shrink                    // len(new) < len(old): in place, compacting
	rebuild                   // len(new) > len(old) or a view: fresh buffer
)

func (s strategy) String() string {
	switch s {
	case overwrite:
		return "overwrite"
	case shrink:
		return "shrink"
	case rebuild:
		return "rebuild"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// pick returns the strategy for replacing a needle of length n with a
// replacement of length r in an owned buffer.
func pick(n, r int) strategy {
	switch {
	case r == n:
		return overwrite
	case r < n:
		return shrink
	default:
		return rebuild
	}
}

// noReplace reports that old can never match within s.
func noReplace[T Unit](s, old []T) bool {
	return len(old) == 0 || len(old) > len(s)
}

// replaceOwned replaces in buf, which the caller has given up.
func replaceOwned[T Unit](buf, old, new []T, f Finder[T]) []T {
	if noReplace(buf, old) {
		return buf
	}
	return replaceUsing(pick(len(old), len(new)), buf, old, new, f)
}

// replaceView replaces into a fresh buffer, s is never modified.
func replaceView[T Unit](s, old, new []T, f Finder[T]) []T {
	if noReplace(s, old) {
		return clone(s)
	}
	return replaceRebuild(s, old, new, f)
}

func replaceUsing[T Unit](st strategy, buf, old, new []T, f Finder[T]) []T {
	switch st {
	case overwrite:
		return replaceOverwrite(buf, old, new, f)
	case shrink:
		return replaceShrink(buf, old, new, f)
	default:
		return replaceRebuild(buf, old, new, f)
	}
}

// replaceOverwrite requires len(new) == len(old).
func replaceOverwrite[T Unit](buf, old, new []T, f Finder[T]) []T {
	for i := f.Find(buf, old, 0); i != NotFound; i = f.Find(buf, old, i+len(old)) {
		copy(buf[i:], new)
	}
	return buf
}

// replaceShrink requires len(new) < len(old). The write cursor never passes
// the read cursor so the finder only ever sees unmodified units.
func replaceShrink[T Unit](buf, old, new []T, f Finder[T]) []T {
	i := f.Find(buf, old, 0)
	if i == NotFound {
		return buf
	}
	w := i + copy(buf[i:], new)
	r := i + len(old)
	for {
		j := f.Find(buf, old, r)
		if j == NotFound {
			break
		}
		w += copy(buf[w:], buf[r:j])
		w += copy(buf[w:], new)
		r = j + len(old)
	}
	w += copy(buf[w:], buf[r:])
	return buf[:w]
}

// replaceRebuild writes the result to a new buffer sized exactly from the
// match count. The input is only read.
func replaceRebuild[T Unit](s, old, new []T, f Finder[T]) []T {
	first := f.Find(s, old, 0)
	if first == NotFound {
		return clone(s)
	}
	matches := 1 + count(s, old, first+len(old), f)
	target := len(s) + matches*(len(new)-len(old))

	out := make([]T, 0, target)
	prev := 0
	for i := first; i != NotFound; i = f.Find(s, old, i+len(old)) {
		out = append(out, s[prev:i]...)
		out = append(out, new...)
		prev = i + len(old)
	}
	out = append(out, s[prev:]...)
	if len(out) != target {
		panic(fmt.Sprintf("textkit: replace produced %d units, expected %d", len(out), target))
	}
	return out
}

// ReplaceAll returns a copy of s with all non-overlapping instances of old
// replaced by new. Matching resumes after the end of the previous match.
// If old is empty or longer than s the copy is unchanged. s is not
// modified.
func ReplaceAll[T Unit](s, old, new []T) []T {
	return replaceView(s, old, new, exactFinder[T]{})
}

// ReplaceAllIgnoreCase is like ReplaceAll but matches old ignoring case
// with the DefaultFolder.
func ReplaceAllIgnoreCase[T Unit](s, old, new []T) []T {
	return replaceView(s, old, new, IgnoreCase(DefaultFolder[T]()))
}

// ReplaceAllWith is like ReplaceAll but matches old with f, or Exact if f
// is nil.
func ReplaceAllWith[T Unit](s, old, new []T, f Finder[T]) []T {
	if f == nil {
		f = exactFinder[T]{}
	}
	return replaceView(s, old, new, f)
}

// ReplaceAllInPlace replaces all non-overlapping instances of old in buf
// with new and returns the result. The caller gives up buf: when new is no
// longer than old the result shares its backing array, otherwise a new
// slice is returned. The contents of buf are unspecified afterwards.
func ReplaceAllInPlace[T Unit](buf, old, new []T) []T {
	return replaceOwned(buf, old, new, exactFinder[T]{})
}

// ReplaceAllIgnoreCaseInPlace is like ReplaceAllInPlace but matches old
// ignoring case with the DefaultFolder.
func ReplaceAllIgnoreCaseInPlace[T Unit](buf, old, new []T) []T {
	return replaceOwned(buf, old, new, IgnoreCase(DefaultFolder[T]()))
}

// ReplaceAllInPlaceWith is like ReplaceAllInPlace but matches old with f,
// or Exact if f is nil.
func ReplaceAllInPlaceWith[T Unit](buf, old, new []T, f Finder[T]) []T {
	if f == nil {
		f = exactFinder[T]{}
	}
	return replaceOwned(buf, old, new, f)
}

func removeView[T Unit](s, old []T, f Finder[T]) []T {
	out := clone(s)
	if noReplace(s, old) {
		return out
	}
	return replaceShrink(out, old, nil, f)
}

// RemoveAll returns a copy of s with all non-overlapping instances of old
// removed.
func RemoveAll[T Unit](s, old []T) []T {
	return removeView(s, old, exactFinder[T]{})
}

// RemoveAllIgnoreCase returns a copy of s with all non-overlapping
// instances of old removed, ignoring case.
func RemoveAllIgnoreCase[T Unit](s, old []T) []T {
	return removeView(s, old, IgnoreCase(DefaultFolder[T]()))
}

// RemoveAllInPlace removes all non-overlapping instances of old from buf.
// The result always shares the backing array of buf.
func RemoveAllInPlace[T Unit](buf, old []T) []T {
	if noReplace(buf, old) {
		return buf
	}
	return replaceShrink(buf, old, nil, exactFinder[T]{})
}

// RemoveAllIgnoreCaseInPlace is like RemoveAllInPlace but ignores case.
func RemoveAllIgnoreCaseInPlace[T Unit](buf, old []T) []T {
	if noReplace(buf, old) {
		return buf
	}
	return replaceShrink(buf, old, nil, IgnoreCase(DefaultFolder[T]()))
}
