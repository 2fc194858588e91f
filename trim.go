// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import "golang.org/x/exp/slices"

// DefaultTrimSet returns the units trimmed by the command line tool when no
// set is given: tab, carriage return, line feed and space.
func DefaultTrimSet[T Unit]() []T {
	return []T{'\t', '\r', '\n', ' '}
}

// TrimSpan returns the span of s left after removing all leading and
// trailing units contained in set. If s or set is empty the span covers
// all of s.
func TrimSpan[T Unit](s, set []T) Span {
	if len(s) == 0 || len(set) == 0 {
		return Span{0, len(s)}
	}
	end := len(s)
	for end > 0 && slices.Contains(set, s[end-1]) {
		end--
	}
	if end == 0 {
		return Span{}
	}
	start := 0
	for slices.Contains(set, s[start]) {
		start++
	}
	return Span{start, end}
}

// Trim returns a subslice of s with all leading and trailing units
// contained in set removed. The result is capped so appending to it never
// writes into s.
func Trim[T Unit](s, set []T) []T {
	sp := TrimSpan(s, set)
	return s[sp.Start:sp.End:sp.End]
}

// TrimCopy is like Trim but returns a copy.
func TrimCopy[T Unit](s, set []T) []T {
	return clone(Trim(s, set))
}

// TrimInPlace moves the trimmed contents of buf to its front and returns
// them. The result shares the backing array of buf.
func TrimInPlace[T Unit](buf, set []T) []T {
	sp := TrimSpan(buf, set)
	n := copy(buf, buf[sp.Start:sp.End])
	return buf[:n]
}

// IsTrimmed reports whether neither the first nor the last unit of s is in
// set. An empty s is trimmed.
func IsTrimmed[T Unit](s, set []T) bool {
	if len(s) == 0 {
		return true
	}
	return !slices.Contains(set, s[0]) && !slices.Contains(set, s[len(s)-1])
}
