// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import "golang.org/x/exp/slices"

// Spans returns the spans of the maximal runs of s that contain no unit of
// delims. Runs of delimiters of any length separate two parts, so no span
// is ever empty.
//
// An empty s has no spans. An empty delims yields a single span covering
// all of s.
func Spans[T Unit](s, delims []T) []Span {
	if len(s) == 0 {
		return nil
	}
	if len(delims) == 0 {
		return []Span{{0, len(s)}}
	}

	n := 0
	inDelim := true
	for _, c := range s {
		d := slices.Contains(delims, c)
		if inDelim && !d {
			n++
		}
		inDelim = d
	}
	if n == 0 {
		return nil
	}

	spans := make([]Span, 0, n)
	start := -1
	for i, c := range s {
		if slices.Contains(delims, c) {
			if start >= 0 {
				spans = append(spans, Span{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, Span{start, len(s)})
	}
	return spans
}

// Split slices s into the parts separated by runs of units in delims. The
// parts alias s: they are capped so appending to one never writes into s.
func Split[T Unit](s, delims []T) [][]T {
	spans := Spans(s, delims)
	if len(spans) == 0 {
		return nil
	}
	parts := make([][]T, len(spans))
	for i, sp := range spans {
		parts[i] = s[sp.Start:sp.End:sp.End]
	}
	return parts
}

// SplitCopy is like Split but every part is a copy.
func SplitCopy[T Unit](s, delims []T) [][]T {
	spans := Spans(s, delims)
	if len(spans) == 0 {
		return nil
	}
	parts := make([][]T, len(spans))
	for i, sp := range spans {
		parts[i] = clone(s[sp.Start:sp.End])
	}
	return parts
}

// SplitLines splits s on CR and LF. Blank lines are dropped.
func SplitLines[T Unit](s []T) [][]T {
	return SplitCopy(s, []T{'\r', '\n'})
}

// Join concatenates parts with sep between each part.
func Join[T Unit](parts [][]T, sep []T) []T {
	switch len(parts) {
	case 0:
		return []T{}
	case 1:
		return clone(parts[0])
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	out = append(out, parts[0]...)
	for _, p := range parts[1:] {
		out = append(out, sep...)
		out = append(out, p...)
	}
	if len(out) != n {
		panic("textkit: join size mismatch")
	}
	return out
}
