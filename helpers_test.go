// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import (
	"testing"

	"github.com/charlievieth/textkit/internal/test"
)

// forEachWidth runs one instantiation of a generic test per code unit.
func forEachWidth(t *testing.T, narrow, wide, utf16, utf32 func(t *testing.T)) {
	t.Helper()
	t.Run(Narrow.String(), narrow)
	t.Run(Wide.String(), wide)
	t.Run(UTF16.String(), utf16)
	t.Run(UTF32.String(), utf32)
}

// unitOffset converts UTF-8 byte offset off of s to a code unit offset.
// Offsets past the end of s stay past the end by the same amount.
func unitOffset[T Unit](s string, off int) int {
	switch {
	case off < 0:
		return off
	case off > len(s):
		return len(Encode[T](s)) + off - len(s)
	}
	return len(Encode[T](s[:off]))
}

// byteOffset converts code unit index i of units to a UTF-8 byte offset.
func byteOffset[T Unit](units []T, i int) int {
	if i < 0 {
		return i
	}
	return len(Decode(units[:i]))
}

func indexFunc[T Unit](fn func(s, substr []T, offset int) int) test.IndexFunc {
	return func(s, substr string, off int) int {
		us := Encode[T](s)
		return byteOffset(us, fn(us, Encode[T](substr), unitOffset[T](s, off)))
	}
}

func containsFunc[T Unit](fn func(s, substr []T) bool) test.ContainsFunc {
	return func(s, substr string) bool {
		return fn(Encode[T](s), Encode[T](substr))
	}
}

func countFunc[T Unit](fn func(s, substr []T) int) test.CountFunc {
	return func(s, substr string) int {
		return fn(Encode[T](s), Encode[T](substr))
	}
}

// replaceFunc checks that fn does not modify its input.
func replaceFunc[T Unit](t *testing.T, fn func(s, old, new []T) []T) test.ReplaceFunc {
	return func(s, old, new string) string {
		us := Encode[T](s)
		out := Decode(fn(us, Encode[T](old), Encode[T](new)))
		if got := Decode(us); got != s {
			t.Errorf("input modified: %q => %q", s, got)
		}
		return out
	}
}

// replaceInPlaceFunc passes fn a buffer it owns.
func replaceInPlaceFunc[T Unit](fn func(buf, old, new []T) []T) test.ReplaceFunc {
	return func(s, old, new string) string {
		return Decode(fn(Encode[T](s), Encode[T](old), Encode[T](new)))
	}
}

func removeFunc[T Unit](t *testing.T, fn func(s, old []T) []T) test.RemoveFunc {
	return func(s, old string) string {
		us := Encode[T](s)
		out := Decode(fn(us, Encode[T](old)))
		if got := Decode(us); got != s {
			t.Errorf("input modified: %q => %q", s, got)
		}
		return out
	}
}

func removeInPlaceFunc[T Unit](fn func(buf, old []T) []T) test.RemoveFunc {
	return func(s, old string) string {
		return Decode(fn(Encode[T](s), Encode[T](old)))
	}
}

func splitFunc[T Unit](fn func(s, delims []T) [][]T) test.SplitFunc {
	return func(s, delims string) []string {
		return decodeAll(fn(Encode[T](s), Encode[T](delims)))
	}
}

func trimFunc[T Unit](fn func(s, set []T) []T) test.TrimFunc {
	return func(s, set string) string {
		return Decode(fn(Encode[T](s), Encode[T](set)))
	}
}

func mapFunc[T Unit](fn func(s []T) []T) func(string) string {
	return func(s string) string {
		return Decode(fn(Encode[T](s)))
	}
}

func decodeAll[T Unit](parts [][]T) []string {
	if parts == nil {
		return nil
	}
	a := make([]string, len(parts))
	for i, p := range parts {
		a[i] = Decode(p)
	}
	return a
}

func encodeAll[T Unit](a []string) [][]T {
	parts := make([][]T, len(a))
	for i, s := range a {
		parts[i] = Encode[T](s)
	}
	return parts
}
