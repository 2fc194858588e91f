// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unit is the set of code units the package operates on: narrow bytes,
// platform wide characters (rune), UTF-16 code units and UTF-32 code units.
//
// The set is closed. Named types with one of these underlying types are not
// accepted.
type Unit interface {
	byte | rune | uint16 | uint32
}

// NotFound is the position returned by every search when there is no match.
const NotFound = -1

// A Span is the half-open range [Start, End) of a sequence.
type Span struct {
	Start, End int
}

// Len returns the number of units in the span.
func (s Span) Len() int { return s.End - s.Start }

// Width identifies one of the four code-unit types at runtime.
type Width uint8

const (
	Narrow Width = iota // byte
	Wide                // rune
	UTF16               // uint16
	UTF32               // uint32
)

var widthNames = [...]string{
	Narrow: "8",
	Wide:   "wide",
	UTF16:  "16",
	UTF32:  "32",
}

func (w Width) String() string {
	if int(w) < len(widthNames) {
		return widthNames[w]
	}
	return fmt.Sprintf("Width(%d)", uint8(w))
}

// Size returns the size in bytes of one code unit of width w.
func (w Width) Size() int {
	switch w {
	case Narrow:
		return 1
	case UTF16:
		return 2
	case Wide, UTF32:
		return 4
	}
	return 0
}

// Valid reports whether w is one of the defined widths.
func (w Width) Valid() bool { return w <= UTF32 }

// ParseWidth parses the textual form of a Width. Accepted values are the
// String forms plus a few common aliases ("narrow", "utf8", "utf16",
// "utf32", "rune").
func ParseWidth(s string) (Width, error) {
	switch strings.ToLower(s) {
	case "8", "narrow", "utf8", "utf-8", "byte":
		return Narrow, nil
	case "wide", "rune", "wchar":
		return Wide, nil
	case "16", "utf16", "utf-16":
		return UTF16, nil
	case "32", "utf32", "utf-32":
		return UTF32, nil
	}
	return 0, fmt.Errorf("textkit: invalid width: %q", s)
}

// WidthOf returns the Width of code unit T.
func WidthOf[T Unit]() Width {
	var zero T
	switch any(zero).(type) {
	case byte:
		return Narrow
	case rune:
		return Wide
	case uint16:
		return UTF16
	default:
		return UTF32
	}
}

// Encode converts s to a sequence of code units: UTF-8 bytes for narrow
// units, UTF-16 for uint16 and code points for rune and uint32.
func Encode[T Unit](s string) []T {
	var out any
	switch WidthOf[T]() {
	case Narrow:
		out = []byte(s)
	case Wide:
		out = []rune(s)
	case UTF16:
		out = utf16.Encode([]rune(s))
	default:
		u := make([]uint32, 0, utf8.RuneCountInString(s))
		for _, r := range s {
			u = append(u, uint32(r))
		}
		out = u
	}
	return out.([]T)
}

// Decode is the inverse of Encode. Invalid sequences decode to
// utf8.RuneError.
func Decode[T Unit](units []T) string {
	switch u := any(units).(type) {
	case []byte:
		return string(u)
	case []rune:
		return string(u)
	case []uint16:
		return string(utf16.Decode(u))
	case []uint32:
		var b strings.Builder
		b.Grow(len(u))
		for _, c := range u {
			b.WriteRune(rune(c))
		}
		return b.String()
	}
	panic("unreachable")
}

// clone returns a copy of s that never aliases it. A nil or empty s yields
// an empty non-nil slice so callers can tell a copy from a view.
func clone[T Unit](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
