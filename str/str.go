// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package str provides the narrow textkit operations for Go strings.
//
// Reads operate directly on the bytes of the string without copying them
// and no function ever writes to them. Results that reference the input,
// such as the parts returned by Split, are substrings of it.
package str

import (
	"unsafe"

	"github.com/charlievieth/textkit"
)

// NotFound is returned by Find and FindIgnoreCase when there is no match.
const NotFound = textkit.NotFound

// bytes returns the bytes of s without copying. They must not be modified.
func bytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Find returns the index of the first instance of substr in s at or after
// offset, or NotFound.
func Find(s, substr string, offset int) int {
	return textkit.Find(bytes(s), bytes(substr), offset)
}

// FindIgnoreCase is like Find but ignores ASCII case. An empty substr is
// never found.
func FindIgnoreCase(s, substr string, offset int) int {
	return textkit.FindIgnoreCase(bytes(s), bytes(substr), offset)
}

// Contains reports whether substr is within s.
func Contains(s, substr string) bool {
	return textkit.Contains(bytes(s), bytes(substr))
}

// ContainsIgnoreCase reports whether substr is within s ignoring ASCII case.
func ContainsIgnoreCase(s, substr string) bool {
	return textkit.ContainsIgnoreCase(bytes(s), bytes(substr))
}

// Count counts the non-overlapping instances of substr in s.
func Count(s, substr string) int {
	return textkit.Count(bytes(s), bytes(substr))
}

// CountIgnoreCase is like Count but ignores ASCII case.
func CountIgnoreCase(s, substr string) int {
	return textkit.CountIgnoreCase(bytes(s), bytes(substr))
}

// EqualFold reports whether s and t are equal ignoring ASCII case.
func EqualFold(s, t string) bool {
	return textkit.EqualFold(bytes(s), bytes(t))
}

// ReplaceAll returns a copy of s with every non-overlapping instance of old
// replaced by new.
func ReplaceAll(s, old, new string) string {
	return string(textkit.ReplaceAll(bytes(s), bytes(old), bytes(new)))
}

// ReplaceAllIgnoreCase is like ReplaceAll but matches old ignoring ASCII
// case.
func ReplaceAllIgnoreCase(s, old, new string) string {
	return string(textkit.ReplaceAllIgnoreCase(bytes(s), bytes(old), bytes(new)))
}

// RemoveAll returns a copy of s with every instance of old removed.
func RemoveAll(s, old string) string {
	return string(textkit.RemoveAll(bytes(s), bytes(old)))
}

// RemoveAllIgnoreCase is like RemoveAll but ignores ASCII case.
func RemoveAllIgnoreCase(s, old string) string {
	return string(textkit.RemoveAllIgnoreCase(bytes(s), bytes(old)))
}

// Split returns the substrings of s separated by runs of the bytes in
// delims.
func Split(s, delims string) []string {
	spans := textkit.Spans(bytes(s), bytes(delims))
	if len(spans) == 0 {
		return nil
	}
	parts := make([]string, len(spans))
	for i, sp := range spans {
		parts[i] = s[sp.Start:sp.End]
	}
	return parts
}

// SplitCopy is like Split but the parts do not share memory with s.
func SplitCopy(s, delims string) []string {
	parts := Split(s, delims)
	for i, p := range parts {
		parts[i] = string(append([]byte(nil), p...))
	}
	return parts
}

// SplitLines splits s on CR and LF dropping blank lines.
func SplitLines(s string) []string {
	return Split(s, "\r\n")
}

// Join concatenates parts with sep between each part.
func Join(parts []string, sep string) string {
	bs := make([][]byte, len(parts))
	for i, p := range parts {
		bs[i] = bytes(p)
	}
	return string(textkit.Join(bs, bytes(sep)))
}

// Trim returns the substring of s with the leading and trailing bytes in
// set removed.
func Trim(s, set string) string {
	sp := textkit.TrimSpan(bytes(s), bytes(set))
	return s[sp.Start:sp.End]
}

// TrimCopy is like Trim but the result does not share memory with s.
func TrimCopy(s, set string) string {
	return string(textkit.TrimCopy(bytes(s), bytes(set)))
}

// IsTrimmed reports whether s starts and ends with a byte not in set.
func IsTrimmed(s, set string) bool {
	return textkit.IsTrimmed(bytes(s), bytes(set))
}

// ToLower returns s with the ASCII letters mapped to lower case.
func ToLower(s string) string {
	return string(textkit.ToLower(bytes(s)))
}

// ToUpper returns s with the ASCII letters mapped to upper case.
func ToUpper(s string) string {
	return string(textkit.ToUpper(bytes(s)))
}
