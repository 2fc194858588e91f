// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg implements ASCII case-insensitive byte searches used by the
// narrow code-unit fast paths.
package bytealg

import "bytes"

// MaxBruteForce is the haystack length at or below which a plain loop beats
// setting up an IndexByte based search.
const MaxBruteForce = 16

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// IndexByte returns the index of the first byte of s equal to c ignoring
// ASCII case, or -1.
func IndexByte(s []byte, c byte) int {
	if !isAlpha(c) {
		return bytes.IndexByte(s, c)
	}
	if hasFastIndexByte && len(s) > MaxBruteForce {
		return indexByteTwice(s, c)
	}
	return indexByteLoop(s, c)
}

// indexByteTwice searches for both cases with the standard library, which
// is vectorized on this platform.
func indexByteTwice(s []byte, c byte) int {
	n := bytes.IndexByte(s, c)
	if n == 0 {
		return n
	}
	c ^= ' ' // swap case
	if s[0] == c {
		return 0
	}
	if n > 0 {
		s = s[:n] // limit search space
	}
	if o := bytes.IndexByte(s, c); n == -1 || (o != -1 && o < n) {
		n = o
	}
	return n
}

func indexByteLoop(s []byte, c byte) int {
	c |= ' '
	for i, cc := range s {
		if cc|' ' == c {
			return i
		}
	}
	return -1
}

// Count returns the number of bytes of s equal to c ignoring ASCII case.
func Count(s []byte, c byte) int {
	if !isAlpha(c) {
		return bytes.Count(s, []byte{c})
	}
	if hasFastIndexByte {
		return bytes.Count(s, []byte{c}) + bytes.Count(s, []byte{c ^ ' '})
	}
	n := 0
	c |= ' '
	for _, cc := range s {
		if cc|' ' == c {
			n++
		}
	}
	return n
}
