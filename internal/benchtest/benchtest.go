// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package benchtest benchmarks textkit against the Go stdlib's strings
// package.
//
// Most of the inputs here were taken from Go's strings and bytes package
// benchmarks. Run with -stdlib to measure the strings package on the same
// inputs.
package benchtest

import (
	"math/rand"
	"strings"
)

// HardInput returns about 1MB of HTML like tokens. It is deterministic for
// a given seed.
func HardInput(seed int64) string {
	tokens := [...]string{
		"<a>", "<p>", "<b>", "<strong>",
		"</a>", "</p>", "</b>", "</strong>",
		"hello", "world",
	}
	rr := rand.New(rand.NewSource(seed))
	x := make([]byte, 0, 1<<20)
	for {
		i := rr.Intn(len(tokens))
		if len(x)+len(tokens[i]) >= 1<<20 {
			break
		}
		x = append(x, tokens[i]...)
	}
	return string(x)
}

// TortureInput returns a haystack and a needle that nearly matches at
// every position.
func TortureInput() (s, sep string) {
	s = strings.Repeat("ABC", 1<<10) + "123" + strings.Repeat("ABC", 1<<10)
	sep = strings.Repeat("ABC", 1<<10+1)
	return s, sep
}
