// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import "golang.org/x/sys/cpu"

// The standard library's IndexByte and Count use AVX2 when present.
var hasFastIndexByte = cpu.X86.HasAVX2

// Cutover reports the number of failures of IndexByte we should tolerate
// before switching over to a brute force search.
// n is the number of bytes processed so far.
// See the bytes.Index implementation for details.
func Cutover(n int) int {
	// 1 error per 8 characters, plus a few slop to start.
	return (n + 16) / 8
}
