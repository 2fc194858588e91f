// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build !amd64 && !arm64

// NOTE(cev): the standard library's IndexByte is a simple loop on most of
// the remaining architectures (arm, riscv, mips, loong64) so a single
// caseless loop beats calling it twice.

package bytealg

const hasFastIndexByte = false

// Cutover reports the number of failures of IndexByte we should tolerate
// before switching over to a brute force search.
// n is the number of bytes processed so far.
func Cutover(n int) int {
	return 4 + n>>4
}
