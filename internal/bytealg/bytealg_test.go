// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"
)

var quiet = flag.Bool("quiet", false, "quiet test output")

var indexByteTests = []struct {
	s   string
	c   byte
	out int
}{
	{"", 'a', -1},
	{"a", 'a', 0},
	{"A", 'a', 0},
	{"a", 'A', 0},
	{"xyz", 'a', -1},
	{"xyzA", 'a', 3},
	{"xyZa", 'z', 2},
	{"0123456789", '5', 5},
	{"0123456789", 'x', -1},
	{"@[`{", '`', 2}, // neighbors of the letters do not fold
	{"@[`{", '@', 0},
	{strings.Repeat("b", 64) + "A", 'a', 64},
	{strings.Repeat("b", 64) + "a" + "A", 'A', 64},
	{strings.Repeat("b", 64) + "A" + "a", 'a', 64},
	{"\xc3\xa9A", 'a', 2},
}

func TestIndexByte(t *testing.T) {
	for _, tt := range indexByteTests {
		if got := IndexByte([]byte(tt.s), tt.c); got != tt.out {
			t.Errorf("IndexByte(%q, %q) = %d; want: %d", tt.s, tt.c, got, tt.out)
		}
		// The loop and the double search must agree regardless of the
		// platform this runs on.
		if isAlpha(tt.c) {
			if got := indexByteLoop([]byte(tt.s), tt.c); got != tt.out {
				t.Errorf("indexByteLoop(%q, %q) = %d; want: %d", tt.s, tt.c, got, tt.out)
			}
			if len(tt.s) > 0 {
				if got := indexByteTwice([]byte(tt.s), tt.c); got != tt.out {
					t.Errorf("indexByteTwice(%q, %q) = %d; want: %d", tt.s, tt.c, got, tt.out)
				}
			}
		}
	}
}

func isAlphaPortable(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func testIndexByte(t *testing.T, base, name, replacements string, fn func([]byte, byte) int) {
	const maxErrors = 40
	if strings.ContainsAny(base, "xX") {
		t.Fatalf("base string %q may not contain %q", base, "xX")
	}

	// Test indices 512 bytes on either side of size.
	const delta = 512

	ob := base
	base = strings.Repeat(ob, os.Getpagesize()/len(ob)+delta+1) // expand base
	base = strings.TrimPrefix(base, ob[:1])                    // change data alignment

	for size := 1; size <= os.Getpagesize(); size <<= 1 {
		t.Run(fmt.Sprintf("%s/%d", name, size), func(t *testing.T) {
			orig := base[:size+delta]
			s1 := []byte(orig)

			errCount := 0
			for i := max(0, size-delta*2); i < len(orig); i++ {
				for j, c := range []byte(replacements) {
					if isAlphaPortable(c) {
						if i < len(s1)-1 {
							s1[i] = c ^ ' ' // swap case
							s1[i+1] = c
						} else {
							s1[i] = c
						}
					} else {
						s1[i] = c
					}
					if o := fn(s1, c); o != i {
						if errCount < maxErrors {
							if !*quiet {
								t.Errorf("%d.%d got: %d; want: %d", i, j, o, i)
							} else {
								t.Fail()
							}
						}
						errCount++
					}
					if i < len(s1)-1 {
						s1[i] = orig[i]
						s1[i+1] = orig[i+1]
					} else {
						s1[i] = orig[i]
					}
				}
			}
		})
	}
}

const alphaLower = "abcdefghijklmnopqrstuvwyz" // no X
const alphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWYZ" // no X

func TestIndexByteLimits(t *testing.T) {
	testIndexByte(t, alphaLower, "Lower", "xX", IndexByte)
	testIndexByte(t, alphaUpper, "Upper", "xX", IndexByte)
	testIndexByte(t, alphaUpper, "Digit", "1", IndexByte)
}

var countTests = []struct {
	s   string
	c   byte
	num int
}{
	{"", 'a', 0},
	{"12345678987654321", '6', 2},
	{"611161116", '6', 3},
	{"11111", '1', 5},
	{"aBaB", 'a', 2},
	{"ABAB", 'a', 2},
	{strings.Repeat("AB", 256), 'a', 256},
	{strings.Repeat("ab", 256), 'A', 256},
}

func TestCount(t *testing.T) {
	for _, tt := range countTests {
		if num := Count([]byte(tt.s), tt.c); num != tt.num {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.s, tt.c, num, tt.num)
		}
	}
}

func TestCutover(t *testing.T) {
	prev := Cutover(0)
	for n := 1; n < 4096; n++ {
		c := Cutover(n)
		if c < prev {
			t.Fatalf("Cutover(%d) = %d; must not decrease (previous %d)", n, c, prev)
		}
		prev = c
	}
}

func BenchmarkIndexByte(b *testing.B) {
	buf := bytes.Repeat([]byte{'a'}, 4096)
	buf[len(buf)-1] = 'x'
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		if j := IndexByte(buf, 'X'); j != len(buf)-1 {
			b.Fatal("bad index", j)
		}
	}
}
