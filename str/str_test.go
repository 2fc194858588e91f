// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package str

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/charlievieth/textkit/internal/test"
)

func TestFind(t *testing.T) {
	test.Index(t, Find)
}

func TestFindUnicode(t *testing.T) {
	test.IndexUnicode(t, Find)
}

func TestFindNumeric(t *testing.T) {
	test.IndexNumeric(t, FindIgnoreCase)
}

func TestFindIgnoreCase(t *testing.T) {
	test.IndexIgnoreCase(t, FindIgnoreCase)
}

func TestContains(t *testing.T) {
	test.Contains(t, Contains)
}

func TestContainsIgnoreCase(t *testing.T) {
	test.ContainsIgnoreCase(t, ContainsIgnoreCase)
}

func TestCount(t *testing.T) {
	test.Count(t, Count)
}

func TestCountIgnoreCase(t *testing.T) {
	test.CountIgnoreCase(t, CountIgnoreCase)
}

func TestEqualFold(t *testing.T) {
	test.EqualFold(t, EqualFold)
}

func TestReplaceAll(t *testing.T) {
	test.ReplaceAll(t, ReplaceAll)
}

func TestReplaceAllIgnoreCase(t *testing.T) {
	test.ReplaceAllIgnoreCase(t, ReplaceAllIgnoreCase)
}

func TestRemoveAll(t *testing.T) {
	test.RemoveAll(t, RemoveAll)
}

func TestRemoveAllIgnoreCase(t *testing.T) {
	test.RemoveAllIgnoreCase(t, RemoveAllIgnoreCase)
}

func TestSplit(t *testing.T) {
	test.Split(t, Split)
	test.Split(t, SplitCopy)
}

func TestSplitLines(t *testing.T) {
	test.SplitLines(t, SplitLines)
}

func TestJoin(t *testing.T) {
	test.Join(t, Join)
}

func TestTrim(t *testing.T) {
	test.Trim(t, Trim)
	test.Trim(t, TrimCopy)
}

func TestIsTrimmed(t *testing.T) {
	test.IsTrimmed(t, IsTrimmed)
}

func TestToUpper(t *testing.T) {
	test.ToUpper(t, ToUpper)
}

func TestToLower(t *testing.T) {
	test.ToLower(t, ToLower)
}

func sameMemory(a, b string) bool {
	return len(a) > 0 && len(b) > 0 && unsafe.StringData(a) == unsafe.StringData(b)
}

func TestSplitSubstrings(t *testing.T) {
	s := strings.Repeat("ab cd ", 4)
	parts := Split(s, " ")
	if len(parts) != 8 {
		t.Fatalf("Split(%q) = %q", s, parts)
	}
	if !sameMemory(parts[0], s) {
		t.Error("Split: first part is not a substring of the input")
	}
	for i, p := range SplitCopy(s, " ") {
		if p != parts[i] {
			t.Errorf("SplitCopy[%d] = %q; want: %q", i, p, parts[i])
		}
		if sameMemory(p, s[strings.Index(s, p):]) {
			t.Errorf("SplitCopy[%d] shares memory with the input", i)
		}
	}
}

func TestTrimSubstring(t *testing.T) {
	s := "  abc  "
	if got := Trim(s, " "); !sameMemory(got, s[2:]) {
		t.Errorf("Trim(%q) = %q is not a substring of the input", s, got)
	}
	if got := TrimCopy(s, " "); sameMemory(got, s[2:]) {
		t.Error("TrimCopy shares memory with the input")
	}
}

// The input strings are literals, so any write to them would fault.
func TestNoMutation(t *testing.T) {
	const s = "Hello hello HELLO"
	if got := ReplaceAllIgnoreCase(s, "hello", "bye"); got != "bye bye bye" {
		t.Errorf("ReplaceAllIgnoreCase = %q", got)
	}
	if got := RemoveAll(s, "l"); got != "Heo heo HELLO" {
		t.Errorf("RemoveAll = %q", got)
	}
	if got := ToUpper(s); got != "HELLO HELLO HELLO" {
		t.Errorf("ToUpper = %q", got)
	}
	if s != "Hello hello HELLO" {
		t.Fatal("input modified")
	}
}

func BenchmarkFindIgnoreCase(b *testing.B) {
	s := strings.Repeat("a", 1024) + "Hello"
	for i := 0; i < b.N; i++ {
		FindIgnoreCase(s, "HELLO", 0)
	}
}
