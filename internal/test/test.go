// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package test contains the test tables shared by the textkit packages.
//
// Every runner works on Go strings and UTF-8 byte offsets so the same table
// can drive each code-unit width: callers encode the arguments to the width
// under test and translate positions back to byte offsets.
package test

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

type IndexFunc func(s, substr string, offset int) int

type ContainsFunc func(s, substr string) bool

type CountFunc func(s, substr string) int

type ReplaceFunc func(s, old, new string) string

type RemoveFunc func(s, old string) string

type SplitFunc func(s, delims string) []string

type TrimFunc func(s, set string) string

type IndexTest struct {
	S      string
	Sep    string
	Offset int
	Out    int
}

// IndexTests are the case-sensitive search tests. They match strings.Index
// starting at Offset.
var IndexTests = []IndexTest{
	{"", "", 0, 0},
	{"", "a", 0, -1},
	{"", "foo", 0, -1},
	{"fo", "foo", 0, -1},
	{"foo", "foo", 0, 0},
	{"oofofoofooo", "f", 0, 2},
	{"oofofoofooo", "foo", 0, 4},
	{"barfoobarfoo", "foo", 0, 3},
	{"foo", "", 0, 0},
	{"foo", "o", 0, 1},
	{"abcABCabc", "A", 0, 3},
	{"abcVBCabc", "V", 0, 3},
	// cases with one byte strings
	{"x", "a", 0, -1},
	{"x", "x", 0, 0},
	{"abc", "a", 0, 0},
	{"abc", "b", 0, 1},
	{"abc", "c", 0, 2},
	{"abc", "x", 0, -1},
	// short strings
	{"", "ab", 0, -1},
	{"bc", "ab", 0, -1},
	{"ab", "ab", 0, 0},
	{"xab", "ab", 0, 1},
	{"xab"[:2], "ab", 0, -1},
	{"", "abc", 0, -1},
	{"xbc", "abc", 0, -1},
	{"abc", "abc", 0, 0},
	{"xabc", "abc", 0, 1},
	{"xabc"[:3], "abc", 0, -1},
	{"xabxc", "abc", 0, -1},
	{"", "abcd", 0, -1},
	{"xbcd", "abcd", 0, -1},
	{"abcd", "abcd", 0, 0},
	{"xabcd", "abcd", 0, 1},
	{"xyabcd"[:5], "abcd", 0, -1},
	{"xbcqq", "abcqq", 0, -1},
	{"abcqq", "abcqq", 0, 0},
	{"xabcqq", "abcqq", 0, 1},
	{"xyabcqq"[:6], "abcqq", 0, -1},
	{"xabxcqq", "abcqq", 0, -1},
	{"xabcqxq", "abcqq", 0, -1},
	{"", "01234567", 0, -1},
	{"32145678", "01234567", 0, -1},
	{"01234567", "01234567", 0, 0},
	{"x01234567", "01234567", 0, 1},
	{"x0123456x01234567", "01234567", 0, 9},
	{"xx01234567"[:9], "01234567", 0, -1},
	{"", "0123456789", 0, -1},
	{"3214567844", "0123456789", 0, -1},
	{"0123456789", "0123456789", 0, 0},
	{"x0123456789", "0123456789", 0, 1},
	{"x012345678x0123456789", "0123456789", 0, 11},
	{"xyz0123456789"[:12], "0123456789", 0, -1},
	{"x01234567x89", "0123456789", 0, -1},
	{"", "0123456789012345", 0, -1},
	{"3214567889012345", "0123456789012345", 0, -1},
	{"0123456789012345", "0123456789012345", 0, 0},
	{"x0123456789012345", "0123456789012345", 0, 1},
	{"x012345678901234x0123456789012345", "0123456789012345", 0, 17},
	{"", "01234567890123456789", 0, -1},
	{"32145678890123456789", "01234567890123456789", 0, -1},
	{"01234567890123456789", "01234567890123456789", 0, 0},
	{"x01234567890123456789", "01234567890123456789", 0, 1},
	{"x0123456789012345678x01234567890123456789", "01234567890123456789", 0, 21},
	{"xyz01234567890123456789"[:22], "01234567890123456789", 0, -1},
	{"x012345678901234567890123456789x0123456789012345678901234567890", "0123456789012345678901234567890", 0, 32},
	{"xxxxxx012345678901234567890123456789012345678901234567890123456789012", "012345678901234567890123456789012345678901234567890123456789012", 0, 6},
	{"xx012345678901234567890123456789012345678901234567890123456789012", "0123456789012345678901234567890123456xxx", 0, -1},
	{"xx0123456789012345678901234567890123456789012345678901234567890120123456789012345678901234567890123456xxx", "0123456789012345678901234567890123456xxx", 0, 65},

	// fallback to Rabin-Karp
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "oy", 0, 22},
	{"oxoxoxoxoxoxoxoxoxoxoxox", "oy", 0, -1},
	{strings.Repeat("ox", 64) + "yox", "oα" + strings.Repeat("ox", 16), 0, -1},
	{strings.Repeat("ox", 64) + "oα" + strings.Repeat("ox", 16), "oα" + strings.Repeat("ox", 16), 0, 128},

	// substr longer than s
	{"aa", "aaa", 0, -1},
	{"aa", "aaaa", 0, -1},

	// Unicode strings
	{"oxoxoxoxoxoxoxoxoxoxoxoyoα", "oα", 0, 24},
	{"oxoxoxoxoxoxoxoxoxoxoxα", "α", 0, 22},
	{"abc☻", "abc☻", 0, 0},
	{"abc☻", "ABC☻", 0, -1},
	{"123abc☻", "abc☻", 0, 3},
	{"日本語日本語", "語", 0, 6},

	// offsets
	{"foo", "", 3, 3},
	{"foo", "", 4, -1},
	{"foo", "o", 2, 2},
	{"foo", "o", 3, -1},
	{"foofoo", "foo", 1, 3},
	{"foofoo", "foo", 3, 3},
	{"foofoo", "foo", 4, -1},
	{"aa01234abc", "abc", 7, 7},
	{"aa01234abc", "abc", 8, -1},
	{"aa01234abc", "abc", 100, -1},
	{"αβαβ", "αβ", 2, 4},
	{"aaaa", "aa", 1, 1},
}

// IndexIgnoreCaseTests only fold ASCII letters so they hold for every
// width and folder.
var IndexIgnoreCaseTests = []IndexTest{
	{"", "", 0, -1},
	{"abc", "", 0, -1},
	{"", "a", 0, -1},
	{"", "foo", 0, -1},
	{"fo", "foo", 0, -1},
	{"foo", "foo", 0, 0},
	{"FOO", "foo", 0, 0},
	{"foo", "FOO", 0, 0},
	{"oofofoofooo", "F", 0, 2},
	{"oofofoofooo", "FoO", 0, 4},
	{"barfoobarfoo", "FOO", 0, 3},
	{"abcABCabc", "A", 0, 0},
	{"abcVBCabc", "v", 0, 3},
	{"x", "X", 0, 0},
	{"abc", "C", 0, 2},
	{"abc", "x", 0, -1},
	{"xAB", "ab", 0, 1},
	{"xabc"[:3], "ABC", 0, -1},
	{"xabxc", "abc", 0, -1},
	{"XABCD", "abcd", 0, 1},
	{"xabcqxq", "ABCQQ", 0, -1},
	{"x0123456x01234567", "01234567", 0, 9},
	{"@[`{", "`", 0, 2},
	{"@[`{", "@", 0, 0},
	{"[", "{", 0, -1},
	{"`", "@", 0, -1},
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "OY", 0, 22},
	{"OXOXOXOXOXOXOXOXOXOXOXOX", "oy", 0, -1},
	{strings.Repeat("Ox", 64) + "oY", "oy", 0, 128},
	{strings.Repeat("a", 64) + "aB", "AB", 0, 64},
	{strings.Repeat("aA", 64) + "b", strings.Repeat("a", 32) + "B", 0, 96},
	{"abc☻", "ABC☻", 0, 0},
	{"123abc☻", "ABC☻", 0, 3},
	{"ABCCBA", "cba", 0, 3},
	{"ABCCBA", "abc", 0, 0},
	{"ABCCBA", "cc", 0, 2},
	{"ABCCBA", "b", 0, 1},

	// offsets
	{"aa01234abc", "aBc", 0, 7},
	{"aa01234abc", "aBc", 7, 7},
	{"aa01234abc", "aBc", 8, -1},
	{"aa01234abc", "aA", 0, 0},
	{"aa01234abc", "aA", 1, -1},
	{"aa01234abc", "3", 5, 5},
	{"aa01234abc", "3", 6, -1},
	{"aa01234abc", "3", 100, -1},
	{"fooFOO", "foo", 1, 3},
	{"AAAA", "aa", 1, 1},
}

// IndexIgnoreCaseUnicodeTests fold with the simple Unicode mapping, which
// wide units use by default. Every rune is in the BMP.
var IndexIgnoreCaseUnicodeTests = []IndexTest{
	{"xΑΒΔ", "αβδ", 0, 1},
	{"αβδ", "ΑΒΔ", 0, 0},
	{"abcΣ@", "σ@", 0, 3},
	{"ΣΣΣ", "σσ", 2, 2},
	{"日本語", "語", 0, 6},
	{"ÀÉÎ", "àéî", 0, 0},
	{"Привет", "пРИВЕТ", 0, 0},
	{"abc☻", "ABC☻", 0, 0},

	// The Kelvin sign lower cases to 'k' but is neither case of 'k'.
	{"a\u212a", "ak", 0, 0},
	{"\u212a", "k", 0, -1},
	{"ak", "a\u212a", 0, 0},

	// The long s is its own lower case.
	{"aſ", "as", 0, -1},

	// Dotted capital I lower cases to 'i'.
	{"İ", "i", 0, -1},
	{"aİ", "ai", 0, 0},
}

// IndexIgnoreCaseAstralTests require a unit large enough to hold a code
// point outside the BMP.
var IndexIgnoreCaseAstralTests = []IndexTest{
	{"x\U00010400", "\U00010428", 0, 1},
	{"\U00010428\U00010429", "\U00010400\U00010401", 0, 0},
	{"в\U0001E900", "В\U0001E922", 0, 0},
}

func runIndexTests(t *testing.T, fn IndexFunc, funcName string, tests []IndexTest) {
	t.Helper()
	fails := 0
	for _, test := range tests {
		got := fn(test.S, test.Sep, test.Offset)
		if got != test.Out {
			fails++
			t.Errorf("%s\n"+
				"S:      %q\n"+
				"Sep:    %q\n"+
				"Offset: %d\n"+
				"Got:    %d\n"+
				"Want:   %d\n"+
				"\n"+
				"S:      %s\n"+
				"Sep:    %s\n",
				funcName,
				test.S, test.Sep, test.Offset, got, test.Out,
				strconv.QuoteToASCII(test.S),
				strconv.QuoteToASCII(test.Sep),
			)
		}
	}
	if t.Failed() && testing.Verbose() {
		t.Logf("%s: failed %d out of %d tests", funcName, fails, len(tests))
	}
}

func Index(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "Index", IndexTests)
}

// IndexUnicode rewrites the ASCII tests with multi-byte runes so that
// positions no longer equal unit counts.
func IndexUnicode(t *testing.T, fn IndexFunc) {
	type Replacement struct {
		old, new string
	}
	replacements := [][]Replacement{
		{{"a", "α"}, {"A", "Α"}, {"1", "Δ"}},
		{{"a", "α"}, {"A", "Α"}, {"1", "日a本b語ç日ð本Ê語þ日¥本¼語i日©"}},
		{{"1", "ⱭⱭⱭⱭⱭ"}},
		{{"1", "ɐɐɐɐɐ"}},
	}
	for _, reps := range replacements {
		t.Run("", func(t *testing.T) {
			r := func(s string) string {
				for _, rr := range reps {
					o := strings.ReplaceAll(s, rr.old, rr.new)
					if !utf8.ValidString(o) {
						t.Fatalf("Invalid transformation %q => %q", s, o)
					}
					s = o
				}
				return s
			}

			tests := make([]IndexTest, 0, len(IndexTests))
			for _, test := range IndexTests {
				if test.Offset != 0 || !utf8.ValidString(test.S) {
					continue
				}
				if test.Out > 0 {
					test.Out = len(r(test.S[:test.Out]))
				}
				test.S = r(test.S)
				test.Sep = r(test.Sep)
				tests = append(tests, test)
			}
			runIndexTests(t, fn, "Index", tests)
		})
	}
}

// IndexNumeric tests the boundaries around the brute force cutover.
func IndexNumeric(t *testing.T, fn IndexFunc) {
	ns := strings.Repeat("1234", 128/4)
	hs := strings.Repeat(" ", 256)
	tests := make([]IndexTest, 0, 1024)
	for _, i := range []int{1, 4, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 128} {
		for j := 0; j <= len(hs); j += 3 {
			sep := ns[:i]
			tests = append(tests, IndexTest{S: hs[:j] + sep, Sep: sep, Out: j})
			if len(sep) > 1 {
				tests = append(tests, IndexTest{
					S:   hs[:j] + sep[:len(sep)-1] + " ",
					Sep: sep,
					Out: -1,
				})
			}
		}
	}
	runIndexTests(t, fn, "Index", tests)
}

func IndexIgnoreCase(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "IndexIgnoreCase", IndexIgnoreCaseTests)

	// Every offset, past the end included, agrees with a case-sensitive
	// search of the lower cased input.
	const s = "aa01234abc"
	for _, sep := range []string{"aBc", "aA", "3"} {
		for i := 0; i < 100; i++ {
			want := strings.Index(s[min(i, len(s)):], strings.ToLower(sep))
			if want >= 0 {
				want += i
			}
			if i > len(s) {
				want = -1
			}
			if got := fn(s, sep, i); got != want {
				t.Errorf("IndexIgnoreCase(%q, %q, %d) = %d; want: %d", s, sep, i, got, want)
			}
		}
	}
}

func IndexIgnoreCaseUnicode(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "IndexIgnoreCase", IndexIgnoreCaseUnicodeTests)
}

func IndexIgnoreCaseAstral(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "IndexIgnoreCase", IndexIgnoreCaseAstralTests)
}

func Contains(t *testing.T, fn ContainsFunc) {
	for _, test := range IndexTests {
		if test.Offset != 0 {
			continue
		}
		got := fn(test.S, test.Sep)
		want := test.Out >= 0
		if got != want {
			t.Errorf("Contains(%q, %q) = %t; want: %t", test.S, test.Sep, got, want)
		}
	}
}

func ContainsIgnoreCase(t *testing.T, fn ContainsFunc) {
	for _, test := range IndexIgnoreCaseTests {
		if test.Offset != 0 {
			continue
		}
		got := fn(test.S, test.Sep)
		want := test.Out >= 0
		if got != want {
			t.Errorf("ContainsIgnoreCase(%q, %q) = %t; want: %t", test.S, test.Sep, got, want)
		}
	}
}

type CountTest struct {
	S, Sep string
	Num    int
}

var CountTests = []CountTest{
	{"", "", 0},
	{"", "notempty", 0},
	{"notempty", "", 0},
	{"smaller", "not smaller", 0},
	{"12345678987654321", "6", 2},
	{"611161116", "6", 3},
	{"notequal", "NotEqual", 0},
	{"equal", "equal", 1},
	{"abc1231231123q", "123", 3},
	{"11111", "11", 2},
	{"aaaa", "aa", 2},
	{"aAaAa", "a", 3},
	{"αβαβα", "α", 3},
}

var CountIgnoreCaseTests = []CountTest{
	{"", "", 0},
	{"notempty", "", 0},
	{"notequal", "NotEqual", 1},
	{"aAaAa", "a", 5},
	{"aAaAa", "A", 5},
	{"xAbBax", "B", 2},
	{"a.b.C.", ".", 3},
	{"AAAA", "aa", 2},
	{"abc1231231123q", "123", 3},
	{"FooBarFOObarfoo", "foo", 3},
}

func Count(t *testing.T, fn CountFunc) {
	for _, tt := range CountTests {
		if num := fn(tt.S, tt.Sep); num != tt.Num {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.S, tt.Sep, num, tt.Num)
		}
	}
}

func CountIgnoreCase(t *testing.T, fn CountFunc) {
	for _, tt := range CountIgnoreCaseTests {
		if num := fn(tt.S, tt.Sep); num != tt.Num {
			t.Errorf("CountIgnoreCase(%q, %q) = %d, want %d", tt.S, tt.Sep, num, tt.Num)
		}
	}
}

type ReplaceTest struct {
	In, Old, New, Out string
}

// ReplaceTests agree with strings.ReplaceAll whenever Old is not empty.
var ReplaceTests = []ReplaceTest{
	{"hello", "l", "L", "heLLo"},
	{"hello", "x", "X", "hello"},
	{"", "x", "X", ""},
	{"radar", "r", "<r>", "<r>ada<r>"},
	{"banana", "a", "1", "b1n1n1"},
	{"banana", "a", "<>", "b<>n<>n<>"},
	{"banana", "an", "<>", "b<><>a"},
	{"banana", "ana", "<>", "b<>na"},
	{"banana", "b", "", "anana"},
	{"banana", "banana", "x", "x"},
	{"banana", "banana", "", ""},
	{"banana", "bananas", "x", "banana"},
	{"aaaa", "aa", "b", "bb"},
	{"aaaa", "aa", "aa", "aaaa"},
	{"aaaaa", "aa", "bbb", "bbbbbba"},
	{"abcabcb", "b", "dd", "addcaddcdd"},
	{"abcabcb", "b", "", "acac"},
	{"aa bbb aa", "aa", "xxxx", "xxxx bbb xxxx"},
	{"aa bbb aa", "aa", "x", "x bbb x"},
	{"aa bbb aa", "bbb", "", "aa  aa"},
	{" aa bbb aa ", "aa", "xxxx", " xxxx bbb xxxx "},
	{" aa bbb aa ", "aa", "bb", " bb bbb bb "},
	{"aa", "aa", "bb", "bb"},
	{"☺☻☹", "☻", "x", "☺x☹"},
	{"日本語日本語", "本", "hon", "日hon語日hon語"},

	// empty needle
	{"hello", "", "x", "hello"},
	{"", "", "x", ""},
}

var ReplaceIgnoreCaseTests = []ReplaceTest{
	{"ABC", "b", "", "AC"},
	{"ABC", "b", "x", "AxC"},
	{"ABC", "b", "xyz", "AxyzC"},
	{"aBcAbCb", "B", "dd", "addcAddCdd"},
	{"Hello HELLO hello", "hello", "bye", "bye bye bye"},
	{"Hello HELLO hello", "hello", "x", "x x x"},
	{"Hello HELLO hello", "hello", "HELLO", "HELLO HELLO HELLO"},
	{"AAAA", "aa", "b", "bb"},
	{"abc", "", "x", "abc"},
	{"abc", "ABCD", "x", "abc"},
	{"ABC", "abc", "", ""},
}

type RemoveTest struct {
	In, Old, Out string
}

var RemoveTests = []RemoveTest{
	{"abcabcb", "b", "acac"},
	{"aa bbb aa", "bbb", "aa  aa"},
	{"aa bbb aa", "aa", " bbb "},
	{"aaaa", "aa", ""},
	{"aaaaa", "aa", "a"},
	{"banana", "banana", ""},
	{"banana", "", "banana"},
	{"banana", "bananas", "banana"},
	{"", "a", ""},
	{"", "", ""},
	{"☺☻☹", "☻", "☺☹"},
}

var RemoveIgnoreCaseTests = []RemoveTest{
	{"ABC", "b", "AC"},
	{"aBcAbCb", "B", "acAC"},
	{"Hello HELLO hello", "HELLO", "  "},
	{"banana", "", "banana"},
	{"", "a", ""},
}

func runReplaceTests(t *testing.T, fn ReplaceFunc, funcName string, tests []ReplaceTest) {
	t.Helper()
	for _, tt := range tests {
		if got := fn(tt.In, tt.Old, tt.New); got != tt.Out {
			t.Errorf("%s(%q, %q, %q) = %q; want: %q", funcName, tt.In, tt.Old, tt.New, got, tt.Out)
		}
	}
}

func ReplaceAll(t *testing.T, fn ReplaceFunc) {
	runReplaceTests(t, fn, "ReplaceAll", ReplaceTests)
}

func ReplaceAllIgnoreCase(t *testing.T, fn ReplaceFunc) {
	runReplaceTests(t, fn, "ReplaceAllIgnoreCase", ReplaceIgnoreCaseTests)
}

func runRemoveTests(t *testing.T, fn RemoveFunc, funcName string, tests []RemoveTest) {
	t.Helper()
	for _, tt := range tests {
		if got := fn(tt.In, tt.Old); got != tt.Out {
			t.Errorf("%s(%q, %q) = %q; want: %q", funcName, tt.In, tt.Old, got, tt.Out)
		}
	}
}

func RemoveAll(t *testing.T, fn RemoveFunc) {
	runRemoveTests(t, fn, "RemoveAll", RemoveTests)
}

func RemoveAllIgnoreCase(t *testing.T, fn RemoveFunc) {
	runRemoveTests(t, fn, "RemoveAllIgnoreCase", RemoveIgnoreCaseTests)
}

type SplitTest struct {
	S, Delims string
	Out       []string
}

var SplitTests = []SplitTest{
	{"", "", nil},
	{"", " ", nil},
	{"abc", "", []string{"abc"}},
	{"xxxyxyxy", "xy", nil},
	{"a b c", " ", []string{"a", "b", "c"}},
	{"   a b c", " ", []string{"a", "b", "c"}},
	{"  a  b c", " ", []string{"a", "b", "c"}},
	{"  a  b    c ", " ", []string{"a", "b", "c"}},
	{"a b c ", " ", []string{"a", "b", "c"}},
	{"a b c  ", " ", []string{"a", "b", "c"}},
	{"a,b;;c", ",;", []string{"a", "b", "c"}},
	{"a,b;;c", ";", []string{"a,b", "c"}},
	{"aaa", "a", nil},
	{"a", "b", []string{"a"}},
	{"日本,語", ",", []string{"日本", "語"}},
}

func Split(t *testing.T, fn SplitFunc) {
	for _, tt := range SplitTests {
		got := fn(tt.S, tt.Delims)
		if len(got) == 0 && len(tt.Out) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.Out) {
			t.Errorf("Split(%q, %q) = %q; want: %q", tt.S, tt.Delims, got, tt.Out)
		}
	}
}

func SplitLines(t *testing.T, fn func(s string) []string) {
	tests := []struct {
		s   string
		out []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"\n\na\n\n\nb\r", []string{"a", "b"}},
		{"\r\n", nil},
	}
	for _, tt := range tests {
		got := fn(tt.s)
		if len(got) == 0 && len(tt.out) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.out) {
			t.Errorf("SplitLines(%q) = %q; want: %q", tt.s, got, tt.out)
		}
	}
}

func Join(t *testing.T, fn func(parts []string, sep string) string) {
	tests := []struct {
		parts []string
		sep   string
		out   string
	}{
		{nil, "-", ""},
		{[]string{"a"}, "-", "a"},
		{[]string{"a", "b", "c"}, "-", "a-b-c"},
		{[]string{"a", "b", "c"}, "", "abc"},
		{[]string{"", ""}, ", ", ", "},
		{[]string{"日", "本"}, "語", "日語本"},
	}
	for _, tt := range tests {
		if got := fn(tt.parts, tt.sep); got != tt.out {
			t.Errorf("Join(%q, %q) = %q; want: %q", tt.parts, tt.sep, got, tt.out)
		}
	}
}

type TrimTest struct {
	S, Set, Out string
}

const DefaultTrimSet = "\t\r\n "

var TrimTests = []TrimTest{
	{"a b c", DefaultTrimSet, "a b c"},
	{"   a b c", DefaultTrimSet, "a b c"},
	{"  a b c", DefaultTrimSet, "a b c"},
	{"  a b c ", DefaultTrimSet, "a b c"},
	{"a b c ", DefaultTrimSet, "a b c"},
	{"a b c  ", DefaultTrimSet, "a b c"},
	{"\t\r\n a b c\n", DefaultTrimSet, "a b c"},
	{"abc", "", "abc"},
	{"", "", ""},
	{"", "abc", ""},
	{" \t ", DefaultTrimSet, ""},
	{"xxabcxx", "x", "abc"},
	{"xyabcyx", "xy", "abc"},
	{"abc", "abc", ""},
	{"☺abc☺", "☺", "abc"},
}

func Trim(t *testing.T, fn TrimFunc) {
	for _, tt := range TrimTests {
		if got := fn(tt.S, tt.Set); got != tt.Out {
			t.Errorf("Trim(%q, %q) = %q; want: %q", tt.S, tt.Set, got, tt.Out)
		}
	}
}

// IsTrimmed checks fn against the trim tests: a string is trimmed exactly
// when trimming it is a no-op.
func IsTrimmed(t *testing.T, fn func(s, set string) bool) {
	for _, tt := range TrimTests {
		if tt.Set == "" {
			continue
		}
		want := tt.S == tt.Out
		if got := fn(tt.S, tt.Set); got != want {
			t.Errorf("IsTrimmed(%q, %q) = %t; want: %t", tt.S, tt.Set, got, want)
		}
	}
	if !fn("", DefaultTrimSet) {
		t.Errorf("IsTrimmed(%q, %q) = false; want: true", "", DefaultTrimSet)
	}
}

type EqualFoldTest struct {
	S, T string
	Out  bool
}

var EqualFoldTests = []EqualFoldTest{
	{"", "", true},
	{"a", "a", true},
	{"a", "A", true},
	{"aaa", "AAA", true},
	{"aAa", "AaA", true},
	{"123abc", "123ABC", true},
	{"a", "ab", false},
	{"abc", "abd", false},
	{"@", "`", false},
	{"[", "{", false},
}

func EqualFold(t *testing.T, fn func(s, t string) bool) {
	for _, tt := range EqualFoldTests {
		if got := fn(tt.S, tt.T); got != tt.Out {
			t.Errorf("EqualFold(%q, %q) = %t; want: %t", tt.S, tt.T, got, tt.Out)
		}
	}
}

func ToUpper(t *testing.T, fn func(s string) string) {
	tests := [][2]string{
		{"", ""},
		{"abc", "ABC"},
		{"AbC123", "ABC123"},
		{"@[`{", "@[`{"},
	}
	for _, tt := range tests {
		if got := fn(tt[0]); got != tt[1] {
			t.Errorf("ToUpper(%q) = %q; want: %q", tt[0], got, tt[1])
		}
	}
}

func ToLower(t *testing.T, fn func(s string) string) {
	tests := [][2]string{
		{"", ""},
		{"ABC", "abc"},
		{"AbC123", "abc123"},
		{"@[`{", "@[`{"},
	}
	for _, tt := range tests {
		if got := fn(tt[0]); got != tt[1] {
			t.Errorf("ToLower(%q) = %q; want: %q", tt[0], got, tt[1])
		}
	}
}
