// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package test

import (
	"regexp"
	"strings"
	"testing"
)

func stringsIndex(s, sep string, offset int) int {
	if offset < 0 || offset > len(s) {
		return -1
	}
	i := strings.Index(s[offset:], sep)
	if i < 0 {
		return -1
	}
	return i + offset
}

// Make sure the case-sensitive tests agree with the standard library.
func TestIndexStrings(t *testing.T) {
	runIndexTests(t, stringsIndex, "strings.Index", IndexTests)
}

// Reference test using regex: this will identify bad test cases.
func TestIndexIgnoreCaseRegex(t *testing.T) {
	index := func(s, sep string, offset int) int {
		if sep == "" || offset < 0 || offset > len(s) {
			return -1
		}
		i := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(sep)).FindStringIndex(s[offset:])
		if len(i) == 2 {
			return i[0] + offset
		}
		return -1
	}
	runIndexTests(t, index, "Regexp", IndexIgnoreCaseTests)
	runIndexTests(t, index, "Regexp", IndexIgnoreCaseAstralTests)
}

func TestCountStrings(t *testing.T) {
	for _, tt := range CountTests {
		if tt.Sep == "" {
			continue
		}
		if n := strings.Count(tt.S, tt.Sep); n != tt.Num {
			t.Errorf("invalid test: strings.Count(%q, %q) = %d; want: %d", tt.S, tt.Sep, n, tt.Num)
		}
	}
}

func TestReplaceStrings(t *testing.T) {
	for _, tt := range ReplaceTests {
		if tt.Old == "" {
			continue
		}
		if s := strings.ReplaceAll(tt.In, tt.Old, tt.New); s != tt.Out {
			t.Errorf("invalid test: strings.ReplaceAll(%q, %q, %q) = %q; want: %q",
				tt.In, tt.Old, tt.New, s, tt.Out)
		}
	}
	for _, tt := range RemoveTests {
		if tt.Old == "" {
			continue
		}
		if s := strings.ReplaceAll(tt.In, tt.Old, ""); s != tt.Out {
			t.Errorf("invalid test: strings.ReplaceAll(%q, %q, %q) = %q; want: %q",
				tt.In, tt.Old, "", s, tt.Out)
		}
	}
}

func TestReplaceIgnoreCaseRegex(t *testing.T) {
	for _, tt := range ReplaceIgnoreCaseTests {
		if tt.Old == "" || len(tt.Old) > len(tt.In) {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(tt.Old))
		if s := re.ReplaceAllLiteralString(tt.In, tt.New); s != tt.Out {
			t.Errorf("invalid test: Regexp(%q, %q, %q) = %q; want: %q",
				tt.In, tt.Old, tt.New, s, tt.Out)
		}
	}
}

func TestTrimStrings(t *testing.T) {
	for _, tt := range TrimTests {
		if tt.Set == "" {
			continue
		}
		if s := strings.Trim(tt.S, tt.Set); s != tt.Out {
			t.Errorf("invalid test: strings.Trim(%q, %q) = %q; want: %q", tt.S, tt.Set, s, tt.Out)
		}
	}
}

func TestSplitStrings(t *testing.T) {
	for _, tt := range SplitTests {
		if tt.Delims == "" {
			continue
		}
		got := strings.FieldsFunc(tt.S, func(r rune) bool {
			return strings.ContainsRune(tt.Delims, r)
		})
		if len(got) != len(tt.Out) {
			t.Errorf("invalid test: strings.FieldsFunc(%q, %q) = %q; want: %q", tt.S, tt.Delims, got, tt.Out)
		}
	}
}

func TestRandText(t *testing.T) {
	RunRandom(t, func(r *Rand) {
		s := r.Text(AlphabetUnicode, 16)
		if n := len([]rune(s)); n > 16 {
			r.Fatalf("Text returned %d runes; want <= 16", n)
		}
		if sep := r.Needle(s, AlphabetUnicode, 4); len([]rune(sep)) > 4 {
			r.Fatalf("Needle returned %q; want <= 4 runes", sep)
		}
	})
}
