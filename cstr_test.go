// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build cgo
// +build cgo

package textkit

import (
	"strings"
	"testing"

	"github.com/charlievieth/textkit/internal/cstr"
	"github.com/charlievieth/textkit/internal/test"
)

// The narrow case-insensitive search matches strcasestr(3) in the "C" locale
// for every non-empty needle.
func TestFindIgnoreCaseReference(t *testing.T) {
	for _, tt := range test.IndexIgnoreCaseTests {
		if tt.Sep == "" || strings.IndexByte(tt.S, 0) >= 0 {
			continue
		}
		want := cstr.Strcasestr(tt.S, tt.Sep, tt.Offset)
		if got := FindIgnoreCase([]byte(tt.S), []byte(tt.Sep), tt.Offset); got != want {
			t.Errorf("FindIgnoreCase(%q, %q, %d) = %d; strcasestr: %d", tt.S, tt.Sep, tt.Offset, got, want)
		}
	}
}

func TestFindIgnoreCaseReferenceRandom(t *testing.T) {
	test.RunRandom(t, func(r *test.Rand) {
		s := r.Text(test.AlphabetASCII, 48)
		sep := r.ChangeCase(r.Needle(s, test.AlphabetASCII, 5))
		if sep == "" {
			return
		}
		want := cstr.Strcasestr(s, sep, 0)
		if got := FindIgnoreCase([]byte(s), []byte(sep), 0); got != want {
			r.Errorf("FindIgnoreCase(%q, %q, 0) = %d; strcasestr: %d", s, sep, got, want)
		}
	})
}

func TestASCIIFolderReference(t *testing.T) {
	f := ASCII[byte]{}
	for i := 0; i < 256; i++ {
		c := byte(i)
		if got, want := f.Lower(c), cstr.ToLower(c); got != want {
			t.Errorf("Lower(%#02x) = %#02x; tolower: %#02x", c, got, want)
		}
		if got, want := f.Upper(c), cstr.ToUpper(c); got != want {
			t.Errorf("Upper(%#02x) = %#02x; toupper: %#02x", c, got, want)
		}
	}
}

func TestEqualFoldReference(t *testing.T) {
	for _, tt := range test.EqualFoldTests {
		want := cstr.Strcasecmp(tt.S, tt.T) == 0
		if got := EqualFold([]byte(tt.S), []byte(tt.T)); got != want {
			t.Errorf("EqualFold(%q, %q) = %t; strcasecmp: %t", tt.S, tt.T, got, want)
		}
	}
}
