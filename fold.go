// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import (
	"unicode"

	"golang.org/x/text/language"
)

// A Folder maps a single code unit to its lower and upper case forms.
//
// Implementations must be deterministic and must return the unit unchanged
// when it has no mapping.
type Folder[T Unit] interface {
	Lower(c T) T
	Upper(c T) T
}

// ASCII folds only the ASCII letters A-Z and a-z. This is the "C" locale.
type ASCII[T Unit] struct{}

func (ASCII[T]) Lower(c T) T {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (ASCII[T]) Upper(c T) T {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Unicode folds units using the simple Unicode case mapping of the unit
// interpreted as a code point. Mappings that cannot be represented by T are
// ignored. UTF-16 surrogates have no mapping, so only the BMP folds for
// uint16.
type Unicode[T Unit] struct{}

func (Unicode[T]) Lower(c T) T {
	if c < 0x80 {
		return ASCII[T]{}.Lower(c)
	}
	return narrow(c, unicode.ToLower(rune(c)))
}

func (Unicode[T]) Upper(c T) T {
	if c < 0x80 {
		return ASCII[T]{}.Upper(c)
	}
	return narrow(c, unicode.ToUpper(rune(c)))
}

// Special folds units with a language specific mapping such as
// unicode.TurkishCase. Narrow units of 0x80 and above are never folded.
type Special[T Unit] struct {
	Case unicode.SpecialCase
}

func (s Special[T]) Lower(c T) T {
	if c >= 0x80 && WidthOf[T]() == Narrow {
		return c
	}
	return narrow(c, s.Case.ToLower(rune(c)))
}

func (s Special[T]) Upper(c T) T {
	if c >= 0x80 && WidthOf[T]() == Narrow {
		return c
	}
	return narrow(c, s.Case.ToUpper(rune(c)))
}

// narrow returns r as a T or c if r does not fit in T.
func narrow[T Unit](c T, r rune) T {
	if r < 0 || rune(T(r)) != r {
		return c
	}
	return T(r)
}

// DefaultFolder returns the Folder used by the IgnoreCase functions:
// ASCII for narrow units, since folding individual bytes of multi-byte
// UTF-8 sequences would corrupt them, and Unicode for every wider unit.
func DefaultFolder[T Unit]() Folder[T] {
	if WidthOf[T]() == Narrow {
		return ASCII[T]{}
	}
	return Unicode[T]{}
}

// ForLocale returns the Folder for the language tag. Turkish and Azeri use
// the dotted and dotless i mapping, every other language the DefaultFolder.
func ForLocale[T Unit](tag language.Tag) Folder[T] {
	base, _ := tag.Base()
	switch base.String() {
	case "tr":
		return Special[T]{Case: unicode.TurkishCase}
	case "az":
		return Special[T]{Case: unicode.AzeriCase}
	}
	return DefaultFolder[T]()
}

// ParseLocale parses a BCP 47 language tag. The empty string is the
// undetermined language, which selects the DefaultFolder.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}
	return language.Parse(s)
}

// equalFoldUnit reports whether a and b are identical or share the same
// lower case form.
func equalFoldUnit[T Unit](f Folder[T], a, b T) bool {
	return a == b || f.Lower(a) == f.Lower(b)
}

// equalFold reports whether s and t are equal ignoring case. Both must have
// the same length.
func equalFold[T Unit](f Folder[T], s, t []T) bool {
	t = t[:len(s)]
	for i := 0; i < len(s); i++ {
		if !equalFoldUnit(f, s[i], t[i]) {
			return false
		}
	}
	return true
}
