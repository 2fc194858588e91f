// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

// ToLower returns a copy of s with every unit mapped to its lower case form
// by the DefaultFolder.
func ToLower[T Unit](s []T) []T {
	return mapUnits(clone(s), DefaultFolder[T]().Lower)
}

// ToUpper returns a copy of s with every unit mapped to its upper case form
// by the DefaultFolder.
func ToUpper[T Unit](s []T) []T {
	return mapUnits(clone(s), DefaultFolder[T]().Upper)
}

// ToLowerWith is like ToLower but uses f.
func ToLowerWith[T Unit](s []T, f Folder[T]) []T {
	return mapUnits(clone(s), f.Lower)
}

// ToUpperWith is like ToUpper but uses f.
func ToUpperWith[T Unit](s []T, f Folder[T]) []T {
	return mapUnits(clone(s), f.Upper)
}

// ToLowerInPlace lower cases buf and returns it.
func ToLowerInPlace[T Unit](buf []T) []T {
	return mapUnits(buf, DefaultFolder[T]().Lower)
}

// ToUpperInPlace upper cases buf and returns it.
func ToUpperInPlace[T Unit](buf []T) []T {
	return mapUnits(buf, DefaultFolder[T]().Upper)
}

// ToLowerInPlaceWith is like ToLowerInPlace but uses f.
func ToLowerInPlaceWith[T Unit](buf []T, f Folder[T]) []T {
	return mapUnits(buf, f.Lower)
}

// ToUpperInPlaceWith is like ToUpperInPlace but uses f.
func ToUpperInPlaceWith[T Unit](buf []T, f Folder[T]) []T {
	return mapUnits(buf, f.Upper)
}

func mapUnits[T Unit](buf []T, fn func(T) T) []T {
	for i, c := range buf {
		buf[i] = fn(c)
	}
	return buf
}
