// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build cgo
// +build cgo

// Package cstr exposes the C library's case-insensitive routines in the "C"
// locale. They are the reference for the narrow, ASCII folding code paths.
package cstr

/*
#define _GNU_SOURCE
#include <stdlib.h>
#include <stddef.h>
#include <string.h>
#include <strings.h>
#include <ctype.h>
#include <locale.h>

static void cstr_init_locale(void) {
	setlocale(LC_ALL, "C");
}

static ptrdiff_t cstr_strcasestr(const char *haystack, const char *needle) {
	char *res = strcasestr(haystack, needle);
	return res != NULL ? (ptrdiff_t)(res - haystack) : -1;
}
*/
import "C"
import "unsafe"

func init() {
	C.cstr_init_locale()
}

func clamp(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// Strcasecmp compares s and t ignoring case.
func Strcasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := int(C.strcasecmp(cs, ct))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return clamp(ret)
}

// Strcasestr returns the index of the first case-insensitive match of
// needle in haystack at or after offset, or -1. Neither argument may
// contain a NUL byte.
func Strcasestr(haystack, needle string, offset int) int {
	if offset < 0 || offset > len(haystack) {
		return -1
	}
	hp := C.CString(haystack[offset:])
	np := C.CString(needle)
	n := int(C.cstr_strcasestr(hp, np))
	C.free(unsafe.Pointer(hp))
	C.free(unsafe.Pointer(np))
	if n < 0 {
		return -1
	}
	return n + offset
}

// ToLower and ToUpper are the "C" locale tolower(3) and toupper(3).
func ToLower(c byte) byte { return byte(C.tolower(C.int(c))) }

func ToUpper(c byte) byte { return byte(C.toupper(C.int(c))) }
