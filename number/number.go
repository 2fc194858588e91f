// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package number parses, formats and converts numbers of any built-in
// numeric type.
package number

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrBadCast is returned by Cast when a value does not survive the
// conversion.
var ErrBadCast = errors.New("number: bad cast")

func typeOf[T Number]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// plain reports whether s can only be a base 10 number: it is not empty,
// has no leading '+', base prefix or digit separators.
func plain(s string) bool {
	if s == "" || s[0] == '+' || strings.IndexByte(s, '_') >= 0 {
		return false
	}
	s = strings.TrimPrefix(s, "-")
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return false
		}
	}
	return true
}

// Parse parses all of s as a base 10 number of type T. It fails for
// surrounding whitespace, trailing characters or a value out of range for
// T.
func Parse[T Number](s string) (T, bool) {
	if !plain(s) {
		return 0, false
	}
	rt := typeOf[T]()
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(n), true
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(f), true
	}
	panic("number: unsupported type: " + rt.String())
}

// MustParse is like Parse but panics if s is not a valid T.
func MustParse[T Number](s string) T {
	v, ok := Parse[T](s)
	if !ok {
		panic("number: cannot parse " + strconv.Quote(s) + " as " + typeOf[T]().String())
	}
	return v
}

// Format returns the base 10 form of v. Floats use the shortest
// representation that parses back to v.
func Format[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
}

// Cast converts v to D. It returns an error matching ErrBadCast if
// converting the result back to S does not give v. NaN casts to NaN.
func Cast[D, S Number](v S) (D, error) {
	d := D(v)
	if S(d) == v || (v != v && d != d) {
		return d, nil
	}
	return 0, errors.Wrapf(ErrBadCast, "%s %s to %s", Format(v), typeOf[S](), typeOf[D]())
}
