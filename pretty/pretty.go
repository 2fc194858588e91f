// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package pretty renders arbitrary values as short human readable strings.
//
// Values are classified into a small closed set of kinds and each kind has
// one rendering. Composite values render their elements separated by
// spaces inside brackets:
//
//	String([]int{31, 41, 51})                   // "[31 41 51]"
//	String(map[int]string{21: "a", 33: "b"})    // "[[21 a] [33 b]]"
//	String(struct{ X, Y int }{6, 7})            // "[6 7]"
package pretty

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind is the rendering class of a value.
type Kind uint8

const (
	Nil       Kind = iota // untyped nil
	Primitive             // strings, booleans and numbers
	Error                 // error values, rendered with their message
	Stringer              // fmt.Stringer values
	Pointer               // pointers and interfaces, rendered as their target
	Sequence              // slices, arrays and maps
	Tuple                 // structs, rendered field by field
	Fallback              // channels, functions and unsafe pointers
)

var kindNames = [...]string{
	Nil:       "Nil",
	Primitive: "Primitive",
	Error:     "Error",
	Stringer:  "Stringer",
	Pointer:   "Pointer",
	Sequence:  "Sequence",
	Tuple:     "Tuple",
	Fallback:  "Fallback",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// maxDepth bounds the nesting rendered for self referencing values.
const maxDepth = 32

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// KindOf returns the Kind String uses to render v.
func KindOf(v any) Kind {
	if v == nil {
		return Nil
	}
	return kindOf(reflect.ValueOf(v))
}

func kindOf(rv reflect.Value) Kind {
	if rv.CanInterface() {
		switch t := rv.Type(); {
		case t.Implements(errorType):
			if !isNilRef(rv) {
				return Error
			}
		case t.Implements(stringerType):
			if !isNilRef(rv) {
				return Stringer
			}
		}
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Primitive
	case reflect.Pointer, reflect.Interface:
		return Pointer
	case reflect.Slice, reflect.Array, reflect.Map:
		return Sequence
	case reflect.Struct:
		return Tuple
	}
	return Fallback
}

// isNilRef reports whether rv is a nil pointer or interface. Methods are
// not called on those.
func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// String returns the rendering of v.
func String(v any) string {
	if v == nil {
		return "nil"
	}
	var b strings.Builder
	render(&b, reflect.ValueOf(v), 0)
	return b.String()
}

func render(b *strings.Builder, rv reflect.Value, depth int) {
	if depth > maxDepth {
		b.WriteString("...")
		return
	}
	switch kindOf(rv) {
	case Error:
		b.WriteString(rv.Interface().(error).Error())
	case Stringer:
		b.WriteString(rv.Interface().(fmt.Stringer).String())
	case Primitive:
		b.WriteString(primitive(rv))
	case Pointer:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		render(b, rv.Elem(), depth+1)
	case Sequence:
		if rv.Kind() == reflect.Map {
			renderMap(b, rv, depth)
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			render(b, rv.Index(i), depth+1)
		}
		b.WriteByte(']')
	case Tuple:
		b.WriteByte('[')
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			render(b, rv.Field(i), depth+1)
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%s(%#x)", rv.Type(), rv.Pointer())
	}
}

func primitive(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits())
	}
	panic("pretty: not a primitive: " + rv.Type().String())
}

func renderMap(b *strings.Builder, rv reflect.Value, depth int) {
	type entry struct{ key, val reflect.Value }
	entries := make([]entry, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		entries = append(entries, entry{it.Key(), it.Value()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return lessValue(entries[i].key, entries[j].key)
	})
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		render(b, e.key, depth+1)
		b.WriteByte(' ')
		render(b, e.val, depth+1)
		b.WriteByte(']')
	}
	b.WriteByte(']')
}

// lessValue orders map keys of the same type: numbers and strings by
// value with NaN first, false before true, anything else by its rendering.
func lessValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		fa, fb := a.Float(), b.Float()
		return fa < fb || math.IsNaN(fa) && !math.IsNaN(fb)
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	var sa, sb strings.Builder
	render(&sa, a, 0)
	render(&sb, b, 0)
	return sa.String() < sb.String()
}

// Map renders m with its keys in ascending order.
func Map[K constraints.Ordered, V any](m map[K]V) string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		render(&b, reflect.ValueOf(k), 1)
		b.WriteByte(' ')
		b.WriteString(String(m[k]))
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// TypeName returns the name of type T.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// HeldTypeName returns the name of the dynamic type of v, or "nil" when v
// holds no value.
func HeldTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
