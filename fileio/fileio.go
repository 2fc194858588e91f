// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package fileio reads and writes whole files as slices of fixed size
// numbers and lists directory contents.
//
// Every error returned matches one of the exported sentinels with
// errors.Is and names the path involved.
package fileio

import (
	"bytes"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrNotRegular  = errors.New("not a regular file")
	ErrTooLarge    = errors.New("file too large")
	ErrMisaligned  = errors.New("file size not a multiple of element size")
	ErrOpenRead    = errors.New("cannot read file")
	ErrOpenWrite   = errors.New("cannot write file")
	ErrDirNotFound = errors.New("directory not found")
	ErrNotDir      = errors.New("not a directory")
)

// Element is a number with a fixed size in memory.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// compareChunkSize is the size of the blocks compared by EqualContent.
const compareChunkSize = 1024

func elemSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// asBytes returns the memory of data as bytes.
func asBytes[T Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*elemSize[T]())
}

// statRegular returns the size of the regular file at path.
func statRegular(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, errors.Wrap(ErrNotFound, path)
		}
		return 0, errors.Wrapf(ErrOpenRead, "%s: %v", path, err)
	}
	if !fi.Mode().IsRegular() {
		return 0, errors.Wrapf(ErrNotRegular, "%s: %s", path, fi.Mode().Type())
	}
	return fi.Size(), nil
}

// ReadFile reads the file at path as a sequence of T in native byte order.
func ReadFile[T Element](path string) ([]T, error) {
	size, err := statRegular(path)
	if err != nil {
		return nil, err
	}
	if uint64(size) > math.MaxInt {
		return nil, errors.Wrapf(ErrTooLarge, "%s: %d bytes", path, size)
	}
	esize := elemSize[T]()
	if size%int64(esize) != 0 {
		return nil, errors.Wrapf(ErrMisaligned, "%s: %d bytes, element size %d", path, size, esize)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpenRead, "%s: %v", path, err)
	}
	defer f.Close()

	data := make([]T, int(size)/esize)
	if _, err := io.ReadFull(f, asBytes(data)); err != nil {
		return nil, errors.Wrapf(ErrOpenRead, "%s: %v", path, err)
	}
	return data, nil
}

// ReadString reads the file at path into a string.
func ReadString(path string) (string, error) {
	b, err := ReadFile[byte](path)
	return string(b), err
}

// WriteFile writes data to the file at path in native byte order,
// replacing any existing file. Missing parent directories are created.
func WriteFile[T Element](path string, data []T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := mkdirParent(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, asBytes(data), 0644); err != nil {
		return errors.Wrapf(ErrOpenWrite, "%s: %v", path, err)
	}
	return nil
}

// mkdirParent creates dir and its parents. The closest existing ancestor
// of dir must be a directory.
func mkdirParent(dir string) error {
	for p := dir; ; p = filepath.Dir(p) {
		fi, err := os.Stat(p)
		if err == nil {
			if !fi.IsDir() {
				return errors.Wrap(ErrNotDir, p)
			}
			break
		}
		if filepath.Dir(p) == p {
			break
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(ErrOpenWrite, "%s: %v", dir, err)
	}
	return nil
}

// Write writes the bytes of data to w in native byte order.
func Write[T Element](w io.Writer, data []T) error {
	_, err := w.Write(asBytes(data))
	return errors.WithStack(err)
}

// WriteString writes s to the file at path.
func WriteString(path, s string) error {
	return WriteFile(path, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// EqualContent reports whether the file at path holds exactly the bytes of
// data. A missing file is not equal.
func EqualContent[T Element](data []T, path string) (bool, error) {
	size, err := statRegular(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	want := asBytes(data)
	if size != int64(len(want)) {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(ErrOpenRead, "%s: %v", path, err)
	}
	defer f.Close()

	buf := make([]byte, min(compareChunkSize, len(want)))
	for off := 0; off < len(want); {
		n := min(len(buf), len(want)-off)
		if _, err := io.ReadFull(f, buf[:n]); err != nil {
			return false, errors.Wrapf(ErrOpenRead, "%s: %v", path, err)
		}
		if !bytes.Equal(buf[:n], want[off:off+n]) {
			return false, nil
		}
		off += n
	}
	return true, nil
}

// EqualString reports whether the file at path holds exactly s.
func EqualString(s, path string) (bool, error) {
	return EqualContent(unsafe.Slice(unsafe.StringData(s), len(s)), path)
}
