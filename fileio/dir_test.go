// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates:
//
//	root/b.txt
//	root/a.txt
//	root/x/
//	root/x/c.txt
//	root/x/y/
//	root/x/y/d.txt
//	root/z/
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "x/c.txt", "x/y/d.txt", "z/.keep"} {
		require.NoError(t, WriteString(filepath.Join(root, filepath.FromSlash(name)), name))
	}
	return root
}

func join(root string, names ...string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(root, filepath.FromSlash(name))
	}
	return paths
}

func TestFiles(t *testing.T) {
	root := makeTree(t)
	files, err := Files(root)
	require.NoError(t, err)
	assert.Equal(t, join(root, "a.txt", "b.txt"), files)

	files, err = Files(filepath.Join(root, "x"))
	require.NoError(t, err)
	assert.Equal(t, join(root, "x/c.txt"), files)
}

func TestSubdirs(t *testing.T) {
	root := makeTree(t)
	dirs, err := Subdirs(root)
	require.NoError(t, err)
	assert.Equal(t, join(root, "x", "z"), dirs)

	dirs, err = Subdirs(filepath.Join(root, "x", "y"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestFilesTree(t *testing.T) {
	root := makeTree(t)
	files, err := FilesTree(root)
	require.NoError(t, err)
	assert.Equal(t, join(root, "a.txt", "b.txt", "x/c.txt", "x/y/d.txt", "z/.keep"), files)
}

func TestSubdirsTree(t *testing.T) {
	root := makeTree(t)
	dirs, err := SubdirsTree(root)
	require.NoError(t, err)
	assert.Equal(t, join(root, "x", "x/y", "z"), dirs)
}

func TestScanErrors(t *testing.T) {
	root := makeTree(t)
	missing := filepath.Join(root, "missing")
	file := filepath.Join(root, "a.txt")

	for name, fn := range map[string]func(string) ([]string, error){
		"Files":       Files,
		"Subdirs":     Subdirs,
		"FilesTree":   FilesTree,
		"SubdirsTree": SubdirsTree,
	} {
		_, err := fn(missing)
		assert.ErrorIs(t, err, ErrDirNotFound, name)
		_, err = fn(file)
		assert.ErrorIs(t, err, ErrNotDir, name)
	}
}
