// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package fileio

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(ErrDirNotFound, dir)
		}
		return errors.Wrapf(ErrOpenRead, "%s: %v", dir, err)
	}
	if !fi.IsDir() {
		return errors.Wrap(ErrNotDir, dir)
	}
	return nil
}

// isRegular and isDir follow symbolic links.

func isRegular(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func scanFlat(dir string, keep func(string) bool) ([]string, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrOpenRead, "%s: %v", dir, err)
	}
	var paths []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if keep(p) {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// scanTree walks the tree rooted at dir without following links to
// directories.
func scanTree(dir string, keep func(string) bool) ([]string, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(ErrOpenRead, "%s: %v", p, err)
		}
		if p != dir && keep(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

// Files returns the regular files directly in dir, sorted by name.
func Files(dir string) ([]string, error) {
	return scanFlat(dir, isRegular)
}

// Subdirs returns the directories directly in dir, sorted by name.
func Subdirs(dir string) ([]string, error) {
	return scanFlat(dir, isDir)
}

// FilesTree returns every regular file below dir, sorted.
func FilesTree(dir string) ([]string, error) {
	return scanTree(dir, isRegular)
}

// SubdirsTree returns every directory below dir, not including dir, sorted.
func SubdirsTree(dir string) ([]string, error) {
	return scanTree(dir, isDir)
}
