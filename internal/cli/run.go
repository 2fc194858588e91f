// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlievieth/textkit"
	"github.com/charlievieth/textkit/fileio"
)

// ErrFailed is returned when one or more inputs could not be processed.
var ErrFailed = errors.New("some inputs failed")

// A fileFunc processes the contents of one file. The buffer is owned by
// the callee.
type fileFunc[T textkit.Unit] func(path string, buf []T) error

// expandPaths replaces directory arguments with the files they contain.
func expandPaths(args []string, recursive bool, log logrus.FieldLogger) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil || !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}
		var files []string
		if recursive {
			files, err = fileio.FilesTree(arg)
		} else {
			files, err = fileio.Files(arg)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "expanding %s", arg)
		}
		log.WithField("dir", arg).WithField("files", len(files)).Debug("expanded directory")
		paths = append(paths, files...)
	}
	return paths, nil
}

// processFiles reads every path as a sequence of T and calls fn with its
// contents. Inputs that cannot be read are logged and skipped.
func processFiles[T textkit.Unit](a *app, paths []string, fn fileFunc[T]) error {
	bar := newProgress(a.stderr, len(paths), a.cmdName)
	defer bar.Finish()

	failed := 0
	for _, path := range paths {
		log := a.log.WithField("path", path)
		buf, err := fileio.ReadFile[T](path)
		if err != nil {
			log.WithError(err).Warn("skipping input")
			failed++
			bar.Add(1)
			continue
		}
		if err := fn(path, buf); err != nil {
			log.WithError(err).Error("processing failed")
			failed++
		} else {
			log.WithField("units", len(buf)).Debug("processed")
		}
		bar.Add(1)
	}
	if failed > 0 {
		return errors.Wrapf(ErrFailed, "%d of %d", failed, len(paths))
	}
	return nil
}

// emit writes out back to path when inPlace is set and to w otherwise.
func emit[T textkit.Unit](w io.Writer, path string, out []T, inPlace bool) error {
	if inPlace {
		return fileio.WriteFile(path, out)
	}
	return fileio.Write(w, out)
}

// finder returns the Finder selected by the ignore-case and locale
// settings.
func finder[T textkit.Unit](a *app) textkit.Finder[T] {
	if !a.cfg.IgnoreCase {
		return textkit.Exact[T]()
	}
	return textkit.IgnoreCase(textkit.ForLocale[T](a.settings.locale))
}

// byWidth calls the instantiation of a command for the configured width.
func byWidth(w textkit.Width, narrow, wide, utf16, utf32 func() error) error {
	switch w {
	case textkit.Narrow:
		return narrow()
	case textkit.Wide:
		return wide()
	case textkit.UTF16:
		return utf16()
	case textkit.UTF32:
		return utf32()
	}
	return errors.Errorf("invalid width: %s", w)
}
