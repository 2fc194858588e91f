// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cli

import (
	"bufio"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/charlievieth/textkit"
)

func (a *app) paths(args []string) ([]string, error) {
	return expandPaths(args, a.cfg.Recursive, a.log)
}

func (a *app) replaceCommand() *cobra.Command {
	var old, new string
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "replace --old OLD --new NEW PATH...",
		Short: "Replace every occurrence of OLD with NEW.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			return byWidth(a.settings.width,
				func() error { return runReplace[byte](a, paths, old, new, inPlace) },
				func() error { return runReplace[rune](a, paths, old, new, inPlace) },
				func() error { return runReplace[uint16](a, paths, old, new, inPlace) },
				func() error { return runReplace[uint32](a, paths, old, new, inPlace) },
			)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&old, "old", "", "Text to replace.")
	flags.StringVar(&new, "new", "", "Replacement text.")
	flags.BoolVar(&inPlace, "in-place", false, "Write the result back to each file.")
	cmd.MarkFlagRequired("old")
	return cmd
}

func runReplace[T textkit.Unit](a *app, paths []string, old, new string, inPlace bool) error {
	f := finder[T](a)
	o, n := textkit.Encode[T](old), textkit.Encode[T](new)
	return processFiles(a, paths, func(path string, buf []T) error {
		out := textkit.ReplaceAllInPlaceWith(buf, o, n, f)
		return emit(a.stdout, path, out, inPlace)
	})
}

func (a *app) removeCommand() *cobra.Command {
	var old string
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "remove --old OLD PATH...",
		Short: "Remove every occurrence of OLD.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			return byWidth(a.settings.width,
				func() error { return runReplace[byte](a, paths, old, "", inPlace) },
				func() error { return runReplace[rune](a, paths, old, "", inPlace) },
				func() error { return runReplace[uint16](a, paths, old, "", inPlace) },
				func() error { return runReplace[uint32](a, paths, old, "", inPlace) },
			)
		},
	}
	cmd.Flags().StringVar(&old, "old", "", "Text to remove.")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Write the result back to each file.")
	cmd.MarkFlagRequired("old")
	return cmd
}

func (a *app) findCommand() *cobra.Command {
	var needle string
	cmd := &cobra.Command{
		Use:   "find --needle NEEDLE PATH...",
		Short: "Print the unit offset of every occurrence of NEEDLE.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if needle == "" {
				return errors.New("needle must not be empty")
			}
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(a.stdout)
			defer w.Flush()
			total := 0
			err = byWidth(a.settings.width,
				func() error { return runFind[byte](a, w, paths, needle, &total) },
				func() error { return runFind[rune](a, w, paths, needle, &total) },
				func() error { return runFind[uint16](a, w, paths, needle, &total) },
				func() error { return runFind[uint32](a, w, paths, needle, &total) },
			)
			fmt.Fprintf(w, "%d matches\n", total)
			return err
		},
	}
	cmd.Flags().StringVar(&needle, "needle", "", "Text to search for.")
	cmd.MarkFlagRequired("needle")
	return cmd
}

func runFind[T textkit.Unit](a *app, w *bufio.Writer, paths []string, needle string, total *int) error {
	f := finder[T](a)
	sep := textkit.Encode[T](needle)
	return processFiles(a, paths, func(path string, buf []T) error {
		for i := f.Find(buf, sep, 0); i != textkit.NotFound; i = f.Find(buf, sep, i+len(sep)) {
			fmt.Fprintf(w, "%s:%d\n", path, i)
			*total++
		}
		return nil
	})
}

func (a *app) splitCommand() *cobra.Command {
	var delims string
	cmd := &cobra.Command{
		Use:   "split --delims DELIMS PATH...",
		Short: "Print the parts separated by runs of DELIMS, one per line.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(a.stdout)
			defer w.Flush()
			return byWidth(a.settings.width,
				func() error { return runSplit[byte](a, w, paths, delims) },
				func() error { return runSplit[rune](a, w, paths, delims) },
				func() error { return runSplit[uint16](a, w, paths, delims) },
				func() error { return runSplit[uint32](a, w, paths, delims) },
			)
		},
	}
	cmd.Flags().StringVar(&delims, "delims", "", "Delimiter units.")
	cmd.MarkFlagRequired("delims")
	return cmd
}

// Parts are printed as UTF-8 whatever the input width.
func runSplit[T textkit.Unit](a *app, w *bufio.Writer, paths []string, delims string) error {
	d := textkit.Encode[T](delims)
	return processFiles(a, paths, func(path string, buf []T) error {
		for _, part := range textkit.Split(buf, d) {
			w.WriteString(textkit.Decode(part))
			w.WriteByte('\n')
		}
		return nil
	})
}

func (a *app) trimCommand() *cobra.Command {
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "trim [--set SET] PATH...",
		Short: "Remove leading and trailing units in SET.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := a.cfg.TrimSet
			if cmd.Flags().Changed("set") {
				set, _ = cmd.Flags().GetString("set")
			}
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			return byWidth(a.settings.width,
				func() error { return runTrim[byte](a, paths, set, inPlace) },
				func() error { return runTrim[rune](a, paths, set, inPlace) },
				func() error { return runTrim[uint16](a, paths, set, inPlace) },
				func() error { return runTrim[uint32](a, paths, set, inPlace) },
			)
		},
	}
	cmd.Flags().String("set", "", `Units to trim (default tab, CR, LF and space or "trim-set" from the config).`)
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Write the result back to each file.")
	return cmd
}

func runTrim[T textkit.Unit](a *app, paths []string, set string, inPlace bool) error {
	s := textkit.Encode[T](set)
	return processFiles(a, paths, func(path string, buf []T) error {
		return emit(a.stdout, path, textkit.TrimInPlace(buf, s), inPlace)
	})
}
