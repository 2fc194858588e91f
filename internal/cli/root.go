// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package cli implements the textkit command line tool.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	stdout   io.Writer
	stderr   io.Writer
	cfgFile  string
	cmdName  string
	vpr      *viper.Viper
	cfg      *Config
	settings settings
	log      *logrus.Logger
}

// NewRootCommand returns the textkit command writing results to stdout
// and logs and progress to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    newLogger(stderr),
	}
	root := &cobra.Command{
		Use:   appName,
		Short: "Search, replace, split and trim text files of any code unit width.",
		Long: "textkit processes files as sequences of 8, 16 or 32 bit code units.\n" +
			"Multi-byte files are read in native byte order.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	initGlobalFlags(root.PersistentFlags(), &a.cfgFile)

	root.AddCommand(
		a.replaceCommand(),
		a.removeCommand(),
		a.findCommand(),
		a.splitCommand(),
		a.trimCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	vpr, cfg, err := loadConfig(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	s, err := cfg.validate()
	if err != nil {
		return err
	}
	a.vpr, a.cfg, a.settings = vpr, cfg, s
	a.cmdName = cmd.Name()
	a.log.SetLevel(s.level)
	if f := vpr.ConfigFileUsed(); f != "" {
		a.log.WithField("file", f).Debug("loaded config")
	}
	a.log.WithFields(logrus.Fields{
		"width":       s.width,
		"ignore-case": cfg.IgnoreCase,
		"locale":      s.locale,
	}).Debug("config")
	return nil
}

// Execute runs the command line tool and returns its exit code.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		log := newLogger(os.Stderr)
		if errors.Is(err, ErrFailed) {
			log.Error(err)
			return 1
		}
		log.Error(errors.WithMessage(err, "unable to execute "+appName))
		return 2
	}
	return 0
}
