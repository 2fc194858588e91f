// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func validLogLevels() []string {
	var logLevels []string
	for _, l := range logrus.AllLevels {
		logLevels = append(logLevels, l.String())
	}
	return logLevels
}
