// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command textkit searches, replaces, splits and trims text files of any
// code unit width.
package main

import (
	"os"

	"github.com/charlievieth/textkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
