// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cli

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/textkit"
	"github.com/charlievieth/textkit/fileio"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{LogLevel: "debug", Width: "utf16", Locale: "tr-TR"}
	s, err := cfg.validate()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, s.level)
	assert.Equal(t, textkit.UTF16, s.width)
	base, _ := s.locale.Base()
	assert.Equal(t, "tr", base.String())

	for _, bad := range []Config{
		{LogLevel: "nope", Width: "8"},
		{LogLevel: "info", Width: "7"},
		{LogLevel: "info", Width: "8", Locale: "!!"},
	} {
		_, err := bad.validate()
		assert.Error(t, err, "%+v", bad)
	}
}

func TestConfigFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, configFileName+"."+configFileExt),
		"ignore-case: true\ntrim-set: \"x\"\n")
	path := writeFile(t, filepath.Join(t.TempDir(), "a.txt"), "xxABCxx abc")

	out, _, err := run(t, "find", "--needle", "abc", path)
	require.NoError(t, err)
	assert.Equal(t, path+":2\n"+path+":8\n2 matches\n", out)

	out, _, err = run(t, "trim", path)
	require.NoError(t, err)
	assert.Equal(t, "ABCxx abc", out)

	// Flags take precedence over the file.
	out, _, err = run(t, "--ignore-case=false", "find", "--needle", "abc", path)
	require.NoError(t, err)
	assert.Equal(t, path+":8\n1 matches\n", out)
}

func TestConfigExplicitFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, "custom.yaml"), "width: \"32\"\n")
	path := filepath.Join(dir, "u32.bin")
	require.NoError(t, fileio.WriteFile(path, textkit.Encode[uint32]("ab")))

	out, _, err := run(t, "--config", cfg, "find", "--needle", "b", path)
	require.NoError(t, err)
	assert.Equal(t, path+":1\n1 matches\n", out)

	_, _, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "find", "--needle", "b", path)
	assert.Error(t, err)
}

func TestConfigEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTKIT_IGNORE_CASE", "true")
	path := writeFile(t, filepath.Join(t.TempDir(), "a.txt"), "ABC")

	out, _, err := run(t, "find", "--needle", "abc", path)
	require.NoError(t, err)
	assert.Equal(t, path+":0\n1 matches\n", out)
}
