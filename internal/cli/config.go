// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"github.com/charlievieth/textkit"
)

const (
	appName        = "textkit"
	envPrefix      = "TEXTKIT"
	configFileName = "." + appName
	configFileExt  = "yaml"
)

// Config holds the settings shared by every command. Values come from
// flags, TEXTKIT_* environment variables and the config file in that order
// of precedence.
type Config struct {
	LogLevel   string `mapstructure:"log-level"`
	Width      string `mapstructure:"width"`
	IgnoreCase bool   `mapstructure:"ignore-case"`
	Locale     string `mapstructure:"locale"`
	Recursive  bool   `mapstructure:"recursive"`
	TrimSet    string `mapstructure:"trim-set"`
}

// settings is a validated Config.
type settings struct {
	level  logrus.Level
	width  textkit.Width
	locale language.Tag
}

func (c *Config) validate() (settings, error) {
	var s settings
	var err error
	if s.level, err = logrus.ParseLevel(c.LogLevel); err != nil {
		return s, errors.Wrapf(err, "invalid log-level %q (valid values: %s)",
			c.LogLevel, strings.Join(validLogLevels(), ", "))
	}
	if s.width, err = textkit.ParseWidth(c.Width); err != nil {
		return s, errors.WithMessage(err, "invalid width")
	}
	if s.locale, err = textkit.ParseLocale(c.Locale); err != nil {
		return s, errors.Wrapf(err, "invalid locale %q", c.Locale)
	}
	return s, nil
}

func initGlobalFlags(flags *pflag.FlagSet, cfgFile *string) {
	flags.StringVar(cfgFile, "config", "",
		"config file (default is $HOME/"+configFileName+"."+configFileExt+" or ./"+configFileName+"."+configFileExt+")")
	flags.StringP("log-level", "l", logrus.InfoLevel.String(),
		"How detailed should the log be? Valid values: "+strings.Join(validLogLevels(), ", ")+".")
	flags.StringP("width", "w", textkit.Narrow.String(),
		"Code unit width of the input files: 8, wide, 16 or 32.")
	flags.BoolP("ignore-case", "i", false, "Match without regard to case.")
	flags.String("locale", "", "BCP 47 language tag used for case folding (e.g. tr).")
	flags.BoolP("recursive", "r", false, "Process directories recursively.")
}

// loadConfig reads the config file, environment and flags of cmd into a
// Config. A missing default config file is not an error.
func loadConfig(cmd *cobra.Command, cfgFile string) (*viper.Viper, *Config, error) {
	vpr := viper.New()
	if cfgFile != "" {
		vpr.SetConfigFile(cfgFile)
	} else {
		vpr.AddConfigPath("$HOME")
		vpr.AddConfigPath(".")
		vpr.SetConfigName(configFileName)
	}
	vpr.SetConfigType(configFileExt)
	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vpr.AutomaticEnv()
	vpr.SetDefault("trim-set", string(textkit.DefaultTrimSet[byte]()))

	// Bind cobra and viper together
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || !isGlobalFlag(f.Name) || bindErr != nil {
			return
		}
		if err := vpr.BindPFlag(f.Name, f); err != nil {
			bindErr = errors.Wrapf(err, "unable to bind flag %q", f.Name)
		}
	})
	if bindErr != nil {
		return nil, nil, bindErr
	}

	if err := vpr.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, nil, errors.Wrap(err, "unable to read config file")
		}
	}

	var cfg Config
	if err := vpr.Unmarshal(&cfg); err != nil {
		return nil, nil, errors.Wrap(err, "unable to decode config")
	}
	return vpr, &cfg, nil
}

var globalFlags = []string{"log-level", "width", "ignore-case", "locale", "recursive"}

func isGlobalFlag(name string) bool {
	return slices.Contains(globalFlags, name)
}
