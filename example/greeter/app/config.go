// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/z5labs/reader/example/greeter/greeting"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config
type Config struct {
	Salutation  string     `mapstructure:"salutation"`
	Punctuation string     `mapstructure:"punctuation"`
	Shout       bool       `mapstructure:"shout"`
	Repeat      int        `mapstructure:"repeat"`
	LogLevel    slog.Level `mapstructure:"log-level"`
	Trace       bool       `mapstructure:"trace"`
}

func (cfg Config) environment(name string) greeting.Config {
	return greeting.Config{
		Name:        name,
		Salutation:  cfg.Salutation,
		Punctuation: cfg.Punctuation,
		Shout:       cfg.Shout,
		Repeat:      cfg.Repeat,
	}
}

const envPrefix = "greeter"

func registerFlags(flags *pflag.FlagSet) {
	flags.String("salutation", "Hello", "Salutation to greet with.")
	flags.String("punctuation", "!", "Punctuation to end each greeting with.")
	flags.Bool("shout", false, "Upper case every greeting.")
	flags.Int("repeat", 1, "Number of times to repeat each greeting.")
	flags.String("log-level", slog.LevelInfo.String(), "Minimum log level.")
	flags.Bool("trace", false, "Write a trace span for every greeting to stderr.")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ConfigUnmarshalError
type ConfigUnmarshalError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigUnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigUnmarshalError) Unwrap() error {
	return e.Cause
}

// InvalidRepeatError is returned when the configured repeat count
// would render no greeting at all.
type InvalidRepeatError struct {
	Repeat int
}

// Error implements the [builtin.error] interface.
func (e InvalidRepeatError) Error() string {
	return fmt.Sprintf("repeat must be at least 1: got %d", e.Repeat)
}

func readConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return Config{}, ConfigUnmarshalError{Cause: err}
	}
	if cfg.Repeat < 1 {
		return Config{}, InvalidRepeatError{Repeat: cfg.Repeat}
	}
	return cfg, nil
}
