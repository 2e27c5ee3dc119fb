// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package greeting builds greeting messages from a [Config] using readers.
package greeting

import (
	"strings"

	"github.com/z5labs/reader"
)

// Config is the environment every greeting is rendered with.
type Config struct {
	Name        string
	Salutation  string
	Punctuation string
	Shout       bool
	Repeat      int
}

var (
	salutation  = reader.Asks(func(cfg Config) string { return cfg.Salutation })
	name        = reader.Asks(func(cfg Config) string { return cfg.Name })
	punctuation = reader.Asks(func(cfg Config) string { return cfg.Punctuation })
)

func join(sep string) func(string) func(string) string {
	return func(a string) func(string) string {
		return func(b string) string {
			if a == "" {
				return b
			}
			return a + sep + b
		}
	}
}

// Phrase produces "<salutation>, <name>" for the environment.
var Phrase = reader.Ap(reader.Map(salutation, join(", ")), name)

// Sentence adds punctuation to [Phrase] and upper cases it when
// shouting is enabled.
var Sentence = reader.Chain(Phrase, func(phrase string) reader.Reader[Config, string] {
	return reader.Map(reader.Ask[Config](), func(cfg Config) string {
		s := phrase + cfg.Punctuation
		if cfg.Shout {
			return strings.ToUpper(s)
		}
		return s
	})
})

// Message repeats [Sentence] Repeat times, separated by a single space.
// A Repeat less than one renders the sentence once.
var Message = reader.Chain(
	reader.Asks(func(cfg Config) int { return max(cfg.Repeat, 1) }),
	func(n int) reader.Reader[Config, string] {
		rs := make([]reader.Reader[Config, string], n)
		for i := range rs {
			rs[i] = Sentence
		}
		return reader.Map(reader.Sequence(rs...), func(ss []string) string {
			return strings.Join(ss, " ")
		})
	},
)

// Punctuated reports whether the environment configures any punctuation.
var Punctuated = reader.Map(punctuation, func(p string) bool { return p != "" })
