// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package greeting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhrase(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedVal string
	}{
		{
			name:        "salutation and name",
			cfg:         Config{Salutation: "Hello", Name: "World"},
			expectedVal: "Hello, World",
		},
		{
			name:        "no salutation",
			cfg:         Config{Name: "World"},
			expectedVal: "World",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expectedVal, Phrase.Run(tc.cfg))
		})
	}
}

func TestMessage(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedVal string
	}{
		{
			name: "plain",
			cfg: Config{
				Name:        "Gopher",
				Salutation:  "Hi",
				Punctuation: ".",
				Repeat:      1,
			},
			expectedVal: "Hi, Gopher.",
		},
		{
			name: "shout",
			cfg: Config{
				Name:        "Gopher",
				Salutation:  "Hi",
				Punctuation: "!",
				Shout:       true,
				Repeat:      1,
			},
			expectedVal: "HI, GOPHER!",
		},
		{
			name: "repeat",
			cfg: Config{
				Name:        "Bob",
				Salutation:  "Hey",
				Punctuation: "!",
				Repeat:      3,
			},
			expectedVal: "Hey, Bob! Hey, Bob! Hey, Bob!",
		},
		{
			name: "non positive repeat renders once",
			cfg: Config{
				Name:       "Bob",
				Salutation: "Hey",
				Repeat:     0,
			},
			expectedVal: "Hey, Bob",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expectedVal, Message.Run(tc.cfg))
		})
	}
}

func TestPunctuated(t *testing.T) {
	require.True(t, Punctuated.Run(Config{Punctuation: "?"}))
	require.False(t, Punctuated.Run(Config{}))
}
