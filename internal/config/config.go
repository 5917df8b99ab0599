// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the runtime settings of the pathlint command.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultMessage is the scolding printed after each file's findings unless
// silenced or overridden. It is injected into the reporter as a value, never
// mutated.
const DefaultMessage = "\n\t!!! ARE YOU DUMB?? WHY AREN'T YOU USING PATHLIB ??? !!!\n"

// DefaultSuffix is the file suffix selected when walking directories.
const DefaultSuffix = ".py"

// Settings configures a lint run. The zero value is not useful; start from
// [Default] or [Load].
type Settings struct {
	// Message is printed after each file's findings.
	Message string `toml:"message"`

	// Suffixes lists the file suffixes considered Python source.
	Suffixes []string `toml:"suffixes"`

	// Silent suppresses Message while still printing findings.
	Silent bool `toml:"silent"`

	// NoColor disables colored output.
	NoColor bool `toml:"no-color"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Message:  DefaultMessage,
		Suffixes: []string{DefaultSuffix},
	}
}

// Load reads a TOML settings file over the defaults, so omitted keys keep
// their built-in values.
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("loading settings from %s: %w", path, err)
	}

	if len(s.Suffixes) == 0 {
		s.Suffixes = []string{DefaultSuffix}
	}

	return s, nil
}

// Matches reports whether a path carries one of the configured suffixes.
func (s Settings) Matches(path string) bool {
	for _, suffix := range s.Suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}
