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

// Pathlint scans Python files for deprecated os.path usage.
//
// Usage:
//
//	pathlint [flags] PATH...
//
// Each PATH is a Python file or a directory to walk recursively. The exit
// status is 1 when offenses are found, 0 otherwise, and 2 on invalid
// invocation.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	code, err := execute(os.Args[1:])
	if err != nil {
		slog.Error(fmt.Sprintf("pathlint: %s", err))
		os.Exit(2)
	}

	os.Exit(code)
}
