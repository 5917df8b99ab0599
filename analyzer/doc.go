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

// Package analyzer implements the pathlint detection engine.
//
// # Overview
//
// Pathlint scans Python source for direct, syntactic usage of the deprecated
// os.path API and reports one [Offense] per offending line, nudging code
// towards pathlib.
//
// Four patterns are recognized:
//
//	import os.path              // module import (plain or aliased)
//	from os import path         // name import
//	from os.path import join    // submodule import (any names)
//	os.path.sep                 // attribute access on the os.path chain
//	os.path.join("a", "b")      // call through the os.path chain
//
// Attribute access and calls are matched independently; a call like
// os.path.join(...) therefore matches twice on overlapping nodes. Both
// matches normally land on the same source line and collapse during
// deduplication. When the two nodes start on different lines, both offenses
// survive; this mirrors the behavior asserted by the reference test suite
// and is deliberate.
//
// # Limitations
//
// Only the literal shapes above are detected. Aliased module references
// (p = os.path; p.join(...)), re-exports and any use through indirection
// pass unnoticed. No type or import resolution is performed.
//
// # Example
//
//	a := analyzer.New()
//	offenses, err := a.File(ctx, "app.py")
//	if err != nil {
//	    var perr *analyzer.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("skipping %s: %v", perr.Path, err)
//	    }
//	}
//	for _, o := range offenses {
//	    fmt.Printf("L%d: %s\n", o.Line, o.Text)
//	}
package analyzer
