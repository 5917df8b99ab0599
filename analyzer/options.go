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

package analyzer

import "log/slog"

// Option configures specific behavior of a [New] analyzer.
type Option interface {
	apply(a *Analyzer)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(a *Analyzer) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(a)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithMaxFileSize is an [Option] to configure the largest source file the
// analyzer accepts. Values <= 0 keep the current limit.
func WithMaxFileSize(bytes int64) Option { return maxFileSizeOption{bytes: bytes} }

type maxFileSizeOption struct{ bytes int64 }

func (o maxFileSizeOption) apply(a *Analyzer) {
	if o.bytes > 0 {
		a.maxFileSize = o.bytes
	}
}

func (o maxFileSizeOption) LogAttr() slog.Attr {
	return slog.Int64("max-file-size", o.bytes)
}
