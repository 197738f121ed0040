/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package snapshot turns a transport runtime's live introspection data
// into channelz v1 protos. Every build function is a pure, synchronous
// transformation of its arguments; the only blocking point is the wait
// on an entity's asynchronously computed statistics. The package keeps
// no state between calls and is safe for unlimited concurrent use.
package snapshot

import (
	"github.com/rs/zerolog"
)

// Converter builds channelz protos from introspection handles. The
// zero value is usable; the logger only feeds diagnostic paths (option
// payloads that fail to pack, unknown connectivity states) and never
// affects conversion results.
type Converter struct {
	log zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger routes the converter's diagnostics to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// NewConverter returns a Converter. Without options, diagnostics are
// discarded.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
