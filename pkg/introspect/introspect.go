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

// Package introspect defines the capability surface a transport runtime
// exposes for live introspection: stable entity identities, blocking
// statistics resolution, and paginated entity listings. The snapshot
// package consumes these interfaces to build channelz records; nothing
// here is owned or mutated by the conversion layer.
package introspect

import (
	"context"
	"fmt"
)

// Entity is anything the runtime registry tracks under a stable numeric
// identifier: a channel, subchannel, server, or socket. The id is
// assigned once at registration and never changes; the String form is
// recomputed per call and may change as the entity's state evolves.
type Entity interface {
	ID() int64
	fmt.Stringer
}

// Instrumented is an Entity whose statistics are computed asynchronously
// by the runtime, possibly on another goroutine or deferred until first
// use. Stats blocks until the snapshot is available, the computation
// fails, or ctx is done. A nil snapshot with a nil error means the
// transport does not track detailed statistics at all.
type Instrumented[T any] interface {
	Entity
	Stats(ctx context.Context) (*T, error)
}

// RootChannelList is one page of root channels, in registry order.
// End is true when no further pages exist beyond this one.
type RootChannelList struct {
	Channels []Instrumented[ChannelStats]
	End      bool
}

// ServerList is one page of servers, in registry order.
type ServerList struct {
	Servers []Instrumented[ServerStats]
	End     bool
}

// ServerSocketList is one page of a server's per-connection sockets.
// Only identities are carried; callers fetch full socket records
// individually if they need them.
type ServerSocketList struct {
	Sockets []Entity
	End     bool
}
