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

package introspect

import (
	"net"
	"time"

	"google.golang.org/grpc/connectivity"
)

// ChannelStats is a point-in-time snapshot of a channel or subchannel.
// Produced fresh on every Stats call; never cached or shared.
//
// For subchannels, Sockets and Subchannels are mutually exclusive: a
// subchannel either fans out to other subchannels or owns transport
// sockets directly, never both at once.
type ChannelStats struct {
	Target string
	// State is nil when the runtime has no connectivity information
	// for this entity.
	State           *connectivity.State
	CallsStarted    int64
	CallsSucceeded  int64
	CallsFailed     int64
	LastCallStarted time.Time
	Subchannels     []Entity
	Sockets         []Entity
}

// ServerStats is a point-in-time snapshot of a server. Servers have no
// connectivity state; they only accept.
type ServerStats struct {
	CallsStarted    int64
	CallsSucceeded  int64
	CallsFailed     int64
	LastCallStarted time.Time
	ListenSockets   []Entity
}

// SocketStats is a point-in-time snapshot of a socket. Remote is nil
// for listen sockets, which have no peer. Transport is nil when the
// owning transport does not track stream-level statistics.
type SocketStats struct {
	Local     net.Addr
	Remote    net.Addr
	Transport *TransportStats
	Options   *SocketOptions
}

// TransportStats carries the stream and message counters a transport
// accumulates per connection, plus the current flow-control windows.
type TransportStats struct {
	StreamsStarted   int64
	StreamsSucceeded int64
	StreamsFailed    int64
	MessagesSent     int64
	MessagesReceived int64
	KeepAlivesSent   int64

	LastLocalStreamCreated  time.Time
	LastRemoteStreamCreated time.Time
	LastMessageSent         time.Time
	LastMessageReceived     time.Time

	LocalFlowControlWindow  int64
	RemoteFlowControlWindow int64
}
