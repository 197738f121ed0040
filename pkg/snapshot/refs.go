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

package snapshot

import (
	channelzpb "google.golang.org/grpc/channelz/grpc_channelz_v1"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// The four ref builders are identical modulo the output type: the
// externally assigned id is copied verbatim and the display name is the
// entity's current string form. None of them can fail.

// ChannelRef builds the identity-only reference for a channel.
func ChannelRef(e introspect.Entity) *channelzpb.ChannelRef {
	return &channelzpb.ChannelRef{
		ChannelId: e.ID(),
		Name:      e.String(),
	}
}

// SubchannelRef builds the identity-only reference for a subchannel.
func SubchannelRef(e introspect.Entity) *channelzpb.SubchannelRef {
	return &channelzpb.SubchannelRef{
		SubchannelId: e.ID(),
		Name:         e.String(),
	}
}

// ServerRef builds the identity-only reference for a server.
func ServerRef(e introspect.Entity) *channelzpb.ServerRef {
	return &channelzpb.ServerRef{
		ServerId: e.ID(),
		Name:     e.String(),
	}
}

// SocketRef builds the identity-only reference for a socket.
func SocketRef(e introspect.Entity) *channelzpb.SocketRef {
	return &channelzpb.SocketRef{
		SocketId: e.ID(),
		Name:     e.String(),
	}
}
