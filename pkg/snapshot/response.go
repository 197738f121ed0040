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
	"context"

	channelzpb "google.golang.org/grpc/channelz/grpc_channelz_v1"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// Response assemblers wrap one already-paginated batch into its wire
// response. Pagination and ordering belong to the registry; entries are
// converted strictly in input order and the end flag is carried as-is.

// TopChannels assembles one page of root channels.
func (c *Converter) TopChannels(ctx context.Context, page introspect.RootChannelList) (*channelzpb.GetTopChannelsResponse, error) {
	out := &channelzpb.GetTopChannelsResponse{End: page.End}
	for _, channel := range page.Channels {
		converted, err := c.Channel(ctx, channel)
		if err != nil {
			return nil, err
		}

		out.Channel = append(out.Channel, converted)
	}

	return out, nil
}

// Servers assembles one page of servers.
func (c *Converter) Servers(ctx context.Context, page introspect.ServerList) (*channelzpb.GetServersResponse, error) {
	out := &channelzpb.GetServersResponse{End: page.End}
	for _, server := range page.Servers {
		converted, err := c.Server(ctx, server)
		if err != nil {
			return nil, err
		}

		out.Server = append(out.Server, converted)
	}

	return out, nil
}

// ServerSockets assembles one page of a server's per-connection
// sockets. Only refs are carried, so no stats are resolved and the
// assembly cannot fail.
func (c *Converter) ServerSockets(page introspect.ServerSocketList) *channelzpb.GetServerSocketsResponse {
	out := &channelzpb.GetServerSocketsResponse{End: page.End}
	for _, socket := range page.Sockets {
		out.SocketRef = append(out.SocketRef, SocketRef(socket))
	}

	return out
}

// ChannelResponse wraps a single channel record for the point query.
func (c *Converter) ChannelResponse(ctx context.Context, channel introspect.Instrumented[introspect.ChannelStats]) (*channelzpb.GetChannelResponse, error) {
	converted, err := c.Channel(ctx, channel)
	if err != nil {
		return nil, err
	}

	return &channelzpb.GetChannelResponse{Channel: converted}, nil
}

// SubchannelResponse wraps a single subchannel record.
func (c *Converter) SubchannelResponse(ctx context.Context, subchannel introspect.Instrumented[introspect.ChannelStats]) (*channelzpb.GetSubchannelResponse, error) {
	converted, err := c.Subchannel(ctx, subchannel)
	if err != nil {
		return nil, err
	}

	return &channelzpb.GetSubchannelResponse{Subchannel: converted}, nil
}

// ServerResponse wraps a single server record.
func (c *Converter) ServerResponse(ctx context.Context, server introspect.Instrumented[introspect.ServerStats]) (*channelzpb.GetServerResponse, error) {
	converted, err := c.Server(ctx, server)
	if err != nil {
		return nil, err
	}

	return &channelzpb.GetServerResponse{Server: converted}, nil
}

// SocketResponse wraps a single socket record.
func (c *Converter) SocketResponse(ctx context.Context, socket introspect.Instrumented[introspect.SocketStats]) (*channelzpb.GetSocketResponse, error) {
	converted, err := c.Socket(ctx, socket)
	if err != nil {
		return nil, err
	}

	return &channelzpb.GetSocketResponse{Socket: converted}, nil
}
