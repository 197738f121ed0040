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
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// Socket resolves a socket's statistics and assembles its record. The
// local address is mandatory; the remote address is absent on listen
// sockets, which have no peer.
func (c *Converter) Socket(ctx context.Context, socket introspect.Instrumented[introspect.SocketStats]) (*channelzpb.Socket, error) {
	stats, err := resolveStats(ctx, socket)
	if err != nil {
		return nil, err
	}

	local, err := Address(stats.Local)
	if err != nil {
		return nil, err
	}

	out := &channelzpb.Socket{
		Ref:   SocketRef(socket),
		Local: local,
	}

	if stats.Remote != nil {
		remote, err := Address(stats.Remote)
		if err != nil {
			return nil, err
		}

		out.Remote = remote
	}

	data, err := c.socketData(stats)
	if err != nil {
		return nil, err
	}

	out.Data = data

	return out, nil
}

// socketData renders the option list and, when the transport tracks
// stream-level statistics, the full counter/timestamp/window block.
// Listen sockets typically carry options only.
func (c *Converter) socketData(stats *introspect.SocketStats) (*channelzpb.SocketData, error) {
	data := &channelzpb.SocketData{}

	if t := stats.Transport; t != nil {
		data.StreamsStarted = t.StreamsStarted
		data.StreamsSucceeded = t.StreamsSucceeded
		data.StreamsFailed = t.StreamsFailed
		data.MessagesSent = t.MessagesSent
		data.MessagesReceived = t.MessagesReceived
		data.KeepAlivesSent = t.KeepAlivesSent
		data.LastLocalStreamCreatedTimestamp = timestamppb.New(t.LastLocalStreamCreated)
		data.LastRemoteStreamCreatedTimestamp = timestamppb.New(t.LastRemoteStreamCreated)
		data.LastMessageSentTimestamp = timestamppb.New(t.LastMessageSent)
		data.LastMessageReceivedTimestamp = timestamppb.New(t.LastMessageReceived)
		data.LocalFlowControlWindow = wrapperspb.Int64(t.LocalFlowControlWindow)
		data.RemoteFlowControlWindow = wrapperspb.Int64(t.RemoteFlowControlWindow)
	}

	options, err := c.socketOptions(stats.Options)
	if err != nil {
		return nil, err
	}

	data.Option = options

	return data, nil
}
