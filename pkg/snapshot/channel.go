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
	"fmt"

	channelzpb "google.golang.org/grpc/channelz/grpc_channelz_v1"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// Channel resolves a channel's statistics and assembles its full
// record: identity, call data with connectivity state, and the refs of
// its child subchannels.
func (c *Converter) Channel(ctx context.Context, channel introspect.Instrumented[introspect.ChannelStats]) (*channelzpb.Channel, error) {
	stats, err := resolveStats(ctx, channel)
	if err != nil {
		return nil, err
	}

	out := &channelzpb.Channel{
		Ref:  ChannelRef(channel),
		Data: c.channelData(stats),
	}
	for _, sub := range stats.Subchannels {
		out.SubchannelRef = append(out.SubchannelRef, SubchannelRef(sub))
	}

	return out, nil
}

// Subchannel assembles a subchannel record. A subchannel's children are
// either transport sockets or further subchannels; reporting both at
// once is a bug in the runtime's bookkeeping and aborts the conversion
// rather than producing a malformed record.
func (c *Converter) Subchannel(ctx context.Context, subchannel introspect.Instrumented[introspect.ChannelStats]) (*channelzpb.Subchannel, error) {
	stats, err := resolveStats(ctx, subchannel)
	if err != nil {
		return nil, err
	}

	if len(stats.Sockets) > 0 && len(stats.Subchannels) > 0 {
		panic(fmt.Sprintf("snapshot: subchannel %d reports both socket and subchannel children", subchannel.ID()))
	}

	out := &channelzpb.Subchannel{
		Ref:  SubchannelRef(subchannel),
		Data: c.channelData(stats),
	}
	for _, sock := range stats.Sockets {
		out.SocketRef = append(out.SocketRef, SocketRef(sock))
	}

	for _, sub := range stats.Subchannels {
		out.SubchannelRef = append(out.SubchannelRef, SubchannelRef(sub))
	}

	return out, nil
}

func (c *Converter) channelData(stats *introspect.ChannelStats) *channelzpb.ChannelData {
	state := State(stats.State)
	if stats.State != nil && state.GetState() == channelzpb.ChannelConnectivityState_UNKNOWN {
		c.log.Debug().Stringer("state", stats.State).Msg("unrecognized connectivity state, reporting UNKNOWN")
	}

	return &channelzpb.ChannelData{
		Target:                   stats.Target,
		State:                    state,
		CallsStarted:             stats.CallsStarted,
		CallsSucceeded:           stats.CallsSucceeded,
		CallsFailed:              stats.CallsFailed,
		LastCallStartedTimestamp: timestamppb.New(stats.LastCallStarted),
	}
}
