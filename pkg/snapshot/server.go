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

	"github.com/carverauto/chanscope/pkg/introspect"
)

// Server resolves a server's statistics and assembles its record.
// Listen sockets are carried as refs only; servers have no connectivity
// state, so ServerData is call counters plus the last-call timestamp.
func (c *Converter) Server(ctx context.Context, server introspect.Instrumented[introspect.ServerStats]) (*channelzpb.Server, error) {
	stats, err := resolveStats(ctx, server)
	if err != nil {
		return nil, err
	}

	out := &channelzpb.Server{
		Ref:  ServerRef(server),
		Data: serverData(stats),
	}
	for _, listen := range stats.ListenSockets {
		out.ListenSocket = append(out.ListenSocket, SocketRef(listen))
	}

	return out, nil
}

func serverData(stats *introspect.ServerStats) *channelzpb.ServerData {
	return &channelzpb.ServerData{
		CallsStarted:             stats.CallsStarted,
		CallsSucceeded:           stats.CallsSucceeded,
		CallsFailed:              stats.CallsFailed,
		LastCallStartedTimestamp: timestamppb.New(stats.LastCallStarted),
	}
}
