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
	"google.golang.org/grpc/connectivity"
)

// connectivityStates is the fixed translation table between the
// runtime's connectivity enum and the wire enum. Both sides are small
// and frozen; anything outside the table is UNKNOWN.
var connectivityStates = map[connectivity.State]channelzpb.ChannelConnectivityState_State{
	connectivity.Idle:             channelzpb.ChannelConnectivityState_IDLE,
	connectivity.Connecting:       channelzpb.ChannelConnectivityState_CONNECTING,
	connectivity.Ready:            channelzpb.ChannelConnectivityState_READY,
	connectivity.TransientFailure: channelzpb.ChannelConnectivityState_TRANSIENT_FAILURE,
	connectivity.Shutdown:         channelzpb.ChannelConnectivityState_SHUTDOWN,
}

// State maps the runtime connectivity state onto the wire enum. A nil
// or unrecognized state maps to UNKNOWN rather than failing: state is
// diagnostic and must never block snapshot production.
func State(state *connectivity.State) *channelzpb.ChannelConnectivityState {
	mapped := channelzpb.ChannelConnectivityState_UNKNOWN
	if state != nil {
		if s, ok := connectivityStates[*state]; ok {
			mapped = s
		}
	}

	return &channelzpb.ChannelConnectivityState{State: mapped}
}
