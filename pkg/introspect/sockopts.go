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

import "time"

// SocketOptions is the option set a transport reports for one socket.
//
// LingerSeconds distinguishes three cases: nil means the transport
// offers no linger option at all, a negative value means linger is
// explicitly disabled, and zero or above is the configured linger
// duration in seconds. The nil/negative distinction is deliberate and
// must survive encoding.
type SocketOptions struct {
	LingerSeconds *int32
	SOTimeout     *time.Duration
	// TCPInfo is nil on platforms or transports that cannot read the
	// kernel tcp_info block.
	TCPInfo *TCPInfo
	// Others holds any remaining options the transport chose to report,
	// already rendered to strings. Iteration order is unspecified.
	Others map[string]string
}

// TCPInfo mirrors the kernel's tcp_info structure field for field.
// Values are copied verbatim from the transport; no unit conversion
// happens anywhere between here and the wire.
type TCPInfo struct {
	State        uint32
	CaState      uint32
	Retransmits  uint32
	Probes       uint32
	Backoff      uint32
	Options      uint32
	SndWscale    uint32
	RcvWscale    uint32
	Rto          uint32
	Ato          uint32
	SndMss       uint32
	RcvMss       uint32
	Unacked      uint32
	Sacked       uint32
	Lost         uint32
	Retrans      uint32
	Fackets      uint32
	LastDataSent uint32
	LastAckSent  uint32
	LastDataRecv uint32
	LastAckRecv  uint32
	Pmtu         uint32
	RcvSsthresh  uint32
	Rtt          uint32
	Rttvar       uint32
	SndSsthresh  uint32
	SndCwnd      uint32
	Advmss       uint32
	Reordering   uint32
}
