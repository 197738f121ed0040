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
	"time"

	channelzpb "google.golang.org/grpc/channelz/grpc_channelz_v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// Reserved option names. Free-form options reported by a transport must
// not reuse these.
const (
	SOLinger  = "SO_LINGER"
	SOTimeout = "SO_TIMEOUT"
	TCPInfo   = "TCP_INFO"
)

// socketOptions renders a socket's option set as an ordered option
// list: linger, then timeout, then TCP info (each only when the source
// field is present), then every free-form entry in map iteration order.
//
// Linger is the one asymmetric case: a nil LingerSeconds means the
// transport offers no linger option and nothing is emitted, while a
// negative value means linger is explicitly disabled and the option is
// emitted inactive. The two must stay distinguishable on the wire.
func (c *Converter) socketOptions(opts *introspect.SocketOptions) ([]*channelzpb.SocketOption, error) {
	if opts == nil {
		return nil, errNilOptions
	}

	var out []*channelzpb.SocketOption

	if opts.LingerSeconds != nil {
		out = append(out, c.lingerOption(*opts.LingerSeconds))
	}

	if opts.SOTimeout != nil {
		out = append(out, c.timeoutOption(SOTimeout, *opts.SOTimeout))
	}

	if opts.TCPInfo != nil {
		out = append(out, c.tcpInfoOption(opts.TCPInfo))
	}

	for name, value := range opts.Others {
		opt, err := additionalOption(name, value)
		if err != nil {
			return nil, err
		}

		out = append(out, opt)
	}

	return out, nil
}

func (c *Converter) lingerOption(seconds int32) *channelzpb.SocketOption {
	linger := &channelzpb.SocketOptionLinger{}
	if seconds >= 0 {
		linger.Active = true
		linger.Duration = durationpb.New(time.Duration(seconds) * time.Second)
	}

	return c.packedOption(SOLinger, linger)
}

func (c *Converter) timeoutOption(name string, timeout time.Duration) *channelzpb.SocketOption {
	return c.packedOption(name, &channelzpb.SocketOptionTimeout{
		Duration: durationpb.New(timeout),
	})
}

// tcpInfoOption copies the kernel tcp_info block field for field onto
// the wire record. No transformation, no units changed.
func (c *Converter) tcpInfoOption(info *introspect.TCPInfo) *channelzpb.SocketOption {
	return c.packedOption(TCPInfo, &channelzpb.SocketOptionTcpInfo{
		TcpiState:        info.State,
		TcpiCaState:      info.CaState,
		TcpiRetransmits:  info.Retransmits,
		TcpiProbes:       info.Probes,
		TcpiBackoff:      info.Backoff,
		TcpiOptions:      info.Options,
		TcpiSndWscale:    info.SndWscale,
		TcpiRcvWscale:    info.RcvWscale,
		TcpiRto:          info.Rto,
		TcpiAto:          info.Ato,
		TcpiSndMss:       info.SndMss,
		TcpiRcvMss:       info.RcvMss,
		TcpiUnacked:      info.Unacked,
		TcpiSacked:       info.Sacked,
		TcpiLost:         info.Lost,
		TcpiRetrans:      info.Retrans,
		TcpiFackets:      info.Fackets,
		TcpiLastDataSent: info.LastDataSent,
		TcpiLastAckSent:  info.LastAckSent,
		TcpiLastDataRecv: info.LastDataRecv,
		TcpiLastAckRecv:  info.LastAckRecv,
		TcpiPmtu:         info.Pmtu,
		TcpiRcvSsthresh:  info.RcvSsthresh,
		TcpiRtt:          info.Rtt,
		TcpiRttvar:       info.Rttvar,
		TcpiSndSsthresh:  info.SndSsthresh,
		TcpiSndCwnd:      info.SndCwnd,
		TcpiAdvmss:       info.Advmss,
		TcpiReordering:   info.Reordering,
	})
}

// packedOption wraps a typed payload in Any under a reserved name. A
// payload that fails to pack is logged and dropped from the option, but
// the option itself is still emitted so presence semantics hold.
func (c *Converter) packedOption(name string, payload proto.Message) *channelzpb.SocketOption {
	opt := &channelzpb.SocketOption{Name: name}

	additional, err := anypb.New(payload)
	if err != nil {
		c.log.Warn().Err(err).Str("option", name).Msg("failed to pack socket option payload")
		return opt
	}

	opt.Additional = additional

	return opt
}

func additionalOption(name, value string) (*channelzpb.SocketOption, error) {
	if name == "" {
		return nil, errEmptyOptName
	}

	return &channelzpb.SocketOption{Name: name, Value: value}, nil
}
