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
	"net"

	channelzpb "google.golang.org/grpc/channelz/grpc_channelz_v1"
)

// addressEncoder pairs a type predicate with an encoder. Transport
// addresses come from pluggable network backends with incompatible
// concrete types, so classification is an ordered open-ended dispatch
// rather than a closed enum; unmatched addresses fall through to the
// opaque "other" form.
type addressEncoder struct {
	match  func(net.Addr) bool
	encode func(net.Addr) *channelzpb.Address
}

var addressEncoders = []addressEncoder{
	{
		match: func(addr net.Addr) bool {
			_, ok := addr.(*net.TCPAddr)
			return ok
		},
		encode: func(addr net.Addr) *channelzpb.Address {
			a := addr.(*net.TCPAddr)
			return tcpIPAddress(a.IP, a.Port)
		},
	},
	{
		match: func(addr net.Addr) bool {
			_, ok := addr.(*net.UDPAddr)
			return ok
		},
		encode: func(addr net.Addr) *channelzpb.Address {
			a := addr.(*net.UDPAddr)
			return tcpIPAddress(a.IP, a.Port)
		},
	},
	{
		match: func(addr net.Addr) bool {
			_, ok := addr.(*net.UnixAddr)
			return ok
		},
		// UnixAddr's string form is the filesystem path itself, no
		// decoration to strip.
		encode: func(addr net.Addr) *channelzpb.Address {
			return &channelzpb.Address{
				Address: &channelzpb.Address_UdsAddress_{
					UdsAddress: &channelzpb.Address_UdsAddress{Filename: addr.String()},
				},
			}
		},
	},
}

// Address classifies and encodes one transport address. IP-based
// addresses carry raw bytes (4 for IPv4, 16 for IPv6) plus the port;
// unix domain addresses carry the path; anything else is passed through
// as an opaque name. A nil address is a caller error.
func Address(addr net.Addr) (*channelzpb.Address, error) {
	if addr == nil {
		return nil, errNilAddress
	}

	for _, enc := range addressEncoders {
		if enc.match(addr) {
			return enc.encode(addr), nil
		}
	}

	return &channelzpb.Address{
		Address: &channelzpb.Address_OtherAddress_{
			OtherAddress: &channelzpb.Address_OtherAddress{Name: addr.String()},
		},
	}, nil
}

func tcpIPAddress(ip net.IP, port int) *channelzpb.Address {
	// net.IP stores IPv4 in the 16-byte mapped form; the wire format
	// wants exactly 4 bytes for IPv4.
	raw := ip
	if v4 := ip.To4(); v4 != nil {
		raw = v4
	}

	return &channelzpb.Address{
		Address: &channelzpb.Address_TcpipAddress{
			TcpipAddress: &channelzpb.Address_TcpIpAddress{
				IpAddress: raw,
				Port:      int32(port),
			},
		},
	}
}
