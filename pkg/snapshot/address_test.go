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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pipeAddr stands in for an address kind from a backend this package
// has never heard of.
type pipeAddr struct{ name string }

func (p pipeAddr) Network() string { return "pipe" }

func (p pipeAddr) String() string { return p.name }

func TestAddressIPv4(t *testing.T) {
	addr, err := Address(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080})
	require.NoError(t, err)

	tcpip := addr.GetTcpipAddress()
	require.NotNil(t, tcpip)
	assert.Equal(t, []byte{127, 0, 0, 1}, tcpip.GetIpAddress())
	assert.Equal(t, int32(8080), tcpip.GetPort())
}

func TestAddressIPv6(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	require.NotNil(t, ip)

	addr, err := Address(&net.TCPAddr{IP: ip, Port: 443})
	require.NoError(t, err)

	tcpip := addr.GetTcpipAddress()
	require.NotNil(t, tcpip)
	assert.Len(t, tcpip.GetIpAddress(), 16)
	assert.Equal(t, int32(443), tcpip.GetPort())
}

func TestAddressUDP(t *testing.T) {
	addr, err := Address(&net.UDPAddr{IP: net.IPv4(10, 0, 0, 2), Port: 53})
	require.NoError(t, err)

	tcpip := addr.GetTcpipAddress()
	require.NotNil(t, tcpip)
	assert.Equal(t, []byte{10, 0, 0, 2}, tcpip.GetIpAddress())
	assert.Equal(t, int32(53), tcpip.GetPort())
}

func TestAddressUnixDomain(t *testing.T) {
	addr, err := Address(&net.UnixAddr{Name: "/tmp/transport.sock", Net: "unix"})
	require.NoError(t, err)

	uds := addr.GetUdsAddress()
	require.NotNil(t, uds, "unix addresses must encode as uds, not other")
	assert.Equal(t, "/tmp/transport.sock", uds.GetFilename())
}

func TestAddressUnknownKindFallsThrough(t *testing.T) {
	addr, err := Address(pipeAddr{name: "pipe:client-7"})
	require.NoError(t, err)

	other := addr.GetOtherAddress()
	require.NotNil(t, other)
	assert.Equal(t, "pipe:client-7", other.GetName())
}

func TestAddressNil(t *testing.T) {
	_, err := Address(nil)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
