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
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/chanscope/pkg/introspect"
)

func channelFixture(id int64, name string) fakeInstrumented[introspect.ChannelStats] {
	return fakeInstrumented[introspect.ChannelStats]{
		fakeEntity: fakeEntity{id: id, name: name},
		stats:      &introspect.ChannelStats{Target: name},
	}
}

func TestTopChannelsPreservesOrder(t *testing.T) {
	c := NewConverter()

	page := introspect.RootChannelList{
		Channels: []introspect.Instrumented[introspect.ChannelStats]{
			channelFixture(1, "A"),
			channelFixture(2, "B"),
			channelFixture(3, "C"),
		},
		End: true,
	}

	out, err := c.TopChannels(context.Background(), page)
	require.NoError(t, err)

	require.Len(t, out.GetChannel(), 3)
	assert.Equal(t, "A", out.GetChannel()[0].GetRef().GetName())
	assert.Equal(t, "B", out.GetChannel()[1].GetRef().GetName())
	assert.Equal(t, "C", out.GetChannel()[2].GetRef().GetName())
	assert.True(t, out.GetEnd())
}

func TestTopChannelsNotLastPage(t *testing.T) {
	c := NewConverter()

	out, err := c.TopChannels(context.Background(), introspect.RootChannelList{
		Channels: []introspect.Instrumented[introspect.ChannelStats]{channelFixture(1, "A")},
	})
	require.NoError(t, err)
	assert.False(t, out.GetEnd())
}

func TestTopChannelsEntityFailureAborts(t *testing.T) {
	c := NewConverter()
	cause := errors.New("stats backend down")

	page := introspect.RootChannelList{
		Channels: []introspect.Instrumented[introspect.ChannelStats]{
			channelFixture(1, "A"),
			fakeInstrumented[introspect.ChannelStats]{
				fakeEntity: fakeEntity{id: 2, name: "B"},
				err:        cause,
			},
		},
	}

	_, err := c.TopChannels(context.Background(), page)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestServersResponse(t *testing.T) {
	c := NewConverter()

	page := introspect.ServerList{
		Servers: []introspect.Instrumented[introspect.ServerStats]{
			fakeInstrumented[introspect.ServerStats]{
				fakeEntity: fakeEntity{id: 10, name: "server-10"},
				stats:      &introspect.ServerStats{CallsStarted: 1},
			},
		},
		End: true,
	}

	out, err := c.Servers(context.Background(), page)
	require.NoError(t, err)

	require.Len(t, out.GetServer(), 1)
	assert.Equal(t, int64(10), out.GetServer()[0].GetRef().GetServerId())
	assert.True(t, out.GetEnd())
}

func TestServerSocketsResponseRefsOnly(t *testing.T) {
	c := NewConverter()

	out := c.ServerSockets(introspect.ServerSocketList{
		Sockets: []introspect.Entity{
			fakeEntity{id: 40, name: "socket-40"},
			fakeEntity{id: 41, name: "socket-41"},
		},
		End: true,
	})

	require.Len(t, out.GetSocketRef(), 2)
	assert.Equal(t, int64(40), out.GetSocketRef()[0].GetSocketId())
	assert.Equal(t, int64(41), out.GetSocketRef()[1].GetSocketId())
	assert.True(t, out.GetEnd())
}

func TestSingleEntityResponses(t *testing.T) {
	c := NewConverter()
	ctx := context.Background()

	channelResp, err := c.ChannelResponse(ctx, channelFixture(1, "A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), channelResp.GetChannel().GetRef().GetChannelId())

	subchannelResp, err := c.SubchannelResponse(ctx, channelFixture(2, "B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), subchannelResp.GetSubchannel().GetRef().GetSubchannelId())

	serverResp, err := c.ServerResponse(ctx, fakeInstrumented[introspect.ServerStats]{
		fakeEntity: fakeEntity{id: 3, name: "server-3"},
		stats:      &introspect.ServerStats{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), serverResp.GetServer().GetRef().GetServerId())

	socketResp, err := c.SocketResponse(ctx, fakeInstrumented[introspect.SocketStats]{
		fakeEntity: fakeEntity{id: 4, name: "socket-4"},
		stats: &introspect.SocketStats{
			Local:   &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50051},
			Options: &introspect.SocketOptions{},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), socketResp.GetSocket().GetRef().GetSocketId())
}
