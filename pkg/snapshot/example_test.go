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

package snapshot_test

import (
	"context"
	"fmt"

	"github.com/carverauto/chanscope/pkg/introspect"
	"github.com/carverauto/chanscope/pkg/snapshot"
)

// demoChannel is a stand-in for a live channel handle the runtime
// registry would normally supply.
type demoChannel struct {
	id    int64
	stats introspect.ChannelStats
}

func (d *demoChannel) ID() int64 { return d.id }

func (d *demoChannel) String() string { return fmt.Sprintf("channel-%d", d.id) }

func (d *demoChannel) Stats(_ context.Context) (*introspect.ChannelStats, error) {
	s := d.stats
	return &s, nil
}

func Example() {
	c := snapshot.NewConverter()

	page := introspect.RootChannelList{
		Channels: []introspect.Instrumented[introspect.ChannelStats]{
			&demoChannel{id: 1, stats: introspect.ChannelStats{Target: "dns:///api.example.org"}},
		},
		End: true,
	}

	resp, err := c.TopChannels(context.Background(), page)
	if err != nil {
		panic(err)
	}

	fmt.Println(resp.GetChannel()[0].GetRef().GetName())
	fmt.Println(resp.GetChannel()[0].GetData().GetTarget())
	fmt.Println(resp.GetEnd())
	// Output:
	// channel-1
	// dns:///api.example.org
	// true
}
