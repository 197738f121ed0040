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

	"google.golang.org/grpc/connectivity"
)

type fakeEntity struct {
	id   int64
	name string
}

func (f fakeEntity) ID() int64 { return f.id }

func (f fakeEntity) String() string { return f.name }

// fakeInstrumented resolves statistics immediately with a fixed
// outcome, standing in for the runtime's async producers.
type fakeInstrumented[T any] struct {
	fakeEntity
	stats *T
	err   error
}

func (f fakeInstrumented[T]) Stats(_ context.Context) (*T, error) {
	return f.stats, f.err
}

func statePtr(s connectivity.State) *connectivity.State { return &s }
