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

	"google.golang.org/grpc/codes"

	"github.com/carverauto/chanscope/pkg/introspect"
)

// resolveStats blocks on an entity's asynchronously computed statistics
// and translates the three failure shapes into classified errors:
//
//   - nil snapshot, nil error: Unimplemented. Some transports (notably
//     in-process ones) never track detailed stats; callers should treat
//     this as expected and not retry.
//   - context cancellation or deadline: Internal, wrapping ctx's error.
//     The wait itself carries no timeout; cancellation discipline
//     belongs to the caller.
//   - any other error from the computation: Internal, wrapping the
//     cause so external diagnostics stay traceable.
//
// This is the only point in the package that can suspend the caller.
func resolveStats[T any](ctx context.Context, entity introspect.Instrumented[T]) (*T, error) {
	stats, err := entity.Stats(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, wrapStatus(codes.Internal, "snapshot: stats wait interrupted", err)
		}

		return nil, wrapStatus(codes.Internal, "snapshot: stats computation failed", err)
	}

	if stats == nil {
		return nil, errStatsUntracked
	}

	return stats, nil
}
