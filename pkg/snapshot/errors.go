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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errNilAddress     = status.Error(codes.InvalidArgument, "snapshot: nil transport address")
	errNilOptions     = status.Error(codes.InvalidArgument, "snapshot: nil socket option set")
	errEmptyOptName   = status.Error(codes.InvalidArgument, "snapshot: socket option name is empty")
	errStatsUntracked = status.Error(codes.Unimplemented,
		"the entity's stats can not be retrieved; if this is an in-process transport this is expected")
)

// statusError carries a gRPC status classification without discarding
// the underlying cause. status.FromError sees the classification via
// GRPCStatus; errors.Is/As still reach the cause through Unwrap.
type statusError struct {
	st    *status.Status
	cause error
}

func wrapStatus(code codes.Code, msg string, cause error) error {
	return &statusError{st: status.New(code, msg), cause: cause}
}

func (e *statusError) Error() string {
	if e.cause == nil {
		return e.st.Message()
	}

	return e.st.Message() + ": " + e.cause.Error()
}

func (e *statusError) GRPCStatus() *status.Status { return e.st }

func (e *statusError) Unwrap() error { return e.cause }
