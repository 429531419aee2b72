// Copyright (c) 2024 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"context"
	"net/http"

	mergeerrors "github.com/merge-api/merge-go-client/merge-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
)

// InternalErrorType provides high-level categories for the errors returned by the client, used to tag logs.
type InternalErrorType string

const (
	// QOS groups errors that may indicate a Quality-of-Service problem, such as HTTP 429 and 503.
	QOS InternalErrorType = "qos"

	// Contract groups errors raised by the record codec and validator: payloads that do not match the
	// declared schema, or records that cannot be serialized.
	Contract InternalErrorType = "contract"

	// RPC groups all other errors returned by the remote API.
	RPC InternalErrorType = "rpc"

	// Canceled groups errors caused by a canceled or expired context.
	Canceled InternalErrorType = "canceled"

	// Other is the default catch-all, mostly transport failures.
	Other InternalErrorType = "other"

	InternalErrorTypeParam = "_internalErrorType"
)

// Classify returns the category of err.
func Classify(err error) InternalErrorType {
	if err == nil {
		return Other
	}
	if e, ok := mergeerrors.AsError(err); ok {
		switch e.Kind() {
		case mergeerrors.API:
			if apiErr, ok := e.(*mergeerrors.APIError); ok &&
				(apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == http.StatusServiceUnavailable) {
				return QOS
			}
			return RPC
		case mergeerrors.Decode, mergeerrors.UnionResolution, mergeerrors.Validation, mergeerrors.Encode:
			return Contract
		}
	}
	switch werror.RootCause(err) {
	case context.Canceled, context.DeadlineExceeded:
		return Canceled
	}
	return Other
}
