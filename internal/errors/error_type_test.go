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
	"fmt"
	"net/http"
	"testing"

	mergeerrors "github.com/merge-api/merge-go-client/merge-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, testCase := range []struct {
		err  error
		want InternalErrorType
	}{
		{err: nil, want: Other},
		{err: mergeerrors.NewAPIError(http.StatusServiceUnavailable, nil), want: QOS},
		{err: werror.Wrap(mergeerrors.NewAPIError(http.StatusTooManyRequests, nil), "request failed"), want: QOS},
		{err: mergeerrors.NewAPIError(http.StatusNotFound, []byte(`{"detail": "Not found."}`)), want: RPC},
		{err: mergeerrors.WrapWithRecordType(mergeerrors.NewDecodeError("obj.created_at", "invalid timestamp", "yesterday", nil), "Job"), want: Contract},
		{err: mergeerrors.NewUnionResolutionError("obj.contact", "number"), want: Contract},
		{err: mergeerrors.NewEncodeError("obj.status", "enum value holds no variant"), want: Contract},
		{err: werror.Wrap(context.Canceled, "httpclient request canceled"), want: Canceled},
		{err: fmt.Errorf("dial tcp: connection refused"), want: Other},
	} {
		t.Run(string(testCase.want), func(t *testing.T) {
			assert.Equal(t, testCase.want, Classify(testCase.err))
		})
	}
}
