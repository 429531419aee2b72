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

package httpclient

import (
	"io"
	"net/http"

	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
)

// maxErrorBodySize bounds how much of an error response body is read into the returned error.
const maxErrorBodySize = 1 << 20

// ErrorDecoder implementations declare whether or not they should be used to handle certain http responses, and return
// decoded errors when invoked. Custom implementations can be used when consumers expect structured errors in response bodies.
type ErrorDecoder interface {
	// Handles returns whether or not the decoder considers the response an error.
	Handles(resp *http.Response) bool
	// DecodeError returns a decoded error, or an error encountered while trying to decode.
	// DecodeError should never return nil.
	DecodeError(resp *http.Response) error
}

// restErrorDecoder is the default error decoder. It handles responses with a status code >= 400 and returns an
// *errors.APIError carrying the status code and the decoded "detail"/"errors" body.
//
// Use StatusCodeFromError(err) to retrieve the code from the error,
// and WithDisableRestErrors() to disable this decoder on your client.
type restErrorDecoder struct{}

var _ ErrorDecoder = restErrorDecoder{}

func (d restErrorDecoder) Handles(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusBadRequest
}

func (d restErrorDecoder) DecodeError(resp *http.Response) error {
	var body []byte
	if resp.Body != nil {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if err != nil {
			return werror.Wrap(err, "server returned a status >= 400 and reading the body failed",
				werror.SafeParam("statusCode", resp.StatusCode))
		}
		body = b
	}
	return errors.NewAPIError(resp.StatusCode, body)
}

// StatusCodeFromError retrieves the status code from an *errors.APIError in the chain of err, or else from the
// 'statusCode' parameter of a werror. If neither is present, ok is false.
func StatusCodeFromError(err error) (statusCode int, ok bool) {
	if mergeErr, isMergeErr := errors.AsError(err); isMergeErr {
		if apiErr, isAPIErr := mergeErr.(*errors.APIError); isAPIErr {
			return apiErr.StatusCode, true
		}
	}
	statusCodeI, ok := werror.ParamFromError(err, "statusCode")
	if !ok {
		return 0, false
	}
	statusCode, ok = statusCodeI.(int)
	return statusCode, ok
}
