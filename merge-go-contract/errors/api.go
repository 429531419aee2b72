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
	"fmt"
	"net/http"
	"strings"

	"github.com/palantir/pkg/safejson"
)

// APIError is returned for responses with a status code >= 400.
//
// The API reports failures either as {"detail": "..."} or as
// {"errors": [{"title": "...", "detail": "...", "problem_type": "..."}]}; both are decoded on a best-effort
// basis and the raw body is retained.
type APIError struct {
	StatusCode int
	Detail     string
	Problems   []APIProblem
	Body       []byte
}

// APIProblem is a single entry of an error response's "errors" list.
type APIProblem struct {
	Title       string `json:"title"`
	Detail      string `json:"detail"`
	ProblemType string `json:"problem_type"`
}

var _ Error = (*APIError)(nil)

// NewAPIError builds an APIError from a response status code and body.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	var payload struct {
		Detail string       `json:"detail"`
		Errors []APIProblem `json:"errors"`
	}
	if len(body) > 0 && safejson.Unmarshal(body, &payload) == nil {
		apiErr.Detail = payload.Detail
		apiErr.Problems = payload.Errors
	}
	return apiErr
}

func (e *APIError) Error() string {
	var msg strings.Builder
	_, _ = fmt.Fprintf(&msg, "%s: status %d %s", API, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		_, _ = fmt.Fprintf(&msg, ": %s", e.Detail)
	}
	for _, problem := range e.Problems {
		_, _ = fmt.Fprintf(&msg, "; %s: %s", problem.Title, problem.Detail)
	}
	return msg.String()
}

func (e *APIError) Kind() Kind {
	return API
}

func (e *APIError) Path() string {
	return ""
}

func (e *APIError) SafeParams() map[string]interface{} {
	return map[string]interface{}{
		"errorKind":  string(API),
		"statusCode": e.StatusCode,
	}
}

func (e *APIError) UnsafeParams() map[string]interface{} {
	unsafe := map[string]interface{}{}
	if e.Detail != "" {
		unsafe["detail"] = e.Detail
	}
	if len(e.Body) > 0 {
		unsafe["responseBody"] = string(e.Body)
	}
	return unsafe
}
