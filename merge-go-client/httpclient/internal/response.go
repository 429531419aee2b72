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

package internal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	werror "github.com/palantir/witchcraft-go-error"
)

// maxRetryAfter caps the delay honoured from a Retry-After header.
const maxRetryAfter = time.Minute

// ShouldRetry returns true if the attempt which produced resp and err should be retried, along with the
// delay the server asked for, if any. Transport errors, 429 Too Many Requests and 503 Service Unavailable are
// retried. Cancellation and deadline errors are not.
func ShouldRetry(resp *http.Response, err error) (bool, time.Duration) {
	if err != nil {
		if isContextErr(err) || isContextErr(werror.RootCause(err)) {
			return false, 0
		}
		return true, 0
	}
	if resp == nil {
		return true, 0
	}
	if isThrottle, retryAfter := IsThrottleResponse(resp); isThrottle {
		return true, retryAfter
	}
	if IsUnavailableResponse(resp) {
		return true, 0
	}
	return false, 0
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsThrottleResponse returns true for a 429 response, along with the delay from its Retry-After header.
func IsThrottleResponse(resp *http.Response) (bool, time.Duration) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return false, 0
	}
	return true, retryAfter(resp.Header.Get("Retry-After"))
}

// IsUnavailableResponse returns true for a 503 response.
func IsUnavailableResponse(resp *http.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusServiceUnavailable
}

func retryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	var d time.Duration
	if seconds, err := strconv.Atoi(value); err == nil {
		d = time.Duration(seconds) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		d = time.Until(at)
	}
	if d < 0 {
		return 0
	}
	if d > maxRetryAfter {
		return maxRetryAfter
	}
	return d
}

// DrainBody reads the remainder of the response body and closes it so the connection can be reused.
func DrainBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
