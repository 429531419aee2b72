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
	"time"

	"github.com/palantir/pkg/retry"
)

// RequestRetrier manages the attempts of a single request. It tracks the backoff timing between subsequent
// attempts and the number of attempts made so far.
type RequestRetrier struct {
	ctx     context.Context
	retrier retry.Retrier

	maxAttempts  int
	attemptCount int
}

// NewRequestRetrier creates a new request retrier. A maxAttempts of 0 means no limit.
func NewRequestRetrier(ctx context.Context, retrier retry.Retrier, maxAttempts int) *RequestRetrier {
	return &RequestRetrier{
		ctx:          ctx,
		retrier:      retrier,
		maxAttempts:  maxAttempts,
		attemptCount: 0,
	}
}

func (r *RequestRetrier) attemptsRemaining() bool {
	if r.maxAttempts == 0 {
		return true
	}
	return r.attemptCount < r.maxAttempts
}

// AttemptCount returns the number of attempts started so far.
func (r *RequestRetrier) AttemptCount() int {
	return r.attemptCount
}

// Next returns true if another attempt should be made. The first call returns immediately. Later calls wait
// for the backoff interval and then for retryAfter, the delay requested by the server, if it is positive.
// Next returns false once the attempts are exhausted or the context is done.
func (r *RequestRetrier) Next(retryAfter time.Duration) bool {
	if !r.attemptsRemaining() {
		return false
	}
	r.attemptCount++
	if !r.retrier.Next() {
		return false
	}
	if retryAfter <= 0 {
		return true
	}
	timer := time.NewTimer(retryAfter)
	defer timer.Stop()
	select {
	case <-r.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
