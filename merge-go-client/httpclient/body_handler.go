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
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/merge-api/merge-go-client/merge-go-contract/codecs"
	"github.com/palantir/pkg/bytesbuffers"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient/internal"
)

type bodyMiddleware struct {
	requestInput   interface{}
	requestEncoder codecs.Encoder

	// if rawOutput is true, the body of the response is not drained before returning -- it is the responsibility of the
	// caller to read from and properly close the response body.
	rawOutput       bool
	responseOutput  interface{}
	responseDecoder codecs.Decoder

	bufferPool bytesbuffers.Pool
}

// encodeRequestBody encodes the request input once. The returned RequestBody is set on every attempt, and the
// returned function must be called once the request has completed.
func (b *bodyMiddleware) encodeRequestBody(ctx context.Context) (RequestBody, func(), error) {
	if b.requestInput == nil {
		return nil, func() {}, nil
	}

	// If the requestEncoder is nil, the requestInput must be a RequestBody used directly as the request body.
	if b.requestEncoder == nil {
		requestBody, ok := b.requestInput.(RequestBody)
		if !ok {
			return nil, nil, werror.ErrorWithContextParams(ctx, "requestEncoder is nil but requestInput is not RequestBody",
				werror.SafeParam("requestInputType", fmt.Sprintf("%T", b.requestInput)))
		}
		return requestBody, func() {}, nil
	}

	// If buffer pool is set, use it with Encode and return a func to return the buffer to the pool.
	if b.bufferPool != nil {
		buf := b.bufferPool.Get()
		cleanup := func() {
			b.bufferPool.Put(buf)
		}
		if err := b.requestEncoder.Encode(buf, b.requestInput); err != nil {
			cleanup()
			return nil, nil, werror.WrapWithContextParams(ctx, err, "failed to encode request object")
		}
		return RequestBodyInMemory(buf), cleanup, nil
	}

	// If buffer pool is not set, let Marshal allocate memory for the serialized object.
	buf, err := b.requestEncoder.Marshal(b.requestInput)
	if err != nil {
		return nil, nil, werror.WrapWithContextParams(ctx, err, "failed to encode request object")
	}
	return RequestBodyInMemory(bytes.NewReader(buf)), func() {}, nil
}

// readResponse decodes the body of a successful response into the configured output, then drains and closes
// it. With a raw output the body is left open for the caller.
func (b *bodyMiddleware) readResponse(ctx context.Context, resp *http.Response) error {
	if b.rawOutput {
		return nil
	}
	defer internal.DrainBody(resp)

	if b.responseOutput == nil || resp.Body == nil || resp.ContentLength == 0 || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := b.responseDecoder.Decode(resp.Body, b.responseOutput); err != nil {
		svc1log.FromContext(ctx).Debug("Failed to decode response body",
			svc1log.SafeParam("statusCode", resp.StatusCode),
			svc1log.SafeParam("outputType", fmt.Sprintf("%T", b.responseOutput)))
		return werror.WrapWithContextParams(ctx, err, "failed to decode response body",
			werror.SafeParam("responseStatusCode", resp.StatusCode))
	}
	return nil
}
