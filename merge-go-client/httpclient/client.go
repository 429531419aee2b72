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
	"context"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient/internal"
)

// A Client executes requests against the configured API.
//
// The Get/Post/Patch/Put/Delete methods are for conveniently setting the method type and calling Do()
type Client interface {
	// Do executes a full request. Any input or output should be specified via params.
	// By the time it is returned, the response's body will be fully read and closed.
	// Use the WithResponse* params to unmarshal the body before Do() returns.
	//
	// Retryable failures (transport errors, 429 and 503 responses) are retried with exponential backoff,
	// moving on to the next base URL. The response body is decoded only once, from the final attempt.
	//
	// In the case of a response with StatusCode >= 400, Do() will return a nil response and a non-nil error.
	// Use StatusCodeFromError(err) to retrieve the code from the error
	// and WithDisableRestErrors() to disable this behavior on your client.
	//
	// If ctx is canceled before the response is decoded, Do() returns the context's error and nothing is decoded.
	Do(ctx context.Context, params ...RequestParam) (*http.Response, error)

	Get(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Post(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Patch(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Put(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Delete(ctx context.Context, params ...RequestParam) (*http.Response, error)
}

type clientImpl struct {
	client http.Client

	uris                          refreshable.Refreshable // []string
	retry                         refreshable.Refreshable // retryParams
	userAgent                     string
	errorDecoder                  ErrorDecoder
	bufferPool                    bytesbuffers.Pool
	disableTraceHeaderPropagation bool
}

func (c *clientImpl) Get(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodGet))...)
}

func (c *clientImpl) Post(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodPost))...)
}

func (c *clientImpl) Patch(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodPatch))...)
}

func (c *clientImpl) Put(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodPut))...)
}

func (c *clientImpl) Delete(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodDelete))...)
}

func (c *clientImpl) Do(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	b, ctx, err := c.newRequestBuilder(ctx, params...)
	if err != nil {
		return nil, err
	}
	uris, _ := c.uris.Current().([]string)
	if len(uris) == 0 {
		return nil, werror.ErrorWithContextParams(ctx, "httpclient: no base URIs are configured")
	}
	body, cleanup, err := b.bodyMiddleware.encodeRequestBody(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	retryParams := c.retry.Current().(retryParams)
	retrier := internal.NewRequestRetrier(ctx, retry.Start(ctx,
		retry.WithInitialBackoff(retryParams.InitialBackoff),
		retry.WithMaxBackoff(retryParams.MaxBackoff),
		retry.WithMultiplier(2),
		retry.WithRandomizationFactor(0.15),
	), retryParams.MaxAttempts)

	offset := rand.Intn(len(uris))
	var resp *http.Response
	var retryAfter time.Duration
	for retrier.Next(retryAfter) {
		// a response reaching here was retryable and is discarded
		internal.DrainBody(resp)
		uri := uris[(offset+retrier.AttemptCount()-1)%len(uris)]
		resp, err = c.doOnce(ctx, b, uri, body)
		var retryable bool
		retryable, retryAfter = internal.ShouldRetry(resp, err)
		if !retryable {
			break
		}
		logRetry(ctx, retrier.AttemptCount(), uri, resp, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		internal.DrainBody(resp)
		return nil, werror.WrapWithContextParams(ctx, ctxErr, "httpclient request canceled")
	}
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, werror.ErrorWithContextParams(ctx, "httpclient: no request attempt was made")
	}

	errorDecoder := b.errorDecoder
	if errorDecoder != nil && errorDecoder.Handles(resp) {
		defer internal.DrainBody(resp)
		return nil, errorDecoder.DecodeError(resp)
	}
	if err := b.bodyMiddleware.readResponse(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *clientImpl) doOnce(ctx context.Context, b *requestBuilder, baseURI string, body RequestBody) (*http.Response, error) {
	req, err := b.newRequest(ctx, baseURI)
	if err != nil {
		return nil, err
	}
	if body != nil {
		if err := body.setRequestBody(req); err != nil {
			return nil, werror.WrapWithContextParams(ctx, err, "failed to set request body")
		}
	}

	// shallow copy so we can overwrite the Transport with a wrapped one.
	clientCopy := c.client
	clientCopy.Transport = wrapTransport(clientCopy.Transport, b.middlewares...)

	resp, respErr := clientCopy.Do(req)
	return resp, unwrapURLError(ctx, respErr)
}

func logRetry(ctx context.Context, attempt int, uri string, resp *http.Response, err error) {
	params := []svc1log.Param{
		svc1log.SafeParam("attempt", attempt),
		svc1log.SafeParam("requestHost", hostOf(uri)),
	}
	if resp != nil {
		params = append(params, svc1log.SafeParam("statusCode", resp.StatusCode))
	}
	if err != nil {
		params = append(params, svc1log.Stacktrace(err))
	}
	svc1log.FromContext(ctx).Debug("Retrying request after retryable failure", params...)
}

func hostOf(uri string) string {
	if parsed, err := url.Parse(uri); err == nil {
		return parsed.Host
	}
	return ""
}

// unwrapURLError converts a *url.Error to a werror. We need this because all
// errors from the stdlib's client.Do are wrapped in *url.Error, and if we
// were to blindly return that we would lose any werror params stored on the
// underlying Err.
func unwrapURLError(ctx context.Context, respErr error) error {
	if respErr == nil {
		return nil
	}

	urlErr, ok := respErr.(*url.Error)
	if !ok {
		// We don't recognize this as a url.Error, just return the original.
		return respErr
	}
	params := []werror.Param{werror.SafeParam("requestMethod", urlErr.Op)}

	if parsedURL, _ := url.Parse(urlErr.URL); parsedURL != nil {
		params = append(params,
			werror.SafeParam("requestHost", parsedURL.Host),
			werror.UnsafeParam("requestPath", parsedURL.Path))
	}

	return werror.WrapWithContextParams(ctx, urlErr.Err, "httpclient request failed", params...)
}
