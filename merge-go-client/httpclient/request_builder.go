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
	"net/http"
	"net/url"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-tracing/wtracing"
)

const (
	traceIDHeaderKey   = "X-B3-TraceId"
	userAgentHeaderKey = "User-Agent"
)

type requestBuilder struct {
	method         string
	path           string
	headers        http.Header
	query          url.Values
	bodyMiddleware *bodyMiddleware
	errorDecoder   ErrorDecoder

	middlewares  []Middleware
	configureCtx []func(context.Context) context.Context
}

// RequestParam configures a single request.
type RequestParam interface {
	apply(*requestBuilder) error
}

type requestParamFunc func(*requestBuilder) error

func (f requestParamFunc) apply(b *requestBuilder) error {
	return f(b)
}

// newRequestBuilder applies params to a new builder and returns it with the request context.
func (c *clientImpl) newRequestBuilder(ctx context.Context, params ...RequestParam) (*requestBuilder, context.Context, error) {
	b := &requestBuilder{
		headers:        c.initializeRequestHeaders(ctx),
		query:          make(url.Values),
		bodyMiddleware: &bodyMiddleware{bufferPool: c.bufferPool},
		errorDecoder:   c.errorDecoder,
	}
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, nil, err
		}
	}
	for _, configure := range b.configureCtx {
		ctx = configure(ctx)
	}
	if b.method == "" {
		return nil, nil, werror.ErrorWithContextParams(ctx, "httpclient: use WithRequestMethod() to specify HTTP method")
	}
	return b, ctx, nil
}

// newRequest returns the *http.Request for one attempt against baseURL.
func (b *requestBuilder) newRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, b.method, joinURIAndPath(baseURL, b.path), nil)
	if err != nil {
		return nil, werror.WrapWithContextParams(ctx, err, "failed to build new HTTP request")
	}
	req.Header = b.headers.Clone()
	if q := b.query.Encode(); q != "" {
		req.URL.RawQuery = q
	}
	return req, nil
}

func (c *clientImpl) initializeRequestHeaders(ctx context.Context) http.Header {
	headers := make(http.Header)
	if c.userAgent != "" {
		headers.Set(userAgentHeaderKey, c.userAgent)
	}
	if !c.disableTraceHeaderPropagation {
		traceID := wtracing.TraceIDFromContext(ctx)
		if traceID != "" {
			headers.Set(traceIDHeaderKey, string(traceID))
		}
	}
	return headers
}

func joinURIAndPath(baseURI, reqPath string) string {
	if reqPath == "" {
		return baseURI
	}
	return strings.TrimSuffix(baseURI, "/") + "/" + strings.TrimPrefix(reqPath, "/")
}
