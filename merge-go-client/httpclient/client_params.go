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
	"crypto/tls"
	"net/http"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-contract/useragent"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

// ClientParam configures a Client. Params are applied in order, on top of the configuration the client was
// created from.
type ClientParam interface {
	apply(builder *clientBuilder) error
}

type clientParamFunc func(builder *clientBuilder) error

func (f clientParamFunc) apply(b *clientBuilder) error {
	return f(b)
}

func overrideParam(fn func(*validatedClientParams)) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.overrides = append(b.overrides, fn)
		return nil
	})
}

// WithConfig replaces the client's configuration with config. Params applied after WithConfig take precedence
// over it.
func WithConfig(config ClientConfig) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		params, err := newValidatedClientParamsFromConfig(context.TODO(), config)
		if err != nil {
			return err
		}
		b.params = refreshable.NewDefaultRefreshable(params)
		return nil
	})
}

// WithBaseURLs sets the base URLs requests are sent to. On retryable failures, the next URL is tried.
func WithBaseURLs(urls []string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if len(urls) == 0 {
			return werror.Error("httpclient: at least one base URL is required")
		}
		uris := append([]string(nil), urls...)
		b.overrides = append(b.overrides, func(p *validatedClientParams) {
			p.URIs = uris
		})
		return nil
	})
}

// WithUserAgent sets the User-Agent header of every request, replacing the default product stack.
func WithUserAgent(userAgent string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.userAgent = userAgent
		return nil
	})
}

// WithUserAgentProducts prepends products, such as the name and version of the calling application, to the
// default product stack.
func WithUserAgentProducts(products ...useragent.Product) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.userAgent = useragent.Default.With(products...).String()
		return nil
	})
}

// WithHTTPTimeout sets the timeout of each request attempt, including reading the response body.
func WithHTTPTimeout(timeout time.Duration) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Timeout = timeout
	})
}

// WithAPIToken sets the token sent as a Bearer token in the Authorization header.
func WithAPIToken(token string) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Auth.APIToken = token
	})
}

// WithAccountToken sets the token sent in the X-Account-Token header.
func WithAccountToken(token string) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Auth.AccountToken = token
	})
}

// WithMiddleware wraps the client's transport in h. Middlewares run on every attempt, inside the metrics and
// recovery middlewares and outside the authentication middleware.
func WithMiddleware(h Middleware) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.middlewares = append(b.middlewares, h)
		return nil
	})
}

// WithErrorDecoder sets the decoder used to turn unsuccessful responses into errors.
func WithErrorDecoder(errorDecoder ErrorDecoder) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.errorDecoder = errorDecoder
		return nil
	})
}

// WithDisableRestErrors disables the decoding of responses with a status code >= 400 into errors.
// The caller is responsible for checking the status code of the returned response.
func WithDisableRestErrors() ClientParam {
	return WithErrorDecoder(nil)
}

// WithMaxRetries sets the number of times a retryable failure is retried.
func WithMaxRetries(maxRetries int) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if maxRetries < 0 {
			return werror.Error("httpclient: max retries must not be negative", werror.SafeParam("maxRetries", maxRetries))
		}
		b.overrides = append(b.overrides, func(p *validatedClientParams) {
			p.Retry.MaxAttempts = maxRetries + 1
		})
		return nil
	})
}

// WithInitialBackoff sets the delay before the first retry. Each subsequent delay doubles, up to the max backoff.
func WithInitialBackoff(initialBackoff time.Duration) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Retry.InitialBackoff = initialBackoff
	})
}

// WithMaxBackoff caps the delay between retries.
func WithMaxBackoff(maxBackoff time.Duration) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Retry.MaxBackoff = maxBackoff
	})
}

// WithBytesBufferPool stores a bytes buffer pool on the client for use in encoding request objects.
// This prevents allocating a new byte buffer for every request.
func WithBytesBufferPool(pool bytesbuffers.Pool) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.bufferPool = pool
		return nil
	})
}

// WithTLSConfig sets the TLS configuration of the client's transport.
func WithTLSConfig(config *tls.Config) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.Transport.TLSConfig = config
	})
}

// WithHTTPClient sends requests through client instead of a transport built from the configuration. The
// client's middlewares are layered on top of client.Transport.
func WithHTTPClient(client *http.Client) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.httpClient = client
		return nil
	})
}

// WithDisableTraceHeaderPropagation disables setting the X-B3-TraceId header from the trace in the request context.
func WithDisableTraceHeaderPropagation() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.disableTraceHeaderPropagation = true
		return nil
	})
}

// WithDisableMetrics disables the client.response timer.
func WithDisableMetrics() ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.DisableMetrics = true
	})
}

// WithServiceName sets the service-name tag of the client's metrics.
func WithServiceName(serviceName string) ClientParam {
	return overrideParam(func(p *validatedClientParams) {
		p.ServiceName = serviceName
	})
}

// WithMetricsTagProviders adds tags to the client.response timer.
func WithMetricsTagProviders(providers ...TagsProvider) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.metricsTagProviders = append(b.metricsTagProviders, providers...)
		return nil
	})
}
