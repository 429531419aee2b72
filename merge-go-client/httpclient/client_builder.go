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

// Package httpclient provides the HTTP transport used by the API resource clients: request building, retries,
// authentication headers, error decoding and metrics.
package httpclient

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-contract/useragent"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	defaultServiceName         = "merge"
	defaultDialTimeout         = 5 * time.Second
	defaultHTTPTimeout         = 60 * time.Second
	defaultKeepAlive           = 30 * time.Second
	defaultIdleConnTimeout     = 90 * time.Second
	defaultTLSHandshakeTimeout = 10 * time.Second
	defaultMaxIdleConns        = 200
	defaultMaxIdleConnsPerHost = 100
	defaultMaxNumRetries       = 2
	defaultInitialBackoff      = 250 * time.Millisecond
	defaultMaxBackoff          = 2 * time.Second
)

type clientBuilder struct {
	// params holds the validated configuration. Its URIs, auth tokens and retry parameters are read on every
	// request; the transport settings are read once when the client is built.
	params refreshable.Refreshable

	overrides                     []func(*validatedClientParams)
	httpClient                    *http.Client
	userAgent                     string
	middlewares                   []Middleware
	errorDecoder                  ErrorDecoder
	bufferPool                    bytesbuffers.Pool
	disableTraceHeaderPropagation bool
	metricsTagProviders           []TagsProvider
}

// NewClient returns a configured client ready for use.
// We apply "sane defaults" before applying the provided params.
func NewClient(params ...ClientParam) (Client, error) {
	return NewClientFromRefreshableConfig(context.Background(), NewRefreshingClientConfig(refreshable.NewDefaultRefreshable(ClientConfig{})), params...)
}

// NewClientFromRefreshableConfig returns a client whose URIs, tokens and retry settings follow the current value
// of config. Updates which fail validation are ignored and the last valid configuration stays in effect.
func NewClientFromRefreshableConfig(ctx context.Context, config RefreshableClientConfig, params ...ClientParam) (Client, error) {
	validated, err := refreshable.NewMapValidatingRefreshable(config, func(i interface{}) (interface{}, error) {
		return newValidatedClientParamsFromConfig(ctx, i.(ClientConfig))
	})
	if err != nil {
		return nil, err
	}
	b := &clientBuilder{
		params:       validated,
		userAgent:    useragent.Default.String(),
		errorDecoder: restErrorDecoder{},
	}
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, err
		}
	}
	return b.build(ctx)
}

func (b *clientBuilder) build(ctx context.Context) (Client, error) {
	current := b.current()
	if len(current.URIs) == 0 {
		return nil, werror.ErrorWithContextParams(ctx, "httpclient: no base URIs are configured; use WithBaseURLs or WithConfig")
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = newHTTPClient(current)
	}
	var metricsMiddleware Middleware
	if !current.DisableMetrics {
		m, err := MetricsMiddleware(current.ServiceName, append(b.metricsTagProviders, staticTags(current.MetricsTags))...)
		if err != nil {
			return nil, err
		}
		metricsMiddleware = m
	}
	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	transport = wrapTransport(transport, authMiddleware{tokens: b.mapped(func(p validatedClientParams) interface{} { return p.Auth })})
	transport = wrapTransport(transport, b.middlewares...)
	transport = wrapTransport(transport, metricsMiddleware, recoveryMiddleware{})

	clientCopy := *httpClient
	clientCopy.Transport = transport
	return &clientImpl{
		client:                        clientCopy,
		uris:                          b.mapped(func(p validatedClientParams) interface{} { return p.URIs }),
		retry:                         b.mapped(func(p validatedClientParams) interface{} { return p.Retry }),
		userAgent:                     b.userAgent,
		errorDecoder:                  b.errorDecoder,
		bufferPool:                    b.bufferPool,
		disableTraceHeaderPropagation: b.disableTraceHeaderPropagation,
	}, nil
}

// current returns the validated configuration with client param overrides applied.
func (b *clientBuilder) current() validatedClientParams {
	return b.override(b.params.Current())
}

func (b *clientBuilder) override(i interface{}) validatedClientParams {
	p := i.(validatedClientParams)
	for _, o := range b.overrides {
		o(&p)
	}
	return p
}

func (b *clientBuilder) mapped(fn func(validatedClientParams) interface{}) refreshable.Refreshable {
	return b.params.Map(func(i interface{}) interface{} {
		return fn(b.override(i))
	})
}

func newHTTPClient(p validatedClientParams) *http.Client {
	dialer := &net.Dialer{
		Timeout:   p.Dialer.DialTimeout,
		KeepAlive: p.Dialer.KeepAlive,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          p.Transport.MaxIdleConns,
		MaxIdleConnsPerHost:   p.Transport.MaxIdleConnsPerHost,
		DisableKeepAlives:     p.Transport.DisableKeepAlives,
		IdleConnTimeout:       p.Transport.IdleConnTimeout,
		ResponseHeaderTimeout: p.Transport.ResponseHeaderTimeout,
		TLSHandshakeTimeout:   p.Transport.TLSHandshakeTimeout,
		TLSClientConfig:       p.Transport.TLSConfig,
		ForceAttemptHTTP2:     true,
	}
	if p.Transport.HTTPProxyURL != nil {
		transport.Proxy = http.ProxyURL(p.Transport.HTTPProxyURL)
	} else if p.Transport.ProxyFromEnvironment {
		transport.Proxy = http.ProxyFromEnvironment
	}
	return &http.Client{
		Transport: transport,
		Timeout:   p.Timeout,
	}
}
