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
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/tlsconfig"
	werror "github.com/palantir/witchcraft-go-error"
)

// ClientConfig represents the configuration for a client of the API.
type ClientConfig struct {
	// ServiceName tags the client's metrics. Defaults to "merge".
	ServiceName string `json:"service-name,omitempty" yaml:"service-name,omitempty"`
	// URIs is a list of fully specified base URIs for the API, e.g. "https://api.merge.dev/api". The path of a
	// URI is prepended to the request path specified when invoking the client.
	URIs []string `json:"uris,omitempty" yaml:"uris,omitempty"`
	// APIToken is sent as a Bearer token in the Authorization header. This takes precedence over APITokenFile.
	APIToken *string `json:"api-token,omitempty" yaml:"api-token,omitempty"`
	// APITokenFile is an on-disk location containing the API token. If APITokenFile is provided and APIToken
	// is not, the content of the file will be used as the APIToken.
	APITokenFile *string `json:"api-token-file,omitempty" yaml:"api-token-file,omitempty"`
	// AccountToken is sent in the X-Account-Token header and selects the linked account requests apply to.
	AccountToken *string `json:"account-token,omitempty" yaml:"account-token,omitempty"`
	// ProxyFromEnvironment enables reading HTTP proxy information from environment variables.
	// See 'http.ProxyFromEnvironment' documentation for specific behavior.
	ProxyFromEnvironment *bool `json:"proxy-from-environment,omitempty" yaml:"proxy-from-environment,omitempty"`
	// ProxyURL uses the provided URL for proxying the request. Schemes http and https are supported.
	ProxyURL *string `json:"proxy-url,omitempty" yaml:"proxy-url,omitempty"`

	// MaxNumRetries controls the number of times the client will retry retryable failures.
	// If unset, this defaults to 2.
	MaxNumRetries *int `json:"max-num-retries,omitempty" yaml:"max-num-retries,omitempty"`
	// InitialBackoff controls the duration of the first backoff interval. This delay will double for each subsequent backoff, capped at the MaxBackoff value.
	InitialBackoff *time.Duration `json:"initial-backoff,omitempty" yaml:"initial-backoff,omitempty"`
	// MaxBackoff controls the maximum duration the client will sleep before retrying a request.
	MaxBackoff *time.Duration `json:"max-backoff,omitempty" yaml:"max-backoff,omitempty"`

	// ConnectTimeout is the maximum time for the net.Dialer to connect to the remote host.
	ConnectTimeout *time.Duration `json:"connect-timeout,omitempty" yaml:"connect-timeout,omitempty"`
	// ReadTimeout is the maximum timeout for non-mutating requests.
	// NOTE: The current implementation uses the max(ReadTimeout, WriteTimeout) to set the http.Client timeout value.
	ReadTimeout *time.Duration `json:"read-timeout,omitempty" yaml:"read-timeout,omitempty"`
	// WriteTimeout is the maximum timeout for mutating requests.
	// NOTE: The current implementation uses the max(ReadTimeout, WriteTimeout) to set the http.Client timeout value.
	WriteTimeout *time.Duration `json:"write-timeout,omitempty" yaml:"write-timeout,omitempty"`
	// IdleConnTimeout sets the timeout for idle connections.
	IdleConnTimeout *time.Duration `json:"idle-conn-timeout,omitempty" yaml:"idle-conn-timeout,omitempty"`
	// TLSHandshakeTimeout sets the timeout for TLS handshakes
	TLSHandshakeTimeout *time.Duration `json:"tls-handshake-timeout,omitempty" yaml:"tls-handshake-timeout,omitempty"`
	// ResponseHeaderTimeout, if non-zero, specifies the amount of time to wait for a server's response headers after fully
	// writing the request (including its body, if any). This time does not include the time to read the response body.
	ResponseHeaderTimeout *time.Duration `json:"response-header-timeout,omitempty" yaml:"response-header-timeout,omitempty"`
	// KeepAlive sets the time to keep idle connections alive.
	// If unset, the client defaults to 30s. If set to 0, the client will not keep connections alive.
	KeepAlive *time.Duration `json:"keep-alive,omitempty" yaml:"keep-alive,omitempty"`

	// MaxIdleConns sets the number of reusable TCP connections the client will maintain.
	// If unset, the client defaults to 200.
	MaxIdleConns *int `json:"max-idle-conns,omitempty" yaml:"max-idle-conns,omitempty"`
	// MaxIdleConnsPerHost sets the number of reusable TCP connections the client will maintain per destination.
	// If unset, the client defaults to 100.
	MaxIdleConnsPerHost *int `json:"max-idle-conns-per-host,omitempty" yaml:"max-idle-conns-per-host,omitempty"`

	// Metrics allows disabling metric emission or adding additional static tags to the client metrics.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	// Security configures the TLS configuration for the client. It accepts file paths which should be
	// absolute paths or relative to the process's current working directory.
	Security SecurityConfig `json:"security,omitempty" yaml:"security,omitempty"`
}

type MetricsConfig struct {
	// Enabled can be used to disable metrics with an explicit 'false'. Metrics are enabled if this is unset.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Tags allows setting arbitrary additional tags on the metrics emitted by the client.
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type SecurityConfig struct {
	CAFiles  []string `json:"ca-files,omitempty" yaml:"ca-files,omitempty"`
	CertFile string   `json:"cert-file,omitempty" yaml:"cert-file,omitempty"`
	KeyFile  string   `json:"key-file,omitempty" yaml:"key-file,omitempty"`

	// InsecureSkipVerify sets the InsecureSkipVerify field for the HTTP client's tls config.
	// This option should only be used in clients that have other ways to establish trust with servers.
	InsecureSkipVerify *bool `json:"insecure-skip-verify,omitempty" yaml:"insecure-skip-verify,omitempty"`
}

// MergeClientConfig merges two instances of ClientConfig, preferring values from conf over defaults.
func MergeClientConfig(conf, defaults ClientConfig) ClientConfig {
	if conf.ServiceName == "" {
		conf.ServiceName = defaults.ServiceName
	}
	if len(conf.URIs) == 0 {
		conf.URIs = defaults.URIs
	}
	if conf.APIToken == nil {
		conf.APIToken = defaults.APIToken
	}
	if conf.APITokenFile == nil {
		conf.APITokenFile = defaults.APITokenFile
	}
	if conf.AccountToken == nil {
		conf.AccountToken = defaults.AccountToken
	}
	if conf.MaxNumRetries == nil {
		conf.MaxNumRetries = defaults.MaxNumRetries
	}
	if conf.ConnectTimeout == nil {
		conf.ConnectTimeout = defaults.ConnectTimeout
	}
	if conf.ReadTimeout == nil {
		conf.ReadTimeout = defaults.ReadTimeout
	}
	if conf.WriteTimeout == nil {
		conf.WriteTimeout = defaults.WriteTimeout
	}
	if conf.IdleConnTimeout == nil {
		conf.IdleConnTimeout = defaults.IdleConnTimeout
	}
	if conf.TLSHandshakeTimeout == nil {
		conf.TLSHandshakeTimeout = defaults.TLSHandshakeTimeout
	}
	if conf.ResponseHeaderTimeout == nil {
		conf.ResponseHeaderTimeout = defaults.ResponseHeaderTimeout
	}
	if conf.KeepAlive == nil {
		conf.KeepAlive = defaults.KeepAlive
	}
	if conf.MaxIdleConns == nil {
		conf.MaxIdleConns = defaults.MaxIdleConns
	}
	if conf.MaxIdleConnsPerHost == nil {
		conf.MaxIdleConnsPerHost = defaults.MaxIdleConnsPerHost
	}
	if conf.Metrics.Enabled == nil {
		conf.Metrics.Enabled = defaults.Metrics.Enabled
	}
	if conf.InitialBackoff == nil {
		conf.InitialBackoff = defaults.InitialBackoff
	}
	if conf.MaxBackoff == nil {
		conf.MaxBackoff = defaults.MaxBackoff
	}
	if conf.ProxyFromEnvironment == nil {
		conf.ProxyFromEnvironment = defaults.ProxyFromEnvironment
	}
	if conf.ProxyURL == nil {
		conf.ProxyURL = defaults.ProxyURL
	}

	if len(defaults.Metrics.Tags) != 0 {
		tags := make(map[string]string, len(defaults.Metrics.Tags)+len(conf.Metrics.Tags))
		for k, v := range defaults.Metrics.Tags {
			tags[k] = v
		}
		for k, v := range conf.Metrics.Tags {
			tags[k] = v
		}
		conf.Metrics.Tags = tags
	}
	if conf.Security.CAFiles == nil {
		conf.Security.CAFiles = defaults.Security.CAFiles
	}
	if conf.Security.CertFile == "" {
		conf.Security.CertFile = defaults.Security.CertFile
	}
	if conf.Security.KeyFile == "" {
		conf.Security.KeyFile = defaults.Security.KeyFile
	}
	if conf.Security.InsecureSkipVerify == nil {
		conf.Security.InsecureSkipVerify = defaults.Security.InsecureSkipVerify
	}
	return conf
}

// dialerParams configure the net.Dialer of the transport.
type dialerParams struct {
	DialTimeout time.Duration
	KeepAlive   time.Duration
}

// transportParams configure the http.Transport of the client.
type transportParams struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	DisableKeepAlives     bool
	IdleConnTimeout       time.Duration
	ResponseHeaderTimeout time.Duration
	TLSHandshakeTimeout   time.Duration
	ProxyFromEnvironment  bool
	HTTPProxyURL          *url.URL
	TLSConfig             *tls.Config
}

// retryParams configure the retry loop of a single request.
type retryParams struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// validatedClientParams is a ClientConfig after validation and defaulting.
type validatedClientParams struct {
	ServiceName    string
	URIs           []string
	Auth           authTokens
	Dialer         dialerParams
	Transport      transportParams
	Retry          retryParams
	Timeout        time.Duration
	DisableMetrics bool
	MetricsTags    metrics.Tags
}

func newValidatedClientParamsFromConfig(ctx context.Context, config ClientConfig) (validatedClientParams, error) {
	tlsConfig, err := newTLSConfig(config.Security)
	if err != nil {
		return validatedClientParams{}, werror.WrapWithContextParams(ctx, err, "invalid security configuration")
	}

	transport := transportParams{
		MaxIdleConns:          derefPtr(config.MaxIdleConns, defaultMaxIdleConns),
		MaxIdleConnsPerHost:   derefPtr(config.MaxIdleConnsPerHost, defaultMaxIdleConnsPerHost),
		DisableKeepAlives:     derefPtr(config.KeepAlive, defaultKeepAlive) == 0,
		IdleConnTimeout:       derefPtr(config.IdleConnTimeout, defaultIdleConnTimeout),
		ResponseHeaderTimeout: derefPtr(config.ResponseHeaderTimeout, 0),
		TLSHandshakeTimeout:   derefPtr(config.TLSHandshakeTimeout, defaultTLSHandshakeTimeout),
		ProxyFromEnvironment:  derefPtr(config.ProxyFromEnvironment, true),
		TLSConfig:             tlsConfig,
	}
	if config.ProxyURL != nil {
		proxyURL, err := url.ParseRequestURI(*config.ProxyURL)
		if err != nil {
			return validatedClientParams{}, werror.WrapWithContextParams(ctx, err, "invalid proxy url")
		}
		switch proxyURL.Scheme {
		case "http", "https":
			transport.HTTPProxyURL = proxyURL
		default:
			return validatedClientParams{}, werror.ErrorWithContextParams(ctx, "invalid proxy url: only http(s) is supported",
				werror.SafeParam("scheme", proxyURL.Scheme))
		}
	}

	var auth authTokens
	if config.APIToken != nil {
		auth.APIToken = *config.APIToken
	} else if config.APITokenFile != nil {
		file := *config.APITokenFile
		token, err := os.ReadFile(file)
		if err != nil {
			return validatedClientParams{}, werror.WrapWithContextParams(ctx, err, "failed to read api-token-file", werror.SafeParam("file", file))
		}
		auth.APIToken = strings.TrimSpace(string(token))
	}
	if config.AccountToken != nil {
		auth.AccountToken = *config.AccountToken
	}

	metricsTags, err := metrics.NewTags(config.Metrics.Tags)
	if err != nil {
		return validatedClientParams{}, werror.WrapWithContextParams(ctx, err, "invalid metrics tags")
	}

	maxAttempts := defaultMaxNumRetries + 1
	if config.MaxNumRetries != nil {
		if *config.MaxNumRetries < 0 {
			return validatedClientParams{}, werror.ErrorWithContextParams(ctx, "max-num-retries must not be negative",
				werror.SafeParam("maxNumRetries", *config.MaxNumRetries))
		}
		maxAttempts = *config.MaxNumRetries + 1
	}

	var timeout time.Duration
	if config.ReadTimeout == nil && config.WriteTimeout == nil {
		timeout = defaultHTTPTimeout
	} else if config.ReadTimeout == nil {
		timeout = *config.WriteTimeout
	} else if config.WriteTimeout == nil {
		timeout = *config.ReadTimeout
	} else {
		timeout = max(*config.ReadTimeout, *config.WriteTimeout)
	}

	var uris []string
	for _, uriStr := range config.URIs {
		if uriStr == "" {
			continue
		}
		if _, err := url.ParseRequestURI(uriStr); err != nil {
			return validatedClientParams{}, werror.WrapWithContextParams(ctx, err, "invalid url", werror.SafeParam("uri", uriStr))
		}
		uris = append(uris, uriStr)
	}

	serviceName := config.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	return validatedClientParams{
		ServiceName: serviceName,
		URIs:        uris,
		Auth:        auth,
		Dialer: dialerParams{
			DialTimeout: derefPtr(config.ConnectTimeout, defaultDialTimeout),
			KeepAlive:   derefPtr(config.KeepAlive, defaultKeepAlive),
		},
		Transport: transport,
		Retry: retryParams{
			MaxAttempts:    maxAttempts,
			InitialBackoff: derefPtr(config.InitialBackoff, defaultInitialBackoff),
			MaxBackoff:     derefPtr(config.MaxBackoff, defaultMaxBackoff),
		},
		Timeout:        timeout,
		DisableMetrics: !derefPtr(config.Metrics.Enabled, true),
		MetricsTags:    metricsTags,
	}, nil
}

func newTLSConfig(security SecurityConfig) (*tls.Config, error) {
	var tlsParams []tlsconfig.ClientParam
	if len(security.CAFiles) != 0 {
		tlsParams = append(tlsParams, tlsconfig.ClientRootCAFiles(security.CAFiles...))
	}
	if security.CertFile != "" && security.KeyFile != "" {
		tlsParams = append(tlsParams, tlsconfig.ClientKeyPairFiles(security.CertFile, security.KeyFile))
	}
	tlsConfig, err := tlsconfig.NewClientConfig(tlsParams...)
	if err != nil {
		return nil, err
	}
	if derefPtr(security.InsecureSkipVerify, false) {
		tlsConfig.InsecureSkipVerify = true
	}
	return tlsConfig, nil
}

func derefPtr[T any](ptr *T, defaultVal T) T {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}
