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

package httpclient_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-contract/codecs"
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	"github.com/merge-api/merge-go-client/merge-go-contract/useragent"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string, params ...httpclient.ClientParam) httpclient.Client {
	client, err := httpclient.NewClient(append([]httpclient.ClientParam{
		httpclient.WithBaseURLs([]string{serverURL}),
		httpclient.WithInitialBackoff(time.Millisecond),
		httpclient.WithMaxBackoff(5 * time.Millisecond),
	}, params...)...)
	require.NoError(t, err)
	return client
}

func TestAuthHeaders(t *testing.T) {
	var invoked bool
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		invoked = true
		assert.Equal(t, "Bearer api-token", req.Header.Get("Authorization"))
		assert.Equal(t, "account-token", req.Header.Get("X-Account-Token"))
		assert.True(t, strings.HasPrefix(req.Header.Get("User-Agent"), "merge-go-client/"), req.Header.Get("User-Agent"))
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL,
		httpclient.WithAPIToken("api-token"),
		httpclient.WithAccountToken("account-token"))
	resp, err := client.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, invoked)
}

func TestUserAgentProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		ua := req.Header.Get("User-Agent")
		assert.True(t, strings.HasPrefix(ua, "merge-cli/1.0.0 merge-go-client/"), ua)
		assert.Contains(t, ua, " golang/")
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL,
		httpclient.WithUserAgentProducts(useragent.MustNewProduct("merge-cli", "1.0.0")))
	_, err := client.Get(context.Background())
	require.NoError(t, err)
}

func TestRequestHeaderOverridesAccountToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "other-account", req.Header.Get("X-Account-Token"))
		assert.Equal(t, "custom-agent", req.Header.Get("User-Agent"))
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL,
		httpclient.WithAccountToken("account-token"),
		httpclient.WithUserAgent("custom-agent"))
	_, err := client.Get(context.Background(), httpclient.WithHeader("X-Account-Token", "other-account"))
	require.NoError(t, err)
}

func TestPathAndQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/ats/v1/jobs/a%2Fb", req.URL.EscapedPath())
		assert.Equal(t, "50", req.URL.Query().Get("page_size"))
		assert.Equal(t, []string{"x", "y"}, req.URL.Query()["expand"])
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/")
	_, err := client.Get(context.Background(),
		httpclient.WithPathf("/ats/v1/jobs/%s", "a/b"),
		httpclient.WithQueryValue("page_size", "50"),
		httpclient.WithQueryValues(map[string][]string{"expand": {"x", "y"}}))
	require.NoError(t, err)
}

func TestJSONRequestAndResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Jane"}`, string(body))
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"id":"c-1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, httpclient.WithBytesBufferPool(bytesbuffers.NewSizedPool(1, 10)))
	var out map[string]string
	resp, err := client.Post(context.Background(),
		httpclient.WithJSONRequest(map[string]string{"name": "Jane"}),
		httpclient.WithJSONResponse(&out))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"id": "c-1"}, out)
}

func TestCompressedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "gzip", req.Header.Get("Content-Encoding"))
		r, err := gzip.NewReader(req.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Jane"}`, string(body))
		rw.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Post(context.Background(), httpclient.WithCompressedRequest(map[string]string{"name": "Jane"}, codecs.JSON))
	require.NoError(t, err)
}

func TestRawResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/octet-stream", req.Header.Get("Accept"))
		_, _ = rw.Write([]byte("file contents"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.Get(context.Background(), httpclient.WithRawResponseBody())
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(body))
}

func TestRetryOnUnavailable(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		assert.JSONEq(t, `{"n":1}`, string(body), "request body is replayed on every attempt")
		if atomic.AddInt32(&attempts, 1) < 3 {
			rw.WriteHeader(http.StatusServiceUnavailable)
			_, _ = rw.Write([]byte(`not json`))
			return
		}
		_, _ = rw.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, httpclient.WithMaxRetries(2))
	var out map[string]bool
	_, err := client.Post(context.Background(), httpclient.WithJSONRequest(map[string]int{"n": 1}), httpclient.WithJSONResponse(&out))
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	assert.Equal(t, map[string]bool{"ok": true}, out)
}

func TestRetryOnThrottle(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			rw.Header().Set("Retry-After", "0")
			rw.WriteHeader(http.StatusTooManyRequests)
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestRetriesExhausted(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&attempts, 1)
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, httpclient.WithMaxRetries(1))
	resp, err := client.Get(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	code, ok := httpclient.StatusCodeFromError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestFailoverToNextURL(t *testing.T) {
	var goodHits int32
	bad := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&goodHits, 1)
		rw.WriteHeader(http.StatusOK)
	}))
	defer good.Close()

	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{bad.URL, good.URL}),
		httpclient.WithInitialBackoff(time.Millisecond),
		httpclient.WithMaxRetries(1))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := client.Get(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(5), atomic.LoadInt32(&goodHits))
}

func TestAPIError(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&attempts, 1)
		rw.WriteHeader(http.StatusUnauthorized)
		_, _ = rw.Write([]byte(`{"detail":"Invalid API key."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var out map[string]string
	_, err := client.Get(context.Background(), httpclient.WithJSONResponse(&out))
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts), "client errors are not retried")
	assert.Nil(t, out)

	mergeErr, ok := errors.AsError(err)
	require.True(t, ok)
	apiErr, ok := mergeErr.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key.", apiErr.Detail)
}

func TestDisableRestErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, httpclient.WithDisableRestErrors())
	resp, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCanceledBeforeDecode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		cancel()
		<-req.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var out map[string]string
	_, err := client.Get(ctx, httpclient.WithJSONResponse(&out))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestDecodeErrorIsNotRetried(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&attempts, 1)
		_, _ = rw.Write([]byte(`{"id":`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var out map[string]string
	_, err := client.Get(context.Background(), httpclient.WithJSONResponse(&out))
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestMissingMethod(t *testing.T) {
	client := newTestClient(t, "http://localhost")
	_, err := client.Do(context.Background())
	require.EqualError(t, err, "httpclient: use WithRequestMethod() to specify HTTP method")
}

func TestNoBaseURLs(t *testing.T) {
	_, err := httpclient.NewClient()
	require.Error(t, err)
	_, err = httpclient.NewClient(httpclient.WithBaseURLs(nil))
	require.Error(t, err)
}
