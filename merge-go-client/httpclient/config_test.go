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
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/palantir/pkg/refreshable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestClientConfigYAML(t *testing.T) {
	var conf httpclient.ClientConfig
	require.NoError(t, yaml.Unmarshal([]byte(`
service-name: ats
uris:
  - https://api.merge.dev/api
api-token: secret
account-token: account
max-num-retries: 4
initial-backoff: 100ms
read-timeout: 10s
metrics:
  tags:
    region: us
`), &conf))
	assert.Equal(t, "ats", conf.ServiceName)
	assert.Equal(t, []string{"https://api.merge.dev/api"}, conf.URIs)
	require.NotNil(t, conf.APIToken)
	assert.Equal(t, "secret", *conf.APIToken)
	require.NotNil(t, conf.MaxNumRetries)
	assert.Equal(t, 4, *conf.MaxNumRetries)
	require.NotNil(t, conf.InitialBackoff)
	assert.Equal(t, 100*time.Millisecond, *conf.InitialBackoff)
	assert.Equal(t, map[string]string{"region": "us"}, conf.Metrics.Tags)
}

func TestMergeClientConfig(t *testing.T) {
	retries := 5
	token := "default-token"
	override := "override-token"
	merged := httpclient.MergeClientConfig(
		httpclient.ClientConfig{
			APIToken: &override,
			Metrics:  httpclient.MetricsConfig{Tags: map[string]string{"a": "conf"}},
		},
		httpclient.ClientConfig{
			ServiceName:   "merge",
			URIs:          []string{"https://api.merge.dev/api"},
			APIToken:      &token,
			MaxNumRetries: &retries,
			Metrics:       httpclient.MetricsConfig{Tags: map[string]string{"a": "default", "b": "default"}},
		})
	assert.Equal(t, "merge", merged.ServiceName)
	assert.Equal(t, []string{"https://api.merge.dev/api"}, merged.URIs)
	assert.Equal(t, "override-token", *merged.APIToken)
	assert.Equal(t, 5, *merged.MaxNumRetries)
	assert.Equal(t, map[string]string{"a": "conf", "b": "default"}, merged.Metrics.Tags)
}

func TestInvalidConfig(t *testing.T) {
	negative := -1
	badProxy := "socks5://localhost:1080"
	missingFile := filepath.Join(t.TempDir(), "missing")
	for _, testCase := range []struct {
		name   string
		config httpclient.ClientConfig
	}{
		{name: "invalid uri", config: httpclient.ClientConfig{URIs: []string{"not a uri"}}},
		{name: "negative retries", config: httpclient.ClientConfig{URIs: []string{"https://api.merge.dev/api"}, MaxNumRetries: &negative}},
		{name: "unsupported proxy scheme", config: httpclient.ClientConfig{URIs: []string{"https://api.merge.dev/api"}, ProxyURL: &badProxy}},
		{name: "missing token file", config: httpclient.ClientConfig{URIs: []string{"https://api.merge.dev/api"}, APITokenFile: &missingFile}},
		{name: "no uris", config: httpclient.ClientConfig{}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := httpclient.NewClient(httpclient.WithConfig(testCase.config))
			assert.Error(t, err)
		})
	}
}

func TestAPITokenFile(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("file-token\n"), 0600))

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer file-token", req.Header.Get("Authorization"))
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithConfig(httpclient.ClientConfig{
		URIs:         []string{server.URL},
		APITokenFile: &tokenFile,
	}))
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.NoError(t, err)
}

func TestRefreshableConfig(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		gotToken = req.Header.Get("Authorization")
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	first, second := "first", "second"
	conf := refreshable.NewDefaultRefreshable(httpclient.ClientConfig{
		URIs:     []string{server.URL},
		APIToken: &first,
	})
	client, err := httpclient.NewClientFromRefreshableConfig(context.Background(), httpclient.NewRefreshingClientConfig(conf))
	require.NoError(t, err)

	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", gotToken)

	require.NoError(t, conf.Update(httpclient.ClientConfig{
		URIs:     []string{server.URL},
		APIToken: &second,
	}))
	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", gotToken)

	// invalid updates are ignored and the last valid configuration stays in effect
	require.NoError(t, conf.Update(httpclient.ClientConfig{URIs: []string{"not a uri"}}))
	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", gotToken)
}
