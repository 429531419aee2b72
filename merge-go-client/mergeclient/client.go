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

// Package mergeclient builds one HTTP client from a configuration and exposes the resource clients of every
// category on top of it.
package mergeclient

import (
	"context"

	"github.com/merge-api/merge-go-client/merge-go-client/ats"
	"github.com/merge-api/merge-go-client/merge-go-client/crm"
	"github.com/merge-api/merge-go-client/merge-go-client/filestorage"
	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/ticketing"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

// Base URLs of the API regions.
const (
	USBaseURL = "https://api.merge.dev/api"
	EUBaseURL = "https://api-eu.merge.dev/api"
	APBaseURL = "https://api-ap.merge.dev/api"
)

// Region names accepted in Config.
const (
	RegionUS = "us"
	RegionEU = "eu"
	RegionAP = "ap"
)

// Config configures a Client.
type Config struct {
	httpclient.ClientConfig `yaml:",inline"`

	// Region selects the base URL when URIs is empty. Defaults to "us".
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// BaseURL returns the base URL of the configured region.
func (c Config) BaseURL() (string, error) {
	switch c.Region {
	case "", RegionUS:
		return USBaseURL, nil
	case RegionEU:
		return EUBaseURL, nil
	case RegionAP:
		return APBaseURL, nil
	default:
		return "", werror.Error("unknown region", werror.SafeParam("region", c.Region))
	}
}

// clientConfig returns the HTTP client configuration, defaulting URIs to the region's base URL.
func (c Config) clientConfig() (httpclient.ClientConfig, error) {
	baseURL, err := c.BaseURL()
	if err != nil {
		return httpclient.ClientConfig{}, err
	}
	return httpclient.MergeClientConfig(c.ClientConfig, httpclient.ClientConfig{
		URIs: []string{baseURL},
	}), nil
}

// Client exposes the resource clients of every category. All of them share one HTTP client.
type Client struct {
	http        httpclient.Client
	ats         *ats.Client
	ticketing   *ticketing.Client
	crm         *crm.Client
	fileStorage *filestorage.Client
}

// New returns a Client for config. params are applied on top of config.
func New(ctx context.Context, config Config, params ...httpclient.ClientParam) (*Client, error) {
	return NewFromRefreshable(ctx, refreshable.NewDefaultRefreshable(config), params...)
}

// NewFromRefreshable returns a Client following the current value of config, whose values must be of type
// Config. Updated base URLs, tokens and retry settings apply to subsequent requests.
func NewFromRefreshable(ctx context.Context, config refreshable.Refreshable, params ...httpclient.ClientParam) (*Client, error) {
	if _, err := config.Current().(Config).clientConfig(); err != nil {
		return nil, err
	}
	clientConfig := config.Map(func(i interface{}) interface{} {
		conf, err := i.(Config).clientConfig()
		if err != nil {
			// unknown region: only explicit URIs remain. Without any, validation fails and the last valid config stays.
			return i.(Config).ClientConfig
		}
		return conf
	})
	client, err := httpclient.NewClientFromRefreshableConfig(ctx, httpclient.NewRefreshingClientConfig(clientConfig), params...)
	if err != nil {
		return nil, err
	}
	return NewFromHTTPClient(client), nil
}

// NewFromHTTPClient returns a Client sending requests through client.
func NewFromHTTPClient(client httpclient.Client) *Client {
	return &Client{
		http:        client,
		ats:         ats.NewClient(client),
		ticketing:   ticketing.NewClient(client),
		crm:         crm.NewClient(client),
		fileStorage: filestorage.NewClient(client),
	}
}

func (c *Client) ATS() *ats.Client {
	return c.ats
}

func (c *Client) Ticketing() *ticketing.Client {
	return c.ticketing
}

func (c *Client) CRM() *crm.Client {
	return c.crm
}

func (c *Client) FileStorage() *filestorage.Client {
	return c.fileStorage
}

// HTTPClient returns the underlying HTTP client, for endpoints without a resource client.
func (c *Client) HTTPClient() httpclient.Client {
	return c.http
}
