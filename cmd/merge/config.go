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

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/merge-api/merge-go-client/merge-go-client/mergeclient"
	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v2"
)

const apiKeyEnvVar = "MERGE_API_KEY"

// loadConfig reads the configuration file, if any, and applies the flag overrides on top of it.
func loadConfig(opts options) (mergeclient.Config, error) {
	var config mergeclient.Config
	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return config, werror.Wrap(err, "failed to read configuration", werror.SafeParam("path", opts.configPath))
		}
		if err := unmarshalConfig(opts.configPath, data, &config); err != nil {
			return config, werror.Wrap(err, "failed to parse configuration", werror.SafeParam("path", opts.configPath))
		}
	}
	if opts.apiToken != "" {
		config.APIToken = &opts.apiToken
	}
	if config.APIToken == nil && config.APITokenFile == nil {
		if token := os.Getenv(apiKeyEnvVar); token != "" {
			config.APIToken = &token
		}
	}
	if opts.accountToken != "" {
		config.AccountToken = &opts.accountToken
	}
	if opts.region != "" {
		config.Region = opts.region
	}
	if opts.baseURL != "" {
		config.URIs = []string{opts.baseURL}
	}
	if config.APIToken == nil && config.APITokenFile == nil {
		return config, werror.Error("no API token: set --api-token, api-token in the configuration or " + apiKeyEnvVar)
	}
	return config, nil
}

// unmarshalConfig decodes JSON (comments and trailing commas allowed) for .json and .jsonc files and YAML
// otherwise.
func unmarshalConfig(path string, data []byte, config *mergeclient.Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return safejson.Unmarshal(jsonc.ToJSON(data), config)
	default:
		return yaml.UnmarshalStrict(data, config)
	}
}
