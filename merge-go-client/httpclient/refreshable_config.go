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
	"github.com/palantir/pkg/refreshable"
)

// RefreshableClientConfig is a refreshable.Refreshable whose current value is a ClientConfig.
type RefreshableClientConfig interface {
	refreshable.Refreshable
	CurrentClientConfig() ClientConfig
}

type refreshingClientConfig struct {
	refreshable.Refreshable
}

// NewRefreshingClientConfig wraps in, whose values must be of type ClientConfig.
func NewRefreshingClientConfig(in refreshable.Refreshable) RefreshableClientConfig {
	return refreshingClientConfig{Refreshable: in}
}

func (r refreshingClientConfig) CurrentClientConfig() ClientConfig {
	return r.Current().(ClientConfig)
}
