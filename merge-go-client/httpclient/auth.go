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
	"net/http"

	"github.com/palantir/pkg/refreshable"
)

const (
	authorizationHeader = "Authorization"
	accountTokenHeader  = "X-Account-Token"
)

// authTokens are the credentials sent with every request. The API token identifies the caller's organization
// and the account token selects the linked end-user account.
type authTokens struct {
	APIToken     string
	AccountToken string
}

// authMiddleware sets the Authorization and X-Account-Token headers from the current tokens. Headers already
// set on the request, for example with WithHeader, are left untouched.
type authMiddleware struct {
	tokens refreshable.Refreshable
}

func (h authMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	tokens, _ := h.tokens.Current().(authTokens)
	if tokens.APIToken != "" && req.Header.Get(authorizationHeader) == "" {
		req.Header.Set(authorizationHeader, "Bearer "+tokens.APIToken)
	}
	if tokens.AccountToken != "" && req.Header.Get(accountTokenHeader) == "" {
		req.Header.Set(accountTokenHeader, tokens.AccountToken)
	}
	return next.RoundTrip(req)
}
