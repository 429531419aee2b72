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

package crm_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merge-api/merge-go-client/merge-go-client/crm"
	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountOwner(t *testing.T) {
	var account crm.Account
	require.NoError(t, record.Unmarshal([]byte(`{"name": "Acme", "owner": {"id": "u-1", "email": "owner@acme.com"}, "number_of_employees": 250}`), &account))
	owner, _ := account.Owner.Get()
	user, ok := owner.Record()
	require.True(t, ok)
	assert.Equal(t, "owner@acme.com", user.Email.OrElse(""))
	assert.Equal(t, int64(250), account.NumberOfEmployees.OrElse(0))

	err := record.Unmarshal([]byte(`{"number_of_employees": 2.5}`), &account)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.Decode))
}

func TestAccountsPartialUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/crm/v1/accounts/acc-1", req.URL.Path)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"model": {"owner": "u-2", "website": null}}`, string(body))
		_, _ = rw.Write([]byte(`{"model": {"id": "acc-1", "owner": "u-2"}, "warnings": [{"title": "Ignored field", "detail": "website is read-only", "problem_type": "IGNORED_FIELD"}], "errors": []}`))
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	resp, err := crm.NewClient(client).Accounts.PartialUpdate(context.Background(), "acc-1", &crm.Account{
		Owner:   record.Some(record.UnionFromString[crm.User]("u-2")),
		Website: record.Null[string](),
	}, resource.WriteParams{})
	require.NoError(t, err)
	assert.False(t, resp.PartialFailure())
	require.Len(t, resp.Warnings.OrElse(nil), 1)
	assert.Equal(t, "Ignored field: website is read-only", resp.Warnings.OrElse(nil)[0].String())
}
