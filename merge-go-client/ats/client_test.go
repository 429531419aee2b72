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

package ats_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merge-api/merge-go-client/merge-go-client/ats"
	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ats.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL + "/api"}))
	require.NoError(t, err)
	return ats.NewClient(client)
}

func TestJobsList(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/ats/v1/jobs", req.URL.Path)
		assert.Equal(t, "OPEN", req.URL.Query().Get("status"))
		assert.Equal(t, "office-1", req.URL.Query().Get("offices"))
		assert.Equal(t, "10", req.URL.Query().Get("page_size"))
		_, _ = rw.Write([]byte(`{"next": null, "previous": null, "results": [{"id": "job-1", "name": "Backend Role", "status": "OPEN"}]}`))
	})

	page, err := client.Jobs.List(context.Background(), ats.JobListParams{
		ListParams: resource.ListParams{PageSize: 10},
		OfficeID:   "office-1",
		Status:     ats.JobStatusOpen,
	})
	require.NoError(t, err)
	require.Len(t, page.Items(), 1)
	assert.Equal(t, "Backend Role", page.Items()[0].Name.OrElse(""))
	_, hasNext := page.NextCursor()
	assert.False(t, hasNext)
}

func TestCandidatesCreate(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/ats/v1/candidates", req.URL.Path)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"model": {"first_name": "Jane", "tags": ["referral"], "applications": ["app-1"]}, "remote_user_id": "u-1"}`, string(body))
		_, _ = rw.Write([]byte(`{"model": {"id": "c-1", "first_name": "Jane"}, "warnings": [], "errors": [], "logs": []}`))
	})

	resp, err := client.Candidates.Create(context.Background(), &ats.Candidate{
		FirstName:    record.Some("Jane"),
		Tags:         record.Some([]string{"referral"}),
		Applications: record.Some([]record.Union[ats.Application]{record.UnionFromString[ats.Application]("app-1")}),
	}, resource.WriteParams{RemoteUserID: "u-1"})
	require.NoError(t, err)
	assert.False(t, resp.PartialFailure())
	candidate, ok := resp.Model.Get()
	require.True(t, ok)
	assert.Equal(t, "c-1", candidate.ID.OrElse(""))
}

func TestAsyncAttachmentsRetrieve(t *testing.T) {
	client := newTestClient(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/ats/v1/attachments/att-1", req.URL.Path)
		_, _ = rw.Write([]byte(`{"id": "att-1", "file_name": "resume.pdf", "attachment_type": "RESUME"}`))
	})

	future := client.Async().Attachments.Retrieve(context.Background(), "att-1", resource.RetrieveParams{})
	attachment, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", attachment.FileName.OrElse(""))
	attachmentType, _ := attachment.AttachmentType.Get()
	assert.True(t, attachmentType.Is(ats.AttachmentTypeResume))
}
