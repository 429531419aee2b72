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

package resource_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	statusOpen   = record.EnumMember{Name: "open", Wire: "OPEN"}
	statusClosed = record.EnumMember{Name: "closed", Wire: "CLOSED"}
	statusEnum   = record.NewEnumSet("TicketStatusEnum", statusOpen, statusClosed)
)

type testTicket struct {
	record.ExtraProperties
	ID     record.Optional[string]
	Name   record.Optional[string]
	Status record.Optional[record.OpenEnum]
}

func (*testTicket) RecordType() string { return "Ticket" }

func (t *testTicket) Fields() []record.Field {
	return []record.Field{
		record.String("id", &t.ID),
		record.Required(record.String("name", &t.Name)),
		record.Enum("status", &t.Status, statusEnum),
	}
}

func (t *testTicket) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, t)
}

func newCollection(t *testing.T, handler http.HandlerFunc) *resource.Collection[testTicket, *testTicket] {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{server.URL + "/api"}),
		httpclient.WithMaxRetries(0))
	require.NoError(t, err)
	return resource.NewCollection[testTicket](client, "/ticketing/v1/tickets")
}

func TestList(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/ticketing/v1/tickets", req.URL.Path)
		assert.Equal(t, "abc", req.URL.Query().Get("cursor"))
		assert.Equal(t, "2", req.URL.Query().Get("page_size"))
		assert.Equal(t, "contact,account", req.URL.Query().Get("expand"))
		assert.Equal(t, "OPEN", req.URL.Query().Get("status"))
		assert.Equal(t, "2024-01-02T03:04:05Z", req.URL.Query().Get("modified_after"))
		_, _ = rw.Write([]byte(`{
			"next": "def",
			"previous": null,
			"results": [
				{"id": "t-1", "name": "Broken login", "status": "OPEN"},
				{"id": "t-2", "name": "Feature request", "status": "IN_TRIAGE", "unexpected_field": "x"}
			]
		}`))
	})

	page, err := collection.List(context.Background(), resource.ListParams{
		Cursor:        "abc",
		PageSize:      2,
		Expand:        []string{"contact", "account"},
		ModifiedAfter: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Filters:       map[string][]string{"status": {"OPEN"}},
	})
	require.NoError(t, err)

	next, ok := page.NextCursor()
	assert.True(t, ok)
	assert.Equal(t, "def", next)
	_, ok = page.PreviousCursor()
	assert.False(t, ok)
	assert.True(t, page.Previous.IsNull())

	items := page.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Broken login", items[0].Name.OrElse(""))
	status, _ := items[0].Status.Get()
	assert.True(t, status.Is(statusOpen))

	status, _ = items[1].Status.Get()
	assert.False(t, status.IsKnown())
	assert.Equal(t, "IN_TRIAGE", status.Wire())
	assert.Equal(t, record.Properties{"unexpected_field": "x"}, items[1].AdditionalProperties)
}

func TestListMalformedElement(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"next": null, "results": [{"name": "ok"}, {"name": 5}]}`))
	})

	page, err := collection.List(context.Background(), resource.ListParams{})
	require.Error(t, err)
	assert.Nil(t, page)

	mergeErr, ok := errors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, errors.Decode, mergeErr.Kind())
	assert.Equal(t, "obj.results[1].name", mergeErr.Path())
	assert.Contains(t, err.Error(), "Ticket")
}

func TestRetrieve(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/ticketing/v1/tickets/t%2F1", req.URL.EscapedPath())
		assert.Equal(t, "true", req.URL.Query().Get("include_remote_data"))
		_, _ = rw.Write([]byte(`{"id": "t/1", "name": "Broken login", "status": "CLOSED"}`))
	})

	ticket, err := collection.Retrieve(context.Background(), "t/1", resource.RetrieveParams{IncludeRemoteData: true})
	require.NoError(t, err)
	assert.Equal(t, "t/1", ticket.ID.OrElse(""))
	status, _ := ticket.Status.Get()
	assert.True(t, status.Is(statusClosed))

	_, err = collection.Retrieve(context.Background(), "", resource.RetrieveParams{})
	assert.Error(t, err)
}

func TestRetrieveNotFound(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"detail": "Not found."}`))
	})

	_, err := collection.Retrieve(context.Background(), "missing", resource.RetrieveParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.API))
	code, ok := httpclient.StatusCodeFromError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreate(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "true", req.URL.Query().Get("is_debug_mode"))
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"model": {"name": "New ticket", "status": "OPEN"}, "remote_user_id": "u-1"}`, string(body))
		_, _ = rw.Write([]byte(`{
			"model": {"id": "t-9", "name": "New ticket", "status": "OPEN"},
			"warnings": [],
			"errors": [{"source": {"pointer": "/model/assignees"}, "title": "Invalid assignee", "detail": "User does not exist", "problem_type": "INVALID_ASSIGNEE"}],
			"logs": [{"log_id": "l-1", "dashboard_view": "https://app.merge.dev/logs/l-1", "log_summary": {"url": "https://example.com", "method": "POST", "status_code": 201}}]
		}`))
	})

	resp, err := collection.Create(context.Background(), &testTicket{
		Name:   record.Some("New ticket"),
		Status: record.Some(record.EnumValue(statusOpen)),
	}, resource.WriteParams{IsDebugMode: true, RemoteUserID: "u-1"})
	require.NoError(t, err)

	model, ok := resp.Model.Get()
	require.True(t, ok)
	assert.Equal(t, "t-9", model.ID.OrElse(""))
	assert.True(t, resp.PartialFailure())
	require.Error(t, resp.Err())
	assert.Contains(t, resp.Err().Error(), "partially applied")

	logs := resp.Logs.OrElse(nil)
	require.Len(t, logs, 1)
	summary, _ := logs[0].LogSummary.Get()
	assert.Equal(t, int64(201), summary.StatusCode.OrElse(0))
}

func TestCreateEncodeError(t *testing.T) {
	var invoked bool
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		invoked = true
	})

	other := record.EnumMember{Name: "other", Wire: "OTHER"}
	_, err := collection.Create(context.Background(), &testTicket{
		Name:   record.Some("New ticket"),
		Status: record.Some(record.EnumValue(other)),
	}, resource.WriteParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.Encode))
	assert.False(t, invoked)

	_, err = collection.Create(context.Background(), nil, resource.WriteParams{})
	assert.Error(t, err)
}

func TestPartialUpdate(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/api/ticketing/v1/tickets/t-1", req.URL.Path)
		var body map[string]map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "CLOSED"}, body["model"], "omitted fields are not sent")
		_, _ = rw.Write([]byte(`{"model": {"id": "t-1", "name": "Broken login", "status": "CLOSED"}, "warnings": [], "errors": []}`))
	})

	resp, err := collection.PartialUpdate(context.Background(), "t-1", &testTicket{
		Status: record.Some(record.EnumValue(statusClosed)),
	}, resource.WriteParams{})
	require.NoError(t, err)
	assert.False(t, resp.PartialFailure())
	assert.NoError(t, resp.Err())
}

func TestPager(t *testing.T) {
	pages := map[string]string{
		"":   `{"next": "p2", "previous": null, "results": [{"name": "a"}, {"name": "b"}]}`,
		"p2": `{"next": "p3", "previous": "p1", "results": [{"name": "c"}]}`,
		"p3": `{"next": null, "previous": "p2", "results": []}`,
	}
	var requests int32
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, "true", req.URL.Query().Get("include_deleted_data"))
		_, _ = rw.Write([]byte(pages[req.URL.Query().Get("cursor")]))
	})

	all, err := collection.Pager(resource.ListParams{IncludeDeletedData: true}).All(context.Background())
	require.NoError(t, err)
	var names []string
	for _, ticket := range all {
		names = append(names, ticket.Name.OrElse(""))
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
}

func TestPagerRepeatedCursor(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"next": "same", "results": [{"name": "a"}]}`))
	})

	var count int
	err := collection.Pager(resource.ListParams{}).ForEach(context.Background(), func(*testTicket) error {
		count++
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 2, count)
}
