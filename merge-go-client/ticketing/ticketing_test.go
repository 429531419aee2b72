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

package ticketing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-client/ticketing"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentContactResolvesToRecord(t *testing.T) {
	var comment ticketing.Comment
	require.NoError(t, record.Unmarshal([]byte(`{"contact": {"name": "Jane"}}`), &comment))

	contact, ok := comment.Contact.Get()
	require.True(t, ok)
	assert.Equal(t, record.UnionRecord, contact.Kind())
	assert.False(t, contact.IsString())
	nested, ok := contact.Record()
	require.True(t, ok)
	assert.Equal(t, "Jane", nested.Name.OrElse(""))

	out, err := record.Marshal(&comment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contact": {"name": "Jane"}}`, string(out))
}

func TestTicketContactVariants(t *testing.T) {
	for _, testCase := range []struct {
		name string
		raw  string
		kind record.UnionKind
	}{
		{name: "id", raw: `{"contact": "contact-1"}`, kind: record.UnionString},
		{name: "expanded", raw: `{"contact": {"id": "contact-1", "email_address": "jane@example.com"}}`, kind: record.UnionRecord},
		{name: "null", raw: `{"contact": null}`, kind: record.UnionInvalid},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			var ticket ticketing.Ticket
			require.NoError(t, ticket.UnmarshalJSON([]byte(testCase.raw)))
			contact, _ := ticket.Contact.Get()
			assert.Equal(t, testCase.kind, contact.Kind())

			out, err := ticket.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, testCase.raw, string(out))
		})
	}
}

func TestTicketEnums(t *testing.T) {
	var ticket ticketing.Ticket
	require.NoError(t, record.Unmarshal([]byte(`{"status": "IN_PROGRESS", "priority": "CRITICAL"}`), &ticket))
	status, _ := ticket.Status.Get()
	assert.True(t, status.Is(ticketing.TicketStatusInProgress))
	priority, _ := ticket.Priority.Get()
	assert.False(t, priority.IsKnown())
	assert.Equal(t, "CRITICAL", priority.Wire())
}

func TestTicketsClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/ticketing/v1/tickets":
			assert.Equal(t, "HIGH", req.URL.Query().Get("priority"))
			assert.Equal(t, "a,b", req.URL.Query().Get("assignee_ids"))
			_, _ = rw.Write([]byte(`{"next": null, "results": [{"id": "t-1", "priority": "HIGH", "contact": "contact-1"}]}`))
		case "/api/ticketing/v1/comments":
			assert.Equal(t, "t-1", req.URL.Query().Get("ticket_id"))
			_, _ = rw.Write([]byte(`{"next": null, "results": [{"id": "cm-1", "ticket": "t-1", "body": "Looking into it"}]}`))
		default:
			rw.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL + "/api"}))
	require.NoError(t, err)
	tickets := ticketing.NewClient(client)

	all, err := tickets.Tickets.All(context.Background(), ticketing.TicketListParams{
		AssigneeIDs: []string{"a", "b"},
		Priority:    ticketing.PriorityHigh,
	})
	require.NoError(t, err)
	require.Len(t, all, 1)

	comments, err := tickets.Async().Comments.List(context.Background(), ticketing.CommentListParams{TicketID: "t-1"}).Await(context.Background())
	require.NoError(t, err)
	require.Len(t, comments.Items(), 1)
	assert.Equal(t, "Looking into it", comments.Items()[0].Body.OrElse(""))

	_, err = tickets.Accounts.List(context.Background(), resource.ListParams{})
	assert.Error(t, err)
}
