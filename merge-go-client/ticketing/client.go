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

// Package ticketing contains the records and resource clients of the ticketing category.
package ticketing

import (
	"context"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

const (
	TicketsPath  = "/ticketing/v1/tickets"
	CommentsPath = "/ticketing/v1/comments"
	ContactsPath = "/ticketing/v1/contacts"
	AccountsPath = "/ticketing/v1/accounts"
)

type (
	TicketPage  = resource.Page[Ticket, *Ticket]
	CommentPage = resource.Page[Comment, *Comment]
	ContactPage = resource.Page[Contact, *Contact]
	AccountPage = resource.Page[Account, *Account]

	TicketResponse  = resource.ModelResponse[Ticket, *Ticket]
	CommentResponse = resource.ModelResponse[Comment, *Comment]
	ContactResponse = resource.ModelResponse[Contact, *Contact]
)

// Schemas returns a new, empty record for every resource of the category, keyed by resource name.
func Schemas() map[string]func() record.Record {
	return map[string]func() record.Record{
		"tickets":  func() record.Record { return new(Ticket) },
		"comments": func() record.Record { return new(Comment) },
		"contacts": func() record.Record { return new(Contact) },
		"accounts": func() record.Record { return new(Account) },
	}
}

type Client struct {
	Tickets  *TicketsClient
	Comments *CommentsClient
	Contacts *ContactsClient
	Accounts *AccountsClient
}

func NewClient(client httpclient.Client) *Client {
	return &Client{
		Tickets:  &TicketsClient{collection: resource.NewCollection[Ticket](client, TicketsPath)},
		Comments: &CommentsClient{collection: resource.NewCollection[Comment](client, CommentsPath)},
		Contacts: &ContactsClient{collection: resource.NewCollection[Contact](client, ContactsPath)},
		Accounts: &AccountsClient{collection: resource.NewCollection[Account](client, AccountsPath)},
	}
}

type AsyncClient struct {
	Tickets  *AsyncTicketsClient
	Comments *AsyncCommentsClient
	Contacts *AsyncContactsClient
	Accounts *AsyncAccountsClient
}

func (c *Client) Async() *AsyncClient {
	return &AsyncClient{
		Tickets:  &AsyncTicketsClient{collection: resource.NewAsyncCollection(c.Tickets.collection)},
		Comments: &AsyncCommentsClient{collection: resource.NewAsyncCollection(c.Comments.collection)},
		Contacts: &AsyncContactsClient{collection: resource.NewAsyncCollection(c.Contacts.collection)},
		Accounts: &AsyncAccountsClient{collection: resource.NewAsyncCollection(c.Accounts.collection)},
	}
}

type TicketListParams struct {
	resource.ListParams
	AccountID   string
	ContactID   string
	AssigneeIDs []string
	Status      record.EnumMember
	Priority    record.EnumMember
	Tags        []string
}

func (p TicketListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("account_id", p.AccountID).
		WithFilter("contact_id", p.ContactID).
		WithFilter("assignee_ids", p.AssigneeIDs...).
		WithFilter("status", p.Status.Wire).
		WithFilter("priority", p.Priority.Wire).
		WithFilter("tags", p.Tags...)
}

type TicketsClient struct {
	collection *resource.Collection[Ticket, *Ticket]
}

func (c *TicketsClient) List(ctx context.Context, params TicketListParams) (*TicketPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *TicketsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Ticket, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *TicketsClient) Create(ctx context.Context, ticket *Ticket, params resource.WriteParams) (*TicketResponse, error) {
	return c.collection.Create(ctx, ticket, params)
}

func (c *TicketsClient) PartialUpdate(ctx context.Context, id string, ticket *Ticket, params resource.WriteParams) (*TicketResponse, error) {
	return c.collection.PartialUpdate(ctx, id, ticket, params)
}

func (c *TicketsClient) All(ctx context.Context, params TicketListParams) ([]Ticket, error) {
	return c.collection.Pager(params.listParams()).All(ctx)
}

type AsyncTicketsClient struct {
	collection *resource.AsyncCollection[Ticket, *Ticket]
}

func (c *AsyncTicketsClient) List(ctx context.Context, params TicketListParams) *resource.Future[*TicketPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncTicketsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Ticket] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncTicketsClient) Create(ctx context.Context, ticket *Ticket, params resource.WriteParams) *resource.Future[*TicketResponse] {
	return c.collection.Create(ctx, ticket, params)
}

func (c *AsyncTicketsClient) PartialUpdate(ctx context.Context, id string, ticket *Ticket, params resource.WriteParams) *resource.Future[*TicketResponse] {
	return c.collection.PartialUpdate(ctx, id, ticket, params)
}

type CommentListParams struct {
	resource.ListParams
	TicketID  string
	ContactID string
}

func (p CommentListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("ticket_id", p.TicketID).
		WithFilter("contact_id", p.ContactID)
}

type CommentsClient struct {
	collection *resource.Collection[Comment, *Comment]
}

func (c *CommentsClient) List(ctx context.Context, params CommentListParams) (*CommentPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *CommentsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Comment, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *CommentsClient) Create(ctx context.Context, comment *Comment, params resource.WriteParams) (*CommentResponse, error) {
	return c.collection.Create(ctx, comment, params)
}

type AsyncCommentsClient struct {
	collection *resource.AsyncCollection[Comment, *Comment]
}

func (c *AsyncCommentsClient) List(ctx context.Context, params CommentListParams) *resource.Future[*CommentPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncCommentsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Comment] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncCommentsClient) Create(ctx context.Context, comment *Comment, params resource.WriteParams) *resource.Future[*CommentResponse] {
	return c.collection.Create(ctx, comment, params)
}

type ContactListParams struct {
	resource.ListParams
	AccountID    string
	EmailAddress string
}

func (p ContactListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("account_id", p.AccountID).
		WithFilter("email_address", p.EmailAddress)
}

type ContactsClient struct {
	collection *resource.Collection[Contact, *Contact]
}

func (c *ContactsClient) List(ctx context.Context, params ContactListParams) (*ContactPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *ContactsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Contact, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *ContactsClient) Create(ctx context.Context, contact *Contact, params resource.WriteParams) (*ContactResponse, error) {
	return c.collection.Create(ctx, contact, params)
}

type AsyncContactsClient struct {
	collection *resource.AsyncCollection[Contact, *Contact]
}

func (c *AsyncContactsClient) List(ctx context.Context, params ContactListParams) *resource.Future[*ContactPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncContactsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Contact] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncContactsClient) Create(ctx context.Context, contact *Contact, params resource.WriteParams) *resource.Future[*ContactResponse] {
	return c.collection.Create(ctx, contact, params)
}

type AccountsClient struct {
	collection *resource.Collection[Account, *Account]
}

func (c *AccountsClient) List(ctx context.Context, params resource.ListParams) (*AccountPage, error) {
	return c.collection.List(ctx, params)
}

func (c *AccountsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Account, error) {
	return c.collection.Retrieve(ctx, id, params)
}

type AsyncAccountsClient struct {
	collection *resource.AsyncCollection[Account, *Account]
}

func (c *AsyncAccountsClient) List(ctx context.Context, params resource.ListParams) *resource.Future[*AccountPage] {
	return c.collection.List(ctx, params)
}

func (c *AsyncAccountsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Account] {
	return c.collection.Retrieve(ctx, id, params)
}
