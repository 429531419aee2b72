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

// Package crm contains the records and resource clients of the CRM category.
package crm

import (
	"context"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// Account is a company tracked in the CRM. Owner holds a user id, or the User when expanded.
type Account struct {
	record.ExtraProperties
	ID                record.Optional[string]
	RemoteID          record.Optional[string]
	Owner             record.Optional[record.Union[User]]
	Name              record.Optional[string]
	Description       record.Optional[string]
	Industry          record.Optional[string]
	Website           record.Optional[string]
	NumberOfEmployees record.Optional[int64]
	LastActivityAt    record.Optional[time.Time]
	RemoteCreatedAt   record.Optional[time.Time]
	RemoteUpdatedAt   record.Optional[time.Time]
	RemoteWasDeleted  record.Optional[bool]
	CreatedAt         record.Optional[time.Time]
	ModifiedAt        record.Optional[time.Time]
	FieldMappings     record.Optional[map[string]any]
	RemoteData        record.Optional[[]resource.RemoteData]
}

func (*Account) RecordType() string { return "Account" }

func (a *Account) Fields() []record.Field {
	return []record.Field{
		record.String("id", &a.ID),
		record.String("remote_id", &a.RemoteID),
		record.UnionOf[User]("owner", &a.Owner, nil),
		record.String("name", &a.Name),
		record.String("description", &a.Description),
		record.String("industry", &a.Industry),
		record.String("website", &a.Website),
		record.Int("number_of_employees", &a.NumberOfEmployees),
		record.DateTime("last_activity_at", &a.LastActivityAt),
		record.DateTime("remote_created_at", &a.RemoteCreatedAt),
		record.DateTime("remote_updated_at", &a.RemoteUpdatedAt),
		record.Bool("remote_was_deleted", &a.RemoteWasDeleted),
		record.DateTime("created_at", &a.CreatedAt),
		record.DateTime("modified_at", &a.ModifiedAt),
		record.Map("field_mappings", &a.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &a.RemoteData),
	}
}

func (a *Account) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, a)
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return record.Marshal(a)
}

// User is a member of the CRM workspace.
type User struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	Email            record.Optional[string]
	IsActive         record.Optional[bool]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*User) RecordType() string { return "User" }

func (u *User) Fields() []record.Field {
	return []record.Field{
		record.String("id", &u.ID),
		record.String("remote_id", &u.RemoteID),
		record.String("name", &u.Name),
		record.String("email", &u.Email),
		record.Bool("is_active", &u.IsActive),
		record.Bool("remote_was_deleted", &u.RemoteWasDeleted),
		record.DateTime("created_at", &u.CreatedAt),
		record.DateTime("modified_at", &u.ModifiedAt),
		record.Map("field_mappings", &u.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &u.RemoteData),
	}
}

func (u *User) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, u)
}

func (u *User) MarshalJSON() ([]byte, error) {
	return record.Marshal(u)
}

type (
	AccountPage     = resource.Page[Account, *Account]
	UserPage        = resource.Page[User, *User]
	AccountResponse = resource.ModelResponse[Account, *Account]
)

const (
	AccountsPath = "/crm/v1/accounts"
	UsersPath    = "/crm/v1/users"
)

func Schemas() map[string]func() record.Record {
	return map[string]func() record.Record{
		"accounts": func() record.Record { return new(Account) },
		"users":    func() record.Record { return new(User) },
	}
}

type Client struct {
	Accounts *AccountsClient
	Users    *UsersClient
}

func NewClient(client httpclient.Client) *Client {
	return &Client{
		Accounts: &AccountsClient{collection: resource.NewCollection[Account](client, AccountsPath)},
		Users:    &UsersClient{collection: resource.NewCollection[User](client, UsersPath)},
	}
}

type AsyncClient struct {
	Accounts *resource.AsyncCollection[Account, *Account]
	Users    *resource.AsyncCollection[User, *User]
}

func (c *Client) Async() *AsyncClient {
	return &AsyncClient{
		Accounts: resource.NewAsyncCollection(c.Accounts.collection),
		Users:    resource.NewAsyncCollection(c.Users.collection),
	}
}

type AccountListParams struct {
	resource.ListParams
	OwnerID string
	Name    string
}

func (p AccountListParams) listParams() resource.ListParams {
	return p.ListParams.WithFilter("owner_id", p.OwnerID).WithFilter("name", p.Name)
}

type AccountsClient struct {
	collection *resource.Collection[Account, *Account]
}

func (c *AccountsClient) List(ctx context.Context, params AccountListParams) (*AccountPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *AccountsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Account, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AccountsClient) Create(ctx context.Context, account *Account, params resource.WriteParams) (*AccountResponse, error) {
	return c.collection.Create(ctx, account, params)
}

func (c *AccountsClient) PartialUpdate(ctx context.Context, id string, account *Account, params resource.WriteParams) (*AccountResponse, error) {
	return c.collection.PartialUpdate(ctx, id, account, params)
}

type UsersClient struct {
	collection *resource.Collection[User, *User]
}

func (c *UsersClient) List(ctx context.Context, params resource.ListParams) (*UserPage, error) {
	return c.collection.List(ctx, params)
}

func (c *UsersClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*User, error) {
	return c.collection.Retrieve(ctx, id, params)
}
