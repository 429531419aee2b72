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

package ticketing

import (
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// Ticket is a support ticket. Contact holds a contact id, or the Contact when expanded.
type Ticket struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	Description      record.Optional[string]
	Status           record.Optional[record.OpenEnum]
	Priority         record.Optional[record.OpenEnum]
	Assignees        record.Optional[[]string]
	Account          record.Optional[string]
	Contact          record.Optional[record.Union[Contact]]
	ParentTicket     record.Optional[string]
	Collections      record.Optional[[]string]
	Tags             record.Optional[[]string]
	TicketType       record.Optional[string]
	TicketURL        record.Optional[string]
	DueDate          record.Optional[time.Time]
	CompletedAt      record.Optional[time.Time]
	RemoteCreatedAt  record.Optional[time.Time]
	RemoteUpdatedAt  record.Optional[time.Time]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Ticket) RecordType() string { return "Ticket" }

func (t *Ticket) Fields() []record.Field {
	return []record.Field{
		record.String("id", &t.ID),
		record.String("remote_id", &t.RemoteID),
		record.String("name", &t.Name),
		record.String("description", &t.Description),
		record.Enum("status", &t.Status, TicketStatusEnum),
		record.Enum("priority", &t.Priority, PriorityEnum),
		record.Strings("assignees", &t.Assignees),
		record.String("account", &t.Account),
		record.UnionOf[Contact]("contact", &t.Contact, nil),
		record.String("parent_ticket", &t.ParentTicket),
		record.Strings("collections", &t.Collections),
		record.Strings("tags", &t.Tags),
		record.String("ticket_type", &t.TicketType),
		record.String("ticket_url", &t.TicketURL),
		record.DateTime("due_date", &t.DueDate),
		record.DateTime("completed_at", &t.CompletedAt),
		record.DateTime("remote_created_at", &t.RemoteCreatedAt),
		record.DateTime("remote_updated_at", &t.RemoteUpdatedAt),
		record.Bool("remote_was_deleted", &t.RemoteWasDeleted),
		record.DateTime("created_at", &t.CreatedAt),
		record.DateTime("modified_at", &t.ModifiedAt),
		record.Map("field_mappings", &t.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &t.RemoteData),
	}
}

func (t *Ticket) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, t)
}

func (t *Ticket) MarshalJSON() ([]byte, error) {
	return record.Marshal(t)
}

// Comment is a message on a ticket, written by a user or by a contact.
type Comment struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	User             record.Optional[string]
	Contact          record.Optional[record.Union[Contact]]
	Body             record.Optional[string]
	HTMLBody         record.Optional[string]
	Ticket           record.Optional[string]
	IsPrivate        record.Optional[bool]
	RemoteCreatedAt  record.Optional[time.Time]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Comment) RecordType() string { return "Comment" }

func (c *Comment) Fields() []record.Field {
	return []record.Field{
		record.String("id", &c.ID),
		record.String("remote_id", &c.RemoteID),
		record.String("user", &c.User),
		record.UnionOf[Contact]("contact", &c.Contact, nil),
		record.String("body", &c.Body),
		record.String("html_body", &c.HTMLBody),
		record.String("ticket", &c.Ticket),
		record.Bool("is_private", &c.IsPrivate),
		record.DateTime("remote_created_at", &c.RemoteCreatedAt),
		record.Bool("remote_was_deleted", &c.RemoteWasDeleted),
		record.DateTime("created_at", &c.CreatedAt),
		record.DateTime("modified_at", &c.ModifiedAt),
		record.Map("field_mappings", &c.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &c.RemoteData),
	}
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, c)
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return record.Marshal(c)
}

// Contact is an external person raising tickets.
type Contact struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	EmailAddress     record.Optional[string]
	PhoneNumber      record.Optional[string]
	Details          record.Optional[string]
	Account          record.Optional[string]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Contact) RecordType() string { return "Contact" }

func (c *Contact) Fields() []record.Field {
	return []record.Field{
		record.String("id", &c.ID),
		record.String("remote_id", &c.RemoteID),
		record.String("name", &c.Name),
		record.String("email_address", &c.EmailAddress),
		record.String("phone_number", &c.PhoneNumber),
		record.String("details", &c.Details),
		record.String("account", &c.Account),
		record.Bool("remote_was_deleted", &c.RemoteWasDeleted),
		record.DateTime("created_at", &c.CreatedAt),
		record.DateTime("modified_at", &c.ModifiedAt),
		record.Map("field_mappings", &c.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &c.RemoteData),
	}
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, c)
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	return record.Marshal(c)
}

// Account is the organization contacts belong to.
type Account struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	Domains          record.Optional[[]string]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Account) RecordType() string { return "Account" }

func (a *Account) Fields() []record.Field {
	return []record.Field{
		record.String("id", &a.ID),
		record.String("remote_id", &a.RemoteID),
		record.String("name", &a.Name),
		record.Strings("domains", &a.Domains),
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
