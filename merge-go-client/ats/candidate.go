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

package ats

import (
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// Candidate is a person applying to jobs. Applications and Attachments hold ids, or nested records when
// expanded.
type Candidate struct {
	record.ExtraProperties
	ID                record.Optional[string]
	RemoteID          record.Optional[string]
	FirstName         record.Optional[string]
	LastName          record.Optional[string]
	Company           record.Optional[string]
	Title             record.Optional[string]
	IsPrivate         record.Optional[bool]
	CanEmail          record.Optional[bool]
	Locations         record.Optional[[]string]
	Tags              record.Optional[[]string]
	Applications      record.Optional[[]record.Union[Application]]
	Attachments       record.Optional[[]record.Union[Attachment]]
	RemoteCreatedAt   record.Optional[time.Time]
	RemoteUpdatedAt   record.Optional[time.Time]
	LastInteractionAt record.Optional[time.Time]
	RemoteWasDeleted  record.Optional[bool]
	CreatedAt         record.Optional[time.Time]
	ModifiedAt        record.Optional[time.Time]
	FieldMappings     record.Optional[map[string]any]
	RemoteData        record.Optional[[]resource.RemoteData]
}

func (*Candidate) RecordType() string { return "Candidate" }

func (c *Candidate) Fields() []record.Field {
	return []record.Field{
		record.String("id", &c.ID),
		record.String("remote_id", &c.RemoteID),
		record.String("first_name", &c.FirstName),
		record.String("last_name", &c.LastName),
		record.String("company", &c.Company),
		record.String("title", &c.Title),
		record.Bool("is_private", &c.IsPrivate),
		record.Bool("can_email", &c.CanEmail),
		record.Strings("locations", &c.Locations),
		record.Strings("tags", &c.Tags),
		record.UnionList[Application]("applications", &c.Applications, nil),
		record.UnionList[Attachment]("attachments", &c.Attachments, nil),
		record.DateTime("remote_created_at", &c.RemoteCreatedAt),
		record.DateTime("remote_updated_at", &c.RemoteUpdatedAt),
		record.DateTime("last_interaction_at", &c.LastInteractionAt),
		record.Bool("remote_was_deleted", &c.RemoteWasDeleted),
		record.DateTime("created_at", &c.CreatedAt),
		record.DateTime("modified_at", &c.ModifiedAt),
		record.Map("field_mappings", &c.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &c.RemoteData),
	}
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, c)
}

func (c *Candidate) MarshalJSON() ([]byte, error) {
	return record.Marshal(c)
}
