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

// Attachment is a document attached to a candidate, such as a resume.
type Attachment struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	FileName         record.Optional[string]
	FileURL          record.Optional[string]
	Candidate        record.Optional[string]
	AttachmentType   record.Optional[record.OpenEnum]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Attachment) RecordType() string { return "Attachment" }

func (a *Attachment) Fields() []record.Field {
	return []record.Field{
		record.String("id", &a.ID),
		record.String("remote_id", &a.RemoteID),
		record.String("file_name", &a.FileName),
		record.String("file_url", &a.FileURL),
		record.String("candidate", &a.Candidate),
		record.Enum("attachment_type", &a.AttachmentType, AttachmentTypeEnum),
		record.Bool("remote_was_deleted", &a.RemoteWasDeleted),
		record.DateTime("created_at", &a.CreatedAt),
		record.DateTime("modified_at", &a.ModifiedAt),
		record.Map("field_mappings", &a.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &a.RemoteData),
	}
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, a)
}

func (a *Attachment) MarshalJSON() ([]byte, error) {
	return record.Marshal(a)
}
