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

// Job is a job posting, requisition or profile.
type Job struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	Description      record.Optional[string]
	Code             record.Optional[string]
	Status           record.Optional[record.OpenEnum]
	Type             record.Optional[record.OpenEnum]
	Confidential     record.Optional[bool]
	Departments      record.Optional[[]string]
	Offices          record.Optional[[]string]
	HiringManagers   record.Optional[[]string]
	Recruiters       record.Optional[[]string]
	RemoteCreatedAt  record.Optional[time.Time]
	RemoteUpdatedAt  record.Optional[time.Time]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Job) RecordType() string { return "Job" }

func (j *Job) Fields() []record.Field {
	return []record.Field{
		record.String("id", &j.ID),
		record.String("remote_id", &j.RemoteID),
		record.String("name", &j.Name),
		record.String("description", &j.Description),
		record.String("code", &j.Code),
		record.Enum("status", &j.Status, JobStatusEnum),
		record.Enum("type", &j.Type, JobTypeEnum),
		record.Bool("confidential", &j.Confidential),
		record.Strings("departments", &j.Departments),
		record.Strings("offices", &j.Offices),
		record.Strings("hiring_managers", &j.HiringManagers),
		record.Strings("recruiters", &j.Recruiters),
		record.DateTime("remote_created_at", &j.RemoteCreatedAt),
		record.DateTime("remote_updated_at", &j.RemoteUpdatedAt),
		record.Bool("remote_was_deleted", &j.RemoteWasDeleted),
		record.DateTime("created_at", &j.CreatedAt),
		record.DateTime("modified_at", &j.ModifiedAt),
		record.Map("field_mappings", &j.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &j.RemoteData),
	}
}

func (j *Job) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, j)
}

func (j *Job) MarshalJSON() ([]byte, error) {
	return record.Marshal(j)
}
