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

// Application is a candidate's application to a job. Candidate and Job hold an id, or the nested record
// when expanded.
type Application struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Candidate        record.Optional[record.Union[Candidate]]
	Job              record.Optional[record.Union[Job]]
	AppliedAt        record.Optional[time.Time]
	RejectedAt       record.Optional[time.Time]
	Source           record.Optional[string]
	CreditedTo       record.Optional[string]
	CurrentStage     record.Optional[string]
	RejectReason     record.Optional[string]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*Application) RecordType() string { return "Application" }

func (a *Application) Fields() []record.Field {
	return []record.Field{
		record.String("id", &a.ID),
		record.String("remote_id", &a.RemoteID),
		record.UnionOf[Candidate]("candidate", &a.Candidate, nil),
		record.UnionOf[Job]("job", &a.Job, nil),
		record.DateTime("applied_at", &a.AppliedAt),
		record.DateTime("rejected_at", &a.RejectedAt),
		record.String("source", &a.Source),
		record.String("credited_to", &a.CreditedTo),
		record.String("current_stage", &a.CurrentStage),
		record.String("reject_reason", &a.RejectReason),
		record.Bool("remote_was_deleted", &a.RemoteWasDeleted),
		record.DateTime("created_at", &a.CreatedAt),
		record.DateTime("modified_at", &a.ModifiedAt),
		record.Map("field_mappings", &a.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &a.RemoteData),
	}
}

func (a *Application) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, a)
}

func (a *Application) MarshalJSON() ([]byte, error) {
	return record.Marshal(a)
}
