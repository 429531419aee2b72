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

package record_test

import (
	"time"

	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

var (
	statusOpen   = record.EnumMember{Name: "open", Wire: "OPEN"}
	statusClosed = record.EnumMember{Name: "closed", Wire: "CLOSED"}
	statusEnum   = record.NewEnumSet("StatusEnum", statusOpen, statusClosed)
)

type testContact struct {
	record.ExtraProperties
	ID    record.Optional[string]
	Name  record.Optional[string]
	Email record.Optional[string]
}

func (*testContact) RecordType() string { return "Contact" }

func (c *testContact) Fields() []record.Field {
	return []record.Field{
		record.String("id", &c.ID),
		record.Required(record.String("name", &c.Name)),
		record.String("email", &c.Email),
	}
}

type testApplication struct {
	record.ExtraProperties
	ID        record.Optional[string]
	AppliedAt record.Optional[time.Time]
}

func (*testApplication) RecordType() string { return "Application" }

func (a *testApplication) Fields() []record.Field {
	return []record.Field{
		record.String("id", &a.ID),
		record.DateTime("applied_at", &a.AppliedAt),
	}
}

type testJob struct {
	record.ExtraProperties
	ID           record.Optional[string]
	Name         record.Optional[string]
	Status       record.Optional[record.OpenEnum]
	Openings     record.Optional[int64]
	Score        record.Optional[float64]
	Confidential record.Optional[bool]
	CreatedAt    record.Optional[time.Time]
	Tags         record.Optional[[]string]
	Metadata     record.Optional[map[string]any]
	RemoteData   record.Optional[any]
	Contact      record.Optional[record.Union[testContact]]
	Applications record.Optional[[]record.Union[testApplication]]
	Owner        record.Optional[testContact]
	History      record.Optional[[]testApplication]
	Stage        record.Optional[record.Union[testContact]]
}

func (*testJob) RecordType() string { return "Job" }

func (j *testJob) Fields() []record.Field {
	return []record.Field{
		record.String("id", &j.ID),
		record.String("name", &j.Name),
		record.Enum("status", &j.Status, statusEnum),
		record.Int("openings", &j.Openings),
		record.Float("score", &j.Score),
		record.Bool("confidential", &j.Confidential),
		record.DateTime("created_at", &j.CreatedAt),
		record.Strings("tags", &j.Tags),
		record.Map("metadata", &j.Metadata),
		record.JSON("remote_data", &j.RemoteData),
		record.UnionOf[testContact]("contact", &j.Contact, nil),
		record.UnionList[testApplication]("applications", &j.Applications, nil),
		record.Nested[testContact]("owner", &j.Owner),
		record.List[testApplication]("history", &j.History),
		record.UnionOf[testContact]("stage", &j.Stage, statusEnum),
	}
}
