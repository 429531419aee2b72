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

package resource

import (
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// RemoteData is the raw upstream payload behind a record, returned when include_remote_data is set.
type RemoteData struct {
	record.ExtraProperties
	Path record.Optional[string]
	Data record.Optional[any]
}

func (*RemoteData) RecordType() string { return "RemoteData" }

func (d *RemoteData) Fields() []record.Field {
	return []record.Field{
		record.Required(record.String("path", &d.Path)),
		record.JSON("data", &d.Data),
	}
}
