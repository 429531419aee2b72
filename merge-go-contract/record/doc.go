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

// Package record implements the JSON contract shared by every generated API record: field codec,
// union resolution and validation.
//
// A record is a Go struct whose pointer implements Record. Rather than relying on reflection, each record
// lists its fields as bindings between a wire name, a declared type and the struct field holding the value:
//
//	func (j *Job) Fields() []record.Field {
//		return []record.Field{
//			record.String("id", &j.ID),
//			record.Enum("status", &j.Status, JobStatusEnum),
//			record.DateTime("created_at", &j.CreatedAt),
//			record.List("remote_data", &j.RemoteData),
//		}
//	}
//
// Decode and Encode walk those bindings. Keys present in a payload but not declared by the record are kept
// in the record's additional-properties bag. Fields whose key was absent stay omitted and are not written
// back out, while fields explicitly set to null are written as null.
//
// Enum and union fields never fail on unknown string codes: a closed set of known wire codes is tried
// first, then (for unions) a nested record, then the raw string is kept as-is so that codes added upstream
// after this client was generated round-trip unchanged.
//
// Decode, Encode and the validators are pure functions over their inputs and are safe for concurrent use.
package record
