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
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// ListParams are the query parameters shared by list endpoints. Zero values are not sent.
type ListParams struct {
	// Cursor selects the page to return, as found in a previous page's next or previous field.
	Cursor   string
	PageSize int

	CreatedAfter   time.Time
	CreatedBefore  time.Time
	ModifiedAfter  time.Time
	ModifiedBefore time.Time

	IncludeDeletedData bool
	IncludeRemoteData  bool
	IncludeShellData   bool

	// Expand names related fields to return as nested records rather than ids.
	Expand          []string
	RemoteFields    []string
	ShowEnumOrigins []string
	RemoteID        string

	// Filters holds the endpoint-specific filters, for example "status" or "job_id".
	Filters url.Values
}

// Query returns the URL query for p.
func (p ListParams) Query() url.Values {
	q := make(url.Values)
	for k, vs := range p.Filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	setString(q, "cursor", p.Cursor)
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	setTime(q, "created_after", p.CreatedAfter)
	setTime(q, "created_before", p.CreatedBefore)
	setTime(q, "modified_after", p.ModifiedAfter)
	setTime(q, "modified_before", p.ModifiedBefore)
	setBool(q, "include_deleted_data", p.IncludeDeletedData)
	setBool(q, "include_remote_data", p.IncludeRemoteData)
	setBool(q, "include_shell_data", p.IncludeShellData)
	setList(q, "expand", p.Expand)
	setList(q, "remote_fields", p.RemoteFields)
	setList(q, "show_enum_origins", p.ShowEnumOrigins)
	setString(q, "remote_id", p.RemoteID)
	return q
}

// WithFilter returns a copy of p with the endpoint filter key set to values, joined with commas. Nothing is
// set if values are empty.
func (p ListParams) WithFilter(key string, values ...string) ListParams {
	var nonEmpty []string
	for _, v := range values {
		if v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) == 0 {
		return p
	}
	filters := make(url.Values, len(p.Filters)+1)
	for k, vs := range p.Filters {
		filters[k] = append([]string(nil), vs...)
	}
	filters.Set(key, strings.Join(nonEmpty, ","))
	p.Filters = filters
	return p
}

// RetrieveParams are the query parameters of retrieve endpoints.
type RetrieveParams struct {
	Expand            []string
	IncludeRemoteData bool
	RemoteFields      []string
	ShowEnumOrigins   []string
}

// Query returns the URL query for p.
func (p RetrieveParams) Query() url.Values {
	q := make(url.Values)
	setList(q, "expand", p.Expand)
	setBool(q, "include_remote_data", p.IncludeRemoteData)
	setList(q, "remote_fields", p.RemoteFields)
	setList(q, "show_enum_origins", p.ShowEnumOrigins)
	return q
}

// WriteParams configure create and partial-update requests.
type WriteParams struct {
	// IsDebugMode asks the API to return the upstream request logs in the response.
	IsDebugMode bool
	// RunAsync asks the API to apply the write in the background.
	RunAsync bool
	// RemoteUserID is the upstream user the write is made on behalf of. Some integrations require it.
	RemoteUserID string
}

// Query returns the URL query for p.
func (p WriteParams) Query() url.Values {
	q := make(url.Values)
	setBool(q, "is_debug_mode", p.IsDebugMode)
	setBool(q, "run_async", p.RunAsync)
	return q
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBool(q url.Values, key string, value bool) {
	if value {
		q.Set(key, "true")
	}
}

func setTime(q url.Values, key string, value time.Time) {
	if !value.IsZero() {
		q.Set(key, record.FormatDateTime(value))
	}
}

func setList(q url.Values, key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}
