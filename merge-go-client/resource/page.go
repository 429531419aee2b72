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

// Page is the envelope of a list response: {"next": cursor, "previous": cursor, "results": [...]}.
type Page[T any, PT record.RecordPtr[T]] struct {
	record.ExtraProperties
	Next     record.Optional[string]
	Previous record.Optional[string]
	Results  record.Optional[[]T]
}

func (*Page[T, PT]) RecordType() string {
	return "Paginated" + recordType[T, PT]() + "List"
}

func (p *Page[T, PT]) Fields() []record.Field {
	return []record.Field{
		record.String("next", &p.Next),
		record.String("previous", &p.Previous),
		record.List[T, PT]("results", &p.Results),
	}
}

func (p *Page[T, PT]) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, p)
}

func (p *Page[T, PT]) MarshalJSON() ([]byte, error) {
	return record.Marshal(p)
}

// Items returns the page's results, or nil if the response had none.
func (p *Page[T, PT]) Items() []T {
	return p.Results.OrElse(nil)
}

// NextCursor returns the cursor of the following page. It returns false on the last page.
func (p *Page[T, PT]) NextCursor() (string, bool) {
	cursor, ok := p.Next.Get()
	return cursor, ok && cursor != ""
}

// PreviousCursor returns the cursor of the preceding page. It returns false on the first page.
func (p *Page[T, PT]) PreviousCursor() (string, bool) {
	cursor, ok := p.Previous.Get()
	return cursor, ok && cursor != ""
}

func recordType[T any, PT record.RecordPtr[T]]() string {
	var zero T
	return PT(&zero).RecordType()
}
