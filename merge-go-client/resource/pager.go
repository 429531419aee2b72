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
	"context"

	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

// Pager walks every page of a list, following the next cursor of each page.
type Pager[T any, PT record.RecordPtr[T]] struct {
	collection *Collection[T, PT]
	params     ListParams
}

// ForEach calls fn with every result of every page, in order. Iteration stops at the first error returned by
// fn or by a page request.
func (p *Pager[T, PT]) ForEach(ctx context.Context, fn func(PT) error) error {
	params := p.params
	seen := make(map[string]struct{})
	for pageNum := 0; ; pageNum++ {
		page, err := p.collection.List(ctx, params)
		if err != nil {
			return err
		}
		items := page.Items()
		for i := range items {
			if err := fn(PT(&items[i])); err != nil {
				return err
			}
		}
		cursor, ok := page.NextCursor()
		if !ok {
			return nil
		}
		if _, dup := seen[cursor]; dup {
			return werror.ErrorWithContextParams(ctx, "pagination cursor repeated",
				werror.SafeParam("recordType", p.collection.name),
				werror.SafeParam("page", pageNum))
		}
		seen[cursor] = struct{}{}
		svc1log.FromContext(ctx).Debug("Fetching next page",
			svc1log.SafeParam("recordType", p.collection.name),
			svc1log.SafeParam("page", pageNum+1))
		params.Cursor = cursor
	}
}

// All returns the results of every page.
func (p *Pager[T, PT]) All(ctx context.Context) ([]T, error) {
	var out []T
	if err := p.ForEach(ctx, func(v PT) error {
		out = append(out, *v)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
