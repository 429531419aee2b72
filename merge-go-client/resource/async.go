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
)

// AsyncCollection offers the operations of a Collection in non-blocking form. Every call runs the blocking
// operation of the same Collection.
type AsyncCollection[T any, PT record.RecordPtr[T]] struct {
	collection *Collection[T, PT]
}

// NewAsyncCollection returns the non-blocking form of c.
func NewAsyncCollection[T any, PT record.RecordPtr[T]](c *Collection[T, PT]) *AsyncCollection[T, PT] {
	return &AsyncCollection[T, PT]{collection: c}
}

func (c *AsyncCollection[T, PT]) List(ctx context.Context, params ListParams) *Future[*Page[T, PT]] {
	return Go(ctx, func(ctx context.Context) (*Page[T, PT], error) {
		return c.collection.List(ctx, params)
	})
}

func (c *AsyncCollection[T, PT]) Retrieve(ctx context.Context, id string, params RetrieveParams) *Future[PT] {
	return Go(ctx, func(ctx context.Context) (PT, error) {
		return c.collection.Retrieve(ctx, id, params)
	})
}

func (c *AsyncCollection[T, PT]) Create(ctx context.Context, model PT, params WriteParams) *Future[*ModelResponse[T, PT]] {
	return Go(ctx, func(ctx context.Context) (*ModelResponse[T, PT], error) {
		return c.collection.Create(ctx, model, params)
	})
}

func (c *AsyncCollection[T, PT]) PartialUpdate(ctx context.Context, id string, model PT, params WriteParams) *Future[*ModelResponse[T, PT]] {
	return Go(ctx, func(ctx context.Context) (*ModelResponse[T, PT], error) {
		return c.collection.PartialUpdate(ctx, id, model, params)
	})
}

// All collects every page on a new goroutine.
func (c *AsyncCollection[T, PT]) All(ctx context.Context, params ListParams) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) ([]T, error) {
		return c.collection.Pager(params).All(ctx)
	})
}
