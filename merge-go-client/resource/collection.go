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

	internalerrors "github.com/merge-api/merge-go-client/internal/errors"
	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	werror "github.com/palantir/witchcraft-go-error"
	wparams "github.com/palantir/witchcraft-go-params"
)

// Collection implements the operations of one API resource, for example /ats/v1/jobs, decoding responses
// into T. Category clients expose the subset of operations their endpoint supports.
type Collection[T any, PT record.RecordPtr[T]] struct {
	client httpclient.Client
	path   string
	name   string
}

// NewCollection returns a Collection of the resource at path, relative to the client's base URL.
func NewCollection[T any, PT record.RecordPtr[T]](client httpclient.Client, path string) *Collection[T, PT] {
	return &Collection[T, PT]{
		client: client,
		path:   path,
		name:   recordType[T, PT](),
	}
}

// Path returns the resource path of the collection.
func (c *Collection[T, PT]) Path() string {
	return c.path
}

// List returns one page of the resource. A page with an element that does not decode fails as a whole; the
// returned error names the element's path, for example obj.results[3].status.
func (c *Collection[T, PT]) List(ctx context.Context, params ListParams) (*Page[T, PT], error) {
	var page Page[T, PT]
	if _, err := c.client.Get(ctx,
		httpclient.WithRPCMethodName("List"+c.name),
		httpclient.WithPath(c.path),
		httpclient.WithQueryValues(params.Query()),
		httpclient.WithJSONResponse(&page),
	); err != nil {
		return nil, c.wrap(err, "list")
	}
	return &page, nil
}

// Retrieve returns the object with the given id.
func (c *Collection[T, PT]) Retrieve(ctx context.Context, id string, params RetrieveParams) (PT, error) {
	if id == "" {
		return nil, werror.ErrorWithContextParams(ctx, "id must not be empty", werror.SafeParam("recordType", c.name))
	}
	out := PT(new(T))
	if _, err := c.client.Get(ctx,
		httpclient.WithRPCMethodName("Retrieve"+c.name),
		httpclient.WithPathf(c.path+"/%s", id),
		httpclient.WithQueryValues(params.Query()),
		httpclient.WithJSONResponse(out),
	); err != nil {
		return nil, c.wrap(err, "retrieve")
	}
	return out, nil
}

// Create creates model upstream. The returned response must be checked for partial failure.
func (c *Collection[T, PT]) Create(ctx context.Context, model PT, params WriteParams) (*ModelResponse[T, PT], error) {
	body, err := writeRequest(model, params)
	if err != nil {
		return nil, c.wrap(err, "create")
	}
	var resp ModelResponse[T, PT]
	if _, err := c.client.Post(ctx,
		httpclient.WithRPCMethodName("Create"+c.name),
		httpclient.WithPath(c.path),
		httpclient.WithQueryValues(params.Query()),
		httpclient.WithJSONRequest(body),
		httpclient.WithJSONResponse(&resp),
	); err != nil {
		return nil, c.wrap(err, "create")
	}
	return &resp, nil
}

// PartialUpdate updates the fields of the object with the given id that are set in model. Omitted fields
// are left unchanged upstream.
func (c *Collection[T, PT]) PartialUpdate(ctx context.Context, id string, model PT, params WriteParams) (*ModelResponse[T, PT], error) {
	if id == "" {
		return nil, werror.ErrorWithContextParams(ctx, "id must not be empty", werror.SafeParam("recordType", c.name))
	}
	body, err := writeRequest(model, params)
	if err != nil {
		return nil, c.wrap(err, "partialUpdate")
	}
	var resp ModelResponse[T, PT]
	if _, err := c.client.Patch(ctx,
		httpclient.WithRPCMethodName("PartialUpdate"+c.name),
		httpclient.WithPathf(c.path+"/%s", id),
		httpclient.WithQueryValues(params.Query()),
		httpclient.WithJSONRequest(body),
		httpclient.WithJSONResponse(&resp),
	); err != nil {
		return nil, c.wrap(err, "partialUpdate")
	}
	return &resp, nil
}

// Pager returns a Pager over every page of the resource matching params.
func (c *Collection[T, PT]) Pager(params ListParams) *Pager[T, PT] {
	return &Pager[T, PT]{collection: c, params: params}
}

func (c *Collection[T, PT]) wrap(err error, operation string) error {
	return errors.WrapWithRecordType(err, c.name, wparams.NewSafeAndUnsafeParamStorer(
		map[string]interface{}{
			"operation":                           operation,
			internalerrors.InternalErrorTypeParam: internalerrors.Classify(err),
		},
		map[string]interface{}{"path": c.path},
	))
}

// writeRequest builds the {"model": ..., "remote_user_id": ...} body of a write.
func writeRequest[T any, PT record.RecordPtr[T]](model PT, params WriteParams) (map[string]any, error) {
	if model == nil {
		return nil, werror.Error("model must not be nil")
	}
	encoded, err := record.Encode(model)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"model": encoded}
	if params.RemoteUserID != "" {
		body["remote_user_id"] = params.RemoteUserID
	}
	return body, nil
}
