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

package resource_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureAwait(t *testing.T) {
	release := make(chan struct{})
	f := resource.Go(context.Background(), func(ctx context.Context) (string, error) {
		<-release
		return "done", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-f.Done()
	value, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)
}

func TestAsyncMatchesBlocking(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"id": "t-1", "name": "Broken login", "status": "ESCALATED", "extra": 1}`))
	})
	async := resource.NewAsyncCollection(collection)

	blocking, err := collection.Retrieve(context.Background(), "t-1", resource.RetrieveParams{})
	require.NoError(t, err)
	fromFuture, err := async.Retrieve(context.Background(), "t-1", resource.RetrieveParams{}).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, blocking, fromFuture)
}

func TestAsyncCancelSkipsDecode(t *testing.T) {
	received := make(chan struct{})
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		close(received)
		<-req.Context().Done()
	})
	async := resource.NewAsyncCollection(collection)

	f := async.List(context.Background(), resource.ListParams{})
	<-received
	f.Cancel()

	page, err := f.Await(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), context.Canceled.Error())
	assert.Nil(t, page)
}

func TestAsyncAll(t *testing.T) {
	collection := newCollection(t, func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("cursor") == "" {
			_, _ = rw.Write([]byte(`{"next": "p2", "results": [{"name": "a"}]}`))
			return
		}
		_, _ = rw.Write([]byte(`{"next": null, "results": [{"name": "b"}]}`))
	})

	all, err := resource.NewAsyncCollection(collection).All(context.Background(), resource.ListParams{}).Await(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[1].Name.OrElse(""))
}
