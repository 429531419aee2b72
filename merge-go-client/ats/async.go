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
	"context"

	"github.com/merge-api/merge-go-client/merge-go-client/resource"
)

// AsyncClient groups the non-blocking ATS resource clients. Every call returns a Future running the
// blocking call of the same resource.
type AsyncClient struct {
	Jobs         *AsyncJobsClient
	Candidates   *AsyncCandidatesClient
	Applications *AsyncApplicationsClient
	Attachments  *AsyncAttachmentsClient
}

type AsyncJobsClient struct {
	collection *resource.AsyncCollection[Job, *Job]
}

func (c *AsyncJobsClient) List(ctx context.Context, params JobListParams) *resource.Future[*JobPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncJobsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Job] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncJobsClient) All(ctx context.Context, params JobListParams) *resource.Future[[]Job] {
	return c.collection.All(ctx, params.listParams())
}

type AsyncCandidatesClient struct {
	collection *resource.AsyncCollection[Candidate, *Candidate]
}

func (c *AsyncCandidatesClient) List(ctx context.Context, params CandidateListParams) *resource.Future[*CandidatePage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncCandidatesClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Candidate] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncCandidatesClient) Create(ctx context.Context, candidate *Candidate, params resource.WriteParams) *resource.Future[*CandidateResponse] {
	return c.collection.Create(ctx, candidate, params)
}

func (c *AsyncCandidatesClient) PartialUpdate(ctx context.Context, id string, candidate *Candidate, params resource.WriteParams) *resource.Future[*CandidateResponse] {
	return c.collection.PartialUpdate(ctx, id, candidate, params)
}

type AsyncApplicationsClient struct {
	collection *resource.AsyncCollection[Application, *Application]
}

func (c *AsyncApplicationsClient) List(ctx context.Context, params ApplicationListParams) *resource.Future[*ApplicationPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncApplicationsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Application] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncApplicationsClient) Create(ctx context.Context, application *Application, params resource.WriteParams) *resource.Future[*ApplicationResponse] {
	return c.collection.Create(ctx, application, params)
}

type AsyncAttachmentsClient struct {
	collection *resource.AsyncCollection[Attachment, *Attachment]
}

func (c *AsyncAttachmentsClient) List(ctx context.Context, params AttachmentListParams) *resource.Future[*AttachmentPage] {
	return c.collection.List(ctx, params.listParams())
}

func (c *AsyncAttachmentsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) *resource.Future[*Attachment] {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AsyncAttachmentsClient) Create(ctx context.Context, attachment *Attachment, params resource.WriteParams) *resource.Future[*AttachmentResponse] {
	return c.collection.Create(ctx, attachment, params)
}
