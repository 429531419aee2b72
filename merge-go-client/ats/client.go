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

// Package ats contains the records and resource clients of the ATS (applicant tracking system) category.
package ats

import (
	"context"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

// Base paths of the ATS resources, relative to the API base URL.
const (
	JobsPath         = "/ats/v1/jobs"
	CandidatesPath   = "/ats/v1/candidates"
	ApplicationsPath = "/ats/v1/applications"
	AttachmentsPath  = "/ats/v1/attachments"
)

type (
	JobPage         = resource.Page[Job, *Job]
	CandidatePage   = resource.Page[Candidate, *Candidate]
	ApplicationPage = resource.Page[Application, *Application]
	AttachmentPage  = resource.Page[Attachment, *Attachment]

	CandidateResponse   = resource.ModelResponse[Candidate, *Candidate]
	ApplicationResponse = resource.ModelResponse[Application, *Application]
	AttachmentResponse  = resource.ModelResponse[Attachment, *Attachment]
)

// Schemas returns a new, empty record for every resource of the category, keyed by resource name.
func Schemas() map[string]func() record.Record {
	return map[string]func() record.Record{
		"jobs":         func() record.Record { return new(Job) },
		"candidates":   func() record.Record { return new(Candidate) },
		"applications": func() record.Record { return new(Application) },
		"attachments":  func() record.Record { return new(Attachment) },
	}
}

// Client groups the ATS resource clients.
type Client struct {
	Jobs         *JobsClient
	Candidates   *CandidatesClient
	Applications *ApplicationsClient
	Attachments  *AttachmentsClient
}

// NewClient returns the ATS clients, sending requests through client.
func NewClient(client httpclient.Client) *Client {
	return &Client{
		Jobs:         &JobsClient{collection: resource.NewCollection[Job](client, JobsPath)},
		Candidates:   &CandidatesClient{collection: resource.NewCollection[Candidate](client, CandidatesPath)},
		Applications: &ApplicationsClient{collection: resource.NewCollection[Application](client, ApplicationsPath)},
		Attachments:  &AttachmentsClient{collection: resource.NewCollection[Attachment](client, AttachmentsPath)},
	}
}

// Async returns the non-blocking form of the ATS clients.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{
		Jobs:         &AsyncJobsClient{collection: resource.NewAsyncCollection(c.Jobs.collection)},
		Candidates:   &AsyncCandidatesClient{collection: resource.NewAsyncCollection(c.Candidates.collection)},
		Applications: &AsyncApplicationsClient{collection: resource.NewAsyncCollection(c.Applications.collection)},
		Attachments:  &AsyncAttachmentsClient{collection: resource.NewAsyncCollection(c.Attachments.collection)},
	}
}

// JobListParams filter the jobs returned by List.
type JobListParams struct {
	resource.ListParams
	Code     string
	OfficeID string
	// Status filters by a JobStatusEnum member.
	Status record.EnumMember
}

func (p JobListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("code", p.Code).
		WithFilter("offices", p.OfficeID).
		WithFilter("status", p.Status.Wire)
}

// JobsClient reads jobs.
type JobsClient struct {
	collection *resource.Collection[Job, *Job]
}

func (c *JobsClient) List(ctx context.Context, params JobListParams) (*JobPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *JobsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Job, error) {
	return c.collection.Retrieve(ctx, id, params)
}

// All returns the jobs of every page.
func (c *JobsClient) All(ctx context.Context, params JobListParams) ([]Job, error) {
	return c.collection.Pager(params.listParams()).All(ctx)
}

// CandidateListParams filter the candidates returned by List.
type CandidateListParams struct {
	resource.ListParams
	EmailAddresses []string
	FirstName      string
	LastName       string
	Tags           []string
}

func (p CandidateListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("email_addresses", p.EmailAddresses...).
		WithFilter("first_name", p.FirstName).
		WithFilter("last_name", p.LastName).
		WithFilter("tags", p.Tags...)
}

// CandidatesClient reads and writes candidates.
type CandidatesClient struct {
	collection *resource.Collection[Candidate, *Candidate]
}

func (c *CandidatesClient) List(ctx context.Context, params CandidateListParams) (*CandidatePage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *CandidatesClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Candidate, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *CandidatesClient) Create(ctx context.Context, candidate *Candidate, params resource.WriteParams) (*CandidateResponse, error) {
	return c.collection.Create(ctx, candidate, params)
}

func (c *CandidatesClient) PartialUpdate(ctx context.Context, id string, candidate *Candidate, params resource.WriteParams) (*CandidateResponse, error) {
	return c.collection.PartialUpdate(ctx, id, candidate, params)
}

// ApplicationListParams filter the applications returned by List.
type ApplicationListParams struct {
	resource.ListParams
	CandidateID    string
	JobID          string
	CurrentStageID string
}

func (p ApplicationListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("candidate_id", p.CandidateID).
		WithFilter("job_id", p.JobID).
		WithFilter("current_stage_id", p.CurrentStageID)
}

// ApplicationsClient reads and creates applications.
type ApplicationsClient struct {
	collection *resource.Collection[Application, *Application]
}

func (c *ApplicationsClient) List(ctx context.Context, params ApplicationListParams) (*ApplicationPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *ApplicationsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Application, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *ApplicationsClient) Create(ctx context.Context, application *Application, params resource.WriteParams) (*ApplicationResponse, error) {
	return c.collection.Create(ctx, application, params)
}

// AttachmentListParams filter the attachments returned by List.
type AttachmentListParams struct {
	resource.ListParams
	CandidateID string
}

func (p AttachmentListParams) listParams() resource.ListParams {
	return p.ListParams.WithFilter("candidate_id", p.CandidateID)
}

// AttachmentsClient reads and creates candidate attachments.
type AttachmentsClient struct {
	collection *resource.Collection[Attachment, *Attachment]
}

func (c *AttachmentsClient) List(ctx context.Context, params AttachmentListParams) (*AttachmentPage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *AttachmentsClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*Attachment, error) {
	return c.collection.Retrieve(ctx, id, params)
}

func (c *AttachmentsClient) Create(ctx context.Context, attachment *Attachment, params resource.WriteParams) (*AttachmentResponse, error) {
	return c.collection.Create(ctx, attachment, params)
}
