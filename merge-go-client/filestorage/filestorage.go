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

// Package filestorage contains the records and resource clients of the file storage category.
package filestorage

import (
	"context"
	"io"
	"time"

	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-contract/codecs"
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	werror "github.com/palantir/witchcraft-go-error"
)

// FilesPath is the base path of the files resource.
const FilesPath = "/filestorage/v1/files"

// File is a file stored in a drive.
type File struct {
	record.ExtraProperties
	ID               record.Optional[string]
	RemoteID         record.Optional[string]
	Name             record.Optional[string]
	FileURL          record.Optional[string]
	FileThumbnailURL record.Optional[string]
	Size             record.Optional[int64]
	MimeType         record.Optional[string]
	Description      record.Optional[string]
	Folder           record.Optional[string]
	Drive            record.Optional[string]
	RemoteCreatedAt  record.Optional[time.Time]
	RemoteUpdatedAt  record.Optional[time.Time]
	RemoteWasDeleted record.Optional[bool]
	CreatedAt        record.Optional[time.Time]
	ModifiedAt       record.Optional[time.Time]
	FieldMappings    record.Optional[map[string]any]
	RemoteData       record.Optional[[]resource.RemoteData]
}

func (*File) RecordType() string { return "File" }

func (f *File) Fields() []record.Field {
	return []record.Field{
		record.String("id", &f.ID),
		record.String("remote_id", &f.RemoteID),
		record.String("name", &f.Name),
		record.String("file_url", &f.FileURL),
		record.String("file_thumbnail_url", &f.FileThumbnailURL),
		record.Int("size", &f.Size),
		record.String("mime_type", &f.MimeType),
		record.String("description", &f.Description),
		record.String("folder", &f.Folder),
		record.String("drive", &f.Drive),
		record.DateTime("remote_created_at", &f.RemoteCreatedAt),
		record.DateTime("remote_updated_at", &f.RemoteUpdatedAt),
		record.Bool("remote_was_deleted", &f.RemoteWasDeleted),
		record.DateTime("created_at", &f.CreatedAt),
		record.DateTime("modified_at", &f.ModifiedAt),
		record.Map("field_mappings", &f.FieldMappings),
		record.List[resource.RemoteData]("remote_data", &f.RemoteData),
	}
}

func (f *File) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, f)
}

func (f *File) MarshalJSON() ([]byte, error) {
	return record.Marshal(f)
}

type FilePage = resource.Page[File, *File]

func Schemas() map[string]func() record.Record {
	return map[string]func() record.Record{
		"files": func() record.Record { return new(File) },
	}
}

type Client struct {
	Files *FilesClient
}

func NewClient(client httpclient.Client) *Client {
	return &Client{
		Files: &FilesClient{
			client:     client,
			collection: resource.NewCollection[File](client, FilesPath),
		},
	}
}

type FileListParams struct {
	resource.ListParams
	DriveID  string
	FolderID string
	Name     string
	MimeType []string
}

func (p FileListParams) listParams() resource.ListParams {
	return p.ListParams.
		WithFilter("drive_id", p.DriveID).
		WithFilter("folder_id", p.FolderID).
		WithFilter("name", p.Name).
		WithFilter("mime_type", p.MimeType...)
}

// FilesClient reads file metadata and downloads file contents.
type FilesClient struct {
	client     httpclient.Client
	collection *resource.Collection[File, *File]
}

func (c *FilesClient) List(ctx context.Context, params FileListParams) (*FilePage, error) {
	return c.collection.List(ctx, params.listParams())
}

func (c *FilesClient) Retrieve(ctx context.Context, id string, params resource.RetrieveParams) (*File, error) {
	return c.collection.Retrieve(ctx, id, params)
}

// Download writes the contents of the file with the given id to w.
func (c *FilesClient) Download(ctx context.Context, id string, w io.Writer) error {
	if id == "" {
		return werror.ErrorWithContextParams(ctx, "id must not be empty", werror.SafeParam("recordType", "File"))
	}
	if _, err := c.client.Get(ctx,
		httpclient.WithRPCMethodName("DownloadFile"),
		httpclient.WithPathf(FilesPath+"/%s/download", id),
		httpclient.WithResponseBody(w, codecs.Binary),
	); err != nil {
		return errors.WrapWithRecordType(err, "File")
	}
	return nil
}

// DownloadAsync runs Download on a new goroutine. w must not be used until the Future is done.
func (c *FilesClient) DownloadAsync(ctx context.Context, id string, w io.Writer) *resource.Future[struct{}] {
	return resource.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.Download(ctx, id, w)
	})
}
