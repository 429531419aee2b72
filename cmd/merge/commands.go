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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/merge-api/merge-go-client/merge-go-client/ats"
	"github.com/merge-api/merge-go-client/merge-go-client/crm"
	"github.com/merge-api/merge-go-client/merge-go-client/filestorage"
	"github.com/merge-api/merge-go-client/merge-go-client/httpclient"
	"github.com/merge-api/merge-go-client/merge-go-client/mergeclient"
	"github.com/merge-api/merge-go-client/merge-go-client/resource"
	"github.com/merge-api/merge-go-client/merge-go-client/ticketing"
	"github.com/merge-api/merge-go-client/merge-go-contract/codecs"
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/merge-api/merge-go-client/merge-go-contract/useragent"
	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

// resourceCommands runs the read operations of one resource.
type resourceCommands struct {
	list      func(ctx context.Context, client httpclient.Client, opts options) ([]record.Record, string, error)
	get       func(ctx context.Context, client httpclient.Client, id string) (record.Record, error)
}

func commandsFor[T any, PT record.RecordPtr[T]](path string) resourceCommands {
	return resourceCommands{
		list: func(ctx context.Context, client httpclient.Client, opts options) ([]record.Record, string, error) {
			collection := resource.NewCollection[T, PT](client, path)
			params := resource.ListParams{Cursor: opts.cursor, PageSize: opts.pageSize}
			var out []record.Record
			if opts.all {
				err := collection.Pager(params).ForEach(ctx, func(item PT) error {
					out = append(out, item)
					return nil
				})
				return out, "", err
			}
			page, err := collection.List(ctx, params)
			if err != nil {
				return nil, "", err
			}
			items := page.Items()
			for i := range items {
				out = append(out, PT(&items[i]))
			}
			next, _ := page.NextCursor()
			return out, next, nil
		},
		get: func(ctx context.Context, client httpclient.Client, id string) (record.Record, error) {
			return resource.NewCollection[T, PT](client, path).Retrieve(ctx, id, resource.RetrieveParams{})
		},
	}
}

var registry = map[string]map[string]resourceCommands{
	"ats": {
		"jobs":         commandsFor[ats.Job](ats.JobsPath),
		"candidates":   commandsFor[ats.Candidate](ats.CandidatesPath),
		"applications": commandsFor[ats.Application](ats.ApplicationsPath),
		"attachments":  commandsFor[ats.Attachment](ats.AttachmentsPath),
	},
	"ticketing": {
		"tickets":  commandsFor[ticketing.Ticket](ticketing.TicketsPath),
		"comments": commandsFor[ticketing.Comment](ticketing.CommentsPath),
		"contacts": commandsFor[ticketing.Contact](ticketing.ContactsPath),
		"accounts": commandsFor[ticketing.Account](ticketing.AccountsPath),
	},
	"crm": {
		"accounts": commandsFor[crm.Account](crm.AccountsPath),
		"users":    commandsFor[crm.User](crm.UsersPath),
	},
	"filestorage": {
		"files": commandsFor[filestorage.File](filestorage.FilesPath),
	},
}

// schemas holds the record schemas of every category. validate reads them and the list and get commands
// cover the same resources.
var schemas = map[string]map[string]func() record.Record{
	"ats":         ats.Schemas(),
	"ticketing":   ticketing.Schemas(),
	"crm":         crm.Schemas(),
	"filestorage": filestorage.Schemas(),
}

func lookup(category, name string) (resourceCommands, error) {
	resources, ok := registry[category]
	if !ok {
		return resourceCommands{}, fmt.Errorf("unknown category %q: expected one of %v", category, sortedKeys(registry))
	}
	commands, ok := resources[name]
	if !ok {
		return resourceCommands{}, fmt.Errorf("unknown %s resource %q: expected one of %v", category, name, sortedKeys(resources))
	}
	return commands, nil
}

func lookupSchema(category, name string) (func() record.Record, error) {
	resources, ok := schemas[category]
	if !ok {
		return nil, fmt.Errorf("unknown category %q: expected one of %v", category, sortedKeys(schemas))
	}
	newRecord, ok := resources[name]
	if !ok {
		return nil, fmt.Errorf("unknown %s resource %q: expected one of %v", category, name, sortedKeys(resources))
	}
	return newRecord, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newClient(ctx context.Context, opts options) (httpclient.Client, error) {
	config, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	product, err := useragent.NewProduct("merge-cli", version)
	if err != nil {
		return nil, err
	}
	client, err := mergeclient.New(ctx, config,
		httpclient.WithServiceName("merge-cli"),
		httpclient.WithUserAgentProducts(product),
		httpclient.WithDisableMetrics())
	if err != nil {
		return nil, err
	}
	return client.HTTPClient(), nil
}

func runList(ctx context.Context, opts options, category, name string, stdout io.Writer) error {
	commands, err := lookup(category, name)
	if err != nil {
		return err
	}
	client, err := newClient(ctx, opts)
	if err != nil {
		return err
	}
	records, next, err := commands.list(ctx, client, opts)
	if err != nil {
		return err
	}
	results := make([]any, len(records))
	for i, r := range records {
		if results[i], err = record.Encode(r, record.WithAdditionalProperties()); err != nil {
			return err
		}
	}
	out := map[string]any{"results": results}
	if next != "" {
		out["next"] = next
	}
	svc1log.FromContext(ctx).Debug("Listed resources",
		svc1log.SafeParam("category", category),
		svc1log.SafeParam("resource", name),
		svc1log.SafeParam("count", len(results)))
	return write(opts, out, stdout)
}

func runGet(ctx context.Context, opts options, category, name, id string, stdout io.Writer) error {
	commands, err := lookup(category, name)
	if err != nil {
		return err
	}
	client, err := newClient(ctx, opts)
	if err != nil {
		return err
	}
	r, err := commands.get(ctx, client, id)
	if err != nil {
		return err
	}
	out, err := record.Encode(r, record.WithAdditionalProperties())
	if err != nil {
		return err
	}
	return write(opts, out, stdout)
}

// runValidate checks the JSON payload in file against the schema of the resource, without sending anything.
func runValidate(opts options, category, name, file string, stdout io.Writer) error {
	newRecord, err := lookupSchema(category, name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return werror.Wrap(err, "failed to read payload", werror.SafeParam("path", file))
	}
	var raw any
	if err := safejson.Unmarshal(data, &raw); err != nil {
		return werror.Wrap(err, "payload is not valid JSON", werror.SafeParam("path", file))
	}
	r := newRecord()
	if err := record.ValidateRaw(raw, r); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s: valid %s\n", file, r.RecordType())
	return err
}

func write(opts options, v any, stdout io.Writer) error {
	switch opts.output {
	case "json":
		return codecs.JSON.Encode(stdout, v)
	case "yaml":
		return codecs.YAML.Encode(stdout, v)
	default:
		return fmt.Errorf("unknown output format %q: expected json or yaml", opts.output)
	}
}
