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

// merge is a command-line client for the unified API. It lists and retrieves resources of every supported
// category, and checks local payloads against the record schemas.
//
// Usage:
//
//	merge [flags] list <category> <resource>
//	merge [flags] get <category> <resource> <id>
//	merge [flags] validate <category> <resource> <file>
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/pflag"

	internalerrors "github.com/merge-api/merge-go-client/internal/errors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath   string
	apiToken     string
	accountToken string
	baseURL      string
	region       string
	output       string
	pageSize     int
	cursor       string
	all          bool
	verbose      bool
}

func (o *options) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.configPath, "config", "c", "", "client configuration file (YAML, or JSON with comments)")
	flagSet.StringVar(&o.apiToken, "api-token", "", "API token (default: $MERGE_API_KEY)")
	flagSet.StringVar(&o.accountToken, "account-token", "", "linked account token")
	flagSet.StringVar(&o.baseURL, "base-url", "", "API base URL, overriding the region")
	flagSet.StringVar(&o.region, "region", "", "API region: us, eu or ap")
	flagSet.StringVarP(&o.output, "output", "o", "json", "output format: json or yaml")
	flagSet.IntVar(&o.pageSize, "page-size", 0, "number of results per page")
	flagSet.StringVar(&o.cursor, "cursor", "", "cursor of the page to list")
	flagSet.BoolVar(&o.all, "all", false, "list every page")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log requests to stderr")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("merge", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	opts.addFlags(flagSet)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  merge [flags] list <category> <resource>\n  merge [flags] get <category> <resource> <id>\n  merge [flags] validate <category> <resource> <file>\n\nFlags:\n%s", flagSet.FlagUsages())
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	level := wlog.WarnLevel
	if opts.verbose {
		level = wlog.DebugLevel
	}
	wlog.SetDefaultLoggerProvider(wlog.NewJSONMarshalLoggerProvider())
	ctx = svc1log.WithLogger(ctx, svc1log.New(stderr, level))

	err := dispatch(ctx, opts, flagSet.Args(), stdout)
	if err != nil {
		svc1log.FromContext(ctx).Debug("Command failed",
			svc1log.SafeParam(internalerrors.InternalErrorTypeParam, internalerrors.Classify(err)),
			svc1log.Stacktrace(err))
	}
	return err
}

func dispatch(ctx context.Context, opts options, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command: expected list, get or validate")
	}
	command, args := args[0], args[1:]
	switch command {
	case "list":
		if len(args) != 2 {
			return fmt.Errorf("usage: merge list <category> <resource>")
		}
		return runList(ctx, opts, args[0], args[1], stdout)
	case "get":
		if len(args) != 3 {
			return fmt.Errorf("usage: merge get <category> <resource> <id>")
		}
		return runGet(ctx, opts, args[0], args[1], args[2], stdout)
	case "validate":
		if len(args) != 3 {
			return fmt.Errorf("usage: merge validate <category> <resource> <file>")
		}
		return runValidate(opts, args[0], args[1], args[2], stdout)
	default:
		return fmt.Errorf("unknown command %q: expected list, get or validate", command)
	}
}
