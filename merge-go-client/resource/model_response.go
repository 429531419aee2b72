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
	"fmt"
	"strings"

	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	werror "github.com/palantir/witchcraft-go-error"
)

// ModelResponse is the envelope of a write response: {"model": ..., "warnings": [...], "errors": [...], "logs": [...]}.
//
// A write can be partially applied upstream while the API still answers with a success status. Callers must
// check PartialFailure (or Err) even when the call returned no error.
type ModelResponse[T any, PT record.RecordPtr[T]] struct {
	record.ExtraProperties
	Model    record.Optional[T]
	Warnings record.Optional[[]ValidationProblem]
	Errors   record.Optional[[]ValidationProblem]
	Logs     record.Optional[[]DebugLog]
}

func (*ModelResponse[T, PT]) RecordType() string {
	return recordType[T, PT]() + "Response"
}

func (r *ModelResponse[T, PT]) Fields() []record.Field {
	return []record.Field{
		record.Required(record.Nested[T, PT]("model", &r.Model)),
		record.List[ValidationProblem]("warnings", &r.Warnings),
		record.List[ValidationProblem]("errors", &r.Errors),
		record.List[DebugLog]("logs", &r.Logs),
	}
}

func (r *ModelResponse[T, PT]) UnmarshalJSON(data []byte) error {
	return record.Unmarshal(data, r)
}

func (r *ModelResponse[T, PT]) MarshalJSON() ([]byte, error) {
	return record.Marshal(r)
}

// PartialFailure reports whether the response carries errors.
func (r *ModelResponse[T, PT]) PartialFailure() bool {
	return len(r.Errors.OrElse(nil)) > 0
}

// Err returns an error describing the response's errors, or nil if there are none.
func (r *ModelResponse[T, PT]) Err() error {
	problems := r.Errors.OrElse(nil)
	if len(problems) == 0 {
		return nil
	}
	descriptions := make([]string, 0, len(problems))
	problemTypes := make([]string, 0, len(problems))
	for _, p := range problems {
		descriptions = append(descriptions, p.String())
		problemTypes = append(problemTypes, p.ProblemType.OrElse(""))
	}
	return werror.Error("write was only partially applied",
		werror.SafeParam("recordType", recordType[T, PT]()),
		werror.SafeParam("problemCount", len(problems)),
		werror.SafeParam("problemTypes", problemTypes),
		werror.UnsafeParam("problems", strings.Join(descriptions, "; ")))
}

// ValidationProblem is an entry of the warnings or errors of a write response.
type ValidationProblem struct {
	record.ExtraProperties
	Source      record.Optional[ValidationProblemSource]
	Title       record.Optional[string]
	Detail      record.Optional[string]
	ProblemType record.Optional[string]
}

func (*ValidationProblem) RecordType() string { return "ValidationProblem" }

func (p *ValidationProblem) Fields() []record.Field {
	return []record.Field{
		record.Nested[ValidationProblemSource]("source", &p.Source),
		record.Required(record.String("title", &p.Title)),
		record.Required(record.String("detail", &p.Detail)),
		record.Required(record.String("problem_type", &p.ProblemType)),
	}
}

func (p ValidationProblem) String() string {
	s := fmt.Sprintf("%s: %s", p.Title.OrElse(""), p.Detail.OrElse(""))
	if source, ok := p.Source.Get(); ok {
		if pointer, ok := source.Pointer.Get(); ok {
			s += " (" + pointer + ")"
		}
	}
	return s
}

// ValidationProblemSource points at the part of the request a problem refers to.
type ValidationProblemSource struct {
	record.ExtraProperties
	Pointer record.Optional[string]
}

func (*ValidationProblemSource) RecordType() string { return "ValidationProblemSource" }

func (s *ValidationProblemSource) Fields() []record.Field {
	return []record.Field{
		record.Required(record.String("pointer", &s.Pointer)),
	}
}

// DebugLog is an entry of the logs of a write response made in debug mode.
type DebugLog struct {
	record.ExtraProperties
	LogID         record.Optional[string]
	DashboardView record.Optional[string]
	LogSummary    record.Optional[DebugLogSummary]
}

func (*DebugLog) RecordType() string { return "DebugModeLog" }

func (l *DebugLog) Fields() []record.Field {
	return []record.Field{
		record.Required(record.String("log_id", &l.LogID)),
		record.Required(record.String("dashboard_view", &l.DashboardView)),
		record.Required(record.Nested[DebugLogSummary]("log_summary", &l.LogSummary)),
	}
}

// DebugLogSummary summarizes the upstream request made for a write.
type DebugLogSummary struct {
	record.ExtraProperties
	URL        record.Optional[string]
	Method     record.Optional[string]
	StatusCode record.Optional[int64]
}

func (*DebugLogSummary) RecordType() string { return "DebugModelLogSummary" }

func (s *DebugLogSummary) Fields() []record.Field {
	return []record.Field{
		record.Required(record.String("url", &s.URL)),
		record.Required(record.String("method", &s.Method)),
		record.Required(record.Int("status_code", &s.StatusCode)),
	}
}
