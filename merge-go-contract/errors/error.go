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

package errors

import (
	"fmt"

	wparams "github.com/palantir/witchcraft-go-params"
)

// Error is returned by the record codec, the validator and the HTTP transport.
//
// Error is represented by its kind, the dotted path of the offending field (empty for errors that are not
// attached to a field) and a set of safe and unsafe parameters detailing the error. Raw payload values are
// always stored as unsafe parameters.
type Error interface {
	error
	// Kind returns the category of the error.
	Kind() Kind
	// Path returns the dotted path of the field the error refers to, e.g. "obj.contact.name".
	Path() string

	wparams.ParamStorer
}

// NewDecodeError returns an error for a value that could not be interpreted as its declared type.
func NewDecodeError(path, message string, raw interface{}, cause error, parameters ...wparams.ParamStorer) Error {
	return newFieldError(Decode, path, message, cause, append(parameters,
		wparams.NewUnsafeParamStorer(map[string]interface{}{"value": raw}))...)
}

// NewUnionResolutionError returns an error for a union field whose value matched none of its declared shapes.
// jsonType names the JSON type of the offending value ("number", "array", ...).
func NewUnionResolutionError(path, jsonType string, parameters ...wparams.ParamStorer) Error {
	return newFieldError(UnionResolution, path, fmt.Sprintf("%s value matches no union variant", jsonType), nil, append(parameters,
		wparams.NewSafeParamStorer(map[string]interface{}{"jsonType": jsonType}))...)
}

// NewValidationError returns an error naming the first field which does not match its declared schema.
func NewValidationError(path, message string, parameters ...wparams.ParamStorer) Error {
	return newFieldError(Validation, path, message, nil, parameters...)
}

// NewEncodeError returns an error for a value which cannot be serialized under its declared schema.
func NewEncodeError(path, message string, parameters ...wparams.ParamStorer) Error {
	return newFieldError(Encode, path, message, nil, parameters...)
}

type fieldError struct {
	kind    Kind
	path    string
	message string
	cause   error
	params  wparams.ParamStorer
}

var _ Error = (*fieldError)(nil)

func newFieldError(kind Kind, path, message string, cause error, parameters ...wparams.ParamStorer) *fieldError {
	return &fieldError{
		kind:    kind,
		path:    path,
		message: message,
		cause:   cause,
		params:  wparams.NewParamStorer(parameters...),
	}
}

// Error renders as "<Kind>Error: <path>: <message>", e.g. "ValidationError: obj.id: expected string, got number".
func (e *fieldError) Error() string {
	msg := e.message
	if e.cause != nil {
		msg = msg + ": " + e.cause.Error()
	}
	if e.path == "" {
		return fmt.Sprintf("%s: %s", e.kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.kind, e.path, msg)
}

func (e *fieldError) Kind() Kind {
	return e.kind
}

func (e *fieldError) Path() string {
	return e.path
}

func (e *fieldError) Unwrap() error {
	return e.cause
}

func (e *fieldError) SafeParams() map[string]interface{} {
	safe := map[string]interface{}{
		"errorKind": string(e.kind),
	}
	if e.path != "" {
		safe["path"] = e.path
	}
	for k, v := range e.params.SafeParams() {
		safe[k] = v
	}
	return safe
}

func (e *fieldError) UnsafeParams() map[string]interface{} {
	return e.params.UnsafeParams()
}
