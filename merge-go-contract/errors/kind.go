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

// Kind is the category of an Error.
type Kind string

const (
	// Decode marks a value that could not be interpreted as its declared type, e.g. an unparsable timestamp.
	Decode Kind = "Decode"
	// UnionResolution marks a union value matching none of its declared shapes.
	UnionResolution Kind = "UnionResolution"
	// Validation marks a value failing the validator.
	Validation Kind = "Validation"
	// Encode marks a record holding a value that cannot be serialized.
	Encode Kind = "Encode"
	// API marks a non-successful response returned by the remote API.
	API Kind = "API"
)

func (k Kind) String() string {
	return string(k) + "Error"
}

// AsError returns the first Error in the chain of err. Both werror causes and Unwrap chains are followed.
func AsError(err error) (Error, bool) {
	for err != nil {
		if e, ok := err.(Error); ok {
			return e, true
		}
		switch v := err.(type) {
		case interface{ Cause() error }:
			err = v.Cause()
		case interface{ Unwrap() error }:
			err = v.Unwrap()
		default:
			return nil, false
		}
	}
	return nil, false
}

// KindOf returns the Kind of the first Error in the chain of err.
func KindOf(err error) (Kind, bool) {
	e, ok := AsError(err)
	if !ok {
		return "", false
	}
	return e.Kind(), true
}

// Is returns true if err is, or wraps, an Error of the provided kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
