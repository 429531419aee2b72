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

package record

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/palantir/pkg/safejson"
)

const rootPath = "obj"

// EncodeOption configures Encode and Marshal.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	additionalProperties bool
}

// WithAdditionalProperties re-emits the keys held in the record's additional-properties bag. Declared fields
// take precedence over a bag entry with the same key.
func WithAdditionalProperties() EncodeOption {
	return func(o *encodeOptions) {
		o.additionalProperties = true
	}
}

// Decode populates r from a decoded JSON object. Numbers are expected as json.Number or float64; strings,
// booleans, nested objects (map[string]any) and arrays ([]any) are expected as produced by encoding/json.
//
// Every declared field of r is reset: fields whose key is absent become omitted and undeclared keys replace
// the additional-properties bag.
func Decode(raw any, r Record) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return kindMismatch(rootPath, "object", raw)
	}
	return decodeObject(rootPath, obj, r)
}

// Unmarshal parses data as a single JSON object and decodes it into r. Data after the object is an error. A JSON
// null leaves r unchanged.
func Unmarshal(data []byte, r Record) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return decodeError(rootPath, "malformed JSON", nil, err)
	}
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		return decodeError(rootPath, "unexpected data after JSON value", nil, err)
	}
	if raw == nil {
		return nil
	}
	return Decode(raw, r)
}

// Encode returns the JSON object tree for r.
func Encode(r Record, opts ...EncodeOption) (map[string]any, error) {
	o := &encodeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return encodeObject(rootPath, r, o)
}

// Marshal returns the JSON encoding of r.
func Marshal(r Record, opts ...EncodeOption) ([]byte, error) {
	tree, err := Encode(r, opts...)
	if err != nil {
		return nil, err
	}
	return safejson.Marshal(tree)
}

func decodeObject(path string, obj map[string]any, r Record) error {
	fields := r.Fields()
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.Name()] = struct{}{}
		raw, ok := obj[f.Name()]
		if !ok {
			if f.IsRequired() {
				return decodeError(fieldPath(path, f.Name()), "required field is missing", nil, nil)
			}
			f.omit()
			continue
		}
		if err := f.decode(fieldPath(path, f.Name()), raw); err != nil {
			return err
		}
	}
	var extra Properties
	for k, v := range obj {
		if _, ok := declared[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(Properties)
		}
		extra[k] = v
	}
	*r.Extra() = extra
	return nil
}

func encodeObject(path string, r Record, opts *encodeOptions) (map[string]any, error) {
	out := make(map[string]any)
	if opts.additionalProperties {
		for k, v := range *r.Extra() {
			out[k] = v
		}
	}
	for _, f := range r.Fields() {
		v, ok, err := f.encode(fieldPath(path, f.Name()), opts)
		if err != nil {
			return nil, err
		}
		if ok {
			out[f.Name()] = v
		} else {
			delete(out, f.Name())
		}
	}
	return out, nil
}
