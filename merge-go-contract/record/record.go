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

// Properties holds the keys of a JSON object that the record does not declare, with their raw JSON values.
type Properties map[string]any

// Record is implemented by the pointer type of every generated API record.
type Record interface {
	// RecordType returns the record's schema name, used in errors and logs.
	RecordType() string
	// Fields returns the bindings of the record's declared fields, in wire order.
	Fields() []Field
	// Extra returns the record's additional-properties bag.
	Extra() *Properties
}

// RecordPtr constrains a type parameter to be a pointer to T that implements Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// ExtraProperties is embedded in records to hold the keys a payload carried beyond the declared fields.
type ExtraProperties struct {
	AdditionalProperties Properties
}

func (e *ExtraProperties) Extra() *Properties {
	return &e.AdditionalProperties
}

// FieldSchema describes one declared field of a record.
type FieldSchema struct {
	Name     string
	Type     Type
	Required bool
}

// SchemaOf returns the declared fields of r.
func SchemaOf(r Record) []FieldSchema {
	fields := r.Fields()
	out := make([]FieldSchema, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldSchema{
			Name:     f.Name(),
			Type:     f.Type(),
			Required: f.IsRequired(),
		})
	}
	return out
}

// Equal returns true if a and b encode to the same JSON, including additional properties.
func Equal(a, b Record) bool {
	aBytes, err := Marshal(a, WithAdditionalProperties())
	if err != nil {
		return false
	}
	bBytes, err := Marshal(b, WithAdditionalProperties())
	if err != nil {
		return false
	}
	return string(aBytes) == string(bBytes)
}
