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
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the declared kind of a field.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindDateTime
	KindJSON
	KindMap
	KindRecord
	KindList
	KindEnum
	KindUnion
)

var kindNames = map[Kind]string{
	KindString:   "string",
	KindInteger:  "integer",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindDateTime: "datetime",
	KindJSON:     "json",
	KindMap:      "map",
	KindRecord:   "record",
	KindList:     "list",
	KindEnum:     "enum",
	KindUnion:    "union",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type is the declared type of a field.
type Type struct {
	Kind Kind
	// Elem is the element type of a list.
	Elem *Type
	// Record is the record type name of a nested record or of the record variant of a union.
	Record string
	// Enum is the closed enum set of an enum or union, if any.
	Enum *EnumSet
}

func (t Type) String() string {
	switch t.Kind {
	case KindRecord:
		return t.Record
	case KindList:
		if t.Elem == nil {
			return "list"
		}
		return "list<" + t.Elem.String() + ">"
	case KindEnum:
		return t.Enum.Name() + "|string"
	case KindUnion:
		var variants []string
		if t.Enum != nil {
			variants = append(variants, t.Enum.Name())
		}
		variants = append(variants, "string")
		if t.Record != "" {
			variants = append(variants, t.Record)
		}
		return "union<" + strings.Join(variants, "|") + ">"
	default:
		return t.Kind.String()
	}
}

// jsonType returns the JSON type name of a raw value.
func jsonType(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int32, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func expected(want string, raw any) string {
	return "expected " + want + ", got " + jsonType(raw)
}

func fieldPath(parent, name string) string {
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
