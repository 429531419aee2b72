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
	"math"
	"time"
)

// Field binds a wire name and declared type to the storage of one record field. Fields are created by the
// constructors in this package and returned from Record.Fields.
type Field interface {
	Name() string
	Type() Type
	IsRequired() bool

	isSet() bool
	omit()
	decode(path string, raw any) error
	encode(path string, opts *encodeOptions) (any, bool, error)
	validateRaw(path string, raw any) error
	validate(path string) error
}

// Required marks f as required: decoding and validation fail when its key is absent.
func Required(f Field) Field {
	return requiredField{Field: f}
}

type requiredField struct {
	Field
}

func (requiredField) IsRequired() bool {
	return true
}

type binding[T any] struct {
	name          string
	typ           Type
	dst           *Optional[T]
	decodeFn      func(path string, raw any) (T, error)
	encodeFn      func(path string, v T, opts *encodeOptions) (any, error)
	validateRawFn func(path string, raw any) error
	validateFn    func(path string, v T) error
}

func (b *binding[T]) Name() string {
	return b.name
}

func (b *binding[T]) Type() Type {
	return b.typ
}

func (b *binding[T]) IsRequired() bool {
	return false
}

func (b *binding[T]) isSet() bool {
	return b.dst.IsSet()
}

func (b *binding[T]) omit() {
	*b.dst = Optional[T]{}
}

func (b *binding[T]) decode(path string, raw any) error {
	if raw == nil {
		*b.dst = Null[T]()
		return nil
	}
	v, err := b.decodeFn(path, raw)
	if err != nil {
		return err
	}
	*b.dst = Some(v)
	return nil
}

func (b *binding[T]) encode(path string, opts *encodeOptions) (any, bool, error) {
	switch b.dst.state {
	case omitted:
		return nil, false, nil
	case null:
		return nil, true, nil
	}
	out, err := b.encodeFn(path, b.dst.value, opts)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (b *binding[T]) validateRaw(path string, raw any) error {
	if raw == nil {
		return nil
	}
	return b.validateRawFn(path, raw)
}

func (b *binding[T]) validate(path string) error {
	if b.validateFn == nil || b.dst.state != present {
		return nil
	}
	return b.validateFn(path, b.dst.value)
}

type mismatch struct {
	path    string
	message string
	cause   error
}

func primitive[T any](name string, kind Kind, dst *Optional[T], parse func(path string, raw any) (T, *mismatch), format func(path string, v T) (any, error)) Field {
	return &binding[T]{
		name: name,
		typ:  Type{Kind: kind},
		dst:  dst,
		decodeFn: func(path string, raw any) (T, error) {
			v, m := parse(path, raw)
			if m != nil {
				return v, decodeError(m.path, m.message, raw, m.cause)
			}
			return v, nil
		},
		encodeFn: func(path string, v T, _ *encodeOptions) (any, error) {
			return format(path, v)
		},
		validateRawFn: func(path string, raw any) error {
			if _, m := parse(path, raw); m != nil {
				return newValidationError(m.path, m.message)
			}
			return nil
		},
	}
}

func identity[T any](_ string, v T) (any, error) {
	return v, nil
}

// String binds a string field.
func String(name string, dst *Optional[string]) Field {
	return primitive(name, KindString, dst, parseString, identity[string])
}

// Int binds an integer field.
func Int(name string, dst *Optional[int64]) Field {
	return primitive(name, KindInteger, dst, parseInt, identity[int64])
}

// Float binds a number field.
func Float(name string, dst *Optional[float64]) Field {
	return primitive(name, KindNumber, dst, parseFloat, func(path string, v float64) (any, error) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newEncodeError(path, "number is not finite")
		}
		return v, nil
	})
}

// Bool binds a boolean field.
func Bool(name string, dst *Optional[bool]) Field {
	return primitive(name, KindBoolean, dst, parseBool, identity[bool])
}

// DateTime binds an ISO-8601 timestamp field.
func DateTime(name string, dst *Optional[time.Time]) Field {
	return primitive(name, KindDateTime, dst, parseDateTime, func(_ string, v time.Time) (any, error) {
		return FormatDateTime(v), nil
	})
}

// JSON binds a field holding arbitrary JSON, kept as decoded.
func JSON(name string, dst *Optional[any]) Field {
	return primitive(name, KindJSON, dst, func(_ string, raw any) (any, *mismatch) {
		return raw, nil
	}, identity[any])
}

// Map binds a field holding a JSON object with arbitrary values.
func Map(name string, dst *Optional[map[string]any]) Field {
	return primitive(name, KindMap, dst, parseMap, identity[map[string]any])
}

// Strings binds a list of strings.
func Strings(name string, dst *Optional[[]string]) Field {
	f := primitive(name, KindList, dst, parseStrings, func(_ string, v []string) (any, error) {
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	}).(*binding[[]string])
	f.typ.Elem = &Type{Kind: KindString}
	return f
}

func parseString(path string, raw any) (string, *mismatch) {
	s, ok := raw.(string)
	if !ok {
		return "", &mismatch{path: path, message: expected("string", raw)}
	}
	return s, nil
}

func parseInt(path string, raw any) (int64, *mismatch) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, &mismatch{path: path, message: "expected integer, got malformed number", cause: err}
		}
		return integral(path, f)
	case float64:
		return integral(path, v)
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, &mismatch{path: path, message: expected("integer", raw)}
	}
}

// integral converts f to int64 when it has no fractional part and fits in the int64 range.
func integral(path string, f float64) (int64, *mismatch) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &mismatch{path: path, message: "expected integer, got non-integral number"}
	}
	if f < minInt64Float || f >= maxInt64Float {
		return 0, &mismatch{path: path, message: "expected integer, got number out of int64 range"}
	}
	return int64(f), nil
}

const (
	minInt64Float = -9.223372036854775808e18
	maxInt64Float = 9.223372036854775808e18
)

func parseFloat(path string, raw any) (float64, *mismatch) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &mismatch{path: path, message: "expected number, got malformed number", cause: err}
		}
		return f, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, &mismatch{path: path, message: expected("number", raw)}
	}
}

func parseBool(path string, raw any) (bool, *mismatch) {
	b, ok := raw.(bool)
	if !ok {
		return false, &mismatch{path: path, message: expected("boolean", raw)}
	}
	return b, nil
}

func parseDateTime(path string, raw any) (time.Time, *mismatch) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, &mismatch{path: path, message: expected("date-time string", raw)}
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, &mismatch{path: path, message: "invalid date-time " + s, cause: err}
	}
	return t, nil
}

func parseMap(path string, raw any) (map[string]any, *mismatch) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &mismatch{path: path, message: expected("object", raw)}
	}
	return m, nil
}

func parseStrings(path string, raw any) ([]string, *mismatch) {
	elems, ok := raw.([]any)
	if !ok {
		return nil, &mismatch{path: path, message: expected("array", raw)}
	}
	out := make([]string, len(elems))
	for i, elem := range elems {
		s, ok := elem.(string)
		if !ok {
			return nil, &mismatch{path: indexPath(path, i), message: expected("string", elem)}
		}
		out[i] = s
	}
	return out, nil
}
