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

// UnionKind identifies which variant a union value holds.
type UnionKind int

const (
	UnionInvalid UnionKind = iota
	UnionEnum
	UnionString
	UnionRecord
)

func (k UnionKind) String() string {
	switch k {
	case UnionEnum:
		return "enum"
	case UnionString:
		return "string"
	case UnionRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Union holds exactly one of: a member of a closed enum, a free-form string (an unknown code or an id
// reference), or a nested record of type T.
type Union[T any] struct {
	kind   UnionKind
	member EnumMember
	str    string
	record T
}

func UnionFromEnum[T any](m EnumMember) Union[T] {
	return Union[T]{kind: UnionEnum, member: m}
}

func UnionFromString[T any](s string) Union[T] {
	return Union[T]{kind: UnionString, str: s}
}

func UnionFromRecord[T any](v T) Union[T] {
	return Union[T]{kind: UnionRecord, record: v}
}

func (u Union[T]) Kind() UnionKind {
	return u.kind
}

func (u Union[T]) IsEnum() bool {
	return u.kind == UnionEnum
}

func (u Union[T]) IsString() bool {
	return u.kind == UnionString
}

func (u Union[T]) IsRecord() bool {
	return u.kind == UnionRecord
}

func (u Union[T]) Enum() (EnumMember, bool) {
	return u.member, u.kind == UnionEnum
}

// Literal returns the string variant and true if the union holds a string.
func (u Union[T]) Literal() (string, bool) {
	return u.str, u.kind == UnionString
}

func (u Union[T]) Record() (T, bool) {
	return u.record, u.kind == UnionRecord
}

// resolveUnion picks the variant for raw: a known enum wire code, then a JSON object that validates against
// the nested record schema, then any other string.
func resolveUnion[T any, PT RecordPtr[T]](path string, raw any, set *EnumSet) (Union[T], error) {
	s, isString := raw.(string)
	if isString && set != nil {
		if m, ok := set.ByWire(s); ok {
			return UnionFromEnum[T](m), nil
		}
	}
	var recordErr error
	if obj, ok := raw.(map[string]any); ok {
		var v T
		if recordErr = validateObject(path, obj, PT(&v)); recordErr == nil {
			if err := decodeObject(path, obj, PT(&v)); err != nil {
				return Union[T]{}, err
			}
			return UnionFromRecord(v), nil
		}
	}
	if isString {
		return UnionFromString[T](s), nil
	}
	return Union[T]{}, unionResolutionError(path, raw, recordErr)
}

func encodeUnion[T any, PT RecordPtr[T]](path string, u Union[T], set *EnumSet, opts *encodeOptions) (any, error) {
	switch u.kind {
	case UnionEnum:
		if set == nil || !set.Contains(u.member) {
			return nil, newEncodeError(path, "enum member "+u.member.Name+" is not in "+set.Name())
		}
		return u.member.Wire, nil
	case UnionString:
		return u.str, nil
	case UnionRecord:
		// the record variant always round-trips its undeclared keys
		lossless := *opts
		lossless.additionalProperties = true
		v := u.record
		return encodeObject(path, PT(&v), &lossless)
	default:
		return nil, newEncodeError(path, "union holds no variant")
	}
}

func validateUnion[T any, PT RecordPtr[T]](path string, u Union[T], set *EnumSet) error {
	switch u.kind {
	case UnionEnum:
		if set == nil || !set.Contains(u.member) {
			return newValidationError(path, "enum member "+u.member.Name+" is not in "+set.Name())
		}
		return nil
	case UnionString:
		return nil
	case UnionRecord:
		v := u.record
		return validateRecord(path, PT(&v))
	default:
		return newValidationError(path, "union holds no variant")
	}
}
