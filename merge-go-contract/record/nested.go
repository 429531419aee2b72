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

// Nested binds a field holding a nested record.
func Nested[T any, PT RecordPtr[T]](name string, dst *Optional[T]) Field {
	return &binding[T]{
		name:     name,
		typ:      Type{Kind: KindRecord, Record: PT(new(T)).RecordType()},
		dst:      dst,
		decodeFn: decodeNested[T, PT],
		encodeFn: encodeNested[T, PT],
		validateRawFn: func(path string, raw any) error {
			obj, ok := raw.(map[string]any)
			if !ok {
				return newValidationError(path, expected("object", raw))
			}
			var v T
			return validateObject(path, obj, PT(&v))
		},
		validateFn: func(path string, v T) error {
			return validateRecord(path, PT(&v))
		},
	}
}

// List binds a list of nested records. Element order is preserved.
func List[T any, PT RecordPtr[T]](name string, dst *Optional[[]T]) Field {
	elem := Type{Kind: KindRecord, Record: PT(new(T)).RecordType()}
	return &binding[[]T]{
		name: name,
		typ:  Type{Kind: KindList, Elem: &elem},
		dst:  dst,
		decodeFn: func(path string, raw any) ([]T, error) {
			elems, ok := raw.([]any)
			if !ok {
				return nil, kindMismatch(path, "array", raw)
			}
			out := make([]T, len(elems))
			for i, e := range elems {
				v, err := decodeNested[T, PT](indexPath(path, i), e)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		},
		encodeFn: func(path string, v []T, opts *encodeOptions) (any, error) {
			out := make([]any, len(v))
			for i := range v {
				e, err := encodeNested[T, PT](indexPath(path, i), v[i], opts)
				if err != nil {
					return nil, err
				}
				out[i] = e
			}
			return out, nil
		},
		validateRawFn: func(path string, raw any) error {
			elems, ok := raw.([]any)
			if !ok {
				return newValidationError(path, expected("array", raw))
			}
			for i, e := range elems {
				obj, ok := e.(map[string]any)
				if !ok {
					return newValidationError(indexPath(path, i), expected("object", e))
				}
				var v T
				if err := validateObject(indexPath(path, i), obj, PT(&v)); err != nil {
					return err
				}
			}
			return nil
		},
		validateFn: func(path string, v []T) error {
			for i := range v {
				if err := validateRecord(indexPath(path, i), PT(&v[i])); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func decodeNested[T any, PT RecordPtr[T]](path string, raw any) (T, error) {
	var v T
	obj, ok := raw.(map[string]any)
	if !ok {
		return v, kindMismatch(path, "object", raw)
	}
	if err := decodeObject(path, obj, PT(&v)); err != nil {
		return v, err
	}
	return v, nil
}

func encodeNested[T any, PT RecordPtr[T]](path string, v T, opts *encodeOptions) (any, error) {
	return encodeObject(path, PT(&v), opts)
}

// Enum binds a field holding a member of set or, for codes set does not know, the raw string. With a nil set
// every code is kept as a string.
func Enum(name string, dst *Optional[OpenEnum], set *EnumSet) Field {
	return &binding[OpenEnum]{
		name: name,
		typ:  Type{Kind: KindEnum, Enum: set},
		dst:  dst,
		decodeFn: func(path string, raw any) (OpenEnum, error) {
			s, ok := raw.(string)
			if !ok {
				return OpenEnum{}, unionResolutionError(path, raw, nil)
			}
			return set.Resolve(s), nil
		},
		encodeFn: func(path string, v OpenEnum, _ *encodeOptions) (any, error) {
			switch v.kind {
			case UnionEnum:
				if !set.Contains(v.member) {
					return nil, newEncodeError(path, "enum member "+v.member.Name+" is not in "+set.Name())
				}
				return v.member.Wire, nil
			case UnionString:
				return v.str, nil
			default:
				return nil, newEncodeError(path, "enum value holds no variant")
			}
		},
		validateRawFn: func(path string, raw any) error {
			if _, ok := raw.(string); !ok {
				return newValidationError(path, expected(set.Name()+" or string", raw))
			}
			return nil
		},
		validateFn: func(path string, v OpenEnum) error {
			switch v.kind {
			case UnionEnum:
				if !set.Contains(v.member) {
					return newValidationError(path, "enum member "+v.member.Name+" is not in "+set.Name())
				}
				return nil
			case UnionString:
				return nil
			default:
				return newValidationError(path, "enum value holds no variant")
			}
		},
	}
}

// UnionOf binds a field holding a member of set, a nested record of type T, or a string. set may be nil for
// unions of an id reference or an expanded record.
func UnionOf[T any, PT RecordPtr[T]](name string, dst *Optional[Union[T]], set *EnumSet) Field {
	return &binding[Union[T]]{
		name: name,
		typ:  unionType[T, PT](set),
		dst:  dst,
		decodeFn: func(path string, raw any) (Union[T], error) {
			return resolveUnion[T, PT](path, raw, set)
		},
		encodeFn: func(path string, v Union[T], opts *encodeOptions) (any, error) {
			return encodeUnion[T, PT](path, v, set, opts)
		},
		validateRawFn: func(path string, raw any) error {
			return validateRawUnion[T, PT](path, raw, set)
		},
		validateFn: func(path string, v Union[T]) error {
			return validateUnion[T, PT](path, v, set)
		},
	}
}

// UnionList binds a list of union values, such as a list of id references or expanded records.
func UnionList[T any, PT RecordPtr[T]](name string, dst *Optional[[]Union[T]], set *EnumSet) Field {
	elem := unionType[T, PT](set)
	return &binding[[]Union[T]]{
		name: name,
		typ:  Type{Kind: KindList, Elem: &elem},
		dst:  dst,
		decodeFn: func(path string, raw any) ([]Union[T], error) {
			elems, ok := raw.([]any)
			if !ok {
				return nil, kindMismatch(path, "array", raw)
			}
			out := make([]Union[T], len(elems))
			for i, e := range elems {
				u, err := resolveUnion[T, PT](indexPath(path, i), e, set)
				if err != nil {
					return nil, err
				}
				out[i] = u
			}
			return out, nil
		},
		encodeFn: func(path string, v []Union[T], opts *encodeOptions) (any, error) {
			out := make([]any, len(v))
			for i, u := range v {
				e, err := encodeUnion[T, PT](indexPath(path, i), u, set, opts)
				if err != nil {
					return nil, err
				}
				out[i] = e
			}
			return out, nil
		},
		validateRawFn: func(path string, raw any) error {
			elems, ok := raw.([]any)
			if !ok {
				return newValidationError(path, expected("array", raw))
			}
			for i, e := range elems {
				if err := validateRawUnion[T, PT](indexPath(path, i), e, set); err != nil {
					return err
				}
			}
			return nil
		},
		validateFn: func(path string, v []Union[T]) error {
			for i, u := range v {
				if err := validateUnion[T, PT](indexPath(path, i), u, set); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func unionType[T any, PT RecordPtr[T]](set *EnumSet) Type {
	return Type{Kind: KindUnion, Record: PT(new(T)).RecordType(), Enum: set}
}

func validateRawUnion[T any, PT RecordPtr[T]](path string, raw any, set *EnumSet) error {
	if raw == nil {
		return newValidationError(path, expected("union value", raw))
	}
	if _, err := resolveUnion[T, PT](path, raw, set); err != nil {
		return newValidationError(path, jsonType(raw)+" value matches no union variant")
	}
	return nil
}
