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

type presence uint8

const (
	omitted presence = iota
	null
	present
)

// Optional holds a field value together with its presence: omitted (the zero value), explicitly null, or set.
//
// Omitted fields produce no key when encoded; null fields produce a JSON null.
type Optional[T any] struct {
	value T
	state presence
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: present}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: null}
}

// Omitted returns an Optional that was never set. It is equal to the zero value.
func Omitted[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet returns true if the value is present or explicitly null.
func (o Optional[T]) IsSet() bool {
	return o.state != omitted
}

// IsNull returns true if the value was explicitly set to null.
func (o Optional[T]) IsNull() bool {
	return o.state == null
}

// Get returns the value and true if a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == present
}

// OrElse returns the value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.state == present {
		return o.value
	}
	return fallback
}

// Ptr returns a pointer to a copy of the value, or nil if no value is present.
func (o Optional[T]) Ptr() *T {
	if o.state != present {
		return nil
	}
	v := o.value
	return &v
}
