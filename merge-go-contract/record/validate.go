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

// ValidateRaw checks a decoded JSON tree against the declared schema of r without decoding it. It stops at
// the first mismatch and returns a ValidationError naming the dotted path of the offending value, rooted at
// "obj" (for example "obj.contact.name" or "obj.applications[1]"). r is used only for its schema.
func ValidateRaw(raw any, r Record) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return newValidationError(rootPath, expected("object", raw))
	}
	return validateObject(rootPath, obj, r)
}

// Validate checks that a constructed record satisfies its schema: required fields are set, enum members
// belong to their sets and unions hold a variant. Nested records are checked recursively.
func Validate(r Record) error {
	return validateRecord(rootPath, r)
}

func validateObject(path string, obj map[string]any, r Record) error {
	for _, f := range r.Fields() {
		raw, ok := obj[f.Name()]
		if !ok {
			if f.IsRequired() {
				return newValidationError(fieldPath(path, f.Name()), "required field is missing")
			}
			continue
		}
		if err := f.validateRaw(fieldPath(path, f.Name()), raw); err != nil {
			return err
		}
	}
	return nil
}

func validateRecord(path string, r Record) error {
	for _, f := range r.Fields() {
		if !f.isSet() {
			if f.IsRequired() {
				return newValidationError(fieldPath(path, f.Name()), "required field is not set")
			}
			continue
		}
		if err := f.validate(fieldPath(path, f.Name())); err != nil {
			return err
		}
	}
	return nil
}
