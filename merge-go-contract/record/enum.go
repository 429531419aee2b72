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
	"fmt"
)

// EnumMember is one member of a closed enum: its local name and the upper-snake code used on the wire.
type EnumMember struct {
	Name string
	Wire string
}

func (m EnumMember) String() string {
	return m.Name
}

// EnumSet is an immutable, bidirectional table of the members of a closed enum.
type EnumSet struct {
	name    string
	members []EnumMember
	byWire  map[string]EnumMember
	byName  map[string]EnumMember
}

// NewEnumSet builds the table for a closed enum. It panics if two members share a name or a wire code, since
// enum tables are declared once at package initialization.
func NewEnumSet(name string, members ...EnumMember) *EnumSet {
	s := &EnumSet{
		name:    name,
		members: append([]EnumMember(nil), members...),
		byWire:  make(map[string]EnumMember, len(members)),
		byName:  make(map[string]EnumMember, len(members)),
	}
	for _, m := range members {
		if _, ok := s.byWire[m.Wire]; ok {
			panic(fmt.Sprintf("enum %s: duplicate wire code %q", name, m.Wire))
		}
		if _, ok := s.byName[m.Name]; ok {
			panic(fmt.Sprintf("enum %s: duplicate member name %q", name, m.Name))
		}
		s.byWire[m.Wire] = m
		s.byName[m.Name] = m
	}
	return s
}

func (s *EnumSet) Name() string {
	if s == nil {
		return "enum"
	}
	return s.name
}

// Members returns the members in declaration order. A nil set has no members.
func (s *EnumSet) Members() []EnumMember {
	if s == nil {
		return nil
	}
	return append([]EnumMember(nil), s.members...)
}

func (s *EnumSet) ByWire(wire string) (EnumMember, bool) {
	if s == nil {
		return EnumMember{}, false
	}
	m, ok := s.byWire[wire]
	return m, ok
}

func (s *EnumSet) ByName(name string) (EnumMember, bool) {
	if s == nil {
		return EnumMember{}, false
	}
	m, ok := s.byName[name]
	return m, ok
}

// Contains returns true if m is a member of s, matching both name and wire code.
func (s *EnumSet) Contains(m EnumMember) bool {
	known, ok := s.ByName(m.Name)
	return ok && known == m
}

// Resolve returns the member for a wire code, or an unknown-string OpenEnum if the code is not in the set.
func (s *EnumSet) Resolve(wire string) OpenEnum {
	if m, ok := s.ByWire(wire); ok {
		return EnumValue(m)
	}
	return UnknownEnumValue(wire)
}

// OpenEnum is either a member of a closed enum or a string the enum does not know about. Unknown strings are
// kept verbatim so that codes added upstream round-trip unchanged.
type OpenEnum struct {
	kind   UnionKind
	member EnumMember
	str    string
}

func EnumValue(m EnumMember) OpenEnum {
	return OpenEnum{kind: UnionEnum, member: m}
}

func UnknownEnumValue(s string) OpenEnum {
	return OpenEnum{kind: UnionString, str: s}
}

// Kind returns UnionEnum, UnionString, or UnionInvalid for the zero value.
func (e OpenEnum) Kind() UnionKind {
	return e.kind
}

// IsKnown returns true if the value is a member of the closed enum.
func (e OpenEnum) IsKnown() bool {
	return e.kind == UnionEnum
}

func (e OpenEnum) Member() (EnumMember, bool) {
	return e.member, e.kind == UnionEnum
}

// Literal returns the unknown string and true if the value is not an enum member.
func (e OpenEnum) Literal() (string, bool) {
	return e.str, e.kind == UnionString
}

// Is returns true if the value is the enum member m.
func (e OpenEnum) Is(m EnumMember) bool {
	return e.kind == UnionEnum && e.member == m
}

// Wire returns the string sent on the wire for the value.
func (e OpenEnum) Wire() string {
	if e.kind == UnionEnum {
		return e.member.Wire
	}
	return e.str
}

func (e OpenEnum) String() string {
	if e.kind == UnionEnum {
		return e.member.Name
	}
	return e.str
}
