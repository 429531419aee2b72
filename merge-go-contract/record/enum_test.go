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

package record_test

import (
	"testing"

	"github.com/merge-api/merge-go-client/merge-go-contract/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumSet(t *testing.T) {
	m, ok := statusEnum.ByWire("OPEN")
	assert.True(t, ok)
	assert.Equal(t, statusOpen, m)

	m, ok = statusEnum.ByName("closed")
	assert.True(t, ok)
	assert.Equal(t, "CLOSED", m.Wire)

	_, ok = statusEnum.ByWire("open")
	assert.False(t, ok, "wire lookup is case sensitive")

	assert.Equal(t, []record.EnumMember{statusOpen, statusClosed}, statusEnum.Members())
	assert.True(t, statusEnum.Contains(statusOpen))
	assert.False(t, statusEnum.Contains(record.EnumMember{Name: "open", Wire: "OPENED"}))
}

func TestEnumSetDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		record.NewEnumSet("Dup", record.EnumMember{Name: "a", Wire: "A"}, record.EnumMember{Name: "b", Wire: "A"})
	})
	assert.Panics(t, func() {
		record.NewEnumSet("Dup", record.EnumMember{Name: "a", Wire: "A"}, record.EnumMember{Name: "a", Wire: "B"})
	})
}

func TestOpenEnum(t *testing.T) {
	known := statusEnum.Resolve("OPEN")
	assert.Equal(t, record.UnionEnum, known.Kind())
	assert.True(t, known.IsKnown())
	assert.Equal(t, "OPEN", known.Wire())
	assert.Equal(t, "open", known.String())

	unknown := statusEnum.Resolve("REOPENED")
	assert.Equal(t, record.UnionString, unknown.Kind())
	assert.False(t, unknown.Is(statusOpen))
	assert.Equal(t, "REOPENED", unknown.Wire())

	assert.Equal(t, record.UnionInvalid, record.OpenEnum{}.Kind())
}

type untypedKind struct {
	record.ExtraProperties
	Kind record.Optional[record.OpenEnum]
}

func (*untypedKind) RecordType() string { return "UntypedKind" }

func (u *untypedKind) Fields() []record.Field {
	return []record.Field{record.Enum("kind", &u.Kind, nil)}
}

func TestNilEnumSet(t *testing.T) {
	var set *record.EnumSet
	_, ok := set.ByWire("OPEN")
	assert.False(t, ok)
	_, ok = set.ByName("open")
	assert.False(t, ok)
	assert.False(t, set.Contains(statusOpen))
	assert.Empty(t, set.Members())
	assert.Equal(t, record.UnionString, set.Resolve("OPEN").Kind())

	var v untypedKind
	require.NoError(t, record.Unmarshal([]byte(`{"kind":"OPEN"}`), &v))
	kind, ok := v.Kind.Get()
	require.True(t, ok)
	literal, ok := kind.Literal()
	assert.True(t, ok)
	assert.Equal(t, "OPEN", literal)
	require.NoError(t, record.ValidateRaw(map[string]any{"kind": "OPEN"}, &v))

	out, err := record.Marshal(&v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"OPEN"}`, string(out))
}
