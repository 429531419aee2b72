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

package useragent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	for _, test := range []struct {
		Name        string
		Product     Product
		ExpectedErr string
	}{
		{
			Name:        "empty",
			ExpectedErr: "product name is not valid for User-Agent",
		},
		{
			Name:        "empty version",
			Product:     Product{name: "merge-cli"},
			ExpectedErr: "product version is not valid for User-Agent",
		},
		{
			Name:    "ok product",
			Product: Product{name: "merge-cli", version: "1.0.0"},
		},
		{
			Name:    "ok product with comments",
			Product: Product{name: "merge-cli", version: "1.0.0", comments: []string{"linux", "sandbox"}},
		},
		{
			Name:        "invalid name",
			Product:     Product{name: "merge cli", version: "1.0.0"},
			ExpectedErr: "product name is not valid for User-Agent",
		},
		{
			Name:        "invalid version",
			Product:     Product{name: "merge-cli", version: "v1.0.0"},
			ExpectedErr: "product version is not valid for User-Agent",
		},
		{
			Name:        "invalid comment",
			Product:     Product{name: "merge-cli", version: "1.0.0", comments: []string{"a;b"}},
			ExpectedErr: "product comment is not valid for User-Agent",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			p, err := NewProduct(test.Product.name, test.Product.version, test.Product.comments...)
			if test.ExpectedErr == "" {
				require.NoError(t, err)
				assert.Equal(t, test.Product, p)
			} else {
				require.EqualError(t, err, test.ExpectedErr)
			}
		})
	}
}

func TestBuilder_String(t *testing.T) {
	for _, test := range []struct {
		Name     string
		In       []Product
		Expected string
	}{
		{
			Name:     "empty",
			Expected: "",
		},
		{
			Name:     "single product",
			In:       []Product{{name: "merge-cli", version: "1.0.0"}},
			Expected: "merge-cli/1.0.0",
		},
		{
			Name:     "single product with comments",
			In:       []Product{{name: "merge-cli", version: "1.0.0", comments: []string{"linux", "sandbox"}}},
			Expected: "merge-cli/1.0.0 (linux, sandbox)",
		},
		{
			Name: "two products with comments",
			In: []Product{
				{name: "merge-go-client", version: "1.0.0", comments: []string{"one"}},
				{name: "merge-cli", version: "2.0.0", comments: []string{"two"}},
			},
			Expected: "merge-cli/2.0.0 (two) merge-go-client/1.0.0 (one)",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			stack := Builder{}
			stack.Push(test.In...)
			assert.Equal(t, test.Expected, stack.String())
		})
	}
}

func TestDefault(t *testing.T) {
	ua := Default.String()
	assert.True(t, strings.HasPrefix(ua, "merge-go-client/"), ua)
	assert.Contains(t, ua, " golang/")

	clone := Default.Clone()
	clone.Push(MustNewProduct("merge-cli", "1.0.0"))
	assert.True(t, strings.HasPrefix(clone.String(), "merge-cli/1.0.0 merge-go-client/"))
	assert.Equal(t, ua, Default.String())
}

func TestBuilder_With(t *testing.T) {
	base := Builder{}
	base.Push(MustNewProduct("merge-go-client", "1.0.0"))

	cli := base.With(MustNewProduct("merge-cli", "2.0.0"), MustNewProduct("plugin", "0.1.0", "beta"))
	assert.Equal(t, "plugin/0.1.0 (beta) merge-cli/2.0.0 merge-go-client/1.0.0", cli.String())
	assert.Equal(t, "merge-go-client/1.0.0", base.String())
}
