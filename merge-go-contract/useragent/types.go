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
	"fmt"
	"regexp"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
)

// Grammar of the User-Agent header: a list of products separated by spaces, each "name/version" with an optional
// parenthesized comment list, for example "merge-cli/1.2.0 merge-go-client/0.4.1 golang/1.23.0 (linux/amd64)".
var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9\-]*$`)
	versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*(-rc[0-9]+)?(-[0-9]+-g[a-f0-9]+)?$`)
	commentPattern = regexp.MustCompile(`^[^,;()]+$`)
)

// Product is one "name/version (comments)" entry of the header.
type Product struct {
	name     string
	version  string
	comments []string
}

// NewProduct validates name, version and comments against the header grammar.
func NewProduct(name, version string, comments ...string) (Product, error) {
	if !namePattern.MatchString(name) {
		return Product{}, werror.Error("product name is not valid for User-Agent",
			werror.SafeParam("name", name),
			werror.SafeParam("namePattern", namePattern.String()))
	}
	if !versionPattern.MatchString(version) {
		return Product{}, werror.Error("product version is not valid for User-Agent",
			werror.SafeParam("version", version),
			werror.SafeParam("versionPattern", versionPattern.String()))
	}
	for _, comment := range comments {
		if !commentPattern.MatchString(comment) {
			return Product{}, werror.Error("product comment is not valid for User-Agent",
				werror.SafeParam("comment", comment),
				werror.SafeParam("commentPattern", commentPattern.String()))
		}
	}
	return Product{name: name, version: version, comments: comments}, nil
}

// MustNewProduct is NewProduct for products known at compile time. It panics on an invalid product.
func MustNewProduct(name, version string, comments ...string) Product {
	p, err := NewProduct(name, version, comments...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Product) String() string {
	str := p.name + "/" + p.version
	if len(p.comments) > 0 {
		str = fmt.Sprintf("%s (%s)", str, strings.Join(p.comments, ", "))
	}
	return str
}

// Builder is a stack of products. The most recently pushed product is the most specific and is rendered first.
type Builder struct {
	products []Product
}

func (b *Builder) Push(product ...Product) {
	b.products = append(b.products, product...)
}

// String renders the header value, most recently pushed product first.
func (b *Builder) String() string {
	strs := make([]string, 0, len(b.products))
	for i := len(b.products) - 1; i >= 0; i-- {
		strs = append(strs, b.products[i].String())
	}
	return strings.Join(strs, " ")
}

// With returns a copy of b with products pushed on top. b is not modified.
func (b *Builder) With(products ...Product) *Builder {
	clone := b.Clone()
	clone.Push(products...)
	return clone
}

func (b *Builder) Clone() *Builder {
	stack := Builder{
		products: make([]Product, len(b.products)),
	}
	copy(stack.products, b.products)
	return &stack
}
