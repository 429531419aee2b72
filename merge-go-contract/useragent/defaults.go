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
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	werror "github.com/palantir/witchcraft-go-error"
)

const modulePath = "github.com/merge-api/merge-go-client"

// Default holds the Go runtime and client library products sent with every request. Applications add their
// own product with With, leaving Default unchanged.
var Default = Builder{
	products: []Product{goProduct(), clientProduct()},
}

func clientProduct() Product {
	p := Product{name: "merge-go-client", version: "0.0.0"}
	mod, err := detectModule(modulePath)
	if err == nil && versionPattern.MatchString(strings.TrimPrefix(mod.Version, "v")) {
		p.version = strings.TrimPrefix(mod.Version, "v")
	}
	return p
}

func goProduct() Product {
	return Product{
		name:     "golang",
		version:  strings.TrimPrefix(runtime.Version(), "go"),
		comments: []string{fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
}

// detectModule finds moduleName among the dependencies of the running binary, or as its main module.
func detectModule(moduleName string) (*debug.Module, error) {
	buildInfo, err := readBuildInfo()
	if err != nil {
		return nil, err
	}
	if buildInfo.Main.Path == moduleName {
		return &buildInfo.Main, nil
	}
	for _, mod := range buildInfo.Deps {
		if mod.Path == moduleName {
			return mod, nil
		}
	}
	return nil, werror.Error("unable to find module", werror.SafeParam("module", moduleName))
}

var (
	buildInfoOnce  = &sync.Once{}
	buildInfoCache *debug.BuildInfo
	buildInfoErr   error
)

func readBuildInfo() (*debug.BuildInfo, error) {
	buildInfoOnce.Do(func() {
		buildInfo, ok := debug.ReadBuildInfo()
		if ok {
			buildInfoCache = buildInfo
		} else {
			buildInfoErr = werror.Error("unable to read runtime/debug build info")
		}
	})
	return buildInfoCache, buildInfoErr
}
