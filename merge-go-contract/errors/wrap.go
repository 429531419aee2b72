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

package errors

import (
	werror "github.com/palantir/witchcraft-go-error"
	wparams "github.com/palantir/witchcraft-go-params"
)

// WrapWithRecordType wraps err with the name of the record type being processed, keeping err's Kind
// reachable through AsError. Nil errors are returned as nil.
func WrapWithRecordType(err error, recordType string, params ...wparams.ParamStorer) error {
	if err == nil {
		return nil
	}
	werrorParams := []werror.Param{werror.SafeParam("recordType", recordType)}
	for _, p := range params {
		for k, v := range p.SafeParams() {
			werrorParams = append(werrorParams, werror.SafeParam(k, v))
		}
		for k, v := range p.UnsafeParams() {
			werrorParams = append(werrorParams, werror.UnsafeParam(k, v))
		}
	}
	return werror.Wrap(err, "failed to process "+recordType, werrorParams...)
}
