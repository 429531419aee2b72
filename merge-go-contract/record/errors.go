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
	"github.com/merge-api/merge-go-client/merge-go-contract/errors"
	wparams "github.com/palantir/witchcraft-go-params"
)

func decodeError(path, message string, raw any, cause error) error {
	return errors.NewDecodeError(path, message, raw, cause)
}

func kindMismatch(path, want string, raw any) error {
	return errors.NewDecodeError(path, expected(want, raw), raw, nil)
}

func unionResolutionError(path string, raw any, recordErr error) error {
	var params []wparams.ParamStorer
	if recordErr != nil {
		params = append(params, wparams.NewUnsafeParamStorer(map[string]interface{}{"recordError": recordErr.Error()}))
	}
	return errors.NewUnionResolutionError(path, jsonType(raw), params...)
}

func newValidationError(path, message string) error {
	return errors.NewValidationError(path, message)
}

func newEncodeError(path, message string) error {
	return errors.NewEncodeError(path, message)
}
