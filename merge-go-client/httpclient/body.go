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

package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// RequestBody is an interface that can be used to set the body of an http.Request.
// Implementations of this interface should set the fields Body, GetBody, and ContentLength (if known).
// A RequestBody may be set on several requests when a request is retried, so each call must produce a fresh body.
type RequestBody interface {
	setRequestBody(req *http.Request) error
}

// requestBodyFunc is a function that sets the body of an http.Request and implements RequestBody.
type requestBodyFunc func() (length int64, body io.ReadCloser, getBody func() (io.ReadCloser, error), err error)

func (f requestBodyFunc) setRequestBody(req *http.Request) (err error) {
	req.ContentLength, req.Body, req.GetBody, err = f()
	return err
}

// RequestBodyInMemory sets the *http.Request Body field to the provided *bytes.Buffer, *bytes.Reader, or *strings.Reader for upload.
// The GetBody field is set to a function that returns the same content.
func RequestBodyInMemory[T bytes.Buffer | bytes.Reader | strings.Reader](input *T) RequestBody {
	return requestBodyFunc(func() (int64, io.ReadCloser, func() (io.ReadCloser, error), error) {
		if input == nil {
			return 0, nil, nil, nil
		}
		contentLen := int64(any(input).(interface{ Len() int }).Len())
		snapshot := *input
		getBody := func() (io.ReadCloser, error) {
			r := snapshot
			return io.NopCloser(any(&r).(io.Reader)), nil
		}
		firstBody, _ := getBody()
		return contentLen, firstBody, getBody, nil
	})
}

// RequestBodyStreamWithReplay sets the *http.Request Body and GetBody fields for upload.
//
// getBody is called for every attempt of the request, so it must return a new reader over the same content each
// time. The body's Close() method will be called when the request is completed.
func RequestBodyStreamWithReplay(getBody func() (io.ReadCloser, error)) RequestBody {
	return requestBodyFunc(func() (int64, io.ReadCloser, func() (io.ReadCloser, error), error) {
		body, err := getBody()
		return -1, body, getBody, err
	})
}
