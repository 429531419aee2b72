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
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/merge-api/merge-go-client/merge-go-contract/codecs"
	werror "github.com/palantir/witchcraft-go-error"
)

// WithRPCMethodName configures the requests's context with the RPC method name, like "ListJobs".
// This is read by the metrics middleware.
func WithRPCMethodName(name string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.configureCtx = append(b.configureCtx, func(ctx context.Context) context.Context {
			return ContextWithRPCMethodName(ctx, name)
		})
		return nil
	})
}

// WithRequestMethod sets the HTTP method of the request, e.g. GET or POST.
func WithRequestMethod(method string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if method == "" {
			return werror.Error("httpclient: request method can not be empty")
		}
		b.method = strings.ToUpper(method)
		return nil
	})
}

// WithPath sets the path for the request. This will be joined with
// one of the BaseURLs set on the client
func WithPath(path string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.path = path
		return nil
	})
}

// WithPathf sets the path for the request. This will be joined with
// one of the BaseURLs set on the client. Arguments are path-escaped.
func WithPathf(format string, args ...interface{}) RequestParam {
	escaped := make([]interface{}, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			escaped[i] = url.PathEscape(s)
		} else {
			escaped[i] = arg
		}
	}
	return WithPath(fmt.Sprintf(format, escaped...))
}

// WithHeader sets a header on a request.
func WithHeader(key, value string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.headers.Set(key, value)
		return nil
	})
}

// WithQueryValues adds query parameters to a request.
func WithQueryValues(query url.Values) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		for k, vs := range query {
			for _, v := range vs {
				b.query.Add(k, v)
			}
		}
		return nil
	})
}

// WithQueryValue adds a single query parameter to a request.
func WithQueryValue(key, value string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.query.Add(key, value)
		return nil
	})
}

// WithRequestBody provides a value to marshal and use
// as the request body. Encoding is handled by the impl
// passed to WithRequestBody.
// Example:
//
//	input := map[string]interface{}{"model": model}
//	resp, err := client.Do(..., WithRequestBody(input, codecs.JSON), ...)
func WithRequestBody(input interface{}, encoder codecs.Encoder) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.requestInput = input
		b.bodyMiddleware.requestEncoder = encoder
		b.headers.Set("Content-Type", encoder.ContentType())
		return nil
	})
}

// WithRawRequestBody uses the provided RequestBody as the request body.
// Example:
//
//	resp, err := client.Do(..., WithRawRequestBody(RequestBodyInMemory(bytes.NewReader(data))), ...)
func WithRawRequestBody(body RequestBody) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.requestInput = body
		b.bodyMiddleware.requestEncoder = nil
		b.headers.Set("Content-Type", "application/octet-stream")
		return nil
	})
}

// WithJSONRequest sets the request body to the input marshaled using the JSON codec.
func WithJSONRequest(input interface{}) RequestParam {
	return WithRequestBody(input, codecs.JSON)
}

// WithCompressedRequest wraps the 'codec'-encoded request body in gzip compression.
func WithCompressedRequest(input interface{}, codec codecs.Codec) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.headers.Set("Content-Encoding", "gzip")
		b.bodyMiddleware.requestInput = input
		b.bodyMiddleware.requestEncoder = codecs.GZIP(codec)
		b.headers.Set("Content-Type", codec.ContentType())
		return nil
	})
}

// WithResponseBody provides a value into which the response body
// will be decoded. Decoding is handled by the impl passed to
// WithResponseBody.
// Example:
//
//	var output ats.Job
//	resp, err := client.Do(..., WithResponseBody(&output, codecs.JSON), ...)
//	return output, nil
//
// In the case of an empty response, output will be unmodified.
func WithResponseBody(output interface{}, decoder codecs.Decoder) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.responseOutput = output
		b.bodyMiddleware.responseDecoder = decoder
		b.headers.Set("Accept", decoder.Accept())
		return nil
	})
}

// WithRawResponseBody configures the request such that the response
// body will not be read or drained after the request is executed.
// In this case, it is the responsibility of the caller to read and
// close the returned reader.
// Example:
//
//	resp, err := client.Do(..., WithRawResponseBody(), ...)
//	defer resp.Body.Close()
//	bytes, err := io.ReadAll(resp.Body)
func WithRawResponseBody() RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.rawOutput = true
		b.bodyMiddleware.responseOutput = nil
		b.bodyMiddleware.responseDecoder = nil
		b.headers.Set("Accept", "application/octet-stream")
		return nil
	})
}

// WithJSONResponse unmarshals the response body using the JSON codec.
// The request will return an error if decoding fails.
func WithJSONResponse(output interface{}) RequestParam {
	return WithResponseBody(output, codecs.JSON)
}

// WithRequestErrorDecoder sets the error decoder of this request, replacing the client's.
func WithRequestErrorDecoder(errorDecoder ErrorDecoder) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.errorDecoder = errorDecoder
		return nil
	})
}

// WithRequestMiddleware wraps this request's transport in h, outside the client's middlewares.
func WithRequestMiddleware(h Middleware) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.middlewares = append(b.middlewares, h)
		return nil
	})
}
