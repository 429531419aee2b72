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

package codecs

import (
	"io"
)

// Decoder decodes wire bytes into a value.
type Decoder interface {
	// Accept returns the value to use in the Accept header of a request expecting this encoding.
	Accept() string
	// Decode reads from r and decodes into v.
	Decode(r io.Reader, v interface{}) error
	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v interface{}) error
}

// Encoder encodes a value into wire bytes.
type Encoder interface {
	// ContentType returns the value to use in the Content-Type header of a request carrying this encoding.
	ContentType() string
	// Encode writes the encoded form of v to w.
	Encode(w io.Writer, v interface{}) error
	// Marshal returns the encoded form of v.
	Marshal(v interface{}) ([]byte, error)
}

// Codec is a Decoder and Encoder for the same format.
type Codec interface {
	Decoder
	Encoder
}
