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
	"encoding/json"
	"io"

	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeJSON = "application/json"
)

// JSON is the codec of every API request and response body.
//
// Records implement json.Marshaler and json.Unmarshaler through the record codec, so page and model envelopes
// receive the raw body and report field-level errors themselves. Other values, such as request envelopes and
// error bodies, go through safejson: numbers decode as json.Number and HTML characters are not escaped.
var JSON Codec = codecJSON{}

type codecJSON struct{}

func (codecJSON) Accept() string {
	return contentTypeJSON
}

func (c codecJSON) Decode(r io.Reader, v interface{}) error {
	if _, ok := v.(json.Unmarshaler); ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return werror.Wrap(err, "failed to read JSON body")
		}
		return c.Unmarshal(data, v)
	}
	return werror.Wrap(safejson.Decoder(r).Decode(v), "failed to decode JSON body")
}

func (codecJSON) Unmarshal(data []byte, v interface{}) error {
	if unmarshaler, ok := v.(json.Unmarshaler); ok {
		// record errors carry their own kind and path
		return unmarshaler.UnmarshalJSON(data)
	}
	return werror.Wrap(safejson.Unmarshal(data, v), "failed to decode JSON body")
}

func (codecJSON) ContentType() string {
	return contentTypeJSON
}

func (codecJSON) Encode(w io.Writer, v interface{}) error {
	if marshaler, ok := v.(json.Marshaler); ok {
		out, err := marshaler.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return werror.Wrap(err, "failed to write JSON body")
	}
	return werror.Wrap(safejson.Encoder(w).Encode(v), "failed to encode JSON body")
}

func (codecJSON) Marshal(v interface{}) ([]byte, error) {
	if marshaler, ok := v.(json.Marshaler); ok {
		return marshaler.MarshalJSON()
	}
	out, err := safejson.Marshal(v)
	return out, werror.Wrap(err, "failed to encode JSON body")
}
