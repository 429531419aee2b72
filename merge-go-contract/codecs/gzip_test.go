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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZIPCompression(t *testing.T) {
	// create a compressible payload
	input := map[string]string{
		"a": strings.Repeat("a", 100),
		"b": strings.Repeat("b", 100),
		"c": strings.Repeat("a", 100),
	}
	gzipCodec := GZIP(JSON)
	plain, err := JSON.Marshal(input)
	require.NoError(t, err)

	t.Run("Encode/Decode", func(t *testing.T) {
		var buf bytes.Buffer
		err := gzipCodec.Encode(&buf, input)
		require.NoError(t, err)

		encoded := buf.String()
		assert.Less(t, len(encoded), len(plain))

		var actual map[string]string
		err = gzipCodec.Decode(strings.NewReader(encoded), &actual)
		require.NoError(t, err)
		require.Equal(t, input, actual)
	})
	t.Run("Marshal/Unmarshal", func(t *testing.T) {
		encoded, err := gzipCodec.Marshal(input)
		require.NoError(t, err)
		assert.Less(t, len(encoded), len(plain))

		var actual map[string]string
		err = gzipCodec.Unmarshal(encoded, &actual)
		require.NoError(t, err)
		require.Equal(t, input, actual)
	})
	t.Run("content type of wrapped codec", func(t *testing.T) {
		assert.Equal(t, JSON.ContentType(), gzipCodec.ContentType())
		assert.Equal(t, JSON.Accept(), gzipCodec.Accept())
	})
}
