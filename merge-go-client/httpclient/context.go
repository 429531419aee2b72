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
)

type rpcMethodNameKey struct{}

// ContextWithRPCMethodName returns a copy of ctx carrying the RPC method name, like "ListJobs".
// The metrics middleware reads it to tag the client.response timer.
func ContextWithRPCMethodName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, rpcMethodNameKey{}, name)
}

func getRPCMethodName(ctx context.Context) string {
	if name, ok := ctx.Value(rpcMethodNameKey{}).(string); ok {
		return name
	}
	return ""
}
