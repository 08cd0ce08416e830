// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// Package microblog wraps the microblog service's REST API.
//
// [Client] holds the service base URL and HTTP transport. All
// operations take a context and return explicit errors: the feed and
// post reads ([Client.ListPosts], [Client.GetPost],
// [Client.ListPostsByUser]) and the write operations ([Client.Login],
// [Client.Signup], [Client.CreatePost]).
//
// The service has no sessions on the wire: login returns a [User]
// snapshot that the UI holds in memory, and privileged writes carry a
// client-supplied user ID. There is no token to attach to subsequent
// requests — a property of the service's API, not of this client.
//
// Non-2xx responses are returned as [*APIError] with the HTTP status
// code and whatever detail message the server provided. Transport and
// decode failures are wrapped with fmt.Errorf; callers that only care
// about success versus failure can treat every non-nil error
// identically.
package microblog
