// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response reading helpers for the
// microblog API client.
//
// All response body reads are bounded at MaxResponseSize so a
// misbehaving server cannot make the client allocate unbounded
// memory. The helpers are for JSON API responses (feeds, posts,
// auth), not for streaming or binary downloads.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 16 MB.
// A full feed response is a few kilobytes of JSON; the limit is
// generous enough to never interfere with legitimate traffic while
// still capping a pathological response.
const MaxResponseSize int64 = 16 << 20

// DecodeResponse reads a JSON API response body (up to MaxResponseSize
// bytes) and JSON-decodes it into v. Replaces the common
// io.ReadAll + json.Unmarshal pair.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorBody reads an HTTP error response body and returns it as a
// string for diagnostic error messages. Read errors are silently
// ignored — a partial or empty body is still useful in an error
// message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}
