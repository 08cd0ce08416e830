// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package microblog

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the microblog service.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *microblog.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.StatusCode == http.StatusNotFound { ... }
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
	// Detail is the human-readable error description from the server,
	// empty when the server sent no parseable detail.
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("microblog: server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("microblog: server returned %d: %s", e.StatusCode, e.Detail)
}

// IsStatus checks whether err is an *APIError with the given HTTP
// status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}
