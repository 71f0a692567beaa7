// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport failures that happen before a request reaches the dispatcher.
var (
	// ErrRequestBodyTooLarge is reported when the body exceeds the configured
	// MaxBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrReadingRequestBody is reported when the body cannot be read, for
	// example because the gzip stream is corrupt.
	ErrReadingRequestBody = errors.New("error reading request body")
)

const (
	msgRequestBodyTooLarge = "Request body too large"
	msgInvalidRequestBody  = "Invalid request body"
)
