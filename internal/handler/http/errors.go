// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyToken is returned when the "Authorization" header carries the
	// "Bearer " scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParameter is reported when a numeric path parameter
	// (e.g. a car id) is not a positive integer.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidQueryParameter is reported for malformed paging or filter
	// query parameters.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
