// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler    = errors.New("server: no HTTP handler is configured")
	errEmptyHTTPAddress = errors.New("server: HTTP address is empty")
	errListen           = errors.New("server: HTTP listener failed")
)
