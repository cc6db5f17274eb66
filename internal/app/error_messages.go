// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants of the rental server.
//
// The Msg* constants are the human-readable descriptions written into the
// "message" field of JSON error bodies when the underlying error must not be
// shown to the caller.
package app

const (
	// MsgAuthenticationRequired answers an anonymous request to a route that
	// needs an identity.
	MsgAuthenticationRequired = "full authentication is required to access this resource"

	// MsgAccessDenied answers a request whose identity lacks the role the
	// route requires, or a request matching no route rule.
	MsgAccessDenied = "access is denied"

	// MsgInternalServerError replaces the details of unexpected server-side
	// failures.
	MsgInternalServerError = "internal server error"

	// MsgDatabaseUnavailable is reported by the health endpoint when the
	// database does not answer a ping.
	MsgDatabaseUnavailable = "database is unavailable"
)
