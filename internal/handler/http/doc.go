// Package http implements the REST transport of the rental server.
//
// It wires the chi router, the middleware chain (trace ids, access log,
// metrics, panic recovery, compression) and the authorization gate, which
// verifies bearer tokens and applies the route policy before any handler
// runs. Handlers decode requests, call the service layer and map its errors
// to HTTP statuses.
package http
