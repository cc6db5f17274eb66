// Package adapter is the client side of the car rental REST API.
//
// [NewHTTPRentalAdapter] returns a [RentalAPI] built on resty. It keeps the
// access and refresh tokens handed out by /login and /token/refresh and sends
// the access token as a bearer token on every protected call. Non-2xx answers
// are decoded from the JSON error body and wrapped in the sentinel errors of
// this package (ErrUnauthorized, ErrPaymentRequired, ErrConflict, ...).
package adapter
