// Package middleware provides HTTP middleware for the CardVault API.
//
// # Available Middleware
//
//   - Auth: JWT bearer token validation and caller identity extraction
//   - RequestID: per-request correlation IDs
//   - Logger: structured request logging via log/slog
//   - Recovery: panic recovery with a 500 Problem Details response
//   - CORS: origin allow-listing
//
// # Authentication
//
// The auth middleware validates the bearer token and puts the caller's
// identity in the request context. Handlers read it back:
//
//	email := middleware.GetUserEmail(r.Context())
package middleware
