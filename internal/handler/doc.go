// Package handler provides HTTP request handlers for the CardVault API.
//
// Each handler struct encapsulates the dependencies needed to serve requests
// for a specific feature area (cards, collections).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it fronts
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Authentication
//
// Mutating handlers require authentication via JWT bearer tokens. The auth
// middleware extracts the caller's email, which handlers read with
// middleware.GetUserEmail(ctx) and pass to services as the actor identity.
package handler
