// Package model defines domain entities and data structures for the CardVault API.
//
// The model package contains struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities:
//
//   - Card: a single Pokemon card record, scoped to its owner by email
//   - Collection: a named grouping of cards belonging to one owner
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Card struct {
//	    ID   string `json:"id"`
//	    Name string `json:"name"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go.
package model
