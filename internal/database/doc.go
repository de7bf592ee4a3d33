// Package database provides the database abstraction layer for CardVault.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, keeping business logic separate from data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// # Batch Transactions
//
// IMPORTANT: Transactions in this package are BATCH-BASED, not
// connection-level. AtomicBatch accumulates queries in memory and wraps them
// in BEGIN TRANSACTION / COMMIT TRANSACTION at execute time. All queries
// succeed or fail together; there is no isolation between Add() calls.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
