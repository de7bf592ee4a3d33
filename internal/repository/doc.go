// Package repository implements the data access layer for the CardVault API.
//
// Each repository struct handles CRUD operations for a specific domain
// entity using SurrealDB.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, Update, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - RELATE statements for the collection->card membership graph
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewCardRepository(db)
//	card, err := repo.GetByID(ctx, "card:abc123")
//	if err != nil {
//	    return err
//	}
//	if card == nil {
//	    // Handle not found
//	}
package repository
