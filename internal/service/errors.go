package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Ownership Errors =====
var (
	ErrNotRecordOwner = errors.New("not the owner of this record")
)

// ===== Card Errors =====
var (
	ErrCardNotFound        = errors.New("card not found")
	ErrCardNameRequired    = errors.New("card name is required")
	ErrCardPriceOutOfRange = errors.New("price must be between 0 and 10000")
)

// ===== Collection Errors =====
var (
	ErrCollectionNotFound     = errors.New("collection not found")
	ErrCollectionNameRequired = errors.New("collection name is required")
)
