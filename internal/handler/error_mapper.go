package handler

import (
	"errors"

	"github.com/forgo/cardvault/api/internal/model"
	"github.com/forgo/cardvault/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotRecordOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrCardNotFound):
		return model.NewNotFoundError("card")
	case errors.Is(err, service.ErrCollectionNotFound):
		return model.NewNotFoundError("collection")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrCardNameRequired),
		errors.Is(err, service.ErrCollectionNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrCardPriceOutOfRange):
		return model.NewValidationError([]model.FieldError{{Field: "price", Message: err.Error()}})

	// ===== Default → 500 =====
	// Includes concurrent-modification conflicts where the record still
	// exists: unrecoverable for this request, no retry.
	default:
		return model.NewInternalError("")
	}
}
