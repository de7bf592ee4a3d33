package handler

import (
	"net/http"

	"github.com/forgo/cardvault/api/internal/middleware"
	"github.com/forgo/cardvault/api/internal/model"
	"github.com/forgo/cardvault/api/internal/service"
)

// CollectionHandler handles collection endpoints
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

// List handles GET /v1/collections - list all collections (public)
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionService.ListCollections(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError("failed to list collections"))
		return
	}

	WriteCollection(w, http.StatusOK, collections, map[string]string{
		"self": "/v1/collections",
	})
}

// Get handles GET /v1/collections/{collectionId} - detail incl. member cards (public)
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	collectionID := r.PathValue("collectionId")
	if collectionID == "" {
		WriteError(w, model.NewBadRequestError("collection ID required"))
		return
	}

	collection, err := h.collectionService.GetCollection(r.Context(), collectionID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, collection, map[string]string{
		"self": "/v1/collections/" + collectionID,
	})
}

// Create handles POST /v1/collections - create + select member cards
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateCollectionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	collection, err := h.collectionService.CreateCollection(r.Context(), actor, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, collection, map[string]string{
		"self": "/v1/collections/" + collection.ID,
	})
}

// Update handles PUT /v1/collections/{collectionId} - full update, replaces membership
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	collectionID := r.PathValue("collectionId")
	if collectionID == "" {
		WriteError(w, model.NewBadRequestError("collection ID required"))
		return
	}

	var req model.UpdateCollectionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	collection, err := h.collectionService.UpdateCollection(r.Context(), actor, collectionID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, collection, map[string]string{
		"self": "/v1/collections/" + collectionID,
	})
}

// Delete handles DELETE /v1/collections/{collectionId} - severs member links
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	collectionID := r.PathValue("collectionId")
	if collectionID == "" {
		WriteError(w, model.NewBadRequestError("collection ID required"))
		return
	}

	if err := h.collectionService.DeleteCollection(r.Context(), actor, collectionID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
