package handler

import (
	"net/http"

	"github.com/forgo/cardvault/api/internal/middleware"
	"github.com/forgo/cardvault/api/internal/model"
	"github.com/forgo/cardvault/api/internal/service"
)

// CardHandler handles card endpoints
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// List handles GET /v1/cards - list all cards (public)
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError("failed to list cards"))
		return
	}

	WriteCollection(w, http.StatusOK, cards, map[string]string{
		"self": "/v1/cards",
	})
}

// Get handles GET /v1/cards/{cardId} - card detail (public)
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("cardId")
	if cardID == "" {
		WriteError(w, model.NewBadRequestError("card ID required"))
		return
	}

	card, err := h.cardService.GetCard(r.Context(), cardID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, card, map[string]string{
		"self": "/v1/cards/" + cardID,
	})
}

// Create handles POST /v1/cards - create a card owned by the caller
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), actor, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, card, map[string]string{
		"self": "/v1/cards/" + card.ID,
	})
}

// Update handles PUT /v1/cards/{cardId} - full-record update, owner-only
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	cardID := r.PathValue("cardId")
	if cardID == "" {
		WriteError(w, model.NewBadRequestError("card ID required"))
		return
	}

	var req model.UpdateCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	card, err := h.cardService.UpdateCard(r.Context(), actor, cardID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, card, map[string]string{
		"self": "/v1/cards/" + cardID,
	})
}

// Delete handles DELETE /v1/cards/{cardId} - owner-only
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserEmail(r.Context())
	if actor == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	cardID := r.PathValue("cardId")
	if cardID == "" {
		WriteError(w, model.NewBadRequestError("card ID required"))
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), actor, cardID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
