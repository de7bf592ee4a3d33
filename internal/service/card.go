package service

import (
	"context"
	"errors"
	"strings"

	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/model"
)

// CardRepository defines the interface for card storage
type CardRepository interface {
	GetAll(ctx context.Context) ([]*model.Card, error)
	GetByID(ctx context.Context, id string) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id string) error
}

// CardService handles card business logic
type CardService struct {
	repo CardRepository
}

// CardServiceConfig holds configuration for the card service
type CardServiceConfig struct {
	Repo CardRepository
}

// NewCardService creates a new card service
func NewCardService(cfg CardServiceConfig) *CardService {
	return &CardService{
		repo: cfg.Repo,
	}
}

// ListCards retrieves all cards. Reads are public and unfiltered.
func (s *CardService) ListCards(ctx context.Context) ([]*model.Card, error) {
	return s.repo.GetAll(ctx)
}

// GetCard retrieves a card by ID
func (s *CardService) GetCard(ctx context.Context, id string) (*model.Card, error) {
	card, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// CreateCard validates and persists a new card owned by actor
func (s *CardService) CreateCard(ctx context.Context, actor string, req *model.CreateCardRequest) (*model.Card, error) {
	if err := validateCardFields(req.Name, req.Price); err != nil {
		return nil, err
	}

	owner := actor
	card := &model.Card{
		Name:      strings.TrimSpace(req.Name),
		SetName:   req.SetName,
		SetNumber: req.SetNumber,
		Type:      req.Type,
		Price:     req.Price,
		IsOwned:   req.IsOwned,
		IsWanted:  req.IsWanted,
		Owner:     &owner,
	}

	if err := s.repo.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// UpdateCard replaces the fields of an existing card after authorizing actor
// against the stored owner. The stored owner is preserved regardless of any
// owner value in the request.
func (s *CardService) UpdateCard(ctx context.Context, actor, id string, req *model.UpdateCardRequest) (*model.Card, error) {
	// An id in the payload that disagrees with the path is treated as a
	// not-found, before any load.
	if req.ID != "" && req.ID != id {
		return nil, ErrCardNotFound
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCardNotFound
	}

	// Authorize against the stored owner, never the submitted one.
	if err := AuthorizeOwner(actor, existing.Owner); err != nil {
		return nil, err
	}

	if err := validateCardFields(req.Name, req.Price); err != nil {
		return nil, err
	}

	card := &model.Card{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		SetName:   req.SetName,
		SetNumber: req.SetNumber,
		Type:      req.Type,
		Price:     req.Price,
		IsOwned:   req.IsOwned,
		IsWanted:  req.IsWanted,
		Owner:     existing.Owner,
	}

	if err := s.repo.Update(ctx, card); err != nil {
		// The record vanished between load and save.
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return card, nil
}

// DeleteCard removes a card after authorizing actor against the stored owner
func (s *CardService) DeleteCard(ctx context.Context, actor, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCardNotFound
	}

	if err := AuthorizeOwner(actor, existing.Owner); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func validateCardFields(name string, price *float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrCardNameRequired
	}
	if price != nil && (*price < model.MinCardPrice || *price > model.MaxCardPrice) {
		return ErrCardPriceOutOfRange
	}
	return nil
}
