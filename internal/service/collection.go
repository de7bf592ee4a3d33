package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/model"
)

// CollectionRepository defines the interface for collection storage
type CollectionRepository interface {
	GetAll(ctx context.Context) ([]*model.Collection, error)
	GetByID(ctx context.Context, id string) (*model.Collection, error)
	Create(ctx context.Context, collection *model.Collection) error
	Update(ctx context.Context, collection *model.Collection) error
	Delete(ctx context.Context, id string) error
	ClearMembers(ctx context.Context, collectionID string) error
	AddMembers(ctx context.Context, collectionID string, cardIDs []string) error
}

// CollectionService handles collection business logic, including the
// card-membership relation.
type CollectionService struct {
	repo     CollectionRepository
	cardRepo CardRepository
}

// CollectionServiceConfig holds configuration for the collection service
type CollectionServiceConfig struct {
	Repo     CollectionRepository
	CardRepo CardRepository
}

// NewCollectionService creates a new collection service
func NewCollectionService(cfg CollectionServiceConfig) *CollectionService {
	return &CollectionService{
		repo:     cfg.Repo,
		cardRepo: cfg.CardRepo,
	}
}

// ListCollections retrieves all collections. Reads are public and unfiltered.
func (s *CollectionService) ListCollections(ctx context.Context) ([]*model.Collection, error) {
	return s.repo.GetAll(ctx)
}

// GetCollection retrieves a collection with its member cards included
func (s *CollectionService) GetCollection(ctx context.Context, id string) (*model.Collection, error) {
	collection, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	return collection, nil
}

// CreateCollection persists a new collection owned by actor, then adds the
// selected cards as members. Selected ids that do not exist or are not owned
// by actor are skipped silently.
func (s *CollectionService) CreateCollection(ctx context.Context, actor string, req *model.CreateCollectionRequest) (*model.Collection, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrCollectionNameRequired
	}

	createdDate := time.Now()
	if req.CreatedDate != nil && !req.CreatedDate.IsZero() {
		createdDate = *req.CreatedDate
	}

	owner := actor
	collection := &model.Collection{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedDate: createdDate,
		Owner:       &owner,
	}

	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, err
	}

	members, err := s.ownedCards(ctx, actor, req.CardIDs)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddMembers(ctx, collection.ID, cardIDs(members)); err != nil {
		return nil, err
	}
	collection.Cards = members

	return collection, nil
}

// UpdateCollection replaces the fields of an existing collection and its
// entire membership set after authorizing actor against the stored owner.
// Membership replacement is wholesale: clear everything, re-add the filtered
// selection.
func (s *CollectionService) UpdateCollection(ctx context.Context, actor, id string, req *model.UpdateCollectionRequest) (*model.Collection, error) {
	if req.ID != "" && req.ID != id {
		return nil, ErrCollectionNotFound
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCollectionNotFound
	}

	if err := AuthorizeOwner(actor, existing.Owner); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrCollectionNameRequired
	}

	createdDate := existing.CreatedDate
	if req.CreatedDate != nil && !req.CreatedDate.IsZero() {
		createdDate = *req.CreatedDate
	}

	collection := &model.Collection{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedDate: createdDate,
		Owner:       existing.Owner,
	}

	if err := s.repo.Update(ctx, collection); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	members, err := s.ownedCards(ctx, actor, req.CardIDs)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ClearMembers(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.AddMembers(ctx, id, cardIDs(members)); err != nil {
		return nil, err
	}
	collection.Cards = members

	return collection, nil
}

// DeleteCollection severs all card associations, then removes the collection
// record. The member cards themselves are never deleted.
func (s *CollectionService) DeleteCollection(ctx context.Context, actor, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCollectionNotFound
	}

	if err := AuthorizeOwner(actor, existing.Owner); err != nil {
		return err
	}

	if err := s.repo.ClearMembers(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ownedCards loads the selected cards and keeps only those that exist and
// are owned by actor. Failing ids are skipped without surfacing an error.
func (s *CollectionService) ownedCards(ctx context.Context, actor string, ids []string) ([]*model.Card, error) {
	members := make([]*model.Card, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		card, err := s.cardRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}
		if AuthorizeOwner(actor, card.Owner) != nil {
			continue
		}
		members = append(members, card)
	}
	return members, nil
}

func cardIDs(cards []*model.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	return ids
}
