package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/model"
)

// Mock implementations

type mockCardRepo struct {
	cards     map[string]*model.Card
	nextID    int
	getCalls  int
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	updated   *model.Card
	deleted   []string
}

func newMockCardRepo() *mockCardRepo {
	return &mockCardRepo{
		cards:  make(map[string]*model.Card),
		nextID: 1,
	}
}

func (m *mockCardRepo) GetAll(ctx context.Context) ([]*model.Card, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make([]*model.Card, 0, len(m.cards))
	for _, card := range m.cards {
		result = append(result, card)
	}
	return result, nil
}

func (m *mockCardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cards[id], nil
}

func (m *mockCardRepo) Create(ctx context.Context, card *model.Card) error {
	if m.createErr != nil {
		return m.createErr
	}
	card.ID = "card:" + string(rune('0'+m.nextID))
	m.nextID++
	m.cards[card.ID] = card
	return nil
}

func (m *mockCardRepo) Update(ctx context.Context, card *model.Card) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.cards[card.ID]; !ok {
		return database.ErrNotFound
	}
	m.updated = card
	m.cards[card.ID] = card
	return nil
}

func (m *mockCardRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.cards, id)
	return nil
}

func (m *mockCardRepo) seed(id, name, owner string) *model.Card {
	card := &model.Card{
		ID:    id,
		Name:  name,
		Owner: strPtr(owner),
	}
	m.cards[id] = card
	return card
}

func newTestCardService() (*CardService, *mockCardRepo) {
	repo := newMockCardRepo()
	svc := NewCardService(CardServiceConfig{Repo: repo})
	return svc, repo
}

func floatPtr(f float64) *float64 {
	return &f
}

// CreateCard tests

func TestCardService_CreateCard_Success(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()

	price := floatPtr(42.50)
	card, err := svc.CreateCard(ctx, "ash@example.com", &model.CreateCardRequest{
		Name:      "Pikachu",
		SetName:   "Base Set",
		SetNumber: 58,
		Type:      "Electric",
		Price:     price,
		IsOwned:   true,
	})

	if err != nil {
		t.Fatalf("CreateCard failed: %v", err)
	}
	if card.ID == "" {
		t.Error("expected card ID to be assigned")
	}
	if card.Owner == nil || *card.Owner != "ash@example.com" {
		t.Errorf("expected owner ash@example.com, got %v", card.Owner)
	}
	if card.Name != "Pikachu" {
		t.Errorf("expected name Pikachu, got %s", card.Name)
	}
	if _, ok := repo.cards[card.ID]; !ok {
		t.Error("card was not stored in repository")
	}
}

func TestCardService_CreateCard_MissingName(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	tests := []struct {
		name     string
		cardName string
	}{
		{"empty name", ""},
		{"whitespace name", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCard(ctx, "ash@example.com", &model.CreateCardRequest{
				Name: tt.cardName,
			})
			if !errors.Is(err, ErrCardNameRequired) {
				t.Errorf("expected ErrCardNameRequired, got %v", err)
			}
		})
	}
}

func TestCardService_CreateCard_PriceOutOfRange(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	tests := []struct {
		name  string
		price float64
	}{
		{"negative", -1},
		{"above maximum", 15000},
		{"just above maximum", 10000.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCard(ctx, "ash@example.com", &model.CreateCardRequest{
				Name:  "Charizard",
				Price: floatPtr(tt.price),
			})
			if !errors.Is(err, ErrCardPriceOutOfRange) {
				t.Errorf("expected ErrCardPriceOutOfRange, got %v", err)
			}
		})
	}
}

func TestCardService_CreateCard_PriceBoundariesAllowed(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	for _, price := range []float64{0, 10000} {
		_, err := svc.CreateCard(ctx, "ash@example.com", &model.CreateCardRequest{
			Name:  "Charizard",
			Price: floatPtr(price),
		})
		if err != nil {
			t.Errorf("expected price %v to be allowed, got %v", price, err)
		}
	}
}

func TestCardService_CreateCard_NilPriceAllowed(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	_, err := svc.CreateCard(ctx, "ash@example.com", &model.CreateCardRequest{
		Name: "Eevee",
	})
	if err != nil {
		t.Errorf("expected nil price to be allowed, got %v", err)
	}
}

// GetCard tests

func TestCardService_GetCard_Success(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Bulbasaur", "ash@example.com")

	card, err := svc.GetCard(ctx, "card:1")
	if err != nil {
		t.Fatalf("GetCard failed: %v", err)
	}
	if card.Name != "Bulbasaur" {
		t.Errorf("expected Bulbasaur, got %s", card.Name)
	}
}

func TestCardService_GetCard_NotFound(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	_, err := svc.GetCard(ctx, "card:missing")
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

// UpdateCard tests

func TestCardService_UpdateCard_Success(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	card, err := svc.UpdateCard(ctx, "ash@example.com", "card:1", &model.UpdateCardRequest{
		Name:  "Wartortle",
		Price: floatPtr(12),
	})

	if err != nil {
		t.Fatalf("UpdateCard failed: %v", err)
	}
	if card.Name != "Wartortle" {
		t.Errorf("expected Wartortle, got %s", card.Name)
	}
	if repo.updated == nil {
		t.Fatal("expected repository Update to be called")
	}
}

func TestCardService_UpdateCard_PayloadIDMismatch_NotFoundBeforeLoad(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	_, err := svc.UpdateCard(ctx, "ash@example.com", "card:1", &model.UpdateCardRequest{
		ID:   "card:2",
		Name: "Wartortle",
	})

	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound on id mismatch, got %v", err)
	}
	if repo.getCalls != 0 {
		t.Error("mismatched payload id should be rejected before loading the record")
	}
}

func TestCardService_UpdateCard_NotOwner_Forbidden(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	_, err := svc.UpdateCard(ctx, "misty@example.com", "card:1", &model.UpdateCardRequest{
		Name: "Wartortle",
	})

	if !errors.Is(err, ErrNotRecordOwner) {
		t.Errorf("expected ErrNotRecordOwner, got %v", err)
	}
	if repo.updated != nil {
		t.Error("repository Update should not be called for non-owner")
	}
}

func TestCardService_UpdateCard_OwnerPreserved(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	// A submitted owner is ignored: the stored owner wins.
	card, err := svc.UpdateCard(ctx, "ash@example.com", "card:1", &model.UpdateCardRequest{
		Name:  "Wartortle",
		Owner: strPtr("misty@example.com"),
	})

	if err != nil {
		t.Fatalf("UpdateCard failed: %v", err)
	}
	if card.Owner == nil || *card.Owner != "ash@example.com" {
		t.Errorf("expected stored owner to be preserved, got %v", card.Owner)
	}
}

func TestCardService_UpdateCard_NotFound(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	_, err := svc.UpdateCard(ctx, "ash@example.com", "card:missing", &model.UpdateCardRequest{
		Name: "Wartortle",
	})
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestCardService_UpdateCard_VanishedBetweenLoadAndSave(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")
	repo.updateErr = database.ErrNotFound

	_, err := svc.UpdateCard(ctx, "ash@example.com", "card:1", &model.UpdateCardRequest{
		Name: "Wartortle",
	})
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound when record vanished, got %v", err)
	}
}

func TestCardService_UpdateCard_RepoErrorPassedThrough(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")
	repo.updateErr = database.ErrQuery

	_, err := svc.UpdateCard(ctx, "ash@example.com", "card:1", &model.UpdateCardRequest{
		Name: "Wartortle",
	})
	if !errors.Is(err, database.ErrQuery) {
		t.Errorf("expected query error to pass through, got %v", err)
	}
}

// DeleteCard tests

func TestCardService_DeleteCard_Success(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	if err := svc.DeleteCard(ctx, "ash@example.com", "card:1"); err != nil {
		t.Fatalf("DeleteCard failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "card:1" {
		t.Errorf("expected card:1 to be deleted, got %v", repo.deleted)
	}
}

func TestCardService_DeleteCard_NotOwner_Forbidden(t *testing.T) {
	svc, repo := newTestCardService()
	ctx := context.Background()
	repo.seed("card:1", "Squirtle", "ash@example.com")

	err := svc.DeleteCard(ctx, "misty@example.com", "card:1")
	if !errors.Is(err, ErrNotRecordOwner) {
		t.Errorf("expected ErrNotRecordOwner, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("repository Delete should not be called for non-owner")
	}
}

func TestCardService_DeleteCard_NotFound(t *testing.T) {
	svc, _ := newTestCardService()
	ctx := context.Background()

	err := svc.DeleteCard(ctx, "ash@example.com", "card:missing")
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}
