package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/model"
)

// CardRepository handles card data access
type CardRepository struct {
	db database.Database
}

// NewCardRepository creates a new card repository
func NewCardRepository(db database.Database) *CardRepository {
	return &CardRepository{db: db}
}

// GetAll retrieves all cards
func (r *CardRepository) GetAll(ctx context.Context) ([]*model.Card, error) {
	query := `SELECT * FROM card ORDER BY name`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parseCardsResult(result)
}

// GetByID retrieves a card by ID. Returns nil without error when the card
// does not exist.
func (r *CardRepository) GetByID(ctx context.Context, id string) (*model.Card, error) {
	// Direct record access - more efficient than WHERE id =
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCardRecord(result)
}

// Create creates a new card
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	query := `
		CREATE card CONTENT {
			name: $name,
			set_name: $set_name,
			set_number: $set_number,
			type: $type,
			price: $price,
			is_owned: $is_owned,
			is_wanted: $is_wanted,
			owner: $owner
		}
	`

	vars := map[string]interface{}{
		"name":       card.Name,
		"set_name":   card.SetName,
		"set_number": card.SetNumber,
		"type":       card.Type,
		"price":      card.Price,
		"is_owned":   card.IsOwned,
		"is_wanted":  card.IsWanted,
		"owner":      card.Owner,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	card.ID = extractRecordID(created["id"])
	return nil
}

// Update persists new field values for an existing card. The owner column is
// deliberately absent from the SET list: it is assigned once at creation and
// never written again. Returns database.ErrNotFound when the record vanished
// between load and save.
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			set_name = $set_name,
			set_number = $set_number,
			type = $type,
			price = $price,
			is_owned = $is_owned,
			is_wanted = $is_wanted
	`

	vars := map[string]interface{}{
		"id":         card.ID,
		"name":       card.Name,
		"set_name":   card.SetName,
		"set_number": card.SetNumber,
		"type":       card.Type,
		"price":      card.Price,
		"is_owned":   card.IsOwned,
		"is_wanted":  card.IsWanted,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	if _, err := firstRecord(result); err != nil {
		return err
	}
	return nil
}

// Delete removes a card
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// Parsing helpers shared with the collection repository (member cards come
// back in the same shape).

func parseCardRecord(data interface{}) (*model.Card, error) {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected card record format: %T", data)
	}

	return &model.Card{
		ID:        extractRecordID(m["id"]),
		Name:      getString(m, "name"),
		SetName:   getString(m, "set_name"),
		SetNumber: getInt(m, "set_number"),
		Type:      getString(m, "type"),
		Price:     getFloatPtr(m, "price"),
		IsOwned:   getBool(m, "is_owned"),
		IsWanted:  getBool(m, "is_wanted"),
		Owner:     getStringPtr(m, "owner"),
	}, nil
}

func parseCardsResult(result []interface{}) ([]*model.Card, error) {
	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Card{}, nil
	}

	cards := make([]*model.Card, 0, len(records))
	for _, record := range records {
		card, err := parseCardRecord(record)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// firstRecord extracts the first record of a mutation result, resolving an
// empty result set to database.ErrNotFound.
func firstRecord(result []interface{}) (map[string]interface{}, error) {
	records, ok := extractQueryResults(result)
	if !ok || len(records) == 0 {
		return nil, database.ErrNotFound
	}
	m, ok := records[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected record format: %T", records[0])
	}
	return m, nil
}
