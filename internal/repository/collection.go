package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// CollectionRepository handles collection data access. Membership between a
// collection and its cards is stored as a contains_card graph edge.
type CollectionRepository struct {
	db database.Database
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db database.Database) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// GetAll retrieves all collections without their member cards
func (r *CollectionRepository) GetAll(ctx context.Context) ([]*model.Collection, error) {
	query := `SELECT * FROM collection ORDER BY created_date DESC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Collection{}, nil
	}

	collections := make([]*model.Collection, 0, len(records))
	for _, record := range records {
		collection, err := parseCollectionRecord(record)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, nil
}

// GetByID retrieves a collection with its member cards eagerly included.
// Returns nil without error when the collection does not exist.
func (r *CollectionRepository) GetByID(ctx context.Context, id string) (*model.Collection, error) {
	query := `SELECT *, ->contains_card->card.* AS cards FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCollectionRecord(result)
}

// Create creates a new collection
func (r *CollectionRepository) Create(ctx context.Context, collection *model.Collection) error {
	query := `
		CREATE collection CONTENT {
			name: $name,
			description: $description,
			created_date: $created_date,
			owner: $owner
		}
	`

	vars := map[string]interface{}{
		"name":         collection.Name,
		"description":  collection.Description,
		"created_date": models.CustomDateTime{Time: collection.CreatedDate},
		"owner":        collection.Owner,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	collection.ID = extractRecordID(created["id"])
	return nil
}

// Update persists new field values for an existing collection, leaving the
// owner column untouched. Returns database.ErrNotFound when the record
// vanished between load and save.
func (r *CollectionRepository) Update(ctx context.Context, collection *model.Collection) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			description = $description,
			created_date = $created_date
	`

	vars := map[string]interface{}{
		"id":           collection.ID,
		"name":         collection.Name,
		"description":  collection.Description,
		"created_date": models.CustomDateTime{Time: collection.CreatedDate},
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

// Delete removes a collection record. Callers clear membership first.
func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ClearMembers severs all card associations of a collection without touching
// the cards themselves.
func (r *CollectionRepository) ClearMembers(ctx context.Context, collectionID string) error {
	query := `DELETE contains_card WHERE in = type::record($collection)`
	vars := map[string]interface{}{"collection": collectionID}

	return r.db.Execute(ctx, query, vars)
}

// AddMembers relates the given cards to a collection as a single atomic
// batch. Card ids are assumed to be pre-filtered by the caller.
func (r *CollectionRepository) AddMembers(ctx context.Context, collectionID string, cardIDs []string) error {
	if len(cardIDs) == 0 {
		return nil
	}

	// Record-typed endpoints so the edge's `in` matches the
	// type::record comparison in ClearMembers.
	batch := database.NewAtomicBatch()
	for _, cardID := range cardIDs {
		batch.Add(`RELATE (SELECT * FROM type::record($collection))->contains_card->(SELECT * FROM type::record($card))`, map[string]interface{}{
			"collection": collectionID,
			"card":       cardID,
		})
	}
	return batch.Execute(ctx, r.db)
}

func parseCollectionRecord(data interface{}) (*model.Collection, error) {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected collection record format: %T", data)
	}

	collection := &model.Collection{
		ID:          extractRecordID(m["id"]),
		Name:        getString(m, "name"),
		Description: getString(m, "description"),
		CreatedDate: getTime(m, "created_date"),
		Owner:       getStringPtr(m, "owner"),
	}

	if members, ok := m["cards"].([]interface{}); ok {
		cards := make([]*model.Card, 0, len(members))
		for _, member := range members {
			card, err := parseCardRecord(member)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
		collection.Cards = cards
	}

	return collection, nil
}
