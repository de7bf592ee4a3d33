package model

import "time"

// Collection represents a named grouping of cards belonging to one owner.
// Membership is a pure association: a card can appear in many collections
// and deleting a collection never deletes its cards.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	Owner       *string   `json:"owner,omitempty"`
	// Cards holds the member cards. Populated on detail reads; nil on
	// list reads.
	Cards []*Card `json:"cards,omitempty"`
}

// CreateCollectionRequest represents a request to create a collection.
// CardIDs selects the member cards; ids for cards the caller does not own
// are skipped silently.
type CreateCollectionRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedDate *time.Time `json:"created_date,omitempty"`
	CardIDs     []string   `json:"card_ids,omitempty"`
}

// UpdateCollectionRequest represents a full-record collection update.
// CardIDs replaces the entire membership set.
type UpdateCollectionRequest struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedDate *time.Time `json:"created_date,omitempty"`
	CardIDs     []string   `json:"card_ids,omitempty"`
	// Owner is never trusted; the stored owner is always preserved.
	Owner *string `json:"owner,omitempty"`
}
