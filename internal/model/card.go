package model

// Card represents a single Pokemon card record
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SetName   string   `json:"set_name,omitempty"`
	SetNumber int      `json:"set_number,omitempty"`
	Type      string   `json:"type,omitempty"` // fire, water, fighting, etc
	Price     *float64 `json:"price,omitempty"`
	IsOwned   bool     `json:"is_owned"`
	IsWanted  bool     `json:"is_wanted"`
	// Owner is the email of the user who created the card. It is assigned
	// once at creation time and never changes afterwards. Nil only on a
	// record that has not been persisted yet.
	Owner *string `json:"owner,omitempty"`
}

// Card validation constants
const (
	MinCardPrice = 0.0
	MaxCardPrice = 10000.0
)

// CreateCardRequest represents a request to create a card
type CreateCardRequest struct {
	Name      string   `json:"name"`
	SetName   string   `json:"set_name,omitempty"`
	SetNumber int      `json:"set_number,omitempty"`
	Type      string   `json:"type,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsOwned   bool     `json:"is_owned"`
	IsWanted  bool     `json:"is_wanted"`
}

// UpdateCardRequest represents a full-record card update. The client submits
// the whole record, id included; the id must match the one in the URL path.
type UpdateCardRequest struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	SetName   string   `json:"set_name,omitempty"`
	SetNumber int      `json:"set_number,omitempty"`
	Type      string   `json:"type,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsOwned   bool     `json:"is_owned"`
	IsWanted  bool     `json:"is_wanted"`
	// Owner is accepted for symmetry with Card but never trusted: the
	// stored owner is always preserved on update.
	Owner *string `json:"owner,omitempty"`
}
