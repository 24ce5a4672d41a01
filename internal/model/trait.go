package model

import "github.com/google/uuid"

// Trait is a selectable catalog option (skin color, dinosaur species, ...)
// surfaced by the trait search endpoint.
type Trait struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Category string    `json:"category" db:"category"`
	Label    string    `json:"label" db:"label"`
	Value    string    `json:"value" db:"value"`
}
