package model

import (
	"time"

	"github.com/google/uuid"
)

// GenerationSession groups many generated images under a name, e.g. one
// event at a photo booth. Sessions are owned exclusively by their creator;
// deleting a session unlinks its images, it never deletes them.
type GenerationSession struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Generator   string     `json:"generator" db:"generator"`
	GeneratorID *uuid.UUID `json:"generatorId,omitempty" db:"generator_id"`
	CreatedByID uuid.UUID  `json:"createdById" db:"created_by_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
