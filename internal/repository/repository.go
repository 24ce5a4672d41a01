// Package repository contains the PostgreSQL persistence layer. Every
// repository is defined as an interface here so services can be tested
// against mocks.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

// GeneratorRepository persists generator definitions.
type GeneratorRepository interface {
	Create(ctx context.Context, gen *model.Generator) error
	GetBySlug(ctx context.Context, slug string) (*model.Generator, error)
	ListActive(ctx context.Context) ([]model.Generator, error)
	Update(ctx context.Context, gen *model.Generator) error
}

// SessionCodeRepository persists the per-code generation ledger.
type SessionCodeRepository interface {
	Create(ctx context.Context, code *model.SessionCode) error
	GetByCode(ctx context.Context, code string) (*model.SessionCode, error)
	List(ctx context.Context) ([]model.SessionCode, error)
	Update(ctx context.Context, code *model.SessionCode) error
	// ConsumeGeneration increments used_generations by one, but only while
	// the quota is not exhausted, as a single conditional update. It returns
	// the post-increment row, or model.ErrCodeQuotaExceeded when no row
	// qualified. This is the only write path for quota accounting.
	ConsumeGeneration(ctx context.Context, code string) (*model.SessionCode, error)
}

// ImageRepository persists image metadata. Blobs live in object storage.
type ImageRepository interface {
	Create(ctx context.Context, img *model.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CountGeneratedForBase counts GENERATED images referencing baseID,
	// excluding excludeID (the row being deleted).
	CountGeneratedForBase(ctx context.Context, baseID, excludeID uuid.UUID) (int, error)
	ListPairs(ctx context.Context, filter string, limit, offset int) ([]model.ImagePair, error)
}

// SessionRepository persists generation sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.GenerationSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationSession, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.GenerationSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TraitRepository reads the selectable-option catalog.
type TraitRepository interface {
	Search(ctx context.Context, query, category string, limit int) ([]model.Trait, error)
}
