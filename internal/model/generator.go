package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// slugPattern restricts slugs to lowercase alphanumerics and dashes,
// 2 to 64 characters. Slugs are referenced by sessions and are immutable
// once created.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]{2,64}$`)

// ValidateSlug reports whether slug is usable as a generator slug.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q must match [a-z0-9-]{2,64}", ErrInvalidSlug, slug)
	}
	return nil
}

// Generator is a themed question set driving a prompt template. Public reads
// see active generators only; writes are gated to the creator or an admin.
type Generator struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Slug        string          `json:"slug" db:"slug"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	Style       *string         `json:"style,omitempty" db:"style"`
	Config      GeneratorConfig `json:"config" db:"config"`
	Theme       *string         `json:"theme,omitempty" db:"theme"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	CreatedByID uuid.UUID       `json:"createdById" db:"created_by_id"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// GeneratorConfig is stored as a single JSONB column. Newer records carry the
// nested Schema; records written before the schema migration carry the flat
// Questions/PromptTemplate pair instead.
type GeneratorConfig struct {
	Schema *QuestionSchema `json:"schema,omitempty"`

	// Legacy flat layout, kept readable for pre-migration rows.
	Questions      []Question `json:"questions,omitempty"`
	PromptTemplate string     `json:"promptTemplate,omitempty"`
}

// ResolveSchema normalizes the stored config into a QuestionSchema, reading
// the legacy flat layout when no nested schema exists. All schema reads go
// through here so the two on-disk formats stay confined to this function.
func (c GeneratorConfig) ResolveSchema() (*QuestionSchema, error) {
	if c.Schema != nil {
		return c.Schema, nil
	}
	if len(c.Questions) > 0 && c.PromptTemplate != "" {
		return &QuestionSchema{
			Questions:      c.Questions,
			PromptTemplate: c.PromptTemplate,
		}, nil
	}
	return nil, ErrSchemaInvalid
}

// GeneratorPatch carries the mutable generator fields for partial updates.
// Nil pointers leave the stored value untouched.
type GeneratorPatch struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Style       *string         `json:"style,omitempty"`
	Theme       *string         `json:"theme,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
	Schema      *QuestionSchema `json:"schema,omitempty"`
}
