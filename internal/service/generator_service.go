package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// GeneratorService owns generator CRUD and schema reads. Writes are gated
// to the creator or an admin; public reads see active generators only.
type GeneratorService struct {
	generators repository.GeneratorRepository
}

func NewGeneratorService(generators repository.GeneratorRepository) *GeneratorService {
	return &GeneratorService{generators: generators}
}

// CreateInput carries the fields for a new generator.
type CreateInput struct {
	Slug        string
	Name        string
	Description *string
	Style       *string
	Theme       *string
	Schema      *model.QuestionSchema
}

// Create validates the slug (and the schema, when provided) and persists the
// generator. Duplicate slugs surface as model.ErrSlugTaken.
func (s *GeneratorService) Create(ctx context.Context, actor *model.User, in CreateInput) (*model.Generator, error) {
	if actor == nil {
		return nil, model.ErrUnauthorized
	}
	if err := model.ValidateSlug(in.Slug); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}
	if in.Schema != nil {
		if err := in.Schema.Validate(); err != nil {
			return nil, err
		}
	}

	gen := &model.Generator{
		Slug:        in.Slug,
		Name:        in.Name,
		Description: in.Description,
		Style:       in.Style,
		Theme:       in.Theme,
		Config:      model.GeneratorConfig{Schema: in.Schema},
		IsActive:    true,
		CreatedByID: actor.ID,
	}
	if err := s.generators.Create(ctx, gen); err != nil {
		return nil, err
	}
	return gen, nil
}

// Update applies a partial patch. Only the creator or an admin may mutate a
// generator; everyone else gets model.ErrForbidden.
func (s *GeneratorService) Update(ctx context.Context, actor *model.User, slug string, patch model.GeneratorPatch) (*model.Generator, error) {
	gen, err := s.generators.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !actor.CanEdit(gen.CreatedByID) {
		return nil, model.ErrForbidden
	}

	if patch.Name != nil {
		gen.Name = *patch.Name
	}
	if patch.Description != nil {
		gen.Description = patch.Description
	}
	if patch.Style != nil {
		gen.Style = patch.Style
	}
	if patch.Theme != nil {
		gen.Theme = patch.Theme
	}
	if patch.IsActive != nil {
		gen.IsActive = *patch.IsActive
	}
	if patch.Schema != nil {
		if err := patch.Schema.Validate(); err != nil {
			return nil, err
		}
		gen.Config.Schema = patch.Schema
	}

	if err := s.generators.Update(ctx, gen); err != nil {
		return nil, err
	}
	return gen, nil
}

// SaveSchema replaces the generator's question schema. The schema is
// validated before persistence; resolution never validates.
func (s *GeneratorService) SaveSchema(ctx context.Context, actor *model.User, slug string, schema *model.QuestionSchema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	gen, err := s.generators.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !actor.CanEdit(gen.CreatedByID) {
		return model.ErrForbidden
	}

	// Writing the nested schema drops any legacy flat fields the row still
	// carried, completing its migration.
	gen.Config = model.GeneratorConfig{Schema: schema}
	if err := s.generators.Update(ctx, gen); err != nil {
		return err
	}
	log.Info().Str("slug", slug).Int("questions", len(schema.Questions)).Msg("Generator schema saved")
	return nil
}

// GetWithSchema returns the generator and its normalized schema. Legacy rows
// without a nested schema are normalized on read by ResolveSchema.
func (s *GeneratorService) GetWithSchema(ctx context.Context, slug string) (*model.Generator, *model.QuestionSchema, error) {
	gen, err := s.generators.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	schema, err := gen.Config.ResolveSchema()
	if err != nil {
		// A generator without any usable schema still renders; callers get
		// the generator and a nil schema.
		return gen, nil, nil
	}
	return gen, schema, nil
}

// ListActive returns the publicly visible generators.
func (s *GeneratorService) ListActive(ctx context.Context) ([]model.Generator, error) {
	return s.generators.ListActive(ctx)
}
