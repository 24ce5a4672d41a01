package service

import (
	"context"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

const maxTraitResults = 50

// CatalogService serves the selectable-option catalog behind the trait
// search endpoint.
type CatalogService struct {
	traits repository.TraitRepository
}

func NewCatalogService(traits repository.TraitRepository) *CatalogService {
	return &CatalogService{traits: traits}
}

// Search runs a case-insensitive substring search, optionally scoped to a
// category.
func (c *CatalogService) Search(ctx context.Context, query, category string) ([]model.Trait, error) {
	return c.traits.Search(ctx, query, category, maxTraitResults)
}
