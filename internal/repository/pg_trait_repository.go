package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

var _ TraitRepository = (*PgTraitRepository)(nil)

type PgTraitRepository struct {
	db *pgxpool.Pool
}

func NewPgTraitRepository(db *pgxpool.Pool) *PgTraitRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgTraitRepository")
	}
	return &PgTraitRepository{db: db}
}

func (r *PgTraitRepository) Search(ctx context.Context, query, category string, limit int) ([]model.Trait, error) {
	sql := `SELECT id, category, label, value FROM traits
	        WHERE ($1 = '' OR label ILIKE '%' || $1 || '%' OR value ILIKE '%' || $1 || '%')
	          AND ($2 = '' OR category = $2)
	        ORDER BY category, label
	        LIMIT $3`
	var traits []model.Trait
	if err := pgxscan.Select(ctx, r.db, &traits, sql, query, category, limit); err != nil {
		log.Error().Err(err).Str("query", query).Str("category", category).Msg("Failed to search traits")
		return nil, fmt.Errorf("failed to search traits: %w", err)
	}
	return traits, nil
}
