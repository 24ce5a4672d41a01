package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

var _ GeneratorRepository = (*PgGeneratorRepository)(nil)

const generatorFields = `id, slug, name, description, style, config, theme, is_active, created_by_id, created_at`

type PgGeneratorRepository struct {
	db *pgxpool.Pool
}

func NewPgGeneratorRepository(db *pgxpool.Pool) *PgGeneratorRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgGeneratorRepository")
	}
	return &PgGeneratorRepository{db: db}
}

func (r *PgGeneratorRepository) Create(ctx context.Context, gen *model.Generator) error {
	cfg, err := json.Marshal(gen.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal generator config: %w", err)
	}

	query := `INSERT INTO generators (slug, name, description, style, config, theme, is_active, created_by_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at`
	err = r.db.QueryRow(ctx, query,
		gen.Slug, gen.Name, gen.Description, gen.Style, cfg, gen.Theme, gen.IsActive, gen.CreatedByID,
	).Scan(&gen.ID, &gen.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrSlugTaken
		}
		log.Error().Err(err).Str("slug", gen.Slug).Msg("Failed to create generator")
		return fmt.Errorf("failed to create generator: %w", err)
	}
	log.Info().Str("slug", gen.Slug).Str("id", gen.ID.String()).Msg("Generator created")
	return nil
}

func (r *PgGeneratorRepository) GetBySlug(ctx context.Context, slug string) (*model.Generator, error) {
	query := fmt.Sprintf(`SELECT %s FROM generators WHERE slug = $1`, generatorFields)
	gen, err := scanGenerator(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGeneratorNotFound
		}
		log.Error().Err(err).Str("slug", slug).Msg("Failed to get generator by slug")
		return nil, fmt.Errorf("failed to get generator by slug: %w", err)
	}
	return gen, nil
}

func (r *PgGeneratorRepository) ListActive(ctx context.Context) ([]model.Generator, error) {
	query := fmt.Sprintf(`SELECT %s FROM generators WHERE is_active ORDER BY created_at DESC`, generatorFields)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list active generators")
		return nil, fmt.Errorf("failed to list active generators: %w", err)
	}
	defer rows.Close()

	var generators []model.Generator
	for rows.Next() {
		gen, err := scanGenerator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generator row: %w", err)
		}
		generators = append(generators, *gen)
	}
	return generators, rows.Err()
}

func (r *PgGeneratorRepository) Update(ctx context.Context, gen *model.Generator) error {
	cfg, err := json.Marshal(gen.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal generator config: %w", err)
	}

	// Slug is immutable once referenced by sessions, so it is the key, never
	// an updated column.
	query := `UPDATE generators
	          SET name = $1, description = $2, style = $3, config = $4, theme = $5, is_active = $6
	          WHERE slug = $7`
	tag, err := r.db.Exec(ctx, query,
		gen.Name, gen.Description, gen.Style, cfg, gen.Theme, gen.IsActive, gen.Slug,
	)
	if err != nil {
		log.Error().Err(err).Str("slug", gen.Slug).Msg("Failed to update generator")
		return fmt.Errorf("failed to update generator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGeneratorNotFound
	}
	log.Info().Str("slug", gen.Slug).Msg("Generator updated")
	return nil
}

// scanGenerator reads one generator row, decoding the JSONB config column.
func scanGenerator(row pgx.Row) (*model.Generator, error) {
	var gen model.Generator
	var cfg []byte
	err := row.Scan(
		&gen.ID, &gen.Slug, &gen.Name, &gen.Description, &gen.Style,
		&cfg, &gen.Theme, &gen.IsActive, &gen.CreatedByID, &gen.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &gen.Config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generator config: %w", err)
		}
	}
	return &gen, nil
}
