package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

var _ ImageRepository = (*PgImageRepository)(nil)

const imageFields = `id, url, kind, base_image_id, prompt, provider, mime_type, session_id, created_by_id, created_at`

type PgImageRepository struct {
	db *pgxpool.Pool
}

func NewPgImageRepository(db *pgxpool.Pool) *PgImageRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgImageRepository")
	}
	return &PgImageRepository{db: db}
}

// Create inserts the image row. The id is assigned by the caller before the
// blob upload, so the blob key and the row id always agree.
func (r *PgImageRepository) Create(ctx context.Context, img *model.Image) error {
	query := `INSERT INTO images (id, url, kind, base_image_id, prompt, provider, mime_type, session_id, created_by_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		img.ID, img.URL, img.Kind, img.BaseImageID, img.Prompt, img.Provider, img.MimeType, img.SessionID, img.CreatedByID,
	).Scan(&img.CreatedAt)
	if err != nil {
		log.Error().Err(err).Str("kind", string(img.Kind)).Msg("Failed to create image record")
		return fmt.Errorf("failed to create image record: %w", err)
	}
	return nil
}

func (r *PgImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM images WHERE id = $1`, imageFields)
	var img model.Image
	err := pgxscan.Get(ctx, r.db, &img, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrImageNotFound
		}
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to get image")
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return &img, nil
}

func (r *PgImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete image record")
		return fmt.Errorf("failed to delete image record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrImageNotFound
	}
	return nil
}

func (r *PgImageRepository) CountGeneratedForBase(ctx context.Context, baseID, excludeID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM images WHERE kind = $1 AND base_image_id = $2 AND id <> $3`
	var count int
	err := r.db.QueryRow(ctx, query, model.ImageKindGenerated, baseID, excludeID).Scan(&count)
	if err != nil {
		log.Error().Err(err).Str("base_image_id", baseID.String()).Msg("Failed to count generated images for base")
		return 0, fmt.Errorf("failed to count generated images for base: %w", err)
	}
	return count, nil
}

// ListPairs returns GENERATED images joined with the URL of their base and
// the name of their session, newest first. filter is a case-insensitive
// substring match over the prompt and the session name.
func (r *PgImageRepository) ListPairs(ctx context.Context, filter string, limit, offset int) ([]model.ImagePair, error) {
	query := `SELECT g.id, g.url, g.kind, g.base_image_id, g.prompt, g.provider, g.mime_type,
	                 g.session_id, g.created_by_id, g.created_at,
	                 b.url AS base_url, s.name AS session_name
	          FROM images g
	          LEFT JOIN images b ON b.id = g.base_image_id
	          LEFT JOIN generation_sessions s ON s.id = g.session_id
	          WHERE g.kind = $1
	            AND ($2 = '' OR g.prompt ILIKE '%' || $2 || '%' OR s.name ILIKE '%' || $2 || '%')
	          ORDER BY g.created_at DESC
	          LIMIT $3 OFFSET $4`
	var pairs []model.ImagePair
	if err := pgxscan.Select(ctx, r.db, &pairs, query, model.ImageKindGenerated, filter, limit, offset); err != nil {
		log.Error().Err(err).Str("filter", filter).Msg("Failed to list image pairs")
		return nil, fmt.Errorf("failed to list image pairs: %w", err)
	}
	return pairs, nil
}
