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

var _ SessionRepository = (*PgSessionRepository)(nil)

const sessionFields = `id, name, description, generator, generator_id, created_by_id, created_at`

type PgSessionRepository struct {
	db *pgxpool.Pool
}

func NewPgSessionRepository(db *pgxpool.Pool) *PgSessionRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgSessionRepository")
	}
	return &PgSessionRepository{db: db}
}

func (r *PgSessionRepository) Create(ctx context.Context, session *model.GenerationSession) error {
	query := `INSERT INTO generation_sessions (name, description, generator, generator_id, created_by_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		session.Name, session.Description, session.Generator, session.GeneratorID, session.CreatedByID,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		log.Error().Err(err).Str("name", session.Name).Msg("Failed to create generation session")
		return fmt.Errorf("failed to create generation session: %w", err)
	}
	return nil
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM generation_sessions WHERE id = $1`, sessionFields)
	var session model.GenerationSession
	err := pgxscan.Get(ctx, r.db, &session, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to get generation session")
		return nil, fmt.Errorf("failed to get generation session: %w", err)
	}
	return &session, nil
}

func (r *PgSessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.GenerationSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM generation_sessions WHERE created_by_id = $1 ORDER BY created_at DESC`, sessionFields)
	var sessions []model.GenerationSession
	if err := pgxscan.Select(ctx, r.db, &sessions, query, ownerID); err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to list generation sessions")
		return nil, fmt.Errorf("failed to list generation sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes the session row. Images referencing it are unlinked by the
// ON DELETE SET NULL constraint, never deleted.
func (r *PgSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM generation_sessions WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete generation session")
		return fmt.Errorf("failed to delete generation session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}
	log.Info().Str("id", id.String()).Msg("Generation session deleted, images unlinked")
	return nil
}
