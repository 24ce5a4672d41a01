package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

var _ SessionCodeRepository = (*PgSessionCodeRepository)(nil)

const sessionCodeFields = `id, code, name, is_active, max_generations, used_generations, expires_at, created_by_id, created_at`

type PgSessionCodeRepository struct {
	db *pgxpool.Pool
}

func NewPgSessionCodeRepository(db *pgxpool.Pool) *PgSessionCodeRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgSessionCodeRepository")
	}
	return &PgSessionCodeRepository{db: db}
}

func (r *PgSessionCodeRepository) Create(ctx context.Context, code *model.SessionCode) error {
	query := `INSERT INTO session_codes (code, name, is_active, max_generations, used_generations, expires_at, created_by_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		code.Code, code.Name, code.IsActive, code.MaxGenerations, code.UsedGenerations, code.ExpiresAt, code.CreatedByID,
	).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrCodeTaken
		}
		log.Error().Err(err).Str("code", code.Code).Msg("Failed to create session code")
		return fmt.Errorf("failed to create session code: %w", err)
	}
	log.Info().Str("code", code.Code).Int("max_generations", code.MaxGenerations).Msg("Session code created")
	return nil
}

func (r *PgSessionCodeRepository) GetByCode(ctx context.Context, code string) (*model.SessionCode, error) {
	query := fmt.Sprintf(`SELECT %s FROM session_codes WHERE code = $1`, sessionCodeFields)
	var sc model.SessionCode
	err := pgxscan.Get(ctx, r.db, &sc, query, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCodeNotFound
		}
		log.Error().Err(err).Str("code", code).Msg("Failed to get session code")
		return nil, fmt.Errorf("failed to get session code: %w", err)
	}
	return &sc, nil
}

func (r *PgSessionCodeRepository) List(ctx context.Context) ([]model.SessionCode, error) {
	query := fmt.Sprintf(`SELECT %s FROM session_codes ORDER BY created_at DESC`, sessionCodeFields)
	var codes []model.SessionCode
	if err := pgxscan.Select(ctx, r.db, &codes, query); err != nil {
		log.Error().Err(err).Msg("Failed to list session codes")
		return nil, fmt.Errorf("failed to list session codes: %w", err)
	}
	return codes, nil
}

func (r *PgSessionCodeRepository) Update(ctx context.Context, code *model.SessionCode) error {
	query := `UPDATE session_codes
	          SET name = $1, is_active = $2, max_generations = $3, expires_at = $4
	          WHERE code = $5`
	tag, err := r.db.Exec(ctx, query, code.Name, code.IsActive, code.MaxGenerations, code.ExpiresAt, code.Code)
	if err != nil {
		log.Error().Err(err).Str("code", code.Code).Msg("Failed to update session code")
		return fmt.Errorf("failed to update session code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCodeNotFound
	}
	return nil
}

// ConsumeGeneration is the atomic check-and-increment of the quota ledger.
// The condition lives inside the UPDATE so two concurrent calls can never
// both pass a stale read; the loser sees zero affected rows.
func (r *PgSessionCodeRepository) ConsumeGeneration(ctx context.Context, code string) (*model.SessionCode, error) {
	query := fmt.Sprintf(`UPDATE session_codes
	          SET used_generations = used_generations + 1
	          WHERE code = $1 AND used_generations < max_generations
	          RETURNING %s`, sessionCodeFields)
	var sc model.SessionCode
	err := pgxscan.Get(ctx, r.db, &sc, query, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCodeQuotaExceeded
		}
		log.Error().Err(err).Str("code", code).Msg("Failed to consume generation from session code")
		return nil, fmt.Errorf("failed to consume generation: %w", err)
	}
	log.Info().Str("code", sc.Code).Int("used", sc.UsedGenerations).Int("max", sc.MaxGenerations).Msg("Generation consumed")
	return &sc, nil
}
