package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

var _ UserRepository = (*PgUserRepository)(nil)

const userFields = `id, email, name, password_hash, role, created_at`

type PgUserRepository struct {
	db *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgUserRepository")
	}
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, name, password_hash, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		strings.ToLower(user.Email), user.Name, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrEmailTaken
		}
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Str("id", user.ID.String()).Str("email", user.Email).Msg("User created")
	return nil
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userFields)
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		log.Error().Err(err).Msg("Failed to get user by email")
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userFields)
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to get user by id")
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
