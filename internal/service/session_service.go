package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// SessionService owns generation-session CRUD. Sessions belong exclusively
// to their creator; admins get no special access here.
type SessionService struct {
	sessions   repository.SessionRepository
	generators repository.GeneratorRepository
}

func NewSessionService(sessions repository.SessionRepository, generators repository.GeneratorRepository) *SessionService {
	return &SessionService{sessions: sessions, generators: generators}
}

// Create starts a named session, optionally bound to a generator slug.
func (s *SessionService) Create(ctx context.Context, actor *model.User, name string, description *string, generatorSlug string) (*model.GenerationSession, error) {
	if actor == nil {
		return nil, model.ErrUnauthorized
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}

	session := &model.GenerationSession{
		Name:        name,
		Description: description,
		Generator:   generatorSlug,
		CreatedByID: actor.ID,
	}
	if generatorSlug != "" {
		gen, err := s.generators.GetBySlug(ctx, generatorSlug)
		if err == nil {
			session.GeneratorID = &gen.ID
		}
		// An unknown slug still creates the session: the label is kept as
		// free text, only the id link is skipped.
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// List returns the actor's sessions.
func (s *SessionService) List(ctx context.Context, actor *model.User) ([]model.GenerationSession, error) {
	if actor == nil {
		return nil, model.ErrUnauthorized
	}
	return s.sessions.ListByOwner(ctx, actor.ID)
}

// Delete removes a session the actor owns. Its images are unlinked by the
// database, never deleted.
func (s *SessionService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor == nil || session.CreatedByID != actor.ID {
		return model.ErrForbidden
	}
	return s.sessions.Delete(ctx, id)
}
