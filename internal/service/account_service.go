package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/auth"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// AccountService registers users and authenticates logins.
type AccountService struct {
	users  repository.UserRepository
	tokens *auth.Service
}

func NewAccountService(users repository.UserRepository, tokens *auth.Service) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// Register creates a user account and returns it with a fresh access token.
// New accounts always get the user role; admins are promoted out of band.
func (a *AccountService) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", model.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", model.ErrInvalidInput)
	}
	if name == "" {
		name = email
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := a.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := a.tokens.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with an access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (a *AccountService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", model.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", model.ErrInvalidCredentials
	}

	token, err := a.tokens.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser loads the account behind a verified token claim.
func (a *AccountService) GetUser(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	return a.users.GetByID(ctx, claims.UserID)
}
