package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// codeAlphabet excludes easily confused characters (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// VerifyResult is the successful outcome of a session-code check.
type VerifyResult struct {
	Valid                bool `json:"valid"`
	RemainingGenerations int  `json:"remainingGenerations"`
}

// CodeService enforces the per-code generation budget for walk-up clients.
type CodeService struct {
	codes repository.SessionCodeRepository
	now   func() time.Time
}

func NewCodeService(codes repository.SessionCodeRepository) *CodeService {
	return &CodeService{codes: codes, now: time.Now}
}

// Verify checks a code and, when useGeneration is set, consumes one
// generation from its budget. The checks run in a fixed order and the first
// failure wins: exists, active, not expired, quota remaining. The consuming
// increment is a single conditional update, so concurrent verifies cannot
// overshoot the cap.
func (s *CodeService) Verify(ctx context.Context, rawCode string, useGeneration bool) (*VerifyResult, error) {
	code, err := model.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	sc, err := s.codes.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !sc.IsActive {
		return nil, model.ErrCodeInactive
	}
	if sc.Expired(s.now()) {
		return nil, model.ErrCodeExpired
	}
	if sc.Remaining() == 0 {
		return nil, model.ErrCodeQuotaExceeded
	}

	if !useGeneration {
		return &VerifyResult{Valid: true, RemainingGenerations: sc.Remaining()}, nil
	}

	// The read above only decided the denial reason; the accounting happens
	// here, atomically. A concurrent consumer may have drained the quota in
	// between, in which case this reports quota-exceeded as well.
	consumed, err := s.codes.ConsumeGeneration(ctx, code)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Valid: true, RemainingGenerations: consumed.Remaining()}, nil
}

// CreateInput for a new session code. Code is optional; a random one is
// minted when empty.
type CodeCreateInput struct {
	Code           string
	Name           *string
	MaxGenerations int
	ExpiresAt      *time.Time
}

// Create mints a session code. Admin only.
func (s *CodeService) Create(ctx context.Context, actor *model.User, in CodeCreateInput) (*model.SessionCode, error) {
	if !actor.IsAdmin() {
		return nil, model.ErrForbidden
	}
	if in.MaxGenerations <= 0 {
		return nil, fmt.Errorf("%w: maxGenerations must be positive", model.ErrInvalidInput)
	}

	code := in.Code
	if code == "" {
		code = randomCode(8)
	}
	code, err := model.NormalizeCode(code)
	if err != nil {
		return nil, err
	}

	sc := &model.SessionCode{
		Code:           code,
		Name:           in.Name,
		IsActive:       true,
		MaxGenerations: in.MaxGenerations,
		ExpiresAt:      in.ExpiresAt,
		CreatedByID:    &actor.ID,
	}
	if err := s.codes.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// List returns all codes. Admin only.
func (s *CodeService) List(ctx context.Context, actor *model.User) ([]model.SessionCode, error) {
	if !actor.IsAdmin() {
		return nil, model.ErrForbidden
	}
	return s.codes.List(ctx)
}

// Update changes a code's name, activity, cap or expiry. Admin only.
func (s *CodeService) Update(ctx context.Context, actor *model.User, rawCode string, name *string, isActive *bool, maxGenerations *int, expiresAt *time.Time) (*model.SessionCode, error) {
	if !actor.IsAdmin() {
		return nil, model.ErrForbidden
	}
	code, err := model.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}
	sc, err := s.codes.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if name != nil {
		sc.Name = name
	}
	if isActive != nil {
		sc.IsActive = *isActive
	}
	if maxGenerations != nil {
		if *maxGenerations < sc.UsedGenerations {
			return nil, fmt.Errorf("%w: maxGenerations below already used count", model.ErrInvalidInput)
		}
		sc.MaxGenerations = *maxGenerations
	}
	if expiresAt != nil {
		sc.ExpiresAt = expiresAt
	}

	if err := s.codes.Update(ctx, sc); err != nil {
		return nil, err
	}
	log.Info().Str("code", sc.Code).Msg("Session code updated")
	return sc, nil
}

func randomCode(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
