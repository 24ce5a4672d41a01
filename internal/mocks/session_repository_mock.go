package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockSessionRepository is a mock type for the SessionRepository type
type MockSessionRepository struct {
	mock.Mock
}

func (_m *MockSessionRepository) Create(ctx context.Context, session *model.GenerationSession) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

func (_m *MockSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationSession, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.GenerationSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.GenerationSession)
	}
	return r0, ret.Error(1)
}

func (_m *MockSessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.GenerationSession, error) {
	ret := _m.Called(ctx, ownerID)
	var r0 []model.GenerationSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.GenerationSession)
	}
	return r0, ret.Error(1)
}

func (_m *MockSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockSessionRepository creates a new instance of MockSessionRepository.
func NewMockSessionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.SessionRepository = (*MockSessionRepository)(nil)
