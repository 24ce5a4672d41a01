package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockUserRepository is a mock type for the repository.UserRepository type
type MockUserRepository struct {
	mock.Mock
}

func (_m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ret := _m.Called(ctx, email)
	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository(t interface {
	mock.TestingT
	Helper()
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.UserRepository = (*MockUserRepository)(nil)
