package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockSessionCodeRepository is a mock type for the SessionCodeRepository type
type MockSessionCodeRepository struct {
	mock.Mock
}

func (_m *MockSessionCodeRepository) Create(ctx context.Context, code *model.SessionCode) error {
	ret := _m.Called(ctx, code)
	return ret.Error(0)
}

func (_m *MockSessionCodeRepository) GetByCode(ctx context.Context, code string) (*model.SessionCode, error) {
	ret := _m.Called(ctx, code)
	var r0 *model.SessionCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.SessionCode)
	}
	return r0, ret.Error(1)
}

func (_m *MockSessionCodeRepository) List(ctx context.Context) ([]model.SessionCode, error) {
	ret := _m.Called(ctx)
	var r0 []model.SessionCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.SessionCode)
	}
	return r0, ret.Error(1)
}

func (_m *MockSessionCodeRepository) Update(ctx context.Context, code *model.SessionCode) error {
	ret := _m.Called(ctx, code)
	return ret.Error(0)
}

func (_m *MockSessionCodeRepository) ConsumeGeneration(ctx context.Context, code string) (*model.SessionCode, error) {
	ret := _m.Called(ctx, code)
	var r0 *model.SessionCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.SessionCode)
	}
	return r0, ret.Error(1)
}

// NewMockSessionCodeRepository creates a new instance of MockSessionCodeRepository.
func NewMockSessionCodeRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSessionCodeRepository {
	m := &MockSessionCodeRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.SessionCodeRepository = (*MockSessionCodeRepository)(nil)
