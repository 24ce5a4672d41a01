package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockGeneratorRepository is a mock type for the GeneratorRepository type
type MockGeneratorRepository struct {
	mock.Mock
}

func (_m *MockGeneratorRepository) Create(ctx context.Context, gen *model.Generator) error {
	ret := _m.Called(ctx, gen)
	return ret.Error(0)
}

func (_m *MockGeneratorRepository) GetBySlug(ctx context.Context, slug string) (*model.Generator, error) {
	ret := _m.Called(ctx, slug)
	var r0 *model.Generator
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Generator)
	}
	return r0, ret.Error(1)
}

func (_m *MockGeneratorRepository) ListActive(ctx context.Context) ([]model.Generator, error) {
	ret := _m.Called(ctx)
	var r0 []model.Generator
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Generator)
	}
	return r0, ret.Error(1)
}

func (_m *MockGeneratorRepository) Update(ctx context.Context, gen *model.Generator) error {
	ret := _m.Called(ctx, gen)
	return ret.Error(0)
}

// NewMockGeneratorRepository creates a new instance of MockGeneratorRepository.
func NewMockGeneratorRepository(t interface {
	mock.TestingT
	Helper()
}) *MockGeneratorRepository {
	m := &MockGeneratorRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.GeneratorRepository = (*MockGeneratorRepository)(nil)
