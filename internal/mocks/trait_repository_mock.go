package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockTraitRepository is a mock type for the repository.TraitRepository type
type MockTraitRepository struct {
	mock.Mock
}

func (_m *MockTraitRepository) Search(ctx context.Context, query, category string, limit int) ([]model.Trait, error) {
	ret := _m.Called(ctx, query, category, limit)
	var r0 []model.Trait
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Trait)
	}
	return r0, ret.Error(1)
}

// NewMockTraitRepository creates a new instance of MockTraitRepository.
func NewMockTraitRepository(t interface {
	mock.TestingT
	Helper()
}) *MockTraitRepository {
	m := &MockTraitRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.TraitRepository = (*MockTraitRepository)(nil)
