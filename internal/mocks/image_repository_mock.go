package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
)

// MockImageRepository is a mock type for the ImageRepository type
type MockImageRepository struct {
	mock.Mock
}

func (_m *MockImageRepository) Create(ctx context.Context, img *model.Image) error {
	ret := _m.Called(ctx, img)
	return ret.Error(0)
}

func (_m *MockImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Image
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Image)
	}
	return r0, ret.Error(1)
}

func (_m *MockImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockImageRepository) CountGeneratedForBase(ctx context.Context, baseID, excludeID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, baseID, excludeID)
	return ret.Int(0), ret.Error(1)
}

func (_m *MockImageRepository) ListPairs(ctx context.Context, filter string, limit, offset int) ([]model.ImagePair, error) {
	ret := _m.Called(ctx, filter, limit, offset)
	var r0 []model.ImagePair
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ImagePair)
	}
	return r0, ret.Error(1)
}

// NewMockImageRepository creates a new instance of MockImageRepository.
func NewMockImageRepository(t interface {
	mock.TestingT
	Helper()
}) *MockImageRepository {
	m := &MockImageRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ImageRepository = (*MockImageRepository)(nil)
