package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/storage"
)

// MockBlobStore is a mock type for the storage.BlobStore type
type MockBlobStore struct {
	mock.Mock
}

func (_m *MockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ret := _m.Called(ctx, key, data, contentType)
	return ret.String(0), ret.Error(1)
}

func (_m *MockBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	ret := _m.Called(ctx, key)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *MockBlobStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// NewMockBlobStore creates a new instance of MockBlobStore.
func NewMockBlobStore(t interface {
	mock.TestingT
	Helper()
}) *MockBlobStore {
	m := &MockBlobStore{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ storage.BlobStore = (*MockBlobStore)(nil)
