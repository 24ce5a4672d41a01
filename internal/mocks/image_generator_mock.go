package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/ai"
)

// MockImageGenerator is a mock type for the ai.ImageGenerator type
type MockImageGenerator struct {
	mock.Mock
}

func (_m *MockImageGenerator) Generate(ctx context.Context, prompt string) (*ai.GeneratedImage, error) {
	ret := _m.Called(ctx, prompt)
	var r0 *ai.GeneratedImage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ai.GeneratedImage)
	}
	return r0, ret.Error(1)
}

func (_m *MockImageGenerator) Provider() string {
	ret := _m.Called()
	return ret.String(0)
}

// NewMockImageGenerator creates a new instance of MockImageGenerator.
func NewMockImageGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockImageGenerator {
	m := &MockImageGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.ImageGenerator = (*MockImageGenerator)(nil)
