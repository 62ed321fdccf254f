package provider

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rateboard/internal/rates"
)

type MockSource struct {
	mock.Mock
	name string
}

func (m *MockSource) Name() string { return m.name }

func (m *MockSource) Acquire(ctx context.Context) (*rates.Payload, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*rates.Payload)
	return p, args.Error(1)
}
