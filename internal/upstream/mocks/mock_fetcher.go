package mocks

import (
	"context"

	"depdemo/internal/upstream"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) (*upstream.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.Result), args.Error(1)
}

func (m *MockFetcher) URL() string {
	args := m.Called()
	return args.String(0)
}
