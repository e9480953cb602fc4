package mocks

import (
	"context"

	"depdemo/internal/model"
	"depdemo/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFetchService struct {
	mock.Mock
}

func (m *MockFetchService) Fetch(ctx context.Context) (*service.FetchResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FetchResult), args.Error(1)
}

func (m *MockFetchService) List(ctx context.Context, limit, offset int) (*service.FetchListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FetchListResult), args.Error(1)
}

func (m *MockFetchService) Get(ctx context.Context, id string) (*model.FetchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FetchRecord), args.Error(1)
}
