package mocks

import (
	"context"

	"depdemo/internal/model"
	"depdemo/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFetchRepository struct {
	mock.Mock
}

func (m *MockFetchRepository) Create(ctx context.Context, rec *model.FetchRecord) (*model.FetchRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FetchRecord), args.Error(1)
}

func (m *MockFetchRepository) FindByID(ctx context.Context, id string) (*model.FetchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FetchRecord), args.Error(1)
}

func (m *MockFetchRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FetchRecord], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.FetchRecord]), args.Error(1)
}
