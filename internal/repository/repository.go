package repository

import (
	"context"

	"depdemo/internal/model"
)

// FetchRepository defines data access for fetch records using SQL queries only.
// No business logic here — strictly persistence operations.
type FetchRepository interface {
	// Create inserts a new fetch record.
	// The caller provides required fields (ID, CreatedAt) according to the schema defaults.
	// Returns the stored record (may include values set by the DB).
	Create(ctx context.Context, rec *model.FetchRecord) (*model.FetchRecord, error)

	// FindByID returns a fetch record by its ID.
	FindByID(ctx context.Context, id string) (*model.FetchRecord, error)

	// List returns a paginated list of fetch records and the total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.FetchRecord], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
