package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"depdemo/internal/model"
	"depdemo/internal/repository"
	"depdemo/internal/storage"
	"depdemo/internal/upstream"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("fetch record not found")
)

// FetchListResult is the service-level DTO for paginated fetch records.
type FetchListResult struct {
	Items []model.FetchRecord `json:"data"`
	Total int                 `json:"total"`
}

// FetchResult carries the upstream payload together with its audit record.
type FetchResult struct {
	Record      *model.FetchRecord
	Body        []byte
	ContentType string
}

// FetchService defines the use cases around the upstream fetch proxy.
type FetchService interface {
	// Fetch proxies one GET to the upstream endpoint, archives the payload to
	// object storage, records the call in the DB, and rolls back the archived
	// object if the DB insert fails. The upstream body is returned verbatim.
	Fetch(ctx context.Context) (*FetchResult, error)

	// List returns fetch records using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*FetchListResult, error)

	// Get returns a single fetch record by its ID.
	Get(ctx context.Context, id string) (*model.FetchRecord, error)
}

// fetchService is a concrete implementation of FetchService.
type fetchService struct {
	fetcher upstream.Fetcher
	store   storage.Storage
	repo    repository.FetchRepository
}

// NewFetchService constructs a new FetchService.
func NewFetchService(fetcher upstream.Fetcher, store storage.Storage, repo repository.FetchRepository) FetchService {
	return &fetchService{fetcher: fetcher, store: store, repo: repo}
}

func (s *fetchService) Fetch(ctx context.Context) (*FetchResult, error) {
	start := time.Now()
	res, err := s.fetcher.Fetch(ctx)
	if err != nil {
		// The caller exposes this message as-is
		return nil, err
	}
	latency := time.Since(start).Milliseconds()

	id := uuid.New().String()
	key := path.Join("fetches", id+".json")

	// Archive the payload to object storage
	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(res.Body), storage.PutObjectOptions{
		Size:        int64(len(res.Body)),
		ContentType: res.ContentType,
		Metadata: map[string]string{
			"source-url": s.fetcher.URL(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("archive to storage: %w", err)
	}

	// Save the audit record to the database
	rec := &model.FetchRecord{
		ID:          id,
		URL:         s.fetcher.URL(),
		StatusCode:  res.StatusCode,
		Size:        int64(len(res.Body)),
		ContentType: res.ContentType,
		LatencyMs:   latency,
		StoragePath: objInfo.Key,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		// Rollback: delete the archived object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return &FetchResult{
		Record:      stored,
		Body:        res.Body,
		ContentType: res.ContentType,
	}, nil
}

// List returns paginated fetch records without exposing repository types.
func (s *fetchService) List(ctx context.Context, limit, offset int) (*FetchListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &FetchListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a fetch record by ID.
func (s *fetchService) Get(ctx context.Context, id string) (*model.FetchRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
