package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

const (
	snapshotKey = "projects:snapshot"
	snapshotTTL = 60 * time.Second
)

// RecordStore is the full store contract: one list query and three
// independent mutations with no atomicity across them.
type RecordStore interface {
	List(ctx context.Context) ([]domain.ProjectRecord, error)
	Create(ctx context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error)
	Update(ctx context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error)
	Delete(ctx context.Context, id string) error
}

// CachedStore is a read-through snapshot cache in front of a RecordStore.
// List serves the cached snapshot while it is fresh; every successful
// mutation drops the snapshot so the next list refetches.
type CachedStore struct {
	inner RecordStore
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedStore(inner RecordStore, rdb *redis.Client) *CachedStore {
	return &CachedStore{inner: inner, rdb: rdb, ttl: snapshotTTL}
}

func (s *CachedStore) List(ctx context.Context) ([]domain.ProjectRecord, error) {
	data, err := s.rdb.Get(ctx, snapshotKey).Result()
	if err == nil {
		var records []domain.ProjectRecord
		if jsonErr := json.Unmarshal([]byte(data), &records); jsonErr == nil {
			return records, nil
		}
		// corrupt snapshot: fall through to a refetch
		s.rdb.Del(ctx, snapshotKey)
	} else if err != redis.Nil {
		log.Printf("[warn] operation=snapshot_get error=%v", err)
	}

	records, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, snapshotKey, payload, s.ttl).Err(); err != nil {
		// cache write failure is not a list failure
		log.Printf("[warn] operation=snapshot_set error=%v", err)
	}
	return records, nil
}

func (s *CachedStore) Create(ctx context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	created, err := s.inner.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *CachedStore) Update(ctx context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	updated, err := s.inner.Update(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *CachedStore) Delete(ctx context.Context, id string) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		log.Printf("[warn] operation=snapshot_invalidate error=%v", err)
	}
}
