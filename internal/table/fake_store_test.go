package table

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// fakeStore is an in-memory RecordStore for controller and workflow
// tests. Failure flags let tests inject errors per operation.
type fakeStore struct {
	mu      sync.Mutex
	records []domain.ProjectRecord

	listCalls int

	failList   bool
	failCreate bool
	failUpdate bool
	failDelete bool
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore(seed ...domain.ProjectRecord) *fakeStore {
	return &fakeStore{records: append([]domain.ProjectRecord(nil), seed...)}
}

func (f *fakeStore) List(context.Context) ([]domain.ProjectRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failList {
		return nil, errStoreDown
	}
	out := make([]domain.ProjectRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return nil, errStoreDown
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("generated-%d", len(f.records)+1)
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeStore) Update(_ context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return nil, errStoreDown
	}
	for i := range f.records {
		if f.records[i].ID == id {
			rec.ID = id
			rec.WaktuInput = f.records[i].WaktuInput
			f.records[i] = rec
			out := rec
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errStoreDown
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) get(id string) (domain.ProjectRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.ProjectRecord{}, false
}
