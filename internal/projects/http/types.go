package http

import (
	"context"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// RecordStore is the persistence surface the handlers need. Satisfied by
// *repository.ProjectRepository.
type RecordStore interface {
	List(ctx context.Context) ([]domain.ProjectRecord, error)
	Create(ctx context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error)
	Update(ctx context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error)
	Delete(ctx context.Context, id string) error
}

// Handler bundles the dependencies for project record endpoints.
type Handler struct {
	store RecordStore
}

func New(store RecordStore) *Handler {
	return &Handler{store: store}
}
