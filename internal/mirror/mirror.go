package mirror

import (
	"context"
	"fmt"
	"log"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// Remote is the read side of the external tabular store.
type Remote interface {
	List(ctx context.Context) ([]domain.ProjectRecord, error)
}

// Local is the owned record store being reconciled.
type Local interface {
	List(ctx context.Context) ([]domain.ProjectRecord, error)
	Upsert(ctx context.Context, rec domain.ProjectRecord) error
	Delete(ctx context.Context, id string) error
}

// Mirror copies the external store into the owned database: every remote
// row is upserted verbatim, local rows missing remotely are removed. The
// remote copy wins every conflict, matching the store's last-write-wins
// model.
type Mirror struct {
	remote Remote
	local  Local
}

func New(remote Remote, local Local) *Mirror {
	return &Mirror{remote: remote, local: local}
}

// Run performs one reconciliation pass.
func (m *Mirror) Run(ctx context.Context) error {
	remote, err := m.remote.List(ctx)
	if err != nil {
		return fmt.Errorf("list remote: %w", err)
	}
	local, err := m.local.List(ctx)
	if err != nil {
		return fmt.Errorf("list local: %w", err)
	}

	seen := make(map[string]bool, len(remote))
	for _, rec := range remote {
		if rec.ID == "" {
			log.Printf("[warn] operation=mirror message=skipping remote row without id name=%q", rec.Name)
			continue
		}
		seen[rec.ID] = true
		if err := m.local.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("upsert %s: %w", rec.ID, err)
		}
	}

	removed := 0
	for _, rec := range local {
		if seen[rec.ID] {
			continue
		}
		if err := m.local.Delete(ctx, rec.ID); err != nil {
			return fmt.Errorf("delete %s: %w", rec.ID, err)
		}
		removed++
	}

	log.Printf("[info] operation=mirror upserted=%d removed=%d", len(seen), removed)
	return nil
}
