package table

import (
	"context"
	"log"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
	"github.com/Elxixau/TaskStatus-Manager/internal/store"
)

// Controller owns the table view state: the current snapshot of records,
// the search query, the status filter and the column sort. Every filter
// change triggers a fresh list fetch; the snapshot is the filtered result
// of the most recent successful fetch.
type Controller struct {
	store store.RecordStore

	query    string
	status   string
	sorting  SortState
	snapshot []domain.ProjectRecord
}

func NewController(st store.RecordStore) *Controller {
	return &Controller{store: st}
}

// Reload refetches the full record set and applies the current filters.
// On failure the previous snapshot is retained and the error returned;
// callers surface it as a notification and show the stale view.
func (c *Controller) Reload(ctx context.Context) error {
	records, err := c.store.List(ctx)
	if err != nil {
		log.Printf("[warn] operation=reload error=%v", err)
		return err
	}
	c.snapshot = Filter(records, NameContains(c.query), StatusEquals(c.status))
	return nil
}

// SetQuery updates the search query and reloads.
func (c *Controller) SetQuery(ctx context.Context, q string) error {
	c.query = q
	return c.Reload(ctx)
}

// SetStatusFilter updates the status filter and reloads. An empty status
// clears the filter.
func (c *Controller) SetStatusFilter(ctx context.Context, status string) error {
	c.status = status
	return c.Reload(ctx)
}

// ToggleSort advances the sort cycle for the given column.
func (c *Controller) ToggleSort(col Column) {
	c.sorting = c.sorting.Toggle(col)
}

// Sorting exposes the current sort state for header rendering.
func (c *Controller) Sorting() SortState {
	return c.sorting
}

// Rows returns the snapshot in display order.
func (c *Controller) Rows() []domain.ProjectRecord {
	return c.sorting.Apply(c.snapshot)
}
