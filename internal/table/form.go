package table

import (
	"context"
	"time"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
	"github.com/Elxixau/TaskStatus-Manager/internal/store"
)

// Mode tags the form state: a cleared create form, or an edit of one
// selected record.
type Mode int

const (
	Idle Mode = iota
	Editing
)

// Workflow is the add/edit/delete state machine behind the form. In Idle
// the draft never carries an id; selecting a record for edit copies all
// of its fields, id included, and submission turns into an update
// addressed by that id.
type Workflow struct {
	store store.RecordStore
	ctrl  *Controller

	mode  Mode
	draft domain.ProjectRecord

	now func() time.Time
}

func NewWorkflow(st store.RecordStore, ctrl *Controller) *Workflow {
	return &Workflow{
		store: st,
		ctrl:  ctrl,
		mode:  Idle,
		draft: domain.NewRecord(),
		now:   time.Now,
	}
}

func (w *Workflow) Mode() Mode {
	return w.mode
}

// Draft returns a copy of the current form values.
func (w *Workflow) Draft() domain.ProjectRecord {
	return w.draft
}

// SetDraft replaces the editable form fields. The id and waktu_input are
// not form inputs: in Idle they stay empty, in Editing they stay pinned
// to the record being edited.
func (w *Workflow) SetDraft(rec domain.ProjectRecord) {
	rec.ID = w.draft.ID
	rec.WaktuInput = w.draft.WaktuInput
	w.draft = rec
}

// Edit switches to edit mode, populating the form from the record.
func (w *Workflow) Edit(rec domain.ProjectRecord) {
	w.mode = Editing
	w.draft = rec
}

// Submit persists the draft: an update when editing, otherwise a create
// with a freshly generated id and the current input timestamp. On success
// the form resets to Idle defaults and the table reloads. On failure the
// form keeps its state so the user can resubmit.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.mode == Editing {
		if _, err := w.store.Update(ctx, w.draft.ID, w.draft); err != nil {
			return err
		}
	} else {
		rec := w.draft
		id, err := domain.NewRecordID()
		if err != nil {
			return err
		}
		rec.ID = id
		rec.WaktuInput = w.now().Format("2/1/2006, 15.04.05")
		if _, err := w.store.Create(ctx, rec); err != nil {
			return err
		}
	}

	w.reset()
	return w.ctrl.Reload(ctx)
}

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func() bool

// Delete removes the record addressed by id after an explicit
// confirmation. Declining leaves every piece of state unchanged. On
// success the table reloads; on failure the error is surfaced with no
// retry.
func (w *Workflow) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := w.store.Delete(ctx, id); err != nil {
		return err
	}
	return w.ctrl.Reload(ctx)
}

func (w *Workflow) reset() {
	w.mode = Idle
	w.draft = domain.NewRecord()
}
