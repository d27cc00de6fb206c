package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// ProjectRepository is the owned record store: durable storage and
// retrieval of project rows in a PostgreSQL `projects` table.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// New is an alias for NewProjectRepository.
func New(db *pgxpool.Pool) *ProjectRepository {
	return NewProjectRepository(db)
}

const recordColumns = `id, name, category, konsep, status, payment, nominal, waktu_input`

// List returns the entire record set, newest input first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.ProjectRecord, error) {
	const q = `
select ` + recordColumns + `
from projects
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectRecord, 0, 16)
	for rows.Next() {
		var rec domain.ProjectRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Category, &rec.Konsep,
			&rec.Status, &rec.Payment, &rec.Nominal, &rec.WaktuInput); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Create inserts a new record. When the record carries no id one is
// generated here; on an id collision a fresh id is generated and the
// insert retried. A record that arrives with a caller-assigned id is
// persisted verbatim and a collision is reported as a validation error.
func (r *ProjectRepository) Create(ctx context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}

	callerID := rec.ID != ""

	for i := 0; i < 5; i++ {
		if rec.ID == "" {
			id, err := domain.NewRecordID()
			if err != nil {
				return nil, err
			}
			rec.ID = id
		}

		const q = `
insert into projects (id, name, category, konsep, status, payment, nominal, waktu_input)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning ` + recordColumns + `;
`
		var out domain.ProjectRecord
		err := r.db.QueryRow(ctx, q, rec.ID, rec.Name, rec.Category, rec.Konsep,
			rec.Status, rec.Payment, rec.Nominal, rec.WaktuInput).
			Scan(&out.ID, &out.Name, &out.Category, &out.Konsep,
				&out.Status, &out.Payment, &out.Nominal, &out.WaktuInput)

		if err == nil {
			return &out, nil
		}

		// unique violation on id → retry with a fresh one
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if callerID {
				return nil, fmt.Errorf("%w: id %q already exists", domain.ErrValidation, rec.ID)
			}
			rec.ID = ""
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique record id")
}

// Update replaces the full row addressed by id. The id itself and
// waktu_input are never modified.
func (r *ProjectRepository) Update(ctx context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	const q = `
update projects
set name = $2, category = $3, konsep = $4, status = $5, payment = $6, nominal = $7,
    updated_at = now()
where id = $1
returning ` + recordColumns + `;
`
	var out domain.ProjectRecord
	err := r.db.QueryRow(ctx, q, id, rec.Name, rec.Category, rec.Konsep,
		rec.Status, rec.Payment, rec.Nominal).
		Scan(&out.ID, &out.Name, &out.Category, &out.Konsep,
			&out.Status, &out.Payment, &out.Nominal, &out.WaktuInput)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Upsert writes a record verbatim, inserting or replacing the row for
// its id. Used by the mirror job, which trusts the remote store's copy.
func (r *ProjectRepository) Upsert(ctx context.Context, rec domain.ProjectRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: id required", domain.ErrValidation)
	}
	const q = `
insert into projects (id, name, category, konsep, status, payment, nominal, waktu_input)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (id) do update
set name = excluded.name, category = excluded.category, konsep = excluded.konsep,
    status = excluded.status, payment = excluded.payment, nominal = excluded.nominal,
    updated_at = now();
`
	_, err := r.db.Exec(ctx, q, rec.ID, rec.Name, rec.Category, rec.Konsep,
		rec.Status, rec.Payment, rec.Nominal, rec.WaktuInput)
	return err
}

// Delete removes the row addressed by id.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
