package table

import (
	"sort"
	"strings"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// Column identifies a displayed table column.
type Column string

const (
	ColumnName       Column = "name"
	ColumnCategory   Column = "category"
	ColumnKonsep     Column = "konsep"
	ColumnStatus     Column = "status"
	ColumnPayment    Column = "payment"
	ColumnNominal    Column = "nominal"
	ColumnWaktuInput Column = "waktu_input"
)

type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// SortState is the single active column sort. Only one column sorts at a
// time; toggling a different column resets the previous one.
type SortState struct {
	Column    Column
	Direction Direction
}

// Toggle advances the three-state cycle for col: unsorted → ascending →
// descending → unsorted. Toggling a new column starts it at ascending.
func (s SortState) Toggle(col Column) SortState {
	if s.Column != col || s.Direction == Unsorted {
		return SortState{Column: col, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return SortState{Column: col, Direction: Descending}
	}
	return SortState{}
}

// Apply returns records ordered by the sort state. The sort is stable, so
// records that compare equal keep their snapshot order; an unsorted state
// returns the slice unchanged.
func (s SortState) Apply(records []domain.ProjectRecord) []domain.ProjectRecord {
	if s.Direction == Unsorted {
		return records
	}
	out := make([]domain.ProjectRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a := columnValue(out[i], s.Column)
		b := columnValue(out[j], s.Column)
		if s.Direction == Descending {
			a, b = b, a
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
	return out
}

func columnValue(rec domain.ProjectRecord, col Column) string {
	switch col {
	case ColumnName:
		return rec.Name
	case ColumnCategory:
		return rec.Category
	case ColumnKonsep:
		return rec.Konsep
	case ColumnStatus:
		return rec.Status
	case ColumnPayment:
		return rec.Payment
	case ColumnNominal:
		return rec.Nominal
	case ColumnWaktuInput:
		return rec.WaktuInput
	}
	return ""
}
