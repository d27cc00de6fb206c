package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

func TestSortState_ToggleCycle(t *testing.T) {
	var s SortState

	s = s.Toggle(ColumnName)
	assert.Equal(t, SortState{Column: ColumnName, Direction: Ascending}, s)

	s = s.Toggle(ColumnName)
	assert.Equal(t, SortState{Column: ColumnName, Direction: Descending}, s)

	s = s.Toggle(ColumnName)
	assert.Equal(t, SortState{}, s, "third toggle returns to unsorted")
}

func TestSortState_SwitchingColumnResetsPrevious(t *testing.T) {
	var s SortState
	s = s.Toggle(ColumnName)
	s = s.Toggle(ColumnName) // name descending

	s = s.Toggle(ColumnNominal)
	assert.Equal(t, SortState{Column: ColumnNominal, Direction: Ascending}, s,
		"a new column starts at ascending regardless of prior state")
}

func TestSortState_Apply(t *testing.T) {
	records := []domain.ProjectRecord{
		{ID: "1", Name: "charlie"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "bravo"},
	}

	t.Run("unsorted keeps snapshot order", func(t *testing.T) {
		got := SortState{}.Apply(records)
		assert.Equal(t, []string{"1", "2", "3"}, ids(got))
	})

	t.Run("ascending is case-insensitive", func(t *testing.T) {
		got := SortState{Column: ColumnName, Direction: Ascending}.Apply(records)
		assert.Equal(t, []string{"2", "3", "1"}, ids(got))
	})

	t.Run("descending reverses", func(t *testing.T) {
		got := SortState{Column: ColumnName, Direction: Descending}.Apply(records)
		assert.Equal(t, []string{"1", "3", "2"}, ids(got))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		SortState{Column: ColumnName, Direction: Ascending}.Apply(records)
		assert.Equal(t, []string{"1", "2", "3"}, ids(records))
	})
}

func TestSortState_ApplyIsStable(t *testing.T) {
	records := []domain.ProjectRecord{
		{ID: "1", Status: "Coming soon", Name: "z"},
		{ID: "2", Status: "Coming soon", Name: "a"},
		{ID: "3", Status: "Coming soon", Name: "m"},
	}

	got := SortState{Column: ColumnStatus, Direction: Ascending}.Apply(records)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got),
		"equal keys keep their snapshot order")
}
