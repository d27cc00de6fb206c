package table

import (
	"strings"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

// Predicate decides whether a record stays in the filtered view.
type Predicate func(domain.ProjectRecord) bool

// NameContains matches records whose name contains q, case-insensitively.
// An empty query passes every record.
func NameContains(q string) Predicate {
	q = strings.ToLower(q)
	return func(rec domain.ProjectRecord) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(rec.Name), q)
	}
}

// StatusEquals matches records with exactly the given status. An empty
// status passes every record.
func StatusEquals(status string) Predicate {
	return func(rec domain.ProjectRecord) bool {
		if status == "" {
			return true
		}
		return rec.Status == status
	}
}

// Filter applies the predicates as a logical AND, preserving order.
func Filter(records []domain.ProjectRecord, preds ...Predicate) []domain.ProjectRecord {
	out := make([]domain.ProjectRecord, 0, len(records))
	for _, rec := range records {
		keep := true
		for _, p := range preds {
			if !p(rec) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}
