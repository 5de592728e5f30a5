package store

import (
	"sort"
	"strings"

	"github.com/taskhive/taskhive-backend/internal/models"
)

// The query engine: predicate filtering, stable ordering and 1-indexed
// pagination over collection snapshots. Snapshots are taken under the read
// lock and sorted by ascending id, which equals insertion order because ids
// are allocated monotonically.

func filterSlice[T any](items []T, preds ...func(T) bool) []T {
	out := items
	for _, pred := range preds {
		kept := out[:0:0]
		for _, item := range out {
			if pred(item) {
				kept = append(kept, item)
			}
		}
		out = kept
	}
	return out
}

// paginate selects the half-open range [(page-1)*size, (page-1)*size+size).
// Out-of-range pages yield an empty slice, never an error.
func paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// containsFold is the case-insensitive substring predicate used by every
// search variant. It matches partial tokens.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Snapshot helpers. Each returns copies so callers can hold the results after
// the read lock is released without racing later mutations.

func (s *Store) userSnapshotLocked() []*models.User {
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) projectSnapshotLocked() []*models.Project {
	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) taskSnapshotLocked() []*models.Task {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) commentSnapshotLocked() []*models.Comment {
	out := make([]*models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
