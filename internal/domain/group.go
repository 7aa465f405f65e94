package domain

import (
	"sort"
	"time"
)

type Group struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}

type Category int

// CategoryAssignment maps group IDs to dense categories in [0, N).
type CategoryAssignment struct {
	byID   map[string]Category
	sorted []Group
}

// AssignCategories sorts groups by creation time and uses the position as category. The sort is
// stable: groups created at the same second keep their export order. Existing groups keep their
// category as long as their creation time does not change and newer groups are appended.
func AssignCategories(groups []Group) CategoryAssignment {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	byID := make(map[string]Category, len(sorted))
	for i, group := range sorted {
		byID[group.ID] = Category(i)
	}

	return CategoryAssignment{byID: byID, sorted: sorted}
}

func (a CategoryAssignment) Lookup(id string) (Category, bool) {
	category, ok := a.byID[id]
	return category, ok
}

func (a CategoryAssignment) Len() int {
	return len(a.byID)
}

// Groups returns the groups in category order.
func (a CategoryAssignment) Groups() []Group {
	out := make([]Group, len(a.sorted))
	copy(out, a.sorted)
	return out
}

// Map returns a copy of the id -> category table.
func (a CategoryAssignment) Map() map[string]Category {
	out := make(map[string]Category, len(a.byID))
	for id, category := range a.byID {
		out[id] = category
	}
	return out
}

// GroupNames builds the id -> display name table. Duplicate IDs shadow earlier ones.
func GroupNames(groups []Group) map[string]string {
	names := make(map[string]string, len(groups))
	for _, group := range groups {
		names[group.ID] = group.DisplayName
	}
	return names
}
