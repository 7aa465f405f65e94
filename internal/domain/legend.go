package domain

import "time"

type LegendEntry struct {
	Category    Category
	GroupID     string
	DisplayName string
	CreatedAt   time.Time
}

// Legend decodes completions back to the groups they were assigned from.
type Legend struct {
	Entries []LegendEntry
}

type CategoryDrift struct {
	GroupID     string
	DisplayName string
	Previous    Category
	Current     Category
}

func NewLegend(assignment CategoryAssignment) Legend {
	groups := assignment.Groups()
	entries := make([]LegendEntry, 0, len(groups))
	for i, group := range groups {
		// a shadowed duplicate ID lost its slot to a later group
		category, ok := assignment.Lookup(group.ID)
		if !ok || category != Category(i) {
			continue
		}
		entries = append(entries, LegendEntry{
			Category:    category,
			GroupID:     group.ID,
			DisplayName: group.DisplayName,
			CreatedAt:   group.CreatedAt,
		})
	}

	return Legend{Entries: entries}
}

// Drift lists groups present in both legends whose category changed. Groups that disappeared or
// were added are not drift.
func (l Legend) Drift(current Legend) []CategoryDrift {
	previous := make(map[string]Category, len(l.Entries))
	for _, entry := range l.Entries {
		previous[entry.GroupID] = entry.Category
	}

	var drift []CategoryDrift
	seen := make(map[string]struct{}, len(current.Entries))
	for _, entry := range current.Entries {
		if _, ok := seen[entry.GroupID]; ok {
			continue
		}
		seen[entry.GroupID] = struct{}{}

		before, ok := previous[entry.GroupID]
		if !ok || before == entry.Category {
			continue
		}
		drift = append(drift, CategoryDrift{
			GroupID:     entry.GroupID,
			DisplayName: entry.DisplayName,
			Previous:    before,
			Current:     entry.Category,
		})
	}

	return drift
}
