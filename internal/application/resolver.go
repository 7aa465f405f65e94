package application

import "github.com/bnema/snowmap/internal/domain"

// resolver turns deduplicated incidents into training entries. The trim counters are keyed by the
// raw group reference and checked before the reference is resolved; the distribution only sees
// incidents that passed the trim check.
type resolver struct {
	categories   domain.CategoryAssignment
	names        map[string]string
	trim         int
	trimCounts   map[string]int
	distribution *domain.Distribution
	trimmed      int
}

func newResolver(categories domain.CategoryAssignment, groups []domain.Group, trim int) *resolver {
	return &resolver{
		categories:   categories,
		names:        domain.GroupNames(groups),
		trim:         trim,
		trimCounts:   map[string]int{},
		distribution: domain.NewDistribution(),
	}
}

func (r *resolver) resolve(incidents []domain.Incident) ([]domain.TrainingEntry, error) {
	entries := make([]domain.TrainingEntry, 0, len(incidents))
	for _, incident := range incidents {
		if r.trim > 0 {
			if r.trimCounts[incident.GroupRef] >= r.trim {
				r.trimmed++
				continue
			}
			r.trimCounts[incident.GroupRef]++
		}

		category, ok := r.categories.Lookup(incident.GroupRef)
		if !ok {
			return nil, &domain.UnresolvedReferenceError{Ref: incident.GroupRef, Title: incident.Title, Table: domain.LookupTableCategories}
		}

		name, ok := r.names[incident.GroupRef]
		if !ok {
			return nil, &domain.UnresolvedReferenceError{Ref: incident.GroupRef, Title: incident.Title, Table: domain.LookupTableGroups}
		}

		entries = append(entries, domain.NewTrainingEntry(incident.Title, category))
		r.distribution.Increment(name, category)
	}

	return entries, nil
}
