package domain

type Incident struct {
	Title    string
	GroupRef string
}

// DedupeIncidents keeps one incident per title. The last occurrence wins, which also drops
// earlier assignments of the same title to a different group. Survivors keep the relative order
// of their input positions.
func DedupeIncidents(incidents []Incident) []Incident {
	lastIndex := make(map[string]int, len(incidents))
	for i, incident := range incidents {
		lastIndex[incident.Title] = i
	}

	deduped := make([]Incident, 0, len(lastIndex))
	for i, incident := range incidents {
		if lastIndex[incident.Title] != i {
			continue
		}
		deduped = append(deduped, incident)
	}

	return deduped
}
