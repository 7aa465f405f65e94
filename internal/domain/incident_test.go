package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeIncidentsKeepsLastOccurrence(t *testing.T) {
	t.Parallel()

	got := DedupeIncidents([]Incident{
		{Title: "A", GroupRef: "g1"},
		{Title: "A", GroupRef: "g2"},
		{Title: "B", GroupRef: "g1"},
	})

	assert.Equal(t, []Incident{
		{Title: "A", GroupRef: "g2"},
		{Title: "B", GroupRef: "g1"},
	}, got)
}

func TestDedupeIncidentsOrdersSurvivorsByPosition(t *testing.T) {
	t.Parallel()

	got := DedupeIncidents([]Incident{
		{Title: "printer jam", GroupRef: "g1"},
		{Title: "vpn down", GroupRef: "g2"},
		{Title: "printer jam", GroupRef: "g3"},
	})

	assert.Equal(t, []Incident{
		{Title: "vpn down", GroupRef: "g2"},
		{Title: "printer jam", GroupRef: "g3"},
	}, got)
}

func TestDedupeIncidentsEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DedupeIncidents(nil))
	assert.Empty(t, DedupeIncidents([]Incident{}))
}

func TestDedupeIncidentsTitleEqualityIsExact(t *testing.T) {
	t.Parallel()

	got := DedupeIncidents([]Incident{
		{Title: "Disk full", GroupRef: "g1"},
		{Title: "disk full", GroupRef: "g1"},
		{Title: "Disk full ", GroupRef: "g1"},
	})

	assert.Len(t, got, 3)
}

func TestNewTrainingEntry(t *testing.T) {
	t.Parallel()

	entry := NewTrainingEntry("Mailbox quota exceeded", 12)

	assert.Equal(t, "Mailbox quota exceeded\n\n###\n\n", entry.Prompt)
	assert.Equal(t, " 12", entry.Completion)
}
