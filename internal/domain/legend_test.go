package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLegendFollowsCategoryOrder(t *testing.T) {
	t.Parallel()

	legend := NewLegend(AssignCategories([]Group{
		{ID: "g2", DisplayName: "Beta", CreatedAt: createdAt("2021-01-01 00:00:00")},
		{ID: "g1", DisplayName: "Alpha", CreatedAt: createdAt("2020-01-01 00:00:00")},
	}))

	require.Len(t, legend.Entries, 2)
	assert.Equal(t, LegendEntry{Category: 0, GroupID: "g1", DisplayName: "Alpha", CreatedAt: createdAt("2020-01-01 00:00:00")}, legend.Entries[0])
	assert.Equal(t, LegendEntry{Category: 1, GroupID: "g2", DisplayName: "Beta", CreatedAt: createdAt("2021-01-01 00:00:00")}, legend.Entries[1])
}

func TestNewLegendSkipsShadowedDuplicateIDs(t *testing.T) {
	t.Parallel()

	legend := NewLegend(AssignCategories([]Group{
		{ID: "g1", DisplayName: "Old", CreatedAt: createdAt("2020-01-01 00:00:00")},
		{ID: "g1", DisplayName: "New", CreatedAt: createdAt("2021-01-01 00:00:00")},
	}))

	require.Len(t, legend.Entries, 1)
	assert.Equal(t, "New", legend.Entries[0].DisplayName)
	assert.Equal(t, Category(1), legend.Entries[0].Category)
}

func TestLegendDriftReportsChangedCategoriesOnly(t *testing.T) {
	t.Parallel()

	previous := Legend{Entries: []LegendEntry{
		{Category: 0, GroupID: "g1", DisplayName: "Alpha"},
		{Category: 1, GroupID: "g2", DisplayName: "Beta"},
		{Category: 2, GroupID: "gone", DisplayName: "Retired"},
	}}
	current := Legend{Entries: []LegendEntry{
		{Category: 0, GroupID: "g0", DisplayName: "Backdated"},
		{Category: 1, GroupID: "g1", DisplayName: "Alpha"},
		{Category: 2, GroupID: "g2", DisplayName: "Beta"},
	}}

	drift := previous.Drift(current)

	assert.Equal(t, []CategoryDrift{
		{GroupID: "g1", DisplayName: "Alpha", Previous: 0, Current: 1},
		{GroupID: "g2", DisplayName: "Beta", Previous: 1, Current: 2},
	}, drift)
}

func TestLegendDriftEmptyWhenStable(t *testing.T) {
	t.Parallel()

	legend := Legend{Entries: []LegendEntry{{Category: 0, GroupID: "g1"}}}

	assert.Empty(t, legend.Drift(legend))
	assert.Empty(t, Legend{}.Drift(legend))
}

func TestUnresolvedReferenceErrorUnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	var err error = &UnresolvedReferenceError{Ref: "g404", Title: "VPN down", Table: LookupTableCategories}

	assert.ErrorIs(t, err, ErrUnresolvedReference)
	assert.Contains(t, err.Error(), `"g404"`)
	assert.Contains(t, err.Error(), "categories table")
}
