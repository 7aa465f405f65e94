package application

import (
	"testing"

	"github.com/bnema/snowmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverTrimBoundOfTwo(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	r := newResolver(domain.AssignCategories(groups), groups, 2)

	entries, err := r.resolve([]domain.Incident{
		{Title: "first", GroupRef: "g1"},
		{Title: "second", GroupRef: "g1"},
		{Title: "third", GroupRef: "g1"},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TrainingEntry{
		{Prompt: "first\n\n###\n\n", Completion: " 0"},
		{Prompt: "second\n\n###\n\n", Completion: " 0"},
	}, entries)
	assert.Equal(t, 2, r.distribution.Count("Alpha [0]"))
	assert.Equal(t, 1, r.trimmed)
}

func TestResolverWithoutTrimKeepsEverything(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	r := newResolver(domain.AssignCategories(groups), groups, 0)

	entries, err := r.resolve([]domain.Incident{
		{Title: "first", GroupRef: "g1"},
		{Title: "second", GroupRef: "g1"},
		{Title: "third", GroupRef: "g1"},
	})
	require.NoError(t, err)

	assert.Len(t, entries, 3)
	assert.Equal(t, 3, r.distribution.Total())
	assert.Zero(t, r.trimmed)
}

func TestResolverTrimIsKeyedByGroupReference(t *testing.T) {
	t.Parallel()

	// Two groups share a display name; the cap applies per reference, not per name.
	groups := []domain.Group{
		{ID: "g1", DisplayName: "Ops", CreatedAt: groupCreatedAt("2020-01-01 00:00:00")},
		{ID: "g2", DisplayName: "Ops", CreatedAt: groupCreatedAt("2021-01-01 00:00:00")},
	}
	r := newResolver(domain.AssignCategories(groups), groups, 1)

	entries, err := r.resolve([]domain.Incident{
		{Title: "a", GroupRef: "g1"},
		{Title: "b", GroupRef: "g2"},
		{Title: "c", GroupRef: "g1"},
	})
	require.NoError(t, err)

	assert.Len(t, entries, 2)
	assert.Equal(t, 1, r.distribution.Count("Ops [0]"))
	assert.Equal(t, 1, r.distribution.Count("Ops [1]"))
}

func TestResolverFailsWhenGroupNameTableMissesReference(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	r := newResolver(domain.AssignCategories(groups), groups[:1], 0)

	_, err := r.resolve([]domain.Incident{{Title: "x", GroupRef: "g2"}})

	var refErr *domain.UnresolvedReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, domain.LookupTableGroups, refErr.Table)
	assert.Equal(t, "g2", refErr.Ref)
	assert.Equal(t, "x", refErr.Title)
}

func TestResolverStopsAtFirstUnresolvedReference(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	r := newResolver(domain.AssignCategories(groups), groups, 0)

	_, err := r.resolve([]domain.Incident{
		{Title: "ok", GroupRef: "g1"},
		{Title: "bad-1", GroupRef: "missing-1"},
		{Title: "bad-2", GroupRef: "missing-2"},
	})

	var refErr *domain.UnresolvedReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "missing-1", refErr.Ref)
}
