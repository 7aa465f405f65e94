package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/snowmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewLegendStore(filepath.Join(t.TempDir(), "legend.toml"))
	require.NoError(t, err)

	legend := domain.Legend{Entries: []domain.LegendEntry{
		{Category: 0, GroupID: "g1", DisplayName: "Service Desk", CreatedAt: time.Date(2019, 11, 20, 12, 30, 5, 0, time.UTC)},
		{Category: 1, GroupID: "g2", DisplayName: "Netzwerk & Telefonie", CreatedAt: time.Date(2022, 3, 1, 8, 0, 0, 0, time.UTC)},
	}}

	require.NoError(t, store.Save(context.Background(), legend))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, legend, got)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[categories]]")
	assert.Contains(t, string(data), "2019-11-20 12:30:05")
}

func TestLegendStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store, err := NewLegendStore(filepath.Join(t.TempDir(), "legend.toml"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrLegendNotFound)
}

func TestLegendStoreRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "legend.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o644))

	store, err := NewLegendStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported category legend schema version 2")
}

func TestLegendStoreRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "legend.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [\n"), 0o644))

	store, err := NewLegendStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode legend file")
}

func TestLegendStoreRejectsMalformedCreatedAt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "legend.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[[categories]]
category = 0
id = "g1"
name = "Alpha"
created_at = "2019-11-20 12:30:05"

[[categories]]
category = 1
id = "g2"
name = "Beta"
created_at = "20/11/2019"
`), 0o644))

	store, err := NewLegendStore(path)
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decode legend file: categories[1]: created_at "20/11/2019"`)
	assert.Empty(t, got.Entries)
}

func TestLegendStoreDefaultsMissingVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "legend.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[[categories]]
category = 3
id = "g7"
name = "Legacy"
`), 0o644))

	store, err := NewLegendStore(path)
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Legend{Entries: []domain.LegendEntry{{Category: 3, GroupID: "g7", DisplayName: "Legacy"}}}, got)
}

func TestNewLegendStoreRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewLegendStore("")
	require.Error(t, err)
}
