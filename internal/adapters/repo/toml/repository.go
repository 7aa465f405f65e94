package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/snowmap/internal/adapters/fsutil"
	"github.com/bnema/snowmap/internal/domain"
	"github.com/bnema/snowmap/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	legendFileMode  = 0o644
	createdAtLayout = time.DateTime
)

// LegendStore keeps the category legend of the last successful run in a TOML file.
type LegendStore struct {
	path string
}

var _ ports.LegendStore = (*LegendStore)(nil)

func NewLegendStore(path string) (*LegendStore, error) {
	if path == "" {
		return nil, errors.New("legend path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve legend path: %w", err)
	}

	return &LegendStore{path: filepath.Clean(absPath)}, nil
}

func (s *LegendStore) Path() string {
	return s.path
}

func (s *LegendStore) Load(ctx context.Context) (domain.Legend, error) {
	if err := ctx.Err(); err != nil {
		return domain.Legend{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Legend{}, domain.ErrLegendNotFound
		}
		return domain.Legend{}, fmt.Errorf("read legend file: %w", err)
	}

	var file legendFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Legend{}, fmt.Errorf("decode legend file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Legend{}, err
	}

	legend, err := fromSchema(file)
	if err != nil {
		return domain.Legend{}, fmt.Errorf("decode legend file: %w", err)
	}

	return legend, nil
}

func (s *LegendStore) Save(ctx context.Context, legend domain.Legend) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := toSchema(legend)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode legend file: %w", err)
	}

	if err := fsutil.WriteFileAtomic(s.path, data, legendFileMode); err != nil {
		return fmt.Errorf("write legend file: %w", err)
	}

	return nil
}

func toSchema(legend domain.Legend) legendFileSchema {
	entries := make([]legendEntrySchema, 0, len(legend.Entries))
	for _, entry := range legend.Entries {
		entries = append(entries, legendEntrySchema{
			Category:  int(entry.Category),
			ID:        entry.GroupID,
			Name:      entry.DisplayName,
			CreatedAt: formatTime(entry.CreatedAt),
		})
	}

	return legendFileSchema{Version: currentSchemaVersion, Categories: entries}
}

func fromSchema(file legendFileSchema) (domain.Legend, error) {
	entries := make([]domain.LegendEntry, 0, len(file.Categories))
	for i, entry := range file.Categories {
		createdAt, err := parseTime(entry.CreatedAt)
		if err != nil {
			return domain.Legend{}, fmt.Errorf("categories[%d]: %w", i, err)
		}

		entries = append(entries, domain.LegendEntry{
			Category:    domain.Category(entry.Category),
			GroupID:     entry.ID,
			DisplayName: entry.Name,
			CreatedAt:   createdAt,
		})
	}

	return domain.Legend{Entries: entries}, nil
}

// parseTime accepts the empty string written for a zero time.
func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(createdAtLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("created_at %q: %w", raw, err)
	}

	return parsed, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(createdAtLayout)
}
