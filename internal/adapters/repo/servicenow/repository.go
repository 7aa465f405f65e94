package servicenow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bnema/snowmap/internal/adapters/fsutil"
	"github.com/bnema/snowmap/internal/domain"
	"github.com/bnema/snowmap/internal/ports"
)

type IncidentFile struct {
	path string
}

var _ ports.IncidentSource = (*IncidentFile)(nil)

func NewIncidentFile(path string) *IncidentFile {
	return &IncidentFile{path: path}
}

func (f *IncidentFile) LoadIncidents(ctx context.Context) ([]domain.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var export incidentExport
	if err := readJSON(f.path, &export); err != nil {
		return nil, fmt.Errorf("incidents: %w", err)
	}
	if err := export.validate(); err != nil {
		return nil, fmt.Errorf("incidents: decode %s: %w", f.path, err)
	}

	incidents := make([]domain.Incident, 0, len(*export.Records))
	for _, record := range *export.Records {
		incidents = append(incidents, domain.Incident{
			Title:    *record.ShortDescription,
			GroupRef: *record.AssignmentGroup,
		})
	}

	return incidents, nil
}

type GroupFile struct {
	path string
}

var _ ports.GroupSource = (*GroupFile)(nil)

func NewGroupFile(path string) *GroupFile {
	return &GroupFile{path: path}
}

func (f *GroupFile) LoadGroups(ctx context.Context) ([]domain.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var export groupExport
	if err := readJSON(f.path, &export); err != nil {
		return nil, fmt.Errorf("assignment groups: %w", err)
	}
	if err := export.validate(); err != nil {
		return nil, fmt.Errorf("assignment groups: decode %s: %w", f.path, err)
	}

	groups := make([]domain.Group, 0, len(*export.Result))
	for _, record := range *export.Result {
		groups = append(groups, domain.Group{
			ID:          *record.SysID,
			DisplayName: *record.Name,
			CreatedAt:   time.Time(*record.SysCreatedOn),
		})
	}

	return groups, nil
}

// DatasetFile writes the fine-tuning dataset as a pretty-printed JSON array.
type DatasetFile struct {
	path string
}

var _ ports.DatasetWriter = (*DatasetFile)(nil)

func NewDatasetFile(path string) *DatasetFile {
	return &DatasetFile{path: path}
}

func (f *DatasetFile) WriteEntries(ctx context.Context, entries []domain.TrainingEntry) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	encoded := make([]trainingEntrySchema, 0, len(entries))
	for _, entry := range entries {
		encoded = append(encoded, trainingEntrySchema{Prompt: entry.Prompt, Completion: entry.Completion})
	}

	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode dataset: %w", err)
	}

	if err := fsutil.WriteFileAtomic(f.path, data, fsutil.DefaultFileMode); err != nil {
		return 0, fmt.Errorf("write dataset to %s: %w", f.path, err)
	}

	return len(entries), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
