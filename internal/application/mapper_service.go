package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/snowmap/internal/domain"
	"github.com/bnema/snowmap/internal/ports"
	"github.com/sirupsen/logrus"
)

// MapperService maps an incident export and a group export to a fine-tuning dataset.
type MapperService struct {
	incidents ports.IncidentSource
	groups    ports.GroupSource
	writer    ports.DatasetWriter
	legends   ports.LegendStore
	log       logrus.FieldLogger
}

// NewMapperService wires the pipeline. legends may be nil to skip the category legend; a nil
// logger discards all output.
func NewMapperService(incidents ports.IncidentSource, groups ports.GroupSource, writer ports.DatasetWriter, legends ports.LegendStore, log logrus.FieldLogger) *MapperService {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &MapperService{
		incidents: incidents,
		groups:    groups,
		writer:    writer,
		legends:   legends,
		log:       log,
	}
}

// Run executes the whole pipeline. Nothing is written unless every incident resolves.
func (s *MapperService) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	var stats RunStats

	s.checkpoint(opts, "loading incidents", nil)
	incidents, err := s.incidents.LoadIncidents(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load incidents: %w", err)
	}
	stats.IncidentsRead = len(incidents)
	s.checkpoint(opts, "incidents loaded", logrus.Fields{"incidents": stats.IncidentsRead})

	deduped := domain.DedupeIncidents(incidents)
	stats.IncidentsDeduped = len(deduped)
	s.checkpoint(opts, "incidents de-duplicated", logrus.Fields{"incidents": stats.IncidentsDeduped})

	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}

	s.checkpoint(opts, "loading assignment groups", nil)
	groups, err := s.groups.LoadGroups(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load assignment groups: %w", err)
	}
	stats.Groups = len(groups)
	s.checkpoint(opts, "assignment groups loaded", logrus.Fields{"groups": stats.Groups})

	assignment := domain.AssignCategories(groups)
	stats.Categories = assignment.Len()
	legend := domain.NewLegend(assignment)

	previous, drift, err := s.compareLegend(ctx, legend)
	if err != nil {
		return RunResult{}, err
	}

	s.checkpoint(opts, "mapping data", logrus.Fields{"categories": stats.Categories, "trim": opts.Trim})
	r := newResolver(assignment, groups, opts.Trim)
	entries, err := r.resolve(deduped)
	if err != nil {
		return RunResult{}, fmt.Errorf("map incidents: %w", err)
	}
	stats.Trimmed = r.trimmed
	s.checkpoint(opts, "mapping complete", logrus.Fields{"entries": len(entries), "trimmed": stats.Trimmed})

	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}

	// Nothing is written before the legend is saved. A failed dataset write restores the previous
	// legend.
	if s.legends != nil {
		if err := s.legends.Save(ctx, legend); err != nil {
			return RunResult{}, fmt.Errorf("save category legend: %w", err)
		}
		s.checkpoint(opts, "category legend saved", logrus.Fields{"categories": len(legend.Entries)})
	}

	written, err := s.writer.WriteEntries(ctx, entries)
	if err != nil {
		s.restoreLegend(ctx, previous)
		return RunResult{}, fmt.Errorf("write dataset: %w", err)
	}
	stats.EntriesWritten = written
	s.checkpoint(opts, "entries written", logrus.Fields{"entries": written})

	return RunResult{
		Entries:      entries,
		Distribution: r.distribution,
		Assignment:   assignment,
		Drift:        drift,
		Stats:        stats,
	}, nil
}

// compareLegend returns the stored legend, nil when none exists yet, and its drift from current.
func (s *MapperService) compareLegend(ctx context.Context, current domain.Legend) (*domain.Legend, []domain.CategoryDrift, error) {
	if s.legends == nil {
		return nil, nil, nil
	}

	previous, err := s.legends.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrLegendNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("load category legend: %w", err)
	}

	drift := previous.Drift(current)
	for _, d := range drift {
		s.log.WithFields(logrus.Fields{
			"group_id": d.GroupID,
			"group":    d.DisplayName,
			"previous": d.Previous,
			"current":  d.Current,
		}).Warn("category changed since the previous legend")
	}

	return &previous, drift, nil
}

// restoreLegend puts the stored legend back after a failed dataset write. A legend saved by the
// first run has nothing to restore and stays; it describes the current groups either way.
func (s *MapperService) restoreLegend(ctx context.Context, previous *domain.Legend) {
	if s.legends == nil || previous == nil {
		return
	}

	if err := s.legends.Save(context.WithoutCancel(ctx), *previous); err != nil {
		s.log.WithError(err).Warn("restore previous category legend")
	}
}

func (s *MapperService) checkpoint(opts RunOptions, msg string, fields logrus.Fields) {
	if !opts.Verbose {
		return
	}
	s.log.WithFields(fields).Info(msg)
}
