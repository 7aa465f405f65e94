package application

import "github.com/bnema/snowmap/internal/domain"

type RunStats struct {
	IncidentsRead    int
	IncidentsDeduped int
	Groups           int
	Categories       int
	Trimmed          int
	EntriesWritten   int
}

type RunResult struct {
	Entries      []domain.TrainingEntry
	Distribution *domain.Distribution
	Assignment   domain.CategoryAssignment
	Drift        []domain.CategoryDrift
	Stats        RunStats
}
