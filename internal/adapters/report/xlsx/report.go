package xlsx

import (
	"errors"
	"fmt"

	"github.com/bnema/snowmap/internal/adapters/fsutil"
	"github.com/bnema/snowmap/internal/application"
	"github.com/xuri/excelize/v2"
)

const (
	distributionSheet = "Distribution"
	summarySheet      = "Summary"
	defaultSheet      = "Sheet1"
	// builtin number format "0.00%"
	percentNumFmt = 10
)

// WriteReport stores the distribution and run statistics of result as an xlsx workbook.
func WriteReport(path string, result application.RunResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, distributionSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: percentNumFmt})
	if err != nil {
		return fmt.Errorf("create percent style: %w", err)
	}

	if err := writeDistribution(f, result, headerStyle, percentStyle); err != nil {
		return err
	}
	if err := writeSummary(f, result.Stats, headerStyle); err != nil {
		return err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}

	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}

	return nil
}

func writeDistribution(f *excelize.File, result application.RunResult, headerStyle, percentStyle int) error {
	if err := f.SetSheetRow(distributionSheet, "A1", &[]any{"Group", "Category", "Count", "Share"}); err != nil {
		return fmt.Errorf("write distribution header: %w", err)
	}
	if err := f.SetCellStyle(distributionSheet, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("style distribution header: %w", err)
	}

	total := result.Distribution.Total()
	ranked := result.Distribution.Ranked()
	for i, entry := range ranked {
		share := 0.0
		if total > 0 {
			share = float64(entry.Count) / float64(total)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(distributionSheet, cell, &[]any{entry.DisplayName, int(entry.Category), entry.Count, share}); err != nil {
			return fmt.Errorf("write distribution row %d: %w", i+2, err)
		}
	}

	if len(ranked) > 0 {
		last := fmt.Sprintf("D%d", len(ranked)+1)
		if err := f.SetCellStyle(distributionSheet, "D2", last, percentStyle); err != nil {
			return fmt.Errorf("style share column: %w", err)
		}
	}

	return f.SetColWidth(distributionSheet, "A", "A", 40)
}

func writeSummary(f *excelize.File, stats application.RunStats, headerStyle int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]any{
		{"Metric", "Value"},
		{"Incidents read", stats.IncidentsRead},
		{"Incidents after de-duplication", stats.IncidentsDeduped},
		{"Assignment groups", stats.Groups},
		{"Categories", stats.Categories},
		{"Trimmed incidents", stats.Trimmed},
		{"Entries written", stats.EntriesWritten},
	}

	var errs []error
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("style summary header: %w", err)
	}

	return f.SetColWidth(summarySheet, "A", "A", 34)
}
