package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/snowmap/internal/adapters/render/histogram"
	xlsxreport "github.com/bnema/snowmap/internal/adapters/report/xlsx"
	"github.com/bnema/snowmap/internal/adapters/terminal"
	"github.com/bnema/snowmap/internal/application"
	"github.com/bnema/snowmap/internal/domain"
	"github.com/bnema/snowmap/internal/ports"
	"github.com/spf13/cobra"
)

type app struct {
	homeDir           string
	histogramRenderer func(*domain.Distribution, histogram.Options) (string, error)
	reportWriter      func(string, application.RunResult) error
	widthProvider     func(*cobra.Command) ports.WidthProvider
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return &app{
		homeDir:           homeDir,
		histogramRenderer: histogram.Render,
		reportWriter:      xlsxreport.WriteReport,
		widthProvider:     outputWidthProvider,
	}, nil
}

// outputWidthProvider measures the terminal behind the command's stdout. Buffers and pipes have no
// width and fall back to the default.
func outputWidthProvider(cmd *cobra.Command) ports.WidthProvider {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return nil
	}
	return terminal.NewWidthProvider(file)
}
