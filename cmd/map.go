package cmd

import (
	"fmt"

	"github.com/bnema/snowmap/internal/adapters/render/histogram"
	"github.com/bnema/snowmap/internal/adapters/repo/servicenow"
	tomlrepo "github.com/bnema/snowmap/internal/adapters/repo/toml"
	"github.com/bnema/snowmap/internal/application"
	"github.com/bnema/snowmap/internal/config"
	"github.com/bnema/snowmap/internal/logger"
	"github.com/bnema/snowmap/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMapCmd(app *app) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "map <incidents.json> <groups.json> <output.json>",
		Short: "Map incidents to assignment group categories and write the dataset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, app, args[0], args[1], args[2], configFile)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Log progress checkpoints and run statistics")
	cmd.Flags().BoolP("stats", "s", false, "Print the assignment group histogram")
	cmd.Flags().IntP("trim", "t", 0, "Keep at most N incidents per assignment group (0 keeps all)")
	cmd.Flags().String("legend", "", "Category legend file to compare against and update")
	cmd.Flags().String("report", "", "Write a distribution workbook (.xlsx)")
	cmd.Flags().Int("width", 0, "Histogram width in columns (default: terminal width or 80)")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: $HOME/.config/snowmap/config.toml)")

	return cmd
}

func runMap(cmd *cobra.Command, app *app, incidentsPath, groupsPath, outputPath, configFile string) error {
	cfg, err := config.Load(viper.New(), cmd.Flags(), configFile, app.homeDir)
	if err != nil {
		return err
	}

	base, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	log := base.WithRun()

	var legends ports.LegendStore
	if cfg.Legend != "" {
		store, err := tomlrepo.NewLegendStore(cfg.Legend)
		if err != nil {
			return fmt.Errorf("wire legend store: %w", err)
		}
		legends = store
	}

	svc := application.NewMapperService(
		servicenow.NewIncidentFile(incidentsPath),
		servicenow.NewGroupFile(groupsPath),
		servicenow.NewDatasetFile(outputPath),
		legends,
		log,
	)

	result, err := svc.Run(cmd.Context(), application.RunOptions{
		Verbose: cfg.Verbose,
		Trim:    cfg.TrimBound(),
	})
	if err != nil {
		return err
	}

	// The dataset is already in place here, so a report failure is only a warning.
	if cfg.Report != "" {
		if err := app.reportWriter(cfg.Report, result); err != nil {
			log.WithError(err).WithField("path", cfg.Report).Warn("distribution report not written")
		} else if cfg.Verbose {
			log.WithField("path", cfg.Report).Info("distribution report written")
		}
	}

	if cfg.Verbose {
		log.WithFields(logrus.Fields{
			"incidents_read":    result.Stats.IncidentsRead,
			"incidents_deduped": result.Stats.IncidentsDeduped,
			"groups":            result.Stats.Groups,
			"categories":        result.Stats.Categories,
			"trimmed":           result.Stats.Trimmed,
			"entries_written":   result.Stats.EntriesWritten,
		}).Info("run statistics")
	}

	if !cfg.Stats {
		return nil
	}

	return writeHistogram(cmd, app, cfg, result)
}

func writeHistogram(cmd *cobra.Command, app *app, cfg config.Config, result application.RunResult) error {
	var provider ports.WidthProvider = ports.FixedWidth(cfg.Histogram.Width)
	if cfg.Histogram.Width == 0 {
		provider = app.widthProvider(cmd)
	}

	rendered, err := app.histogramRenderer(result.Distribution, histogram.Options{
		Width:    ports.ResolveWidth(provider),
		BarChar:  cfg.Histogram.BarChar,
		FillChar: cfg.Histogram.FillChar,
	})
	if err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
