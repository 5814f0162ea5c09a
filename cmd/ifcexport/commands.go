package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stratobim/ifcexport/config"
	"github.com/stratobim/ifcexport/export"
	"github.com/stratobim/ifcexport/levels"
	"github.com/stratobim/ifcexport/model"
	"github.com/stratobim/ifcexport/psets"
	"github.com/stratobim/ifcexport/watch"
)

func newExportCommand() *cobra.Command {
	var (
		flagOutput  string
		flagFormat  string
		flagProfile string
		flagWatch   bool
	)

	cmd := &cobra.Command{
		Use:   "export <snapshot.yaml>",
		Short: "Export a model snapshot to an exchange format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if flagFormat != "" {
				cfg.Export.Format = flagFormat
			}
			if flagProfile != "" {
				cfg.Export.Profile = flagProfile
			}

			snapshotPath := args[0]
			run := func(ctx context.Context) error {
				return runExport(ctx, cfg, logger, snapshotPath, flagOutput)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := run(ctx); err != nil || !flagWatch {
				return err
			}
			return watchAndRerun(ctx, logger, snapshotPath, run)
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format (spf, xml, json)")
	cmd.Flags().StringVarP(&flagProfile, "profile", "p", "", "export profile (minimal, standard, cobie)")
	cmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "re-export when the snapshot changes")
	return cmd
}

// runExport executes one full export pass over the snapshot.
func runExport(ctx context.Context, cfg *config.Config, logger *slog.Logger, snapshotPath, outputPath string) error {
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}
	profile, err := export.ParseProfile(cfg.Export.Profile)
	if err != nil {
		return err
	}

	snapshot, err := model.LoadSnapshot(snapshotPath)
	if err != nil {
		return err
	}

	registry := psets.Default
	scheduleDefs := cfg.Psets.ScheduleAsPsets && len(snapshot.Schedules) > 0
	if len(cfg.Psets.CustomFiles) > 0 || scheduleDefs {
		registry = psets.NewRegistry()
		registry.MustRegister(psets.BuiltinDefinitions()...)
		for _, path := range cfg.Psets.CustomFiles {
			if err := registry.LoadFile(path); err != nil {
				return err
			}
		}
	}
	if scheduleDefs {
		for _, sched := range snapshot.Schedules {
			def, err := psets.FromSchedule(toSchedule(sched))
			if err != nil {
				logger.Warn("skipping schedule", "schedule", sched.Name, "error", err)
				continue
			}
			if err := registry.Register(def); err != nil {
				logger.Warn("skipping schedule", "schedule", sched.Name, "error", err)
			}
		}
	}

	exporter, err := export.NewExporter(snapshot, export.Options{
		SplitByLevel: cfg.Export.SplitByLevel,
		Profile:      profile,
		Include:      cfg.Export.Include,
		Exclude:      cfg.Export.Exclude,
		Workers:      cfg.Export.Workers,
		Registry:     registry,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	records, err := exporter.Run(ctx)
	if err != nil {
		return err
	}

	writer, err := export.NewWriter(format)
	if err != nil {
		return err
	}
	out, err := writer.Write(records)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote export", "path", outputPath, "entities", len(records))
	return nil
}

// toSchedule converts the snapshot's serialized schedule form.
func toSchedule(s model.ScheduleData) psets.Schedule {
	columns := make([]psets.ScheduleColumn, 0, len(s.Columns))
	for _, col := range s.Columns {
		columns = append(columns, psets.ScheduleColumn{
			Heading: col.Heading,
			Type:    psets.FieldType(col.Type),
		})
	}
	return psets.Schedule{Name: s.Name, EntityTypes: s.EntityTypes, Columns: columns}
}

// watchAndRerun blocks re-running the export on every settled snapshot change.
func watchAndRerun(ctx context.Context, logger *slog.Logger, snapshotPath string, run func(context.Context) error) error {
	watcher, err := watch.NewWatcher(watch.Config{Path: snapshotPath, Logger: logger})
	if err != nil {
		return err
	}
	defer watcher.Stop()
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Triggers():
			if err := run(ctx); err != nil {
				logger.Error("re-export failed", "error", err)
			}
		}
	}
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels <snapshot.yaml>",
		Short: "Print the level catalog and building stories of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadConfig(); err != nil {
				return err
			}
			snapshot, err := model.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			catalog, err := levels.NewCatalog(snapshot)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tELEVATION\tSTORY\tUP TO")
			for _, lvl := range catalog.All() {
				upTo := "-"
				if lvl.UpToLevelID.Valid() {
					upTo = fmt.Sprint(lvl.UpToLevelID)
				}
				fmt.Fprintf(tw, "%d\t%s\t%g\t%v\t%s\n",
					lvl.ID, lvl.Name, lvl.Elevation, lvl.IsBuildingStory, upTo)
			}
			return tw.Flush()
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported export formats",
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tEXTENSION\tMIME TYPE\tDESCRIPTION")
			for _, name := range export.FormatNames() {
				info, _ := export.GetFormatInfo(export.Format(name))
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					info.Name, info.Extension, info.MIMEType, info.Description)
			}
			_ = tw.Flush()
		},
	}
}
