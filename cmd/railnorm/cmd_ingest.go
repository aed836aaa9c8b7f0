package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eraschle/railnorm/internal/converter"
	"github.com/eraschle/railnorm/internal/pipeline"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/vocab"
)

func ingestCmd() *cobra.Command {
	var (
		filePath    string
		format      string
		kind        string
		kindField   string
		source      string
		mappingPath string
		sheet       string
		query       string
		delimiter   string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a client export into the canonical element model",
		Long: `Ingest reads raw records from a client source, converts field names
to the canonical process vocabulary, builds elements with derived
geometry components, and resolves cross-element references once the
whole batch exists.

Field conversion uses a YAML mapping file when --mapping is given,
otherwise field names are matched against the built-in synonym table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			maybeServeMetrics(logger)

			if source == "" {
				source = filePath
			}

			var src reader.Reader
			switch strings.ToLower(format) {
			case "csv":
				comma := ','
				if delimiter != "" {
					comma = rune(delimiter[0])
				}
				src = &reader.CSVReader{Path: filePath, Comma: comma, Kind: kind, KindField: kindField, Source: source}
			case "json":
				src = &reader.JSONReader{Path: filePath, Kind: kind, KindField: kindField, Source: source}
			case "xlsx":
				src = &reader.ExcelReader{Path: filePath, Sheet: sheet, Kind: kind, KindField: kindField, Source: source}
			case "postgres":
				if cfg.Postgres.DSN == "" {
					return fmt.Errorf("ingest: postgres source requires postgres.dsn in config")
				}
				if query == "" {
					return fmt.Errorf("ingest: postgres source requires --query")
				}
				db, openErr := reader.OpenPostgres(cfg.Postgres.DSN)
				if openErr != nil {
					return fmt.Errorf("ingest: connecting to postgres: %w", openErr)
				}
				defer func() { _ = db.Close() }()
				src = &reader.PostgresReader{DB: db, Query: query, Kind: kind, KindField: kindField, Source: source}
			default:
				return fmt.Errorf("ingest: unsupported format %q (use csv, json, xlsx or postgres)", format)
			}

			registry := vocab.NewRegistry()
			var conv converter.Converter
			if mappingPath != "" {
				mapping, loadErr := converter.LoadMapping(mappingPath)
				if loadErr != nil {
					return fmt.Errorf("ingest: loading mapping: %w", loadErr)
				}
				mc, convErr := converter.NewMappingConverter(mapping, registry)
				if convErr != nil {
					return fmt.Errorf("ingest: building converter: %w", convErr)
				}
				conv = mc
			} else {
				conv = converter.NewGenericConverter(registry)
			}

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("ingest: opening repository: %w", err)
			}

			if workers <= 0 {
				workers = cfg.Ingest.Workers
			}
			factory := newElementFactory(logger)
			p := pipeline.New(src, conv, factory, repo, logger, workers)

			result, err := p.Run(ctx)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			fmt.Printf("Read %d records, built %d elements (%d failed)\n",
				result.RecordsRead, result.ElementsBuilt, result.RecordsFailed)
			fmt.Printf("References: %d checked, %d mirrored, %d dangling\n",
				result.Link.Checked, result.Link.Mirrored, len(result.Link.Dangling))
			for _, d := range result.Link.Dangling {
				fmt.Printf("  dangling: %s -> %s %s\n", d.ElementID, d.TargetKind, d.TargetID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to input file")
	cmd.Flags().StringVar(&format, "format", "csv", "input format: csv, json, xlsx or postgres")
	cmd.Flags().StringVar(&kind, "kind", "", "element kind for every record")
	cmd.Flags().StringVar(&kindField, "kind-field", "", "field carrying the per-record element kind")
	cmd.Flags().StringVar(&source, "source", "", "source label for logs and metrics (defaults to the file path)")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "path to a client field mapping YAML")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for xlsx input")
	cmd.Flags().StringVar(&query, "query", "", "SQL query for postgres input")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter (defaults to ',')")
	cmd.Flags().IntVar(&workers, "workers", 0, "construction parallelism (defaults to config)")
	return cmd
}
