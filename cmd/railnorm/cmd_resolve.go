package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eraschle/railnorm/internal/repository"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Mirror declared references across the stored batch",
		Long: `Resolve walks every stored element and adds the backward edge for
each two-way reference whose target exists. References whose target
is missing are reported as dangling and left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("resolve: opening repository: %w", err)
			}

			linker := repository.NewLinker(repo, logger)
			report, err := linker.Resolve(ctx)
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}

			if err := repo.Flush(ctx); err != nil {
				return fmt.Errorf("resolve: persisting repository: %w", err)
			}

			fmt.Printf("Checked %d references, mirrored %d\n", report.Checked, report.Mirrored)
			if len(report.Dangling) > 0 {
				fmt.Printf("Dangling references: %d\n", len(report.Dangling))
				for _, d := range report.Dangling {
					fmt.Printf("  %s -> %s %s\n", d.ElementID, d.TargetKind, d.TargetID)
				}
			}
			return nil
		},
	}
}
