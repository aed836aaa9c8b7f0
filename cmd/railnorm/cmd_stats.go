package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eraschle/railnorm/internal/component"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show repository statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("stats: opening repository: %w", err)
			}

			elements, err := repo.List(ctx)
			if err != nil {
				return fmt.Errorf("stats: fetching elements: %w", err)
			}

			byKind := map[string]int{}
			var withLocation, withDimension, references int
			for _, e := range elements {
				byKind[string(e.Kind())]++
				if e.HasComponent("location") {
					withLocation++
				}
				if e.HasComponent("dimension") {
					withDimension++
				}
				references += len(e.ComponentsByType(component.TypeReference))
			}

			fmt.Printf("Total elements: %d\n\n", len(elements))

			fmt.Println("By kind:")
			kinds := make([]string, 0, len(byKind))
			for k := range byKind {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				fmt.Printf("  %-16s %d\n", k, byKind[k])
			}

			fmt.Printf("\nWith location:  %d\n", withLocation)
			fmt.Printf("With dimension: %d\n", withDimension)
			fmt.Printf("References:     %d\n", references)
			return nil
		},
	}
}
