package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var kindFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("list: opening repository: %w", err)
			}

			kinds, err := parseKinds(kindFilter)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			elements, err := repo.List(ctx, kinds...)
			if err != nil {
				return fmt.Errorf("list: fetching elements: %w", err)
			}

			for i, e := range elements {
				fmt.Printf("[%d] [%s] %s\n", i+1, e.Kind(), truncate(e.Name(), 60))
				fmt.Printf("    ID: %s | Params: %d | Components: %d\n", e.ID(), len(e.Params()), len(e.Components()))
			}

			if len(elements) == 0 {
				fmt.Println("No elements found.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFilter, "kind", "", "comma-separated element kinds to include")
	return cmd
}
