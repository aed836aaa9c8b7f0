package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <element-id>",
		Short: "Show one element with its parameters and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("show: opening repository: %w", err)
			}

			e, err := repo.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("show: %w", err)
			}

			out, err := json.MarshalIndent(e, "", "  ")
			if err != nil {
				return fmt.Errorf("show: encoding element: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}
