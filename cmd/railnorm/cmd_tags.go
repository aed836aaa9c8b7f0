package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eraschle/railnorm/internal/vocab"
)

func tagsCmd() *cobra.Command {
	var refsOnly bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the built-in process tag vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := vocab.NewRegistry()

			for _, def := range registry.Definitions() {
				if refsOnly && !def.Tag.IsReference() {
					continue
				}
				unit := string(def.DefaultUnit)
				if unit == "" {
					unit = "-"
				}
				fmt.Printf("%-24s %-10s %-6s %s\n", def.Tag, def.DataType, unit, def.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refsOnly, "references", false, "show only reference-declaring tags")
	return cmd
}
