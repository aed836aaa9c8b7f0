package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/eraschle/railnorm/internal/component"
	"github.com/eraschle/railnorm/internal/element"
)

func exportCmd() *cobra.Command {
	var (
		outPath    string
		format     string
		kindFilter string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored elements to JSON or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			repo, err := newRepository(logger)
			if err != nil {
				return fmt.Errorf("export: opening repository: %w", err)
			}

			kinds, err := parseKinds(kindFilter)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			elements, err := repo.List(ctx, kinds...)
			if err != nil {
				return fmt.Errorf("export: fetching elements: %w", err)
			}

			switch strings.ToLower(format) {
			case "json":
				return exportJSON(elements, outPath)
			case "xlsx":
				if outPath == "" || outPath == "-" {
					return fmt.Errorf("export: xlsx format requires --out")
				}
				return exportXLSX(elements, outPath)
			default:
				return fmt.Errorf("export: unsupported format %q (use json or xlsx)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path (- for stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or xlsx")
	cmd.Flags().StringVar(&kindFilter, "kind", "", "comma-separated element kinds to include")
	return cmd
}

func exportJSON(elements []*element.Element, outPath string) error {
	dicts := make([]map[string]any, 0, len(elements))
	for _, e := range elements {
		dicts = append(dicts, e.ToDict())
	}
	out, err := json.MarshalIndent(dicts, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encoding elements: %w", err)
	}

	if outPath == "" || outPath == "-" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("export: writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported %d elements to %s\n", len(elements), outPath)
	return nil
}

func exportXLSX(elements []*element.Element, outPath string) error {
	f := excelize.NewFile()
	elementSheet := "elements"
	paramSheet := "parameters"
	f.SetSheetName("Sheet1", elementSheet)
	if _, err := f.NewSheet(paramSheet); err != nil {
		return fmt.Errorf("export: creating sheet: %w", err)
	}

	_ = f.SetCellValue(elementSheet, "A1", "UUID")
	_ = f.SetCellValue(elementSheet, "B1", "Name")
	_ = f.SetCellValue(elementSheet, "C1", "Kind")
	_ = f.SetCellValue(elementSheet, "D1", "Domain")
	_ = f.SetCellValue(elementSheet, "E1", "Parameters")
	_ = f.SetCellValue(elementSheet, "F1", "References")
	for i, e := range elements {
		row := i + 2
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("A%d", row), e.ID())
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("B%d", row), e.Name())
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("C%d", row), string(e.Kind()))
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("D%d", row), e.Domain())
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("E%d", row), len(e.Params()))
		_ = f.SetCellValue(elementSheet, fmt.Sprintf("F%d", row), len(e.ComponentsByType(component.TypeReference)))
	}

	_ = f.SetCellValue(paramSheet, "A1", "Element UUID")
	_ = f.SetCellValue(paramSheet, "B1", "Name")
	_ = f.SetCellValue(paramSheet, "C1", "Value")
	_ = f.SetCellValue(paramSheet, "D1", "Datatype")
	_ = f.SetCellValue(paramSheet, "E1", "Process")
	_ = f.SetCellValue(paramSheet, "F1", "Unit")
	row := 2
	for _, e := range elements {
		for _, p := range e.Params() {
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("A%d", row), e.ID())
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("B%d", row), p.Name)
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%v", p.Value))
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("D%d", row), string(p.DataType))
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("E%d", row), string(p.Process))
			_ = f.SetCellValue(paramSheet, fmt.Sprintf("F%d", row), string(p.Unit))
			row++
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("export: writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported %d elements to %s\n", len(elements), outPath)
	return nil
}
