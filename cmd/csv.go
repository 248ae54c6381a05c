/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	csvInputFile  string
	csvOutputFile string
	csvColumns    []int
	csvHeader     bool
	csvParallel   int
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Normalize columns of a CSV file",
	Long: `Normalize one or more columns in a CSV file.

By default all columns are processed. Use -l to select specific columns
(0-indexed). The flag may be repeated to select multiple columns. Cells that
fail keep their original text.

Example:
  momtext csv -i visits.csv -o minutes.csv -l 2 --header`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvInputFile == csvOutputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		f, err := os.Open(csvInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input CSV: %w", err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}
		if len(records) == 0 {
			return fmt.Errorf("CSV file is empty")
		}

		colSet := make(map[int]bool, len(csvColumns))
		for _, c := range csvColumns {
			colSet[c] = true
		}
		processAll := len(csvColumns) == 0

		type cellRef struct{ row, col int }
		var refs []cellRef
		var texts []string

		out := make([][]string, len(records))
		for rowIdx, row := range records {
			out[rowIdx] = append([]string(nil), row...)
			if csvHeader && rowIdx == 0 {
				continue
			}
			for colIdx, cell := range row {
				if (!processAll && !colSet[colIdx]) || cell == "" {
					continue
				}
				refs = append(refs, cellRef{rowIdx, colIdx})
				texts = append(texts, cell)
			}
		}

		ctx := cmd.Context()
		orch, db, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}
		defer closeStore(db)

		items, batchErr := orch.ProcessBatch(ctx, texts, csvParallel)
		for i, item := range items {
			ref := refs[i]
			if item.Err != nil {
				fmt.Fprintf(os.Stderr, "Row %d col %d: %v, keeping original\n", ref.row, ref.col, item.Err)
				continue
			}
			out[ref.row][ref.col] = item.Result.Final
			saveHistory(ctx, db, item.Result)
		}

		outFile, err := os.Create(csvOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output CSV: %w", err)
		}
		defer outFile.Close()

		writer := csv.NewWriter(outFile)
		if err := writer.WriteAll(out); err != nil {
			return fmt.Errorf("failed to write output CSV: %w", err)
		}
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush output CSV: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Normalized %d cells to %s\n", len(texts), csvOutputFile)
		return batchErr
	},
}

func init() {
	rootCmd.AddCommand(csvCmd)

	csvCmd.Flags().StringVarP(&csvInputFile, "input", "i", "", "Input CSV file (required)")
	csvCmd.Flags().StringVarP(&csvOutputFile, "output", "o", "", "Output CSV file (required)")
	csvCmd.Flags().IntSliceVarP(&csvColumns, "column", "l", nil, "Column index to normalize (0-indexed, repeatable)")
	csvCmd.Flags().BoolVar(&csvHeader, "header", false, "Leave the first row untouched")
	csvCmd.Flags().IntVar(&csvParallel, "parallel", 4, "Maximum cells processed at once")

	_ = csvCmd.MarkFlagRequired("input")
	_ = csvCmd.MarkFlagRequired("output")
}
