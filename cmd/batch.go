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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/momtext/internal"
)

var (
	batchInput    string
	batchOutput   string
	batchParallel int
	batchJSON     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a file of notes separated by blank lines",
	Long: `Process every note in a file. Notes are separated by one or more blank
lines and are processed concurrently; output keeps the input order.

Plain output separates notes with a blank line. With --json one result is
written per line.

Example:
  momtext batch -i visits.txt -o minutes.txt --parallel 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(nil, batchInput, cmd.InOrStdin())
		if err != nil {
			return err
		}
		notes := splitNotes(text)
		if len(notes) == 0 {
			return fmt.Errorf("no notes found in input")
		}

		ctx := cmd.Context()
		orch, db, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}
		defer closeStore(db)

		items, batchErr := orch.ProcessBatch(ctx, notes, batchParallel)

		var out io.Writer = os.Stdout
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		var results []*internal.ProcessingResult
		failed := 0
		enc := json.NewEncoder(out)
		for i, item := range items {
			if item.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "Note %d: %v\n", i+1, item.Err)
				if !batchJSON {
					fmt.Fprintln(out, strings.TrimSpace(notes[i]))
					fmt.Fprintln(out)
				}
				continue
			}
			results = append(results, item.Result)
			for _, w := range item.Result.Warnings {
				fmt.Fprintf(os.Stderr, "Note %d: warning: %s\n", i+1, w)
			}
			if batchJSON {
				if err := enc.Encode(item.Result); err != nil {
					return fmt.Errorf("failed to write result: %w", err)
				}
				continue
			}
			fmt.Fprintln(out, item.Result.Final)
			fmt.Fprintln(out)
		}
		saveHistory(ctx, db, results...)

		fmt.Fprintf(os.Stderr, "Processed %d notes, %d failed\n", len(notes)-failed, failed)
		return batchErr
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "-", "Input file (- for stdin)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output file (default stdout)")
	batchCmd.Flags().IntVar(&batchParallel, "parallel", 4, "Maximum notes processed at once")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Write one JSON result per line")
}
