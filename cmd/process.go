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
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/momtext/internal"
)

var (
	processFile string
	processJSON bool
)

var processCmd = &cobra.Command{
	Use:   "process [text]",
	Short: "Normalize a note into minutes-of-meeting English",
	Long: `Process a single note: detect its script, translate Gujarati to English,
and rewrite the English with the configured refiner or the grammar rules.

The note is taken from the arguments, from --file, or from stdin.

Example:
  momtext process "slab casting done yesterday, client not came"
  momtext process -f note.txt --refiner gemini
  cat note.txt | momtext process --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, processFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		orch, db, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}
		defer closeStore(db)

		result, err := orch.ProcessText(ctx, text)
		if err != nil {
			return err
		}
		saveHistory(ctx, db, result)

		return printResult(result, processJSON)
	},
}

func printResult(result *internal.ProcessingResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	fmt.Println(result.Final)
	return nil
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "Read the note from a file (- for stdin)")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "Print the full processing result as JSON")
}
