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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	normalizeFile    string
	normalizeExplain bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text]",
	Short: "Apply the grammar rules only",
	Long: `Rewrite English text with the built-in grammar rules, without translation
or AI refinement. Nothing is sent over the network.

With --explain every rule that changed the text is listed on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, normalizeFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(db)

		out, steps := buildPipeline(ctx, db).Trace(text)
		if normalizeExplain {
			for i, s := range steps {
				fmt.Fprintf(os.Stderr, "%2d. %s (%s)\n    - %s\n    + %s\n", i+1, s.Rule, s.Category, s.Before, s.After)
			}
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVarP(&normalizeFile, "file", "f", "", "Read the text from a file (- for stdin)")
	normalizeCmd.Flags().BoolVar(&normalizeExplain, "explain", false, "List the rules that changed the text")
}
