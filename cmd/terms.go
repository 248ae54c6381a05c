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

	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Manage protected terms",
	Long: `Protected terms are words the grammar rules never rewrite, such as
project names or site jargon. Terms stored here are added to those in the
config file and to the built-in list.`,
}

var termsAddCmd = &cobra.Command{
	Use:   "add <term>...",
	Short: "Add protected terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := requireStore()
		if err != nil {
			return err
		}
		defer db.Close()

		for _, term := range args {
			if err := db.AddProtectedTerm(cmd.Context(), term); err != nil {
				return fmt.Errorf("failed to add %q: %w", term, err)
			}
		}
		fmt.Printf("Added %d terms.\n", len(args))
		return nil
	},
}

var termsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored and configured protected terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := requireStore()
		if err != nil {
			return err
		}
		defer db.Close()

		terms, err := db.ProtectedTerms(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list terms: %w", err)
		}
		for _, t := range terms {
			fmt.Println(t)
		}
		for _, t := range cfg.ProtectedTerms {
			fmt.Printf("%s (config)\n", t)
		}
		return nil
	},
}

var termsRemoveCmd = &cobra.Command{
	Use:   "remove <term>",
	Short: "Remove a stored protected term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := requireStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ok, err := db.DeleteProtectedTerm(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove term: %w", err)
		}
		if !ok {
			return fmt.Errorf("term not found: %s", args[0])
		}
		fmt.Printf("Removed term: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)

	termsCmd.AddCommand(termsAddCmd)
	termsCmd.AddCommand(termsListCmd)
	termsCmd.AddCommand(termsRemoveCmd)
}
