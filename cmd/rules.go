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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/valpere/momtext/internal/grammar"
)

var (
	rulesCategory string
	rulesYAML     bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the grammar rules in execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []grammar.RuleInfo
		for _, info := range grammar.Default().Catalogue() {
			if rulesCategory == "" || string(info.Category) == rulesCategory {
				infos = append(infos, info)
			}
		}
		if len(infos) == 0 {
			return fmt.Errorf("no rules in category %q", rulesCategory)
		}

		if rulesYAML {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(infos)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tNAME\tCATEGORY\tSCOPE")
		for _, info := range infos {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", info.Order, info.Name, info.Category, info.Scope)
		}
		return w.Flush()
	},
}

var rulesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the rule categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range grammar.Categories() {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesCategoriesCmd)

	rulesCmd.Flags().StringVar(&rulesCategory, "category", "", "Only list rules in this category")
	rulesCmd.Flags().BoolVar(&rulesYAML, "yaml", false, "Print the catalogue as YAML")
}
