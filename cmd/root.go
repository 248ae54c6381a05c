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
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/momtext/internal/config"
	"github.com/valpere/momtext/internal/logging"
)

var version = "0.3.0"

var (
	cfgFile string
	noCache bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "momtext",
	Short: "Grammar normalization for minutes-of-meeting notes",
	Long: `momtext turns informal site-visit notes into grammatical, professional
English suitable for minutes of meeting.

Gujarati notes are translated to English first. The text is then rewritten
by an AI refiner when one is configured, or by the built-in grammar rules.

Supported translators: google, mymemory, openrouter, ollama
Supported refiners:    gemini, ollama

Use "momtext process --help" to process a note.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.New(cfg.LogLevel, cfg.Development)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("configuration loaded",
			zap.String("translator", cfg.Translator.Service),
			zap.String("refiner", cfg.Refiner.Service),
			zap.Bool("store", cfg.Store.Enabled && !noCache),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./momtext.yaml or ~/.config/momtext/momtext.yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("dev", false, "Human-readable development logging")
	flags.String("translator", "mymemory", "Translation service ("+strings.Join(config.TranslatorServices, ", ")+")")
	flags.String("refiner", "none", "AI refiner ("+strings.Join(config.RefinerServices, ", ")+")")
	flags.String("refiner-model", "", "Refiner model name (backend default if empty)")
	flags.String("db", "", "Database path for translation memory, history and protected terms")
	flags.BoolVar(&noCache, "no-cache", false, "Do not read or write the database")
}
