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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/momtext/internal"
	"github.com/valpere/momtext/internal/grammar"
	"github.com/valpere/momtext/internal/orchestrator"
	"github.com/valpere/momtext/internal/refiner"
	"github.com/valpere/momtext/internal/store"
	"github.com/valpere/momtext/internal/translator"
	"github.com/valpere/momtext/internal/validator"
)

const defaultRefinerOllamaModel = "llama3.2"

var reNoteBreak = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

// buildTranslator constructs the configured translation service, backed by
// the translation memory when db is open. "none" yields a nil service.
func buildTranslator(db *store.Store) (translator.TranslationService, error) {
	tc := cfg.Translator

	var svc translator.TranslationService
	switch tc.Service {
	case "none":
		return nil, nil
	case "google":
		svc = translator.NewGoogleService(tc.Credentials)
	case "mymemory":
		svc = translator.NewMyMemoryService(tc.Email)
	case "openrouter":
		svc = translator.NewOpenRouterService(tc.APIKey, tc.BaseURL, nil)
	case "ollama":
		svc = translator.NewOllamaTranslator(tc.BaseURL, tc.Model)
	default:
		return nil, fmt.Errorf("unknown translator: %s", tc.Service)
	}

	if db == nil {
		return svc, nil
	}
	return translator.NewCached(svc, db, logger), nil
}

// buildRefiner constructs the configured refiner. "none" yields nil.
func buildRefiner(ctx context.Context) (refiner.Refiner, error) {
	rc := cfg.Refiner

	switch rc.Service {
	case "none":
		return nil, nil
	case "gemini":
		return refiner.NewGeminiRefiner(ctx, rc.APIKey, rc.Model)
	case "ollama":
		model := rc.Model
		if model == "" {
			model = defaultRefinerOllamaModel
		}
		return refiner.NewOllamaRefiner(model, rc.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown refiner: %s", rc.Service)
	}
}

// openStore opens the database unless it is disabled. A nil store is valid.
func openStore() (*store.Store, error) {
	if noCache || !cfg.Store.Enabled || cfg.Store.Path == "" {
		return nil, nil
	}
	return requireStore()
}

// requireStore opens the database for commands that manage it.
func requireStore() (*store.Store, error) {
	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := store.New(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// buildPipeline returns the grammar rules extended with the configured and
// stored protected terms.
func buildPipeline(ctx context.Context, db *store.Store) *grammar.Pipeline {
	terms := append([]string(nil), cfg.ProtectedTerms...)
	if db != nil {
		stored, err := db.ProtectedTerms(ctx)
		if err != nil {
			logger.Warn("failed to load protected terms", zap.Error(err))
		}
		terms = append(terms, stored...)
	}
	return grammar.Default().WithProtected(terms...)
}

// newOrchestrator wires the configured services. The caller closes the
// returned store when it is non-nil.
func newOrchestrator(ctx context.Context) (*orchestrator.Orchestrator, *store.Store, error) {
	db, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	tr, err := buildTranslator(db)
	if err != nil {
		closeStore(db)
		return nil, nil, err
	}
	ref, err := buildRefiner(ctx)
	if err != nil {
		closeStore(db)
		return nil, nil, err
	}

	opts := []orchestrator.Option{
		orchestrator.WithPipeline(buildPipeline(ctx, db)),
		orchestrator.WithChecker(validator.New()),
		orchestrator.WithLogger(logger),
	}
	if ref != nil {
		opts = append(opts, orchestrator.WithRefiner(ref))
	}

	orch := orchestrator.New(tr, orchestrator.Config{
		TranslateTimeout: cfg.Timeouts.Translate,
		RefineTimeout:    cfg.Timeouts.Refine,
		Translator:       cfg.Translator.ServiceConfig,
	}, opts...)
	return orch, db, nil
}

func closeStore(db *store.Store) {
	if db != nil {
		db.Close()
	}
}

// readInput returns the note from file ("-" for stdin), the joined
// arguments, or stdin when neither is given.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	switch {
	case file == "-":
		return readAll(stdin)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(stdin)
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// splitNotes splits a file into notes separated by blank lines.
func splitNotes(text string) []string {
	var notes []string
	for _, part := range reNoteBreak.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			notes = append(notes, strings.Trim(part, "\r\n"))
		}
	}
	return notes
}

// saveHistory records results without failing the command.
func saveHistory(ctx context.Context, db *store.Store, results ...*internal.ProcessingResult) {
	if db == nil {
		return
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := db.SaveResult(ctx, r); err != nil {
			logger.Warn("failed to save history", zap.String("id", r.ID), zap.Error(err))
		}
	}
}
