// Package orchestrator runs one minutes-of-meeting note through detection,
// translation and refinement and shapes the outcome into a ProcessingResult.
//
// Only blank input fails a request. Translation and refinement problems are
// recorded as warnings and the request continues on the untranslated text or
// the rule engine's output.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/valpere/momtext/internal"
	"github.com/valpere/momtext/internal/detector"
	"github.com/valpere/momtext/internal/grammar"
	"github.com/valpere/momtext/internal/refiner"
	"github.com/valpere/momtext/internal/translator"
)

const (
	DefaultTranslateTimeout = 20 * time.Second
	DefaultRefineTimeout    = 30 * time.Second

	// EngineRules marks results produced by the rule engine.
	EngineRules = "rules"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrTranslationUnavailable = errors.New("translation unavailable")
	ErrRefinementUnavailable  = errors.New("refinement unavailable")

	errNotConfigured = errors.New("not configured")
)

// Stage is a step of the per-request state machine.
type Stage string

const (
	StageStart         Stage = "start"
	StageDetected      Stage = "detected"
	StageTranslated    Stage = "translated"
	StageSkipTranslate Stage = "skip-translate"
	StageRefined       Stage = "refined"
	StageDone          Stage = "done"
)

// Checker vets generated text before it replaces its input.
type Checker interface {
	Compatible(original, candidate string) error
}

type Config struct {
	TranslateTimeout time.Duration
	RefineTimeout    time.Duration
	// Translator is passed to every Translate call.
	Translator translator.ServiceConfig
}

type Option func(*Orchestrator)

// WithRefiner enables the AI path. Without it every request uses the rules.
func WithRefiner(r refiner.Refiner) Option {
	return func(o *Orchestrator) { o.refiner = r }
}

func WithPipeline(p *grammar.Pipeline) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.pipeline = p
		}
	}
}

func WithChecker(c Checker) Option {
	return func(o *Orchestrator) { o.checker = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

type Orchestrator struct {
	translator translator.TranslationService
	refiner    refiner.Refiner
	pipeline   *grammar.Pipeline
	checker    Checker
	logger     *zap.Logger
	config     Config
	now        func() time.Time
}

// New creates an Orchestrator. A nil translator leaves Gujarati input
// untranslated with a warning.
func New(tr translator.TranslationService, config Config, opts ...Option) *Orchestrator {
	if config.TranslateTimeout <= 0 {
		config.TranslateTimeout = DefaultTranslateTimeout
	}
	if config.RefineTimeout <= 0 {
		config.RefineTimeout = DefaultRefineTimeout
	}

	o := &Orchestrator{
		translator: tr,
		pipeline:   grammar.Default(),
		logger:     zap.NewNop(),
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ProcessText normalizes one note. The only error it returns wraps
// ErrValidation.
func (o *Orchestrator) ProcessText(ctx context.Context, raw string) (*internal.ProcessingResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: text is blank", ErrValidation)
	}

	res := &internal.ProcessingResult{
		ID:               uuid.NewString(),
		Original:         raw,
		DetectedLanguage: internal.LanguageUnknown,
		CreatedAt:        o.now(),
	}
	log := o.logger.With(zap.String("id", res.ID))
	enter(log, StageStart, zap.Int("runes", len([]rune(raw))))

	res.DetectedLanguage = detector.Detect(raw)
	enter(log, StageDetected, zap.String("language", string(res.DetectedLanguage)))

	text := raw
	if res.DetectedLanguage == internal.LanguageEnglish {
		enter(log, StageSkipTranslate)
	} else {
		start := time.Now()
		translated, err := o.translate(ctx, raw, res.DetectedLanguage)
		if err != nil {
			res.AddWarning(fmt.Sprintf("%v: %v", ErrTranslationUnavailable, err))
			log.Warn("translation failed, continuing with original text", zap.Error(err))
			enter(log, StageSkipTranslate)
		} else {
			res.WasTranslated = true
			res.Translated = &translated
			text = translated
			enter(log, StageTranslated, zap.Duration("latency", time.Since(start)))
		}
	}

	improved, engine := o.improve(ctx, log, res, text)
	res.Improved = improved
	res.Final = improved
	res.Engine = engine
	res.Success = true
	enter(log, StageRefined, zap.String("engine", engine))

	enter(log, StageDone, zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

func (o *Orchestrator) translate(ctx context.Context, text string, lang internal.Language) (string, error) {
	if o.translator == nil {
		return "", fmt.Errorf("translation service %w", errNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.TranslateTimeout)
	defer cancel()

	result, err := o.translator.Translate(ctx, o.config.Translator, translator.TranslateRequest{
		Text:       text,
		SourceLang: string(lang),
		TargetLang: string(internal.LanguageEnglish),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.translator.Name(), err)
	}
	if result == nil || result.Error != "" {
		msg := "no result"
		if result != nil {
			msg = result.Error
		}
		return "", fmt.Errorf("%s: %s", o.translator.Name(), msg)
	}

	translated := strings.TrimSpace(result.TranslatedText)
	if o.checker != nil {
		if err := o.checker.Compatible(text, translated); err != nil {
			return "", fmt.Errorf("%s: %w", o.translator.Name(), err)
		}
	} else if translated == "" {
		return "", fmt.Errorf("%s: empty translation", o.translator.Name())
	}
	return translated, nil
}

// improve returns the refined text and the engine that produced it. Any
// refiner failure falls back to the rule engine on the same input.
func (o *Orchestrator) improve(ctx context.Context, log *zap.Logger, res *internal.ProcessingResult, text string) (string, string) {
	if o.refiner == nil {
		return o.pipeline.Normalize(text), EngineRules
	}

	start := time.Now()
	refined, err := o.refine(ctx, text)
	if err != nil {
		res.AddWarning(fmt.Sprintf("%v: %v", ErrRefinementUnavailable, err))
		log.Warn("refinement failed, falling back to rules",
			zap.String("refiner", o.refiner.Name()),
			zap.Error(err),
		)
		return o.pipeline.Normalize(text), EngineRules
	}
	log.Debug("refined", zap.String("refiner", o.refiner.Name()), zap.Duration("latency", time.Since(start)))
	return refined, "ai:" + o.refiner.Name()
}

func (o *Orchestrator) refine(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.RefineTimeout)
	defer cancel()

	refined, err := o.refiner.Refine(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.refiner.Name(), err)
	}
	refined = strings.TrimSpace(refined)
	if o.checker != nil {
		if err := o.checker.Compatible(text, refined); err != nil {
			return "", fmt.Errorf("%s: %w", o.refiner.Name(), err)
		}
	} else if refined == "" {
		return "", fmt.Errorf("%s: empty output", o.refiner.Name())
	}
	return refined, nil
}

// BatchItem is the outcome of one note in a batch.
type BatchItem struct {
	Result *internal.ProcessingResult
	Err    error
}

// ProcessBatch processes texts concurrently, at most limit at a time
// (limit ≤ 0 means unbounded). Items keep the order of texts. Per-item
// failures are reported in the item; the returned error is only set when ctx
// ends before every item has started.
func (o *Orchestrator) ProcessBatch(ctx context.Context, texts []string, limit int) ([]BatchItem, error) {
	items := make([]BatchItem, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	var skipped error
	for i, text := range texts {
		if err := gctx.Err(); err != nil {
			items[i].Err = err
			skipped = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i].Err = err
				return err
			}
			res, err := o.ProcessText(gctx, text)
			items[i] = BatchItem{Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, skipped
}

func enter(log *zap.Logger, stage Stage, fields ...zap.Field) {
	log.Debug("stage", append([]zap.Field{zap.String("stage", string(stage))}, fields...)...)
}
