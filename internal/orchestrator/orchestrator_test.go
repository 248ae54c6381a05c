package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/valpere/momtext/internal"
	"github.com/valpere/momtext/internal/grammar"
	"github.com/valpere/momtext/internal/translator"
)

const gujaratiNote = "સ્લેબ તૈયાર છે"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockService struct {
	nameVal       string
	translateFunc func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error)
	callCount     atomic.Int32
	lastReq       atomic.Value
}

func (m *mockService) Name() string { return m.nameVal }

func (m *mockService) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	m.callCount.Add(1)
	m.lastReq.Store(req)
	if m.translateFunc != nil {
		return m.translateFunc(ctx, cfg, req)
	}
	return &translator.ServiceResult{ServiceName: m.nameVal, TranslatedText: "slab ready"}, nil
}

func (m *mockService) IsAvailable(ctx context.Context) error { return nil }

func (m *mockService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"gu", "en"}, nil
}

type mockRefiner struct {
	nameVal    string
	refineFunc func(ctx context.Context, text string) (string, error)
	callCount  atomic.Int32
}

func (m *mockRefiner) Name() string { return m.nameVal }

func (m *mockRefiner) Refine(ctx context.Context, text string) (string, error) {
	m.callCount.Add(1)
	return m.refineFunc(ctx, text)
}

type mockChecker struct {
	err error
}

func (m mockChecker) Compatible(original, candidate string) error { return m.err }

func failingRefiner() *mockRefiner {
	return &mockRefiner{nameVal: "broken", refineFunc: func(context.Context, string) (string, error) {
		return "", errors.New("quota exceeded")
	}}
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestNew_Defaults(t *testing.T) {
	o := New(nil, Config{})

	assert.Equal(t, DefaultTranslateTimeout, o.config.TranslateTimeout)
	assert.Equal(t, DefaultRefineTimeout, o.config.RefineTimeout)
	assert.Same(t, grammar.Default(), o.pipeline)
	assert.NotNil(t, o.logger)
	assert.Nil(t, o.refiner)
}

func TestProcessText_BlankInput(t *testing.T) {
	svc := &mockService{nameVal: "mock"}
	o := New(svc, Config{})

	for _, raw := range []string{"", "   ", "\n\t "} {
		res, err := o.ProcessText(context.Background(), raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, res)
	}
	assert.Zero(t, svc.callCount.Load())
}

func TestProcessText_EnglishUsesRules(t *testing.T) {
	svc := &mockService{nameVal: "mock"}
	logger, logs := observed()
	o := New(svc, Config{}, WithLogger(logger))

	res, err := o.ProcessText(context.Background(), "They was late")
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "They was late", res.Original)
	assert.Equal(t, internal.LanguageEnglish, res.DetectedLanguage)
	assert.False(t, res.WasTranslated)
	assert.Nil(t, res.Translated)
	assert.Equal(t, "They were late.", res.Improved)
	assert.Equal(t, res.Improved, res.Final)
	assert.True(t, res.Success)
	assert.Nil(t, res.Warning)
	assert.Equal(t, EngineRules, res.Engine)
	assert.False(t, res.CreatedAt.IsZero())
	assert.Zero(t, svc.callCount.Load())

	var stages []string
	for _, entry := range logs.FilterMessage("stage").All() {
		stages = append(stages, entry.ContextMap()["stage"].(string))
	}
	assert.Equal(t, []string{"start", "detected", "skip-translate", "refined", "done"}, stages)
}

func TestProcessText_Scenarios(t *testing.T) {
	tests := []struct {
		input    string
		contains string
		absent   string
	}{
		{input: "She were preparing the presentation yesterday", contains: "was preparing"},
		{input: "The team can completed the project by Friday", contains: "can complete"},
		{input: "Although the deadline was tight, but we delivered on time", absent: "but"},
		{input: `He said, "I am tired"`, contains: "he was tired"},
		{input: "its raining today", contains: "It's raining"},
		{input: "I like reading, to write, and swimming", contains: "reading, writing, and swimming"},
	}

	o := New(nil, Config{})
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := o.ProcessText(context.Background(), tt.input)
			require.NoError(t, err)
			if tt.contains != "" {
				assert.Contains(t, res.Final, tt.contains)
			}
			if tt.absent != "" {
				assert.NotContains(t, res.Final, tt.absent)
			}
		})
	}
}

func TestProcessText_GujaratiTranslated(t *testing.T) {
	svc := &mockService{
		nameVal: "mock",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			assert.Equal(t, "google-creds.json", cfg.Credentials)
			return &translator.ServiceResult{ServiceName: "mock", TranslatedText: " they was late \n"}, nil
		},
	}
	o := New(svc, Config{Translator: translator.ServiceConfig{Credentials: "google-creds.json"}})

	res, err := o.ProcessText(context.Background(), gujaratiNote)
	require.NoError(t, err)

	req := svc.lastReq.Load().(translator.TranslateRequest)
	assert.Equal(t, gujaratiNote, req.Text)
	assert.Equal(t, "gu", req.SourceLang)
	assert.Equal(t, "en", req.TargetLang)

	assert.Equal(t, internal.LanguageGujarati, res.DetectedLanguage)
	assert.True(t, res.WasTranslated)
	require.NotNil(t, res.Translated)
	assert.Equal(t, "they was late", *res.Translated)
	assert.Equal(t, "They were late.", res.Final)
	assert.Nil(t, res.Warning)
}

func TestProcessText_TranslationFailures(t *testing.T) {
	tests := []struct {
		name string
		svc  translator.TranslationService
		opts []Option
	}{
		{
			name: "not configured",
			svc:  nil,
		},
		{
			name: "service error",
			svc: &mockService{nameVal: "mock", translateFunc: func(context.Context, translator.ServiceConfig, translator.TranslateRequest) (*translator.ServiceResult, error) {
				return &translator.ServiceResult{Error: "quota exceeded"}, errors.New("quota exceeded")
			}},
		},
		{
			name: "error in result",
			svc: &mockService{nameVal: "mock", translateFunc: func(context.Context, translator.ServiceConfig, translator.TranslateRequest) (*translator.ServiceResult, error) {
				return &translator.ServiceResult{Error: "bad language pair"}, nil
			}},
		},
		{
			name: "empty translation",
			svc: &mockService{nameVal: "mock", translateFunc: func(context.Context, translator.ServiceConfig, translator.TranslateRequest) (*translator.ServiceResult, error) {
				return &translator.ServiceResult{TranslatedText: "  "}, nil
			}},
		},
		{
			name: "rejected by checker",
			svc:  &mockService{nameVal: "mock"},
			opts: []Option{WithChecker(mockChecker{err: errors.New("not English")})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := observed()
			o := New(tt.svc, Config{}, append(tt.opts, WithLogger(logger))...)

			res, err := o.ProcessText(context.Background(), gujaratiNote)
			require.NoError(t, err)

			assert.Equal(t, internal.LanguageGujarati, res.DetectedLanguage)
			assert.False(t, res.WasTranslated)
			assert.Nil(t, res.Translated)
			assert.Equal(t, grammar.Normalize(gujaratiNote), res.Final)
			require.NotNil(t, res.Warning)
			assert.True(t, strings.HasPrefix(*res.Warning, ErrTranslationUnavailable.Error()), *res.Warning)
			assert.True(t, res.Success)
			assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		})
	}
}

func TestProcessText_RefinerSuccess(t *testing.T) {
	ref := &mockRefiner{nameVal: "gemini", refineFunc: func(ctx context.Context, text string) (string, error) {
		assert.Equal(t, "slab ready", text)
		return "The slab is ready for casting.\n", nil
	}}
	o := New(&mockService{nameVal: "mock"}, Config{}, WithRefiner(ref), WithChecker(mockChecker{}))

	res, err := o.ProcessText(context.Background(), gujaratiNote)
	require.NoError(t, err)

	assert.Equal(t, "The slab is ready for casting.", res.Final)
	assert.Equal(t, "ai:gemini", res.Engine)
	assert.Nil(t, res.Warning)
	assert.EqualValues(t, 1, ref.callCount.Load())
}

func TestProcessText_FallbackMatchesRules(t *testing.T) {
	inputs := []string{
		"They was late",
		"its raining today",
		"We goed to the site",
		"- slab ready\n- they was late",
	}

	logger, logs := observed()
	o := New(nil, Config{}, WithRefiner(failingRefiner()), WithLogger(logger))

	for _, input := range inputs {
		res, err := o.ProcessText(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, grammar.Normalize(input), res.Final, input)
		assert.Equal(t, EngineRules, res.Engine)
		require.NotNil(t, res.Warning)
		assert.Contains(t, *res.Warning, ErrRefinementUnavailable.Error())
		assert.Contains(t, *res.Warning, "quota exceeded")
	}
	assert.Equal(t, len(inputs), logs.FilterMessage("refinement failed, falling back to rules").Len())
}

func TestProcessText_FallbackUsesTranslatedText(t *testing.T) {
	o := New(&mockService{nameVal: "mock"}, Config{}, WithRefiner(failingRefiner()))

	res, err := o.ProcessText(context.Background(), gujaratiNote)
	require.NoError(t, err)
	assert.Equal(t, grammar.Normalize("slab ready"), res.Final)
	assert.Equal(t, "Slab is ready.", res.Final)
}

func TestProcessText_RefinerRejected(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		checker Checker
	}{
		{"empty output", "   ", nil},
		{"incompatible output", "Something else entirely", mockChecker{err: errors.New("length changed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &mockRefiner{nameVal: "ollama", refineFunc: func(context.Context, string) (string, error) {
				return tt.output, nil
			}}
			o := New(nil, Config{}, WithRefiner(ref), WithChecker(tt.checker))

			res, err := o.ProcessText(context.Background(), "They was late")
			require.NoError(t, err)
			assert.Equal(t, "They were late.", res.Final)
			assert.Equal(t, EngineRules, res.Engine)
			assert.NotNil(t, res.Warning)
		})
	}
}

func TestProcessText_RefinerTimeout(t *testing.T) {
	ref := &mockRefiner{nameVal: "slow", refineFunc: func(ctx context.Context, text string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	}}
	o := New(nil, Config{RefineTimeout: 20 * time.Millisecond}, WithRefiner(ref))

	start := time.Now()
	res, err := o.ProcessText(context.Background(), "They was late")
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, "They were late.", res.Final)
	require.NotNil(t, res.Warning)
	assert.Contains(t, *res.Warning, context.DeadlineExceeded.Error())
}

func TestProcessText_CallerCancellation(t *testing.T) {
	svc := &mockService{nameVal: "mock", translateFunc: func(ctx context.Context, _ translator.ServiceConfig, _ translator.TranslateRequest) (*translator.ServiceResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := New(svc, Config{}, WithRefiner(failingRefiner()))
	res, err := o.ProcessText(ctx, gujaratiNote)
	require.NoError(t, err)

	assert.False(t, res.WasTranslated)
	assert.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], context.Canceled.Error())
	assert.Equal(t, grammar.Normalize(gujaratiNote), res.Final)
}

func TestProcessBatch_PreservesOrder(t *testing.T) {
	var active, peak atomic.Int32
	ref := &mockRefiner{nameVal: "mock", refineFunc: func(ctx context.Context, text string) (string, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return strings.ToUpper(text), nil
	}}
	o := New(nil, Config{}, WithRefiner(ref))

	texts := []string{"one", "two", " ", "four", "five", "six"}
	items, err := o.ProcessBatch(context.Background(), texts, 2)
	require.NoError(t, err)
	require.Len(t, items, len(texts))

	for i, item := range items {
		if i == 2 {
			assert.ErrorIs(t, item.Err, ErrValidation)
			assert.Nil(t, item.Result)
			continue
		}
		require.NoError(t, item.Err)
		assert.Equal(t, texts[i], item.Result.Original)
		assert.Equal(t, strings.ToUpper(texts[i]), item.Result.Final)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.EqualValues(t, 5, ref.callCount.Load())
}

func TestProcessBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := New(nil, Config{}).ProcessBatch(ctx, []string{"one", "two"}, 0)
	assert.ErrorIs(t, err, context.Canceled)
	for _, item := range items {
		assert.ErrorIs(t, item.Err, context.Canceled)
		assert.Nil(t, item.Result)
	}
}
