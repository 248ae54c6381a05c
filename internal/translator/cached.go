package translator

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Memory is a translation memory keyed by source text and language pair.
type Memory interface {
	GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error)
	SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, serviceUsed string) error
}

// CachedService serves repeated requests from a translation memory and
// records fresh translations in it. Memory failures never fail a request;
// they are logged at debug level.
type CachedService struct {
	svc    TranslationService
	memory Memory
	logger *zap.Logger
}

// NewCached wraps svc with memory. A nil memory returns svc unchanged and a
// nil logger discards memory errors.
func NewCached(svc TranslationService, memory Memory, logger *zap.Logger) TranslationService {
	if memory == nil {
		return svc
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedService{svc: svc, memory: memory, logger: logger}
}

func (c *CachedService) Name() string {
	return c.svc.Name()
}

func (c *CachedService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	req = req.withDefaults()

	start := time.Now()
	text, ok, err := c.memory.GetCachedTranslation(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		c.logger.Debug("translation memory lookup failed", zap.String("service", c.svc.Name()), zap.Error(err))
	} else if ok {
		return &ServiceResult{
			ServiceName:    c.svc.Name(),
			TranslatedText: text,
			Confidence:     1.0,
			Metadata:       map[string]string{"cache": "hit"},
			Latency:        time.Since(start),
		}, nil
	}

	result, err := c.svc.Translate(ctx, cfg, req)
	if err != nil || result == nil || result.Error != "" || result.TranslatedText == "" {
		return result, err
	}
	if err := c.memory.SaveToMemory(ctx, req.Text, req.SourceLang, req.TargetLang, result.TranslatedText, c.svc.Name()); err != nil {
		c.logger.Debug("translation memory save failed", zap.String("service", c.svc.Name()), zap.Error(err))
	}
	return result, nil
}

func (c *CachedService) IsAvailable(ctx context.Context) error {
	return c.svc.IsAvailable(ctx)
}

func (c *CachedService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return c.svc.SupportedLanguages(ctx)
}
